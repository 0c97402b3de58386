package serviceImp

import (
	"context"
	"sync"

	"agrow/entities"
	"agrow/pkg/store/repository"
	"agrow/pkg/store/service"
)

// lockedStore serialises read-modify-write cycles on one backing Store.
// Only one Update runs at a time; Views may overlap each other.
type lockedStore struct {
	mu   sync.RWMutex
	repo repository.Store
}

func New(r repository.Store) service.Service { return &lockedStore{repo: r} }

func (s *lockedStore) View(ctx context.Context, fn func(*entities.Snapshot) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap, err := s.repo.LoadAll(ctx)
	if err != nil {
		return err
	}
	return fn(snap)
}

func (s *lockedStore) Update(ctx context.Context, fn func(*entities.Snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap, err := s.repo.LoadAll(ctx)
	if err != nil {
		return err
	}
	if err := fn(snap); err != nil {
		return err
	}
	return s.repo.SaveAll(ctx, snap)
}
