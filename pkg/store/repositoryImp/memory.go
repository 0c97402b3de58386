package repositoryImp

import (
	"context"
	"encoding/json"
	"sync"

	"agrow/entities"
	apperr "agrow/pkg/errors"
)

// Memory is a process-local Store. Snapshots are deep-copied in and out so
// callers never share state with it. LoadErr and SaveErr, when set, are
// returned instead of doing any work.
type Memory struct {
	mu      sync.Mutex
	data    []byte
	saves   int
	LoadErr error
	SaveErr error
}

func NewMemory(seed *entities.Snapshot) *Memory {
	m := &Memory{}
	if seed == nil {
		seed = &entities.Snapshot{}
	}
	seed.Normalize()
	m.data, _ = json.Marshal(seed)
	return m
}

func (m *Memory) LoadAll(ctx context.Context) (*entities.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperr.E(apperr.KindPersistence, "memory.load", err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoadErr != nil {
		return nil, apperr.E(apperr.KindPersistence, "memory.load", m.LoadErr)
	}
	snap := &entities.Snapshot{}
	if err := json.Unmarshal(m.data, snap); err != nil {
		return nil, apperr.E(apperr.KindPersistence, "memory.load", err)
	}
	snap.Normalize()
	return snap, nil
}

func (m *Memory) SaveAll(ctx context.Context, snap *entities.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return apperr.E(apperr.KindPersistence, "memory.save", err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return apperr.E(apperr.KindPersistence, "memory.save", m.SaveErr)
	}
	b, err := json.Marshal(snap)
	if err != nil {
		return apperr.E(apperr.KindPersistence, "memory.save", err)
	}
	m.data = b
	m.saves++
	return nil
}

// Saves reports how many successful SaveAll calls happened.
func (m *Memory) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
