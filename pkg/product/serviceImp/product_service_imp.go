package serviceImp

import (
	"context"
	"log/slog"

	"agrow/entities"
	apperr "agrow/pkg/errors"
	"agrow/pkg/product/service"
	store "agrow/pkg/store/service"
)

type productSvc struct {
	store   store.Service
	catalog func() []entities.Product
}

func New(st store.Service) service.ProductService {
	return &productSvc{store: st, catalog: DefaultCatalog}
}

func (s *productSvc) List(ctx context.Context) ([]entities.Product, error) {
	var out []entities.Product
	err := s.store.View(ctx, func(snap *entities.Snapshot) error {
		out = append(out, snap.Products...)
		return nil
	})
	if err != nil {
		return nil, apperr.E(apperr.KindPersistence, "product.list", err)
	}
	if len(out) > 0 {
		return out, nil
	}

	err = s.store.Update(ctx, func(snap *entities.Snapshot) error {
		// another request may have seeded in the meantime
		if len(snap.Products) == 0 {
			snap.Products = s.catalog()
			slog.Info("seeded product catalog", "component", "product", "count", len(snap.Products))
		}
		out = append(out[:0], snap.Products...)
		return nil
	})
	if err != nil {
		return nil, apperr.E(apperr.KindPersistence, "product.seed", err)
	}
	return out, nil
}

func (s *productSvc) Find(ctx context.Context, id string) (*entities.Product, bool, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, false, err
	}
	for i := range all {
		if all[i].ID == id {
			return &all[i], true, nil
		}
	}
	return nil, false, nil
}
