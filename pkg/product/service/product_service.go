package service

import (
	"context"

	"agrow/entities"
)

type ProductService interface {
	// List returns the catalog, writing the default products first when the
	// store has none.
	List(ctx context.Context) ([]entities.Product, error)
	Find(ctx context.Context, id string) (*entities.Product, bool, error)
}
