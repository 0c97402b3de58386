package service

import (
	"context"

	"agrow/entities"
)

type Service interface {
	// View loads a snapshot for reading. fn must not retain it.
	View(ctx context.Context, fn func(*entities.Snapshot) error) error
	// Update runs load, fn, save with no other Update in between. Nothing is
	// saved when fn returns an error.
	Update(ctx context.Context, fn func(*entities.Snapshot) error) error
}
