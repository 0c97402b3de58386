package repository

import (
	"context"

	"agrow/entities"
)

// Store is the persistence collaborator: the whole data set is loaded and
// saved as one snapshot.
type Store interface {
	LoadAll(ctx context.Context) (*entities.Snapshot, error)
	SaveAll(ctx context.Context, snap *entities.Snapshot) error
}
