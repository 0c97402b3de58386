package repository

import "agrow/entities"

// Loader produces the curated Knowledge Base entries in table order.
type Loader interface {
	Load() ([]entities.Disease, error)
}
