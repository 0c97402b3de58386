package service

import "agrow/entities"

type KBService interface {
	// Lookup returns the first entry, in table order, whose crop and name
	// equal the arguments after case folding.
	Lookup(crop, name string) (*entities.Disease, bool)
	All() []entities.Disease
	Len() int
	// Duplicates lists keys that occur more than once; only the first
	// occurrence of each is reachable through Lookup.
	Duplicates() []Duplicate
}

type Duplicate struct {
	Crop  string `json:"crop"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}
