package serviceImp

import (
	"fmt"
	"log/slog"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"agrow/entities"
	"agrow/pkg/kb/repository"
	"agrow/pkg/kb/service"
)

type key struct{ crop, name string }

// Svc is an immutable in-memory table built once at startup.
type Svc struct {
	entries []entities.Disease
	index   map[key]int
	dups    []service.Duplicate
}

// fold lowercases s; keys are otherwise compared byte for byte, so callers
// trim their input.
func fold(s string) string {
	// Casers carry state; a fresh one per call keeps Lookup goroutine-safe.
	return cases.Lower(language.Und).String(s)
}

func NewFromEntries(entries []entities.Disease) *Svc {
	s := &Svc{entries: entries, index: make(map[key]int, len(entries))}
	counts := map[key]int{}
	var order []key
	for i, d := range entries {
		k := key{fold(d.Crop), fold(d.Name)}
		if _, ok := s.index[k]; !ok {
			s.index[k] = i
			order = append(order, k)
		}
		counts[k]++
	}
	for _, k := range order {
		if counts[k] > 1 {
			d := entries[s.index[k]]
			s.dups = append(s.dups, service.Duplicate{Crop: d.Crop, Name: d.Name, Count: counts[k]})
		}
	}
	return s
}

// New loads the table. Duplicate keys are logged and resolved first-match-wins
// unless strict is set, in which case they are an error.
func New(l repository.Loader, strict bool) (*Svc, error) {
	entries, err := l.Load()
	if err != nil {
		return nil, err
	}
	s := NewFromEntries(entries)
	for _, d := range s.dups {
		slog.Warn("duplicate knowledge base key, first entry wins",
			"component", "kb", "crop", d.Crop, "name", d.Name, "count", d.Count)
	}
	if strict && len(s.dups) > 0 {
		return nil, fmt.Errorf("knowledge base has %d duplicate crop/name keys", len(s.dups))
	}
	return s, nil
}

func (s *Svc) Lookup(crop, name string) (*entities.Disease, bool) {
	i, ok := s.index[key{fold(crop), fold(name)}]
	if !ok {
		return nil, false
	}
	d := s.entries[i]
	return &d, true
}

func (s *Svc) All() []entities.Disease {
	out := make([]entities.Disease, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *Svc) Len() int { return len(s.entries) }

func (s *Svc) Duplicates() []service.Duplicate { return s.dups }

var _ service.KBService = (*Svc)(nil)
