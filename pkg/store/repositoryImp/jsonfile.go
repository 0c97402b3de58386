package repositoryImp

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"agrow/entities"
	apperr "agrow/pkg/errors"
	"agrow/pkg/store/repository"
)

type jsonFile struct{ path string }

// NewJSONFile stores the snapshot as an indented JSON document at path.
// A missing file reads as an empty snapshot.
func NewJSONFile(path string) repository.Store { return &jsonFile{path: path} }

func (s *jsonFile) LoadAll(ctx context.Context) (*entities.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperr.E(apperr.KindPersistence, "jsonfile.load", err)
	}
	snap := &entities.Snapshot{}
	b, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		snap.Normalize()
		return snap, nil
	}
	if err != nil {
		return nil, apperr.E(apperr.KindPersistence, "jsonfile.load", err)
	}
	if len(b) > 0 {
		if err := json.Unmarshal(b, snap); err != nil {
			return nil, apperr.E(apperr.KindPersistence, "jsonfile.load", err)
		}
	}
	snap.Normalize()
	return snap, nil
}

// SaveAll writes to a temp file in the same directory and renames it over
// the target so readers never see a partial document.
func (s *jsonFile) SaveAll(ctx context.Context, snap *entities.Snapshot) error {
	const op = "jsonfile.save"
	if err := ctx.Err(); err != nil {
		return apperr.E(apperr.KindPersistence, op, err)
	}
	snap.Normalize()
	b, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return apperr.E(apperr.KindPersistence, op, err)
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return apperr.E(apperr.KindPersistence, op, err)
	}
	tmp, err := os.CreateTemp(dir, ".db-*.json")
	if err != nil {
		return apperr.E(apperr.KindPersistence, op, err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return apperr.E(apperr.KindPersistence, op, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return apperr.E(apperr.KindPersistence, op, err)
	}
	if err := tmp.Close(); err != nil {
		return apperr.E(apperr.KindPersistence, op, err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return apperr.E(apperr.KindPersistence, op, err)
	}
	return nil
}
