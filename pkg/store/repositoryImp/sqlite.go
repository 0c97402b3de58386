package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"agrow/entities"
	apperr "agrow/pkg/errors"
	"agrow/pkg/store/repository"
)

type sqliteRepo struct{ db *gorm.DB }

// NewSQLite keeps each collection in its own table; SaveAll replaces all of
// them inside one transaction.
func NewSQLite(db *gorm.DB) repository.Store { return &sqliteRepo{db: db} }

func (r *sqliteRepo) LoadAll(ctx context.Context) (*entities.Snapshot, error) {
	db := r.db.WithContext(ctx)
	snap := &entities.Snapshot{}
	if err := db.Order("rowid").Find(&snap.Users).Error; err != nil {
		return nil, apperr.E(apperr.KindPersistence, "sqlite.load users", err)
	}
	if err := db.Order("rowid").Find(&snap.Scans).Error; err != nil {
		return nil, apperr.E(apperr.KindPersistence, "sqlite.load scans", err)
	}
	if err := db.Order("rowid").Find(&snap.Products).Error; err != nil {
		return nil, apperr.E(apperr.KindPersistence, "sqlite.load products", err)
	}
	if err := db.Order("rowid").Find(&snap.Purchases).Error; err != nil {
		return nil, apperr.E(apperr.KindPersistence, "sqlite.load purchases", err)
	}
	snap.Normalize()
	return snap, nil
}

func (r *sqliteRepo) SaveAll(ctx context.Context, snap *entities.Snapshot) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := replace(tx, &entities.User{}, &snap.Users, len(snap.Users)); err != nil {
			return err
		}
		if err := replace(tx, &entities.DiagnosisRecord{}, &snap.Scans, len(snap.Scans)); err != nil {
			return err
		}
		if err := replace(tx, &entities.Product{}, &snap.Products, len(snap.Products)); err != nil {
			return err
		}
		return replace(tx, &entities.Purchase{}, &snap.Purchases, len(snap.Purchases))
	})
	return apperr.E(apperr.KindPersistence, "sqlite.save", err)
}

func replace(tx *gorm.DB, model, rows any, n int) error {
	if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
		return err
	}
	if n == 0 {
		return nil
	}
	return tx.CreateInBatches(rows, 100).Error
}
