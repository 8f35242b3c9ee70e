package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/store"
)

var _ store.Store = (*GormStore)(nil)

// GormStore keeps one row per collection in record_collections.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// --------------------------------------------------
// Load
// --------------------------------------------------

func (s *GormStore) Load(ctx context.Context, c store.Collection) ([]byte, error) {
	var rec models.RecordCollection
	err := s.db.WithContext(ctx).
		Where("name = ?", string(c)).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", c, err)
	}
	return []byte(rec.Payload), nil
}

// --------------------------------------------------
// Save (upsert)
// --------------------------------------------------

func (s *GormStore) Save(ctx context.Context, c store.Collection, payload []byte) error {
	rec := models.RecordCollection{
		Name:      string(c),
		Payload:   string(payload),
		UpdatedAt: time.Now(),
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(&rec).Error
	if err != nil {
		return fmt.Errorf("save %s: %w", c, err)
	}
	return nil
}

func (s *GormStore) Delete(ctx context.Context, c store.Collection) error {
	err := s.db.WithContext(ctx).
		Where("name = ?", string(c)).
		Delete(&models.RecordCollection{}).Error
	if err != nil {
		return fmt.Errorf("delete %s: %w", c, err)
	}
	return nil
}

func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
