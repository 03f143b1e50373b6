package repository

import (
	"context"
	"errors"
	"sync"

	"gorm.io/gorm"

	"resumeshot-backend/internal/model"
)

var ErrDBNotReady = errors.New("database not initialized")

type GenerationRepository interface {
	Create(ctx context.Context, rec *model.GenerationRecord) error
	ListRecent(ctx context.Context, limit int) ([]model.GenerationRecord, error)
	SetDB(db *gorm.DB)
	Ready() bool
}

// generationRepository guards its db handle with a mutex because SetDB runs
// from the async attach goroutine while request handlers read concurrently.
type generationRepository struct {
	mu sync.RWMutex
	db *gorm.DB
}

func NewGenerationRepository(db *gorm.DB) GenerationRepository {
	return &generationRepository{db: db}
}

func (r *generationRepository) conn() *gorm.DB {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.db
}

func (r *generationRepository) Create(ctx context.Context, rec *model.GenerationRecord) error {
	db := r.conn()
	if db == nil {
		return ErrDBNotReady
	}
	return db.WithContext(ctx).Create(rec).Error
}

func (r *generationRepository) ListRecent(ctx context.Context, limit int) ([]model.GenerationRecord, error) {
	db := r.conn()
	if db == nil {
		return nil, ErrDBNotReady
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	var recs []model.GenerationRecord
	if err := db.WithContext(ctx).
		Order("id DESC").
		Limit(limit).
		Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *generationRepository) SetDB(db *gorm.DB) {
	r.mu.Lock()
	r.db = db
	r.mu.Unlock()
}

func (r *generationRepository) Ready() bool {
	return r.conn() != nil
}
