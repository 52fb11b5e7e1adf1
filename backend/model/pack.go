package model

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

var ErrPackNotFound = errors.New("pack not found")

// RefreshMode tells UpdateByID what to do with cached pack state after writing.
type RefreshMode int

const (
	// WithoutRefresh invalidates the cached copy and does not read the row back.
	WithoutRefresh RefreshMode = iota
	// WithRefresh reads the row back and re-caches it.
	WithRefresh
)

func (m RefreshMode) String() string {
	if m == WithRefresh {
		return "refresh"
	}
	return "no-refresh"
}

// Pack is a bundle of files and configuration installed onto servers of one service option.
type Pack struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	UUID        string    `json:"uuid" gorm:"size:36;uniqueIndex"`
	OptionID    int64     `json:"option_id" gorm:"index;not null"`
	Name        string    `json:"name" gorm:"size:191;not null"`
	Version     string    `json:"version" gorm:"size:191"`
	Description string    `json:"description" gorm:"type:text"`
	Selectable  bool      `json:"selectable" gorm:"not null"`
	Visible     bool      `json:"visible" gorm:"not null"`
	Locked      bool      `json:"locked" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (p *Pack) TableName() string {
	return "packs"
}

type PackRepository struct {
	db    *gorm.DB
	cache *PackCache
}

// NewPackRepository returns a gorm backed pack store. cache may be nil.
func NewPackRepository(db *gorm.DB, cache *PackCache) *PackRepository {
	return &PackRepository{db: db, cache: cache}
}

// FindByID loads a pack. When columns are given only those are selected and the cache is bypassed.
func (r *PackRepository) FindByID(ctx context.Context, id int64, columns ...string) (*Pack, error) {
	if len(columns) == 0 {
		if pack, ok := r.cache.Get(ctx, id); ok {
			return pack, nil
		}
	}
	if err := validateColumns(columns); err != nil {
		return nil, err
	}

	tx := r.db.WithContext(ctx)
	if len(columns) > 0 {
		tx = tx.Select(columns)
	}
	var pack Pack
	if err := tx.First(&pack, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrPackNotFound, id)
		}
		return nil, fmt.Errorf("find pack %d: %w", id, err)
	}

	if len(columns) == 0 {
		r.cache.Fill(ctx, &pack)
	}
	return &pack, nil
}

// UpdateByID writes fields to the pack row and reports the number of rows affected.
func (r *PackRepository) UpdateByID(ctx context.Context, id int64, fields map[string]any, mode RefreshMode) (int64, error) {
	if len(fields) == 0 {
		return 0, nil
	}
	columns := make([]string, 0, len(fields))
	for column := range fields {
		columns = append(columns, column)
	}
	if err := validateColumns(columns); err != nil {
		return 0, err
	}

	result := r.db.WithContext(ctx).Model(&Pack{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return 0, fmt.Errorf("update pack %d: %w", id, result.Error)
	}

	switch mode {
	case WithRefresh:
		var pack Pack
		if err := r.db.WithContext(ctx).First(&pack, id).Error; err != nil {
			r.cache.Invalidate(ctx, id)
			return result.RowsAffected, fmt.Errorf("refresh pack %d: %w", id, err)
		}
		r.cache.Set(ctx, &pack)
	default:
		r.cache.Invalidate(ctx, id)
	}
	return result.RowsAffected, nil
}

func (r *PackRepository) Create(ctx context.Context, pack *Pack) error {
	if err := r.db.WithContext(ctx).Create(pack).Error; err != nil {
		return fmt.Errorf("create pack: %w", err)
	}
	return nil
}

func (r *PackRepository) DeleteByID(ctx context.Context, id int64) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&Pack{}, id)
	if result.Error != nil {
		return 0, fmt.Errorf("delete pack %d: %w", id, result.Error)
	}
	r.cache.Invalidate(ctx, id)
	return result.RowsAffected, nil
}

// List returns packs newest first.
func (r *PackRepository) List(ctx context.Context, offset, limit int) ([]*Pack, error) {
	var packs []*Pack
	err := r.db.WithContext(ctx).Order("id desc").Offset(offset).Limit(limit).Find(&packs).Error
	if err != nil {
		return nil, fmt.Errorf("list packs: %w", err)
	}
	return packs, nil
}
