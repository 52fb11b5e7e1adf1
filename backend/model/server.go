package model

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Server is a game server. PackID is nil when no pack is installed.
type Server struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UUID      string    `json:"uuid" gorm:"size:36;uniqueIndex"`
	Name      string    `json:"name" gorm:"size:191;not null"`
	OptionID  int64     `json:"option_id" gorm:"index"`
	PackID    *int64    `json:"pack_id" gorm:"index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Server) TableName() string {
	return "servers"
}

type ServerRepository struct {
	db *gorm.DB
}

func NewServerRepository(db *gorm.DB) *ServerRepository {
	return &ServerRepository{db: db}
}

func (r *ServerRepository) Create(ctx context.Context, server *Server) error {
	if err := r.db.WithContext(ctx).Create(server).Error; err != nil {
		return fmt.Errorf("create server: %w", err)
	}
	return nil
}

// CountWhere counts servers matching every predicate.
func (r *ServerRepository) CountWhere(ctx context.Context, predicates ...Predicate) (int64, error) {
	tx, err := applyPredicates(r.db.WithContext(ctx).Model(&Server{}), predicates)
	if err != nil {
		return 0, err
	}
	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count servers: %w", err)
	}
	return count, nil
}

func (r *ServerRepository) ListWhere(ctx context.Context, predicates ...Predicate) ([]*Server, error) {
	tx, err := applyPredicates(r.db.WithContext(ctx), predicates)
	if err != nil {
		return nil, err
	}
	var servers []*Server
	if err := tx.Order("id asc").Find(&servers).Error; err != nil {
		return nil, fmt.Errorf("list servers: %w", err)
	}
	return servers, nil
}
