package service

import (
	"context"

	"pack-panel/backend/model"
)

// PackStore is the pack persistence the pack services need.
type PackStore interface {
	FindByID(ctx context.Context, id int64, columns ...string) (*model.Pack, error)
	UpdateByID(ctx context.Context, id int64, fields map[string]any, mode model.RefreshMode) (int64, error)
	Create(ctx context.Context, pack *model.Pack) error
	DeleteByID(ctx context.Context, id int64) (int64, error)
}

// ServerStore answers attachment questions about servers.
type ServerStore interface {
	CountWhere(ctx context.Context, predicates ...model.Predicate) (int64, error)
}

type ServiceOptionStore interface {
	FindByID(ctx context.Context, id int64) (*model.ServiceOption, error)
}
