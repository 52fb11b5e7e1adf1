package service

import (
	"context"

	codes "pack-panel/backend/common/errors"
	"pack-panel/backend/model"
)

// PackDeletionService removes packs that no server uses.
type PackDeletionService struct {
	packs   PackStore
	servers ServerStore
}

func NewPackDeletionService(packs PackStore, servers ServerStore) *PackDeletionService {
	return &PackDeletionService{packs: packs, servers: servers}
}

func (s *PackDeletionService) Handle(ctx context.Context, ref PackRef) (rows int64, err error) {
	defer func() { observe("delete", err) }()

	pack, err := ref.resolve(ctx, s.packs, "id")
	if err != nil {
		return 0, err
	}

	count, err := s.servers.CountWhere(ctx, model.Where("pack_id", "=", pack.ID))
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, hasActiveServersError(ctx, codes.ErrPackDeleteHasServers)
	}

	return s.packs.DeleteByID(ctx, pack.ID)
}
