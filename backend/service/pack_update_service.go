package service

import (
	"context"

	codes "pack-panel/backend/common/errors"
	"pack-panel/backend/model"
)

// PackUpdateService applies changes to a pack. The pack's option cannot be changed
// while any server still uses the pack.
type PackUpdateService struct {
	packs   PackStore
	servers ServerStore
}

func NewPackUpdateService(packs PackStore, servers ServerStore) *PackUpdateService {
	return &PackUpdateService{packs: packs, servers: servers}
}

// Handle updates the pack and returns the row count reported by the store.
// locked, visible and selectable are written as false unless changes sets them.
func (s *PackUpdateService) Handle(ctx context.Context, ref PackRef, changes map[string]any) (rows int64, err error) {
	defer func() { observe("update", err) }()

	pack, err := ref.resolve(ctx, s.packs, "id", "option_id")
	if err != nil {
		return 0, err
	}

	if _, ok := changes["option_id"]; ok {
		count, err := s.servers.CountWhere(ctx, model.Where("pack_id", "=", pack.ID))
		if err != nil {
			return 0, err
		}
		if count > 0 {
			return 0, hasActiveServersError(ctx, codes.ErrPackUpdateHasServers)
		}
	}

	return s.packs.UpdateByID(ctx, pack.ID, MergeFields(packFlagDefaults(), changes), model.WithoutRefresh)
}
