package service

import (
	"context"
	"errors"

	"pack-panel/backend/model"
)

// PackRef names the pack an operation works on: either a record the caller already
// loaded or a bare id that still has to be looked up.
type PackRef struct {
	pack *model.Pack
	id   int64
}

func LoadedPack(pack *model.Pack) PackRef {
	return PackRef{pack: pack}
}

func PackByID(id int64) PackRef {
	return PackRef{id: id}
}

// resolve returns the loaded record, or looks the id up selecting only columns.
func (r PackRef) resolve(ctx context.Context, packs PackStore, columns ...string) (*model.Pack, error) {
	if r.pack != nil {
		return r.pack, nil
	}
	if r.id == 0 {
		return nil, errors.New("pack reference is empty")
	}
	return packs.FindByID(ctx, r.id, columns...)
}
