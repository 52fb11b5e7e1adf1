package service

import (
	"context"

	"pack-panel/backend/model"

	"github.com/google/uuid"
)

// PackData is the caller supplied content of a new pack.
type PackData struct {
	OptionID    int64
	Name        string
	Version     string
	Description string
	Selectable  bool
	Visible     bool
	Locked      bool
}

type PackCreationService struct {
	packs   PackStore
	options ServiceOptionStore
}

func NewPackCreationService(packs PackStore, options ServiceOptionStore) *PackCreationService {
	return &PackCreationService{packs: packs, options: options}
}

// Handle checks the option exists, then inserts the pack under a fresh UUID.
func (s *PackCreationService) Handle(ctx context.Context, data PackData) (pack *model.Pack, err error) {
	defer func() { observe("create", err) }()

	if _, err := s.options.FindByID(ctx, data.OptionID); err != nil {
		return nil, err
	}

	pack = &model.Pack{
		UUID:        uuid.NewString(),
		OptionID:    data.OptionID,
		Name:        data.Name,
		Version:     data.Version,
		Description: data.Description,
		Selectable:  data.Selectable,
		Visible:     data.Visible,
		Locked:      data.Locked,
	}
	if err := s.packs.Create(ctx, pack); err != nil {
		return nil, err
	}
	return pack, nil
}
