package service

import (
	"context"

	"pack-panel/backend/model"

	"github.com/stretchr/testify/mock"
)

type mockPackStore struct {
	mock.Mock
}

func (m *mockPackStore) FindByID(ctx context.Context, id int64, columns ...string) (*model.Pack, error) {
	args := m.Called(ctx, id, columns)
	pack, _ := args.Get(0).(*model.Pack)
	return pack, args.Error(1)
}

func (m *mockPackStore) UpdateByID(ctx context.Context, id int64, fields map[string]any, mode model.RefreshMode) (int64, error) {
	args := m.Called(ctx, id, fields, mode)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockPackStore) Create(ctx context.Context, pack *model.Pack) error {
	args := m.Called(ctx, pack)
	return args.Error(0)
}

func (m *mockPackStore) DeleteByID(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type mockServerStore struct {
	mock.Mock
}

func (m *mockServerStore) CountWhere(ctx context.Context, predicates ...model.Predicate) (int64, error) {
	args := m.Called(ctx, predicates)
	return args.Get(0).(int64), args.Error(1)
}

type mockServiceOptionStore struct {
	mock.Mock
}

func (m *mockServiceOptionStore) FindByID(ctx context.Context, id int64) (*model.ServiceOption, error) {
	args := m.Called(ctx, id)
	option, _ := args.Get(0).(*model.ServiceOption)
	return option, args.Error(1)
}

func packAttachment(id int64) []model.Predicate {
	return []model.Predicate{{Field: "pack_id", Operator: "=", Value: id}}
}
