package model

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

var ErrServiceOptionNotFound = errors.New("service option not found")

// ServiceOption is the configuration choice a pack is built for.
type ServiceOption struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:191;not null"`
	Description string    `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (o *ServiceOption) TableName() string {
	return "service_options"
}

type ServiceOptionRepository struct {
	db *gorm.DB
}

func NewServiceOptionRepository(db *gorm.DB) *ServiceOptionRepository {
	return &ServiceOptionRepository{db: db}
}

func (r *ServiceOptionRepository) Create(ctx context.Context, option *ServiceOption) error {
	if err := r.db.WithContext(ctx).Create(option).Error; err != nil {
		return fmt.Errorf("create service option: %w", err)
	}
	return nil
}

func (r *ServiceOptionRepository) FindByID(ctx context.Context, id int64) (*ServiceOption, error) {
	var option ServiceOption
	if err := r.db.WithContext(ctx).First(&option, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrServiceOptionNotFound, id)
		}
		return nil, fmt.Errorf("find service option %d: %w", id, err)
	}
	return &option, nil
}

func (r *ServiceOptionRepository) List(ctx context.Context) ([]*ServiceOption, error) {
	var options []*ServiceOption
	err := r.db.WithContext(ctx).Order("id asc").Find(&options).Error
	return options, err
}
