package repository

import (
	"context"
	"errors"

	"github.com/AmbroseMMoore/pixel-commerce-nexus-sub000/internal/domain/model"
	repo "github.com/AmbroseMMoore/pixel-commerce-nexus-sub000/internal/repository"

	"gorm.io/gorm"
)

type AddressGormRepository struct {
	db *gorm.DB
}

func NewAddressGormRepository(db *gorm.DB) *AddressGormRepository {
	return &AddressGormRepository{db: db}
}

func (r *AddressGormRepository) Create(ctx context.Context, addr model.Address) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&addr).Error; err != nil {
		return 0, err
	}
	return addr.ID, nil
}

func (r *AddressGormRepository) FindByID(ctx context.Context, addressID int64) (model.Address, error) {
	var a model.Address
	err := r.db.WithContext(ctx).Where("id = ?", addressID).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Address{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Address{}, err
	}
	return a, nil
}
