package repository

import (
	"context"
	"errors"

	"github.com/AmbroseMMoore/pixel-commerce-nexus-sub000/internal/domain/model"
	repo "github.com/AmbroseMMoore/pixel-commerce-nexus-sub000/internal/repository"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

func (r *ProductGormRepository) FindByID(ctx context.Context, productID int64) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Where("id = ?", productID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

type VariantGormRepository struct {
	db *gorm.DB
}

func NewVariantGormRepository(db *gorm.DB) *VariantGormRepository {
	return &VariantGormRepository{db: db}
}

func (r *VariantGormRepository) FindSize(ctx context.Context, sizeID int64) (model.Size, error) {
	var s model.Size
	err := r.db.WithContext(ctx).Where("id = ?", sizeID).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Size{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Size{}, err
	}
	return s, nil
}

func (r *VariantGormRepository) FindColor(ctx context.Context, colorID int64) (model.Color, error) {
	var c model.Color
	err := r.db.WithContext(ctx).Where("id = ?", colorID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Color{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Color{}, err
	}
	return c, nil
}
