package repository

import (
	"context"

	"github.com/AmbroseMMoore/pixel-commerce-nexus-sub000/internal/domain/model"
)

type AddressRepository interface {
	Create(ctx context.Context, addr model.Address) (int64, error)
	FindByID(ctx context.Context, addressID int64) (model.Address, error)
}
