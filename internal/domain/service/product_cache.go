package service

import (
	"context"

	"catalog/internal/domain/entity"
)

// ProductCache stores storefront product reads. A miss returns (nil, nil).
type ProductCache interface {
	GetProduct(ctx context.Context, productID int64) (*entity.Product, error)
	SetProduct(ctx context.Context, product *entity.Product) error
	InvalidateProduct(ctx context.Context, productID int64) error
}
