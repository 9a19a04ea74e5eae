//go:generate mockgen -source=dao.go -destination=mock_dao.go -package=dao

package dao

import (
	"context"

	"github.com/studynotes/storefront.api/models"
)

// DAO is an interface for accessing the product catalog from a backend store
type DAO interface {
	GetProduct(ctx context.Context, id string) (*models.ProductDB, error)
	ListProducts(ctx context.Context) ([]models.ProductDB, error)
}
