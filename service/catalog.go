package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/companieshouse/chs.go/log"
	"github.com/studynotes/storefront.api/dao"
	"github.com/studynotes/storefront.api/mappers"
	"github.com/studynotes/storefront.api/models"
)

// AllCategories matches every product when used as a category filter
const AllCategories = "All"

// CatalogService answers storefront listing queries and resolves the product a
// checkout is for
type CatalogService struct {
	DAO dao.DAO
}

// ListProducts returns the products matching the filter in catalog order. The
// query is matched case-insensitively against title, description and tags.
func (s *CatalogService) ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.ProductRest, error) {
	products, err := s.DAO.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing products: [%w]", err)
	}

	query := strings.ToLower(strings.TrimSpace(filter.Query))
	category := strings.TrimSpace(filter.Category)

	results := []models.ProductRest{}
	for _, product := range products {
		if category != "" && category != AllCategories && product.Category != category {
			continue
		}
		if query != "" && !matches(product, query) {
			continue
		}

		rest, err := mappers.MapToProductRest(product)
		if err != nil {
			log.Error(err, log.Data{"product_id": product.ID})
			continue
		}
		results = append(results, rest)
	}

	return results, nil
}

func matches(product models.ProductDB, query string) bool {
	if strings.Contains(strings.ToLower(product.Title), query) ||
		strings.Contains(strings.ToLower(product.Description), query) {
		return true
	}
	for _, tag := range product.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

// GetProduct returns a single product, or ErrProductNotFound
func (s *CatalogService) GetProduct(ctx context.Context, id string) (*models.ProductRest, error) {
	product, err := s.DAO.GetProduct(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error getting product: [%w]", err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	rest, err := mappers.MapToProductRest(*product)
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

// ListCategories returns "All" followed by each category in the order it
// first appears in the catalog
func (s *CatalogService) ListCategories(ctx context.Context) ([]string, error) {
	products, err := s.DAO.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing categories: [%w]", err)
	}

	categories := []string{AllCategories}
	seen := map[string]bool{}
	for _, product := range products {
		if product.Category == "" || seen[product.Category] {
			continue
		}
		seen[product.Category] = true
		categories = append(categories, product.Category)
	}

	return categories, nil
}

// PurchaseIntentFor resolves the checkout context for a product id, so the
// amount relayed to the owner always comes from the catalog
func (s *CatalogService) PurchaseIntentFor(ctx context.Context, id string) (models.PurchaseIntent, error) {
	if strings.TrimSpace(id) == "" {
		return models.PurchaseIntent{}, &ValidationError{Field: "product_id", Reason: "a product must be selected for purchase"}
	}

	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return models.PurchaseIntent{}, err
	}

	return mappers.MapToPurchaseIntent(*product), nil
}
