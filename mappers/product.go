package mappers

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/studynotes/storefront.api/models"
	"github.com/studynotes/storefront.api/utils"
)

// MapToProductRest converts a stored catalog entry into its public form
func MapToProductRest(product models.ProductDB) (models.ProductRest, error) {
	price, err := ParsePrice(product.Price)
	if err != nil {
		return models.ProductRest{}, fmt.Errorf("error mapping product [%s]: [%w]", product.ID, err)
	}

	return models.ProductRest{
		ID:             product.ID,
		Title:          product.Title,
		Description:    product.Description,
		Price:          price,
		FormattedPrice: utils.FormatINR(price),
		Category:       product.Category,
		Tags:           product.Tags,
		Type:           ProductTypeOf(product),
		Level:          product.Level,
		Format:         product.Format,
		Pages:          product.Pages,
		Image:          product.Image,
		Featured:       product.Featured,
	}, nil
}

// MapToPurchaseIntent builds the checkout context for a catalog entry
func MapToPurchaseIntent(product models.ProductRest) models.PurchaseIntent {
	return models.PurchaseIntent{
		ProductID:    product.ID,
		ProductTitle: product.Title,
		Amount:       product.Price,
		ProductType:  product.Type,
	}
}

// ParsePrice reads a stored price in rupees, e.g. "299" or "299.50"
func ParsePrice(price string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(price))
	if err != nil {
		return decimal.Zero, fmt.Errorf("error parsing price [%s]: [%w]", price, err)
	}
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("price [%s] is negative", price)
	}
	return amount, nil
}

// ProductTypeOf returns the stored type, falling back to the id convention
// where notes are prefixed with "n"
func ProductTypeOf(product models.ProductDB) models.ProductType {
	switch models.ProductType(product.Type) {
	case models.ProductTypeCourse, models.ProductTypeNote:
		return models.ProductType(product.Type)
	}
	if strings.HasPrefix(product.ID, "n") {
		return models.ProductTypeNote
	}
	return models.ProductTypeCourse
}
