package models

import "github.com/shopspring/decimal"

// ProductType distinguishes the kinds of item sold in the storefront
type ProductType string

// Product types
const (
	ProductTypeCourse ProductType = "course"
	ProductTypeNote   ProductType = "note"
)

// PurchaseIntent is the product context a verification is submitted against.
// It is built from the catalog, never from client supplied prices.
type PurchaseIntent struct {
	ProductID    string
	ProductTitle string
	Amount       decimal.Decimal
	ProductType  ProductType
}

// BuyerInfo holds the identity fields collected on the checkout form
type BuyerInfo struct {
	FullName      string `validate:"required"`
	Email         string `validate:"required,emailshape"`
	ContactNumber string
}
