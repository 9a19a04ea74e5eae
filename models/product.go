package models

import "github.com/shopspring/decimal"

// ProductDB is a catalog entry as stored in the DB
type ProductDB struct {
	ID          string   `bson:"_id"`
	Position    int      `bson:"position"`
	Title       string   `bson:"title"`
	Description string   `bson:"description"`
	Price       string   `bson:"price"`
	Category    string   `bson:"category"`
	Tags        []string `bson:"tags,omitempty"`
	Type        string   `bson:"type,omitempty"`
	Level       string   `bson:"level,omitempty"`
	Format      string   `bson:"format,omitempty"`
	Pages       int      `bson:"pages,omitempty"`
	Image       string   `bson:"image,omitempty"`
	Featured    bool     `bson:"featured,omitempty"`
}

// ProductRest is the public facing catalog entry returned in responses
type ProductRest struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Price          decimal.Decimal `json:"price"`
	FormattedPrice string          `json:"formatted_price"`
	Category       string          `json:"category"`
	Tags           []string        `json:"tags,omitempty"`
	Type           ProductType     `json:"type"`
	Level          string          `json:"level,omitempty"`
	Format         string          `json:"format,omitempty"`
	Pages          int             `json:"pages,omitempty"`
	Image          string          `json:"image,omitempty"`
	Featured       bool            `json:"featured"`
}

// ProductFilter narrows catalog listings
type ProductFilter struct {
	Query    string
	Category string
}
