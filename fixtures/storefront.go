package fixtures

import (
	"github.com/shopspring/decimal"
	"github.com/studynotes/storefront.api/models"
)

// PNGHeader is enough of a PNG for content sniffing to recognise it
var PNGHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func GetBuyerInfo() models.BuyerInfo {
	return models.BuyerInfo{
		FullName:      "Asha Verma",
		Email:         "asha@example.com",
		ContactNumber: "+91 98765 43210",
	}
}

func GetPurchaseIntent() models.PurchaseIntent {
	return models.PurchaseIntent{
		ProductID:    "n2",
		ProductTitle: "Data Structures & Algorithms Handbook",
		Amount:       decimal.NewFromInt(499),
		ProductType:  models.ProductTypeNote,
	}
}

func GetFileEvidence() models.PaymentEvidence {
	return models.PaymentEvidence{
		File: &models.FileEvidence{
			Filename: "upi.png",
			Data:     PNGHeader,
			MimeType: "image/png",
		},
	}
}

func GetURLEvidence(url string) models.PaymentEvidence {
	return models.PaymentEvidence{
		URL: &models.URLEvidence{URL: url},
	}
}

func GetContactInquiry() models.ContactInquiry {
	return models.ContactInquiry{
		Name:     "Ravi Kumar",
		Email:    "ravi@example.com",
		Subject:  "Cannot download notes",
		Category: "technical",
		Message:  "The download link on my order is not working.",
	}
}

func GetProductDB() models.ProductDB {
	return models.ProductDB{
		ID:          "n2",
		Position:    2,
		Title:       "Data Structures & Algorithms Handbook",
		Description: "Detailed notes on data structures, algorithms, and problem-solving techniques.",
		Price:       "499",
		Category:    "Computer Science",
		Tags:        []string{"Algorithms", "Data Structures"},
		Format:      "PDF",
		Pages:       200,
	}
}
