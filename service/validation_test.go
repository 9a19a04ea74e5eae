package service

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/studynotes/storefront.api/fixtures"
	"github.com/studynotes/storefront.api/models"
	. "github.com/smartystreets/goconvey/convey"
)

func validationReason(err error) string {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Reason
	}
	return ""
}

func TestUnitValidPhone(t *testing.T) {
	Convey("Phone numbers are judged on their digits", t, func() {
		So(VerificationPolicy.ValidPhone("9876543210"), ShouldBeTrue)
		So(VerificationPolicy.ValidPhone("+91 98765 43210"), ShouldBeTrue)
		So(VerificationPolicy.ValidPhone("(020) 7946-0958"), ShouldBeTrue)
		So(VerificationPolicy.ValidPhone("123456789012345"), ShouldBeTrue)
		So(VerificationPolicy.ValidPhone("98765"), ShouldBeFalse)
		So(VerificationPolicy.ValidPhone("1234567890123456"), ShouldBeFalse)
		So(VerificationPolicy.ValidPhone("phone"), ShouldBeFalse)
	})

	Convey("India country code branch", t, func() {
		narrow := ValidationPolicy{MinPhoneDigits: 10, MaxPhoneDigits: 10, AllowIndiaCountryCode: true}
		So(narrow.ValidPhone("+91 98765 43210"), ShouldBeTrue)
		So(narrow.ValidPhone("+44 7946 095812"), ShouldBeFalse)

		narrow.AllowIndiaCountryCode = false
		So(narrow.ValidPhone("+91 98765 43210"), ShouldBeFalse)
	})

	Convey("PhoneDigits strips formatting", t, func() {
		So(PhoneDigits("+91 (987) 654-3210"), ShouldEqual, "919876543210")
	})
}

func TestUnitValidateBuyer(t *testing.T) {
	Convey("Valid buyer", t, func() {
		So(VerificationPolicy.ValidateBuyer(fixtures.GetBuyerInfo()), ShouldBeNil)
	})

	Convey("Missing name", t, func() {
		buyer := fixtures.GetBuyerInfo()
		buyer.FullName = ""
		err := VerificationPolicy.ValidateBuyer(buyer)
		So(validationReason(err), ShouldEqual, "full name is required")
	})

	Convey("Missing email", t, func() {
		buyer := fixtures.GetBuyerInfo()
		buyer.Email = ""
		err := VerificationPolicy.ValidateBuyer(buyer)
		So(validationReason(err), ShouldEqual, "email address is required")
	})

	Convey("Malformed emails", t, func() {
		for _, email := range []string{"asha", "asha@example", "asha @example.com", "@example.com"} {
			buyer := fixtures.GetBuyerInfo()
			buyer.Email = email
			err := VerificationPolicy.ValidateBuyer(buyer)
			So(validationReason(err), ShouldEqual, "please enter a valid email address")
		}
	})

	Convey("Missing phone", t, func() {
		buyer := fixtures.GetBuyerInfo()
		buyer.ContactNumber = ""
		err := VerificationPolicy.ValidateBuyer(buyer)
		So(validationReason(err), ShouldEqual, "contact number is required")
	})

	Convey("Phone requirement follows the policy", t, func() {
		buyer := fixtures.GetBuyerInfo()
		buyer.ContactNumber = ""

		optional := VerificationPolicy
		optional.RequirePhone = false
		So(optional.ValidateBuyer(buyer), ShouldBeNil)
		So(ContactPolicy.ValidateBuyer(buyer), ShouldBeNil)
		So(validationReason(VerificationPolicy.ValidateBuyer(buyer)), ShouldEqual, "contact number is required")

		buyer.ContactNumber = "12345"
		So(validationReason(optional.ValidateBuyer(buyer)), ShouldStartWith, "please enter a valid phone number")
	})

	Convey("Short phone", t, func() {
		buyer := fixtures.GetBuyerInfo()
		buyer.ContactNumber = "12345"
		err := VerificationPolicy.ValidateBuyer(buyer)
		So(validationReason(err), ShouldEqual, "please enter a valid phone number of 10-15 digits (e.g., +91 98765 43210)")
	})

	Convey("Validation is repeatable", t, func() {
		buyer := fixtures.GetBuyerInfo()
		buyer.ContactNumber = "12345"
		first := VerificationPolicy.ValidateBuyer(buyer)
		second := VerificationPolicy.ValidateBuyer(buyer)
		So(first, ShouldResemble, second)
	})
}

func TestUnitValidateInquiry(t *testing.T) {
	Convey("Valid inquiry without phone", t, func() {
		So(ContactPolicy.ValidateInquiry(fixtures.GetContactInquiry()), ShouldBeNil)
	})

	Convey("Phone is validated when present", t, func() {
		inquiry := fixtures.GetContactInquiry()
		inquiry.Phone = "123"
		err := ContactPolicy.ValidateInquiry(inquiry)
		So(validationReason(err), ShouldStartWith, "please enter a valid phone number")

		inquiry.Phone = "9876543210"
		So(ContactPolicy.ValidateInquiry(inquiry), ShouldBeNil)
	})

	Convey("Unknown category", t, func() {
		inquiry := fixtures.GetContactInquiry()
		inquiry.Category = "refunds"
		err := ContactPolicy.ValidateInquiry(inquiry)
		So(validationReason(err), ShouldEqual, "category must be one of: technical billing course account general")
	})

	Convey("Missing message", t, func() {
		inquiry := fixtures.GetContactInquiry()
		inquiry.Message = ""
		err := ContactPolicy.ValidateInquiry(inquiry)
		So(validationReason(err), ShouldEqual, "message is required")
	})
}

func TestUnitValidateEvidence(t *testing.T) {
	Convey("No evidence", t, func() {
		err := ValidateEvidence(models.PaymentEvidence{})
		So(validationReason(err), ShouldEqual, "please upload your payment screenshot or paste a public image URL")
	})

	Convey("Both file and url", t, func() {
		evidence := fixtures.GetFileEvidence()
		evidence.URL = &models.URLEvidence{URL: "https://i.example.com/upi.png"}
		err := ValidateEvidence(evidence)
		So(validationReason(err), ShouldEqual, "supply either a screenshot file or an image URL, not both")
	})

	Convey("Valid file", t, func() {
		So(ValidateEvidence(fixtures.GetFileEvidence()), ShouldBeNil)
	})

	Convey("File at the limit is accepted", t, func() {
		evidence := models.PaymentEvidence{File: &models.FileEvidence{MimeType: "image/png", SizeBytes: MaxAttachmentBytes}}
		So(ValidateEvidence(evidence), ShouldBeNil)
	})

	Convey("File over the limit", t, func() {
		evidence := models.PaymentEvidence{File: &models.FileEvidence{MimeType: "image/png", SizeBytes: MaxAttachmentBytes + 1}}
		err := ValidateEvidence(evidence)
		var tooLarge *PayloadTooLargeError
		So(errors.As(err, &tooLarge), ShouldBeTrue)
		So(tooLarge.Size, ShouldEqual, MaxAttachmentBytes+1)
		So(err.Error(), ShouldEqual, "attachment too large: 10485761 bytes, max 10MB allowed")
	})

	Convey("Size is checked before type", t, func() {
		evidence := models.PaymentEvidence{File: &models.FileEvidence{MimeType: "application/pdf", SizeBytes: MaxAttachmentBytes + 1}}
		So(ResponseTypeFor(ValidateEvidence(evidence)), ShouldEqual, TooLarge)
	})

	Convey("Non image file", t, func() {
		evidence := models.PaymentEvidence{File: &models.FileEvidence{MimeType: "application/pdf", Data: []byte("%PDF-1.4")}}
		err := ValidateEvidence(evidence)
		So(validationReason(err), ShouldEqual, "please upload an image file")
	})

	Convey("Empty file", t, func() {
		evidence := models.PaymentEvidence{File: &models.FileEvidence{MimeType: "image/png"}}
		err := ValidateEvidence(evidence)
		So(validationReason(err), ShouldEqual, "the uploaded screenshot is empty")
	})

	Convey("Urls must be http or https", t, func() {
		So(ValidateEvidence(fixtures.GetURLEvidence("https://i.example.com/upi.png")), ShouldBeNil)
		So(ValidateEvidence(fixtures.GetURLEvidence("http://i.example.com/upi.png")), ShouldBeNil)

		for _, url := range []string{"ftp://i.example.com/upi.png", "javascript:alert(1)", "i.example.com/upi.png", "https://"} {
			err := ValidateEvidence(fixtures.GetURLEvidence(url))
			So(validationReason(err), ShouldEqual, "the screenshot URL must be a public http or https link")
		}
	})

	Convey("Blank url", t, func() {
		err := ValidateEvidence(fixtures.GetURLEvidence("   "))
		So(validationReason(err), ShouldEqual, "please paste a public image URL to your payment screenshot")
	})
}

func TestUnitValidateIntent(t *testing.T) {
	Convey("Valid intent", t, func() {
		So(ValidateIntent(fixtures.GetPurchaseIntent()), ShouldBeNil)
	})

	Convey("Missing product", t, func() {
		err := ValidateIntent(models.PurchaseIntent{})
		So(validationReason(err), ShouldEqual, "a product must be selected for purchase")
	})

	Convey("Negative amount", t, func() {
		intent := fixtures.GetPurchaseIntent()
		intent.Amount = decimal.NewFromInt(-1)
		err := ValidateIntent(intent)
		So(validationReason(err), ShouldEqual, "product amount cannot be negative")
	})
}
