package service

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/studynotes/storefront.api/models"
)

// MaxAttachmentBytes is the largest screenshot the relay accepts (10 MiB)
const MaxAttachmentBytes int64 = 10 * 1024 * 1024

var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var nonDigits = regexp.MustCompile(`\D`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// local@domain.tld, deliberately permissive
	v.RegisterValidation("emailshape", func(fl validator.FieldLevel) bool {
		return emailShape.MatchString(fl.Field().String())
	})
	return v
}

// human readable names for validated struct fields
var fieldNames = map[string]string{
	"FullName":      "full name",
	"Email":         "email address",
	"ContactNumber": "contact number",
	"Name":          "name",
	"Subject":       "subject",
	"Category":      "category",
	"Message":       "message",
}

// ValidationPolicy holds the rules a form is validated against. The checkout
// and contact forms share the same rules apart from whether a phone number is
// mandatory.
type ValidationPolicy struct {
	RequirePhone   bool
	MinPhoneDigits int
	MaxPhoneDigits int
	// AllowIndiaCountryCode accepts 12 digit numbers starting with 91. This is
	// already inside the 10-15 range and is kept as an explicit rule in case
	// the range is narrowed.
	AllowIndiaCountryCode bool
}

// VerificationPolicy applies to payment verification submissions
var VerificationPolicy = ValidationPolicy{
	RequirePhone:          true,
	MinPhoneDigits:        10,
	MaxPhoneDigits:        15,
	AllowIndiaCountryCode: true,
}

// ContactPolicy applies to contact inquiries, where the phone is optional
var ContactPolicy = ValidationPolicy{
	RequirePhone:          false,
	MinPhoneDigits:        10,
	MaxPhoneDigits:        15,
	AllowIndiaCountryCode: true,
}

// PhoneDigits strips everything but digits from a phone number
func PhoneDigits(phone string) string {
	return nonDigits.ReplaceAllString(phone, "")
}

// ValidPhone reports whether phone satisfies the policy's digit rules
func (p ValidationPolicy) ValidPhone(phone string) bool {
	digits := PhoneDigits(phone)

	if p.AllowIndiaCountryCode && len(digits) == 12 && strings.HasPrefix(digits, "91") {
		return true
	}

	return len(digits) >= p.MinPhoneDigits && len(digits) <= p.MaxPhoneDigits
}

// ValidateBuyer checks the buyer identity fields
func (p ValidationPolicy) ValidateBuyer(buyer models.BuyerInfo) error {
	if err := validateStruct(buyer); err != nil {
		return err
	}
	return p.validatePhone(buyer.ContactNumber)
}

// ValidateInquiry checks a contact inquiry
func (p ValidationPolicy) ValidateInquiry(inquiry models.ContactInquiry) error {
	if err := validateStruct(inquiry); err != nil {
		return err
	}
	return p.validatePhone(inquiry.Phone)
}

func (p ValidationPolicy) validatePhone(phone string) error {
	if phone == "" {
		if p.RequirePhone {
			return &ValidationError{Field: "ContactNumber", Reason: "contact number is required"}
		}
		return nil
	}
	if !p.ValidPhone(phone) {
		return &ValidationError{
			Field:  "ContactNumber",
			Reason: fmt.Sprintf("please enter a valid phone number of %d-%d digits (e.g., +91 98765 43210)", p.MinPhoneDigits, p.MaxPhoneDigits),
		}
	}
	return nil
}

func validateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("error validating request: [%w]", err)
	}

	fe := fieldErrs[0]
	name, ok := fieldNames[fe.Field()]
	if !ok {
		name = strings.ToLower(fe.Field())
	}

	switch fe.Tag() {
	case "required":
		return &ValidationError{Field: fe.Field(), Reason: name + " is required"}
	case "emailshape":
		return &ValidationError{Field: fe.Field(), Reason: "please enter a valid email address"}
	case "oneof":
		return &ValidationError{Field: fe.Field(), Reason: fmt.Sprintf("%s must be one of: %s", name, fe.Param())}
	default:
		return &ValidationError{Field: fe.Field(), Reason: fmt.Sprintf("%s is invalid", name)}
	}
}

// ValidateEvidence checks that exactly one evidence variant is present and
// that uploaded files are images within the size limit.
func ValidateEvidence(evidence models.PaymentEvidence) error {
	if evidence.File == nil && evidence.URL == nil {
		return &ValidationError{Field: "evidence", Reason: "please upload your payment screenshot or paste a public image URL"}
	}
	if evidence.File != nil && evidence.URL != nil {
		return &ValidationError{Field: "evidence", Reason: "supply either a screenshot file or an image URL, not both"}
	}

	if file := evidence.File; file != nil {
		if file.Size() > MaxAttachmentBytes {
			return &PayloadTooLargeError{Size: file.Size(), Limit: MaxAttachmentBytes}
		}
		if file.Size() == 0 {
			return &ValidationError{Field: "screenshot", Reason: "the uploaded screenshot is empty"}
		}
		if !strings.HasPrefix(file.MimeType, "image/") {
			return &ValidationError{Field: "screenshot", Reason: "please upload an image file"}
		}
		return nil
	}

	raw := strings.TrimSpace(evidence.URL.URL)
	if raw == "" {
		return &ValidationError{Field: "image_url", Reason: "please paste a public image URL to your payment screenshot"}
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return &ValidationError{Field: "image_url", Reason: "the screenshot URL must be a public http or https link"}
	}
	return nil
}

// ValidateIntent checks the product context built from the catalog
func ValidateIntent(intent models.PurchaseIntent) error {
	if intent.ProductID == "" || intent.ProductTitle == "" {
		return &ValidationError{Field: "product_id", Reason: "a product must be selected for purchase"}
	}
	if intent.Amount.IsNegative() {
		return &ValidationError{Field: "amount", Reason: "product amount cannot be negative"}
	}
	return nil
}
