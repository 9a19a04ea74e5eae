package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/companieshouse/chs.go/log"
	"github.com/google/uuid"
	"github.com/studynotes/storefront.api/config"
	"github.com/studynotes/storefront.api/models"
	"github.com/studynotes/storefront.api/utils"
	"golang.org/x/sync/singleflight"
)

const (
	verificationSubject = "New Payment Verification Submitted"
	contactSubject      = "New Contact Inquiry: "

	defaultVerificationFailure = "Failed to send email"
	defaultContactFailure      = "Failed to send contact message"

	urlFallbackHint = " The image URL was included instead of an attachment because it could not be fetched."

	// UploadBlockedAdvice is shown when the provider appears to reject uploads
	UploadBlockedAdvice = "Uploads appear to be blocked. Switch to pasting a public image URL and submit again, the link will be included in the email."
)

// SubmissionService validates checkout and contact forms and relays them to
// the site owner's inbox
type SubmissionService struct {
	AccessKey          string
	NotifyTo           string
	AttachFromImageURL bool

	Relay     Relay
	Fetcher   ImageFetcher
	Publisher EventPublisher

	VerificationPolicy ValidationPolicy
	ContactPolicy      ValidationPolicy

	inFlight singleflight.Group
}

// NewSubmissionService builds a service from configuration. Events are only
// published when brokers are configured.
func NewSubmissionService(cfg config.Config, relay Relay, fetcher ImageFetcher) *SubmissionService {
	s := &SubmissionService{
		AccessKey:          cfg.RelayAccessKey,
		NotifyTo:           cfg.NotifyTo,
		AttachFromImageURL: cfg.AttachFromImageURL,
		Relay:              relay,
		Fetcher:            fetcher,
		VerificationPolicy: VerificationPolicy,
		ContactPolicy:      ContactPolicy,
	}
	if len(cfg.BrokerAddr) > 0 {
		s.Publisher = &KafkaPublisher{BrokerAddrs: cfg.BrokerAddr, SchemaRegistryURL: cfg.SchemaRegistryURL}
	}
	return s
}

// CheckVerification reports configuration and buyer input problems in the
// order SubmitVerification does, so callers can reject a request before
// resolving its product
func (s *SubmissionService) CheckVerification(buyer models.BuyerInfo, evidence models.PaymentEvidence) error {
	if err := s.checkConfigured(); err != nil {
		return err
	}
	if err := s.VerificationPolicy.ValidateBuyer(buyer); err != nil {
		return err
	}
	return ValidateEvidence(evidence)
}

func (s *SubmissionService) checkConfigured() error {
	if s.AccessKey == "" {
		return &ConfigurationError{Reason: "WEB3FORMS_ACCESS_KEY is not set"}
	}
	if strings.HasPrefix(s.AccessKey, "REPLACE_") {
		return &ConfigurationError{Reason: "WEB3FORMS_ACCESS_KEY is still a placeholder"}
	}
	if s.Relay == nil {
		return &ConfigurationError{Reason: "no relay client"}
	}
	return nil
}

// ValidateVerification runs every precondition of SubmitVerification without
// side effects
func (s *SubmissionService) ValidateVerification(buyer models.BuyerInfo, evidence models.PaymentEvidence, intent models.PurchaseIntent) error {
	if err := s.VerificationPolicy.ValidateBuyer(buyer); err != nil {
		return err
	}
	if err := ValidateEvidence(evidence); err != nil {
		return err
	}
	return ValidateIntent(intent)
}

// SubmitVerification relays a payment verification to the site owner. Nothing
// is sent unless configuration and input are valid. An identical submission
// arriving while one is in flight shares its outcome instead of sending a
// second email.
func (s *SubmissionService) SubmitVerification(ctx context.Context, buyer models.BuyerInfo, evidence models.PaymentEvidence, intent models.PurchaseIntent) (*models.SubmissionResult, error) {
	if err := s.checkConfigured(); err != nil {
		return nil, err
	}
	if err := s.ValidateVerification(buyer, evidence, intent); err != nil {
		return nil, err
	}

	// shared work outlives the caller that started it
	shareCtx := context.WithoutCancel(ctx)
	v, err, shared := s.inFlight.Do(verificationKey(buyer, evidence, intent), func() (interface{}, error) {
		return s.sendVerification(shareCtx, buyer, evidence, intent)
	})
	if shared {
		log.Info("duplicate verification shared an in-flight submission", log.Data{"product_id": intent.ProductID})
	}
	if err != nil {
		return nil, err
	}

	result := *v.(*models.SubmissionResult)
	return &result, nil
}

func (s *SubmissionService) sendVerification(ctx context.Context, buyer models.BuyerInfo, evidence models.PaymentEvidence, intent models.PurchaseIntent) (*models.SubmissionResult, error) {
	reference := uuid.NewString()
	form := s.newForm(verificationSubject, buyer.FullName, buyer.Email)

	var imageURL string
	if evidence.URL != nil {
		imageURL = strings.TrimSpace(evidence.URL.URL)
	}

	attached := false
	expectAttachment := false
	switch {
	case evidence.File != nil:
		form.Attach(&models.Attachment{
			Filename: fileName(evidence.File),
			MimeType: evidence.File.MimeType,
			Data:     evidence.File.Data,
		})
		attached = true
	case s.AttachFromImageURL && s.Fetcher != nil:
		expectAttachment = true
		if a, ok := s.Fetcher.Fetch(ctx, imageURL); ok {
			form.Attach(a)
			attached = true
		}
	}

	amount := utils.FormatINR(intent.Amount)

	form.Add("message", verificationMessage(buyer, intent, amount, imageURL, reference, attached))
	form.Add("Buyer Name", buyer.FullName)
	form.Add("Buyer Email", buyer.Email)
	form.Add("Buyer Phone", buyer.ContactNumber)
	form.AddIf("Note ID", intent.ProductID)
	form.Add("Note Title", intent.ProductTitle)
	form.Add("Amount (INR)", amount)
	form.AddIf("Screenshot URL", imageURL)
	form.Add("Reference", reference)

	hint := ""
	if expectAttachment && !attached {
		hint = urlFallbackHint
	}

	result, err := s.deliver(ctx, form, defaultVerificationFailure, hint)
	if err != nil {
		return nil, err
	}
	result.Reference = reference
	result.Attached = attached

	if s.Publisher != nil {
		if err := s.Publisher.PublishVerificationSubmitted(*result, intent); err != nil {
			log.Error(fmt.Errorf("error publishing verification submitted event: [%v]", err), log.Data{"reference": reference})
		}
	}

	log.Info("payment verification relayed", log.Data{
		"reference":  reference,
		"product_id": intent.ProductID,
		"attached":   attached,
	})

	return result, nil
}

// SubmitContactInquiry relays a support message. It shares transport and
// response handling with SubmitVerification and never carries an attachment.
func (s *SubmissionService) SubmitContactInquiry(ctx context.Context, inquiry models.ContactInquiry) (*models.SubmissionResult, error) {
	if err := s.checkConfigured(); err != nil {
		return nil, err
	}
	if err := s.ContactPolicy.ValidateInquiry(inquiry); err != nil {
		return nil, err
	}

	shareCtx := context.WithoutCancel(ctx)
	v, err, _ := s.inFlight.Do(contactKey(inquiry), func() (interface{}, error) {
		form := s.newForm(contactSubject+inquiry.Subject, inquiry.Name, inquiry.Email)
		form.Add("message", contactMessage(inquiry))
		form.Add("Sender Name", inquiry.Name)
		form.Add("Sender Email", inquiry.Email)
		form.AddIf("Sender Phone", inquiry.Phone)
		form.Add("Category", inquiry.Category)
		form.Add("Subject", inquiry.Subject)
		form.Add("Message", inquiry.Message)

		return s.deliver(shareCtx, form, defaultContactFailure, "")
	})
	if err != nil {
		return nil, err
	}

	result := *v.(*models.SubmissionResult)
	return &result, nil
}

// newForm starts a submission with the credential, recipient override and
// the standard sender fields
func (s *SubmissionService) newForm(subject, fromName, fromEmail string) *Form {
	form := &Form{}
	form.Add("access_key", s.AccessKey)
	form.AddIf("to", s.NotifyTo)
	form.Add("subject", subject)
	form.Add("from_name", fromName)
	form.Add("from_email", fromEmail)
	form.Add("replyto", fromEmail)
	return form
}

// deliver sends the form once and interprets the provider's success flag
func (s *SubmissionService) deliver(ctx context.Context, form *Form, defaultFailure, hint string) (*models.SubmissionResult, error) {
	resp, err := s.Relay.Send(ctx, form)
	if err != nil {
		return nil, &DeliveryFailure{Message: "error delivering submission", Err: err}
	}

	if !resp.Success {
		msg := resp.Message
		if msg == "" {
			msg = defaultFailure
		}
		return nil, &DeliveryFailure{Message: msg, Hint: hint}
	}

	return &models.SubmissionResult{Success: true, Message: resp.Message}, nil
}

// verificationKey identifies a verification by everything that would be sent,
// so only identical submissions are merged
func verificationKey(buyer models.BuyerInfo, evidence models.PaymentEvidence, intent models.PurchaseIntent) string {
	parts := []string{
		"verification",
		strings.ToLower(buyer.Email),
		buyer.FullName,
		buyer.ContactNumber,
		intent.ProductID,
		intent.ProductTitle,
		intent.Amount.String(),
		string(intent.ProductType),
	}
	if evidence.URL != nil {
		parts = append(parts, "url", strings.TrimSpace(evidence.URL.URL))
	}
	if evidence.File != nil {
		data := sha256.Sum256(evidence.File.Data)
		parts = append(parts, "file", evidence.File.Filename, evidence.File.MimeType, hex.EncodeToString(data[:]))
	}
	return digest(parts)
}

func contactKey(inquiry models.ContactInquiry) string {
	return digest([]string{
		"contact",
		strings.ToLower(inquiry.Email),
		inquiry.Name,
		inquiry.Phone,
		inquiry.Category,
		inquiry.Subject,
		inquiry.Message,
	})
}

// digest length-prefixes each part so adjacent values cannot run together
func digest(parts []string) string {
	h := sha256.New()
	for _, p := range parts {
		fmt.Fprintf(h, "%d:%s|", len(p), p)
	}
	return hex.EncodeToString(h.Sum(nil))
}

func fileName(file *models.FileEvidence) string {
	if file.Filename != "" {
		return file.Filename
	}
	return attachmentFilename(file.MimeType)
}

func verificationMessage(buyer models.BuyerInfo, intent models.PurchaseIntent, amount, imageURL, reference string, attached bool) string {
	lines := []string{
		"A new payment verification has been submitted.",
		"",
		"Reference: " + reference,
		"Buyer: " + buyer.FullName,
		"Email: " + buyer.Email,
		"Phone: " + buyer.ContactNumber,
	}
	if intent.ProductID != "" {
		lines = append(lines, "Note ID: "+intent.ProductID)
	}
	lines = append(lines, "Note Title: "+intent.ProductTitle)
	if intent.ProductType != "" {
		lines = append(lines, "Product Type: "+string(intent.ProductType))
	}
	lines = append(lines, "Amount: "+amount)
	if imageURL != "" {
		lines = append(lines, "Screenshot URL: "+imageURL+" (attached only if allowed)")
	}
	lines = append(lines, "")
	if attached {
		lines = append(lines, "The payment screenshot is attached to this email.")
	} else {
		lines = append(lines, "No attachment was included, open the screenshot URL above to verify the payment.")
	}
	return strings.Join(lines, "\n")
}

func contactMessage(inquiry models.ContactInquiry) string {
	lines := []string{
		"A new contact inquiry has been submitted.",
		"",
		"Name: " + inquiry.Name,
		"Email: " + inquiry.Email,
	}
	if inquiry.Phone != "" {
		lines = append(lines, "Phone: "+inquiry.Phone)
	}
	lines = append(lines,
		"Category: "+inquiry.Category,
		"",
		"Message:",
		inquiry.Message,
	)
	return strings.Join(lines, "\n")
}
