package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/studynotes/storefront.api/models"
)

//go:generate mockgen -source=relay.go -destination=mock_relay.go -package=service

// AttachmentField is the multipart field name Web3Forms reads files from
const AttachmentField = "attachments[]"

// Relay delivers an assembled form to the email relay provider
type Relay interface {
	Send(ctx context.Context, form *Form) (*models.RelayResponse, error)
}

type formField struct {
	name  string
	value string
}

// Form is an ordered multipart submission with at most one attachment
type Form struct {
	fields     []formField
	attachment *models.Attachment
}

// Add appends a text field
func (f *Form) Add(name, value string) {
	f.fields = append(f.fields, formField{name: name, value: value})
}

// AddIf appends a text field when value is not empty
func (f *Form) AddIf(name, value string) {
	if value != "" {
		f.Add(name, value)
	}
}

// Get returns the first value for name
func (f *Form) Get(name string) string {
	for _, field := range f.fields {
		if field.name == name {
			return field.value
		}
	}
	return ""
}

// Attach sets the binary attachment
func (f *Form) Attach(a *models.Attachment) {
	f.attachment = a
}

// Attachment returns the attachment, or nil for text-only submissions
func (f *Form) Attachment() *models.Attachment {
	return f.attachment
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// Encode writes the form as multipart/form-data and returns the body along
// with its content type
func (f *Form) Encode() (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for _, field := range f.fields {
		if err := writer.WriteField(field.name, field.value); err != nil {
			return nil, "", fmt.Errorf("error writing form field [%s]: [%w]", field.name, err)
		}
	}

	if a := f.attachment; a != nil {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
			quoteEscaper.Replace(AttachmentField), quoteEscaper.Replace(a.Filename)))
		h.Set("Content-Type", a.MimeType)

		part, err := writer.CreatePart(h)
		if err != nil {
			return nil, "", fmt.Errorf("error creating attachment part: [%w]", err)
		}
		if _, err := part.Write(a.Data); err != nil {
			return nil, "", fmt.Errorf("error writing attachment: [%w]", err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("error closing multipart writer: [%w]", err)
	}

	return body, writer.FormDataContentType(), nil
}

// Web3FormsClient posts forms to the Web3Forms submit endpoint
type Web3FormsClient struct {
	URL        string
	HTTPClient *http.Client
}

// NewWeb3FormsClient creates a client with the given request timeout
func NewWeb3FormsClient(url string, timeout time.Duration) *Web3FormsClient {
	return &Web3FormsClient{
		URL:        url,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// Send issues a single POST with the encoded form. A response that decodes is
// returned even when its status is not 2xx, the success flag is authoritative.
func (c *Web3FormsClient) Send(ctx context.Context, form *Form) (*models.RelayResponse, error) {
	body, contentType, err := form.Encode()
	if err != nil {
		return nil, err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, body)
	if err != nil {
		return nil, fmt.Errorf("error generating request for Web3Forms: [%w]", err)
	}
	request.Header.Set("Content-Type", contentType)
	request.Header.Set("Accept", "application/json")

	client := c.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("error sending request to Web3Forms: [%w]", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response from Web3Forms: [%w]", err)
	}

	relayResponse := &models.RelayResponse{}
	if err := json.Unmarshal(respBody, relayResponse); err != nil {
		return nil, fmt.Errorf("error reading response from Web3Forms, status [%d]: [%w]", resp.StatusCode, err)
	}

	return relayResponse, nil
}
