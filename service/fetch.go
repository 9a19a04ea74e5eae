package service

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/studynotes/storefront.api/models"
)

// ImageFetcher retrieves a screenshot from a URL so it can be attached.
// Fetching is best effort: ok is false whenever the image cannot be used and
// the caller falls back to including the URL as text.
type ImageFetcher interface {
	Fetch(ctx context.Context, url string) (attachment *models.Attachment, ok bool)
}

// HTTPImageFetcher fetches screenshots over HTTP
type HTTPImageFetcher struct {
	HTTPClient *http.Client
}

// NewHTTPImageFetcher creates a fetcher with the given request timeout
func NewHTTPImageFetcher(timeout time.Duration) *HTTPImageFetcher {
	return &HTTPImageFetcher{HTTPClient: &http.Client{Timeout: timeout}}
}

// Fetch downloads url and returns it as an attachment when it is a non-empty
// image no larger than MaxAttachmentBytes
func (f *HTTPImageFetcher) Fetch(ctx context.Context, url string) (*models.Attachment, bool) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, false
	}
	request.Header.Set("Accept", "image/*")

	client := f.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(request)
	if err != nil {
		log.Info("screenshot url could not be fetched, sending url only", log.Data{"error": err.Error()})
		return nil, false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Info("screenshot url returned non-2xx status, sending url only", log.Data{"status": resp.StatusCode})
		return nil, false
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxAttachmentBytes+1))
	if err != nil || len(data) == 0 || int64(len(data)) > MaxAttachmentBytes {
		return nil, false
	}

	mimeType := DetectMimeType(data, resp.Header.Get("Content-Type"))
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, false
	}

	return &models.Attachment{
		Filename: attachmentFilename(mimeType),
		MimeType: mimeType,
		Data:     data,
	}, true
}
