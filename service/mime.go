package service

import (
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// DetectMimeType sniffs the content type of data. The declared type is only
// used when the content is not recognised.
func DetectMimeType(data []byte, declared string) string {
	if len(data) > 0 {
		detected := mimetype.Detect(data)
		if !detected.Is("application/octet-stream") {
			mediaType, _, _ := strings.Cut(detected.String(), ";")
			return strings.TrimSpace(mediaType)
		}
	}

	mediaType, _, _ := strings.Cut(declared, ";")
	return strings.ToLower(strings.TrimSpace(mediaType))
}

// attachmentFilename names a screenshot after its content type
func attachmentFilename(mimeType string) string {
	ext := ""
	if m := mimetype.Lookup(mimeType); m != nil {
		ext = m.Extension()
	}
	if ext == "" {
		_, sub, ok := strings.Cut(mimeType, "/")
		if !ok || sub == "" {
			sub = "jpg"
		}
		ext = "." + sub
	}
	return "payment-screenshot" + ext
}
