package models

// PaymentEvidence is proof of a manual payment. Exactly one of File or URL is
// expected to be set.
type PaymentEvidence struct {
	File *FileEvidence
	URL  *URLEvidence
}

// FileEvidence is an uploaded payment screenshot
type FileEvidence struct {
	Filename  string
	Data      []byte
	MimeType  string
	SizeBytes int64
}

// Size returns the larger of the declared size and the buffered data length
func (f *FileEvidence) Size() int64 {
	if n := int64(len(f.Data)); n > f.SizeBytes {
		return n
	}
	return f.SizeBytes
}

// URLEvidence is a public image location asserted by the buyer
type URLEvidence struct {
	URL string
}

// Attachment is a binary part sent along with a relayed submission
type Attachment struct {
	Filename string
	MimeType string
	Data     []byte
}
