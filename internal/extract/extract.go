// Package extract turns uploaded PDFs and images into plain text.
package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"mime"
	"net/http"
	"strings"

	"github.com/ledongthuc/pdf"

	"techiehelp/internal/logging"
)

// ErrUnsupportedMediaKind is returned for uploads that are neither PDF nor a
// supported image.
var ErrUnsupportedMediaKind = errors.New("unsupported media kind")

// Kind classifies an upload by its MIME type.
type Kind int

const (
	KindUnsupported Kind = iota
	KindPDF
	KindImage
)

func (k Kind) String() string {
	switch k {
	case KindPDF:
		return "pdf"
	case KindImage:
		return "image"
	default:
		return "unsupported"
	}
}

// KindOf maps a declared MIME type to a Kind. Parameters such as charset are ignored.
func KindOf(mimeType string) Kind {
	mediaType, _, err := mime.ParseMediaType(mimeType)
	if err != nil {
		mediaType = strings.ToLower(strings.TrimSpace(mimeType))
	}
	switch mediaType {
	case "application/pdf":
		return KindPDF
	case "image/jpeg", "image/jpg", "image/png":
		return KindImage
	default:
		return KindUnsupported
	}
}

// OCR recognises text in an encoded image.
type OCR interface {
	Recognize(ctx context.Context, img []byte) (string, error)
}

// Extractor converts uploads to text.
type Extractor struct {
	ocr OCR
}

// New creates an extractor; a nil ocr selects DefaultOCR.
func New(ocr OCR) *Extractor {
	if ocr == nil {
		ocr = DefaultOCR()
	}
	return &Extractor{ocr: ocr}
}

// ExtractText returns the text of data. An empty mimeType is sniffed from the content.
func (e *Extractor) ExtractText(ctx context.Context, data []byte, mimeType string) (string, error) {
	timer := logging.StartTimer(logging.CategoryExtract, "ExtractText")
	defer timer.Stop()

	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}

	kind := KindOf(mimeType)
	logging.ExtractDebug("Extracting %s upload: mime=%s bytes=%d", kind, mimeType, len(data))

	switch kind {
	case KindPDF:
		return PDFText(data)
	case KindImage:
		return e.imageText(ctx, data)
	default:
		logging.ExtractWarn("Rejected upload with mime=%s", mimeType)
		return "", fmt.Errorf("%w: %s", ErrUnsupportedMediaKind, mimeType)
	}
}

func (e *Extractor) imageText(ctx context.Context, data []byte) (string, error) {
	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}
	text, err := e.ocr.Recognize(ctx, data)
	if err != nil {
		return "", fmt.Errorf("ocr: %w", err)
	}
	return text, nil
}

// PDFText concatenates the plain text of every page in page order.
func PDFText(data []byte) (text string, err error) {
	// The pdf package panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("read pdf: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("page %d: %w", i, err)
		}
		b.WriteString(pageText)
	}

	logging.ExtractDebug("Extracted %d chars from %d pages", b.Len(), r.NumPage())
	return b.String(), nil
}
