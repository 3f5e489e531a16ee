//go:build tesseract

package extract

import (
	"context"
	"fmt"

	"github.com/otiai10/gosseract/v2"
)

// Tesseract runs OCR through the libtesseract bindings.
type Tesseract struct {
	Languages []string
}

// DefaultOCR returns the OCR engine for this build.
func DefaultOCR() OCR {
	return Tesseract{}
}

// Recognize implements OCR. A client is created per call; gosseract clients
// are not safe for concurrent use.
func (t Tesseract) Recognize(_ context.Context, img []byte) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if len(t.Languages) > 0 {
		if err := client.SetLanguage(t.Languages...); err != nil {
			return "", fmt.Errorf("set language: %w", err)
		}
	}
	if err := client.SetImageFromBytes(img); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}
	return client.Text()
}
