//go:build !tesseract

package extract

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// TesseractCLI runs the tesseract binary, feeding the image on stdin.
// Build with -tags tesseract to link libtesseract instead.
type TesseractCLI struct {
	Binary   string // defaults to "tesseract"
	Language string // e.g. "eng"; empty uses tesseract's default
}

// DefaultOCR returns the OCR engine for this build.
func DefaultOCR() OCR {
	return TesseractCLI{}
}

// Recognize implements OCR.
func (t TesseractCLI) Recognize(ctx context.Context, img []byte) (string, error) {
	bin := t.Binary
	if bin == "" {
		bin = "tesseract"
	}
	args := []string{"stdin", "stdout"}
	if t.Language != "" {
		args = append(args, "-l", t.Language)
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stdin = bytes.NewReader(img)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("%s: %w: %s", bin, err, strings.TrimSpace(stderr.String()))
	}
	return string(out), nil
}
