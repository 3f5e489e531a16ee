package main

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"techiehelp/internal/extract"
)

var (
	headingColor = color.New(color.FgCyan, color.Bold)
	fileColor    = color.New(color.FgGreen)
)

// extractCmd prints the text content of a PDF or image
var extractCmd = &cobra.Command{
	Use:   "extract [file]",
	Short: "Extract text from a PDF or image",
	Long: `Prints the text of a PDF (page by page, in order) or of a JPEG/PNG image
via OCR. The media type is taken from the file extension.`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	mimeType := mimeFromExtension(path)
	text, err := extract.New(nil).ExtractText(commandContext(cmd), data, mimeType)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	headingColor.Fprint(w, "Extracted Text ")
	fileColor.Fprintln(w, filepath.Base(path))
	fmt.Fprintln(w, text)
	return nil
}

// mimeFromExtension maps an extension to its media type. An unknown extension
// yields "" so the content is sniffed.
func mimeFromExtension(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".pdf":
		return "application/pdf"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	}
	return mime.TypeByExtension(ext)
}
