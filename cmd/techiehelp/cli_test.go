package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"techiehelp/internal/config"
	"techiehelp/internal/extract"
	"techiehelp/internal/render"
)

// setupCLI points the globals at a throwaway sqlite store with no API key.
func setupCLI(t *testing.T) {
	t.Helper()
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("api_key", "")

	logger = zap.NewNop()
	cfg = config.DefaultConfig()
	cfg.Storage.Backend = config.BackendSQLite
	cfg.Storage.SQLitePath = filepath.Join(t.TempDir(), "cli.db")

	askPlain, askPDF, askXLSX = true, "", ""
	t.Cleanup(func() { askPlain, askPDF, askXLSX = false, "", "" })
}

func newTestCommand() (*cobra.Command, *bytes.Buffer) {
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	return cmd, &out
}

func TestAskCmd_CannedTopic(t *testing.T) {
	setupCLI(t)
	cmd, out := newTestCommand()

	err := runAsk(cmd, []string{"What", "services", "does", "TechieHelp", "offer?"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out.String(), "TechieHelp offers the following services:"))
}

func TestAskCmd_NoKeyUnmatched(t *testing.T) {
	setupCLI(t)
	cmd, _ := newTestCommand()

	err := runAsk(cmd, []string{"what is the weather"})
	assert.Error(t, err)
}

func TestAskCmd_WritesArtifacts(t *testing.T) {
	setupCLI(t)
	dir := t.TempDir()
	askPDF = filepath.Join(dir, "answer.pdf")
	askXLSX = filepath.Join(dir, "answer.xlsx")
	cmd, _ := newTestCommand()

	require.NoError(t, runAsk(cmd, []string{"mission"}))

	pdf, err := os.ReadFile(askPDF)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))

	f, err := excelize.OpenFile(askXLSX)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{render.HeaderQuery, render.HeaderResponse}, rows[0])
	assert.Equal(t, "mission", rows[1][0])
}

func TestHistoryCmd(t *testing.T) {
	setupCLI(t)

	cmd, out := newTestCommand()
	require.NoError(t, runHistory(cmd, nil))
	assert.Contains(t, out.String(), "No chat history available.")

	askCmd, _ := newTestCommand()
	require.NoError(t, runAsk(askCmd, []string{"Who is the founder?"}))
	require.NoError(t, runAsk(askCmd, []string{"contact"}))

	cmd, out = newTestCommand()
	require.NoError(t, runHistory(cmd, nil))
	text := out.String()
	founder := strings.Index(text, "Question: Who is the founder?")
	contact := strings.Index(text, "Question: contact")
	require.NotEqual(t, -1, founder)
	require.NotEqual(t, -1, contact)
	assert.Less(t, contact, founder, "most recent first")
}

func TestExtractCmd_PDF(t *testing.T) {
	logger = zap.NewNop()
	data, err := render.ToPDF("Quarterly report")
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "report.pdf")
	require.NoError(t, os.WriteFile(path, data, 0644))

	cmd, out := newTestCommand()
	require.NoError(t, runExtract(cmd, []string{path}))
	assert.Contains(t, out.String(), "Extracted Text")
	assert.Contains(t, strings.Join(strings.Fields(out.String()), ""), "Quarterlyreport")
}

func TestExtractCmd_Unsupported(t *testing.T) {
	logger = zap.NewNop()
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("plain text"), 0644))

	cmd, _ := newTestCommand()
	err := runExtract(cmd, []string{path})
	assert.ErrorIs(t, err, extract.ErrUnsupportedMediaKind)
}

func TestExtractCmd_MissingFile(t *testing.T) {
	cmd, _ := newTestCommand()
	assert.Error(t, runExtract(cmd, []string{filepath.Join(t.TempDir(), "absent.pdf")}))
}

func TestServeCmd_RequiresAPIKey(t *testing.T) {
	setupCLI(t)
	cmd, _ := newTestCommand()

	err := runServe(cmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestMimeFromExtension(t *testing.T) {
	tests := map[string]string{
		"a.pdf":  "application/pdf",
		"B.PDF":  "application/pdf",
		"c.jpg":  "image/jpeg",
		"d.jpeg": "image/jpeg",
		"e.png":  "image/png",
		"f":      "",
	}
	for path, want := range tests {
		assert.Equal(t, want, mimeFromExtension(path), path)
	}
}

func TestLoggingOptions(t *testing.T) {
	c := config.DefaultConfig().Logging
	opts := loggingOptions(c)
	assert.True(t, opts.JSONFormat)
	assert.Equal(t, c.InteractionFile, opts.InteractionFile)

	c.Format = "text"
	assert.False(t, loggingOptions(c).JSONFormat)
}

func TestRootCmd_Subcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"serve", "ask", "extract", "history"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}
