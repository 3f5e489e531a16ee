package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"techiehelp/internal/render"
)

var (
	askPlain bool
	askPDF   string
	askXLSX  string
)

// askCmd answers a single question
var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask TechieHelp a question",
	Long: `Answers one question, stores it in the chat history and prints the reply
rendered as markdown.

Examples:
  techiehelp ask "What services does TechieHelp offer?"
  techiehelp ask --pdf answer.pdf --xlsx answer.xlsx "Who is the founder?"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().BoolVar(&askPlain, "plain", false, "Print the reply without markdown rendering")
	askCmd.Flags().StringVar(&askPDF, "pdf", "", "Also write the reply as a PDF to this path")
	askCmd.Flags().StringVar(&askXLSX, "xlsx", "", "Also write the question and reply as a spreadsheet to this path")
}

func runAsk(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	query := strings.Join(args, " ")

	svc, st, err := openApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close(ctx)

	reply, err := svc.Ask(ctx, query)
	if err != nil {
		return err
	}

	if err := printMarkdown(cmd.OutOrStdout(), reply.Response, askPlain); err != nil {
		return err
	}

	if askPDF != "" {
		artifact, err := svc.ExportPDF(reply.Response)
		if err != nil {
			return err
		}
		if err := writeArtifact(askPDF, artifact); err != nil {
			return err
		}
	}
	if askXLSX != "" {
		artifact, err := svc.ExportSpreadsheet(reply.Query, reply.Response)
		if err != nil {
			return err
		}
		if err := writeArtifact(askXLSX, artifact); err != nil {
			return err
		}
	}
	return nil
}

func printMarkdown(w io.Writer, text string, plain bool) error {
	if !plain {
		out, err := renderMarkdown(text)
		if err == nil {
			_, err = fmt.Fprint(w, out)
			return err
		}
		logger.Debug("Markdown rendering unavailable, printing plain text", zap.Error(err))
	}
	_, err := fmt.Fprintln(w, text)
	return err
}

func renderMarkdown(text string) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return "", err
	}
	return renderer.Render(text)
}

func writeArtifact(path string, a render.Artifact) error {
	if err := os.WriteFile(path, a.Data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", a.Name, err)
	}
	logger.Info("Wrote artifact", zap.String("path", path), zap.String("mime", a.MIME), zap.Int("bytes", len(a.Data)))
	return nil
}
