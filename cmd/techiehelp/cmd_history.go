package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	questionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	labelStyle    = lipgloss.NewStyle().Bold(true)
	stampStyle    = lipgloss.NewStyle().Faint(true)
)

// historyCmd lists stored chats
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the chat history, most recent first",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)

	svc, st, err := openApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close(ctx)

	records, err := svc.History(ctx)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if len(records) == 0 {
		fmt.Fprintln(w, "No chat history available.")
		return nil
	}

	for _, rec := range records {
		fmt.Fprintln(w, questionStyle.Render("Question: "+rec.Query))
		fmt.Fprintln(w, labelStyle.Render("Response:"), rec.Response)
		fmt.Fprintln(w, labelStyle.Render("Timestamp:"), stampStyle.Render(rec.Timestamp.Format("2006-01-02 15:04:05")))
		fmt.Fprintln(w)
	}
	return nil
}
