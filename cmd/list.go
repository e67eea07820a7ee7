package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/Salah-Sal/cursor-chat-viewer/internal"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	// Styles
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	idStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true)

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	workspaceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("135")).
			Italic(true)
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available chat sessions",
	Long:  `List all chat sessions found across Cursor's workspace stores.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := loadScan()
		if err != nil {
			return err
		}

		displaySessions(result)
		return nil
	},
}

func displaySessions(result *internal.ScanResult) {
	summaries := result.Sessions.SessionSummaries()
	if len(summaries) == 0 {
		fmt.Println(headerStyle.Render("📋 No sessions found"))
		if result.FileHistories.Len() > 0 {
			fmt.Printf("File history is available for %d workspace(s); see `cursor-chat-viewer history`.\n", result.FileHistories.Len())
		}
		return
	}

	header := headerStyle.Render(fmt.Sprintf("📋 Found %d session(s), %d message(s)", result.TotalSessions(), result.TotalMessages()))
	fmt.Println(header)
	fmt.Println()

	// Use tabwriter for aligned columns
	w := tabwriter.NewWriter(lipgloss.DefaultRenderer().Output(), 0, 0, 3, ' ', tabwriter.AlignRight)

	_, _ = fmt.Fprintln(w, titleStyle.Render("#")+"\t"+titleStyle.Render("Title")+"\t"+titleStyle.Render("Messages")+"\t"+titleStyle.Render("Tab")+"\t"+titleStyle.Render("Workspace")+"\t")
	_, _ = fmt.Fprintln(w, strings.Repeat("─", 110))

	for i, summary := range summaries {
		title := summary.Title
		if title == "" {
			title = "Untitled"
		}
		if len(title) > 50 {
			title = title[:47] + "..."
		}
		nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("255"))

		msgCount := countStyle.Render(strconv.Itoa(summary.MessageCount))

		tabID := summary.Key.TabID
		if len(tabID) > 12 {
			tabID = tabID[:12]
		}

		workspace := summary.Key.Workspace
		if len(workspace) > 25 {
			workspace = workspace[:22] + "..."
		}

		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t\n",
			idStyle.Render(strconv.Itoa(i+1)),
			nameStyle.Render(title),
			msgCount,
			idStyle.Render(tabID),
			workspaceStyle.Render(workspace))
	}

	_ = w.Flush()
	fmt.Println()
	fmt.Println(idStyle.Render("💡 Tip: Use the session number with `cursor-chat-viewer show <n>`"))
}

func init() {
	rootCmd.AddCommand(listCmd)
}
