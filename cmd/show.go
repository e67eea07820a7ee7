package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Salah-Sal/cursor-chat-viewer/internal"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var showHistory bool

var (
	// Styles for show command
	sessionHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("212")).
				Padding(0, 1).
				MarginBottom(1)

	sessionMetaStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("243")).
				MarginBottom(1)

	userMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("39")).
				Bold(true).
				Padding(0, 1)

	assistantMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("135")).
				Bold(true).
				Padding(0, 1)

	messageContentStyle = lipgloss.NewStyle().
				Padding(0, 2).
				MarginBottom(1)
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <session-number>",
	Short: "Show messages for a specific session",
	Long: `Display the messages of one chat session.

Sessions are addressed by the number printed by 'cursor-chat-viewer list';
the numbering is stable for a given on-disk state (sessions are ordered by
workspace, then title, then tab id).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[0])
		if err != nil || index < 1 {
			return fmt.Errorf("invalid session number %q (run `cursor-chat-viewer list` to see numbers)", args[0])
		}

		result, err := loadScan()
		if err != nil {
			return err
		}

		summaries := result.Sessions.SessionSummaries()
		if index > len(summaries) {
			return fmt.Errorf("session number %d out of range (have %d sessions)", index, len(summaries))
		}

		key := summaries[index-1].Key
		session, ok := result.Sessions.Session(key)
		if !ok {
			return fmt.Errorf("session %s/%s not found", key.Workspace, key.TabID)
		}

		displaySession(session)

		if showHistory {
			if paths, ok := result.FileHistories.Get(key.Workspace); ok {
				displayFileHistory(key.Workspace, paths)
			} else {
				fmt.Printf("(No file history found for workspace %q.)\n", key.Workspace)
			}
		}

		return nil
	},
}

func displaySession(session *internal.Session) {
	title := session.Title
	if title == "" {
		title = "Untitled Chat"
	}
	fmt.Println(sessionHeaderStyle.Render("💬 " + title))
	fmt.Println(sessionMetaStyle.Render(fmt.Sprintf("Tab: %s | Source: %s | %d message(s)", session.TabID, session.Workspace, len(session.Messages))))
	fmt.Println()

	for _, msg := range session.Messages {
		label := msg.Role
		if label == "" {
			label = "unknown"
		}
		label = strings.ToUpper(label[:1]) + label[1:]
		switch msg.Role {
		case "user":
			fmt.Println(userMessageStyle.Render("▸ " + label))
		case "assistant":
			fmt.Println(assistantMessageStyle.Render("▸ " + label))
		default:
			fmt.Println(sessionMetaStyle.Render("▸ " + label))
		}
		fmt.Println(messageContentStyle.Render(strings.TrimSpace(msg.Content)))
	}
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showHistory, "with-history", false, "Also show the workspace's file history")
}
