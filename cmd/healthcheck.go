package cmd

import (
	"fmt"
	"os"

	"github.com/Salah-Sal/cursor-chat-viewer/internal"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var healthcheckVerbose bool

var (
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Bold(true).
			Underline(true)
)

// healthcheckCmd represents the healthcheck command
var healthcheckCmd = &cobra.Command{
	Use:   "healthcheck",
	Short: "Check if cursor-chat-viewer can locate and read workspace stores",
	Long: `Check the health of cursor-chat-viewer by verifying:
  • Storage root detection
  • Storage root existence
  • Workspace store discovery
  • Session and file-history counts

This command is useful for debugging storage issues.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(sectionStyle.Render("🔍 Cursor Chat Viewer Health Check"))
		fmt.Println()

		// Step 1: Resolve the storage root
		fmt.Println(infoStyle.Render("Step 1: Resolving storage root..."))
		root, err := internal.ResolveStoragePath(storagePath)
		if err != nil {
			fmt.Println(errorStyle.Render("❌ Failed to resolve storage root:"), err)
			os.Exit(1)
		}
		fmt.Println(successStyle.Render("✅ Storage root resolved"))
		if healthcheckVerbose {
			fmt.Printf("   Root: %s\n", root)
		}
		fmt.Println()

		// Step 2: Discover workspace stores
		fmt.Println(infoStyle.Render("Step 2: Discovering workspace stores..."))
		dbs, err := internal.FindWorkspaceDBs(root)
		if err != nil {
			fmt.Println(errorStyle.Render("❌ Storage root not accessible:"), err)
			os.Exit(1)
		}
		if len(dbs) == 0 {
			fmt.Println(warningStyle.Render("⚠️  Storage root exists but contains no workspace stores"))
			if healthcheckVerbose {
				fmt.Printf("   Expected pattern: %s/{workspace-hash}/%s\n", root, internal.StoreFileName)
			}
			return nil
		}
		fmt.Println(successStyle.Render(fmt.Sprintf("✅ Found %d workspace store(s)", len(dbs))))
		if healthcheckVerbose {
			names := internal.ResolveWorkspaceNames(root, dbs)
			for i, db := range dbs {
				if i >= 5 {
					fmt.Printf("   ... and %d more\n", len(dbs)-5)
					break
				}
				fmt.Printf("   [%d] %s (%s)\n", i+1, db.WorkspaceID, names[db.WorkspaceID].DisplayName())
			}
		}
		fmt.Println()

		// Step 3: Scan
		fmt.Println(infoStyle.Render("Step 3: Scanning stores..."))
		result, err := internal.LoadAllWorkspaceData(root)
		if err != nil {
			fmt.Println(errorStyle.Render("❌ Scan failed:"), err)
			os.Exit(1)
		}
		fmt.Println(successStyle.Render(fmt.Sprintf("✅ Parsed %d message(s) across %d session(s)", result.TotalMessages(), result.TotalSessions())))
		fmt.Println(successStyle.Render(fmt.Sprintf("✅ File history for %d workspace(s)", result.FileHistories.Len())))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(healthcheckCmd)
	healthcheckCmd.Flags().BoolVar(&healthcheckVerbose, "details", false, "Show detailed paths and store names")
}
