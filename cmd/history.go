package cmd

import (
	"fmt"

	"github.com/Salah-Sal/cursor-chat-viewer/internal"
	"github.com/spf13/cobra"
)

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history [workspace-id]",
	Short: "Show the file navigation history of a workspace",
	Long: `Show the recently-opened-file history extracted from a workspace store.

Without an argument, lists every workspace that has file history. With a
workspace id, prints that workspace's files, de-duplicated (first occurrence
wins) and newest first.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := loadScan()
		if err != nil {
			return err
		}

		if len(args) == 0 {
			if result.FileHistories.Len() == 0 {
				fmt.Println(headerStyle.Render("📁 No file history found"))
				return nil
			}
			fmt.Println(headerStyle.Render(fmt.Sprintf("📁 File history available for %d workspace(s)", result.FileHistories.Len())))
			for _, workspace := range result.FileHistories.Keys() {
				paths, _ := result.FileHistories.Get(workspace)
				unique := internal.DeduplicatePaths(paths)
				fmt.Printf("  %s %s\n", workspaceStyle.Render(workspace), idStyle.Render(fmt.Sprintf("(%d unique files)", len(unique))))
			}
			return nil
		}

		workspace := args[0]
		paths, ok := result.FileHistories.Get(workspace)
		if !ok {
			return fmt.Errorf("no file history found for workspace %q", workspace)
		}

		displayFileHistory(workspace, paths)
		return nil
	},
}

// displayFileHistory prints a workspace's history, unique entries newest first.
func displayFileHistory(workspace string, paths []string) {
	unique := internal.DeduplicatePaths(paths)
	fmt.Println(headerStyle.Render(fmt.Sprintf("📁 File History for %s", workspace)))
	fmt.Println(idStyle.Render(fmt.Sprintf("(%d unique files)", len(unique))))
	for i := len(unique) - 1; i >= 0; i-- {
		fmt.Printf("  %d: %s\n", len(unique)-i, unique[i])
	}
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
