package cmd

import (
	"fmt"
	"os"

	"github.com/Salah-Sal/cursor-chat-viewer/internal"
	"github.com/spf13/cobra"
)

var (
	verbose     bool
	storagePath string
	version     string = "dev"
	commit      string = "unknown"
	date        string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cursor-chat-viewer",
	Short: "Browse chat history and file history from Cursor workspace stores",
	Long: `A CLI tool to extract and browse chat sessions from Cursor IDE.

This tool scans Cursor's per-workspace state databases (workspaceStorage),
pulls out the chat-tab conversation data and the recently-opened-file
history, and groups everything into browsable sessions.

Features:
  • List all chat sessions across every workspace
  • View a session's messages
  • Show the file navigation history of a workspace
  • Export sessions in multiple formats (JSONL, Markdown, YAML, JSON)

Quick Start:
  cursor-chat-viewer list                # List all sessions
  cursor-chat-viewer show 1              # View the first listed session
  cursor-chat-viewer history <workspace> # Show a workspace's file history
  cursor-chat-viewer export --format md  # Export as Markdown`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&storagePath, "storage", "", "Custom workspaceStorage location")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}

// loadScan resolves the storage root (honoring --storage) and runs the
// one-shot scan every command starts from.
func loadScan() (*internal.ScanResult, error) {
	path, err := internal.ResolveStoragePath(storagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve storage path: %w", err)
	}
	result, err := internal.LoadAllWorkspaceData(path)
	if err != nil {
		return nil, fmt.Errorf("failed to scan workspace stores: %w", err)
	}
	return result, nil
}
