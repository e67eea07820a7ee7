package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Salah-Sal/cursor-chat-viewer/internal"
	"github.com/Salah-Sal/cursor-chat-viewer/internal/export"
	"github.com/spf13/cobra"
)

var (
	format          string
	outputDir       string
	exportWorkspace string
	exportSession   string
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export sessions to file",
	Long: `Export chat sessions to various formats (jsonl, md, yaml, json).

You can export all sessions, filter by workspace, or export a single session
by the number shown in 'cursor-chat-viewer list'.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		exporter, err := export.NewExporter(format)
		if err != nil {
			return err
		}

		result, err := loadScan()
		if err != nil {
			return err
		}

		summaries := result.Sessions.SessionSummaries()
		if exportSession != "" {
			index, err := strconv.Atoi(exportSession)
			if err != nil || index < 1 || index > len(summaries) {
				return fmt.Errorf("invalid session number %q (have %d sessions)", exportSession, len(summaries))
			}
			summaries = summaries[index-1 : index]
		}

		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}

		exported := 0
		for _, summary := range summaries {
			if exportWorkspace != "" && summary.Key.Workspace != exportWorkspace {
				continue
			}
			session, ok := result.Sessions.Session(summary.Key)
			if !ok {
				continue
			}

			name := fmt.Sprintf("%s_%s.%s", session.Workspace, sanitizeFileName(session.TabID), exporter.Extension())
			path := filepath.Join(outputDir, name)

			if err := writeSession(exporter, session, path); err != nil {
				return err
			}
			internal.LogInfo("Exported %s", path)
			exported++
		}

		if exported == 0 {
			fmt.Println(headerStyle.Render("📋 No sessions matched, nothing exported"))
			return nil
		}
		fmt.Println(headerStyle.Render(fmt.Sprintf("✅ Exported %d session(s) to %s", exported, outputDir)))
		return nil
	},
}

func writeSession(exporter export.Exporter, session *internal.Session, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return &internal.ExportError{Format: exporter.Extension(), Path: path, Err: err}
	}
	defer func() { _ = f.Close() }()

	if err := exporter.Export(session, f); err != nil {
		return &internal.ExportError{Format: exporter.Extension(), Path: path, Err: err}
	}
	return nil
}

// sanitizeFileName keeps tab ids safe to use in file names.
func sanitizeFileName(name string) string {
	replacer := strings.NewReplacer("/", "_", "\\", "_", ":", "_", " ", "_")
	return replacer.Replace(name)
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&format, "format", "f", "jsonl", "Export format (jsonl, md, yaml, json)")
	exportCmd.Flags().StringVarP(&outputDir, "output", "o", "./exports", "Output directory")
	exportCmd.Flags().StringVarP(&exportWorkspace, "workspace", "w", "", "Only export sessions from this workspace")
	exportCmd.Flags().StringVarP(&exportSession, "session", "s", "", "Export a single session by list number")
}
