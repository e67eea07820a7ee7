package internal

import (
	"encoding/json"
	"strings"
)

const fileURIPrefix = "file:///"

// DecodeFileHistory parses the raw history blob for one workspace into an
// ordered sequence of file paths. Duplicates are preserved. Only a failure to
// decode the outer JSON is an error; entries of an unexpected shape are
// skipped silently.
func DecodeFileHistory(raw string, workspaceID string) ([]string, error) {
	if raw == "" {
		return nil, nil
	}

	var data interface{}
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, &ParseError{Workspace: workspaceID, Key: FileHistoryKey, Err: err}
	}

	return parseFileHistory(data), nil
}

// parseFileHistory walks the decoded history structure. The expected shape is
// [{"editor": {"resource": "file:///..."}}, ...]; entries without a matching
// file URI contribute nothing.
func parseFileHistory(data interface{}) []string {
	var files []string

	entries, ok := data.([]interface{})
	if !ok {
		return files
	}

	for _, entryData := range entries {
		entry, ok := entryData.(map[string]interface{})
		if !ok {
			continue
		}
		editor, ok := entry["editor"].(map[string]interface{})
		if !ok {
			continue
		}
		resource, ok := editor["resource"].(string)
		if !ok || !strings.HasPrefix(resource, fileURIPrefix) {
			continue
		}
		files = append(files, resource[len(fileURIPrefix):])
	}

	return files
}
