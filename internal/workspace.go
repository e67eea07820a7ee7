package internal

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// WorkspaceInfo describes one workspace directory under the storage root.
type WorkspaceInfo struct {
	ID   string // directory name, the pipeline's grouping key
	Path string // folder the workspace points at, when workspace.json exists
	Name string // base name of Path, for display
}

// ResolveWorkspaceNames reads each workspace's workspace.json to recover the
// project folder it belongs to. Workspaces without a readable workspace.json
// still appear in the result with only their ID set; the pipeline never
// depends on these names, they are display sugar.
func ResolveWorkspaceNames(storagePath string, dbs []WorkspaceDB) map[string]*WorkspaceInfo {
	workspaces := make(map[string]*WorkspaceInfo, len(dbs))

	for _, ws := range dbs {
		info := &WorkspaceInfo{ID: ws.WorkspaceID}
		workspaces[ws.WorkspaceID] = info

		data, err := os.ReadFile(filepath.Join(storagePath, ws.WorkspaceID, "workspace.json"))
		if err != nil {
			continue
		}
		var meta struct {
			Folder string `json:"folder"`
		}
		if err := json.Unmarshal(data, &meta); err != nil || meta.Folder == "" {
			continue
		}
		info.Path = meta.Folder
		info.Name = filepath.Base(meta.Folder)
	}

	return workspaces
}

// DisplayName returns the friendliest available label for a workspace.
func (wi *WorkspaceInfo) DisplayName() string {
	if wi == nil {
		return ""
	}
	if wi.Name != "" {
		return wi.Name
	}
	return wi.ID
}
