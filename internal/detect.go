package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// StoreFileName is the fixed name of the per-workspace state database.
const StoreFileName = "state.vscdb"

// WorkspaceDB is one discovered per-workspace store.
type WorkspaceDB struct {
	WorkspaceID string // enclosing directory name, used as an opaque grouping key
	Path        string // full path to the state.vscdb file
}

// DetectStoragePath determines the Cursor workspaceStorage directory for the
// current operating system.
func DetectStoragePath() (string, error) {
	return detectStoragePathFor(runtime.GOOS)
}

func detectStoragePathFor(goos string) (string, error) {
	switch goos {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return filepath.Join(home, "Library/Application Support/Cursor/User/workspaceStorage"), nil
	case "linux":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return filepath.Join(home, ".config/Cursor/User/workspaceStorage"), nil
	case "windows":
		appdata := os.Getenv("APPDATA")
		if appdata == "" {
			return "", fmt.Errorf("APPDATA environment variable not set")
		}
		return filepath.Join(appdata, "Cursor", "User", "workspaceStorage"), nil
	default:
		return "", fmt.Errorf("unsupported OS: %s", goos)
	}
}

// ResolveStoragePath returns the workspaceStorage root, honoring an explicit
// override. The returned path is not checked for existence; callers decide
// whether a missing root is fatal.
func ResolveStoragePath(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	return DetectStoragePath()
}

// FindWorkspaceDBs scans the storage root for per-workspace store files.
// A subdirectory is treated as a workspace when its name is longer than 10
// characters and is not the reserved "images" directory; this mirrors the
// directory naming convention Cursor uses for workspace hashes.
func FindWorkspaceDBs(storagePath string) ([]WorkspaceDB, error) {
	info, err := os.Stat(storagePath)
	if err != nil {
		return nil, &StorageError{Workspace: storagePath, Op: "open", Err: fmt.Errorf("storage root not found: %w", err)}
	}
	if !info.IsDir() {
		return nil, &StorageError{Workspace: storagePath, Op: "open", Err: fmt.Errorf("storage root is not a directory")}
	}

	entries, err := os.ReadDir(storagePath)
	if err != nil {
		return nil, &StorageError{Workspace: storagePath, Op: "open", Err: err}
	}

	var dbs []WorkspaceDB
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if len(name) <= 10 || name == "images" {
			continue
		}
		dbPath := filepath.Join(storagePath, name, StoreFileName)
		if fi, err := os.Stat(dbPath); err != nil || fi.IsDir() {
			continue
		}
		dbs = append(dbs, WorkspaceDB{WorkspaceID: name, Path: dbPath})
	}

	return dbs, nil
}
