package internal

// ScanResult holds the merged output of one full scan across all workspace
// stores. The maps are built by a single LoadAllWorkspaceData call and never
// shared or mutated afterwards.
type ScanResult struct {
	Sessions      *SessionMap
	FileHistories *FileHistoryMap
}

// TotalMessages returns the message count summed across all sessions.
func (r *ScanResult) TotalMessages() int {
	return r.Sessions.TotalMessages()
}

// TotalSessions returns the number of distinct (workspace, tabId) sessions.
func (r *ScanResult) TotalSessions() int {
	return r.Sessions.Len()
}

// Load resolves the platform storage root and scans it. This is the pipeline
// entry point for callers that take no arguments.
func Load() (*ScanResult, error) {
	storagePath, err := DetectStoragePath()
	if err != nil {
		return nil, err
	}
	return LoadAllWorkspaceData(storagePath)
}

// LoadAllWorkspaceData scans every workspace store under the given root and
// merges the results. A missing root is fatal; everything that goes wrong in
// one store is reported and skipped so the remaining stores still contribute.
// A root with zero workspace stores is a valid empty result.
func LoadAllWorkspaceData(storagePath string) (*ScanResult, error) {
	dbs, err := FindWorkspaceDBs(storagePath)
	if err != nil {
		return nil, err
	}

	result := &ScanResult{
		Sessions:      NewSessionMap(),
		FileHistories: NewFileHistoryMap(),
	}

	if len(dbs) == 0 {
		LogInfo("No %s files found under %s", StoreFileName, storagePath)
		return result, nil
	}
	LogInfo("Found %d workspace store(s). Scanning...", len(dbs))

	keys := []string{ChatDataKey, FileHistoryKey}
	for _, ws := range dbs {
		values := ReadStoreKeys(ws, keys)

		if raw, ok := values[ChatDataKey]; ok && raw != "" {
			messages, err := DecodeChatData(raw, ws.WorkspaceID)
			if err != nil {
				LogWarn("Could not decode chat JSON in %s: %v", ws.WorkspaceID, err)
			}
			for _, msg := range messages {
				result.Sessions.Append(msg)
			}
		}

		if raw, ok := values[FileHistoryKey]; ok && raw != "" {
			paths, err := DecodeFileHistory(raw, ws.WorkspaceID)
			if err != nil {
				LogWarn("Could not decode file history JSON in %s: %v", ws.WorkspaceID, err)
			}
			result.FileHistories.Extend(ws.WorkspaceID, paths)
		}
	}

	LogInfo("Parsed %d messages across %d unique chat sessions", result.TotalMessages(), result.TotalSessions())
	LogInfo("Parsed file history for %d workspace(s)", result.FileHistories.Len())

	return result, nil
}
