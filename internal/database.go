package internal

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sqlite "modernc.org/sqlite"
)

// Storage keys read from each workspace store. Any other key in the store is
// ignored.
const (
	ChatDataKey    = "workbench.panel.aichat.view.aichat.chatdata"
	FileHistoryKey = "history.entries"
)

// Primary SQLite result codes for lock contention.
const (
	sqliteBusy   = 5 // SQLITE_BUSY
	sqliteLocked = 6 // SQLITE_LOCKED
)

// OpenDatabase opens a workspace store in read-only mode
func OpenDatabase(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return db, nil
}

// QueryItemTable fetches the raw values for the requested keys from the
// ItemTable. Keys not present in the store are simply absent from the result.
func QueryItemTable(db *sql.DB, keys []string) (map[string]string, error) {
	if len(keys) == 0 {
		return map[string]string{}, nil
	}

	placeholders := strings.Repeat("?,", len(keys))
	placeholders = placeholders[:len(placeholders)-1]
	query := "SELECT key, value FROM ItemTable WHERE key IN (" + placeholders + ")"

	args := make([]interface{}, len(keys))
	for i, key := range keys {
		args[i] = key
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	values := make(map[string]string)
	for rows.Next() {
		var key string
		var value sql.NullString
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		if value.Valid {
			values[key] = value.String
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return values, nil
}

// ReadStoreKeys opens one workspace store, reads the requested keys, and
// closes the store again. Expected failure modes never surface as errors:
// a locked store or any other access failure is reported as a warning and
// yields an empty result, and a store without the ItemTable schema yields an
// empty result silently. One bad store never aborts a scan.
func ReadStoreKeys(ws WorkspaceDB, keys []string) map[string]string {
	db, err := OpenDatabase(ws.Path)
	if err != nil {
		warnStoreError(ws.WorkspaceID, err)
		return map[string]string{}
	}
	defer func() { _ = db.Close() }()

	values, err := QueryItemTable(db, keys)
	if err != nil {
		warnStoreError(ws.WorkspaceID, err)
		return map[string]string{}
	}

	return values
}

func warnStoreError(workspaceID string, err error) {
	switch {
	case IsLockedError(err):
		LogWarn("Store locked: %s", workspaceID)
	case IsMissingTableError(err):
		// An unused workspace legitimately has no ItemTable.
	default:
		LogWarn("Store access failed in %s: %v", workspaceID, err)
	}
}

// IsLockedError reports whether err means another process holds the store.
// The structured SQLite result code is checked first; the message text
// fallback is a compatibility shim for error paths that lose the typed error.
func IsLockedError(err error) bool {
	if err == nil {
		return false
	}
	var se *sqlite.Error
	if errors.As(err, &se) {
		switch se.Code() & 0xff {
		case sqliteBusy, sqliteLocked:
			return true
		}
	}
	msg := err.Error()
	return strings.Contains(msg, "database is locked") || strings.Contains(msg, "SQLITE_BUSY")
}

// IsMissingTableError reports whether err means the ItemTable schema is
// absent. SQLite reports this as a generic SQLITE_ERROR, so only the message
// text distinguishes it from other statement errors.
func IsMissingTableError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "no such table")
}
