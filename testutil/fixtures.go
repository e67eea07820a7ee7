package testutil

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

// CreateStoreFixture creates a state.vscdb file with the ItemTable schema and
// the given key-value pairs
func CreateStoreFixture(t *testing.T, dbPath string, items map[string]string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		t.Fatalf("Failed to create fixture directory: %v", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer func() { _ = db.Close() }()

	createTableSQL := `
	CREATE TABLE IF NOT EXISTS ItemTable (
		key TEXT PRIMARY KEY,
		value BLOB
	)`
	if _, err := db.Exec(createTableSQL); err != nil {
		t.Fatalf("Failed to create table: %v", err)
	}

	insertSQL := "INSERT INTO ItemTable (key, value) VALUES (?, ?)"
	for key, value := range items {
		if _, err := db.Exec(insertSQL, key, value); err != nil {
			t.Fatalf("Failed to insert %s: %v", key, err)
		}
	}
}

// CreateEmptyDBFixture creates a SQLite file with no ItemTable, mimicking a
// workspace never used for chat
func CreateEmptyDBFixture(t *testing.T, dbPath string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		t.Fatalf("Failed to create fixture directory: %v", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer func() { _ = db.Close() }()

	// Touch the file by creating an unrelated table
	if _, err := db.Exec("CREATE TABLE IF NOT EXISTS other (id INTEGER PRIMARY KEY)"); err != nil {
		t.Fatalf("Failed to create table: %v", err)
	}
}

// CreateWorkspaceFixture creates a workspace directory under a storage root
// and fills its state.vscdb with the given items. Returns the db path.
func CreateWorkspaceFixture(t *testing.T, storageRoot, workspaceID string, items map[string]string) string {
	t.Helper()
	dbPath := filepath.Join(storageRoot, workspaceID, "state.vscdb")
	CreateStoreFixture(t, dbPath, items)
	return dbPath
}
