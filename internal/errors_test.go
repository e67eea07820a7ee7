package internal

import (
	"errors"
	"strings"
	"testing"
)

func TestStorageError(t *testing.T) {
	inner := errors.New("disk gone")
	err := &StorageError{Workspace: "workspacehash0001", Op: "open", Err: inner}

	if !strings.Contains(err.Error(), "workspacehash0001") || !strings.Contains(err.Error(), "open") {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("Unwrap() does not reach the inner error")
	}
}

func TestParseError(t *testing.T) {
	inner := errors.New("unexpected end of JSON input")
	err := &ParseError{Workspace: "workspacehash0001", Key: ChatDataKey, Err: inner}

	if !strings.Contains(err.Error(), ChatDataKey) {
		t.Errorf("Error() = %q, want the storage key mentioned", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("Unwrap() does not reach the inner error")
	}
}

func TestExportError(t *testing.T) {
	inner := errors.New("permission denied")
	err := &ExportError{Format: "md", Path: "/tmp/out.md", Err: inner}

	if !strings.Contains(err.Error(), "md") || !strings.Contains(err.Error(), "/tmp/out.md") {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("Unwrap() does not reach the inner error")
	}
}
