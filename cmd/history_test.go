package cmd

import (
	"bytes"
	"testing"

	"github.com/Salah-Sal/cursor-chat-viewer/internal"
	"github.com/Salah-Sal/cursor-chat-viewer/testutil"
)

func TestHistoryCommand(t *testing.T) {
	storageDir := testutil.CreateTempDir(t)
	testutil.CreateWorkspaceFixture(t, storageDir, "workspacehash0001", map[string]string{
		internal.FileHistoryKey: `[{"editor":{"resource":"file:///a/b.py"}},{"editor":{"resource":"file:///c/d.py"}},{"editor":{"resource":"file:///a/b.py"}}]`,
	})

	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{
			name: "list workspaces with history",
			args: []string{"history", "--storage", storageDir},
		},
		{
			name: "show one workspace",
			args: []string{"history", "--storage", storageDir, "workspacehash0001"},
		},
		{
			name:    "unknown workspace",
			args:    []string{"history", "--storage", storageDir, "workspacehash9999"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rootCmd.SetArgs(tt.args)
			rootCmd.SetOut(&bytes.Buffer{})
			rootCmd.SetErr(&bytes.Buffer{})
			defer func() { storagePath = "" }()

			err := rootCmd.Execute()
			if (err != nil) != tt.wantErr {
				t.Errorf("history command error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestShowCommand(t *testing.T) {
	storageDir := testutil.CreateTempDir(t)
	testutil.CreateWorkspaceFixture(t, storageDir, "workspacehash0001", map[string]string{
		internal.ChatDataKey: `{"tabs":[{"tabId":"t1","chatTitle":"Demo","bubbles":[{"type":"user","text":"hi"},{"type":"ai","text":"hello"}]}]}`,
	})

	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{
			name: "valid session number",
			args: []string{"show", "--storage", storageDir, "1"},
		},
		{
			name:    "out of range",
			args:    []string{"show", "--storage", storageDir, "7"},
			wantErr: true,
		},
		{
			name:    "not a number",
			args:    []string{"show", "--storage", storageDir, "abc"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rootCmd.SetArgs(tt.args)
			rootCmd.SetOut(&bytes.Buffer{})
			rootCmd.SetErr(&bytes.Buffer{})
			defer func() { storagePath = "" }()

			err := rootCmd.Execute()
			if (err != nil) != tt.wantErr {
				t.Errorf("show command error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
