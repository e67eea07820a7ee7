package export

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestJSONExporter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&JSONExporter{}).Export(testSession(), &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	var decoded struct {
		Workspace string `json:"workspace"`
		TabID     string `json:"tabId"`
		Title     string `json:"title"`
		Messages  []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if decoded.Workspace != "workspacehash0001" || decoded.TabID != "t1" || decoded.Title != "Demo" {
		t.Errorf("decoded header = %+v", decoded)
	}
	if len(decoded.Messages) != 2 || decoded.Messages[1].Role != "assistant" {
		t.Errorf("decoded messages = %+v", decoded.Messages)
	}
}
