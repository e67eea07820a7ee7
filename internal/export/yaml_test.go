package export

import (
	"bytes"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestYAMLExporter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&YAMLExporter{}).Export(testSession(), &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	var decoded struct {
		Workspace string `yaml:"workspace"`
		TabID     string `yaml:"tab_id"`
		Title     string `yaml:"title"`
		Messages  []struct {
			Role    string `yaml:"role"`
			Content string `yaml:"content"`
		} `yaml:"messages"`
	}
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}

	if decoded.TabID != "t1" || decoded.Title != "Demo" {
		t.Errorf("decoded header = %+v", decoded)
	}
	if len(decoded.Messages) != 2 || decoded.Messages[0].Content != "hi" {
		t.Errorf("decoded messages = %+v", decoded.Messages)
	}
}
