package internal

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// DecodeChatData parses the raw chat-data blob for one workspace into a flat
// sequence of messages. An empty raw value yields no messages and no error.
// Only a failure to decode the outer JSON is an error; every structural
// anomaly below the top level is skipped, since the blob's shape drifts
// across editor versions.
func DecodeChatData(raw string, workspaceID string) ([]ChatMessage, error) {
	if raw == "" {
		return nil, nil
	}

	var data interface{}
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, &ParseError{Workspace: workspaceID, Key: ChatDataKey, Err: err}
	}

	return parseChatData(data, workspaceID), nil
}

// parseChatData walks the decoded chat structure. The expected shape is
// {"tabs": [{"tabId", "chatTitle", "bubbles": [{"type", "text"}, ...]}, ...]};
// anything that does not match is skipped at the level where it fails.
func parseChatData(data interface{}, workspaceID string) []ChatMessage {
	var messages []ChatMessage

	obj, ok := data.(map[string]interface{})
	if !ok {
		return messages
	}
	tabs, ok := obj["tabs"].([]interface{})
	if !ok {
		return messages
	}

	for tabIndex, tabData := range tabs {
		tab, ok := tabData.(map[string]interface{})
		if !ok {
			continue
		}

		tabID := stringField(tab, "tabId", fmt.Sprintf("unknown_tab_%d", tabIndex))
		chatTitle := stringField(tab, "chatTitle", fmt.Sprintf("Untitled Chat %d", tabIndex))

		bubbles, ok := tab["bubbles"].([]interface{})
		if !ok {
			continue
		}

		for _, bubbleData := range bubbles {
			bubble, ok := bubbleData.(map[string]interface{})
			if !ok {
				continue
			}

			content, ok := bubble["text"]
			if !ok || content == nil {
				continue
			}
			contentStr := coerceString(content)
			if trimmed := strings.TrimSpace(contentStr); trimmed == "{}" || trimmed == "[]" || trimmed == "" {
				continue
			}

			messages = append(messages, ChatMessage{
				Role:      NormalizeRole(stringField(bubble, "type", "unknown")),
				Content:   contentStr,
				TabID:     tabID,
				ChatTitle: chatTitle,
				Workspace: workspaceID,
			})
		}
	}

	return messages
}

// NormalizeRole rewrites the legacy "ai" role to "assistant". Every other
// role string passes through unchanged so that future bubble types survive
// extraction intact.
func NormalizeRole(role string) string {
	if role == "ai" {
		return "assistant"
	}
	return role
}

// stringField reads a field from a decoded JSON object, coercing non-string
// values to their string form. Missing and null fields yield the fallback.
func stringField(obj map[string]interface{}, field, fallback string) string {
	v, ok := obj[field]
	if !ok || v == nil {
		return fallback
	}
	return coerceString(v)
}

// coerceString renders a decoded JSON value as a string. Non-scalar values
// are re-marshaled so that an empty object or array becomes "{}" or "[]".
func coerceString(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	case nil:
		return ""
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(b)
	}
}
