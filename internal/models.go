package internal

import "sort"

// ChatMessage is one normalized message extracted from a workspace store.
type ChatMessage struct {
	Role      string `json:"role" yaml:"role"`
	Content   string `json:"content" yaml:"content"`
	TabID     string `json:"tabId" yaml:"tab_id"`
	ChatTitle string `json:"chatTitle" yaml:"chat_title"`
	Workspace string `json:"sourceWorkspace" yaml:"source_workspace"`
}

// Session is a fully materialized session view for rendering and export.
type Session struct {
	Workspace string        `json:"workspace" yaml:"workspace"`
	TabID     string        `json:"tabId" yaml:"tab_id"`
	Title     string        `json:"title" yaml:"title"`
	Messages  []ChatMessage `json:"messages" yaml:"messages"`
}

// SessionKey identifies one chat session. Messages from two workspaces never
// share a session even when their tab ids collide.
type SessionKey struct {
	Workspace string `json:"workspace"`
	TabID     string `json:"tabId"`
}

// SessionMap groups messages by (workspace, tabId) while preserving the
// insertion order of first-seen keys. Go's native map does not keep insertion
// order, so keys are tracked in a side slice.
type SessionMap struct {
	keys     []SessionKey
	sessions map[SessionKey][]ChatMessage
}

// NewSessionMap creates an empty SessionMap.
func NewSessionMap() *SessionMap {
	return &SessionMap{sessions: make(map[SessionKey][]ChatMessage)}
}

// Append adds a message to its session, creating the session on first use.
func (sm *SessionMap) Append(msg ChatMessage) {
	key := SessionKey{Workspace: msg.Workspace, TabID: msg.TabID}
	if _, ok := sm.sessions[key]; !ok {
		sm.keys = append(sm.keys, key)
	}
	sm.sessions[key] = append(sm.sessions[key], msg)
}

// Get returns the messages for a session key.
func (sm *SessionMap) Get(key SessionKey) ([]ChatMessage, bool) {
	msgs, ok := sm.sessions[key]
	return msgs, ok
}

// Keys returns session keys in first-insertion order.
func (sm *SessionMap) Keys() []SessionKey {
	return sm.keys
}

// Len returns the number of sessions.
func (sm *SessionMap) Len() int {
	return len(sm.keys)
}

// TotalMessages returns the message count summed across all sessions.
func (sm *SessionMap) TotalMessages() int {
	total := 0
	for _, msgs := range sm.sessions {
		total += len(msgs)
	}
	return total
}

// FileHistoryMap groups extracted file paths by workspace, preserving the
// order workspaces were first seen and the source order of paths within one.
// Duplicate paths are kept; de-duplication is a display concern.
type FileHistoryMap struct {
	keys      []string
	histories map[string][]string
}

// NewFileHistoryMap creates an empty FileHistoryMap.
func NewFileHistoryMap() *FileHistoryMap {
	return &FileHistoryMap{histories: make(map[string][]string)}
}

// Extend appends paths to a workspace's history. A call with no paths does
// not register the workspace.
func (fm *FileHistoryMap) Extend(workspace string, paths []string) {
	if len(paths) == 0 {
		return
	}
	if _, ok := fm.histories[workspace]; !ok {
		fm.keys = append(fm.keys, workspace)
	}
	fm.histories[workspace] = append(fm.histories[workspace], paths...)
}

// Get returns the history for a workspace.
func (fm *FileHistoryMap) Get(workspace string) ([]string, bool) {
	paths, ok := fm.histories[workspace]
	return paths, ok
}

// Keys returns workspace ids in first-insertion order.
func (fm *FileHistoryMap) Keys() []string {
	return fm.keys
}

// Len returns the number of workspaces with history.
func (fm *FileHistoryMap) Len() int {
	return len(fm.keys)
}

// Session materializes the view for one session key.
func (sm *SessionMap) Session(key SessionKey) (*Session, bool) {
	msgs, ok := sm.sessions[key]
	if !ok || len(msgs) == 0 {
		return nil, false
	}
	return &Session{
		Workspace: key.Workspace,
		TabID:     key.TabID,
		Title:     msgs[0].ChatTitle,
		Messages:  msgs,
	}, true
}

// SessionSummary is a derived view of one session for listing and selection.
type SessionSummary struct {
	Key          SessionKey
	Title        string
	MessageCount int
}

// SessionSummaries returns one summary per session, sorted by workspace,
// then title, then tab id. The sort gives callers a stable numbering across
// runs; the map's own iteration order is not part of the contract.
func (sm *SessionMap) SessionSummaries() []SessionSummary {
	summaries := make([]SessionSummary, 0, len(sm.keys))
	for _, key := range sm.keys {
		msgs := sm.sessions[key]
		if len(msgs) == 0 {
			continue
		}
		summaries = append(summaries, SessionSummary{
			Key:          key,
			Title:        msgs[0].ChatTitle,
			MessageCount: len(msgs),
		})
	}
	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].Key.Workspace != summaries[j].Key.Workspace {
			return summaries[i].Key.Workspace < summaries[j].Key.Workspace
		}
		if summaries[i].Title != summaries[j].Title {
			return summaries[i].Title < summaries[j].Title
		}
		return summaries[i].Key.TabID < summaries[j].Key.TabID
	})
	return summaries
}
