package services

import (
	"fmt"
	"strings"
	"sync"

	"hospital-chatbot-backend/models"
)

// SessionStore keeps the per-session chat transcript in memory. It is
// append-only; readers only ever see the last-N window. The durable trail
// lives in the messages collection.
type SessionStore struct {
	mu       sync.RWMutex
	window   int
	sessions map[string][]models.HistoryEntry
}

func NewSessionStore(window int) *SessionStore {
	return &SessionStore{
		window:   window,
		sessions: make(map[string][]models.HistoryEntry),
	}
}

func (s *SessionStore) Append(sessionID, role, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = append(s.sessions[sessionID], models.HistoryEntry{
		Role:    role,
		Message: message,
	})
}

// History returns a copy of the full transcript for a session.
func (s *SessionStore) History(sessionID string) []models.HistoryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := s.sessions[sessionID]
	out := make([]models.HistoryEntry, len(entries))
	copy(out, entries)
	return out
}

// ContextWindow formats the last N turns as "role: message" lines for the
// LLM prompts.
func (s *SessionStore) ContextWindow(sessionID string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := s.sessions[sessionID]
	if len(entries) > s.window {
		entries = entries[len(entries)-s.window:]
	}

	var sb strings.Builder
	for _, entry := range entries {
		fmt.Fprintf(&sb, "%s: %s\n", entry.Role, entry.Message)
	}
	return strings.TrimRight(sb.String(), "\n")
}
