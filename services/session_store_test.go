package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionStoreContextWindow(t *testing.T) {
	store := NewSessionStore(2)
	store.Append("s1", "user", "hello")
	store.Append("s1", "bot", "hi, how can I help?")
	store.Append("s1", "user", "book me a dentist")

	// Only the last two turns fit the window.
	assert.Equal(t, "bot: hi, how can I help?\nuser: book me a dentist", store.ContextWindow("s1"))

	// The full transcript is still intact.
	history := store.History("s1")
	assert.Len(t, history, 3)
	assert.Equal(t, "hello", history[0].Message)
}

func TestSessionStoreSessionsAreIsolated(t *testing.T) {
	store := NewSessionStore(6)
	store.Append("s1", "user", "hello")

	assert.Empty(t, store.ContextWindow("s2"))
	assert.Empty(t, store.History("s2"))
}
