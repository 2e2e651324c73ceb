package chatbot

import "sync"

// DefaultMemoryLength is the number of turns sent with each prompt. Twice as
// many are stored.
const DefaultMemoryLength = 5

// Turn is one side of an exchange.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ConversationMemory keeps a bounded history per conversation id.
type ConversationMemory struct {
	mu       sync.Mutex
	maxTurns int
	history  map[string][]Turn
}

// NewConversationMemory stores at most 2*length turns per conversation.
func NewConversationMemory(length int) *ConversationMemory {
	if length <= 0 {
		length = DefaultMemoryLength
	}
	return &ConversationMemory{
		maxTurns: 2 * length,
		history:  make(map[string][]Turn),
	}
}

// History returns a copy of the stored turns, oldest first.
func (m *ConversationMemory) History(id string) []Turn {
	m.mu.Lock()
	defer m.mu.Unlock()

	turns := m.history[id]
	out := make([]Turn, len(turns))
	copy(out, turns)
	return out
}

// Recent returns a copy of at most the last n turns.
func (m *ConversationMemory) Recent(id string, n int) []Turn {
	m.mu.Lock()
	defer m.mu.Unlock()

	turns := m.history[id]
	if n < len(turns) {
		turns = turns[len(turns)-n:]
	}
	out := make([]Turn, len(turns))
	copy(out, turns)
	return out
}

// AppendExchange adds the user and assistant turns as one step, then drops
// the oldest turns above the cap.
func (m *ConversationMemory) AppendExchange(id, user, assistant string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	turns := append(m.history[id],
		Turn{Role: "user", Content: user},
		Turn{Role: "assistant", Content: assistant},
	)
	if len(turns) > m.maxTurns {
		trimmed := make([]Turn, m.maxTurns)
		copy(trimmed, turns[len(turns)-m.maxTurns:])
		turns = trimmed
	}
	m.history[id] = turns
}

// Clear deletes a conversation and reports whether it existed.
func (m *ConversationMemory) Clear(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.history[id]; !ok {
		return false
	}
	delete(m.history, id)
	return true
}

// Len returns the number of tracked conversations.
func (m *ConversationMemory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.history)
}
