package chat

// Role identifies who wrote a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single chat turn.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Transcript is an append-only chat history.
type Transcript struct {
	messages []Message
}

// Append adds a message to the end of the transcript.
func (t *Transcript) Append(role Role, content string) {
	t.messages = append(t.messages, Message{Role: role, Content: content})
}

// Messages returns a copy of the transcript in order.
func (t *Transcript) Messages() []Message {
	return append([]Message{}, t.messages...)
}

// Len returns the number of messages.
func (t *Transcript) Len() int {
	return len(t.messages)
}

// Clear removes every message.
func (t *Transcript) Clear() {
	t.messages = nil
}
