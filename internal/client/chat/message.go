// Package chat implements the assistant chat session that runs in the
// terminal client: open/close state, a bounded message log and a single
// in-flight request at a time.
package chat

import "time"

// Role says who a message came from.
type Role string

const (
	RoleAssistant Role = "assistant"
	RoleUser      Role = "user"
	RoleError     Role = "error"
)

// Message is one entry in the chat log. ReplyTo links an assistant or
// error message to the user message it answers.
type Message struct {
	ID      string
	Role    Role
	Text    string
	Time    time.Time
	ReplyTo string
}
