// Package outbound drains queued messages, segments each one under the byte
// budget, and hands every chunk to the transport in order.
package outbound

import "github.com/google/uuid"

// Message is one logical text to deliver. It may span several protocol lines
// once segmented; the ID ties the chunks together in logs.
type Message struct {
	ID     uuid.UUID
	Target string
	Text   string
}

func NewMessage(target, text string) Message {
	return Message{ID: uuid.New(), Target: target, Text: text}
}
