// Package gameplay runs the two player views over a generated puzzle: the
// navigator walks one tile at a time, the explorer sees whole mazes through
// the fog.
package gameplay

const maxMessages = 5

// messageLog keeps the most recent feedback lines for a view
type messageLog struct {
	Messages []string
}

// AddMessage adds a message, keeping only the last few
func (l *messageLog) AddMessage(msg string) {
	l.Messages = append(l.Messages, msg)
	if len(l.Messages) > maxMessages {
		l.Messages = l.Messages[len(l.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (l *messageLog) ClearMessages() {
	l.Messages = l.Messages[:0]
}
