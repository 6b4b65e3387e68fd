package domain

import "time"

// MessageKind indicates who authored a thread message.
type MessageKind string

const (
	MessageKindSystem    MessageKind = "sistema"
	MessageKindAgent     MessageKind = "usuario"
	MessageKindRequester MessageKind = "franqueado"
)

// IsValid reports whether the kind is a known author type.
func (k MessageKind) IsValid() bool {
	switch k {
	case MessageKindSystem, MessageKindAgent, MessageKindRequester:
		return true
	}
	return false
}

// Message captures one entry of a ticket's chat thread. Insertion order is
// chronological order.
type Message struct {
	ID          string
	Author      string
	Text        string
	Timestamp   time.Time
	Kind        MessageKind
	Attachments []AttachmentReference
}

// AttachmentReference stores client-side file metadata. Files are never
// uploaded anywhere; only the reference travels with the message.
type AttachmentReference struct {
	FileName  string
	MimeType  string
	SizeBytes int64
}
