// Package store persists threads, messages, and contacts in sqlite.
package store

import "time"

// Message states.
const (
	MessageQueued = "queued"
	MessageSent   = "sent"
	MessageFailed = "failed"
)

// Thread kinds.
const (
	ThreadContact = "contact"
	ThreadGroup   = "group"
)

// Thread is a conversation with one contact or a group of them.
type Thread struct {
	ID   string `gorm:"primaryKey"`
	Kind string

	// Allowlisted reports whether the local profile is shared with this
	// thread. PendingRequest marks a thread the local user has not yet
	// accepted.
	Allowlisted    bool
	PendingRequest bool

	// TimerSeconds is the disappearing-message timer; zero means none.
	TimerSeconds int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Message is one outgoing message in a thread.
type Message struct {
	ID       string `gorm:"primaryKey"`
	ThreadID string `gorm:"index"`
	Body     string

	// QuotedMessageID references the message this one replies to.
	QuotedMessageID string

	State    string `gorm:"index"`
	QueuedAt time.Time
	SentAt   *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Contact is an addressable recipient.
type Contact struct {
	ID      string `gorm:"primaryKey"`
	Name    string
	Address string `gorm:"uniqueIndex"`

	// ThreadID links the contact to its one-to-one thread once one exists.
	ThreadID string

	CreatedAt time.Time
	UpdatedAt time.Time
}
