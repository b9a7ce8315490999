package tui

// EnqueueResultMsg carries the result of a durable message enqueue back
// into the compose flow.
type EnqueueResultMsg struct {
	MessageID   string
	Allowlisted bool // thread was newly added to the allowlist
	Err         error
}
