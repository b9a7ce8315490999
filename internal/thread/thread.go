// Package thread implements the durable message enqueue and the
// profile-allowlist rules applied around sending.
package thread

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/parleychat/parley/internal/store"
)

// Draft is an outgoing message before it is enqueued.
type Draft struct {
	Body            string
	QuotedMessageID string
}

// EnqueueMessage durably records an outgoing message in the queued state.
// The send itself happens later; callers get the persisted message back
// immediately.
func EnqueueMessage(ctx context.Context, st *store.Store, threadID string, draft Draft) (*store.Message, error) {
	body := strings.TrimSpace(draft.Body)
	if body == "" {
		return nil, fmt.Errorf("thread: empty message body")
	}
	if _, err := st.ThreadByID(ctx, threadID); err != nil {
		return nil, fmt.Errorf("thread: resolving %s: %w", threadID, err)
	}

	m := &store.Message{
		ID:              uuid.NewString(),
		ThreadID:        threadID,
		Body:            body,
		QuotedMessageID: draft.QuotedMessageID,
		State:           store.MessageQueued,
		QueuedAt:        time.Now().UTC(),
	}
	if err := st.InsertMessage(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// AddThreadToAllowlistIfEmptyOrPendingRequest is called right before a send.
// A thread the local user initiated (no messages yet) or one with a pending
// message request gets the profile shared with it, and picks up the default
// disappearing-message timer if it has none. Reports whether the thread was
// just allowlisted.
func AddThreadToAllowlistIfEmptyOrPendingRequest(ctx context.Context, st *store.Store, threadID string, defaultTimerSeconds int) (bool, error) {
	t, err := st.ThreadByID(ctx, threadID)
	if err != nil {
		return false, fmt.Errorf("thread: resolving %s: %w", threadID, err)
	}

	if t.Allowlisted && !t.PendingRequest {
		return false, nil
	}

	count, err := st.ThreadMessageCount(ctx, threadID)
	if err != nil {
		return false, err
	}
	if count > 0 && !t.PendingRequest {
		return false, nil
	}

	wasAllowlisted := t.Allowlisted
	t.Allowlisted = true
	t.PendingRequest = false
	if t.TimerSeconds == 0 && defaultTimerSeconds > 0 {
		t.TimerSeconds = defaultTimerSeconds
	}
	if err := st.SaveThread(ctx, t); err != nil {
		return false, err
	}
	return !wasAllowlisted, nil
}

// DeleteAllContent purges every thread, message, and contact.
func DeleteAllContent(ctx context.Context, st *store.Store) error {
	return st.DeleteAllContent(ctx)
}
