package thread

import (
	"context"

	"github.com/parleychat/parley/internal/store"
)

// Service bundles the store with the send-side policy: thread resolution,
// allowlisting, and the durable enqueue, in that order.
type Service struct {
	Store               *store.Store
	DefaultTimerSeconds int
}

// Receipt describes a completed enqueue.
type Receipt struct {
	Message     *store.Message
	ThreadID    string
	Allowlisted bool // thread was newly allowlisted by this send
}

// EnqueueForContacts resolves the thread for the recipient set, applies the
// allowlist-on-send rule, and enqueues the draft.
func (s *Service) EnqueueForContacts(ctx context.Context, contactIDs []string, draft Draft) (*Receipt, error) {
	contacts, err := s.Store.ContactsByIDs(ctx, contactIDs)
	if err != nil {
		return nil, err
	}
	th, err := s.Store.FindOrCreateThread(ctx, contacts)
	if err != nil {
		return nil, err
	}

	added, err := AddThreadToAllowlistIfEmptyOrPendingRequest(ctx, s.Store, th.ID, s.DefaultTimerSeconds)
	if err != nil {
		return nil, err
	}

	m, err := EnqueueMessage(ctx, s.Store, th.ID, draft)
	if err != nil {
		return nil, err
	}

	return &Receipt{Message: m, ThreadID: th.ID, Allowlisted: added}, nil
}
