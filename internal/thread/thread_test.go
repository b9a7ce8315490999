package thread

import (
	"context"
	"testing"

	"github.com/parleychat/parley/internal/store"
)

func setup(t *testing.T) (*store.Store, string) {
	t.Helper()
	st, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	c, err := st.AddContact(context.Background(), "Alice", "+15550001111")
	if err != nil {
		t.Fatalf("adding contact: %v", err)
	}
	th, err := st.FindOrCreateThread(context.Background(), []store.Contact{*c})
	if err != nil {
		t.Fatalf("creating thread: %v", err)
	}
	return st, th.ID
}

func TestEnqueueMessage(t *testing.T) {
	st, threadID := setup(t)
	ctx := context.Background()

	m, err := EnqueueMessage(ctx, st, threadID, Draft{Body: "  hello  "})
	if err != nil {
		t.Fatalf("enqueueing: %v", err)
	}
	if m.Body != "hello" {
		t.Errorf("body = %q, want trimmed %q", m.Body, "hello")
	}
	if m.State != store.MessageQueued {
		t.Errorf("state = %q, want %q", m.State, store.MessageQueued)
	}

	queued, err := st.QueuedMessages(ctx)
	if err != nil {
		t.Fatalf("listing queued: %v", err)
	}
	if len(queued) != 1 || queued[0].ID != m.ID {
		t.Errorf("queued = %+v, want the enqueued message", queued)
	}
}

func TestEnqueueMessage_RejectsEmptyBody(t *testing.T) {
	st, threadID := setup(t)
	if _, err := EnqueueMessage(context.Background(), st, threadID, Draft{Body: "   "}); err == nil {
		t.Fatal("expected error for blank body")
	}
}

func TestEnqueueMessage_UnknownThread(t *testing.T) {
	st, _ := setup(t)
	if _, err := EnqueueMessage(context.Background(), st, "no-such-thread", Draft{Body: "hi"}); err == nil {
		t.Fatal("expected error for unknown thread")
	}
}

func TestEnqueueMessage_CarriesQuotedReply(t *testing.T) {
	st, threadID := setup(t)
	ctx := context.Background()

	orig, err := EnqueueMessage(ctx, st, threadID, Draft{Body: "original"})
	if err != nil {
		t.Fatalf("enqueueing original: %v", err)
	}
	reply, err := EnqueueMessage(ctx, st, threadID, Draft{Body: "reply", QuotedMessageID: orig.ID})
	if err != nil {
		t.Fatalf("enqueueing reply: %v", err)
	}
	if reply.QuotedMessageID != orig.ID {
		t.Errorf("quoted id = %q, want %q", reply.QuotedMessageID, orig.ID)
	}
}

func TestAllowlist_EmptyThreadGetsAllowlistedAndTimer(t *testing.T) {
	st, threadID := setup(t)
	ctx := context.Background()

	added, err := AddThreadToAllowlistIfEmptyOrPendingRequest(ctx, st, threadID, 3600)
	if err != nil {
		t.Fatalf("allowlisting: %v", err)
	}
	if !added {
		t.Error("empty thread should report newly allowlisted")
	}

	th, err := st.ThreadByID(ctx, threadID)
	if err != nil {
		t.Fatalf("fetching thread: %v", err)
	}
	if !th.Allowlisted {
		t.Error("thread not allowlisted")
	}
	if th.TimerSeconds != 3600 {
		t.Errorf("timer = %d, want default 3600", th.TimerSeconds)
	}
}

func TestAllowlist_SecondCallIsNoop(t *testing.T) {
	st, threadID := setup(t)
	ctx := context.Background()

	if _, err := AddThreadToAllowlistIfEmptyOrPendingRequest(ctx, st, threadID, 3600); err != nil {
		t.Fatalf("first allowlist: %v", err)
	}
	added, err := AddThreadToAllowlistIfEmptyOrPendingRequest(ctx, st, threadID, 3600)
	if err != nil {
		t.Fatalf("second allowlist: %v", err)
	}
	if added {
		t.Error("already-allowlisted thread reported as newly added")
	}
}

func TestAllowlist_NonEmptyThreadWithoutRequestIsSkipped(t *testing.T) {
	st, threadID := setup(t)
	ctx := context.Background()

	if _, err := EnqueueMessage(ctx, st, threadID, Draft{Body: "hi"}); err != nil {
		t.Fatalf("enqueueing: %v", err)
	}
	added, err := AddThreadToAllowlistIfEmptyOrPendingRequest(ctx, st, threadID, 0)
	if err != nil {
		t.Fatalf("allowlisting: %v", err)
	}
	if added {
		t.Error("thread with history should not be auto-allowlisted")
	}
	th, _ := st.ThreadByID(ctx, threadID)
	if th.Allowlisted {
		t.Error("thread with history was allowlisted")
	}
}

func TestAllowlist_PendingRequestOverridesHistory(t *testing.T) {
	st, threadID := setup(t)
	ctx := context.Background()

	if _, err := EnqueueMessage(ctx, st, threadID, Draft{Body: "hi"}); err != nil {
		t.Fatalf("enqueueing: %v", err)
	}
	th, _ := st.ThreadByID(ctx, threadID)
	th.PendingRequest = true
	if err := st.SaveThread(ctx, th); err != nil {
		t.Fatalf("saving thread: %v", err)
	}

	added, err := AddThreadToAllowlistIfEmptyOrPendingRequest(ctx, st, threadID, 0)
	if err != nil {
		t.Fatalf("allowlisting: %v", err)
	}
	if !added {
		t.Error("pending request thread should be allowlisted despite history")
	}
	th, _ = st.ThreadByID(ctx, threadID)
	if th.PendingRequest {
		t.Error("pending flag not cleared")
	}
}

func TestAllowlist_PreservesExistingTimer(t *testing.T) {
	st, threadID := setup(t)
	ctx := context.Background()

	th, _ := st.ThreadByID(ctx, threadID)
	th.TimerSeconds = 60
	if err := st.SaveThread(ctx, th); err != nil {
		t.Fatalf("saving thread: %v", err)
	}

	if _, err := AddThreadToAllowlistIfEmptyOrPendingRequest(ctx, st, threadID, 3600); err != nil {
		t.Fatalf("allowlisting: %v", err)
	}
	th, _ = st.ThreadByID(ctx, threadID)
	if th.TimerSeconds != 60 {
		t.Errorf("timer = %d, existing 60 should be preserved", th.TimerSeconds)
	}
}

func TestDeleteAllContent(t *testing.T) {
	st, threadID := setup(t)
	ctx := context.Background()

	if _, err := EnqueueMessage(ctx, st, threadID, Draft{Body: "hi"}); err != nil {
		t.Fatalf("enqueueing: %v", err)
	}
	if err := DeleteAllContent(ctx, st); err != nil {
		t.Fatalf("purging: %v", err)
	}
	queued, _ := st.QueuedMessages(ctx)
	if len(queued) != 0 {
		t.Errorf("queued after purge = %d, want 0", len(queued))
	}
}
