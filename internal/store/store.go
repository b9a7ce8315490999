package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("store: not found")

// Store wraps the sqlite database with the queries parley needs.
type Store struct {
	db *gorm.DB
}

// AddContact inserts a contact, returning the existing one when the
// address is already known.
func (s *Store) AddContact(ctx context.Context, name, address string) (*Contact, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, fmt.Errorf("store: empty contact address")
	}

	var existing Contact
	err := s.db.WithContext(ctx).Where("address = ?", address).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("store: looking up contact %s: %w", address, err)
	}

	c := Contact{
		ID:      uuid.NewString(),
		Name:    strings.TrimSpace(name),
		Address: address,
	}
	if err := s.db.WithContext(ctx).Create(&c).Error; err != nil {
		return nil, fmt.Errorf("store: creating contact %s: %w", address, err)
	}
	return &c, nil
}

// ContactsByIDs fetches the contacts with the given IDs, erroring if any
// is missing.
func (s *Store) ContactsByIDs(ctx context.Context, ids []string) ([]Contact, error) {
	var contacts []Contact
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&contacts).Error; err != nil {
		return nil, fmt.Errorf("store: fetching contacts: %w", err)
	}
	if len(contacts) != len(ids) {
		return nil, fmt.Errorf("store: %d of %d contacts not found: %w", len(ids)-len(contacts), len(ids), ErrNotFound)
	}
	return contacts, nil
}

// ListContacts returns all contacts ordered by name.
func (s *Store) ListContacts(ctx context.Context) ([]Contact, error) {
	var contacts []Contact
	if err := s.db.WithContext(ctx).Order("name").Find(&contacts).Error; err != nil {
		return nil, fmt.Errorf("store: listing contacts: %w", err)
	}
	return contacts, nil
}

// ThreadByID fetches a thread.
func (s *Store) ThreadByID(ctx context.Context, id string) (*Thread, error) {
	var t Thread
	err := s.db.WithContext(ctx).First(&t, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: fetching thread %s: %w", id, err)
	}
	return &t, nil
}

// SaveThread persists thread field changes.
func (s *Store) SaveThread(ctx context.Context, t *Thread) error {
	if err := s.db.WithContext(ctx).Save(t).Error; err != nil {
		return fmt.Errorf("store: saving thread %s: %w", t.ID, err)
	}
	return nil
}

// FindOrCreateThread resolves the thread for a recipient set: the
// contact's one-to-one thread for a single recipient, a new group thread
// otherwise. Group threads are keyed by the sorted contact IDs so repeat
// sends to the same set reuse the thread.
func (s *Store) FindOrCreateThread(ctx context.Context, contacts []Contact) (*Thread, error) {
	if len(contacts) == 0 {
		return nil, fmt.Errorf("store: no recipients")
	}

	if len(contacts) == 1 {
		return s.findOrCreateContactThread(ctx, contacts[0])
	}

	ids := make([]string, len(contacts))
	for i, c := range contacts {
		ids[i] = c.ID
	}
	sort.Strings(ids)
	groupKey := "group:" + strings.Join(ids, ",")

	var t Thread
	err := s.db.WithContext(ctx).First(&t, "id = ?", groupKey).Error
	if err == nil {
		return &t, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("store: looking up group thread: %w", err)
	}

	t = Thread{ID: groupKey, Kind: ThreadGroup}
	if err := s.db.WithContext(ctx).Create(&t).Error; err != nil {
		return nil, fmt.Errorf("store: creating group thread: %w", err)
	}
	return &t, nil
}

func (s *Store) findOrCreateContactThread(ctx context.Context, c Contact) (*Thread, error) {
	if c.ThreadID != "" {
		t, err := s.ThreadByID(ctx, c.ThreadID)
		if err == nil {
			return t, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return nil, err
		}
	}

	t := Thread{ID: uuid.NewString(), Kind: ThreadContact}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&t).Error; err != nil {
			return err
		}
		return tx.Model(&Contact{}).Where("id = ?", c.ID).Update("thread_id", t.ID).Error
	})
	if err != nil {
		return nil, fmt.Errorf("store: creating contact thread: %w", err)
	}
	return &t, nil
}

// InsertMessage persists a message.
func (s *Store) InsertMessage(ctx context.Context, m *Message) error {
	if err := s.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("store: inserting message: %w", err)
	}
	return nil
}

// ThreadMessageCount counts messages in a thread.
func (s *Store) ThreadMessageCount(ctx context.Context, threadID string) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&Message{}).Where("thread_id = ?", threadID).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("store: counting messages in %s: %w", threadID, err)
	}
	return n, nil
}

// QueuedMessages returns all messages still waiting to be sent, oldest
// first.
func (s *Store) QueuedMessages(ctx context.Context) ([]Message, error) {
	var msgs []Message
	err := s.db.WithContext(ctx).
		Where("state = ?", MessageQueued).
		Order("queued_at").
		Find(&msgs).Error
	if err != nil {
		return nil, fmt.Errorf("store: listing queued messages: %w", err)
	}
	return msgs, nil
}

// MarkMessageSent transitions a message to the sent state.
func (s *Store) MarkMessageSent(ctx context.Context, id string) error {
	now := time.Now().UTC()
	res := s.db.WithContext(ctx).Model(&Message{}).
		Where("id = ? AND state = ?", id, MessageQueued).
		Updates(map[string]any{"state": MessageSent, "sent_at": &now})
	if res.Error != nil {
		return fmt.Errorf("store: marking message %s sent: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteAllContent removes every thread, message, and contact in one
// transaction.
func (s *Store) DeleteAllContent(ctx context.Context) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range []any{&Message{}, &Thread{}, &Contact{}} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("store: deleting all content: %w", err)
	}
	return nil
}
