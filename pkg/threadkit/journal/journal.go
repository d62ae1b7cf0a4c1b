// Package journal records thread lifecycle transitions for later
// inspection: when a thread was created, started, finished, or detached.
//
// A journal is optional. Threads write entries best-effort when one is
// attached; journal failures never affect the lifecycle itself.
package journal

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Event is a lifecycle transition kind.
type Event string

// Lifecycle event constants.
const (
	EventCreated  Event = "created"
	EventStarted  Event = "started"
	EventFinished Event = "finished"
	EventDetached Event = "detached"
	EventClosed   Event = "closed"
)

// Entry is one recorded lifecycle transition.
type Entry struct {
	// ID uniquely identifies this entry.
	ID string `json:"id"`

	// ThreadID is the thread the transition belongs to.
	ThreadID string `json:"thread_id"`

	// Event is the transition kind.
	Event Event `json:"event"`

	// At is when the transition was recorded.
	At time.Time `json:"at"`
}

// NewEntry creates an entry for a thread transition, stamped now.
func NewEntry(threadID string, event Event) *Entry {
	return &Entry{
		ID:       fmt.Sprintf("jrn-%s", uuid.New().String()[:8]),
		ThreadID: threadID,
		Event:    event,
		At:       time.Now().UTC(),
	}
}

// Sentinel errors for journal stores.
var (
	// ErrStoreClosed indicates an operation on a closed store.
	ErrStoreClosed = errors.New("journal store is closed")
)

// Store persists lifecycle entries.
type Store interface {
	// Append records an entry.
	Append(ctx context.Context, e *Entry) error

	// ListByThread returns all entries for a thread in append order.
	ListByThread(ctx context.Context, threadID string) ([]*Entry, error)

	// Close releases the store's resources.
	Close() error
}

// MemoryStore is an in-memory Store implementation.
type MemoryStore struct {
	mu       sync.RWMutex
	entries  []*Entry
	byThread map[string][]int
	closed   bool
}

// Compile-time interface check.
var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory journal store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byThread: make(map[string][]int),
	}
}

// Append records an entry.
func (s *MemoryStore) Append(_ context.Context, e *Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	clone := *e
	if clone.ID == "" {
		clone.ID = fmt.Sprintf("jrn-%s", uuid.New().String()[:8])
	}
	if clone.At.IsZero() {
		clone.At = time.Now().UTC()
	}

	s.byThread[clone.ThreadID] = append(s.byThread[clone.ThreadID], len(s.entries))
	s.entries = append(s.entries, &clone)
	return nil
}

// ListByThread returns the entries for a thread in append order.
func (s *MemoryStore) ListByThread(_ context.Context, threadID string) ([]*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	indexes := s.byThread[threadID]
	out := make([]*Entry, 0, len(indexes))
	for _, i := range indexes {
		clone := *s.entries[i]
		out = append(out, &clone)
	}
	return out, nil
}

// Close marks the store closed. Further operations return ErrStoreClosed.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
