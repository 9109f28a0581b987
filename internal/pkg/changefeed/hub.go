package changefeed

import (
	"sync"
	"time"
)

// Table names carried by change events.
const (
	TableVacationRequests = "vacation_requests"
	TableAttendanceLogs   = "attendance_logs"
)

// Event is a coarse "something changed" signal for one table. It carries no
// row data; subscribers are expected to refetch.
type Event struct {
	Table string    `json:"table"`
	Op    string    `json:"op"`
	At    time.Time `json:"at"`
}

// Hub fans table-change events out to subscribers
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan Event]struct{}
}

// NewHub creates a new change-feed Hub instance
func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]map[chan Event]struct{}),
	}
}

// Subscribe registers a subscriber for the given tables and returns the event
// channel and cleanup function. The cleanup must be called when the consumer
// goes away or the channel leaks.
func (h *Hub) Subscribe(tables ...string) (chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Event, 10)

	for _, table := range tables {
		if h.subscribers[table] == nil {
			h.subscribers[table] = make(map[chan Event]struct{})
		}
		h.subscribers[table][ch] = struct{}{}
	}

	subscribed := make([]string, len(tables))
	copy(subscribed, tables)

	cleanup := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		for _, table := range subscribed {
			delete(h.subscribers[table], ch)
			if len(h.subscribers[table]) == 0 {
				delete(h.subscribers, table)
			}
		}
		close(ch)
	}

	return ch, cleanup
}

// Publish sends an event to all subscribers of a table
func (h *Hub) Publish(table, op string) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	event := Event{Table: table, Op: op, At: time.Now()}
	if subs, ok := h.subscribers[table]; ok {
		for ch := range subs {
			select {
			case ch <- event:
			default:
				// Skip if channel is full (non-blocking to prevent deadlock)
			}
		}
	}
}

// SubscriberCount returns the number of active subscribers for a table
func (h *Hub) SubscriberCount(table string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if subs, ok := h.subscribers[table]; ok {
		return len(subs)
	}
	return 0
}
