package service

import "sync"

// RoutingTable maps the id of each message forwarded to the operator
// back to the user who sent it. In-memory only; entries live for the
// whole process so the operator can reply to a thread more than once.
type RoutingTable struct {
	mu      sync.RWMutex
	entries map[int]int64
}

// NewRoutingTable creates an empty routing table
func NewRoutingTable() *RoutingTable {
	return &RoutingTable{entries: make(map[int]int64)}
}

// Record maps a forwarded message id to the originating user
func (t *RoutingTable) Record(relayMessageID int, userID int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries[relayMessageID] = userID
}

// Resolve returns the originating user for a forwarded message id
func (t *RoutingTable) Resolve(relayMessageID int) (int64, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	userID, ok := t.entries[relayMessageID]
	return userID, ok
}

// Size returns the number of open conversations
func (t *RoutingTable) Size() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}
