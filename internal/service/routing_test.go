package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoutingTable_RecordAndResolve(t *testing.T) {
	table := NewRoutingTable()

	table.Record(42, 1001)

	userID, ok := table.Resolve(42)
	assert.True(t, ok)
	assert.Equal(t, int64(1001), userID)

	_, ok = table.Resolve(43)
	assert.False(t, ok)
}

func TestRoutingTable_EntriesSurviveResolution(t *testing.T) {
	table := NewRoutingTable()
	table.Record(42, 1001)

	// Resolving must not consume the entry: the operator can reply to
	// the same thread more than once
	for i := 0; i < 3; i++ {
		userID, ok := table.Resolve(42)
		assert.True(t, ok)
		assert.Equal(t, int64(1001), userID)
	}
}

func TestRoutingTable_Size(t *testing.T) {
	table := NewRoutingTable()
	assert.Equal(t, 0, table.Size())

	table.Record(1, 100)
	table.Record(2, 100)
	table.Record(3, 200)
	assert.Equal(t, 3, table.Size())

	// Re-recording the same id does not grow the table
	table.Record(1, 300)
	assert.Equal(t, 3, table.Size())
}
