package service

import (
	"fmt"
	"testing"
	"time"

	"relaybot/internal/domain"
	"relaybot/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRegistryService_UpsertNewUser(t *testing.T) {
	store := new(testutil.MockUserStore)
	store.On("Save", mock.Anything).Return(nil)

	registry := NewRegistryService(store, testutil.NewTestLogger())
	now := time.Date(2024, 7, 1, 10, 30, 0, 0, time.UTC)

	u := registry.Upsert(1001, "Alice", "alice", now)

	assert.Equal(t, int64(1001), u.ID)
	assert.Equal(t, "Alice", u.Name)
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, now, u.FirstSeen)
	assert.Equal(t, domain.StatusActive, u.Status)

	total, active, blocked := registry.Stats()
	assert.Equal(t, 1, total)
	assert.Equal(t, 1, active)
	assert.Equal(t, 0, blocked)

	store.AssertNumberOfCalls(t, "Save", 1)
}

func TestRegistryService_UpsertIsIdempotent(t *testing.T) {
	store := new(testutil.MockUserStore)
	store.On("Save", mock.Anything).Return(nil)

	registry := NewRegistryService(store, testutil.NewTestLogger())
	first := time.Date(2024, 7, 1, 10, 30, 0, 0, time.UTC)
	later := first.Add(2 * time.Hour)

	registry.Upsert(1001, "Alice", "alice", first)
	u := registry.Upsert(1001, "Alice", "alice", later)

	// Second contact must not change first_seen or duplicate the record
	assert.Equal(t, first, u.FirstSeen)
	total, _, _ := registry.Stats()
	assert.Equal(t, 1, total)
}

func TestRegistryService_UpsertRefreshesNameAndReactivates(t *testing.T) {
	store := new(testutil.MockUserStore)
	store.On("Save", mock.Anything).Return(nil)

	registry := NewRegistryService(store, testutil.NewTestLogger())
	now := time.Now()

	registry.Upsert(1001, "Alice", "alice", now)
	registry.MarkBlocked(1001)

	u := registry.Upsert(1001, "Alice Cooper", "alicec", now.Add(time.Hour))

	assert.Equal(t, "Alice Cooper", u.Name)
	assert.Equal(t, "alicec", u.Username)
	assert.Equal(t, domain.StatusActive, u.Status)
}

func TestRegistryService_MarkBlocked(t *testing.T) {
	store := new(testutil.MockUserStore)
	store.On("Save", mock.Anything).Return(nil)

	registry := NewRegistryService(store, testutil.NewTestLogger())
	registry.Upsert(1001, "Alice", "", time.Now())

	registry.MarkBlocked(1001)
	blockedUsers := registry.ByStatus(domain.StatusBlocked)
	assert.Len(t, blockedUsers, 1)
	assert.Equal(t, int64(1001), blockedUsers[0].ID)

	// Idempotent: a second call must not persist again
	saves := len(store.Calls)
	registry.MarkBlocked(1001)
	assert.Len(t, store.Calls, saves)

	// Unknown id is ignored
	registry.MarkBlocked(9999)
	assert.Len(t, store.Calls, saves)
}

func TestRegistryService_WriteThroughPersistsEveryMutation(t *testing.T) {
	store := new(testutil.MockUserStore)
	var lastSaved []domain.User
	store.On("Save", mock.Anything).Run(func(args mock.Arguments) {
		lastSaved = args.Get(0).([]domain.User)
	}).Return(nil)

	registry := NewRegistryService(store, testutil.NewTestLogger())
	registry.Upsert(1001, "Alice", "alice", time.Now())
	registry.Upsert(1002, "Bob", "", time.Now())
	registry.MarkBlocked(1002)

	store.AssertNumberOfCalls(t, "Save", 3)
	assert.Len(t, lastSaved, 2)
	assert.Equal(t, domain.StatusBlocked, lastSaved[1].Status)
}

func TestRegistryService_PersistFailureDoesNotAbort(t *testing.T) {
	store := new(testutil.MockUserStore)
	store.On("Save", mock.Anything).Return(fmt.Errorf("disk full"))

	registry := NewRegistryService(store, testutil.NewTestLogger())
	u := registry.Upsert(1001, "Alice", "", time.Now())

	// The upsert still took effect in memory
	assert.Equal(t, domain.StatusActive, u.Status)
	total, _, _ := registry.Stats()
	assert.Equal(t, 1, total)
}

func TestRegistryService_LoadFailureStartsEmpty(t *testing.T) {
	store := new(testutil.MockUserStore)
	store.On("Load").Return(nil, fmt.Errorf("corrupt snapshot"))

	registry := NewRegistryService(store, testutil.NewTestLogger())
	registry.Load()

	total, _, _ := registry.Stats()
	assert.Equal(t, 0, total)
}

func TestRegistryService_LoadKeepsOrder(t *testing.T) {
	store := new(testutil.MockUserStore)
	store.On("Load").Return([]domain.User{
		testutil.NewTestUser(3, "Carol", domain.StatusActive),
		testutil.NewTestUser(1, "Alice", domain.StatusBlocked),
		testutil.NewTestUser(2, "Bob", domain.StatusActive),
	}, nil)

	registry := NewRegistryService(store, testutil.NewTestLogger())
	registry.Load()

	all := registry.All()
	assert.Len(t, all, 3)
	assert.Equal(t, int64(3), all[0].ID)
	assert.Equal(t, int64(1), all[1].ID)
	assert.Equal(t, int64(2), all[2].ID)

	active := registry.ByStatus(domain.StatusActive)
	assert.Len(t, active, 2)
	assert.Equal(t, int64(3), active[0].ID)
	assert.Equal(t, int64(2), active[1].ID)
}
