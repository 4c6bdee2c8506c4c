package service

import (
	"sync"
	"time"

	"relaybot/internal/domain"
	"relaybot/internal/repository"

	"go.uber.org/zap"
)

// RegistryService owns the in-memory user registry and writes it
// through to the store on every mutation. All access is serialized:
// the bot may dispatch updates concurrently and the snapshot write
// is not atomic across writers.
type RegistryService struct {
	store  repository.UserStore
	logger *zap.Logger

	mu    sync.Mutex
	users map[int64]*domain.User
	order []int64
}

// NewRegistryService creates a registry backed by the given store
func NewRegistryService(store repository.UserStore, logger *zap.Logger) *RegistryService {
	return &RegistryService{
		store:  store,
		logger: logger,
		users:  make(map[int64]*domain.User),
	}
}

// Load populates the registry from the store. Load failures leave the
// registry empty: a missing or corrupt snapshot must not stop the bot.
func (s *RegistryService) Load() {
	records, err := s.store.Load()
	if err != nil {
		s.logger.Warn("Failed to load user registry, starting empty", zap.Error(err))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range records {
		u := records[i]
		if _, exists := s.users[u.ID]; exists {
			continue
		}
		s.users[u.ID] = &u
		s.order = append(s.order, u.ID)
	}
	s.logger.Info("User registry loaded", zap.Int("users", len(s.order)))
}

// Upsert records inbound contact from a user. A new id gets an active
// record stamped with now; a known id gets its name and username
// refreshed and its status reset to active, keeping first_seen.
func (s *RegistryService) Upsert(id int64, name, username string, now time.Time) domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, exists := s.users[id]
	if !exists {
		u = &domain.User{
			ID:        id,
			Name:      name,
			Username:  username,
			FirstSeen: now,
			Status:    domain.StatusActive,
		}
		s.users[id] = u
		s.order = append(s.order, id)
		s.logger.Info("New user registered",
			zap.Int64("user_id", id),
			zap.String("name", name),
		)
	} else {
		u.Name = name
		u.Username = username
		u.Status = domain.StatusActive
	}

	s.persistLocked()
	return *u
}

// MarkBlocked flips a user to blocked. Idempotent; unknown ids are ignored.
func (s *RegistryService) MarkBlocked(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, exists := s.users[id]
	if !exists || u.Status == domain.StatusBlocked {
		return
	}
	u.Status = domain.StatusBlocked
	s.persistLocked()
}

// All returns every record in registration order
func (s *RegistryService) All() []domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked(func(*domain.User) bool { return true })
}

// ByStatus returns records with the given status, in registration order
func (s *RegistryService) ByStatus(status domain.Status) []domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked(func(u *domain.User) bool { return u.Status == status })
}

// Stats returns total, active and blocked counts
func (s *RegistryService) Stats() (total, active, blocked int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	total = len(s.order)
	for _, u := range s.users {
		switch u.Status {
		case domain.StatusActive:
			active++
		case domain.StatusBlocked:
			blocked++
		}
	}
	return total, active, blocked
}

// Persist writes the current registry to the store
func (s *RegistryService) Persist() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.persistLocked()
}

func (s *RegistryService) snapshotLocked(keep func(*domain.User) bool) []domain.User {
	var out []domain.User
	for _, id := range s.order {
		if u := s.users[id]; keep(u) {
			out = append(out, *u)
		}
	}
	return out
}

// persistLocked saves the full registry; failures are logged and
// swallowed so the triggering operation still completes.
func (s *RegistryService) persistLocked() {
	users := s.snapshotLocked(func(*domain.User) bool { return true })
	if err := s.store.Save(users); err != nil {
		s.logger.Error("Failed to persist user registry", zap.Error(err))
	}
}
