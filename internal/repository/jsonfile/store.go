package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"

	"relaybot/internal/domain"
)

// Store implements repository.UserStore on a single JSON snapshot file.
// Every Save rewrites the whole file; the snapshot is a map keyed by
// the user id.
type Store struct {
	path string
}

// NewStore creates a store backed by the given file path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the snapshot. A missing file is not an error and yields
// an empty set. Records come back ordered by first_seen, then id.
func (s *Store) Load() ([]domain.User, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	byID := make(map[string]domain.User)
	if err := json.Unmarshal(data, &byID); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}

	users := make([]domain.User, 0, len(byID))
	for _, u := range byID {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool {
		if !users[i].FirstSeen.Equal(users[j].FirstSeen) {
			return users[i].FirstSeen.Before(users[j].FirstSeen)
		}
		return users[i].ID < users[j].ID
	})
	return users, nil
}

// Save overwrites the snapshot with the given records
func (s *Store) Save(users []domain.User) error {
	byID := make(map[string]domain.User, len(users))
	for _, u := range users {
		byID[strconv.FormatInt(u.ID, 10)] = u
	}

	data, err := json.MarshalIndent(byID, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}
