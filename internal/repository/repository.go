package repository

import "relaybot/internal/domain"

// UserStore persists the full user registry snapshot.
// Load returns records in stable order (first seen first);
// Save replaces the stored snapshot with the given set.
type UserStore interface {
	Load() ([]domain.User, error)
	Save(users []domain.User) error
}
