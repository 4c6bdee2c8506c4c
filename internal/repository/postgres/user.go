package postgres

import (
	"database/sql"
	"fmt"

	"relaybot/internal/domain"
)

// UserStore implements repository.UserStore on PostgreSQL
type UserStore struct {
	db *sql.DB
}

// NewUserStore creates a new user store
func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

// Load returns all user records ordered by first_seen, then id
func (s *UserStore) Load() ([]domain.User, error) {
	query := `
		SELECT user_id, name, COALESCE(username, ''), first_seen, status
		FROM users
		ORDER BY first_seen, user_id
	`
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Username, &u.FirstSeen, &u.Status); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}

// Save upserts every given record in one transaction
func (s *UserStore) Save(users []domain.User) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO users (user_id, name, username, first_seen, status)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id)
		DO UPDATE SET name = $2, username = $3, status = $5
	`
	for _, u := range users {
		if _, err := tx.Exec(query, u.ID, u.Name, u.Username, u.FirstSeen, string(u.Status)); err != nil {
			return fmt.Errorf("upsert user %d: %w", u.ID, err)
		}
	}

	return tx.Commit()
}
