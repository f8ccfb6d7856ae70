package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"partyminder/internal/models"
	"partyminder/internal/storage"

	"github.com/lib/pq"
)

func (s *Storage) CreateUser(email, passwordHash string) (int, error) {
	query := `
		INSERT INTO users (email, password_hash)
		VALUES ($1, $2)
		RETURNING id`

	var id int
	err := s.DB.QueryRow(query, email, passwordHash).Scan(&id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return 0, storage.ErrUserExists
		}
		return 0, fmt.Errorf("failed to create user: %w", err)
	}

	return id, nil
}

func (s *Storage) GetUserByEmail(email string) (*models.User, error) {
	query := `
		SELECT id, email, password_hash, is_admin, created_at
		FROM users
		WHERE email = $1`

	return s.getUser(query, email)
}

func (s *Storage) GetUserByID(id int) (*models.User, error) {
	query := `
		SELECT id, email, password_hash, is_admin, created_at
		FROM users
		WHERE id = $1`

	return s.getUser(query, id)
}

func (s *Storage) getUser(query string, arg any) (*models.User, error) {
	var user models.User
	err := s.DB.QueryRow(query, arg).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.IsAdmin,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

func (s *Storage) CreateSession(token string, userID int, expiresAt time.Time) error {
	query := `
		INSERT INTO sessions (token, user_id, expires_at)
		VALUES ($1, $2, $3)`

	if _, err := s.DB.Exec(query, token, userID, expiresAt); err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	return nil
}

// GetUserBySession resolves a session token to its user. Expired sessions
// resolve to nothing.
func (s *Storage) GetUserBySession(token string) (*models.User, error) {
	query := `
		SELECT u.id, u.email, u.password_hash, u.is_admin, u.created_at
		FROM sessions s
		JOIN users u ON s.user_id = u.id
		WHERE s.token = $1 AND s.expires_at > NOW()`

	user, err := s.getUser(query, token)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, storage.ErrSessionNotFound
		}
		return nil, err
	}

	return user, nil
}

func (s *Storage) DeleteSession(token string) error {
	if _, err := s.DB.Exec(`DELETE FROM sessions WHERE token = $1`, token); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}
