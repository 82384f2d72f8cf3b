package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/lib/pq"

	"github.com/goaltrack-dev/goaltrack/internal/domain"
	internal_errors "github.com/goaltrack-dev/goaltrack/internal/errors"
)

// =========================================================================
// Public Methods (satisfy the service storage interfaces)
// =========================================================================

// SaveUser inserts a new account. The insert and the owner-role decision
// run in one transaction holding an exclusive table lock, so two
// concurrent signups into an empty table cannot both become the owner.
func (s *Storage) SaveUser(user domain.User) (domain.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var saved domain.User
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.Exec("LOCK TABLE users IN EXCLUSIVE MODE"); err != nil {
			return fmt.Errorf("failed to lock users table: %w", err)
		}
		var err error
		saved, err = s.saveUser(tx, user)
		return err
	})
	return saved, err
}

// UserByEmail is a read-only lookup on the main connection pool.
func (s *Storage) UserByEmail(email domain.Email) (domain.User, error) {
	return s.userByEmail(s.db, email)
}

func (s *Storage) UserById(id domain.UserId) (domain.User, error) {
	return s.userById(s.db, id)
}

// Users returns all accounts, newest first.
func (s *Storage) Users() ([]domain.User, error) {
	rows, err := s.db.Query("SELECT id, email, password_hash, role, created_at FROM users ORDER BY created_at DESC, id DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.Id, &user.Email, &user.PassHash, &user.Role, &user.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// DeleteUser removes the account in a transaction; the goals FK's
// ON DELETE CASCADE removes the account's goals in the same atomic
// step, so no reader sees the account gone with goals remaining.
func (s *Storage) DeleteUser(id domain.UserId) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		return s.deleteUser(tx, id)
	})
}

// PromoteUser performs the member -> admin transition as a single
// conditional UPDATE, so concurrent promotions of the same target
// cannot interleave.
func (s *Storage) PromoteUser(email domain.Email) (domain.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var promoted domain.User
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		promoted, err = s.promoteUser(tx, email)
		return err
	})
	return promoted, err
}

// =========================================================================
// Internal Methods (Core Database Logic)
// These methods accept a Querier and are transaction-agnostic.
// =========================================================================

func (s *Storage) saveUser(q Querier, user domain.User) (domain.User, error) {
	err := q.QueryRow(`
		INSERT INTO users (email, password_hash, role)
		VALUES ($1, $2, CASE WHEN NOT EXISTS (SELECT 1 FROM users) THEN 'owner' ELSE 'member' END)
		RETURNING id, role, created_at`,
		user.Email, user.PassHash).Scan(&user.Id, &user.Role, &user.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return domain.User{}, &internal_errors.ErrorWithStatusCode{Message: "User already exists", StatusCode: http.StatusBadRequest}
		}
		return domain.User{}, fmt.Errorf("failed to insert user: %w", err)
	}
	return user, nil
}

func (s *Storage) userByEmail(q Querier, email domain.Email) (domain.User, error) {
	var user domain.User
	err := q.QueryRow("SELECT id, email, password_hash, role, created_at FROM users WHERE email = $1", email).
		Scan(&user.Id, &user.Email, &user.PassHash, &user.Role, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, &internal_errors.ErrorWithStatusCode{Message: "User not found", StatusCode: http.StatusNotFound}
		}
		return domain.User{}, fmt.Errorf("failed to query user: %w", err)
	}
	return user, nil
}

func (s *Storage) userById(q Querier, id domain.UserId) (domain.User, error) {
	var user domain.User
	err := q.QueryRow("SELECT id, email, password_hash, role, created_at FROM users WHERE id = $1", id).
		Scan(&user.Id, &user.Email, &user.PassHash, &user.Role, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, &internal_errors.ErrorWithStatusCode{Message: "User not found", StatusCode: http.StatusNotFound}
		}
		return domain.User{}, fmt.Errorf("failed to query user: %w", err)
	}
	return user, nil
}

func (s *Storage) deleteUser(q Querier, id domain.UserId) error {
	result, err := q.Exec("DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if affected == 0 {
		return &internal_errors.ErrorWithStatusCode{Message: "User not found", StatusCode: http.StatusNotFound}
	}
	return nil
}

func (s *Storage) promoteUser(q Querier, email domain.Email) (domain.User, error) {
	_, err := q.Exec("UPDATE users SET role = 'admin' WHERE email = $1 AND role = 'member'", email)
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to promote user: %w", err)
	}
	// Zero rows updated means either "already admin/owner" (no-op
	// success) or "no such user"; the read distinguishes them.
	return s.userByEmail(q, email)
}
