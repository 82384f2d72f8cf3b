package pg

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/goaltrack-dev/goaltrack/internal/domain"
	internal_errors "github.com/goaltrack-dev/goaltrack/internal/errors"
)

// Every query here filters by owner_email, so a goal owned by someone
// else is indistinguishable from a goal that doesn't exist.

func (s *Storage) SaveGoal(goal domain.Goal) error {
	_, err := s.db.Exec(`
		INSERT INTO goals (id, owner_email, title, description, completed, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		goal.Id, goal.OwnerEmail, goal.Title, goal.Description, goal.Completed, goal.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert goal: %w", err)
	}
	return nil
}

func (s *Storage) GoalsByOwner(owner domain.Email) ([]domain.Goal, error) {
	rows, err := s.db.Query(`
		SELECT id, owner_email, title, description, completed, created_at
		FROM goals
		WHERE owner_email = $1
		ORDER BY created_at DESC, id DESC`, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to query goals: %w", err)
	}
	defer rows.Close()

	goals := []domain.Goal{}
	for rows.Next() {
		var goal domain.Goal
		if err := rows.Scan(&goal.Id, &goal.OwnerEmail, &goal.Title, &goal.Description, &goal.Completed, &goal.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan goal row: %w", err)
		}
		goals = append(goals, goal)
	}
	return goals, rows.Err()
}

func (s *Storage) SetGoalCompleted(owner domain.Email, id domain.GoalId, completed bool) (domain.Goal, error) {
	var goal domain.Goal
	err := s.db.QueryRow(`
		UPDATE goals SET completed = $1
		WHERE id = $2 AND owner_email = $3
		RETURNING id, owner_email, title, description, completed, created_at`,
		completed, id, owner).
		Scan(&goal.Id, &goal.OwnerEmail, &goal.Title, &goal.Description, &goal.Completed, &goal.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Goal{}, &internal_errors.ErrorWithStatusCode{Message: "Goal not found", StatusCode: http.StatusNotFound}
		}
		return domain.Goal{}, fmt.Errorf("failed to update goal: %w", err)
	}
	return goal, nil
}

func (s *Storage) DeleteGoal(owner domain.Email, id domain.GoalId) error {
	result, err := s.db.Exec("DELETE FROM goals WHERE id = $1 AND owner_email = $2", id, owner)
	if err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if affected == 0 {
		return &internal_errors.ErrorWithStatusCode{Message: "Goal not found", StatusCode: http.StatusNotFound}
	}
	return nil
}
