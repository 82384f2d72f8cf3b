package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/goaltrack-dev/goaltrack/internal/domain"
)

type GoalService interface {
	Create(owner domain.Email, title, description string) (domain.Goal, error)
	List(owner domain.Email) ([]domain.Goal, error)
	SetCompleted(owner domain.Email, id domain.GoalId, completed bool) (domain.Goal, error)
	Delete(owner domain.Email, id domain.GoalId) error
}

// GoalStorage scopes every read and mutation by owner. A goal that
// exists but belongs to someone else must come back as a 404-status
// error, indistinguishable from a goal that doesn't exist.
type GoalStorage interface {
	SaveGoal(goal domain.Goal) error
	GoalsByOwner(owner domain.Email) ([]domain.Goal, error)
	SetGoalCompleted(owner domain.Email, id domain.GoalId, completed bool) (domain.Goal, error)
	DeleteGoal(owner domain.Email, id domain.GoalId) error
}

type Goal struct {
	storage GoalStorage
}

func NewGoal(storage GoalStorage) *Goal {
	return &Goal{storage: storage}
}

func (g *Goal) Create(owner domain.Email, title, description string) (domain.Goal, error) {
	goal := domain.Goal{
		Id:          uuid.NewString(),
		OwnerEmail:  owner,
		Title:       title,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
	if err := g.storage.SaveGoal(goal); err != nil {
		return domain.Goal{}, err
	}
	return goal, nil
}

// List returns the caller's goals, newest first.
func (g *Goal) List(owner domain.Email) ([]domain.Goal, error) {
	return g.storage.GoalsByOwner(owner)
}

func (g *Goal) SetCompleted(owner domain.Email, id domain.GoalId, completed bool) (domain.Goal, error) {
	return g.storage.SetGoalCompleted(owner, id, completed)
}

func (g *Goal) Delete(owner domain.Email, id domain.GoalId) error {
	return g.storage.DeleteGoal(owner, id)
}
