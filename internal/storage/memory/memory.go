// Package memory is the map-backed store. It is the development and
// test default; the pg package offers the same contract on postgres.
package memory

import (
	"context"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/goaltrack-dev/goaltrack/internal/domain"
	"github.com/goaltrack-dev/goaltrack/internal/errors"
)

type Storage struct {
	mu     sync.RWMutex
	users  map[domain.Email]*domain.User
	goals  map[domain.Email][]domain.Goal
	nextId domain.UserId
}

func New() *Storage {
	return &Storage{
		users:  make(map[domain.Email]*domain.User),
		goals:  make(map[domain.Email][]domain.Goal),
		nextId: 1,
	}
}

// Ping always succeeds: the map is as reachable as the process itself.
func (s *Storage) Ping(ctx context.Context) error {
	return nil
}

// SaveUser inserts a new account. Role assignment happens under the
// same lock as the insert, so exactly one account can ever observe an
// empty store and become the owner.
func (s *Storage) SaveUser(user domain.User) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.Email]; ok {
		return domain.User{}, &errors.ErrorWithStatusCode{Message: "User already exists", StatusCode: http.StatusBadRequest}
	}

	user.Id = s.nextId
	s.nextId++
	if len(s.users) == 0 {
		user.Role = domain.RoleOwner
	} else {
		user.Role = domain.RoleMember
	}
	user.CreatedAt = time.Now().UTC()

	s.users[user.Email] = &user
	return user, nil
}

func (s *Storage) UserByEmail(email domain.Email) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[email]
	if !ok {
		return domain.User{}, &errors.ErrorWithStatusCode{Message: "User not found", StatusCode: http.StatusNotFound}
	}
	return *user, nil
}

func (s *Storage) UserById(id domain.UserId) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Id == id {
			return *user, nil
		}
	}
	return domain.User{}, &errors.ErrorWithStatusCode{Message: "User not found", StatusCode: http.StatusNotFound}
}

func (s *Storage) Users() ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]domain.User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, *user)
	}
	sort.Slice(users, func(i, j int) bool {
		if !users[i].CreatedAt.Equal(users[j].CreatedAt) {
			return users[i].CreatedAt.After(users[j].CreatedAt)
		}
		return users[i].Id > users[j].Id
	})
	return users, nil
}

// DeleteUser removes the account and its goals under one lock, so no
// reader can observe the account gone while its goals remain.
func (s *Storage) DeleteUser(id domain.UserId) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for email, user := range s.users {
		if user.Id == id {
			delete(s.users, email)
			delete(s.goals, email)
			return nil
		}
	}
	return &errors.ErrorWithStatusCode{Message: "User not found", StatusCode: http.StatusNotFound}
}

// PromoteUser is the conditional member -> admin transition. Promoting
// an admin or the owner changes nothing and succeeds.
func (s *Storage) PromoteUser(email domain.Email) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[email]
	if !ok {
		return domain.User{}, &errors.ErrorWithStatusCode{Message: "User not found", StatusCode: http.StatusNotFound}
	}
	if user.Role == domain.RoleMember {
		user.Role = domain.RoleAdmin
	}
	return *user, nil
}

func (s *Storage) SaveGoal(goal domain.Goal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.goals[goal.OwnerEmail] = append(s.goals[goal.OwnerEmail], goal)
	return nil
}

// GoalsByOwner returns the owner's goals newest first. Goals are stored
// in creation order, so reversal is enough even when timestamps collide.
func (s *Storage) GoalsByOwner(owner domain.Email) ([]domain.Goal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.goals[owner]
	goals := make([]domain.Goal, 0, len(stored))
	for i := len(stored) - 1; i >= 0; i-- {
		goals = append(goals, stored[i])
	}
	return goals, nil
}

func (s *Storage) SetGoalCompleted(owner domain.Email, id domain.GoalId, completed bool) (domain.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	goals := s.goals[owner]
	for i := range goals {
		if goals[i].Id == id {
			goals[i].Completed = completed
			return goals[i], nil
		}
	}
	return domain.Goal{}, &errors.ErrorWithStatusCode{Message: "Goal not found", StatusCode: http.StatusNotFound}
}

func (s *Storage) DeleteGoal(owner domain.Email, id domain.GoalId) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	goals := s.goals[owner]
	for i := range goals {
		if goals[i].Id == id {
			s.goals[owner] = append(goals[:i:i], goals[i+1:]...)
			return nil
		}
	}
	return &errors.ErrorWithStatusCode{Message: "Goal not found", StatusCode: http.StatusNotFound}
}
