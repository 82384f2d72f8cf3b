package domain

import "time"

type Goal struct {
	Id          GoalId    `json:"id"`
	OwnerEmail  Email     `json:"userId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
}
