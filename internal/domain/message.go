package domain

import (
	"errors"
	"time"
)

// ErrEmptyMessage indicates an empty user message.
var ErrEmptyMessage = errors.New("message cannot be empty")

// UserMessage holds a free-form note left by an owner.
type UserMessage struct {
	Owner     string    `json:"owner"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}
