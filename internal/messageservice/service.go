// Package messageservice manages business logic layer of user messages.
package messageservice

import (
	"context"
	"strings"

	"github.com/gastos-dev/gastos/internal/domain"
)

// Repo provides data access layer interface needed by message service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package messageservice
type Repo interface {
	Create(ctx context.Context, owner, message string) (domain.UserMessage, error)
	Delete(ctx context.Context, owner string) error
}

// Service facilitates user message service layer logic.
type Service struct {
	repo Repo
}

// New returns message service struct to manage user message business logic.
func New(mr Repo) *Service {
	return &Service{repo: mr}
}

// Create stores a non-empty message for the owner.
func (s *Service) Create(ctx context.Context, owner, message string) (domain.UserMessage, error) {
	if strings.TrimSpace(message) == "" {
		return domain.UserMessage{}, domain.ErrEmptyMessage
	}

	return s.repo.Create(ctx, owner, message)
}

// Delete removes all messages of the owner.
func (s *Service) Delete(ctx context.Context, owner string) error {
	return s.repo.Delete(ctx, owner)
}
