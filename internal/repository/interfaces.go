package repository

import (
	"context"

	"github.com/google/uuid"

	"taskboard/internal/domain"
)

// Repositories return (nil, nil) when the requested record does not
// exist; errors are reserved for the storage layer itself.

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	ListSummaries(ctx context.Context) ([]domain.TaskSummary, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id uuid.UUID) error
}
