package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"taskboard/internal/domain"
	"taskboard/internal/repository"
)

var (
	ErrTaskNotFound         = errors.New("task not found")
	ErrAssignedUserNotFound = errors.New("assigned user not found")
	ErrInvalidStatus        = errors.New("invalid task status")
)

// Notifier receives task change events for the live board feed.
// Implementations must not block; the service calls them inline.
type Notifier interface {
	TaskCreated(task *domain.Task)
	TaskUpdated(task *domain.Task)
	TaskDeleted(id uuid.UUID)
}

type nopNotifier struct{}

func (nopNotifier) TaskCreated(*domain.Task) {}
func (nopNotifier) TaskUpdated(*domain.Task) {}
func (nopNotifier) TaskDeleted(uuid.UUID)    {}

type TaskService struct {
	taskRepo repository.TaskRepository
	userRepo repository.UserRepository
	notifier Notifier
}

func NewTaskService(taskRepo repository.TaskRepository, userRepo repository.UserRepository, notifier Notifier) *TaskService {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	return &TaskService{
		taskRepo: taskRepo,
		userRepo: userRepo,
		notifier: notifier,
	}
}

type CreateTaskInput struct {
	Title        string
	Description  string
	DueDate      time.Time
	AssignedUser uuid.UUID
}

// UpdateTaskInput carries partial-patch semantics: nil means "leave the
// field alone", which keeps "omitted" distinct from "set to empty".
type UpdateTaskInput struct {
	Title        *string        `json:"title"`
	Description  *string        `json:"description"`
	Status       *domain.Status `json:"status"`
	DueDate      *time.Time     `json:"dueDate"`
	AssignedUser *uuid.UUID     `json:"assignedUser"`
}

func (s *TaskService) Create(ctx context.Context, input CreateTaskInput) (*domain.Task, error) {
	assignee, err := s.userRepo.GetByID(ctx, input.AssignedUser)
	if err != nil {
		return nil, err
	}
	if assignee == nil {
		return nil, ErrAssignedUserNotFound
	}

	now := time.Now()
	task := &domain.Task{
		ID:           uuid.New(),
		Title:        input.Title,
		Description:  input.Description,
		DueDate:      input.DueDate,
		Status:       domain.StatusPending,
		AssignedUser: input.AssignedUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("creating task: %w", err)
	}

	s.notifier.TaskCreated(task)
	return task, nil
}

func (s *TaskService) List(ctx context.Context) ([]domain.TaskSummary, error) {
	return s.taskRepo.ListSummaries(ctx)
}

func (s *TaskService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	return task, nil
}

func (s *TaskService) Update(ctx context.Context, id uuid.UUID, input UpdateTaskInput) (*domain.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}

	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, ErrInvalidStatus
		}
		task.Status = *input.Status
	}
	if input.DueDate != nil {
		task.DueDate = *input.DueDate
	}
	if input.AssignedUser != nil {
		assignee, err := s.userRepo.GetByID(ctx, *input.AssignedUser)
		if err != nil {
			return nil, err
		}
		if assignee == nil {
			return nil, ErrAssignedUserNotFound
		}
		task.AssignedUser = *input.AssignedUser
	}
	task.UpdatedAt = time.Now()

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("updating task: %w", err)
	}

	s.notifier.TaskUpdated(task)
	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, id uuid.UUID) error {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if task == nil {
		return ErrTaskNotFound
	}

	if err := s.taskRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}

	s.notifier.TaskDeleted(id)
	return nil
}
