package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"taskboard/internal/domain"
)

type TaskRepo struct {
	mu    sync.RWMutex
	tasks map[uuid.UUID]domain.Task
}

func NewTaskRepo() *TaskRepo {
	return &TaskRepo{tasks: make(map[uuid.UUID]domain.Task)}
}

func (r *TaskRepo) Create(ctx context.Context, task *domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks[task.ID] = *task
	return nil
}

func (r *TaskRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tasks[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (r *TaskRepo) ListSummaries(ctx context.Context) ([]domain.TaskSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tasks := make([]domain.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		tasks = append(tasks, t)
	}
	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
	})
	summaries := make([]domain.TaskSummary, 0, len(tasks))
	for _, t := range tasks {
		summaries = append(summaries, domain.TaskSummary{ID: t.ID, Title: t.Title})
	}
	return summaries, nil
}

func (r *TaskRepo) Update(ctx context.Context, task *domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks[task.ID] = *task
	return nil
}

func (r *TaskRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tasks, id)
	return nil
}
