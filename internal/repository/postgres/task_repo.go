package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"taskboard/internal/domain"
)

type TaskRepo struct {
	pool *pgxpool.Pool
}

func NewTaskRepo(pool *pgxpool.Pool) *TaskRepo {
	return &TaskRepo{pool: pool}
}

func (r *TaskRepo) Create(ctx context.Context, task *domain.Task) error {
	query := `
		INSERT INTO tasks (id, title, description, due_date, status, assigned_user, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, query,
		task.ID, task.Title, task.Description, task.DueDate,
		task.Status, task.AssignedUser, task.CreatedAt, task.UpdatedAt,
	)
	return err
}

func (r *TaskRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	var t domain.Task
	err := r.pool.QueryRow(ctx,
		"SELECT id, title, description, due_date, status, assigned_user, created_at, updated_at FROM tasks WHERE id = $1", id,
	).Scan(
		&t.ID, &t.Title, &t.Description, &t.DueDate,
		&t.Status, &t.AssignedUser, &t.CreatedAt, &t.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TaskRepo) ListSummaries(ctx context.Context) ([]domain.TaskSummary, error) {
	rows, err := r.pool.Query(ctx, "SELECT id, title FROM tasks ORDER BY created_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []domain.TaskSummary
	for rows.Next() {
		var s domain.TaskSummary
		if err := rows.Scan(&s.ID, &s.Title); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

func (r *TaskRepo) Update(ctx context.Context, task *domain.Task) error {
	query := `
		UPDATE tasks
		SET title = $2, description = $3, due_date = $4, status = $5, assigned_user = $6, updated_at = $7
		WHERE id = $1`

	_, err := r.pool.Exec(ctx, query,
		task.ID, task.Title, task.Description, task.DueDate,
		task.Status, task.AssignedUser, task.UpdatedAt,
	)
	return err
}

func (r *TaskRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, "DELETE FROM tasks WHERE id = $1", id)
	return err
}
