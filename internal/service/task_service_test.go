package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"taskboard/internal/domain"
	"taskboard/internal/repository/memory"
)

type recordingNotifier struct {
	created []uuid.UUID
	updated []uuid.UUID
	deleted []uuid.UUID
}

func (n *recordingNotifier) TaskCreated(t *domain.Task) { n.created = append(n.created, t.ID) }
func (n *recordingNotifier) TaskUpdated(t *domain.Task) { n.updated = append(n.updated, t.ID) }
func (n *recordingNotifier) TaskDeleted(id uuid.UUID)   { n.deleted = append(n.deleted, id) }

func newTaskFixture(t *testing.T) (*TaskService, *memory.TaskRepo, *domain.User, *recordingNotifier) {
	t.Helper()
	userRepo := memory.NewUserRepo()
	taskRepo := memory.NewTaskRepo()
	notifier := &recordingNotifier{}

	user := &domain.User{
		ID:        uuid.New(),
		Name:      "Ana",
		Email:     "ana@example.com",
		CreatedAt: time.Now(),
	}
	if err := userRepo.Create(context.Background(), user); err != nil {
		t.Fatalf("seeding user: %v", err)
	}

	return NewTaskService(taskRepo, userRepo, notifier), taskRepo, user, notifier
}

func createTask(t *testing.T, svc *TaskService, assignee uuid.UUID) *domain.Task {
	t.Helper()
	task, err := svc.Create(context.Background(), CreateTaskInput{
		Title:        "Ship release",
		Description:  "Cut v2 and publish notes",
		DueDate:      time.Now().Add(48 * time.Hour),
		AssignedUser: assignee,
	})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}
	return task
}

func TestCreateTaskDefaultsToPending(t *testing.T) {
	svc, _, user, notifier := newTaskFixture(t)

	task := createTask(t, svc, user.ID)

	if task.Status != domain.StatusPending {
		t.Errorf("expected status Pending, got %s", task.Status)
	}
	if task.AssignedUser != user.ID {
		t.Errorf("expected assignee %s, got %s", user.ID, task.AssignedUser)
	}
	if len(notifier.created) != 1 || notifier.created[0] != task.ID {
		t.Errorf("expected one created event for %s, got %v", task.ID, notifier.created)
	}
}

func TestCreateTaskUnknownAssigneePersistsNothing(t *testing.T) {
	svc, taskRepo, _, notifier := newTaskFixture(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateTaskInput{
		Title:        "Orphan",
		Description:  "Assigned to nobody",
		DueDate:      time.Now(),
		AssignedUser: uuid.New(),
	})
	if !errors.Is(err, ErrAssignedUserNotFound) {
		t.Fatalf("expected ErrAssignedUserNotFound, got %v", err)
	}

	summaries, err := taskRepo.ListSummaries(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(summaries) != 0 {
		t.Errorf("expected no persisted tasks, got %d", len(summaries))
	}
	if len(notifier.created) != 0 {
		t.Errorf("expected no created events, got %v", notifier.created)
	}
}

func TestListReturnsSummariesOnly(t *testing.T) {
	svc, _, user, _ := newTaskFixture(t)

	task := createTask(t, svc, user.ID)

	summaries, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("expected 1 summary, got %d", len(summaries))
	}
	if summaries[0].ID != task.ID || summaries[0].Title != task.Title {
		t.Errorf("unexpected summary %+v", summaries[0])
	}
}

func TestGetByIDNotFound(t *testing.T) {
	svc, _, _, _ := newTaskFixture(t)

	if _, err := svc.GetByID(context.Background(), uuid.New()); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestUpdateEmptyPatchOnlyTouchesUpdatedAt(t *testing.T) {
	svc, _, user, _ := newTaskFixture(t)
	ctx := context.Background()

	task := createTask(t, svc, user.ID)
	before := *task
	time.Sleep(5 * time.Millisecond)

	updated, err := svc.Update(ctx, task.ID, UpdateTaskInput{})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.Title != before.Title || updated.Description != before.Description ||
		updated.Status != before.Status || !updated.DueDate.Equal(before.DueDate) ||
		updated.AssignedUser != before.AssignedUser {
		t.Errorf("empty patch changed fields: before %+v, after %+v", before, updated)
	}
	if !updated.UpdatedAt.After(before.UpdatedAt) {
		t.Error("expected UpdatedAt to advance")
	}
}

func TestUpdatePatchesOnlyProvidedFields(t *testing.T) {
	svc, _, user, notifier := newTaskFixture(t)
	ctx := context.Background()

	task := createTask(t, svc, user.ID)

	status := domain.StatusCompleted
	updated, err := svc.Update(ctx, task.ID, UpdateTaskInput{Status: &status})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.Status != domain.StatusCompleted {
		t.Errorf("expected status Completed, got %s", updated.Status)
	}
	if updated.Title != task.Title {
		t.Errorf("title changed: %q -> %q", task.Title, updated.Title)
	}
	if len(notifier.updated) != 1 {
		t.Errorf("expected one updated event, got %v", notifier.updated)
	}
}

// A patched empty string is applied, not treated as "field omitted".
func TestUpdateDistinguishesAbsentFromEmpty(t *testing.T) {
	svc, _, user, _ := newTaskFixture(t)

	task := createTask(t, svc, user.ID)

	empty := ""
	updated, err := svc.Update(context.Background(), task.ID, UpdateTaskInput{Description: &empty})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Description != "" {
		t.Errorf("expected description cleared, got %q", updated.Description)
	}
	if updated.Title != task.Title {
		t.Error("omitted title should be untouched")
	}
}

func TestUpdateRejectsInvalidStatus(t *testing.T) {
	svc, _, user, _ := newTaskFixture(t)

	task := createTask(t, svc, user.ID)

	status := domain.Status("Done")
	if _, err := svc.Update(context.Background(), task.ID, UpdateTaskInput{Status: &status}); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestUpdateReValidatesAssignee(t *testing.T) {
	svc, _, user, _ := newTaskFixture(t)

	task := createTask(t, svc, user.ID)

	ghost := uuid.New()
	if _, err := svc.Update(context.Background(), task.ID, UpdateTaskInput{AssignedUser: &ghost}); !errors.Is(err, ErrAssignedUserNotFound) {
		t.Errorf("expected ErrAssignedUserNotFound, got %v", err)
	}

	got, err := svc.GetByID(context.Background(), task.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.AssignedUser != user.ID {
		t.Errorf("assignee changed despite failed update: %s", got.AssignedUser)
	}
}

func TestUpdateNotFound(t *testing.T) {
	svc, _, _, _ := newTaskFixture(t)

	if _, err := svc.Update(context.Background(), uuid.New(), UpdateTaskInput{}); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	svc, _, user, notifier := newTaskFixture(t)
	ctx := context.Background()

	task := createTask(t, svc, user.ID)

	if err := svc.Delete(ctx, task.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.GetByID(ctx, task.ID); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound after delete, got %v", err)
	}
	if len(notifier.deleted) != 1 || notifier.deleted[0] != task.ID {
		t.Errorf("expected one deleted event for %s, got %v", task.ID, notifier.deleted)
	}
}

func TestDeleteNotFound(t *testing.T) {
	svc, _, _, _ := newTaskFixture(t)

	if err := svc.Delete(context.Background(), uuid.New()); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}
