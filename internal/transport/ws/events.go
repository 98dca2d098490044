package ws

import (
	"github.com/google/uuid"

	"taskboard/internal/domain"
)

const (
	EventTaskCreated = "task.created"
	EventTaskUpdated = "task.updated"
	EventTaskDeleted = "task.deleted"
)

// Event is what the board feed pushes to connected clients. Created and
// updated events carry the task summary; deleted carries only the id.
type Event struct {
	Type string       `json:"type"`
	Task *TaskPayload `json:"task"`
}

type TaskPayload struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title,omitempty"`
}

func taskEvent(eventType string, task *domain.Task) *Event {
	return &Event{
		Type: eventType,
		Task: &TaskPayload{ID: task.ID, Title: task.Title},
	}
}
