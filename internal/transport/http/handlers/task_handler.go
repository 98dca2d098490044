package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"taskboard/internal/domain"
	"taskboard/internal/service"
	"taskboard/pkg/validator"
)

type TaskHandler struct {
	taskService *service.TaskService
	logger      *zap.Logger
}

func NewTaskHandler(taskService *service.TaskService, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{taskService: taskService, logger: logger}
}

type createTaskRequest struct {
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	DueDate      *time.Time `json:"dueDate"`
	AssignedUser string     `json:"assignedUser"`
}

type updateTaskRequest struct {
	Title        *string    `json:"title"`
	Description  *string    `json:"description"`
	Status       *string    `json:"status"`
	DueDate      *time.Time `json:"dueDate"`
	AssignedUser *string    `json:"assignedUser"`
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if errs := validator.ValidateCreateTask(req.Title, req.Description, req.DueDate, req.AssignedUser); errs.HasErrors() {
		writeValidationErrors(w, "Please provide all required fields.", errs)
		return
	}

	// An id that does not parse cannot belong to any user.
	assignee, err := uuid.Parse(req.AssignedUser)
	if err != nil {
		writeError(w, http.StatusNotFound, "Assigned user not found.")
		return
	}

	task, err := h.taskService.Create(r.Context(), service.CreateTaskInput{
		Title:        req.Title,
		Description:  req.Description,
		DueDate:      *req.DueDate,
		AssignedUser: assignee,
	})
	if err != nil {
		if errors.Is(err, service.ErrAssignedUserNotFound) {
			writeError(w, http.StatusNotFound, "Assigned user not found.")
		} else {
			h.logger.Error("create task failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "Server error creating task.")
		}
		return
	}

	writeJSON(w, http.StatusCreated, task)
}

func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.taskService.List(r.Context())
	if err != nil {
		h.logger.Error("list tasks failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Server error fetching tasks.")
		return
	}

	if summaries == nil {
		summaries = []domain.TaskSummary{}
	}

	writeJSON(w, http.StatusOK, summaries)
}

func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	taskID, err := uuid.Parse(r.PathValue("taskId"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Task not found.")
		return
	}

	task, err := h.taskService.GetByID(r.Context(), taskID)
	if err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			writeError(w, http.StatusNotFound, "Task not found.")
		} else {
			h.logger.Error("get task failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "Server error fetching task.")
		}
		return
	}

	writeJSON(w, http.StatusOK, task)
}

func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	taskID, err := uuid.Parse(r.PathValue("taskId"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Task not found.")
		return
	}

	var req updateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	input := service.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
	}
	if req.Status != nil {
		status := domain.Status(*req.Status)
		input.Status = &status
	}
	if req.AssignedUser != nil {
		assignee, err := uuid.Parse(*req.AssignedUser)
		if err != nil {
			writeError(w, http.StatusNotFound, "Assigned user not found.")
			return
		}
		input.AssignedUser = &assignee
	}

	task, err := h.taskService.Update(r.Context(), taskID, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTaskNotFound):
			writeError(w, http.StatusNotFound, "Task not found.")
		case errors.Is(err, service.ErrAssignedUserNotFound):
			writeError(w, http.StatusNotFound, "Assigned user not found.")
		case errors.Is(err, service.ErrInvalidStatus):
			writeError(w, http.StatusBadRequest, "Status must be Pending, In-Progress, or Completed.")
		default:
			h.logger.Error("update task failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "Server error updating task.")
		}
		return
	}

	writeJSON(w, http.StatusOK, task)
}

func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	taskID, err := uuid.Parse(r.PathValue("taskId"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Task not found.")
		return
	}

	if err := h.taskService.Delete(r.Context(), taskID); err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			writeError(w, http.StatusNotFound, "Task not found.")
		} else {
			h.logger.Error("delete task failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "Server error deleting task.")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Task removed successfully."})
}
