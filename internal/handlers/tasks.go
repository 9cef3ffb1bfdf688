package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jaydhumal23/backend-assignment/internal/apperror"
	"github.com/jaydhumal23/backend-assignment/internal/models"
	"github.com/jaydhumal23/backend-assignment/internal/utils"
)

func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	caller, ok := utils.CallerFromContext(r.Context())
	if !ok {
		writeError(w, apperror.Unauthorized("missing bearer token"))
		return
	}

	var input models.CreateTaskRequest
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, err)
		return
	}

	task, err := h.TaskService.Create(r.Context(), caller, input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"task":    task,
	})
}

func (h *Handler) GetTasks(w http.ResponseWriter, r *http.Request) {
	caller, ok := utils.CallerFromContext(r.Context())
	if !ok {
		writeError(w, apperror.Unauthorized("missing bearer token"))
		return
	}

	tasks, err := h.TaskService.List(r.Context(), caller)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"tasks":   tasks,
	})
}

func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	caller, ok := utils.CallerFromContext(r.Context())
	if !ok {
		writeError(w, apperror.Unauthorized("missing bearer token"))
		return
	}

	taskID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, apperror.Validation("invalid task id"))
		return
	}

	var patch models.UpdateTaskRequest
	if err := decodeJSON(r, &patch); err != nil {
		writeError(w, err)
		return
	}

	task, err := h.TaskService.Update(r.Context(), caller, taskID, patch)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"task":    task,
	})
}

func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	caller, ok := utils.CallerFromContext(r.Context())
	if !ok {
		writeError(w, apperror.Unauthorized("missing bearer token"))
		return
	}

	taskID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, apperror.Validation("invalid task id"))
		return
	}

	if err := h.TaskService.Delete(r.Context(), caller, taskID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Task deleted successfully",
	})
}
