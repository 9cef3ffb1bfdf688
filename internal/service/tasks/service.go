// Package tasks implements the task CRUD operations. Every operation takes a
// verified caller and consults the access policy before touching the store.
package tasks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jaydhumal23/backend-assignment/internal/apperror"
	"github.com/jaydhumal23/backend-assignment/internal/models"
	"github.com/jaydhumal23/backend-assignment/internal/policy"
	"github.com/jaydhumal23/backend-assignment/internal/repository"
)

type taskRepository interface {
	Create(ctx context.Context, t *models.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error)
	GetByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Task, error)
	GetAll(ctx context.Context) ([]models.Task, error)
	Update(ctx context.Context, t *models.Task) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ownerDirectory interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type Service struct {
	repo  taskRepository
	users ownerDirectory
}

func NewService(r taskRepository, users ownerDirectory) *Service {
	return &Service{repo: r, users: users}
}

func (s *Service) Create(ctx context.Context, caller models.Caller, input models.CreateTaskRequest) (*models.TaskWithOwner, error) {
	if err := input.Validate(); err != nil {
		return nil, apperror.Validation(err.Error())
	}

	now := time.Now()
	task := &models.Task{
		ID:          uuid.New(),
		OwnerID:     caller.ID,
		Title:       input.Title,
		Description: *input.Description,
		Status:      input.Status,
		Priority:    input.Priority,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, task); err != nil {
		return nil, apperror.Internal(fmt.Errorf("create task: %w", err))
	}

	result := &models.TaskWithOwner{Task: *task}
	if policy.CanViewAll(caller.Role) {
		if owner, err := s.users.GetByID(ctx, caller.ID); err == nil {
			pub := owner.Public()
			result.Owner = &pub
		}
	}
	return result, nil
}

// List returns every task with owner projections attached when the caller may
// view all, and only the caller's own tasks otherwise. Tasks come back in
// insertion order.
func (s *Service) List(ctx context.Context, caller models.Caller) ([]models.TaskWithOwner, error) {
	if !policy.CanViewAll(caller.Role) {
		tasks, err := s.repo.GetByOwner(ctx, caller.ID)
		if err != nil {
			return nil, apperror.Internal(fmt.Errorf("list tasks: %w", err))
		}
		result := make([]models.TaskWithOwner, 0, len(tasks))
		for i := range tasks {
			result = append(result, models.TaskWithOwner{Task: tasks[i]})
		}
		return result, nil
	}

	tasks, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("list tasks: %w", err))
	}

	owners := make(map[uuid.UUID]*models.PublicUser)
	result := make([]models.TaskWithOwner, 0, len(tasks))
	for i := range tasks {
		item := models.TaskWithOwner{Task: tasks[i]}
		ownerID := tasks[i].OwnerID
		if pub, seen := owners[ownerID]; seen {
			item.Owner = pub
		} else {
			// An owner deleted out-of-band leaves the task listed without
			// a projection.
			if owner, err := s.users.GetByID(ctx, ownerID); err == nil {
				p := owner.Public()
				owners[ownerID] = &p
				item.Owner = &p
			} else {
				owners[ownerID] = nil
			}
		}
		result = append(result, item)
	}
	return result, nil
}

// Update applies a partial patch. Checks run in order: existence, then
// permission, then field validation.
func (s *Service) Update(ctx context.Context, caller models.Caller, taskID uuid.UUID, patch models.UpdateTaskRequest) (*models.Task, error) {
	task, err := s.getTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if !policy.CanMutate(caller.Role, task.OwnerID, caller.ID) {
		return nil, apperror.Forbidden("you do not have access to this task")
	}

	if err := patch.Validate(); err != nil {
		return nil, apperror.Validation(err.Error())
	}

	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.Status != nil {
		task.Status = *patch.Status
	}
	if patch.Priority != nil {
		task.Priority = *patch.Priority
	}
	task.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, task); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("task not found")
		}
		return nil, apperror.Internal(fmt.Errorf("update task: %w", err))
	}
	return task, nil
}

// Delete removes the record permanently. Deleting a nonexistent id is
// NotFound, never a silent success.
func (s *Service) Delete(ctx context.Context, caller models.Caller, taskID uuid.UUID) error {
	task, err := s.getTask(ctx, taskID)
	if err != nil {
		return err
	}

	if !policy.CanMutate(caller.Role, task.OwnerID, caller.ID) {
		return apperror.Forbidden("you do not have access to this task")
	}

	if err := s.repo.Delete(ctx, taskID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperror.NotFound("task not found")
		}
		return apperror.Internal(fmt.Errorf("delete task: %w", err))
	}
	return nil
}

func (s *Service) getTask(ctx context.Context, taskID uuid.UUID) (*models.Task, error) {
	task, err := s.repo.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("task not found")
		}
		return nil, apperror.Internal(fmt.Errorf("get task: %w", err))
	}
	return task, nil
}
