package handlers

import (
	"context"

	"github.com/google/uuid"

	"github.com/jaydhumal23/backend-assignment/internal/models"
)

type authService interface {
	Register(ctx context.Context, input models.RegisterRequest) (string, *models.PublicUser, error)
	Login(ctx context.Context, input models.LoginRequest) (string, *models.PublicUser, error)
	Logout()
	VerifyToken(token string) (*models.Caller, error)
	GetCurrentUser(ctx context.Context, callerID uuid.UUID) (*models.PublicUser, error)
	ListUsers(ctx context.Context, caller models.Caller) ([]models.PublicUser, error)
}

type taskService interface {
	Create(ctx context.Context, caller models.Caller, input models.CreateTaskRequest) (*models.TaskWithOwner, error)
	List(ctx context.Context, caller models.Caller) ([]models.TaskWithOwner, error)
	Update(ctx context.Context, caller models.Caller, taskID uuid.UUID, patch models.UpdateTaskRequest) (*models.Task, error)
	Delete(ctx context.Context, caller models.Caller, taskID uuid.UUID) error
}

type Handler struct {
	AuthService authService
	TaskService taskService
}

func NewHandler(as authService, ts taskService) *Handler {
	return &Handler{
		AuthService: as,
		TaskService: ts,
	}
}
