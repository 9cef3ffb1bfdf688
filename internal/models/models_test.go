package models

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterRequestValidate(t *testing.T) {
	valid := func() RegisterRequest {
		return RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "secret1"}
	}

	t.Run("defaults role to user and normalizes email", func(t *testing.T) {
		req := valid()
		req.Email = "  Alice@Example.COM "
		require.NoError(t, req.Validate())
		assert.Equal(t, RoleUser, req.Role)
		assert.Equal(t, "alice@example.com", req.Email)
	})

	t.Run("accepts explicit admin role", func(t *testing.T) {
		req := valid()
		req.Role = RoleAdmin
		require.NoError(t, req.Validate())
		assert.Equal(t, RoleAdmin, req.Role)
	})

	tests := []struct {
		name   string
		mutate func(*RegisterRequest)
	}{
		{"short name", func(r *RegisterRequest) { r.Name = "A" }},
		{"blank name", func(r *RegisterRequest) { r.Name = "   " }},
		{"bad email", func(r *RegisterRequest) { r.Email = "not-an-email" }},
		{"empty email", func(r *RegisterRequest) { r.Email = "" }},
		{"short password", func(r *RegisterRequest) { r.Password = "12345" }},
		{"unknown role", func(r *RegisterRequest) { r.Role = "superadmin" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(&req)
			assert.Error(t, req.Validate())
		})
	}
}

func TestCreateTaskRequestValidate(t *testing.T) {
	desc := "write the report"

	t.Run("fills defaults", func(t *testing.T) {
		req := CreateTaskRequest{Title: "Report", Description: &desc}
		require.NoError(t, req.Validate())
		assert.Equal(t, StatusPending, req.Status)
		assert.Equal(t, PriorityMedium, req.Priority)
	})

	t.Run("empty description value is allowed", func(t *testing.T) {
		empty := ""
		req := CreateTaskRequest{Title: "Report", Description: &empty}
		assert.NoError(t, req.Validate())
	})

	t.Run("missing description is rejected", func(t *testing.T) {
		req := CreateTaskRequest{Title: "Report"}
		assert.Error(t, req.Validate())
	})

	t.Run("blank title is rejected", func(t *testing.T) {
		req := CreateTaskRequest{Title: "  ", Description: &desc}
		assert.Error(t, req.Validate())
	})

	t.Run("enum values are not coerced", func(t *testing.T) {
		for _, status := range []Status{"in_progress", "done", "PENDING"} {
			req := CreateTaskRequest{Title: "Report", Description: &desc, Status: status}
			assert.Error(t, req.Validate(), "status %q should be rejected", status)
		}
		for _, priority := range []Priority{"urgent", "HIGH"} {
			req := CreateTaskRequest{Title: "Report", Description: &desc, Priority: priority}
			assert.Error(t, req.Validate(), "priority %q should be rejected", priority)
		}
	})
}

func TestUpdateTaskRequestValidate(t *testing.T) {
	t.Run("empty patch is valid", func(t *testing.T) {
		req := UpdateTaskRequest{}
		assert.NoError(t, req.Validate())
	})

	t.Run("valid enum values pass", func(t *testing.T) {
		status := StatusCompleted
		priority := PriorityHigh
		req := UpdateTaskRequest{Status: &status, Priority: &priority}
		assert.NoError(t, req.Validate())
	})

	t.Run("invalid status is rejected", func(t *testing.T) {
		status := Status("in_progress")
		req := UpdateTaskRequest{Status: &status}
		assert.Error(t, req.Validate())
	})

	t.Run("blank title is rejected", func(t *testing.T) {
		title := "   "
		req := UpdateTaskRequest{Title: &title}
		assert.Error(t, req.Validate())
	})
}

func TestPublicUserExcludesPasswordHash(t *testing.T) {
	user := User{
		ID:           uuid.New(),
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$something",
		Role:         RoleUser,
	}

	raw, err := json.Marshal(user.Public())
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "$2a$10$something")
	assert.Contains(t, string(raw), `"_id"`)
}
