package policy

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/jaydhumal23/backend-assignment/internal/models"
)

func TestCanViewAll(t *testing.T) {
	assert.True(t, CanViewAll(models.RoleAdmin))
	assert.False(t, CanViewAll(models.RoleUser))
	assert.False(t, CanViewAll(models.Role("")))
}

func TestCanMutate(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()

	tests := []struct {
		name   string
		role   models.Role
		caller uuid.UUID
		want   bool
	}{
		{"owner may mutate own task", models.RoleUser, owner, true},
		{"non-owner user may not", models.RoleUser, stranger, false},
		{"admin may mutate any task", models.RoleAdmin, stranger, true},
		{"admin may mutate own task", models.RoleAdmin, owner, true},
		{"unknown role falls back to ownership", models.Role("guest"), stranger, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanMutate(tt.role, owner, tt.caller))
		})
	}
}
