package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaydhumal23/backend-assignment/internal/apperror"
	"github.com/jaydhumal23/backend-assignment/internal/models"
	"github.com/jaydhumal23/backend-assignment/internal/testutil"
	"github.com/jaydhumal23/backend-assignment/internal/utils"
)

func newTestService() (*Service, *testutil.UserStore, *utils.AuthManager) {
	store := testutil.NewUserStore()
	manager := utils.NewAuthManager("test-secret", time.Hour)
	return NewService(store, manager), store, manager
}

func register(t *testing.T, s *Service, name, email, password string, role models.Role) (string, *models.PublicUser) {
	t.Helper()
	token, user, err := s.Register(context.Background(), models.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: password,
		Role:     role,
	})
	require.NoError(t, err)
	return token, user
}

func TestRegisterThenLogin(t *testing.T) {
	s, _, manager := newTestService()
	ctx := context.Background()

	regToken, regUser, err := s.Register(ctx, models.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	require.NotEmpty(t, regToken)
	assert.Equal(t, "Alice", regUser.Name)
	assert.Equal(t, models.RoleUser, regUser.Role)

	token, user, err := s.Login(ctx, models.LoginRequest{
		Email:    "alice@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, regUser.ID, user.ID)

	// The token's embedded identity matches the registered user.
	claims, err := manager.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, regUser.ID, claims.UserID)
	assert.Equal(t, models.RoleUser, claims.Role)
}

func TestRegisterLoginCaseInsensitiveEmail(t *testing.T) {
	s, _, _ := newTestService()
	register(t, s, "Alice", "Alice@Example.com", "secret1", "")

	_, user, err := s.Login(context.Background(), models.LoginRequest{
		Email:    "alice@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	s, _, _ := newTestService()
	ctx := context.Background()

	_, first := register(t, s, "Alice", "alice@example.com", "secret1", "")

	_, _, err := s.Register(ctx, models.RegisterRequest{
		Name:     "Imposter",
		Email:    "ALICE@example.com",
		Password: "different1",
	})
	require.Error(t, err)
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))

	// First record is unaffected: original credentials still work.
	_, user, err := s.Login(ctx, models.LoginRequest{
		Email:    "alice@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, user.ID)
	assert.Equal(t, "Alice", user.Name)
}

func TestRegisterValidation(t *testing.T) {
	s, _, _ := newTestService()
	ctx := context.Background()

	tests := []struct {
		name  string
		input models.RegisterRequest
	}{
		{"short name", models.RegisterRequest{Name: "A", Email: "a@b.com", Password: "secret1"}},
		{"bad email", models.RegisterRequest{Name: "Alice", Email: "nope", Password: "secret1"}},
		{"short password", models.RegisterRequest{Name: "Alice", Email: "a@b.com", Password: "12345"}},
		{"bad role", models.RegisterRequest{Name: "Alice", Email: "a@b.com", Password: "secret1", Role: "root"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := s.Register(ctx, tt.input)
			require.Error(t, err)
			assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
		})
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	s, _, _ := newTestService()
	ctx := context.Background()

	register(t, s, "Alice", "alice@example.com", "secret1", "")

	_, _, unknownErr := s.Login(ctx, models.LoginRequest{Email: "nobody@example.com", Password: "secret1"})
	_, _, badPassErr := s.Login(ctx, models.LoginRequest{Email: "alice@example.com", Password: "wrong-password"})

	require.Error(t, unknownErr)
	require.Error(t, badPassErr)
	assert.Equal(t, apperror.KindUnauthorized, apperror.KindOf(unknownErr))
	assert.Equal(t, apperror.KindUnauthorized, apperror.KindOf(badPassErr))

	// Identical error text: a caller cannot tell which part failed.
	assert.Equal(t, unknownErr.Error(), badPassErr.Error())
}

func TestVerifyToken(t *testing.T) {
	s, _, _ := newTestService()

	token, user := register(t, s, "Alice", "alice@example.com", "secret1", models.RoleAdmin)

	caller, err := s.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, caller.ID)
	assert.Equal(t, models.RoleAdmin, caller.Role)

	_, err = s.VerifyToken("garbage")
	require.Error(t, err)
	assert.Equal(t, apperror.KindUnauthorized, apperror.KindOf(err))
}

func TestVerifyExpiredToken(t *testing.T) {
	store := testutil.NewUserStore()
	expired := NewService(store, utils.NewAuthManager("test-secret", -time.Minute))

	token, _ := register(t, expired, "Alice", "alice@example.com", "secret1", "")

	_, err := expired.VerifyToken(token)
	require.Error(t, err)
	assert.Equal(t, apperror.KindUnauthorized, apperror.KindOf(err))
}

func TestGetCurrentUser(t *testing.T) {
	s, store, _ := newTestService()
	ctx := context.Background()

	_, user := register(t, s, "Alice", "alice@example.com", "secret1", "")

	got, err := s.GetCurrentUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, "alice@example.com", got.Email)

	// Deleted out-of-band: the token may still verify, but the lookup 404s.
	store.Remove(user.ID)
	_, err = s.GetCurrentUser(ctx, user.ID)
	require.Error(t, err)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestListUsers(t *testing.T) {
	s, _, _ := newTestService()
	ctx := context.Background()

	_, admin := register(t, s, "Admin", "admin@example.com", "secret1", models.RoleAdmin)
	_, alice := register(t, s, "Alice", "alice@example.com", "secret1", "")

	users, err := s.ListUsers(ctx, models.Caller{ID: admin.ID, Role: models.RoleAdmin})
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, admin.ID, users[0].ID)
	assert.Equal(t, alice.ID, users[1].ID)

	_, err = s.ListUsers(ctx, models.Caller{ID: alice.ID, Role: models.RoleUser})
	require.Error(t, err)
	assert.Equal(t, apperror.KindForbidden, apperror.KindOf(err))
}
