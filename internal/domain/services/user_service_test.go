package services

import (
	"context"
	"errors"
	"testing"

	"pdrims-http-service/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserInput(email string, role models.Role) CreateUserInput {
	return CreateUserInput{
		Surname:   "Santos",
		FirstName: "Maria",
		Email:     email,
		Password:  "secret123",
		Role:      role,
		Actor:     "Administrator, System",
	}
}

func TestEnsureAdminExistsSeedsOnce(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	require.NoError(t, l.users.EnsureAdminExists(ctx))
	require.NoError(t, l.users.EnsureAdminExists(ctx))
	assert.Equal(t, int64(1), l.count(t, &models.User{}))

	admin, err := l.users.Authenticate(ctx, "ADMIN@pdrims.gov", "admin123")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.True(t, admin.Verified)
	assert.Equal(t, "Administrator, System", admin.DisplayName())
}

func TestAuthenticate(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	_, err := l.users.CreateUser(ctx, newUserInput("official@pdrims.gov", models.RoleOfficial))
	require.NoError(t, err)

	pending := newUserInput("pending@pdrims.gov", models.RoleViewer)
	unverified := false
	pending.Verified = &unverified
	_, err = l.users.CreateUser(ctx, pending)
	require.NoError(t, err)

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{name: "valid", email: "official@pdrims.gov", password: "secret123"},
		{name: "email is case insensitive", email: " Official@PDRIMS.gov ", password: "secret123"},
		{name: "wrong password", email: "official@pdrims.gov", password: "nope", wantErr: ErrInvalidCredentials},
		{name: "unknown email", email: "ghost@pdrims.gov", password: "secret123", wantErr: ErrInvalidCredentials},
		{name: "empty password", email: "official@pdrims.gov", password: "", wantErr: ErrInvalidCredentials},
		{name: "pending account", email: "pending@pdrims.gov", password: "secret123", wantErr: ErrAccountPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := l.users.Authenticate(ctx, tt.email, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "official@pdrims.gov", user.Email)
			assert.NotEqual(t, "secret123", user.PasswordHash)
		})
	}
}

func TestCreateUser(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	id, err := l.users.CreateUser(ctx, newUserInput("Viewer@PDRIMS.gov", ""))
	require.NoError(t, err)

	user, err := l.users.GetUserByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "viewer@pdrims.gov", user.Email)
	assert.Equal(t, models.RoleViewer, user.Role)
	assert.Equal(t, models.UserStatusActive, user.Status)
	assert.True(t, user.Verified)

	logs := l.logs(t)
	require.Len(t, logs, 1)
	assert.Equal(t, "Created User", logs[0].Action)
	assert.Equal(t, "Administrator, System", logs[0].Actor)
	assert.Equal(t, "User: viewer@pdrims.gov", logs[0].Target)
}

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	_, err := l.users.CreateUser(ctx, newUserInput("dup@pdrims.gov", models.RoleViewer))
	require.NoError(t, err)

	_, err = l.users.CreateUser(ctx, newUserInput("DUP@pdrims.gov", models.RoleOfficial))
	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, int64(1), l.count(t, &models.User{}))
}

func TestCreateUserValidation(t *testing.T) {
	l := newTestLedger(t)

	input := newUserInput("not-an-email", "superuser")
	input.Password = "123"

	_, err := l.users.CreateUser(context.Background(), input)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
	assert.Contains(t, verr.Fields, "email")
	assert.Contains(t, verr.Fields, "password")
	assert.Contains(t, verr.Fields, "role")
}

func TestApproveUser(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	input := newUserInput("pending@pdrims.gov", models.RoleOfficial)
	unverified := false
	input.Verified = &unverified
	id, err := l.users.CreateUser(ctx, input)
	require.NoError(t, err)

	_, err = l.users.Authenticate(ctx, "pending@pdrims.gov", "secret123")
	require.ErrorIs(t, err, ErrAccountPending)

	require.NoError(t, l.users.ApproveUser(ctx, id, ""))

	user, err := l.users.Authenticate(ctx, "pending@pdrims.gov", "secret123")
	require.NoError(t, err)
	assert.Equal(t, models.UserStatusActive, user.Status)

	logs := l.logs(t)
	require.Len(t, logs, 2)
	assert.Equal(t, "Approved User", logs[0].Action)
	assert.Equal(t, DefaultAdminActor, logs[0].Actor)

	assert.ErrorIs(t, l.users.ApproveUser(ctx, 9999, ""), ErrNotFound)
}

func TestDeleteUserKeepsLastAdmin(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	require.NoError(t, l.users.EnsureAdminExists(ctx))
	users, err := l.users.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	firstAdmin := users[0].ID

	err = l.users.DeleteUser(ctx, firstAdmin, "Admin")
	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, int64(1), l.count(t, &models.User{}))

	secondAdmin, err := l.users.CreateUser(ctx, newUserInput("admin2@pdrims.gov", models.RoleAdmin))
	require.NoError(t, err)

	require.NoError(t, l.users.DeleteUser(ctx, firstAdmin, "Santos, Maria"))
	_, err = l.users.GetUserByID(ctx, firstAdmin)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, l.users.DeleteUser(ctx, secondAdmin, ""), ErrConflict)
	assert.ErrorIs(t, l.users.DeleteUser(ctx, 9999, ""), ErrNotFound)
}

func TestListUsersNewestFirst(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	first, err := l.users.CreateUser(ctx, newUserInput("a@pdrims.gov", models.RoleViewer))
	require.NoError(t, err)
	second, err := l.users.CreateUser(ctx, newUserInput("b@pdrims.gov", models.RoleViewer))
	require.NoError(t, err)

	users, err := l.users.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, second, users[0].ID)
	assert.Equal(t, first, users[1].ID)
	assert.Equal(t, "Santos, Maria", users[0].Name)
}
