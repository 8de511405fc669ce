package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"
)

func newTestService(t *testing.T) *Service {
	return NewService(NewLocalStorage(), zaptest.NewLogger(t), []byte("test-secret"), time.Hour)
}

func TestCreateUserAndLogin(t *testing.T) {
	svc := newTestService(t)

	u, err := svc.CreateUser("Admin", "admin@example.com", "s3cret", RoleAdmin, "")
	assert.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.NotEqual(t, "s3cret", u.PasswordHash, "password must be stored hashed")

	token, logged, err := svc.Login("admin@example.com", "s3cret")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, u.ID, logged.ID)

	// Email comparison is case-insensitive.
	_, _, err = svc.Login("ADMIN@example.com", "s3cret")
	assert.NoError(t, err)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.CreateUser("Admin", "admin@example.com", "s3cret", RoleAdmin, "")
	assert.NoError(t, err)

	_, _, err = svc.Login("admin@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Unknown accounts fail with the same error as wrong passwords.
	_, _, err = svc.Login("nobody@example.com", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCreateUser_Validation(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.CreateUser("", "a@b.c", "pw", RoleAdmin, "")
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.CreateUser("X", "a@b.c", "pw", Role("ROOT"), "")
	assert.ErrorIs(t, err, ErrInvalidRole)

	_, err = svc.CreateUser("X", "a@b.c", "pw", RoleAdmin, "")
	assert.NoError(t, err)
	_, err = svc.CreateUser("Y", "A@B.C", "pw", RoleAdmin, "")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestUpdateUser_EmptyPasswordKeepsHash(t *testing.T) {
	svc := newTestService(t)
	u, err := svc.CreateUser("Admin", "admin@example.com", "s3cret", RoleAdmin, "")
	assert.NoError(t, err)

	_, err = svc.UpdateUser(u.ID, "Admin Renamed", "admin@example.com", "", RoleAdmin, "")
	assert.NoError(t, err)

	_, _, err = svc.Login("admin@example.com", "s3cret")
	assert.NoError(t, err, "old password must still work after a no-password update")

	_, err = svc.UpdateUser(u.ID, "Admin", "admin@example.com", "newpass", RoleAdmin, "")
	assert.NoError(t, err)
	_, _, err = svc.Login("admin@example.com", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, _, err = svc.Login("admin@example.com", "newpass")
	assert.NoError(t, err)
}

func TestTokenRoundTrip(t *testing.T) {
	svc := newTestService(t)
	u, err := svc.CreateUser("Portal User", "portal@example.com", "pw", RolePartner, "partner-1")
	assert.NoError(t, err)

	token, err := svc.IssueToken(u)
	assert.NoError(t, err)

	ident, err := svc.VerifyToken(token)
	assert.NoError(t, err)
	assert.Equal(t, u.ID, ident.UserID)
	assert.Equal(t, RolePartner, ident.Role)
	assert.Equal(t, "partner-1", ident.PartnerID)
	assert.False(t, ident.IsAdmin())
}

func TestVerifyToken_Invalid(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.VerifyToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	// A token signed with a different secret is rejected.
	other := NewService(NewLocalStorage(), zaptest.NewLogger(t), []byte("other-secret"), time.Hour)
	u, err := other.CreateUser("X", "x@example.com", "pw", RoleAdmin, "")
	assert.NoError(t, err)
	token, err := other.IssueToken(u)
	assert.NoError(t, err)

	_, err = svc.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestBootstrap(t *testing.T) {
	svc := newTestService(t)

	assert.NoError(t, svc.Bootstrap("Master Admin", "admin@promohub.local", "bootpw"))
	users, err := svc.ListUsers()
	assert.NoError(t, err)
	assert.Len(t, users, 1)
	assert.Equal(t, RoleAdmin, users[0].Role)

	// Idempotent: a second bootstrap with users present does nothing.
	assert.NoError(t, svc.Bootstrap("Master Admin", "admin@promohub.local", "bootpw"))
	users, _ = svc.ListUsers()
	assert.Len(t, users, 1)

	// An empty bootstrap password disables seeding entirely.
	empty := newTestService(t)
	assert.NoError(t, empty.Bootstrap("Master Admin", "admin@promohub.local", ""))
	users, _ = empty.ListUsers()
	assert.Empty(t, users)
}
