package services

import (
	"testing"

	"hotel-frontdesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestUserCreateAndAuthenticate(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	created, err := svc.Create("front-desk", "s3cret", models.RoleStaff)
	require.NoError(t, err)
	assert.Equal(t, models.RoleStaff, created.Role)
	assert.NotEqual(t, "s3cret", created.PasswordHash)

	user, err := svc.Authenticate("front-desk", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)

	_, err = svc.Authenticate("front-desk", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Authenticate("nobody", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Authenticate("", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserCreateValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	_, err := svc.Create("", "pw", models.RoleStaff)
	assert.Error(t, err)
	_, err = svc.Create("someone", "", models.RoleStaff)
	assert.Error(t, err)
	_, err = svc.Create("someone", "pw", "owner")
	assert.Error(t, err)

	_, err = svc.Create("front-desk", "pw", models.RoleStaff)
	require.NoError(t, err)
	_, err = svc.Create("front-desk", "pw2", models.RoleAdmin)
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestUserLastAdminGuard(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	admin, err := svc.Create("boss", "pw", models.RoleAdmin)
	require.NoError(t, err)
	staff, err := svc.Create("clerk", "pw", models.RoleStaff)
	require.NoError(t, err)

	_, err = svc.UpdateRole(admin.ID, models.RoleStaff)
	assert.ErrorIs(t, err, ErrLastAdmin)
	assert.ErrorIs(t, svc.Delete(admin.ID), ErrLastAdmin)

	// with a second admin around the guard lifts
	promoted, err := svc.UpdateRole(staff.ID, models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, promoted.Role)
	require.NoError(t, svc.Delete(admin.ID))

	_, err = svc.UpdateRole(999, models.RoleStaff)
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.ErrorIs(t, svc.Delete(999), ErrUserNotFound)
}

func TestUserResetPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	user, err := svc.Create("clerk", "old", models.RoleStaff)
	require.NoError(t, err)

	require.NoError(t, svc.ResetPassword(user.ID, "new"))

	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("new")))

	_, err = svc.Authenticate("clerk", "old")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	assert.ErrorIs(t, svc.ResetPassword(999, "pw"), ErrUserNotFound)
	assert.Error(t, svc.ResetPassword(user.ID, ""))
}
