package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	u, err := NewUser(123456789, "ivan_petrov", "Ivan", "Petrov")

	require.NoError(t, err)
	assert.Equal(t, int64(123456789), u.TelegramID())
	assert.Equal(t, RoleStudent, u.Role())
	assert.True(t, u.IsActive())
	assert.False(t, u.IsVerified())
	assert.True(t, u.NotificationsEnabled())
	assert.Equal(t, "ru", u.Language())
}

func TestNewUser_RequiresTelegramID(t *testing.T) {
	_, err := NewUser(0, "name", "Ivan", "")
	assert.Error(t, err)
}

func TestUser_DisplayName(t *testing.T) {
	u, err := NewUser(1, "ivan_petrov", "Ivan", "Petrov")
	require.NoError(t, err)
	assert.Equal(t, "Ivan Petrov", u.DisplayName())

	noLast, err := NewUser(2, "ivan", "Ivan", "")
	require.NoError(t, err)
	assert.Equal(t, "Ivan", noLast.DisplayName())

	bare, err := NewUser(3, "ghost", "", "")
	require.NoError(t, err)
	assert.Equal(t, "@ghost", bare.DisplayName())

	nameless, err := NewUser(4, "", "", "")
	require.NoError(t, err)
	assert.Equal(t, "User 4", nameless.DisplayName())

	full := "Петров Иван Сергеевич"
	u.UpdateProfile(ProfileUpdate{FullName: &full})
	assert.Equal(t, full, u.DisplayName())
}

func TestUser_UpdateProfile(t *testing.T) {
	u, err := NewUser(1, "ivan", "Ivan", "")
	require.NoError(t, err)

	fullName := "Петров Иван Сергеевич"
	course := 3
	group := "ИС21-101"
	u.UpdateProfile(ProfileUpdate{
		FullName:  &fullName,
		Course:    &course,
		GroupName: &group,
	})

	assert.Equal(t, fullName, u.FullName())
	assert.Equal(t, 3, u.Course())
	assert.Equal(t, group, u.GroupName())

	// Nil fields leave values untouched.
	faculty := "ФИТ"
	u.UpdateProfile(ProfileUpdate{Faculty: &faculty})
	assert.Equal(t, fullName, u.FullName())
	assert.Equal(t, faculty, u.Faculty())
}

func TestRole_IsStaff(t *testing.T) {
	assert.False(t, RoleStudent.IsStaff())
	assert.False(t, RoleTeacher.IsStaff())
	assert.True(t, RoleModerator.IsStaff())
	assert.True(t, RoleAdmin.IsStaff())
	assert.False(t, RoleAnonymous.IsStaff())

	assert.True(t, RoleAdmin.IsAdmin())
	assert.False(t, RoleModerator.IsAdmin())
}

func TestUser_ChangeRole(t *testing.T) {
	u, err := NewUser(1, "ivan", "Ivan", "")
	require.NoError(t, err)

	require.NoError(t, u.ChangeRole(RoleModerator))
	assert.Equal(t, RoleModerator, u.Role())

	assert.Error(t, u.ChangeRole(Role("superuser")))
}

func TestUser_ToggleNotifications(t *testing.T) {
	u, err := NewUser(1, "ivan", "Ivan", "")
	require.NoError(t, err)

	assert.False(t, u.ToggleNotifications())
	assert.True(t, u.ToggleNotifications())
}

func TestUser_DeactivateActivate(t *testing.T) {
	u, err := NewUser(1, "ivan", "Ivan", "")
	require.NoError(t, err)

	u.Deactivate()
	assert.False(t, u.IsActive())

	u.Activate()
	assert.True(t, u.IsActive())
}
