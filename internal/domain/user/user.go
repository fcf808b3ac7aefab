package user

import (
	"fmt"
	"time"

	"unibot/internal/shared/biztime"
)

// User is a bot user identified by an immutable platform (Telegram) ID.
// Users are never hard-deleted, only deactivated.
type User struct {
	id                   uint
	telegramID           int64
	username             string
	firstName            string
	lastName             string
	fullName             string
	course               int
	groupName            string
	studentID            string
	faculty              string
	role                 Role
	isActive             bool
	isVerified           bool
	notificationsEnabled bool
	isOnboarded          bool
	tipsEnabled          bool
	language             string
	createdAt            time.Time
	updatedAt            time.Time
	lastActivity         *time.Time
}

func NewUser(telegramID int64, username, firstName, lastName string) (*User, error) {
	if telegramID == 0 {
		return nil, fmt.Errorf("telegram ID is required")
	}

	now := biztime.NowUTC()
	return &User{
		telegramID:           telegramID,
		username:             username,
		firstName:            firstName,
		lastName:             lastName,
		role:                 RoleStudent,
		isActive:             true,
		notificationsEnabled: true,
		tipsEnabled:          true,
		language:             "ru",
		createdAt:            now,
		updatedAt:            now,
	}, nil
}

func ReconstructUser(
	id uint,
	telegramID int64,
	username, firstName, lastName, fullName string,
	course int,
	groupName, studentID, faculty string,
	role Role,
	isActive, isVerified, notificationsEnabled, isOnboarded, tipsEnabled bool,
	language string,
	createdAt, updatedAt time.Time,
	lastActivity *time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if telegramID == 0 {
		return nil, fmt.Errorf("telegram ID is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:                   id,
		telegramID:           telegramID,
		username:             username,
		firstName:            firstName,
		lastName:             lastName,
		fullName:             fullName,
		course:               course,
		groupName:            groupName,
		studentID:            studentID,
		faculty:              faculty,
		role:                 role,
		isActive:             isActive,
		isVerified:           isVerified,
		notificationsEnabled: notificationsEnabled,
		isOnboarded:          isOnboarded,
		tipsEnabled:          tipsEnabled,
		language:             language,
		createdAt:            createdAt,
		updatedAt:            updatedAt,
		lastActivity:         lastActivity,
	}, nil
}

func (u *User) ID() uint                   { return u.id }
func (u *User) TelegramID() int64          { return u.telegramID }
func (u *User) Username() string           { return u.username }
func (u *User) FirstName() string          { return u.firstName }
func (u *User) LastName() string           { return u.lastName }
func (u *User) FullName() string           { return u.fullName }
func (u *User) Course() int                { return u.course }
func (u *User) GroupName() string          { return u.groupName }
func (u *User) StudentID() string          { return u.studentID }
func (u *User) Faculty() string            { return u.faculty }
func (u *User) Role() Role                 { return u.role }
func (u *User) IsActive() bool             { return u.isActive }
func (u *User) IsVerified() bool           { return u.isVerified }
func (u *User) NotificationsEnabled() bool { return u.notificationsEnabled }
func (u *User) IsOnboarded() bool          { return u.isOnboarded }
func (u *User) TipsEnabled() bool          { return u.tipsEnabled }
func (u *User) Language() string           { return u.language }
func (u *User) CreatedAt() time.Time       { return u.createdAt }
func (u *User) UpdatedAt() time.Time       { return u.updatedAt }
func (u *User) LastActivity() *time.Time   { return u.lastActivity }

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// DisplayName returns the best available human-readable name.
func (u *User) DisplayName() string {
	if u.fullName != "" {
		return u.fullName
	}
	if u.firstName != "" {
		name := u.firstName
		if u.lastName != "" {
			name += " " + u.lastName
		}
		return name
	}
	if u.username != "" {
		return "@" + u.username
	}
	return fmt.Sprintf("User %d", u.telegramID)
}

// ProfileUpdate carries optional profile field changes; nil means unchanged.
type ProfileUpdate struct {
	FullName  *string
	Course    *int
	GroupName *string
	StudentID *string
	Faculty   *string
}

func (u *User) UpdateProfile(update ProfileUpdate) {
	if update.FullName != nil {
		u.fullName = *update.FullName
	}
	if update.Course != nil {
		u.course = *update.Course
	}
	if update.GroupName != nil {
		u.groupName = *update.GroupName
	}
	if update.StudentID != nil {
		u.studentID = *update.StudentID
	}
	if update.Faculty != nil {
		u.faculty = *update.Faculty
	}
	u.updatedAt = biztime.NowUTC()
}

func (u *User) ChangeRole(role Role) error {
	if !role.IsValid() {
		return fmt.Errorf("invalid role: %s", role)
	}
	u.role = role
	u.updatedAt = biztime.NowUTC()
	return nil
}

func (u *User) Deactivate() {
	u.isActive = false
	u.updatedAt = biztime.NowUTC()
}

func (u *User) Activate() {
	u.isActive = true
	u.updatedAt = biztime.NowUTC()
}

func (u *User) SetVerified(verified bool) {
	u.isVerified = verified
	u.updatedAt = biztime.NowUTC()
}

// ToggleNotifications flips the notification opt-in and returns the new value.
func (u *User) ToggleNotifications() bool {
	u.notificationsEnabled = !u.notificationsEnabled
	u.updatedAt = biztime.NowUTC()
	return u.notificationsEnabled
}

func (u *User) CompleteOnboarding() {
	u.isOnboarded = true
	u.updatedAt = biztime.NowUTC()
}

// TouchActivity records the time of the latest interaction.
func (u *User) TouchActivity() {
	now := biztime.NowUTC()
	u.lastActivity = &now
	u.updatedAt = now
}
