package notification

import (
	"fmt"
	"time"

	"unibot/internal/domain/user"
	"unibot/internal/shared/biztime"
)

// TargetFilter narrows the broadcast audience. Set fields are ANDed; all
// empty means every active user with notifications enabled.
type TargetFilter struct {
	Role      *user.Role
	GroupName *string
	Course    *int
	Faculty   *string
}

// IsEmpty reports whether no narrowing is applied.
func (f TargetFilter) IsEmpty() bool {
	return f.Role == nil && f.GroupName == nil && f.Course == nil && f.Faculty == nil
}

// ToUserFilter converts the target into the user listing filter, always
// restricted to active users with notifications enabled.
func (f TargetFilter) ToUserFilter() user.Filter {
	return user.Filter{
		Role:              f.Role,
		GroupName:         f.GroupName,
		Course:            f.Course,
		Faculty:           f.Faculty,
		ActiveOnly:        true,
		NotificationsOnly: true,
	}
}

// Notification is a broadcast message. A nil scheduledAt means "send on the
// next dispatcher run"; sentAt and sentCount are stamped after fan-out.
type Notification struct {
	id          uint
	title       string
	message     string
	target      TargetFilter
	isActive    bool
	isSent      bool
	scheduledAt *time.Time
	sentAt      *time.Time
	sentCount   int
	createdAt   time.Time
	updatedAt   time.Time
}

func NewNotification(title, message string, target TargetFilter, scheduledAt *time.Time) (*Notification, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("notification title cannot be empty")
	}
	if len([]rune(title)) > 200 {
		return nil, fmt.Errorf("notification title exceeds maximum length of 200 characters")
	}
	if len(message) == 0 {
		return nil, fmt.Errorf("notification message cannot be empty")
	}
	if len([]rune(message)) > 4000 {
		return nil, fmt.Errorf("notification message exceeds maximum length of 4000 characters")
	}

	now := biztime.NowUTC()
	return &Notification{
		title:       title,
		message:     message,
		target:      target,
		isActive:    true,
		scheduledAt: scheduledAt,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructNotification(
	id uint,
	title string,
	message string,
	target TargetFilter,
	isActive bool,
	isSent bool,
	scheduledAt *time.Time,
	sentAt *time.Time,
	sentCount int,
	createdAt time.Time,
	updatedAt time.Time,
) (*Notification, error) {
	if id == 0 {
		return nil, fmt.Errorf("notification ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("notification title cannot be empty")
	}

	return &Notification{
		id:          id,
		title:       title,
		message:     message,
		target:      target,
		isActive:    isActive,
		isSent:      isSent,
		scheduledAt: scheduledAt,
		sentAt:      sentAt,
		sentCount:   sentCount,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (n *Notification) ID() uint                { return n.id }
func (n *Notification) Title() string           { return n.title }
func (n *Notification) Message() string         { return n.message }
func (n *Notification) Target() TargetFilter    { return n.target }
func (n *Notification) IsActive() bool          { return n.isActive }
func (n *Notification) IsSent() bool            { return n.isSent }
func (n *Notification) ScheduledAt() *time.Time { return n.scheduledAt }
func (n *Notification) SentAt() *time.Time      { return n.sentAt }
func (n *Notification) SentCount() int          { return n.sentCount }
func (n *Notification) CreatedAt() time.Time    { return n.createdAt }
func (n *Notification) UpdatedAt() time.Time    { return n.updatedAt }

func (n *Notification) SetID(id uint) error {
	if n.id != 0 {
		return fmt.Errorf("notification ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("notification ID cannot be zero")
	}
	n.id = id
	return nil
}

// IsDue reports whether the notification should be dispatched now.
func (n *Notification) IsDue(now time.Time) bool {
	if !n.isActive || n.isSent {
		return false
	}
	if n.scheduledAt == nil {
		return true
	}
	return !n.scheduledAt.After(now)
}

// MarkSent stamps the fan-out result. Sending an already-sent notification
// is an error so a concurrent dispatcher run cannot double-send.
func (n *Notification) MarkSent(sentCount int) error {
	if n.isSent {
		return fmt.Errorf("notification is already sent")
	}
	now := biztime.NowUTC()
	n.isSent = true
	n.sentAt = &now
	n.sentCount = sentCount
	n.updatedAt = now
	return nil
}

func (n *Notification) Deactivate() {
	n.isActive = false
	n.updatedAt = biztime.NowUTC()
}
