package schedule

import (
	"fmt"
	"time"

	"unibot/internal/shared/biztime"
)

// Event is one schedule entry. Scope fields (group, faculty, course) narrow
// the audience; all empty means university-wide. Times are stored in UTC and
// rendered in the business timezone.
type Event struct {
	id            uint
	title         string
	description   string
	eventType     EventType
	groupName     string
	faculty       string
	course        int
	location      string
	instructor    string
	startsAt      time.Time
	endsAt        *time.Time
	isCancelled   bool
	isRescheduled bool
	createdAt     time.Time
	updatedAt     time.Time
}

func NewEvent(
	title string,
	description string,
	eventType EventType,
	groupName string,
	faculty string,
	course int,
	location string,
	instructor string,
	startsAt time.Time,
	endsAt *time.Time,
) (*Event, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("event title cannot be empty")
	}
	if len([]rune(title)) > 200 {
		return nil, fmt.Errorf("event title exceeds maximum length of 200 characters")
	}
	if !eventType.IsValid() {
		return nil, fmt.Errorf("invalid event type: %s", eventType)
	}
	if startsAt.IsZero() {
		return nil, fmt.Errorf("event start time is required")
	}
	if endsAt != nil && !endsAt.After(startsAt) {
		return nil, fmt.Errorf("event end time must be after start time")
	}

	now := biztime.NowUTC()
	return &Event{
		title:       title,
		description: description,
		eventType:   eventType,
		groupName:   groupName,
		faculty:     faculty,
		course:      course,
		location:    location,
		instructor:  instructor,
		startsAt:    startsAt.UTC(),
		endsAt:      endsAt,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructEvent(
	id uint,
	title string,
	description string,
	eventType EventType,
	groupName string,
	faculty string,
	course int,
	location string,
	instructor string,
	startsAt time.Time,
	endsAt *time.Time,
	isCancelled bool,
	isRescheduled bool,
	createdAt time.Time,
	updatedAt time.Time,
) (*Event, error) {
	if id == 0 {
		return nil, fmt.Errorf("event ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("event title cannot be empty")
	}

	return &Event{
		id:            id,
		title:         title,
		description:   description,
		eventType:     eventType,
		groupName:     groupName,
		faculty:       faculty,
		course:        course,
		location:      location,
		instructor:    instructor,
		startsAt:      startsAt,
		endsAt:        endsAt,
		isCancelled:   isCancelled,
		isRescheduled: isRescheduled,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (e *Event) ID() uint             { return e.id }
func (e *Event) Title() string        { return e.title }
func (e *Event) Description() string  { return e.description }
func (e *Event) Type() EventType      { return e.eventType }
func (e *Event) GroupName() string    { return e.groupName }
func (e *Event) Faculty() string      { return e.faculty }
func (e *Event) Course() int          { return e.course }
func (e *Event) Location() string     { return e.location }
func (e *Event) Instructor() string   { return e.instructor }
func (e *Event) StartsAt() time.Time  { return e.startsAt }
func (e *Event) EndsAt() *time.Time   { return e.endsAt }
func (e *Event) IsCancelled() bool    { return e.isCancelled }
func (e *Event) IsRescheduled() bool  { return e.isRescheduled }
func (e *Event) CreatedAt() time.Time { return e.createdAt }
func (e *Event) UpdatedAt() time.Time { return e.updatedAt }

func (e *Event) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("event ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("event ID cannot be zero")
	}
	e.id = id
	return nil
}

// AppliesTo reports whether the event is in scope for a user with the given
// group, faculty and course. Empty scope fields on the event match everyone.
func (e *Event) AppliesTo(groupName, faculty string, course int) bool {
	if e.groupName != "" && e.groupName != groupName {
		return false
	}
	if e.faculty != "" && e.faculty != faculty {
		return false
	}
	if e.course != 0 && e.course != course {
		return false
	}
	return true
}

func (e *Event) Cancel() {
	e.isCancelled = true
	e.updatedAt = biztime.NowUTC()
}

// Reschedule moves the event and flags it so renderings can mark the change.
func (e *Event) Reschedule(startsAt time.Time, endsAt *time.Time) error {
	if startsAt.IsZero() {
		return fmt.Errorf("event start time is required")
	}
	if endsAt != nil && !endsAt.After(startsAt) {
		return fmt.Errorf("event end time must be after start time")
	}
	e.startsAt = startsAt.UTC()
	e.endsAt = endsAt
	e.isRescheduled = true
	e.isCancelled = false
	e.updatedAt = biztime.NowUTC()
	return nil
}
