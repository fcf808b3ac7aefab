package schedule

import "fmt"

// EventType classifies schedule entries.
type EventType string

const (
	EventLesson       EventType = "lesson"
	EventExam         EventType = "exam"
	EventConsultation EventType = "consultation"
	EventGeneral      EventType = "event"
	EventHoliday      EventType = "holiday"
	EventDeadline     EventType = "deadline"
)

func (t EventType) IsValid() bool {
	switch t {
	case EventLesson, EventExam, EventConsultation, EventGeneral, EventHoliday, EventDeadline:
		return true
	}
	return false
}

func (t EventType) String() string {
	return string(t)
}

func NewEventType(s string) (EventType, error) {
	t := EventType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid event type: %s", s)
	}
	return t, nil
}

func AllEventTypes() []EventType {
	return []EventType{EventLesson, EventExam, EventConsultation, EventGeneral, EventHoliday, EventDeadline}
}
