package ticket

import (
	"fmt"
	"time"

	vo "unibot/internal/domain/ticket/valueobjects"
	"unibot/internal/shared/biztime"
)

// Ticket is a tracked support request with a lifecycle and a message thread.
type Ticket struct {
	id          uint
	number      string
	ownerID     uint
	assigneeID  *uint
	subject     string
	description string
	status      vo.TicketStatus
	priority    vo.Priority
	category    string
	isAnonymous bool
	createdAt   time.Time
	updatedAt   time.Time
	resolvedAt  *time.Time
	messages    []*Message
}

func NewTicket(
	ownerID uint,
	subject string,
	description string,
	category string,
	priority vo.Priority,
	isAnonymous bool,
) (*Ticket, error) {
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}
	if len(subject) == 0 {
		return nil, fmt.Errorf("subject is required")
	}
	if len([]rune(subject)) > 200 {
		return nil, fmt.Errorf("subject exceeds maximum length of 200 characters")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if len([]rune(description)) > 5000 {
		return nil, fmt.Errorf("description exceeds maximum length of 5000 characters")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}

	now := biztime.NowUTC()
	return &Ticket{
		ownerID:     ownerID,
		subject:     subject,
		description: description,
		status:      vo.StatusOpen,
		priority:    priority,
		category:    category,
		isAnonymous: isAnonymous,
		createdAt:   now,
		updatedAt:   now,
		messages:    []*Message{},
	}, nil
}

func ReconstructTicket(
	id uint,
	number string,
	ownerID uint,
	assigneeID *uint,
	subject string,
	description string,
	status vo.TicketStatus,
	priority vo.Priority,
	category string,
	isAnonymous bool,
	createdAt, updatedAt time.Time,
	resolvedAt *time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(number) == 0 {
		return nil, fmt.Errorf("ticket number is required")
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %d", priority)
	}

	return &Ticket{
		id:          id,
		number:      number,
		ownerID:     ownerID,
		assigneeID:  assigneeID,
		subject:     subject,
		description: description,
		status:      status,
		priority:    priority,
		category:    category,
		isAnonymous: isAnonymous,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		resolvedAt:  resolvedAt,
		messages:    []*Message{},
	}, nil
}

func (t *Ticket) ID() uint                 { return t.id }
func (t *Ticket) Number() string           { return t.number }
func (t *Ticket) OwnerID() uint            { return t.ownerID }
func (t *Ticket) AssigneeID() *uint        { return t.assigneeID }
func (t *Ticket) Subject() string          { return t.subject }
func (t *Ticket) Description() string      { return t.description }
func (t *Ticket) Status() vo.TicketStatus  { return t.status }
func (t *Ticket) Priority() vo.Priority    { return t.priority }
func (t *Ticket) Category() string         { return t.category }
func (t *Ticket) IsAnonymous() bool        { return t.isAnonymous }
func (t *Ticket) CreatedAt() time.Time     { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time     { return t.updatedAt }
func (t *Ticket) ResolvedAt() *time.Time   { return t.resolvedAt }

func (t *Ticket) Messages() []*Message {
	messagesCopy := make([]*Message, len(t.messages))
	copy(messagesCopy, t.messages)
	return messagesCopy
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Ticket) SetNumber(number string) error {
	if len(t.number) > 0 {
		return fmt.Errorf("ticket number is already set")
	}
	if len(number) == 0 {
		return fmt.Errorf("ticket number cannot be empty")
	}
	t.number = number
	return nil
}

// AttachMessages sets the loaded thread on a reconstructed ticket.
func (t *Ticket) AttachMessages(messages []*Message) {
	t.messages = messages
}

// ChangeStatus applies an explicit status transition. The transition table in
// the status value object is the only legality check. resolvedAt is stamped
// when the ticket reaches resolved or closed and cleared when it is reopened.
func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}
	if t.status == newStatus {
		return fmt.Errorf("ticket is already %s", newStatus)
	}
	if !t.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("cannot transition from %s to %s", t.status, newStatus)
	}

	t.status = newStatus
	now := biztime.NowUTC()
	t.updatedAt = now

	switch {
	case newStatus.IsResolved() || newStatus.IsClosed():
		t.resolvedAt = &now
	case newStatus.IsOpen():
		t.resolvedAt = nil
	}

	return nil
}

// RegisterMessage applies the implicit status advance triggered by a new
// thread message: a staff reply on an open ticket and a requester reply on a
// waiting ticket both move it to in_progress. It returns true when the status
// changed.
func (t *Ticket) RegisterMessage(isFromStaff bool) bool {
	switch {
	case isFromStaff && t.status.IsOpen():
		t.status = vo.StatusInProgress
	case !isFromStaff && t.status.IsWaiting():
		t.status = vo.StatusInProgress
	default:
		t.updatedAt = biztime.NowUTC()
		return false
	}
	t.updatedAt = biztime.NowUTC()
	return true
}

// AssignTo sets the assignee. Assigning an open ticket moves it to in_progress.
func (t *Ticket) AssignTo(assigneeID uint) error {
	if assigneeID == 0 {
		return fmt.Errorf("assignee ID cannot be zero")
	}

	t.assigneeID = &assigneeID
	if t.status.IsOpen() {
		t.status = vo.StatusInProgress
	}
	t.updatedAt = biztime.NowUTC()
	return nil
}

// Reopen moves a resolved ticket back to open. Only the resolved state can
// be reopened; closed is terminal.
func (t *Ticket) Reopen() error {
	if !t.status.IsResolved() {
		return fmt.Errorf("only resolved tickets can be reopened")
	}

	t.status = vo.StatusOpen
	t.resolvedAt = nil
	t.updatedAt = biztime.NowUTC()
	return nil
}
