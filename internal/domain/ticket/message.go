package ticket

import (
	"fmt"
	"time"

	"unibot/internal/shared/biztime"
)

// Message is one entry of a ticket thread. Messages are immutable once
// created; there is no edit or delete operation.
type Message struct {
	id          uint
	ticketID    uint
	authorID    uint
	body        string
	isFromStaff bool
	isInternal  bool
	createdAt   time.Time
}

func NewMessage(
	ticketID uint,
	authorID uint,
	body string,
	isFromStaff bool,
	isInternal bool,
) (*Message, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("message body cannot be empty")
	}
	if len([]rune(body)) > 5000 {
		return nil, fmt.Errorf("message body exceeds maximum length of 5000 characters")
	}

	return &Message{
		ticketID:    ticketID,
		authorID:    authorID,
		body:        body,
		isFromStaff: isFromStaff,
		isInternal:  isInternal,
		createdAt:   biztime.NowUTC(),
	}, nil
}

func ReconstructMessage(
	id uint,
	ticketID uint,
	authorID uint,
	body string,
	isFromStaff bool,
	isInternal bool,
	createdAt time.Time,
) (*Message, error) {
	if id == 0 {
		return nil, fmt.Errorf("message ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}

	return &Message{
		id:          id,
		ticketID:    ticketID,
		authorID:    authorID,
		body:        body,
		isFromStaff: isFromStaff,
		isInternal:  isInternal,
		createdAt:   createdAt,
	}, nil
}

func (m *Message) ID() uint             { return m.id }
func (m *Message) TicketID() uint       { return m.ticketID }
func (m *Message) AuthorID() uint       { return m.authorID }
func (m *Message) Body() string         { return m.body }
func (m *Message) IsFromStaff() bool    { return m.isFromStaff }
func (m *Message) IsInternal() bool     { return m.isInternal }
func (m *Message) CreatedAt() time.Time { return m.createdAt }

func (m *Message) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("message ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("message ID cannot be zero")
	}
	m.id = id
	return nil
}
