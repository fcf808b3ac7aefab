package feedback

import (
	"fmt"
	"time"

	"unibot/internal/shared/biztime"
)

// Type classifies feedback entries.
type Type string

const (
	TypeRating     Type = "rating"
	TypeSuggestion Type = "suggestion"
	TypeComplaint  Type = "complaint"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeRating, TypeSuggestion, TypeComplaint:
		return true
	}
	return false
}

func (t Type) String() string { return string(t) }

// Feedback is a rating or free-form note left by a user. Ratings carry a
// 1-5 score; suggestions and complaints carry text only. UserID zero means
// the feedback was left anonymously.
type Feedback struct {
	id          uint
	userID      uint
	kind        Type
	rating      int
	text        string
	isProcessed bool
	createdAt   time.Time
}

func NewFeedback(userID uint, kind Type, rating int, text string) (*Feedback, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid feedback type: %s", kind)
	}
	if kind == TypeRating {
		if rating < 1 || rating > 5 {
			return nil, fmt.Errorf("rating must be between 1 and 5")
		}
	} else {
		if len(text) == 0 {
			return nil, fmt.Errorf("feedback text cannot be empty")
		}
	}
	if len([]rune(text)) > 2000 {
		return nil, fmt.Errorf("feedback text exceeds maximum length of 2000 characters")
	}

	return &Feedback{
		userID:    userID,
		kind:      kind,
		rating:    rating,
		text:      text,
		createdAt: biztime.NowUTC(),
	}, nil
}

func ReconstructFeedback(
	id uint,
	userID uint,
	kind Type,
	rating int,
	text string,
	isProcessed bool,
	createdAt time.Time,
) (*Feedback, error) {
	if id == 0 {
		return nil, fmt.Errorf("feedback ID cannot be zero")
	}

	return &Feedback{
		id:          id,
		userID:      userID,
		kind:        kind,
		rating:      rating,
		text:        text,
		isProcessed: isProcessed,
		createdAt:   createdAt,
	}, nil
}

func (f *Feedback) ID() uint             { return f.id }
func (f *Feedback) UserID() uint         { return f.userID }
func (f *Feedback) Type() Type           { return f.kind }
func (f *Feedback) Rating() int          { return f.rating }
func (f *Feedback) Text() string         { return f.text }
func (f *Feedback) IsProcessed() bool    { return f.isProcessed }
func (f *Feedback) CreatedAt() time.Time { return f.createdAt }

func (f *Feedback) SetID(id uint) error {
	if f.id != 0 {
		return fmt.Errorf("feedback ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("feedback ID cannot be zero")
	}
	f.id = id
	return nil
}

func (f *Feedback) MarkProcessed() {
	f.isProcessed = true
}
