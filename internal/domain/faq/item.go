package faq

import (
	"fmt"
	"time"

	"unibot/internal/shared/biztime"
)

// Link is a labeled URL attached to an FAQ answer.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Item is a single question/answer entry. The keywords field is a free-form
// comma-separated string that widens fuzzy matching; pinned items sort ahead
// of the rest inside their category.
type Item struct {
	id              uint
	categoryID      uint
	question        string
	answer          string
	keywords        string
	links           []Link
	sortOrder       int
	isPinned        bool
	isActive        bool
	viewCount       int64
	helpfulCount    int64
	notHelpfulCount int64
	createdAt       time.Time
	updatedAt       time.Time
}

func NewItem(categoryID uint, question, answer, keywords string, links []Link) (*Item, error) {
	if categoryID == 0 {
		return nil, fmt.Errorf("category ID is required")
	}
	if len(question) == 0 {
		return nil, fmt.Errorf("question cannot be empty")
	}
	if len([]rune(question)) > 500 {
		return nil, fmt.Errorf("question exceeds maximum length of 500 characters")
	}
	if len(answer) == 0 {
		return nil, fmt.Errorf("answer cannot be empty")
	}

	now := biztime.NowUTC()
	return &Item{
		categoryID: categoryID,
		question:   question,
		answer:     answer,
		keywords:   keywords,
		links:      links,
		isActive:   true,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructItem(
	id uint,
	categoryID uint,
	question string,
	answer string,
	keywords string,
	links []Link,
	sortOrder int,
	isPinned bool,
	isActive bool,
	viewCount int64,
	helpfulCount int64,
	notHelpfulCount int64,
	createdAt time.Time,
	updatedAt time.Time,
) (*Item, error) {
	if id == 0 {
		return nil, fmt.Errorf("item ID cannot be zero")
	}
	if categoryID == 0 {
		return nil, fmt.Errorf("category ID is required")
	}

	return &Item{
		id:              id,
		categoryID:      categoryID,
		question:        question,
		answer:          answer,
		keywords:        keywords,
		links:           links,
		sortOrder:       sortOrder,
		isPinned:        isPinned,
		isActive:        isActive,
		viewCount:       viewCount,
		helpfulCount:    helpfulCount,
		notHelpfulCount: notHelpfulCount,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

func (i *Item) ID() uint               { return i.id }
func (i *Item) CategoryID() uint       { return i.categoryID }
func (i *Item) Question() string       { return i.question }
func (i *Item) Answer() string         { return i.answer }
func (i *Item) Keywords() string       { return i.keywords }
func (i *Item) Links() []Link          { return i.links }
func (i *Item) SortOrder() int         { return i.sortOrder }
func (i *Item) IsPinned() bool         { return i.isPinned }
func (i *Item) IsActive() bool         { return i.isActive }
func (i *Item) ViewCount() int64       { return i.viewCount }
func (i *Item) HelpfulCount() int64    { return i.helpfulCount }
func (i *Item) NotHelpfulCount() int64 { return i.notHelpfulCount }
func (i *Item) CreatedAt() time.Time   { return i.createdAt }
func (i *Item) UpdatedAt() time.Time   { return i.updatedAt }

func (i *Item) SetID(id uint) error {
	if i.id != 0 {
		return fmt.Errorf("item ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("item ID cannot be zero")
	}
	i.id = id
	return nil
}

// SearchText is the haystack the fuzzy ranker scores a query against.
func (i *Item) SearchText() string {
	if i.keywords == "" {
		return i.question
	}
	return i.question + " " + i.keywords
}

func (i *Item) RegisterView() {
	i.viewCount++
}

// Rate records a helpfulness vote. A previous opposite vote is reversed so
// that a user changing their mind does not count twice.
func (i *Item) Rate(helpful bool, hadOpposite bool) {
	if helpful {
		i.helpfulCount++
		if hadOpposite && i.notHelpfulCount > 0 {
			i.notHelpfulCount--
		}
	} else {
		i.notHelpfulCount++
		if hadOpposite && i.helpfulCount > 0 {
			i.helpfulCount--
		}
	}
}

func (i *Item) Pin() {
	i.isPinned = true
	i.updatedAt = biztime.NowUTC()
}

func (i *Item) Unpin() {
	i.isPinned = false
	i.updatedAt = biztime.NowUTC()
}

func (i *Item) Deactivate() {
	i.isActive = false
	i.updatedAt = biztime.NowUTC()
}

func (i *Item) Activate() {
	i.isActive = true
	i.updatedAt = biztime.NowUTC()
}
