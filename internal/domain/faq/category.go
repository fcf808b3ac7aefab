package faq

import (
	"fmt"
	"time"

	"unibot/internal/shared/biztime"
)

// Category groups FAQ items for browsing. Display order is controlled by
// sortOrder ascending; inactive categories are hidden from listings but
// their items stay reachable through direct links.
type Category struct {
	id          uint
	name        string
	slug        string
	description string
	icon        string
	sortOrder   int
	isActive    bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewCategory(name, slug, description, icon string, sortOrder int) (*Category, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("category name cannot be empty")
	}
	if len([]rune(name)) > 100 {
		return nil, fmt.Errorf("category name exceeds maximum length of 100 characters")
	}
	if len(slug) == 0 {
		return nil, fmt.Errorf("category slug cannot be empty")
	}

	now := biztime.NowUTC()
	return &Category{
		name:        name,
		slug:        slug,
		description: description,
		icon:        icon,
		sortOrder:   sortOrder,
		isActive:    true,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructCategory(
	id uint,
	name string,
	slug string,
	description string,
	icon string,
	sortOrder int,
	isActive bool,
	createdAt time.Time,
	updatedAt time.Time,
) (*Category, error) {
	if id == 0 {
		return nil, fmt.Errorf("category ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("category name cannot be empty")
	}

	return &Category{
		id:          id,
		name:        name,
		slug:        slug,
		description: description,
		icon:        icon,
		sortOrder:   sortOrder,
		isActive:    isActive,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (c *Category) ID() uint             { return c.id }
func (c *Category) Name() string         { return c.name }
func (c *Category) Slug() string         { return c.slug }
func (c *Category) Description() string  { return c.description }
func (c *Category) Icon() string         { return c.icon }
func (c *Category) SortOrder() int       { return c.sortOrder }
func (c *Category) IsActive() bool       { return c.isActive }
func (c *Category) CreatedAt() time.Time { return c.createdAt }
func (c *Category) UpdatedAt() time.Time { return c.updatedAt }

func (c *Category) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("category ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("category ID cannot be zero")
	}
	c.id = id
	return nil
}

// DisplayTitle renders the category as shown in menus, icon first when set.
func (c *Category) DisplayTitle() string {
	if c.icon != "" {
		return c.icon + " " + c.name
	}
	return c.name
}

func (c *Category) Rename(name string) error {
	if len(name) == 0 {
		return fmt.Errorf("category name cannot be empty")
	}
	c.name = name
	c.updatedAt = biztime.NowUTC()
	return nil
}

func (c *Category) Deactivate() {
	c.isActive = false
	c.updatedAt = biztime.NowUTC()
}

func (c *Category) Activate() {
	c.isActive = true
	c.updatedAt = biztime.NowUTC()
}
