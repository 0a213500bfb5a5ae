package models

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultColor is used for categories without a color and
// for expenses whose category could not be resolved.
const DefaultColor = "#6b7280"

// Category groups expenses and budgets.
type Category struct {
	DefaultModel
	OwnerID uuid.UUID `json:"ownerId" gorm:"index" example:"3a6b2a5c-0f4e-4c6f-9a0b-3f2f0a6f7b31"` // ID of the profile owning the category
	Owner   Profile   `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Name    string    `json:"name" example:"Food & Dining"` // Name of the category
	Color   string    `json:"color" example:"#ef4444"`      // Display color
	Icon    string    `json:"icon" example:"utensils"`      // Icon tag
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Color = strings.TrimSpace(c.Color)
	c.Icon = strings.TrimSpace(c.Icon)

	if c.Color == "" {
		c.Color = DefaultColor
	}

	return nil
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	_ = c.DefaultModel.BeforeCreate(tx)

	if strings.TrimSpace(c.Name) == "" {
		return ErrCategoryNameEmpty
	}

	return nil
}

// Export returns all categories of the owner.
func (Category) Export(owner uuid.UUID) (json.RawMessage, error) {
	return export[Category](owner)
}
