package models

import (
	"strings"

	"gorm.io/gorm"
)

// Profile is a principal. All other records are owned by a profile.
type Profile struct {
	DefaultModel
	Email        string `json:"email" gorm:"uniqueIndex" example:"jane@example.com"`      // Email address used to sign in
	PasswordHash string `json:"-"`
	DisplayName  string `json:"displayName" example:"Jane"`                               // Name shown in the application
	AvatarURL    string `json:"avatarUrl" example:"https://example.com/avatars/jane.png"` // Reference to the avatar image
}

// DefaultCategory is a category every new profile starts with.
type DefaultCategory struct {
	Name  string
	Color string
	Icon  string
}

// DefaultCategories are seeded for every new profile.
var DefaultCategories = []DefaultCategory{
	{"Food & Dining", "#ef4444", "utensils"},
	{"Transportation", "#f59e0b", "car"},
	{"Shopping", "#8b5cf6", "shopping-bag"},
	{"Entertainment", "#ec4899", "film"},
	{"Bills & Utilities", "#3b82f6", "file-text"},
	{"Healthcare", "#10b981", "heart"},
	{"Education", "#6366f1", "book"},
	{"Other", DefaultColor, "more-horizontal"},
}

func (p *Profile) BeforeSave(_ *gorm.DB) error {
	p.Email = strings.ToLower(strings.TrimSpace(p.Email))
	p.DisplayName = strings.TrimSpace(p.DisplayName)
	p.AvatarURL = strings.TrimSpace(p.AvatarURL)

	return nil
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	_ = p.DefaultModel.BeforeCreate(tx)

	if strings.TrimSpace(p.Email) == "" {
		return ErrEmailEmpty
	}

	return nil
}

// AfterCreate seeds the default categories.
func (p *Profile) AfterCreate(tx *gorm.DB) error {
	categories := make([]Category, 0, len(DefaultCategories))
	for _, c := range DefaultCategories {
		categories = append(categories, Category{
			OwnerID: p.ID,
			Name:    c.Name,
			Color:   c.Color,
			Icon:    c.Icon,
		})
	}

	return tx.Create(&categories).Error
}
