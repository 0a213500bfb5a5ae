package models

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/pocketbook-app/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense is a single amount of money spent on a date.
type Expense struct {
	DefaultModel
	OwnerID     uuid.UUID       `json:"ownerId" gorm:"index"`
	Owner       Profile         `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	CategoryID  uuid.UUID       `json:"categoryId" gorm:"index"`
	Category    *Category       `json:"category,omitempty" gorm:"constraint:OnDelete:RESTRICT"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8);check:expense_amount_positive,amount > 0"`
	Description string          `json:"description"`
	Notes       string          `json:"notes"`
	Date        types.Date      `json:"date" gorm:"index"` // Attribution date for all period calculations
}

func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.Description = strings.TrimSpace(e.Description)
	e.Notes = strings.TrimSpace(e.Notes)

	return nil
}

func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	_ = e.DefaultModel.BeforeCreate(tx)

	if err := e.validate(); err != nil {
		return err
	}

	return checkCategory(tx, e.OwnerID, e.CategoryID)
}

func (e Expense) validate() error {
	if !e.Amount.IsPositive() {
		return ErrExpenseAmountInvalid
	}

	if e.Description == "" {
		return ErrDescriptionEmpty
	}

	if e.Date.IsZero() {
		return ErrDateMissing
	}

	return nil
}

// Export returns all expenses of the owner.
func (Expense) Export(owner uuid.UUID) (json.RawMessage, error) {
	return export[Expense](owner)
}

// checkCategory verifies that the category exists and belongs to the owner.
func checkCategory(tx *gorm.DB, owner, id uuid.UUID) error {
	return tx.Where(&Category{OwnerID: owner}).First(&Category{}, "id = ?", id).Error
}
