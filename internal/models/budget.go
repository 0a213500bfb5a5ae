package models

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/pocketbook-app/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Budget is a spending limit for a category over a period.
type Budget struct {
	DefaultModel
	OwnerID    uuid.UUID       `json:"ownerId" gorm:"index"`
	Owner      Profile         `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	CategoryID uuid.UUID       `json:"categoryId" gorm:"index"`
	Category   *Category       `json:"category,omitempty" gorm:"constraint:OnDelete:RESTRICT"`
	Amount     decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8);check:budget_amount_positive,amount > 0"`
	Period     types.Period    `json:"period" gorm:"check:budget_period_valid,period IN ('weekly', 'monthly')"`
	StartDate  types.Date      `json:"startDate"`
	EndDate    types.Date      `json:"endDate"` // Computed from start date and period at creation
}

// BeforeCreate computes the end date. It is never recomputed afterwards.
func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	_ = b.DefaultModel.BeforeCreate(tx)

	if err := b.validate(); err != nil {
		return err
	}

	end, err := b.Period.EndDate(b.StartDate)
	if err != nil {
		return ErrBudgetPeriodInvalid
	}
	b.EndDate = end

	return checkCategory(tx, b.OwnerID, b.CategoryID)
}

func (b Budget) validate() error {
	if !b.Amount.IsPositive() {
		return ErrBudgetAmountInvalid
	}

	if !b.Period.Valid() {
		return ErrBudgetPeriodInvalid
	}

	if b.StartDate.IsZero() {
		return ErrStartDateMissing
	}

	return nil
}

// Export returns all budgets of the owner.
func (Budget) Export(owner uuid.UUID) (json.RawMessage, error) {
	return export[Budget](owner)
}
