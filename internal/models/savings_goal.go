package models

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/pocketbook-app/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SavingsGoal is an amount of money to be saved until a target date.
//
// The current amount is only ever advanced by explicit increments and
// may exceed the target amount.
type SavingsGoal struct {
	DefaultModel
	OwnerID       uuid.UUID       `json:"ownerId" gorm:"index"`
	Owner         Profile         `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Title         string          `json:"title"`
	TargetAmount  decimal.Decimal `json:"targetAmount" gorm:"type:DECIMAL(20,8);check:goal_target_positive,target_amount > 0"`
	CurrentAmount decimal.Decimal `json:"currentAmount" gorm:"type:DECIMAL(20,8);check:goal_current_not_negative,current_amount >= 0"`
	TargetDate    types.Date      `json:"targetDate"`
}

func (g *SavingsGoal) BeforeSave(_ *gorm.DB) error {
	g.Title = strings.TrimSpace(g.Title)

	return nil
}

func (g *SavingsGoal) BeforeCreate(tx *gorm.DB) error {
	_ = g.DefaultModel.BeforeCreate(tx)

	if g.Title == "" {
		return ErrGoalTitleEmpty
	}

	if !g.TargetAmount.IsPositive() {
		return ErrGoalTargetInvalid
	}

	if g.CurrentAmount.IsNegative() {
		return ErrGoalCurrentNegative
	}

	if g.TargetDate.IsZero() {
		return ErrGoalTargetDateMissing
	}

	return nil
}

// Export returns all savings goals of the owner.
func (SavingsGoal) Export(owner uuid.UUID) (json.RawMessage, error) {
	return export[SavingsGoal](owner)
}
