package aggregate

import (
	"github.com/pocketbook-app/backend/internal/models"
	"github.com/pocketbook-app/backend/internal/types"
	"github.com/shopspring/decimal"
)

var (
	daysPerWeek  = decimal.NewFromInt(7)
	daysPerMonth = decimal.NewFromInt(30)
)

// Pace is the amount that needs to be saved per time unit to reach a goal
// on its target date.
type Pace struct {
	DaysLeft  int             `json:"daysLeft" example:"10"`   // Days until the target date, negative when overdue
	Remaining decimal.Decimal `json:"remaining" example:"800"` // Negative when the goal has been exceeded
	Daily     decimal.Decimal `json:"daily" example:"80"`      // Never negative
	Weekly    decimal.Decimal `json:"weekly" example:"560"`    // Never negative
	Monthly   decimal.Decimal `json:"monthly" example:"2400"`  // Never negative
	Overdue   int             `json:"overdueDays" example:"0"` // Days past the target date
}

// RecommendedSavingsPace computes the savings pace for a goal.
//
// When the target date is today or in the past, all paces are zero.
func RecommendedSavingsPace(g models.SavingsGoal, today types.Date) Pace {
	daysLeft := today.DaysUntil(g.TargetDate)
	remaining := g.TargetAmount.Sub(g.CurrentAmount)

	p := Pace{
		DaysLeft:  daysLeft,
		Remaining: remaining,
		Daily:     decimal.Zero,
		Weekly:    decimal.Zero,
		Monthly:   decimal.Zero,
	}

	if daysLeft < 0 {
		p.Overdue = -daysLeft
	}

	if daysLeft <= 0 {
		return p
	}

	daily := remaining.Div(decimal.NewFromInt(int64(daysLeft)))
	p.Daily = nonNegative(daily)
	p.Weekly = nonNegative(daily.Mul(daysPerWeek))
	p.Monthly = nonNegative(daily.Mul(daysPerMonth))

	return p
}

// OverdueDays returns by how many days the target date has passed.
func (p Pace) OverdueDays() int {
	return p.Overdue
}

func nonNegative(d decimal.Decimal) decimal.Decimal {
	return decimal.Max(d, decimal.Zero).Round(2)
}

// Completion is how far a goal has been reached.
type Completion struct {
	Percentage decimal.Decimal `json:"percentage" example:"20"` // Clamped to [0, 100]
	Completed  bool            `json:"completed" example:"false"`
}

// GoalCompletion computes the completion of a goal. A goal is completed
// once the current amount reaches the target amount.
func GoalCompletion(g models.SavingsGoal) Completion {
	raw := hundred
	if g.TargetAmount.IsPositive() {
		raw = g.CurrentAmount.Div(g.TargetAmount).Mul(hundred)
	}

	return Completion{
		Percentage: decimal.Min(decimal.Max(raw, decimal.Zero), hundred).Round(2),
		Completed:  g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount),
	}
}
