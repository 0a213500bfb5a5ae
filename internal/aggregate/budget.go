package aggregate

import (
	"github.com/pocketbook-app/backend/internal/models"
	"github.com/pocketbook-app/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Window selects the expenses that count towards a budget.
type Window int

const (
	// BudgetWindow counts expenses dated between the budget's start and
	// end date, both inclusive.
	BudgetWindow Window = iota

	// CalendarMonth counts expenses dated in the calendar month of today,
	// regardless of the budget's dates.
	CalendarMonth
)

func (w Window) String() string {
	switch w {
	case BudgetWindow:
		return "budget window"
	case CalendarMonth:
		return "calendar month"
	}
	return "unknown"
}

// contains reports whether the expense date falls into the window.
func (w Window) contains(b models.Budget, d, today types.Date) bool {
	if w == CalendarMonth {
		return types.MonthOf(today).Contains(d)
	}

	return d.Between(b.StartDate, b.EndDate)
}

var hundred = decimal.NewFromInt(100)

// Progress is the state of a budget.
type Progress struct {
	Spent      decimal.Decimal `json:"spent" example:"120"`
	Percentage decimal.Decimal `json:"percentage" example:"100"` // Share of the budget spent, clamped to [0, 100]
	Remaining  decimal.Decimal `json:"remaining" example:"0"`    // Never negative
	OverBudget bool            `json:"overBudget" example:"true"`
}

// BudgetProgress computes the progress of a budget from all expenses of the
// budget's category within the window.
func BudgetProgress(b models.Budget, expenses []models.Expense, w Window, today types.Date) Progress {
	spent := decimal.Zero
	for _, e := range expenses {
		if e.CategoryID == b.CategoryID && w.contains(b, e.Date, today) {
			spent = spent.Add(e.Amount)
		}
	}

	// Unclamped share of the budget that has been spent
	raw := decimal.Zero
	switch {
	case b.Amount.IsPositive():
		raw = spent.Div(b.Amount).Mul(hundred)
	case spent.IsPositive():
		raw = hundred
	}

	return Progress{
		Spent:      spent,
		Percentage: decimal.Min(decimal.Max(raw, decimal.Zero), hundred).Round(2),
		Remaining:  decimal.Max(b.Amount.Sub(spent), decimal.Zero),
		OverBudget: spent.GreaterThan(b.Amount),
	}
}
