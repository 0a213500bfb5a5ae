package aggregate

import (
	"github.com/pocketbook-app/backend/internal/models"
	"github.com/pocketbook-app/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// CategorySpend is the amount spent in one category.
type CategorySpend struct {
	Name   string          `json:"name" example:"Food & Dining"`
	Color  string          `json:"color" example:"#ef4444"`
	Amount decimal.Decimal `json:"amount" example:"80"`
}

// MonthlySpend sums the amounts of all expenses dated in the calendar
// month of today.
func MonthlySpend(expenses []models.Expense, today types.Date) decimal.Decimal {
	month := types.MonthOf(today)

	total := decimal.Zero
	for _, e := range expenses {
		if month.Contains(e.Date) {
			total = total.Add(e.Amount)
		}
	}

	return total
}

// InMonth returns the expenses dated in the calendar month of today.
func InMonth(expenses []models.Expense, today types.Date) []models.Expense {
	month := types.MonthOf(today)

	out := make([]models.Expense, 0, len(expenses))
	for _, e := range expenses {
		if month.Contains(e.Date) {
			out = append(out, e)
		}
	}

	return out
}

// SpendByCategory groups expenses by the name of their category.
//
// Expenses without a resolved category are grouped as "Other" with the
// default gray color. Groups are ordered by first occurrence. All expenses
// are counted regardless of their date.
func SpendByCategory(expenses []CategorizedExpense) []CategorySpend {
	out := make([]CategorySpend, 0)
	index := make(map[string]int)

	for _, ce := range expenses {
		name, color := UnresolvedName, UnresolvedColor
		if resolved, ok := ce.(ExpenseWithCategory); ok {
			name, color = resolved.Category.Name, resolved.Category.Color
		}

		i, ok := index[name]
		if !ok {
			index[name] = len(out)
			out = append(out, CategorySpend{Name: name, Color: color, Amount: decimal.Zero})
			i = len(out) - 1
		}

		out[i].Amount = out[i].Amount.Add(ce.Expense().Amount)
	}

	return out
}

// Total sums the amounts of all groups.
func Total(spends []CategorySpend) decimal.Decimal {
	total := decimal.Zero
	for _, s := range spends {
		total = total.Add(s.Amount)
	}

	return total
}

// Recent returns up to n expenses, most recent date first. Expenses on the
// same date are ordered by creation time, newest first.
func Recent(expenses []models.Expense, n int) []models.Expense {
	sorted := slices.Clone(expenses)
	slices.SortStableFunc(sorted, func(a, b models.Expense) int {
		if !a.Date.Equal(b.Date) {
			if a.Date.After(b.Date) {
				return -1
			}
			return 1
		}

		return b.CreatedAt.Compare(a.CreatedAt)
	})

	if len(sorted) > n {
		sorted = sorted[:n]
	}

	return sorted
}
