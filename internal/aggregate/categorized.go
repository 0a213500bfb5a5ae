// Package aggregate derives metrics from loaded records.
//
// All functions are pure: they neither modify their inputs nor keep state
// between calls, and the current date is always passed in explicitly.
package aggregate

import (
	"github.com/google/uuid"
	"github.com/pocketbook-app/backend/internal/models"
)

// UnresolvedName and UnresolvedColor are used for expenses without a
// resolved category.
const (
	UnresolvedName  = "Other"
	UnresolvedColor = models.DefaultColor
)

// CategorizedExpense is an expense together with the resolution of its
// category. It is either an ExpenseWithCategory or an
// ExpenseCategoryUnresolved.
type CategorizedExpense interface {
	Expense() models.Expense
	categorized()
}

// ExpenseWithCategory is an expense whose category is known.
type ExpenseWithCategory struct {
	Record   models.Expense
	Category models.Category
}

func (e ExpenseWithCategory) Expense() models.Expense { return e.Record }
func (ExpenseWithCategory) categorized()              {}

// ExpenseCategoryUnresolved is an expense whose category is not known.
type ExpenseCategoryUnresolved struct {
	Record models.Expense
}

func (e ExpenseCategoryUnresolved) Expense() models.Expense { return e.Record }
func (ExpenseCategoryUnresolved) categorized()              {}

// Categorize resolves the categories of expenses from their expanded
// category relation.
func Categorize(expenses []models.Expense) []CategorizedExpense {
	out := make([]CategorizedExpense, 0, len(expenses))
	for _, e := range expenses {
		if e.Category == nil {
			out = append(out, ExpenseCategoryUnresolved{Record: e})
			continue
		}

		out = append(out, ExpenseWithCategory{Record: e, Category: *e.Category})
	}

	return out
}

// CategorizeWith resolves the categories of expenses from a separately
// loaded category list.
func CategorizeWith(expenses []models.Expense, categories []models.Category) []CategorizedExpense {
	byID := make(map[uuid.UUID]models.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}

	out := make([]CategorizedExpense, 0, len(expenses))
	for _, e := range expenses {
		c, ok := byID[e.CategoryID]
		if !ok {
			out = append(out, ExpenseCategoryUnresolved{Record: e})
			continue
		}

		out = append(out, ExpenseWithCategory{Record: e, Category: c})
	}

	return out
}
