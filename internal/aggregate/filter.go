package aggregate

import (
	"strings"

	"github.com/google/uuid"
	"github.com/pocketbook-app/backend/internal/models"
	"golang.org/x/text/cases"
)

// FilterExpenses returns the expenses matching both the search term and
// the category.
//
// The search term matches case insensitively against the description or
// the notes. An empty search term and uuid.Nil as category match all
// expenses.
func FilterExpenses(expenses []models.Expense, search string, categoryID uuid.UUID) []models.Expense {
	fold := cases.Fold()
	term := fold.String(strings.TrimSpace(search))

	out := make([]models.Expense, 0, len(expenses))
	for _, e := range expenses {
		if categoryID != uuid.Nil && e.CategoryID != categoryID {
			continue
		}

		if term != "" && !contains(fold, e.Description, term) && !contains(fold, e.Notes, term) {
			continue
		}

		out = append(out, e)
	}

	return out
}

func contains(fold cases.Caser, s, term string) bool {
	if s == "" {
		return false
	}

	return strings.Contains(fold.String(s), term)
}
