package views

import (
	"context"

	"github.com/google/uuid"
	"github.com/pocketbook-app/backend/internal/aggregate"
	"github.com/pocketbook-app/backend/internal/gateway"
	"github.com/pocketbook-app/backend/internal/models"
	"github.com/pocketbook-app/backend/internal/session"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

// ExpenseList is the list of all expenses with a search filter.
type ExpenseList struct {
	loader
	gw gateway.Gateway

	expenses   []models.Expense
	categories []models.Category
	search     string
	categoryID uuid.UUID
}

// NewExpenseList returns an empty expense list.
func NewExpenseList(gw gateway.Gateway, p session.Principal, opts ...Option) *ExpenseList {
	v := &ExpenseList{
		gw:         gw,
		expenses:   []models.Expense{},
		categories: []models.Category{},
	}
	v.init("expenses", p, opts)

	return v
}

// Load fetches expenses and categories concurrently.
func (v *ExpenseList) Load(ctx context.Context) error {
	ctx, generation := v.begin(ctx)

	var (
		expenses   []models.Expense
		categories []models.Category
	)

	g, gctx := errgroup.WithContext(ctx)
	fetch(gctx, g, v.gw, expensesQuery, &expenses)
	fetch(gctx, g, v.gw, categoriesQuery, &categories)

	if err := g.Wait(); err != nil {
		return v.fail(generation, err)
	}

	return v.commit(generation, func() {
		v.expenses = expenses
		v.categories = categories
	})
}

// Expenses returns all loaded expenses, most recent first.
func (v *ExpenseList) Expenses() []models.Expense {
	v.mu.Lock()
	defer v.mu.Unlock()

	return slices.Clone(v.expenses)
}

// Categories returns all loaded categories ordered by name.
func (v *ExpenseList) Categories() []models.Category {
	v.mu.Lock()
	defer v.mu.Unlock()

	return slices.Clone(v.categories)
}

// SetFilter sets the search term and the category to filter by. uuid.Nil
// disables the category filter.
func (v *ExpenseList) SetFilter(search string, categoryID uuid.UUID) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.search = search
	v.categoryID = categoryID
}

// Visible returns the expenses matching the filter.
func (v *ExpenseList) Visible() []models.Expense {
	v.mu.Lock()
	defer v.mu.Unlock()

	return aggregate.FilterExpenses(v.expenses, v.search, v.categoryID)
}

// Create validates the form and stores a new expense.
func (v *ExpenseList) Create(ctx context.Context, form ExpenseForm) (models.Expense, error) {
	if err := form.Validate(); err != nil {
		return models.Expense{}, err
	}

	if _, ok := v.principal.UserID(); !ok {
		return models.Expense{}, session.ErrNoPrincipal
	}

	record := form.Model()
	id, err := v.gw.Insert(ctx, gateway.Expenses, &record)
	if err != nil {
		return models.Expense{}, err
	}

	created, err := gateway.Get[models.Expense](ctx, v.gw, gateway.Expenses, id, "Category")
	if err != nil {
		return models.Expense{}, err
	}

	err = v.mutate(func() {
		v.expenses = aggregate.Recent(append(v.expenses, created), len(v.expenses)+1)
	})
	return created, err
}

// Delete removes an expense.
func (v *ExpenseList) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := v.principal.UserID(); !ok {
		return session.ErrNoPrincipal
	}

	if err := v.gw.Delete(ctx, gateway.Expenses, id); err != nil {
		return err
	}

	return v.mutate(func() {
		v.expenses = removeExpense(v.expenses, id)
	})
}

func removeExpense(expenses []models.Expense, id uuid.UUID) []models.Expense {
	return slices.DeleteFunc(slices.Clone(expenses), func(e models.Expense) bool {
		return e.ID == id
	})
}
