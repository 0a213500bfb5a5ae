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

// BudgetList is the list of all budgets with their progress within the
// budget's own window.
type BudgetList struct {
	loader
	gw gateway.Gateway

	budgets    []models.Budget
	expenses   []models.Expense
	categories []models.Category
}

// NewBudgetList returns an empty budget list.
func NewBudgetList(gw gateway.Gateway, p session.Principal, opts ...Option) *BudgetList {
	v := &BudgetList{
		gw:         gw,
		budgets:    []models.Budget{},
		expenses:   []models.Expense{},
		categories: []models.Category{},
	}
	v.init("budgets", p, opts)

	return v
}

// Load fetches budgets, expenses and categories concurrently.
func (v *BudgetList) Load(ctx context.Context) error {
	ctx, generation := v.begin(ctx)

	var (
		budgets    []models.Budget
		expenses   []models.Expense
		categories []models.Category
	)

	g, gctx := errgroup.WithContext(ctx)
	fetch(gctx, g, v.gw, budgetsQuery, &budgets)
	fetch(gctx, g, v.gw, expensesQuery, &expenses)
	fetch(gctx, g, v.gw, categoriesQuery, &categories)

	if err := g.Wait(); err != nil {
		return v.fail(generation, err)
	}

	return v.commit(generation, func() {
		v.budgets = budgets
		v.expenses = expenses
		v.categories = categories
	})
}

// Statuses returns all budgets with their progress.
func (v *BudgetList) Statuses() []BudgetStatus {
	v.mu.Lock()
	defer v.mu.Unlock()

	return budgetStatuses(v.budgets, v.expenses, aggregate.BudgetWindow, v.today())
}

// Categories returns all loaded categories ordered by name.
func (v *BudgetList) Categories() []models.Category {
	v.mu.Lock()
	defer v.mu.Unlock()

	return slices.Clone(v.categories)
}

// Create validates the form and stores a new budget. The end date is
// computed from the start date and the period.
func (v *BudgetList) Create(ctx context.Context, form BudgetForm) (BudgetStatus, error) {
	if err := form.Validate(); err != nil {
		return BudgetStatus{}, err
	}

	if _, ok := v.principal.UserID(); !ok {
		return BudgetStatus{}, session.ErrNoPrincipal
	}

	record := form.Model()
	id, err := v.gw.Insert(ctx, gateway.Budgets, &record)
	if err != nil {
		return BudgetStatus{}, err
	}

	created, err := gateway.Get[models.Budget](ctx, v.gw, gateway.Budgets, id, "Category")
	if err != nil {
		return BudgetStatus{}, err
	}

	var status BudgetStatus
	err = v.mutate(func() {
		v.budgets = append([]models.Budget{created}, v.budgets...)
		status = BudgetStatus{
			Budget:   created,
			Progress: aggregate.BudgetProgress(created, v.expenses, aggregate.BudgetWindow, v.today()),
		}
	})

	return status, err
}

// Delete removes a budget.
func (v *BudgetList) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := v.principal.UserID(); !ok {
		return session.ErrNoPrincipal
	}

	if err := v.gw.Delete(ctx, gateway.Budgets, id); err != nil {
		return err
	}

	return v.mutate(func() {
		v.budgets = slices.DeleteFunc(slices.Clone(v.budgets), func(b models.Budget) bool {
			return b.ID == id
		})
	})
}
