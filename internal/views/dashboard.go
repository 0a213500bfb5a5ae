package views

import (
	"context"

	"github.com/pocketbook-app/backend/internal/aggregate"
	"github.com/pocketbook-app/backend/internal/gateway"
	"github.com/pocketbook-app/backend/internal/models"
	"github.com/pocketbook-app/backend/internal/session"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// RecentExpenses is the number of expenses shown on the dashboard.
const RecentExpenses = 5

// DashboardSnapshot is the derived state of the dashboard.
type DashboardSnapshot struct {
	MonthlySpend    decimal.Decimal           `json:"monthlySpend" example:"80"`
	SpendByCategory []aggregate.CategorySpend `json:"spendByCategory"` // Current month only, the amounts sum up to the monthly spend
	Budgets         []BudgetStatus            `json:"budgets"`         // Progress within the current calendar month
	Goals           []GoalStatus              `json:"goals"`
	RecentExpenses  []models.Expense          `json:"recentExpenses"`
}

func emptySnapshot() DashboardSnapshot {
	return DashboardSnapshot{
		MonthlySpend:    decimal.Zero,
		SpendByCategory: []aggregate.CategorySpend{},
		Budgets:         []BudgetStatus{},
		Goals:           []GoalStatus{},
		RecentExpenses:  []models.Expense{},
	}
}

// Dashboard is the overview of the current month.
type Dashboard struct {
	loader
	gw       gateway.Gateway
	snapshot DashboardSnapshot
}

// NewDashboard returns an empty dashboard.
func NewDashboard(gw gateway.Gateway, p session.Principal, opts ...Option) *Dashboard {
	d := &Dashboard{
		gw:       gw,
		snapshot: emptySnapshot(),
	}
	d.init("dashboard", p, opts)

	return d
}

// Load fetches expenses, budgets and goals concurrently and recomputes
// the snapshot once all of them have been fetched.
func (d *Dashboard) Load(ctx context.Context) error {
	ctx, generation := d.begin(ctx)

	var (
		expenses []models.Expense
		budgets  []models.Budget
		goals    []models.SavingsGoal
	)

	g, gctx := errgroup.WithContext(ctx)
	fetch(gctx, g, d.gw, expensesQuery, &expenses)
	fetch(gctx, g, d.gw, budgetsQuery, &budgets)
	fetch(gctx, g, d.gw, goalsQuery, &goals)

	if err := g.Wait(); err != nil {
		return d.fail(generation, err)
	}

	today := d.today()
	month := aggregate.InMonth(expenses, today)

	snapshot := DashboardSnapshot{
		MonthlySpend:    aggregate.MonthlySpend(expenses, today),
		SpendByCategory: aggregate.SpendByCategory(aggregate.Categorize(month)),
		Budgets:         budgetStatuses(budgets, expenses, aggregate.CalendarMonth, today),
		Goals:           goalStatuses(goals, today),
		RecentExpenses:  aggregate.Recent(expenses, RecentExpenses),
	}

	return d.commit(generation, func() {
		d.snapshot = snapshot
	})
}

// Snapshot returns the state of the last successful load.
func (d *Dashboard) Snapshot() DashboardSnapshot {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.snapshot
}
