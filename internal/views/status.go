package views

import (
	"context"

	"github.com/pocketbook-app/backend/internal/aggregate"
	"github.com/pocketbook-app/backend/internal/gateway"
	"github.com/pocketbook-app/backend/internal/models"
	"github.com/pocketbook-app/backend/internal/types"
	"golang.org/x/sync/errgroup"
)

// BudgetStatus is a budget with its progress.
type BudgetStatus struct {
	Budget   models.Budget      `json:"budget"`
	Progress aggregate.Progress `json:"progress"`
}

// GoalStatus is a savings goal with its pace and completion.
type GoalStatus struct {
	Goal       models.SavingsGoal   `json:"goal"`
	Pace       aggregate.Pace       `json:"pace"`
	Completion aggregate.Completion `json:"completion"`
}

func budgetStatuses(budgets []models.Budget, expenses []models.Expense, w aggregate.Window, today types.Date) []BudgetStatus {
	statuses := make([]BudgetStatus, 0, len(budgets))
	for _, b := range budgets {
		statuses = append(statuses, BudgetStatus{
			Budget:   b,
			Progress: aggregate.BudgetProgress(b, expenses, w, today),
		})
	}

	return statuses
}

// NewGoalStatus returns the status of a goal on the given day.
func NewGoalStatus(g models.SavingsGoal, today types.Date) GoalStatus {
	return GoalStatus{
		Goal:       g,
		Pace:       aggregate.RecommendedSavingsPace(g, today),
		Completion: aggregate.GoalCompletion(g),
	}
}

func goalStatuses(goals []models.SavingsGoal, today types.Date) []GoalStatus {
	statuses := make([]GoalStatus, 0, len(goals))
	for _, g := range goals {
		statuses = append(statuses, NewGoalStatus(g, today))
	}

	return statuses
}

// Queries used by all views
var (
	expensesQuery = gateway.Query{
		Collection: gateway.Expenses,
		Order:      "date DESC, created_at DESC",
		Expand:     []string{"Category"},
	}

	budgetsQuery = gateway.Query{
		Collection: gateway.Budgets,
		Order:      "start_date DESC, created_at DESC",
		Expand:     []string{"Category"},
	}

	goalsQuery = gateway.Query{
		Collection: gateway.SavingsGoals,
		Order:      "target_date ASC, created_at ASC",
	}

	categoriesQuery = gateway.Query{
		Collection: gateway.Categories,
		Order:      "name ASC",
	}
)

// fetch loads the records of the query into dest as part of the group.
func fetch[R any](ctx context.Context, g *errgroup.Group, gw gateway.Gateway, q gateway.Query, dest *[]R) {
	g.Go(func() error {
		records, err := gateway.List[R](ctx, gw, q)
		if err != nil {
			return err
		}

		*dest = records
		return nil
	})
}
