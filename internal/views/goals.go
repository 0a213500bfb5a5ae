package views

import (
	"context"

	"github.com/google/uuid"
	"github.com/pocketbook-app/backend/internal/gateway"
	"github.com/pocketbook-app/backend/internal/models"
	"github.com/pocketbook-app/backend/internal/session"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// GoalList is the list of all savings goals with their pace.
type GoalList struct {
	loader
	gw gateway.Gateway

	goals []models.SavingsGoal
}

// NewGoalList returns an empty goal list.
func NewGoalList(gw gateway.Gateway, p session.Principal, opts ...Option) *GoalList {
	v := &GoalList{
		gw:    gw,
		goals: []models.SavingsGoal{},
	}
	v.init("goals", p, opts)

	return v
}

// Load fetches all savings goals.
func (v *GoalList) Load(ctx context.Context) error {
	ctx, generation := v.begin(ctx)

	goals, err := gateway.List[models.SavingsGoal](ctx, v.gw, goalsQuery)
	if err != nil {
		return v.fail(generation, err)
	}

	return v.commit(generation, func() {
		v.goals = goals
	})
}

// Statuses returns all goals with their pace and completion.
func (v *GoalList) Statuses() []GoalStatus {
	v.mu.Lock()
	defer v.mu.Unlock()

	return goalStatuses(v.goals, v.today())
}

// Create validates the form and stores a new goal.
func (v *GoalList) Create(ctx context.Context, form GoalForm) (GoalStatus, error) {
	if err := form.Validate(); err != nil {
		return GoalStatus{}, err
	}

	if _, ok := v.principal.UserID(); !ok {
		return GoalStatus{}, session.ErrNoPrincipal
	}

	record := form.Model()
	id, err := v.gw.Insert(ctx, gateway.SavingsGoals, &record)
	if err != nil {
		return GoalStatus{}, err
	}

	created, err := gateway.Get[models.SavingsGoal](ctx, v.gw, gateway.SavingsGoals, id)
	if err != nil {
		return GoalStatus{}, err
	}

	var status GoalStatus
	err = v.mutate(func() {
		v.goals = append(slices.Clone(v.goals), created)
		status = NewGoalStatus(created, v.today())
	})

	return status, err
}

// AddProgress adds delta to the current amount of a goal.
//
// The new amount is computed from the loaded goal. If the goal has been
// changed in the meantime, gateway.ErrConflict is returned and the goal
// needs to be reloaded.
func (v *GoalList) AddProgress(ctx context.Context, id uuid.UUID, delta decimal.Decimal) (GoalStatus, error) {
	if !delta.IsPositive() {
		return GoalStatus{}, ErrProgressAmountInvalid
	}

	if _, ok := v.principal.UserID(); !ok {
		return GoalStatus{}, session.ErrNoPrincipal
	}

	goal, ok := v.find(id)
	if !ok {
		var err error
		goal, err = gateway.Get[models.SavingsGoal](ctx, v.gw, gateway.SavingsGoals, id)
		if err != nil {
			return GoalStatus{}, err
		}
	}

	next := goal.CurrentAmount.Add(delta)
	err := v.gw.CompareAndUpdate(ctx, gateway.SavingsGoals, id,
		map[string]any{"current_amount": goal.CurrentAmount},
		map[string]any{"current_amount": next},
	)
	if err != nil {
		return GoalStatus{}, err
	}

	goal.CurrentAmount = next

	var status GoalStatus
	err = v.mutate(func() {
		v.goals = slices.Clone(v.goals)
		for i := range v.goals {
			if v.goals[i].ID == id {
				v.goals[i] = goal
			}
		}
		status = NewGoalStatus(goal, v.today())
	})

	return status, err
}

func (v *GoalList) find(id uuid.UUID) (models.SavingsGoal, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	i := slices.IndexFunc(v.goals, func(g models.SavingsGoal) bool {
		return g.ID == id
	})
	if i < 0 {
		return models.SavingsGoal{}, false
	}

	return v.goals[i], true
}

// Delete removes a goal.
func (v *GoalList) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := v.principal.UserID(); !ok {
		return session.ErrNoPrincipal
	}

	if err := v.gw.Delete(ctx, gateway.SavingsGoals, id); err != nil {
		return err
	}

	return v.mutate(func() {
		v.goals = slices.DeleteFunc(slices.Clone(v.goals), func(g models.SavingsGoal) bool {
			return g.ID == id
		})
	})
}
