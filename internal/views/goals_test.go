package views_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/pocketbook-app/backend/internal/gateway"
	"github.com/pocketbook-app/backend/internal/models"
	"github.com/pocketbook-app/backend/internal/views"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestGoalListStatuses() {
	suite.createTestGoal("1000", "200", today.AddDays(10))
	suite.createTestGoal("500", "100", today.AddDays(-3))

	v := views.NewGoalList(suite.store, suite.session, suite.clock())
	suite.Require().Nil(v.Load(context.Background()))

	statuses := v.Statuses()
	suite.Require().Len(statuses, 2)

	// Ordered by target date
	overdue := statuses[0]
	suite.Assert().Equal(3, overdue.Pace.OverdueDays())
	suite.Assert().True(overdue.Pace.Daily.IsZero())

	pace := statuses[1].Pace
	suite.Assert().Equal(10, pace.DaysLeft)
	suite.Assert().True(pace.Remaining.Equal(decimal.NewFromInt(800)))
	suite.Assert().True(pace.Daily.Equal(decimal.NewFromInt(80)))
	suite.Assert().True(pace.Weekly.Equal(decimal.NewFromInt(560)))
	suite.Assert().True(pace.Monthly.Equal(decimal.NewFromInt(2400)))
}

func (suite *TestSuiteStandard) TestGoalListCreate() {
	v := views.NewGoalList(suite.store, suite.session, suite.clock())

	status, err := v.Create(context.Background(), views.GoalForm{
		Title:        "Bike",
		TargetAmount: decimal.NewFromInt(1000),
		TargetDate:   today.AddDays(100),
	})
	suite.Require().Nil(err)
	suite.Assert().True(status.Goal.CurrentAmount.IsZero())
	suite.Assert().False(status.Completion.Completed)
	suite.Assert().Len(v.Statuses(), 1)

	_, err = v.Create(context.Background(), views.GoalForm{
		Title:        "Bike",
		TargetAmount: decimal.NewFromInt(1000),
	})
	suite.Assert().ErrorIs(err, models.ErrGoalTargetDateMissing)
}

func (suite *TestSuiteStandard) TestGoalListAddProgress() {
	goal := suite.createTestGoal("1000", "200", today.AddDays(10))

	v := views.NewGoalList(suite.store, suite.session, suite.clock())
	suite.Require().Nil(v.Load(context.Background()))

	status, err := v.AddProgress(context.Background(), goal.ID, decimal.RequireFromString("50.25"))
	suite.Require().Nil(err)
	suite.Assert().True(status.Goal.CurrentAmount.Equal(decimal.RequireFromString("250.25")), "current amount is %s", status.Goal.CurrentAmount)

	// The loaded goal has been updated, so a second increment works
	status, err = v.AddProgress(context.Background(), goal.ID, decimal.NewFromInt(1000))
	suite.Require().Nil(err)
	suite.Assert().True(status.Completion.Completed)

	var stored models.SavingsGoal
	suite.Require().Nil(models.DB.First(&stored, "id = ?", goal.ID).Error)
	suite.Assert().True(stored.CurrentAmount.Equal(decimal.RequireFromString("1250.25")), "stored amount is %s", stored.CurrentAmount)
}

func (suite *TestSuiteStandard) TestGoalListAddProgressConflict() {
	goal := suite.createTestGoal("1000", "200", today.AddDays(10))

	v := views.NewGoalList(suite.store, suite.session, suite.clock())
	suite.Require().Nil(v.Load(context.Background()))

	// Another client adds progress in the meantime
	suite.Require().Nil(models.DB.Model(&goal).Update("current_amount", decimal.NewFromInt(300)).Error)

	_, err := v.AddProgress(context.Background(), goal.ID, decimal.NewFromInt(50))
	suite.Assert().ErrorIs(err, gateway.ErrConflict)

	// After a reload, the increment works
	suite.Require().Nil(v.Load(context.Background()))
	status, err := v.AddProgress(context.Background(), goal.ID, decimal.NewFromInt(50))
	suite.Require().Nil(err)
	suite.Assert().True(status.Goal.CurrentAmount.Equal(decimal.NewFromInt(350)))
}

func (suite *TestSuiteStandard) TestGoalListAddProgressInvalid() {
	goal := suite.createTestGoal("1000", "200", today.AddDays(10))
	v := views.NewGoalList(suite.store, suite.session, suite.clock())

	for _, delta := range []string{"0", "-10"} {
		_, err := v.AddProgress(context.Background(), goal.ID, decimal.RequireFromString(delta))
		suite.Assert().ErrorIs(err, views.ErrProgressAmountInvalid, delta)
	}

	// Goals that have not been loaded are fetched
	status, err := v.AddProgress(context.Background(), goal.ID, decimal.NewFromInt(1))
	suite.Require().Nil(err)
	suite.Assert().True(status.Goal.CurrentAmount.Equal(decimal.NewFromInt(201)))

	_, err = v.AddProgress(context.Background(), uuid.New(), decimal.NewFromInt(1))
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestGoalListDelete() {
	goal := suite.createTestGoal("1000", "200", today.AddDays(10))

	v := views.NewGoalList(suite.store, suite.session, suite.clock())
	suite.Require().Nil(v.Load(context.Background()))

	suite.Require().Nil(v.Delete(context.Background(), goal.ID))
	suite.Assert().Empty(v.Statuses())
}
