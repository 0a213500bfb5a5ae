package views_test

import (
	"context"

	"github.com/pocketbook-app/backend/internal/session"
	"github.com/pocketbook-app/backend/internal/types"
	"github.com/pocketbook-app/backend/internal/views"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestDashboard() {
	gas := suite.createTestCategory("Gas")

	suite.createTestExpense("50", suite.category.ID, today.AddDays(-3), "Groceries")
	suite.createTestExpense("30", suite.category.ID, today, "Lunch")
	suite.createTestExpense("20", gas.ID, today.AddMonths(-1), "Fuel")
	suite.createTestExpense("15", gas.ID, today.AddDays(-1), "Fuel")

	suite.createTestBudget("100", suite.category.ID, today.AddMonths(-2), types.Monthly)
	suite.createTestGoal("1000", "200", today.AddDays(10))

	d := views.NewDashboard(suite.store, suite.session, suite.clock())
	suite.Require().Nil(d.Load(context.Background()))
	suite.Assert().Nil(d.LastError())

	s := d.Snapshot()
	suite.Assert().True(s.MonthlySpend.Equal(decimal.NewFromInt(95)), "monthly spend is %s", s.MonthlySpend)

	// Only the current month, so the categories sum up to the monthly spend
	suite.Require().Len(s.SpendByCategory, 2)
	suite.Assert().Equal("Food & Dining", s.SpendByCategory[0].Name)
	suite.Assert().True(s.SpendByCategory[0].Amount.Equal(decimal.NewFromInt(80)))
	suite.Assert().Equal("Gas", s.SpendByCategory[1].Name)
	suite.Assert().True(s.SpendByCategory[1].Amount.Equal(decimal.NewFromInt(15)))

	// Budgets count the calendar month
	suite.Require().Len(s.Budgets, 1)
	suite.Assert().True(s.Budgets[0].Progress.Spent.Equal(decimal.NewFromInt(80)), "spent is %s", s.Budgets[0].Progress.Spent)
	suite.Assert().Equal("Food & Dining", s.Budgets[0].Budget.Category.Name)

	suite.Require().Len(s.Goals, 1)
	suite.Assert().True(s.Goals[0].Pace.Daily.Equal(decimal.NewFromInt(80)))
	suite.Assert().True(s.Goals[0].Completion.Percentage.Equal(decimal.NewFromInt(20)))

	suite.Require().Len(s.RecentExpenses, 4)
	suite.Assert().Equal("Lunch", s.RecentExpenses[0].Description)
	suite.Assert().Equal("Fuel", s.RecentExpenses[3].Description)
}

func (suite *TestSuiteStandard) TestDashboardEmpty() {
	d := views.NewDashboard(suite.store, suite.session, suite.clock())

	s := d.Snapshot()
	suite.Assert().True(s.MonthlySpend.IsZero())
	suite.Assert().NotNil(s.Budgets)

	suite.Require().Nil(d.Load(context.Background()))
	s = d.Snapshot()
	suite.Assert().True(s.MonthlySpend.IsZero())
	suite.Assert().Empty(s.SpendByCategory)
	suite.Assert().Empty(s.RecentExpenses)
}

func (suite *TestSuiteStandard) TestDashboardRecentLimit() {
	for i := 0; i < views.RecentExpenses+3; i++ {
		suite.createTestExpense("1", suite.category.ID, today.AddDays(-i), "Coffee")
	}

	d := views.NewDashboard(suite.store, suite.session, suite.clock())
	suite.Require().Nil(d.Load(context.Background()))
	suite.Assert().Len(d.Snapshot().RecentExpenses, views.RecentExpenses)
}

func (suite *TestSuiteStandard) TestDashboardFailureKeepsState() {
	suite.createTestExpense("30", suite.category.ID, today, "Lunch")

	d := views.NewDashboard(suite.store, suite.session, suite.clock())
	suite.Require().Nil(d.Load(context.Background()))

	suite.CloseDB()

	// Silent by default
	suite.Assert().Nil(d.Load(context.Background()))
	suite.Assert().NotNil(d.LastError())
	suite.Assert().True(d.Snapshot().MonthlySpend.Equal(decimal.NewFromInt(30)), "previous state has been replaced")
}

func (suite *TestSuiteStandard) TestDashboardSurface() {
	d := views.NewDashboard(suite.store, suite.session, suite.clock(), views.WithPolicy(views.Surface))

	suite.CloseDB()

	err := d.Load(context.Background())
	suite.Assert().NotNil(err)
	suite.Assert().Equal(err, d.LastError())
}

func (suite *TestSuiteStandard) TestDashboardSignedOut() {
	suite.createTestExpense("30", suite.category.ID, today, "Lunch")

	sess := session.New()
	d := views.NewDashboard(suite.store, sess, suite.clock(), views.WithPolicy(views.Surface))

	err := d.Load(context.Background())
	suite.Assert().ErrorIs(err, session.ErrNoPrincipal)
	suite.Assert().True(d.Snapshot().MonthlySpend.IsZero(), "results have been committed for a session without principal")
}
