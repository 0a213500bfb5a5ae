package v1_test

import (
	"net/http"

	v1 "github.com/pocketbook-app/backend/internal/controllers/v1"
	"github.com/pocketbook-app/backend/internal/models"
	"github.com/pocketbook-app/backend/internal/types"
	"github.com/pocketbook-app/backend/internal/views"
	"github.com/pocketbook-app/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestDashboardEmpty() {
	recorder := suite.request(http.MethodGet, "http://example.com/v1/dashboard", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().True(response.Data.MonthlySpend.IsZero())
	suite.Assert().Empty(response.Data.SpendByCategory)
	suite.Assert().Empty(response.Data.RecentExpenses)
	suite.Assert().Empty(response.Data.Budgets)
	suite.Assert().Empty(response.Data.Goals)
}

func (suite *TestSuiteStandard) TestDashboard() {
	food := suite.defaultCategory()
	fun := suite.createTestCategory("Fun")

	suite.createTestExpense("50", food.ID, types.NewDate(2024, 3, 1), "Groceries")
	suite.createTestExpense("30", fun.ID, test.Today, "Cinema")
	suite.createTestExpense("500", food.ID, types.NewDate(2024, 2, 29), "Last month")

	// Started last month, only the current month counts on the dashboard
	suite.createTestBudget(views.BudgetForm{
		CategoryID: food.ID,
		Amount:     decimal.NewFromInt(100),
		Period:     types.Monthly,
		StartDate:  types.NewDate(2024, 2, 20),
	})
	suite.createTestGoal("1000", "250", test.Today.AddDays(30))

	recorder := suite.request(http.MethodGet, "http://example.com/v1/dashboard", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	snapshot := response.Data

	suite.Assert().True(snapshot.MonthlySpend.Equal(decimal.NewFromInt(80)), "monthly spend is %s", snapshot.MonthlySpend)

	// Groups are ordered by the most recent expense
	suite.Require().Len(snapshot.SpendByCategory, 2)
	suite.Assert().Equal("Fun", snapshot.SpendByCategory[0].Name)
	suite.Assert().True(snapshot.SpendByCategory[0].Amount.Equal(decimal.NewFromInt(30)))
	suite.Assert().Equal(food.Name, snapshot.SpendByCategory[1].Name)
	suite.Assert().True(snapshot.SpendByCategory[1].Amount.Equal(decimal.NewFromInt(50)))

	suite.Require().Len(snapshot.Budgets, 1)
	suite.Assert().True(snapshot.Budgets[0].Progress.Spent.Equal(decimal.NewFromInt(50)), "budget spent is %s", snapshot.Budgets[0].Progress.Spent)
	suite.Assert().False(snapshot.Budgets[0].Progress.OverBudget)

	suite.Require().Len(snapshot.Goals, 1)
	suite.Assert().True(snapshot.Goals[0].Completion.Percentage.Equal(decimal.NewFromInt(25)))

	suite.Require().Len(snapshot.RecentExpenses, 3)
	suite.Assert().Equal("Cinema", snapshot.RecentExpenses[0].Description)
}

func (suite *TestSuiteStandard) TestDashboardDBError() {
	suite.CloseDB()

	recorder := suite.request(http.MethodGet, "http://example.com/v1/dashboard", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
	suite.Assert().Contains(test.DecodeError(suite.T(), &recorder), models.ErrGeneral.Error())
}
