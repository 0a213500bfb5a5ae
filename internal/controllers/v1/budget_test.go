package v1_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/pocketbook-app/backend/internal/controllers/v1"
	"github.com/pocketbook-app/backend/internal/models"
	"github.com/pocketbook-app/backend/internal/types"
	"github.com/pocketbook-app/backend/internal/views"
	"github.com/pocketbook-app/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestBudgets() {
	category := suite.defaultCategory()
	start := test.Today.AddDays(-2)

	suite.createTestExpense("70", category.ID, start, "Groceries")
	suite.createTestExpense("50", category.ID, start.AddDays(7), "Groceries")
	suite.createTestExpense("30", category.ID, start.AddDays(8), "Outside of the window")

	budget := suite.createTestBudget(views.BudgetForm{
		CategoryID: category.ID,
		Amount:     decimal.NewFromInt(100),
		Period:     types.Weekly,
		StartDate:  start,
	})

	suite.Assert().Equal(start.AddDays(7), budget.EndDate)
	suite.Assert().True(budget.Progress.Spent.Equal(decimal.NewFromInt(120)), "spent is %s", budget.Progress.Spent)
	suite.Assert().True(budget.Progress.Percentage.Equal(decimal.NewFromInt(100)))
	suite.Assert().True(budget.Progress.Remaining.IsZero())
	suite.Assert().True(budget.Progress.OverBudget)

	// The detail endpoint computes the same progress
	recorder := suite.request(http.MethodGet, budget.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().True(response.Data.Progress.Spent.Equal(decimal.NewFromInt(120)))
	suite.Require().NotNil(response.Data.Category)
	suite.Assert().Equal(category.Name, response.Data.Category.Name)
}

func (suite *TestSuiteStandard) TestBudgetMonthlyOverflow() {
	budget := suite.createTestBudget(views.BudgetForm{
		CategoryID: suite.defaultCategory().ID,
		Amount:     decimal.NewFromInt(400),
		Period:     types.Monthly,
		StartDate:  types.NewDate(2024, 1, 31),
	})

	// January 31st plus one month overflows into March
	suite.Assert().Equal(types.NewDate(2024, 3, 2), budget.EndDate)
	suite.Assert().True(budget.Progress.Spent.IsZero())
	suite.Assert().False(budget.Progress.OverBudget)
}

func (suite *TestSuiteStandard) TestGetBudgetsFilter() {
	food := suite.defaultCategory()
	fun := suite.createTestCategory("Fun")

	suite.createTestBudget(views.BudgetForm{CategoryID: food.ID, Amount: decimal.NewFromInt(100), Period: types.Weekly, StartDate: test.Today})
	suite.createTestBudget(views.BudgetForm{CategoryID: food.ID, Amount: decimal.NewFromInt(400), Period: types.Monthly, StartDate: test.Today})
	suite.createTestBudget(views.BudgetForm{CategoryID: fun.ID, Amount: decimal.NewFromInt(50), Period: types.Monthly, StartDate: test.Today})

	tests := []struct {
		name   string
		query  string
		length int
	}{
		{"None", "", 3},
		{"Category", "category=" + food.ID.String(), 2},
		{"Period", "period=monthly", 2},
		{"Category and period", "category=" + fun.ID.String() + "&period=monthly", 1},
		{"No match", "category=" + fun.ID.String() + "&period=weekly", 0},
		{"Unknown category", "category=" + uuid.NewString(), 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, "http://example.com/v1/budgets?"+tt.query, "", suite.auth)
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response v1.BudgetListResponse
			test.DecodeResponse(t, &recorder, &response)
			assert.Len(t, response.Data, tt.length)
		})
	}
}

func (suite *TestSuiteStandard) TestGetBudgetsInvalidQuery() {
	tests := []struct {
		name  string
		query string
	}{
		{"Period", "period=daily"},
		{"Empty period", "period="},
		{"Category", "category=not-a-uuid"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, "http://example.com/v1/budgets?"+tt.query, "", suite.auth)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestCreateBudgetsFails() {
	category := suite.defaultCategory()

	tests := []struct {
		name   string
		form   views.BudgetForm
		status int
		err    error
	}{
		{"Amount", views.BudgetForm{CategoryID: category.ID, Period: types.Weekly, StartDate: test.Today}, http.StatusBadRequest, models.ErrBudgetAmountInvalid},
		{"Period", views.BudgetForm{CategoryID: category.ID, Amount: decimal.NewFromInt(1), Period: "daily", StartDate: test.Today}, http.StatusBadRequest, models.ErrBudgetPeriodInvalid},
		{"Start date", views.BudgetForm{CategoryID: category.ID, Amount: decimal.NewFromInt(1), Period: types.Weekly}, http.StatusBadRequest, models.ErrStartDateMissing},
		{"Unknown category", views.BudgetForm{CategoryID: uuid.New(), Amount: decimal.NewFromInt(1), Period: types.Weekly, StartDate: test.Today}, http.StatusNotFound, nil},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, "http://example.com/v1/budgets", []views.BudgetForm{tt.form}, suite.auth)
			test.AssertHTTPStatus(t, &recorder, tt.status)

			var response v1.BudgetCreateResponse
			test.DecodeResponse(t, &recorder, &response)
			if tt.err != nil {
				assert.Equal(t, tt.err.Error(), *response.Data[0].Error)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestDeleteBudget() {
	category := suite.createTestCategory("Pets")
	budget := suite.createTestBudget(views.BudgetForm{CategoryID: category.ID, Amount: decimal.NewFromInt(100), Period: types.Weekly, StartDate: test.Today})

	recorder := suite.request(http.MethodDelete, category.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	recorder = suite.request(http.MethodDelete, budget.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = suite.request(http.MethodDelete, category.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
}
