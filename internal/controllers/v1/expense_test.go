package v1_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/pocketbook-app/backend/internal/controllers/v1"
	"github.com/pocketbook-app/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestExpenses() {
	category := suite.defaultCategory()
	created := suite.createTestExpense("19.99", category.ID, test.Today, "  Dinner ")

	suite.Assert().Equal("Dinner", created.Description)
	suite.Assert().True(created.Amount.Equal(decimal.RequireFromString("19.99")))
	suite.Assert().Equal(test.Today, created.Date)
	suite.Assert().Equal(category.Links.Self, created.Links.Category)

	recorder := suite.request(http.MethodGet, created.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data.Category, "category has not been expanded")
	suite.Assert().Equal(category.Name, response.Data.Category.Name)
}

func (suite *TestSuiteStandard) TestGetExpensesFilter() {
	food := suite.defaultCategory()
	fun := suite.createTestCategory("Fun")

	suite.createTestExpense("4.5", food.ID, test.Today, "Morning Coffee")
	suite.createTestExpense("12", food.ID, test.Today.AddDays(-1), "Groceries")
	suite.createTestExpense("8", fun.ID, test.Today.AddDays(-2), "Irish coffee")

	tests := []struct {
		name   string
		query  string
		length int
	}{
		{"None", "", 3},
		{"Search", "search=COFFEE", 2},
		{"Category", "category=" + food.ID.String(), 2},
		{"Search and category", "search=coffee&category=" + fun.ID.String(), 1},
		{"Unknown category", "category=" + uuid.NewString(), 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, "http://example.com/v1/expenses?"+tt.query, "", suite.auth)
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response v1.ExpenseListResponse
			test.DecodeResponse(t, &recorder, &response)
			assert.Len(t, response.Data, tt.length)
		})
	}
}

func (suite *TestSuiteStandard) TestGetExpensesOrder() {
	category := suite.defaultCategory()

	suite.createTestExpense("1", category.ID, test.Today.AddDays(-3), "Oldest")
	suite.createTestExpense("2", category.ID, test.Today, "Newest")
	suite.createTestExpense("3", category.ID, test.Today.AddDays(-1), "Middle")

	recorder := suite.request(http.MethodGet, "http://example.com/v1/expenses", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 3)
	suite.Assert().Equal("Newest", response.Data[0].Description)
	suite.Assert().Equal("Middle", response.Data[1].Description)
	suite.Assert().Equal("Oldest", response.Data[2].Description)
}

func (suite *TestSuiteStandard) TestGetExpensesInvalidQuery() {
	recorder := suite.request(http.MethodGet, "http://example.com/v1/expenses?category=not-a-uuid", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCreateExpensesFails() {
	category := suite.defaultCategory()

	tests := []struct {
		name string
		form map[string]any
	}{
		{"Zero amount", map[string]any{"amount": "0", "description": "Dinner", "categoryId": category.ID, "date": test.Today}},
		{"Negative amount", map[string]any{"amount": "-4", "description": "Dinner", "categoryId": category.ID, "date": test.Today}},
		{"No description", map[string]any{"amount": "4", "categoryId": category.ID, "date": test.Today}},
		{"No category", map[string]any{"amount": "4", "description": "Dinner", "date": test.Today}},
		{"No date", map[string]any{"amount": "4", "description": "Dinner", "categoryId": category.ID}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, "http://example.com/v1/expenses", []any{tt.form}, suite.auth)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)

			var response v1.ExpenseCreateResponse
			test.DecodeResponse(t, &recorder, &response)
			assert.NotNil(t, response.Data[0].Error)
		})
	}

	// Unknown categories are not found
	recorder := suite.request(http.MethodPost, "http://example.com/v1/expenses", []any{
		map[string]any{"amount": "4", "description": "Dinner", "categoryId": uuid.New(), "date": test.Today},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)

	recorder = suite.request(http.MethodPost, "http://example.com/v1/expenses", `[{"amount": "4", "date": "2024-02-30"}]`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestDeleteExpense() {
	expense := suite.createTestExpense("4.5", suite.defaultCategory().ID, test.Today, "Coffee")

	recorder := suite.request(http.MethodDelete, expense.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = suite.request(http.MethodDelete, expense.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
