package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/pocketbook-app/backend/internal/types"
	"github.com/pocketbook-app/backend/internal/views"
	"github.com/pocketbook-app/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCleanup() {
	category := suite.createTestCategory("Pets")
	_ = suite.createTestExpense("12", category.ID, test.Today, "Food")
	_ = suite.createTestBudget(views.BudgetForm{CategoryID: category.ID, Amount: decimal.NewFromInt(100), Period: types.Weekly, StartDate: test.Today})
	_ = suite.createTestGoal("1000", "0", test.Today.AddDays(10))

	// Records of other principals are kept
	other := test.Authorize(suite.T())

	tests := []string{
		"http://example.com/v1/categories",
		"http://example.com/v1/expenses",
		"http://example.com/v1/budgets",
		"http://example.com/v1/goals",
	}

	// Delete
	recorder := suite.request(http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	// Verify
	for _, tt := range tests {
		suite.T().Run(tt, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, tt, "", suite.auth)
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response struct {
				Data []any `json:"data"`
			}

			test.DecodeResponse(t, &recorder, &response)
			assert.Len(t, response.Data, 0, "There are resources left for type %s", tt)
		})
	}

	// The profile itself is kept
	recorder = suite.request(http.MethodGet, "http://example.com/v1/profile", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories", "", other)
	var response struct {
		Data []any `json:"data"`
	}
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().NotEmpty(response.Data, "categories of other principals have been deleted")
}

func (suite *TestSuiteStandard) TestCleanupFails() {
	tests := []struct {
		name string
		path string
	}{
		{"Invalid path", "confirm=2"},
		{"Confirmation wrong", "confirm=invalid-confirmation"},
		{"No confirmation", ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodDelete, fmt.Sprintf("http://example.com/v1?%s", tt.path), "", suite.auth)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestCleanupDBError() {
	suite.CloseDB()

	recorder := suite.request(http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}
