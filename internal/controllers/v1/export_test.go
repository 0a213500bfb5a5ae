package v1_test

import (
	"encoding/json"
	"net/http"

	v1 "github.com/pocketbook-app/backend/internal/controllers/v1"
	"github.com/pocketbook-app/backend/internal/models"
	"github.com/pocketbook-app/backend/internal/types"
	"github.com/pocketbook-app/backend/internal/views"
	"github.com/pocketbook-app/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestExport() {
	category := suite.defaultCategory()
	suite.createTestExpense("4.5", category.ID, test.Today, "Coffee")
	suite.createTestBudget(views.BudgetForm{CategoryID: category.ID, Amount: decimal.NewFromInt(100), Period: types.Weekly, StartDate: test.Today})
	suite.createTestGoal("1000", "0", test.Today.AddDays(10))

	// Records of other principals are not exported
	other := test.Authorize(suite.T())
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/goals", []views.GoalForm{{Title: "Not mine", TargetAmount: decimal.NewFromInt(1), TargetDate: test.Today}}, other)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	recorder = suite.request(http.MethodGet, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ExportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("GNU Terry Pratchett", response.Clacks)
	suite.Assert().Equal("0.0.0", response.Version)
	suite.Assert().False(response.CreationTime.IsZero())

	tests := []struct {
		name   string
		length int
	}{
		{"Category", len(models.DefaultCategories)},
		{"Expense", 1},
		{"Budget", 1},
		{"SavingsGoal", 1},
	}

	for _, tt := range tests {
		raw, ok := response.Data[tt.name]
		suite.Require().True(ok, "%s is missing in the export", tt.name)

		var records []map[string]any
		suite.Require().Nil(json.Unmarshal(raw, &records))
		suite.Assert().Len(records, tt.length, tt.name)
	}
}

func (suite *TestSuiteStandard) TestExportDBError() {
	suite.CloseDB()

	recorder := suite.request(http.MethodGet, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}
