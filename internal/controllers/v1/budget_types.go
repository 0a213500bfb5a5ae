package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/pocketbook-app/backend/internal/aggregate"
	"github.com/pocketbook-app/backend/internal/models"
	"github.com/pocketbook-app/backend/internal/types"
	ez_uuid "github.com/pocketbook-app/backend/internal/uuid"
	"github.com/pocketbook-app/backend/internal/views"
)

type BudgetLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/budgets/9f2c6a4b-0c1e-4f1a-8a44-5f0c2d7b8e19"`               // The budget itself
	Category string `json:"category" example:"https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91d71772f"`        // The category of the budget
	Expenses string `json:"expenses" example:"https://example.com/api/v1/expenses?category=3b1ea324-d438-4419-882a-2fc91d71772f"` // Expenses counting towards the budget
}

type Budget struct {
	models.Budget
	Progress aggregate.Progress `json:"progress"` // Spending within the budget window
	Links    BudgetLinks        `json:"links"`
}

// newBudget returns the API v1 representation of the resource
func newBudget(c *gin.Context, status views.BudgetStatus) Budget {
	url := c.GetString(string(models.DBContextURL))
	model := status.Budget

	return Budget{
		Budget:   model,
		Progress: status.Progress,
		Links: BudgetLinks{
			Self:     fmt.Sprintf("%s/v1/budgets/%s", url, model.ID),
			Category: fmt.Sprintf("%s/v1/categories/%s", url, model.CategoryID),
			Expenses: fmt.Sprintf("%s/v1/expenses?category=%s", url, model.CategoryID),
		},
	}
}

type BudgetListResponse struct {
	Data  []Budget `json:"data"`                                                          // List of resources
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BudgetCreateResponse struct {
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []BudgetResponse `json:"data"`                                                          // List of created resources
}

func (r *BudgetCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, BudgetResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BudgetResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Budget `json:"data"`                                                          // The resource
}

type BudgetQueryFilter struct {
	CategoryID ez_uuid.UUID `form:"category"` // ID of the category
	Period     types.Period `form:"period"`   // weekly or monthly
}

// matches reports whether the budget matches all fields set in the filter.
func (f BudgetQueryFilter) matches(b models.Budget, setFields []string) bool {
	for _, field := range setFields {
		switch field {
		case "CategoryID":
			if b.CategoryID != f.CategoryID.UUID {
				return false
			}
		case "Period":
			if b.Period != f.Period {
				return false
			}
		}
	}

	return true
}
