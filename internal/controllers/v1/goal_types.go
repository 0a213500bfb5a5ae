package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/pocketbook-app/backend/internal/aggregate"
	"github.com/pocketbook-app/backend/internal/models"
	"github.com/pocketbook-app/backend/internal/views"
	"github.com/shopspring/decimal"
)

type GoalLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/goals/438cc6c0-9baf-49fd-a75a-d76bd5cab19c"`              // The goal itself
	Progress string `json:"progress" example:"https://example.com/api/v1/goals/438cc6c0-9baf-49fd-a75a-d76bd5cab19c/progress"` // Endpoint to add progress to the goal
}

type Goal struct {
	models.SavingsGoal
	Pace       aggregate.Pace       `json:"pace"`       // Recommended savings pace to reach the goal in time
	Completion aggregate.Completion `json:"completion"` // How much of the goal has been saved
	Links      GoalLinks            `json:"links"`
}

// newGoal returns the API v1 representation of the resource
func newGoal(c *gin.Context, status views.GoalStatus) Goal {
	url := c.GetString(string(models.DBContextURL))
	model := status.Goal

	return Goal{
		SavingsGoal: model,
		Pace:        status.Pace,
		Completion:  status.Completion,
		Links: GoalLinks{
			Self:     fmt.Sprintf("%s/v1/goals/%s", url, model.ID),
			Progress: fmt.Sprintf("%s/v1/goals/%s/progress", url, model.ID),
		},
	}
}

type GoalListResponse struct {
	Data  []Goal  `json:"data"`                                                          // List of resources
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type GoalCreateResponse struct {
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []GoalResponse `json:"data"`                                                          // List of created resources
}

func (r *GoalCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, GoalResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type GoalResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Goal   `json:"data"`                                                          // The resource
}

type ProgressEditable struct {
	Amount decimal.Decimal `json:"amount" swaggertype:"string" example:"50"` // Amount saved, added to the current amount of the goal
}
