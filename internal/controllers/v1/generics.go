package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/pocketbook-app/backend/internal/gateway"
	"github.com/pocketbook-app/backend/internal/httperror"
	"github.com/pocketbook-app/backend/internal/httputil"
	"github.com/pocketbook-app/backend/internal/models"
)

// getResource returns the resource with the ID from the URI. Related
// records listed in expand are loaded with it.
func getResource[R models.Category | models.Expense | models.Budget | models.SavingsGoal](c *gin.Context, collection gateway.Collection, expand ...string) (R, error) {
	var zero R

	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		return zero, err
	}

	_, gw, err := scope(c)
	if err != nil {
		return zero, err
	}

	return gateway.Get[R](c.Request.Context(), gw, collection, uri.ID.UUID, expand...)
}

// resourceOptionsDetail returns the appropriate response for an HTTP OPTIONS request for a specific resource.
func resourceOptionsDetail[R models.Category | models.Expense | models.Budget | models.SavingsGoal](c *gin.Context, collection gateway.Collection) {
	_, err := getResource[R](c, collection)
	if err != nil {
		httperror.Handler(c, err)
		return
	}

	httputil.OptionsGetDelete(c)
}
