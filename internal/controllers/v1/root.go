package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocketbook-app/backend/internal/httputil"
	"github.com/pocketbook-app/backend/internal/models"
)

type RootResponse struct {
	Links RootLinks `json:"links"` // Links for the v1 API
}

type RootLinks struct {
	Register   string `json:"register" example:"https://example.com/api/v1/auth/register"` // URL of the sign up endpoint
	Login      string `json:"login" example:"https://example.com/api/v1/auth/login"`       // URL of the sign in endpoint
	Logout     string `json:"logout" example:"https://example.com/api/v1/auth/logout"`     // URL of the sign out endpoint
	Profile    string `json:"profile" example:"https://example.com/api/v1/profile"`        // URL of the profile endpoint
	Categories string `json:"categories" example:"https://example.com/api/v1/categories"`  // URL of Category collection endpoint
	Expenses   string `json:"expenses" example:"https://example.com/api/v1/expenses"`      // URL of Expense collection endpoint
	Budgets    string `json:"budgets" example:"https://example.com/api/v1/budgets"`        // URL of Budget collection endpoint
	Goals      string `json:"goals" example:"https://example.com/api/v1/goals"`            // URL of Goal collection endpoint
	Dashboard  string `json:"dashboard" example:"https://example.com/api/v1/dashboard"`    // URL of the dashboard endpoint
	Export     string `json:"export" example:"https://example.com/api/v1/export"`          // URL of the export endpoint
}

// GetRoot returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	RootResponse
//	@Router			/v1 [get]
func GetRoot(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Register:   url + "/v1/auth/register",
			Login:      url + "/v1/auth/login",
			Logout:     url + "/v1/auth/logout",
			Profile:    url + "/v1/profile",
			Categories: url + "/v1/categories",
			Expenses:   url + "/v1/expenses",
			Budgets:    url + "/v1/budgets",
			Goals:      url + "/v1/goals",
			Dashboard:  url + "/v1/dashboard",
			Export:     url + "/v1/export",
		},
	})
}

// OptionsRoot returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}
