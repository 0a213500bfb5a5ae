package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/pocketbook-app/backend/internal/models"
)

type ProfileLinks struct {
	Self       string `json:"self" example:"https://example.com/api/v1/profile"`          // The profile itself
	Categories string `json:"categories" example:"https://example.com/api/v1/categories"` // Categories of the profile
	Dashboard  string `json:"dashboard" example:"https://example.com/api/v1/dashboard"`   // Dashboard of the profile
}

type Profile struct {
	models.Profile
	Links ProfileLinks `json:"links"`
}

// newProfile returns the API v1 representation of the resource
func newProfile(c *gin.Context, model models.Profile) Profile {
	url := c.GetString(string(models.DBContextURL))

	return Profile{
		Profile: model,
		Links: ProfileLinks{
			Self:       url + "/v1/profile",
			Categories: url + "/v1/categories",
			Dashboard:  url + "/v1/dashboard",
		},
	}
}

type ProfileResponse struct {
	Error *string  `json:"error" example:"this email address is already registered"` // The error, if any occurred
	Data  *Profile `json:"data"`                                                     // The resource
}
