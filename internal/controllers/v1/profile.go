package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocketbook-app/backend/internal/gateway"
	"github.com/pocketbook-app/backend/internal/httputil"
	"github.com/pocketbook-app/backend/internal/models"
	"github.com/pocketbook-app/backend/internal/views"
)

func RegisterProfileRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsProfile)
	r.GET("", GetProfile)
	r.PATCH("", UpdateProfile)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Profile
// @Success		204
// @Router			/v1/profile [options]
func OptionsProfile(c *gin.Context) {
	httputil.OptionsGetPatch(c)
}

// @Summary		Get profile
// @Description	Returns the profile of the signed in principal
// @Tags			Profile
// @Produce		json
// @Success		200	{object}	ProfileResponse
// @Failure		401	{object}	ProfileResponse
// @Failure		500	{object}	ProfileResponse
// @Router			/v1/profile [get]
// @Security		BearerAuth
func GetProfile(c *gin.Context) {
	_, gw, err := scope(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProfileResponse{
			Error: &e,
		})
		return
	}

	profile, err := gateway.Get[models.Profile](c.Request.Context(), gw, gateway.Profiles, gw.Owner())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProfileResponse{
			Error: &e,
		})
		return
	}

	apiResource := newProfile(c, profile)
	c.JSON(http.StatusOK, ProfileResponse{Data: &apiResource})
}

// @Summary		Update profile
// @Description	Updates the profile of the signed in principal. Only values to be updated need to be specified.
// @Tags			Profile
// @Accept			json
// @Produce		json
// @Success		200		{object}	ProfileResponse
// @Failure		400		{object}	ProfileResponse
// @Failure		401		{object}	ProfileResponse
// @Failure		500		{object}	ProfileResponse
// @Param			profile	body		views.ProfileForm	true	"Profile"
// @Router			/v1/profile [patch]
// @Security		BearerAuth
func UpdateProfile(c *gin.Context) {
	_, gw, err := scope(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProfileResponse{
			Error: &e,
		})
		return
	}

	var data views.ProfileForm
	err = httputil.BindData(c, &data)
	if err == nil {
		err = data.Validate()
	}
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProfileResponse{
			Error: &e,
		})
		return
	}

	if fields := data.Fields(); len(fields) > 0 {
		err = gw.Update(c.Request.Context(), gateway.Profiles, gw.Owner(), fields)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), ProfileResponse{
				Error: &e,
			})
			return
		}
	}

	profile, err := gateway.Get[models.Profile](c.Request.Context(), gw, gateway.Profiles, gw.Owner())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProfileResponse{
			Error: &e,
		})
		return
	}

	apiResource := newProfile(c, profile)
	c.JSON(http.StatusOK, ProfileResponse{Data: &apiResource})
}
