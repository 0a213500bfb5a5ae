package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocketbook-app/backend/internal/auth"
	"github.com/pocketbook-app/backend/internal/httperror"
	"github.com/pocketbook-app/backend/internal/httputil"
)

func (co Controller) RegisterAuthRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("/register", OptionsAuth)
		r.POST("/register", co.Register)
	}
	{
		r.OPTIONS("/login", OptionsAuth)
		r.POST("/login", co.Login)
	}
	{
		r.OPTIONS("/logout", OptionsAuth)
		r.POST("/logout", co.Auth.Middleware(), co.Logout)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Auth
// @Success		204
// @Router			/v1/auth/register [options]
// @Router			/v1/auth/login [options]
// @Router			/v1/auth/logout [options]
func OptionsAuth(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Register
// @Description	Creates a new profile. The profile starts with a set of default categories.
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		201		{object}	ProfileResponse
// @Failure		400		{object}	ProfileResponse
// @Failure		500		{object}	ProfileResponse
// @Param			profile	body		RegisterEditable	true	"Profile"
// @Router			/v1/auth/register [post]
func (co Controller) Register(c *gin.Context) {
	var data RegisterEditable
	err := httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProfileResponse{
			Error: &e,
		})
		return
	}

	profile, err := co.Auth.Register(c.Request.Context(), data.Email, data.Password, data.DisplayName)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProfileResponse{
			Error: &e,
		})
		return
	}

	apiResource := newProfile(c, profile)
	c.JSON(http.StatusCreated, ProfileResponse{Data: &apiResource})
}

// @Summary		Login
// @Description	Returns a bearer token for the credentials
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		200			{object}	TokenResponse
// @Failure		400			{object}	TokenResponse
// @Failure		401			{object}	TokenResponse
// @Failure		500			{object}	TokenResponse
// @Param			credentials	body		LoginEditable	true	"Credentials"
// @Router			/v1/auth/login [post]
func (co Controller) Login(c *gin.Context) {
	var data LoginEditable
	err := httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TokenResponse{
			Error: &e,
		})
		return
	}

	token, err := co.Auth.Login(c.Request.Context(), data.Email, data.Password)
	if err != nil {
		e := auth.Message(err)
		c.JSON(status(err), TokenResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, TokenResponse{Data: &token})
}

// @Summary		Logout
// @Description	Revokes the bearer token used for the request
// @Tags			Auth
// @Success		204
// @Failure		401	{object}	httperror.Error
// @Router			/v1/auth/logout [post]
// @Security		BearerAuth
func (co Controller) Logout(c *gin.Context) {
	err := co.Auth.Logout(auth.TokenFrom(c))
	if err != nil {
		httperror.Handler(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
