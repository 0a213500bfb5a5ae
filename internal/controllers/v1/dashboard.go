package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocketbook-app/backend/internal/httputil"
	"github.com/pocketbook-app/backend/internal/views"
)

type DashboardResponse struct {
	Error *string                  `json:"error" example:"you need to be signed in for this request"` // The error, if any occurred
	Data  *views.DashboardSnapshot `json:"data"`                                                      // The dashboard
}

func (co Controller) RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsDashboard)
	r.GET("", co.GetDashboard)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Dashboard
// @Success		204
// @Router			/v1/dashboard [options]
func OptionsDashboard(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get dashboard
// @Description	Returns the spending of the current month, budget progress within the current month,
// @Description	savings goals and the most recent expenses
// @Tags			Dashboard
// @Produce		json
// @Success		200	{object}	DashboardResponse
// @Failure		401	{object}	DashboardResponse
// @Failure		500	{object}	DashboardResponse
// @Router			/v1/dashboard [get]
// @Security		BearerAuth
func (co Controller) GetDashboard(c *gin.Context) {
	sess, gw, err := scope(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DashboardResponse{
			Error: &e,
		})
		return
	}

	d := views.NewDashboard(gw, sess, co.viewOptions()...)
	err = d.Load(c.Request.Context())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DashboardResponse{
			Error: &e,
		})
		return
	}

	snapshot := d.Snapshot()
	c.JSON(http.StatusOK, DashboardResponse{Data: &snapshot})
}
