// Package v1 implements the v1 HTTP API.
package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/pocketbook-app/backend/internal/auth"
	"github.com/pocketbook-app/backend/internal/gateway"
	"github.com/pocketbook-app/backend/internal/models"
	"github.com/pocketbook-app/backend/internal/session"
	"github.com/pocketbook-app/backend/internal/types"
	"github.com/pocketbook-app/backend/internal/views"
)

// Controller holds the dependencies of the v1 handlers.
type Controller struct {
	Auth    *auth.Service
	Version string            // Version of the backend, used for exports
	Today   func() types.Date // Current date, types.Today if nil
}

// RegisterRoutes registers all v1 routes on the group.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", GetRoot)
	r.OPTIONS("", OptionsRoot)

	co.RegisterAuthRoutes(r.Group("/auth"))

	// Everything else needs a principal
	private := r.Group("", co.Auth.Middleware())
	private.DELETE("", co.Cleanup)

	RegisterProfileRoutes(private.Group("/profile"))
	RegisterCategoryRoutes(private.Group("/categories"))
	co.RegisterExpenseRoutes(private.Group("/expenses"))
	co.RegisterBudgetRoutes(private.Group("/budgets"))
	co.RegisterGoalRoutes(private.Group("/goals"))
	co.RegisterDashboardRoutes(private.Group("/dashboard"))
	co.RegisterExportRoutes(private.Group("/export"))
}

func (co Controller) today() types.Date {
	if co.Today == nil {
		return types.Today()
	}
	return co.Today()
}

// viewOptions returns the options for views used by handlers.
// Handlers always surface errors to the client.
func (co Controller) viewOptions() []views.Option {
	return []views.Option{
		views.WithPolicy(views.Surface),
		views.WithClock(co.today),
	}
}

// scope returns the session of the request and a gateway scoped
// to its principal.
func scope(c *gin.Context) (*session.Session, *gateway.Store, error) {
	sess, ok := auth.SessionFrom(c)
	if !ok {
		return nil, nil, session.ErrNoPrincipal
	}

	id, ok := sess.UserID()
	if !ok {
		return nil, nil, session.ErrNoPrincipal
	}

	return sess, gateway.NewStore(models.DB, id), nil
}
