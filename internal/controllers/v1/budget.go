package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocketbook-app/backend/internal/aggregate"
	"github.com/pocketbook-app/backend/internal/gateway"
	"github.com/pocketbook-app/backend/internal/httperror"
	"github.com/pocketbook-app/backend/internal/httputil"
	"github.com/pocketbook-app/backend/internal/models"
	"github.com/pocketbook-app/backend/internal/views"
	"golang.org/x/exp/slices"
)

func (co Controller) RegisterBudgetRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsBudgets)
		r.GET("", co.GetBudgets)
		r.POST("", co.CreateBudgets)
	}
	{
		r.OPTIONS("/:id", OptionsBudgetDetail)
		r.GET("/:id", co.GetBudget)
		r.DELETE("/:id", co.DeleteBudget)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets [options]
func OptionsBudgets(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id} [options]
// @Security		BearerAuth
func OptionsBudgetDetail(c *gin.Context) {
	resourceOptionsDetail[models.Budget](c, gateway.Budgets)
}

// @Summary		Create budgets
// @Description	Creates new budgets. The end date is computed from the start date and the period.
// @Tags			Budgets
// @Produce		json
// @Success		201		{object}	BudgetCreateResponse
// @Failure		400		{object}	BudgetCreateResponse
// @Failure		401		{object}	BudgetCreateResponse
// @Failure		404		{object}	BudgetCreateResponse
// @Failure		500		{object}	BudgetCreateResponse
// @Param			budgets	body		[]views.BudgetForm	true	"Budgets"
// @Router			/v1/budgets [post]
// @Security		BearerAuth
func (co Controller) CreateBudgets(c *gin.Context) {
	sess, gw, err := scope(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetCreateResponse{
			Error: &e,
		})
		return
	}

	var budgets []views.BudgetForm
	err = httputil.BindData(c, &budgets)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetCreateResponse{
			Error: &e,
		})
		return
	}

	// Progress is computed from the loaded expenses
	v := views.NewBudgetList(gw, sess, co.viewOptions()...)
	err = v.Load(c.Request.Context())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := BudgetCreateResponse{}

	for _, create := range budgets {
		budget, err := v.Create(c.Request.Context(), create)
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		apiResource := newBudget(c, budget)
		r.Data = append(r.Data, BudgetResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get budgets
// @Description	Returns the budgets of the signed in principal with their progress
// @Tags			Budgets
// @Produce		json
// @Success		200			{object}	BudgetListResponse
// @Failure		400			{object}	BudgetListResponse
// @Failure		401			{object}	BudgetListResponse
// @Failure		500			{object}	BudgetListResponse
// @Param			category	query		string	false	"Filter by category ID"
// @Param			period		query		string	false	"Filter by period, weekly or monthly"
// @Router			/v1/budgets [get]
// @Security		BearerAuth
func (co Controller) GetBudgets(c *gin.Context) {
	var filter BudgetQueryFilter
	err := httputil.BindQuery(c, &filter)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetListResponse{
			Error: &e,
		})
		return
	}

	_, setFields := httputil.GetURLFields(c.Request.URL, filter)
	if slices.Contains(setFields, "Period") && !filter.Period.Valid() {
		e := models.ErrBudgetPeriodInvalid.Error()
		c.JSON(http.StatusBadRequest, BudgetListResponse{
			Error: &e,
		})
		return
	}

	sess, gw, err := scope(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetListResponse{
			Error: &e,
		})
		return
	}

	v := views.NewBudgetList(gw, sess, co.viewOptions()...)
	err = v.Load(c.Request.Context())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetListResponse{
			Error: &e,
		})
		return
	}

	// Transform resources to their API representation
	statuses := v.Statuses()
	data := make([]Budget, 0, len(statuses))
	for _, s := range statuses {
		if !filter.matches(s.Budget, setFields) {
			continue
		}
		data = append(data, newBudget(c, s))
	}

	c.JSON(http.StatusOK, BudgetListResponse{Data: data})
}

// @Summary		Get budget
// @Description	Returns a specific budget with its progress
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetResponse
// @Failure		400	{object}	BudgetResponse
// @Failure		401	{object}	BudgetResponse
// @Failure		404	{object}	BudgetResponse
// @Failure		500	{object}	BudgetResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id} [get]
// @Security		BearerAuth
func (co Controller) GetBudget(c *gin.Context) {
	budget, err := getResource[models.Budget](c, gateway.Budgets, "Category")
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &e,
		})
		return
	}

	_, gw, err := scope(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &e,
		})
		return
	}

	expenses, err := gateway.List[models.Expense](c.Request.Context(), gw, gateway.Query{
		Collection: gateway.Expenses,
		Filter:     map[string]any{"category_id": budget.CategoryID},
	})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &e,
		})
		return
	}

	apiResource := newBudget(c, views.BudgetStatus{
		Budget:   budget,
		Progress: aggregate.BudgetProgress(budget, expenses, aggregate.BudgetWindow, co.today()),
	})
	c.JSON(http.StatusOK, BudgetResponse{Data: &apiResource})
}

// @Summary		Delete budget
// @Description	Deletes a budget
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		401	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id} [delete]
// @Security		BearerAuth
func (co Controller) DeleteBudget(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		httperror.Handler(c, err)
		return
	}

	sess, gw, err := scope(c)
	if err != nil {
		httperror.Handler(c, err)
		return
	}

	err = views.NewBudgetList(gw, sess, co.viewOptions()...).Delete(c.Request.Context(), uri.ID.UUID)
	if err != nil {
		httperror.Handler(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
