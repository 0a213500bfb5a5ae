package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocketbook-app/backend/internal/httperror"
	"github.com/pocketbook-app/backend/internal/models"
)

// @Summary		Delete everything
// @Description	Permanently deletes all records of the signed in principal. The profile is kept.
// @Tags			v1
// @Success		204
// @Failure		400		{object}	httperror.Error
// @Failure		401		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			confirm	query		string	false	"Confirmation to delete all resources. Must have the value 'yes-please-delete-everything'"
// @Router			/v1 [delete]
// @Security		BearerAuth
func (co Controller) Cleanup(c *gin.Context) {
	var params struct {
		Confirm string `form:"confirm"`
	}

	err := c.Bind(&params)
	if err != nil || params.Confirm != "yes-please-delete-everything" {
		c.JSON(http.StatusBadRequest, httperror.New(errCleanupConfirmation))
		return
	}

	_, gw, err := scope(c)
	if err != nil {
		httperror.Handler(c, err)
		return
	}

	// Use a transaction so that we can roll back if errors happen.
	// The registry is ordered so that foreign keys are respected.
	tx := models.DB.WithContext(c.Request.Context()).Begin()

	for _, model := range models.Registry {
		err := tx.Where("owner_id = ?", gw.Owner()).Delete(&model).Error
		if err != nil {
			tx.Rollback()
			httperror.Handler(c, err)
			return
		}
	}

	err = tx.Commit().Error
	if err != nil {
		httperror.Handler(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
