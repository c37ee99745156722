package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/srivallinalla12/calories-nutrition-tracker-app/models"
	"github.com/srivallinalla12/calories-nutrition-tracker-app/services"
	"github.com/srivallinalla12/calories-nutrition-tracker-app/storage"
)

var validationErrors = []error{
	models.ErrEmptyMealName,
	models.ErrInvalidServings,
	models.ErrNegativeMacro,
	models.ErrInvalidMealType,
	services.ErrNotInCatalog,
	services.ErrInvalidDate,
	services.ErrGoalOutOfRange,
	services.ErrUnknownGoal,
	services.ErrInvalidTarget,
	services.ErrInvalidUsername,
	services.ErrInvalidPassword,
	services.ErrUnknownRange,
}

// respondError maps domain errors onto HTTP statuses so every controller
// reports them the same way.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrDatasetUnavailable):
		status = http.StatusServiceUnavailable
	case errors.Is(err, services.ErrRecordNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, storage.ErrUserExists):
		status = http.StatusConflict
	default:
		for _, v := range validationErrors {
			if errors.Is(err, v) {
				status = http.StatusBadRequest
				break
			}
		}
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func currentUser(c *gin.Context) string {
	return c.GetString("username")
}
