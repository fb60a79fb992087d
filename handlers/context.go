package handlers

import (
	"net/http"

	"github.com/Present111/Hotel-Booking/middleware"
	"github.com/Present111/Hotel-Booking/models"
	"github.com/Present111/Hotel-Booking/utils"

	"github.com/gin-gonic/gin"
)

// requireCaller returns the authenticated caller or aborts with 401.
func requireCaller(c *gin.Context) (models.Caller, bool) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "unauthorized", "")
	}
	return caller, ok
}
