package handlers

import (
	"net/http"

	"github.com/Present111/Hotel-Booking/models"
	"github.com/Present111/Hotel-Booking/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler encapsulates elevated admin-level operations.
type AdminHandler struct {
	BookingService booking.BookingService
	Logger         *zap.Logger
}

func NewAdminHandler(svc booking.BookingService, logger *zap.Logger) *AdminHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdminHandler{BookingService: svc, Logger: logger}
}

// CreateManualBooking handles POST /admin/bookings.
func (ah *AdminHandler) CreateManualBooking(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	var input models.ManualBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}

	b, err := ah.BookingService.CreateManualBooking(c.Request.Context(), caller, input)
	if err != nil {
		respondError(c, ah.Logger, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}
