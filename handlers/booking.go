package handlers

import (
	"net/http"

	"github.com/Present111/Hotel-Booking/models"
	"github.com/Present111/Hotel-Booking/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking engine over HTTP.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BookingHandler{Service: svc, Logger: logger}
}

// CreatePaymentIntent handles POST /hotels/:hotelId/bookings/payment-intent.
func (h *BookingHandler) CreatePaymentIntent(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	var req models.PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := h.Service.IssuePaymentIntent(c.Request.Context(), caller, c.Param("hotelId"), req.NumberOfNights)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateBooking handles POST /hotels/:hotelId/bookings. The body is empty on success.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	var input models.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}

	if _, err := h.Service.CreateBookingFromPayment(c.Request.Context(), caller, c.Param("hotelId"), input); err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.Status(http.StatusOK)
}

// ListBookings handles GET /bookings.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	bookings, err := h.Service.ListBookings(c.Request.Context(), caller)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// ListHotelBookings handles GET /bookings/hotel/:hotelId.
func (h *BookingHandler) ListHotelBookings(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	bookings, err := h.Service.ListHotelBookings(c.Request.Context(), caller, c.Param("hotelId"))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBooking handles GET /bookings/:id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	b, err := h.Service.GetBooking(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// UpdateStatus handles PATCH /bookings/:id/status.
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	var update models.StatusUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		respondBindError(c, err)
		return
	}

	b, err := h.Service.UpdateBookingStatus(c.Request.Context(), caller, c.Param("id"), update)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// UpdatePayment handles PATCH /bookings/:id/payment.
func (h *BookingHandler) UpdatePayment(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	var update models.PaymentUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		respondBindError(c, err)
		return
	}

	b, err := h.Service.UpdatePaymentStatus(c.Request.Context(), caller, c.Param("id"), update)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// DeleteBooking handles DELETE /bookings/:id.
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	if _, err := h.Service.DeleteBooking(c.Request.Context(), caller, c.Param("id")); err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted successfully"})
}

// ListMyBookings handles GET /my-bookings.
func (h *BookingHandler) ListMyBookings(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	hotels, err := h.Service.ListMyBookings(c.Request.Context(), caller)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, hotels)
}
