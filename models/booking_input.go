package models

// CreateBookingInput is the body of a booking reconciled against a payment intent.
// Dates are ISO-8601 strings (date or date-time) and are parsed by the engine.
type CreateBookingInput struct {
	FirstName       string  `json:"firstName" binding:"required"`
	LastName        string  `json:"lastName" binding:"required"`
	Email           string  `json:"email" binding:"required,email"`
	Phone           string  `json:"phone"`
	AdultCount      int     `json:"adultCount" binding:"required,min=1"`
	ChildCount      int     `json:"childCount" binding:"min=0"`
	CheckIn         string  `json:"checkIn" binding:"required"`
	CheckOut        string  `json:"checkOut" binding:"required"`
	TotalCost       float64 `json:"totalCost" binding:"min=0"`
	PaymentIntentID string  `json:"paymentIntentId" binding:"required"`
	PaymentMethod   string  `json:"paymentMethod"`
	SpecialRequests string  `json:"specialRequests"`
}

// ManualBookingInput is the body of an administrative booking.
type ManualBookingInput struct {
	UserID          string  `json:"userId" binding:"required"`
	HotelID         string  `json:"hotelId" binding:"required"`
	FirstName       string  `json:"firstName" binding:"required"`
	LastName        string  `json:"lastName" binding:"required"`
	Email           string  `json:"email" binding:"required,email"`
	Phone           string  `json:"phone"`
	AdultCount      int     `json:"adultCount" binding:"required,min=1"`
	ChildCount      int     `json:"childCount" binding:"min=0"`
	CheckIn         string  `json:"checkIn" binding:"required"`
	CheckOut        string  `json:"checkOut" binding:"required"`
	TotalCost       float64 `json:"totalCost" binding:"min=0"`
	Status          string  `json:"status"`
	PaymentStatus   string  `json:"paymentStatus"`
	PaymentMethod   string  `json:"paymentMethod"`
	SpecialRequests string  `json:"specialRequests"`
}

// StatusUpdate is the body of PATCH /bookings/:id/status.
type StatusUpdate struct {
	Status             string   `json:"status" binding:"required"`
	CancellationReason string   `json:"cancellationReason"`
	RefundAmount       *float64 `json:"refundAmount"`
}

// PaymentUpdate is the body of PATCH /bookings/:id/payment.
type PaymentUpdate struct {
	PaymentStatus string `json:"paymentStatus" binding:"required"`
	PaymentMethod string `json:"paymentMethod"`
}
