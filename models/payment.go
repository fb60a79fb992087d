package models

// PaymentIntentRequest is the body of POST /hotels/:hotelId/bookings/payment-intent.
type PaymentIntentRequest struct {
	NumberOfNights int `json:"numberOfNights" binding:"required,min=1"`
}

// PaymentIntentResponse is returned to the client that will confirm the payment.
type PaymentIntentResponse struct {
	PaymentIntentID string  `json:"paymentIntentId"`
	ClientSecret    string  `json:"clientSecret"`
	TotalCost       float64 `json:"totalCost"`
}
