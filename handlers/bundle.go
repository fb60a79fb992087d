package handlers

// HandlerBundle groups the endpoint handlers the router mounts.
type HandlerBundle struct {
	BookingHandler *BookingHandler
	AdminHandler   *AdminHandler

	// MaxRequestsPerMin configures the per-IP rate limiter.
	MaxRequestsPerMin int
	AllowedOrigins    []string
}
