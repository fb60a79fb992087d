package models

// Hotel is the catalog entry a booking is made against. Only the engine's
// counters are written from this service; everything else is read-only here.
type Hotel struct {
	ID            string   `bson:"id" json:"id"`
	UserID        string   `bson:"userId" json:"userId"`
	Name          string   `bson:"name" json:"name"`
	City          string   `bson:"city" json:"city"`
	Country       string   `bson:"country" json:"country"`
	PricePerNight float64  `bson:"pricePerNight" json:"pricePerNight"`
	ImageURLs     []string `bson:"imageUrls,omitempty" json:"imageUrls,omitempty"`
	TotalBookings int      `bson:"totalBookings" json:"totalBookings"`
	TotalRevenue  float64  `bson:"totalRevenue" json:"totalRevenue"`
}

// HotelSummary is the projection joined into booking listings.
type HotelSummary struct {
	ID        string   `bson:"id" json:"id"`
	Name      string   `bson:"name" json:"name"`
	City      string   `bson:"city" json:"city"`
	Country   string   `bson:"country" json:"country"`
	ImageURLs []string `bson:"imageUrls,omitempty" json:"imageUrls,omitempty"`
}
