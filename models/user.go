package models

// User is a platform account. Identity fields are owned by the auth service;
// this service only reads them and maintains the booking counters.
type User struct {
	ID            string  `bson:"id" json:"id"`
	FirstName     string  `bson:"firstName" json:"firstName"`
	LastName      string  `bson:"lastName" json:"lastName"`
	Email         string  `bson:"email" json:"email"`
	Role          Role    `bson:"role" json:"role"`
	TotalBookings int     `bson:"totalBookings" json:"totalBookings"`
	TotalSpent    float64 `bson:"totalSpent" json:"totalSpent"`
}

// UserSummary is the projection joined into hotel booking listings.
type UserSummary struct {
	ID        string `bson:"id" json:"id"`
	FirstName string `bson:"firstName" json:"firstName"`
	LastName  string `bson:"lastName" json:"lastName"`
	Email     string `bson:"email" json:"email"`
}
