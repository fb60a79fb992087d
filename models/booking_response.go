package models

// BookingWithHotel is a booking with its hotel summary joined in.
type BookingWithHotel struct {
	Booking `bson:",inline"`
	Hotel   *HotelSummary `bson:"hotel,omitempty" json:"hotel,omitempty"`
}

// BookingWithUser is a booking with the guest account summary joined in.
type BookingWithUser struct {
	Booking `bson:",inline"`
	User    *UserSummary `bson:"user,omitempty" json:"user,omitempty"`
}

// HotelWithBookings is one entry of a user's "my bookings" listing.
type HotelWithBookings struct {
	Hotel    `bson:",inline"`
	Bookings []Booking `bson:"bookings" json:"bookings"`
}
