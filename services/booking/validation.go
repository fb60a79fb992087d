package booking

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/Present111/Hotel-Booking/models"
	"github.com/Present111/Hotel-Booking/utils"
)

var isoLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseISODate accepts ISO-8601 dates and date-times. Zone-less values are UTC.
func parseISODate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// stay is the validated, parsed part of a booking request shared by both creation paths.
type stay struct {
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	AdultCount      int
	ChildCount      int
	CheckIn         time.Time
	CheckOut        time.Time
	TotalCost       float64
	SpecialRequests string
	// DateRangeInvalid is set when both dates parse but checkOut is not after checkIn.
	DateRangeInvalid bool
}

type stayInput struct {
	FirstName, LastName, Email, Phone string
	AdultCount, ChildCount            int
	CheckIn, CheckOut                 string
	TotalCost                         float64
	SpecialRequests                   string
}

type fieldErrors []utils.FieldError

func (f *fieldErrors) add(field, format string, args ...interface{}) {
	*f = append(*f, utils.FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

// validateStay checks guest, occupancy, dates and cost. A reversed or empty
// date range is reported on checkOut.
func validateStay(in stayInput, errs *fieldErrors) stay {
	out := stay{
		FirstName:       strings.TrimSpace(in.FirstName),
		LastName:        strings.TrimSpace(in.LastName),
		Email:           strings.TrimSpace(in.Email),
		Phone:           strings.TrimSpace(in.Phone),
		AdultCount:      in.AdultCount,
		ChildCount:      in.ChildCount,
		TotalCost:       in.TotalCost,
		SpecialRequests: strings.TrimSpace(in.SpecialRequests),
	}

	if out.FirstName == "" {
		errs.add("firstName", "First name is required")
	}
	if out.LastName == "" {
		errs.add("lastName", "Last name is required")
	}
	if out.Email == "" {
		errs.add("email", "Email is required")
	} else if _, err := mail.ParseAddress(out.Email); err != nil {
		errs.add("email", "Email is invalid")
	}
	if out.AdultCount < 1 {
		errs.add("adultCount", "Adult count must be at least 1")
	}
	if out.ChildCount < 0 {
		errs.add("childCount", "Child count must be 0 or more")
	}
	if out.TotalCost < 0 {
		errs.add("totalCost", "Total cost must be 0 or more")
	}

	checkIn, okIn := parseISODate(in.CheckIn)
	if !okIn {
		errs.add("checkIn", "Check-in date must be an ISO date")
	}
	checkOut, okOut := parseISODate(in.CheckOut)
	if !okOut {
		errs.add("checkOut", "Check-out date must be an ISO date")
	}
	if okIn && okOut && !checkOut.After(checkIn) {
		out.DateRangeInvalid = true
		errs.add("checkOut", "Check-out date must be after check-in date")
	}
	out.CheckIn, out.CheckOut = checkIn, checkOut
	return out
}

func (st stay) booking(hotelID, userID string, now time.Time) *models.Booking {
	return &models.Booking{
		HotelID:         hotelID,
		UserID:          userID,
		FirstName:       st.FirstName,
		LastName:        st.LastName,
		Email:           st.Email,
		Phone:           st.Phone,
		AdultCount:      st.AdultCount,
		ChildCount:      st.ChildCount,
		CheckIn:         st.CheckIn,
		CheckOut:        st.CheckOut,
		TotalCost:       st.TotalCost,
		SpecialRequests: st.SpecialRequests,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func statusList() string {
	names := make([]string, len(models.BookingStatuses))
	for i, s := range models.BookingStatuses {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

func paymentStatusList() string {
	names := make([]string, len(models.PaymentStatuses))
	for i, s := range models.PaymentStatuses {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

func fieldError(field, message string) utils.FieldError {
	return utils.FieldError{Field: field, Message: message}
}

func validationMessage(st stay) string {
	if st.DateRangeInvalid {
		return "invalid date range"
	}
	return "invalid booking request"
}
