package model

import "fmt"

type Counts struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Cancelled int `json:"cancelled"`
}

// Tally counts bookings per status. The first booking with a status outside the
// known set aborts the tally with ErrInvalidStatus naming that booking.
func Tally(bookings []Booking) (Counts, error) {
	counts := Counts{Total: len(bookings)}

	for _, booking := range bookings {
		switch booking.Status {
		case StatusPending:
			counts.Pending++
		case StatusConfirmed:
			counts.Confirmed++
		case StatusCancelled:
			counts.Cancelled++
		default:
			return Counts{}, fmt.Errorf("booking %s: %w: %q", booking.ID, ErrInvalidStatus, booking.Status)
		}
	}

	return counts, nil
}
