package models

// DayStatus is the derived booking state of a single calendar day.
// It is never stored: absence of a DateMark means NotBooked, a mark
// with paid=false means Booked, paid=true means Paid.
type DayStatus int

const (
	StatusNotBooked DayStatus = iota
	StatusBooked
	StatusPaid
)

func (s DayStatus) String() string {
	switch s {
	case StatusBooked:
		return "booked"
	case StatusPaid:
		return "paid"
	default:
		return "not booked"
	}
}
