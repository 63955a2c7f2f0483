package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

type BillingType string

const (
	BillingPerDay     BillingType = "per_day"
	BillingPerWeek    BillingType = "per_week"
	BillingPerProject BillingType = "per_project"
)

func ParseBillingType(s string) (BillingType, error) {
	switch BillingType(strings.TrimSpace(s)) {
	case BillingPerDay:
		return BillingPerDay, nil
	case BillingPerWeek:
		return BillingPerWeek, nil
	case BillingPerProject:
		return BillingPerProject, nil
	default:
		return "", fmt.Errorf("invalid billing type: %q (want per_day|per_week|per_project)", s)
	}
}

func (b BillingType) String() string {
	switch b {
	case BillingPerDay:
		return "per day"
	case BillingPerWeek:
		return "per week"
	case BillingPerProject:
		return "per project"
	default:
		return string(b)
	}
}

// Rate is the billing rate as entered by the user. Older exports may
// hold it as a JSON number, so it accepts both forms on decode.
type Rate string

func (r *Rate) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*r = Rate(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("rate must be a string or number: %w", err)
	}
	*r = Rate(n.String())
	return nil
}

// DateMark records one calendar date's booking state for a project.
// Dates are unique within a project.
type DateMark struct {
	Date string `json:"date"` // YYYY-MM-DD format
	Paid bool   `json:"paid"`
}

type Project struct {
	ID    int64       `json:"id"`
	Name  string      `json:"name"`
	Type  BillingType `json:"type"`
	Rate  Rate        `json:"rate"`
	Dates []DateMark  `json:"dates"`
}

// Status derives the day status for a normalized YYYY-MM-DD date.
func (p Project) Status(date string) DayStatus {
	for _, d := range p.Dates {
		if d.Date == date {
			if d.Paid {
				return StatusPaid
			}
			return StatusBooked
		}
	}
	return StatusNotBooked
}

func (p Project) TotalDays() int {
	return len(p.Dates)
}

func (p Project) PaidDays() int {
	n := 0
	for _, d := range p.Dates {
		if d.Paid {
			n++
		}
	}
	return n
}
