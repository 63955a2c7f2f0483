// Package calendar provides the month arithmetic behind the day grid:
// Gregorian days-in-month, the Sunday-first weekday offset of day 1,
// and month navigation with year wrapping. It is pure derivation and
// holds no project state.
package calendar

import (
	"fmt"
	"time"

	"github.com/julianstephens/summon/internal/models"
)

const DateFormat = "2006-01-02"

var WeekdayNames = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Month is a calendar month reference (year + month, no day).
type Month struct {
	Year  int
	Month time.Month
}

func CurrentMonth() Month {
	now := time.Now()
	return Month{Year: now.Year(), Month: now.Month()}
}

// MonthOf returns the month containing t.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// Prev shifts the reference one month back, wrapping January into
// December of the prior year.
func (m Month) Prev() Month {
	t := time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.Local).AddDate(0, -1, 0)
	return Month{Year: t.Year(), Month: t.Month()}
}

// Next shifts the reference one month forward, wrapping December into
// January of the following year.
func (m Month) Next() Month {
	t := time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.Local).AddDate(0, 1, 0)
	return Month{Year: t.Year(), Month: t.Month()}
}

// Days returns the number of days in the month. Day zero of the next
// month is the last day of this one, which keeps leap years right.
func (m Month) Days() int {
	return time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.Local).Day()
}

// FirstWeekday returns the Sunday-first column (0-6) of day 1, which
// is also the number of leading blank cells in the grid.
func (m Month) FirstWeekday() int {
	return int(time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.Local).Weekday())
}

// Label formats the month header, e.g. "March 2024".
func (m Month) Label() string {
	return fmt.Sprintf("%s %d", m.Month.String(), m.Year)
}

// DateOf returns the normalized date string for a day of this month.
func (m Month) DateOf(day int) string {
	return time.Date(m.Year, m.Month, day, 0, 0, 0, 0, time.Local).Format(DateFormat)
}

// Normalize drops the time-of-day, keeping the local calendar date,
// so two toggles on the same day in different representations hit the
// same key.
func Normalize(t time.Time) string {
	return t.Format(DateFormat)
}

// ParseDate validates a YYYY-MM-DD string and returns it normalized.
func ParseDate(s string) (string, error) {
	t, err := time.ParseInLocation(DateFormat, s, time.Local)
	if err != nil {
		return "", fmt.Errorf("invalid date %q, want YYYY-MM-DD: %w", s, err)
	}
	return Normalize(t), nil
}

// Cell is one slot of the 7-wide month grid. Day 0 marks a leading
// blank before day 1's weekday column.
type Cell struct {
	Day    int
	Status models.DayStatus
}

// Cells builds the grid for a project: FirstWeekday blanks, then one
// cell per day with its derived status.
func Cells(m Month, p models.Project) []Cell {
	cells := make([]Cell, 0, m.FirstWeekday()+m.Days())
	for i := 0; i < m.FirstWeekday(); i++ {
		cells = append(cells, Cell{})
	}
	for day := 1; day <= m.Days(); day++ {
		cells = append(cells, Cell{Day: day, Status: p.Status(m.DateOf(day))})
	}
	return cells
}
