package cli

import (
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/julianstephens/summon/internal/backup"
	"github.com/julianstephens/summon/internal/calendar"
	"github.com/julianstephens/summon/internal/storage"
	"github.com/julianstephens/summon/internal/store"
)

type Context struct {
	Store    *store.ProjectStore
	Provider storage.Provider
}

// PerformAutomaticBackup takes a best-effort backup of the storage
// file. Failures are logged, never fatal; a fresh install has nothing
// to back up yet.
func (ctx *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(ctx.Provider.ConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		lgr.Printf("[DEBUG] automatic backup skipped: %v", err)
	}
}

// parseDay accepts "today" or a YYYY-MM-DD date.
func parseDay(s string) (time.Time, error) {
	if s == "today" {
		return time.Now(), nil
	}
	t, err := time.ParseInLocation(calendar.DateFormat, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format, use YYYY-MM-DD or 'today': %w", err)
	}
	return t, nil
}

// parseMonth accepts "" (current month) or YYYY-MM.
func parseMonth(s string) (calendar.Month, error) {
	if s == "" {
		return calendar.CurrentMonth(), nil
	}
	t, err := time.ParseInLocation("2006-01", s, time.Local)
	if err != nil {
		return calendar.Month{}, fmt.Errorf("invalid month format, use YYYY-MM: %w", err)
	}
	return calendar.MonthOf(t), nil
}
