// utils/timeutil.go
package utils

import (
	"os"
	"sync"
	"time"
)

// Layout the post service uses for startDate/endDate (yyyy-MM-dd).
const TripDateLayout = "2006-01-02"

var (
	appLocOnce sync.Once
	appLoc     *time.Location
)

// AppLocation returns the timezone every date computation runs in.
// Read from APP_TIMEZONE (default Asia/Kolkata, IST +05:30); resolved
// lazily so godotenv has a chance to load first. The process-default
// zone is never consulted.
func AppLocation() *time.Location {
	appLocOnce.Do(func() {
		name := os.Getenv("APP_TIMEZONE")
		if name == "" {
			name = "Asia/Kolkata"
		}
		if loc, err := time.LoadLocation(name); err == nil {
			appLoc = loc
			return
		}
		appLoc = time.FixedZone("IST", 5*3600+30*60)
	})
	return appLoc
}

// ParseTripDate parses a stored yyyy-MM-dd date at midnight in loc.
func ParseTripDate(value string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(TripDateLayout, value, loc)
}

// StartOfDay truncates t to midnight in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	tl := t.In(loc)
	return time.Date(tl.Year(), tl.Month(), tl.Day(), 0, 0, 0, 0, loc)
}

// WithinReminderWindow reports whether startOfTrip (a midnight instant)
// lies in [now, now+24h]. Both bounds are inclusive; a trip that already
// started never re-qualifies.
func WithinReminderWindow(startOfTrip, now time.Time) bool {
	d := startOfTrip.Sub(now)
	return d >= 0 && d <= 24*time.Hour
}
