package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"
)

// Daily fires a callback once a day at a fixed wall-clock time in an
// explicit location. Each firing is independent; a run that overlaps a
// manually triggered pass is allowed and must be, since passes share no
// state.
type Daily struct {
	hour   int
	minute int
	loc    *time.Location
	fn     func(context.Context)

	cancel context.CancelFunc
	done   chan struct{}
}

func NewDaily(hour, minute int, loc *time.Location, fn func(context.Context)) *Daily {
	return &Daily{
		hour:   hour,
		minute: minute,
		loc:    loc,
		fn:     fn,
	}
}

// ParseScheduleTime parses a "HH:MM" wall-clock time.
func ParseScheduleTime(value string) (hour, minute int, err error) {
	if _, err = fmt.Sscanf(value, "%d:%d", &hour, &minute); err != nil {
		return 0, 0, fmt.Errorf("invalid schedule time %q: %w", value, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid schedule time %q", value)
	}
	return hour, minute, nil
}

// NextRun returns the first instant at hour:minute in loc that is
// strictly after now.
func NextRun(now time.Time, hour, minute int, loc *time.Location) time.Time {
	nl := now.In(loc)
	next := time.Date(nl.Year(), nl.Month(), nl.Day(), hour, minute, 0, 0, loc)
	if !next.After(nl) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

func (d *Daily) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel
	d.done = make(chan struct{})

	go func() {
		defer close(d.done)
		for {
			next := NextRun(time.Now(), d.hour, d.minute, d.loc)
			log.Printf("Next scheduled notification pass at %s", next.Format(time.RFC3339))

			timer := time.NewTimer(time.Until(next))
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
				d.fn(ctx)
			}
		}
	}()
}

func (d *Daily) Stop() {
	if d.cancel == nil {
		return
	}
	d.cancel()
	<-d.done
	log.Println("Daily scheduler stopped")
}
