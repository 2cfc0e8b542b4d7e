// Package scheduler runs the shell's background loops.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/sulemanahsancui/quran-pak/internal/logger"
	"github.com/sulemanahsancui/quran-pak/internal/notify"
	"github.com/sulemanahsancui/quran-pak/internal/prayerapi"
)

// Announcement is the payload of a prayer-time event.
type Announcement struct {
	PrayerName string `json:"prayerName"`
	Time       string `json:"time"` // "HH:MM" local
}

// PrayerWatcher periodically checks today's prayer timings for the
// configured location and publishes a prayer-time event shortly before each
// prayer. One announcement per prayer per day; UI surfaces decide how to
// present it.
type PrayerWatcher struct {
	prayer   *prayerapi.Client
	notifier *notify.Notifier
	logger   logger.Logger

	latitude  float64
	longitude float64
	method    int
	interval  time.Duration
	lead      time.Duration

	timings    *prayerapi.Timings
	fetchedDay string
	announced  map[string]bool

	now           func() time.Time
	stopCh        chan struct{}
	manualTrigger chan struct{}
}

func NewPrayerWatcher(
	prayer *prayerapi.Client,
	notifier *notify.Notifier,
	log logger.Logger,
	latitude, longitude float64,
	method int,
	interval, lead time.Duration,
	manualTrigger chan struct{},
) *PrayerWatcher {
	return &PrayerWatcher{
		prayer:        prayer,
		notifier:      notifier,
		logger:        log,
		latitude:      latitude,
		longitude:     longitude,
		method:        method,
		interval:      interval,
		lead:          lead,
		announced:     make(map[string]bool),
		now:           time.Now,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start begins the periodic check loop. An unreachable prayer API is not
// fatal; the check is retried on the next tick.
func (pw *PrayerWatcher) Start(ctx context.Context) {
	if err := pw.check(ctx); err != nil {
		pw.logger.Warn("initial prayer timings check failed", logger.Error(err))
	}

	ticker := time.NewTicker(pw.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := pw.check(ctx); err != nil {
					pw.logger.Warn("prayer timings check failed", logger.Error(err))
				}
			case <-pw.manualTrigger:
				pw.logger.Info("manual prayer timings refresh triggered")
				pw.fetchedDay = ""
				if err := pw.check(ctx); err != nil {
					pw.logger.Warn("prayer timings refresh failed", logger.Error(err))
				}
			case <-pw.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop stops the watcher.
func (pw *PrayerWatcher) Stop() {
	close(pw.stopCh)
}

// check refreshes today's timings when the day rolled over and announces any
// prayer whose time falls within the lead window.
func (pw *PrayerWatcher) check(ctx context.Context) error {
	now := pw.now()
	day := now.Format("2006-01-02")

	if pw.fetchedDay != day {
		timings, err := pw.prayer.GetTimings(ctx, now, pw.latitude, pw.longitude, pw.method)
		if err != nil {
			return fmt.Errorf("failed to fetch prayer timings: %w", err)
		}
		pw.timings = timings
		pw.fetchedDay = day
		pw.announced = make(map[string]bool)
		pw.logger.Info("prayer timings refreshed",
			logger.String("day", day),
			logger.String("fajr", timings.Fajr),
			logger.String("isha", timings.Isha))
	}

	for _, p := range pw.timings.Prayers() {
		key := day + "/" + p.Name
		if pw.announced[key] {
			continue
		}
		at, err := prayerClock(now, p.Time)
		if err != nil {
			pw.logger.Warn("unparseable prayer time",
				logger.String("prayer", p.Name),
				logger.String("time", p.Time))
			pw.announced[key] = true
			continue
		}
		if !now.Before(at.Add(-pw.lead)) && now.Before(at.Add(time.Minute)) {
			pw.announced[key] = true
			pw.logger.Info("announcing prayer",
				logger.String("prayer", p.Name),
				logger.String("time", p.Time))
			pw.notifier.Publish(notify.PrayerTime, Announcement{
				PrayerName: p.Name,
				Time:       p.Time,
			})
		}
	}
	return nil
}

// prayerClock anchors an "HH:MM" wall-clock time to the given day. Some API
// methods append a timezone suffix like "05:12 (PKT)"; anything after the
// minutes is ignored.
func prayerClock(day time.Time, hhmm string) (time.Time, error) {
	if len(hhmm) > 5 {
		hhmm = hhmm[:5]
	}
	t, err := time.ParseInLocation("15:04", hhmm, day.Location())
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(),
		t.Hour(), t.Minute(), 0, 0, day.Location()), nil
}
