package util

import (
	"time"
)

const dayStampLayout = "2006-01-02"

// DayClock answers "what calendar day is it" in the one canonical
// timezone. Cache freshness, streak math and the daily-game window all
// go through the same instance so they can never disagree about what
// "today" means.
type DayClock struct {
	loc *time.Location
	now func() time.Time
}

func NewDayClock(loc *time.Location) *DayClock {
	return &DayClock{
		loc: loc,
		now: time.Now,
	}
}

// NewDayClockAt returns a clock with an overridden time source.
func NewDayClockAt(loc *time.Location, now func() time.Time) *DayClock {
	return &DayClock{
		loc: loc,
		now: now,
	}
}

func (s *DayClock) Now() time.Time {
	return s.now().In(s.loc)
}

// TodayStamp returns the current calendar day as YYYY-MM-DD.
func (s *DayClock) TodayStamp() string {
	return s.Now().Format(dayStampLayout)
}

// DateOnly truncates an instant to its calendar day in the canonical
// timezone.
func (s *DayClock) DateOnly(t time.Time) string {
	return t.In(s.loc).Format(dayStampLayout)
}

// SecondsUntilMidnight returns whole seconds from now until the next
// local midnight. Always > 0 and at most 86400. Used as the physical
// cache TTL so entries written at any hour expire on day rollover
// instead of drifting a fixed 24h.
func (s *DayClock) SecondsUntilMidnight() int {
	now := s.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, s.loc)
	secs := int(midnight.Sub(now) / time.Second)
	if secs < 1 {
		secs = 1
	}
	return secs
}

// IsFresh reports whether a cached day-stamp still matches today.
func (s *DayClock) IsFresh(cacheDay string) bool {
	return cacheDay == s.TodayStamp()
}

// DayRange returns the inclusive start and end instants of a calendar
// day in the canonical timezone.
func (s *DayClock) DayRange(stamp string) (time.Time, time.Time, error) {
	day, err := time.ParseInLocation(dayStampLayout, stamp, s.loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start := day
	end := day.AddDate(0, 0, 1).Add(-time.Millisecond)
	return start, end, nil
}

// PreviousDay returns the day-stamp of the calendar day before the
// given one.
func PreviousDay(stamp string) (string, error) {
	day, err := time.Parse(dayStampLayout, stamp)
	if err != nil {
		return "", err
	}
	return day.AddDate(0, 0, -1).Format(dayStampLayout), nil
}
