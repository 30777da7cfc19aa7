// Package scheduler finds start times for activities on a weekend day.
package scheduler

import (
	"errors"
	"slices"
	"strings"

	"github.com/javiermolinar/weekendly/internal/activity"
)

// Defaults used when no configuration overrides them.
const (
	DefaultDayStart      = "09:00"
	DefaultDayCap        = "22:00"
	DefaultBufferMinutes = 30
)

// ErrInvalidPreference is returned for unknown time-of-day preferences.
var ErrInvalidPreference = errors.New("time preference must be morning, afternoon, evening or auto")

// Preference is a named time-of-day window used to bias slot search.
type Preference string

const (
	PreferenceMorning   Preference = "morning"
	PreferenceAfternoon Preference = "afternoon"
	PreferenceEvening   Preference = "evening"
	PreferenceAuto      Preference = "auto"
)

// ParsePreference parses a preference name. Empty input means auto.
func ParsePreference(s string) (Preference, error) {
	switch p := Preference(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return PreferenceAuto, nil
	case PreferenceMorning, PreferenceAfternoon, PreferenceEvening, PreferenceAuto:
		return p, nil
	default:
		return "", ErrInvalidPreference
	}
}

// Window is a half-open time range [Start, End).
type Window struct {
	Start string // "HH:MM"
	End   string // "HH:MM"
}

// IsZero reports whether the window is unset.
func (w Window) IsZero() bool {
	return w.Start == "" && w.End == ""
}

// Contains reports whether t falls inside [Start, End).
func (w Window) Contains(t string) bool {
	return t >= w.Start && t < w.End
}

var windows = map[Preference]Window{
	PreferenceMorning:   {Start: "09:00", End: "12:00"},
	PreferenceAfternoon: {Start: "12:00", End: "17:00"},
	PreferenceEvening:   {Start: "17:00", End: "21:00"},
}

// WindowFor returns the window for a preference. Auto has no window.
func WindowFor(p Preference) (Window, bool) {
	w, ok := windows[p]
	return w, ok
}

// Slot is a resolved start time.
type Slot struct {
	Start string // "HH:MM"
	// Window is the searched window, zero for unconstrained lookups.
	Window Window
	// Fallback is set when nothing fit inside Window and Start came from
	// the unconstrained next-available search instead.
	Fallback bool
	// Clamped is set when the next-available time was capped at the day
	// cap. The activity may extend past the cap.
	Clamped bool
}

// Scheduler resolves start times against a day's existing bookings.
type Scheduler struct {
	dayStart string // "HH:MM", first slot of an empty day
	dayCap   string // "HH:MM", latest next-available start
	buffer   int    // minutes between consecutive activities
}

// New creates a Scheduler. Empty or non-positive arguments fall back to defaults.
func New(dayStart, dayCap string, bufferMinutes int) *Scheduler {
	if dayStart == "" {
		dayStart = DefaultDayStart
	}
	if dayCap == "" {
		dayCap = DefaultDayCap
	}
	if bufferMinutes <= 0 {
		bufferMinutes = DefaultBufferMinutes
	}
	return &Scheduler{
		dayStart: dayStart,
		dayCap:   dayCap,
		buffer:   bufferMinutes,
	}
}

// Default returns a Scheduler with a 09:00 start, 22:00 cap and 30 minute buffer.
func Default() *Scheduler {
	return New(DefaultDayStart, DefaultDayCap, DefaultBufferMinutes)
}

// DayStart returns the configured first slot of an empty day.
func (s *Scheduler) DayStart() string {
	return s.dayStart
}

// DayCap returns the configured latest next-available start.
func (s *Scheduler) DayCap() string {
	return s.dayCap
}

// Buffer returns the gap in minutes kept between activities.
func (s *Scheduler) Buffer() int {
	return s.buffer
}

// NextAvailable returns the start time following the chronologically last
// activity of the day plus the buffer. An empty day starts at the day start.
// Results at or after the day cap are clamped to the cap without checking
// that the new activity fits before it.
func (s *Scheduler) NextAvailable(day []activity.ScheduledActivity) Slot {
	if len(day) == 0 {
		return Slot{Start: s.dayStart}
	}

	sorted := sortByStart(day)
	last := sorted[len(sorted)-1]
	next := activity.ToMinutes(last.EndTime) + s.buffer

	if limit := activity.ToMinutes(s.dayCap); next >= limit {
		return Slot{Start: s.dayCap, Clamped: next > limit}
	}
	return Slot{Start: activity.ToTimeString(next)}
}

// FindSlot returns the leftmost start time inside the preference window
// with room for durationMinutes plus the buffer. Auto, and windows with no
// room, resolve through NextAvailable for the whole day.
func (s *Scheduler) FindSlot(day []activity.ScheduledActivity, pref Preference, durationMinutes int) Slot {
	window, ok := WindowFor(pref)
	if !ok {
		return s.NextAvailable(day)
	}

	if start, found := s.fitInWindow(day, window, durationMinutes); found {
		return Slot{Start: start, Window: window}
	}

	slot := s.NextAvailable(day)
	slot.Window = window
	slot.Fallback = true
	return slot
}

func (s *Scheduler) fitInWindow(day []activity.ScheduledActivity, w Window, durationMinutes int) (string, bool) {
	need := durationMinutes + s.buffer
	winStart := activity.ToMinutes(w.Start)
	winEnd := activity.ToMinutes(w.End)

	var inWindow []activity.ScheduledActivity
	for _, a := range sortByStart(day) {
		if activity.ToMinutes(a.StartTime) < winEnd && activity.ToMinutes(a.EndTime) > winStart {
			inWindow = append(inWindow, a)
		}
	}

	if len(inWindow) == 0 {
		return w.Start, true
	}

	if activity.ToMinutes(inWindow[0].StartTime)-winStart >= need {
		return w.Start, true
	}

	// A gap between two bookings starts right at the previous end; the
	// buffer is kept before the next booking.
	for i := 1; i < len(inWindow); i++ {
		prevEnd := activity.ToMinutes(inWindow[i-1].EndTime)
		if activity.ToMinutes(inWindow[i].StartTime)-prevEnd >= need {
			return activity.ToTimeString(prevEnd), true
		}
	}

	lastEnd := activity.ToMinutes(inWindow[len(inWindow)-1].EndTime)
	if winEnd-lastEnd >= need {
		return activity.ToTimeString(lastEnd + s.buffer), true
	}

	return "", false
}

// Sequence returns copies of entries re-timed in list order, starting at
// the day start with the buffer between consecutive activities. Callers use
// it to lay out a reordered day before handing it to the plan.
func (s *Scheduler) Sequence(entries []activity.ScheduledActivity) []activity.ScheduledActivity {
	result := make([]activity.ScheduledActivity, len(entries))
	current := activity.ToMinutes(s.dayStart)
	for i, e := range entries {
		e.Retime(activity.ToTimeString(current))
		result[i] = e
		current += e.Duration + s.buffer
	}
	return result
}

// CanFit returns true if an activity of durationMinutes starting at start
// ends no later than the day cap.
func (s *Scheduler) CanFit(start string, durationMinutes int) bool {
	return activity.ToMinutes(start)+durationMinutes <= activity.ToMinutes(s.dayCap)
}

// sortByStart returns a copy of day ordered by start time, then end time.
func sortByStart(day []activity.ScheduledActivity) []activity.ScheduledActivity {
	sorted := slices.Clone(day)
	slices.SortStableFunc(sorted, func(a, b activity.ScheduledActivity) int {
		if c := strings.Compare(a.StartTime, b.StartTime); c != 0 {
			return c
		}
		return strings.Compare(a.EndTime, b.EndTime)
	})
	return sorted
}
