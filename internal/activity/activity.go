// Package activity defines the core domain types for weekendly.
package activity

import (
	"errors"
	"fmt"
	"strings"
)

// Validation errors.
var (
	ErrEmptyID            = errors.New("activity id cannot be empty")
	ErrEmptyName          = errors.New("activity name cannot be empty")
	ErrInvalidCategory    = errors.New("category must be one of food, outdoor, indoor, social, wellness")
	ErrInvalidMood        = errors.New("mood must be one of happy, relaxed, energetic, peaceful")
	ErrInvalidCostType    = errors.New("cost type must be one of free, low, medium, high")
	ErrInvalidVariability = errors.New("cost variability must be fixed or variable")
	ErrInvalidDuration    = errors.New("duration must be greater than zero")
	ErrNegativeCost       = errors.New("cost cannot be negative")
	ErrInvalidDay         = errors.New("day must be 'saturday' or 'sunday'")
)

// Category groups activities by kind.
type Category string

const (
	CategoryFood     Category = "food"
	CategoryOutdoor  Category = "outdoor"
	CategoryIndoor   Category = "indoor"
	CategorySocial   Category = "social"
	CategoryWellness Category = "wellness"
)

// Categories lists every category in display order.
func Categories() []Category {
	return []Category{CategoryFood, CategoryOutdoor, CategoryIndoor, CategorySocial, CategoryWellness}
}

// Valid returns true if the category is a known value.
func (c Category) Valid() bool {
	switch c {
	case CategoryFood, CategoryOutdoor, CategoryIndoor, CategorySocial, CategoryWellness:
		return true
	default:
		return false
	}
}

// Mood is the feeling an activity is meant to evoke.
type Mood string

const (
	MoodHappy     Mood = "happy"
	MoodRelaxed   Mood = "relaxed"
	MoodEnergetic Mood = "energetic"
	MoodPeaceful  Mood = "peaceful"
)

// Valid returns true if the mood is a known value.
func (m Mood) Valid() bool {
	switch m {
	case MoodHappy, MoodRelaxed, MoodEnergetic, MoodPeaceful:
		return true
	default:
		return false
	}
}

// CostType is a coarse price bracket.
type CostType string

const (
	CostFree   CostType = "free"
	CostLow    CostType = "low"
	CostMedium CostType = "medium"
	CostHigh   CostType = "high"
)

// Valid returns true if the cost type is a known value.
func (c CostType) Valid() bool {
	switch c {
	case CostFree, CostLow, CostMedium, CostHigh:
		return true
	default:
		return false
	}
}

// CostVariability tells whether the real spend may differ from the estimate.
type CostVariability string

const (
	CostFixed    CostVariability = "fixed"
	CostVariable CostVariability = "variable"
)

// Valid returns true if the variability is a known value.
func (v CostVariability) Valid() bool {
	return v == CostFixed || v == CostVariable
}

// Day is one of the two weekend days.
type Day string

const (
	Saturday Day = "saturday"
	Sunday   Day = "sunday"
)

// Days returns both weekend days in calendar order.
func Days() []Day {
	return []Day{Saturday, Sunday}
}

// Valid returns true if the day is saturday or sunday.
func (d Day) Valid() bool {
	return d == Saturday || d == Sunday
}

// Other returns the opposite weekend day.
func (d Day) Other() Day {
	if d == Saturday {
		return Sunday
	}
	return Saturday
}

// Title returns the capitalized day name.
func (d Day) Title() string {
	switch d {
	case Saturday:
		return "Saturday"
	case Sunday:
		return "Sunday"
	default:
		return string(d)
	}
}

// ParseDay parses a day name, accepting "sat" and "sun" abbreviations.
func ParseDay(s string) (Day, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "saturday", "sat":
		return Saturday, nil
	case "sunday", "sun":
		return Sunday, nil
	default:
		return "", ErrInvalidDay
	}
}

// Activity is an immutable catalog template.
type Activity struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Category        Category        `json:"category"`
	Mood            Mood            `json:"mood"`
	Duration        int             `json:"duration"` // minutes
	Cost            Money           `json:"cost"`
	CostType        CostType        `json:"costType"`
	CostVariability CostVariability `json:"costVariability"`
	Description     string          `json:"description,omitempty"`
}

// Validate checks that every field holds an allowed value.
func (a Activity) Validate() error {
	if strings.TrimSpace(a.ID) == "" {
		return ErrEmptyID
	}
	if strings.TrimSpace(a.Name) == "" {
		return ErrEmptyName
	}
	if !a.Category.Valid() {
		return fmt.Errorf("%s: %w", a.ID, ErrInvalidCategory)
	}
	if !a.Mood.Valid() {
		return fmt.Errorf("%s: %w", a.ID, ErrInvalidMood)
	}
	if a.Duration <= 0 {
		return fmt.Errorf("%s: %w", a.ID, ErrInvalidDuration)
	}
	if a.Cost < 0 {
		return fmt.Errorf("%s: %w", a.ID, ErrNegativeCost)
	}
	if !a.CostType.Valid() {
		return fmt.Errorf("%s: %w", a.ID, ErrInvalidCostType)
	}
	if !a.CostVariability.Valid() {
		return fmt.Errorf("%s: %w", a.ID, ErrInvalidVariability)
	}
	return nil
}

// ScheduledActivity is an Activity placed on a weekend day.
// InstanceID is distinct from the catalog ID so the same activity can be
// placed several times.
type ScheduledActivity struct {
	Activity
	InstanceID string `json:"instanceId"`
	Day        Day    `json:"day"`
	StartTime  string `json:"startTime"` // "HH:MM"
	EndTime    string `json:"endTime"`   // "HH:MM"
	ActualCost *Money `json:"actualCost,omitempty"`
}

// Schedule creates a ScheduledActivity for the given instance id, day and
// start time. EndTime is derived from the activity duration.
func Schedule(a Activity, instanceID string, day Day, start string) ScheduledActivity {
	return ScheduledActivity{
		Activity:   a,
		InstanceID: instanceID,
		Day:        day,
		StartTime:  start,
		EndTime:    AddDuration(start, a.Duration),
	}
}

// Retime sets a new start time and recomputes the end time.
func (s *ScheduledActivity) Retime(start string) {
	s.StartTime = start
	s.EndTime = AddDuration(start, s.Duration)
}

// SpentCost returns the actual cost when set, otherwise the estimated cost.
func (s ScheduledActivity) SpentCost() Money {
	if s.ActualCost != nil {
		return *s.ActualCost
	}
	return s.Cost
}

// OverlapsWith returns true if both entries share the same day and their
// time ranges intersect.
func (s ScheduledActivity) OverlapsWith(other ScheduledActivity) bool {
	if s.Day != other.Day {
		return false
	}
	return TimesOverlap(s.StartTime, s.EndTime, other.StartTime, other.EndTime)
}
