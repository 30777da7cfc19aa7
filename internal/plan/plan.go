// Package plan holds the weekend plan aggregate, its budget ledger and the
// engine that mutates it.
package plan

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/javiermolinar/weekendly/internal/activity"
)

// Validation errors.
var (
	ErrEmptyName     = errors.New("plan name cannot be empty")
	ErrInvalidBudget = errors.New("total budget must be greater than zero")
)

// Plan is the aggregate root for one weekend: both days, the budget and
// metadata. Saturday and Sunday are kept in insertion order; Schedule
// returns them sorted by start time.
type Plan struct {
	ID            string                       `json:"id"`
	Name          string                       `json:"name"`
	Theme         string                       `json:"theme"`
	Saturday      []activity.ScheduledActivity `json:"saturday"`
	Sunday        []activity.ScheduledActivity `json:"sunday"`
	TotalBudget   activity.Money               `json:"totalBudget"`
	EstimatedCost activity.Money               `json:"estimatedCost"`
	ActualCost    activity.Money               `json:"actualCost"`
	BudgetAlerts  bool                         `json:"budgetAlerts"`
	CreatedAt     time.Time                    `json:"createdAt"`
	UpdatedAt     time.Time                    `json:"updatedAt"`
}

// Validate checks the fields a plan must hold to be usable.
func (p *Plan) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	if p.TotalBudget <= 0 {
		return ErrInvalidBudget
	}
	return nil
}

// Schedule returns a copy of the day's entries sorted ascending by start
// time. Times are fixed-width "HH:MM" so string order is time order.
func (p *Plan) Schedule(day activity.Day) []activity.ScheduledActivity {
	entries := p.entries(day)
	if entries == nil {
		return nil
	}
	sorted := slices.Clone(*entries)
	slices.SortStableFunc(sorted, func(a, b activity.ScheduledActivity) int {
		return strings.Compare(a.StartTime, b.StartTime)
	})
	return sorted
}

// All returns every scheduled entry, Saturday first, each day sorted.
func (p *Plan) All() []activity.ScheduledActivity {
	return append(p.Schedule(activity.Saturday), p.Schedule(activity.Sunday)...)
}

// Find returns the entry with the given instance id on day.
func (p *Plan) Find(day activity.Day, instanceID string) (activity.ScheduledActivity, bool) {
	entries := p.entries(day)
	if entries == nil {
		return activity.ScheduledActivity{}, false
	}
	i := indexOf(*entries, instanceID)
	if i < 0 {
		return activity.ScheduledActivity{}, false
	}
	return (*entries)[i], true
}

// Len returns the number of entries across both days.
func (p *Plan) Len() int {
	return len(p.Saturday) + len(p.Sunday)
}

// Clone returns a deep copy of the plan.
func (p *Plan) Clone() *Plan {
	if p == nil {
		return nil
	}
	c := *p
	c.Saturday = cloneEntries(p.Saturday)
	c.Sunday = cloneEntries(p.Sunday)
	return &c
}

func (p *Plan) entries(day activity.Day) *[]activity.ScheduledActivity {
	switch day {
	case activity.Saturday:
		return &p.Saturday
	case activity.Sunday:
		return &p.Sunday
	default:
		return nil
	}
}

func indexOf(entries []activity.ScheduledActivity, instanceID string) int {
	return slices.IndexFunc(entries, func(e activity.ScheduledActivity) bool {
		return e.InstanceID == instanceID
	})
}

func cloneEntries(entries []activity.ScheduledActivity) []activity.ScheduledActivity {
	if entries == nil {
		return nil
	}
	result := make([]activity.ScheduledActivity, len(entries))
	for i, e := range entries {
		if e.ActualCost != nil {
			v := *e.ActualCost
			e.ActualCost = &v
		}
		result[i] = e
	}
	return result
}
