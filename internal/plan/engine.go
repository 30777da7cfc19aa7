package plan

import (
	"fmt"
	"slices"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/javiermolinar/weekendly/internal/activity"
	"github.com/javiermolinar/weekendly/internal/scheduler"
)

// Result reports what a mutation did. Failed lookups are not errors: the
// plan is left unchanged and the result says why.
type Result int

const (
	// ResultApplied means the plan changed.
	ResultApplied Result = iota
	// ResultNotFound means an id did not match anything.
	ResultNotFound
	// ResultNoPlan means there was no plan to operate on.
	ResultNoPlan
	// ResultUnchanged means the request was valid but had nothing to do.
	ResultUnchanged
	// ResultRejected means the input was invalid (bad day, time or amount).
	ResultRejected
)

// String returns the result name.
func (r Result) String() string {
	switch r {
	case ResultApplied:
		return "applied"
	case ResultNotFound:
		return "not found"
	case ResultNoPlan:
		return "no plan"
	case ResultUnchanged:
		return "unchanged"
	case ResultRejected:
		return "rejected"
	default:
		return fmt.Sprintf("result(%d)", int(r))
	}
}

// Changed reports whether the plan was modified.
func (r Result) Changed() bool {
	return r == ResultApplied
}

// Outcome is the result of a mutation together with the entry it touched.
type Outcome struct {
	Result Result
	Entry  activity.ScheduledActivity
	// Slot is set when the start time was resolved by the scheduler.
	Slot *scheduler.Slot
}

// Engine applies schedule mutations to caller-owned plans.
// It is not safe for concurrent use on the same plan.
type Engine struct {
	scheduler *scheduler.Scheduler
	ids       IDGenerator
	now       func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithScheduler sets the slot finder.
func WithScheduler(s *scheduler.Scheduler) Option {
	return func(e *Engine) { e.scheduler = s }
}

// WithIDGenerator sets the identifier source.
func WithIDGenerator(g IDGenerator) Option {
	return func(e *Engine) { e.ids = g }
}

// WithClock sets the time source for timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine creates an Engine with the default scheduler, UUID ids and the
// wall clock unless overridden.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		scheduler: scheduler.Default(),
		ids:       UUIDGenerator{},
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Scheduler returns the engine's slot finder.
func (e *Engine) Scheduler() *scheduler.Scheduler {
	return e.scheduler
}

// NewPlan creates an empty plan. The name must be non-empty and the budget
// positive.
func (e *Engine) NewPlan(name, theme string, totalBudget activity.Money) (*Plan, error) {
	now := e.now()
	p := &Plan{
		ID:           e.ids.PlanID(),
		Name:         strings.TrimSpace(name),
		Theme:        theme,
		Saturday:     []activity.ScheduledActivity{},
		Sunday:       []activity.ScheduledActivity{},
		TotalBudget:  totalBudget,
		BudgetAlerts: true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{"plan": p.ID, "budget": totalBudget}).Debug("created plan")
	return p, nil
}

// Add places a copy of a on day. An empty start resolves to the next
// available time for that day. EstimatedCost grows by the activity cost.
func (e *Engine) Add(p *Plan, a activity.Activity, day activity.Day, start string) Outcome {
	if p == nil {
		return Outcome{Result: ResultNoPlan}
	}
	entries := p.entries(day)
	if entries == nil {
		return Outcome{Result: ResultRejected}
	}

	var slot *scheduler.Slot
	if start == "" {
		s := e.scheduler.NextAvailable(*entries)
		slot = &s
		start = s.Start
	} else if err := activity.ValidateTime(start); err != nil {
		return Outcome{Result: ResultRejected}
	}

	return e.place(p, entries, a, day, start, slot)
}

// AddWithPreference places a copy of a on day in the first gap of the
// preferred time-of-day window, falling back to next available.
func (e *Engine) AddWithPreference(p *Plan, a activity.Activity, day activity.Day, pref scheduler.Preference) Outcome {
	if p == nil {
		return Outcome{Result: ResultNoPlan}
	}
	entries := p.entries(day)
	if entries == nil {
		return Outcome{Result: ResultRejected}
	}

	s := e.scheduler.FindSlot(*entries, pref, a.Duration)
	return e.place(p, entries, a, day, s.Start, &s)
}

func (e *Engine) place(p *Plan, entries *[]activity.ScheduledActivity, a activity.Activity, day activity.Day, start string, slot *scheduler.Slot) Outcome {
	entry := activity.Schedule(a, e.ids.InstanceID(), day, start)
	*entries = append(*entries, entry)
	p.EstimatedCost += a.Cost
	p.refreshActual()
	e.touch(p)

	fields := log.Fields{"plan": p.ID, "day": day, "instance": entry.InstanceID, "start": entry.StartTime}
	if slot != nil && slot.Fallback {
		fields["fallback"] = true
	}
	if slot != nil && slot.Clamped {
		fields["clamped"] = true
	}
	log.WithFields(fields).Debugf("scheduled %s", a.Name)

	return Outcome{Result: ResultApplied, Entry: entry, Slot: slot}
}

// Remove deletes the entry from day and subtracts its cost. Removing an id
// that is not there leaves the plan untouched.
func (e *Engine) Remove(p *Plan, instanceID string, day activity.Day) Outcome {
	if p == nil {
		return Outcome{Result: ResultNoPlan}
	}
	entries := p.entries(day)
	if entries == nil {
		return Outcome{Result: ResultRejected}
	}

	i := indexOf(*entries, instanceID)
	if i < 0 {
		log.Warnf("activity %s not found on %s, nothing removed", instanceID, day)
		return Outcome{Result: ResultNotFound}
	}

	removed := (*entries)[i]
	*entries = slices.Delete(*entries, i, i+1)
	p.EstimatedCost -= removed.Cost
	p.refreshActual()
	e.touch(p)

	log.WithFields(log.Fields{"plan": p.ID, "day": day, "instance": instanceID}).Debug("removed activity")
	return Outcome{Result: ResultApplied, Entry: removed}
}

// Move relocates an entry from one day to the other, keeping its instance
// id and cost. An empty newTime resolves to the next available time on the
// destination day. Moving within the same day is a no-op; use Reorder.
func (e *Engine) Move(p *Plan, instanceID string, from, to activity.Day, newTime string) Outcome {
	if p == nil {
		return Outcome{Result: ResultNoPlan}
	}
	src, dst := p.entries(from), p.entries(to)
	if src == nil || dst == nil {
		return Outcome{Result: ResultRejected}
	}
	if newTime != "" {
		if err := activity.ValidateTime(newTime); err != nil {
			return Outcome{Result: ResultRejected}
		}
	}

	i := indexOf(*src, instanceID)
	if i < 0 {
		log.Warnf("activity %s not found on %s, nothing moved", instanceID, from)
		return Outcome{Result: ResultNotFound}
	}
	if from == to {
		return Outcome{Result: ResultUnchanged, Entry: (*src)[i]}
	}

	var slot *scheduler.Slot
	if newTime == "" {
		s := e.scheduler.NextAvailable(*dst)
		slot = &s
		newTime = s.Start
	}

	moved := (*src)[i]
	*src = slices.Delete(*src, i, i+1)
	moved.Day = to
	moved.Retime(newTime)
	*dst = append(*dst, moved)
	e.touch(p)

	log.WithFields(log.Fields{"plan": p.ID, "from": from, "to": to, "instance": instanceID, "start": newTime}).Debug("moved activity")
	return Outcome{Result: ResultApplied, Entry: moved, Slot: slot}
}

// Reorder replaces the day's list with ordered. The caller lays out start
// times beforehand (see scheduler.Sequence); end times are derived again
// from each start. ordered must hold exactly the day's current instance
// ids; cost fields are kept from the stored entries.
func (e *Engine) Reorder(p *Plan, day activity.Day, ordered []activity.ScheduledActivity) Outcome {
	if p == nil {
		return Outcome{Result: ResultNoPlan}
	}
	entries := p.entries(day)
	if entries == nil {
		return Outcome{Result: ResultRejected}
	}
	if len(ordered) != len(*entries) {
		log.Warnf("reorder of %s has %d entries, plan has %d", day, len(ordered), len(*entries))
		return Outcome{Result: ResultNotFound}
	}

	seen := make(map[string]bool, len(ordered))
	result := make([]activity.ScheduledActivity, 0, len(ordered))
	for _, o := range ordered {
		i := indexOf(*entries, o.InstanceID)
		if i < 0 || seen[o.InstanceID] {
			log.Warnf("reorder of %s references unknown or repeated activity %s", day, o.InstanceID)
			return Outcome{Result: ResultNotFound}
		}
		if err := activity.ValidateTime(o.StartTime); err != nil {
			return Outcome{Result: ResultRejected}
		}
		seen[o.InstanceID] = true

		stored := (*entries)[i]
		stored.Retime(o.StartTime)
		result = append(result, stored)
	}

	*entries = result
	e.touch(p)

	log.WithFields(log.Fields{"plan": p.ID, "day": day, "count": len(result)}).Debug("reordered day")
	return Outcome{Result: ResultApplied}
}

// UpdateActualCost records what an entry really cost and refolds the plan's
// actual cost over both days.
func (e *Engine) UpdateActualCost(p *Plan, instanceID string, day activity.Day, actual activity.Money) Outcome {
	if p == nil {
		return Outcome{Result: ResultNoPlan}
	}
	entries := p.entries(day)
	if entries == nil || actual < 0 {
		return Outcome{Result: ResultRejected}
	}

	i := indexOf(*entries, instanceID)
	if i < 0 {
		log.Warnf("activity %s not found on %s, cost not updated", instanceID, day)
		return Outcome{Result: ResultNotFound}
	}

	v := actual
	(*entries)[i].ActualCost = &v
	p.refreshActual()
	e.touch(p)

	return Outcome{Result: ResultApplied, Entry: (*entries)[i]}
}

// SetBudget replaces the total budget. It must stay positive.
func (e *Engine) SetBudget(p *Plan, total activity.Money) Outcome {
	if p == nil {
		return Outcome{Result: ResultNoPlan}
	}
	if total <= 0 {
		return Outcome{Result: ResultRejected}
	}
	p.TotalBudget = total
	e.touch(p)
	return Outcome{Result: ResultApplied}
}

// SetBudgetAlerts toggles budget warnings for the plan.
func (e *Engine) SetBudgetAlerts(p *Plan, enabled bool) Outcome {
	if p == nil {
		return Outcome{Result: ResultNoPlan}
	}
	if p.BudgetAlerts == enabled {
		return Outcome{Result: ResultUnchanged}
	}
	p.BudgetAlerts = enabled
	e.touch(p)
	return Outcome{Result: ResultApplied}
}

func (e *Engine) touch(p *Plan) {
	p.UpdatedAt = e.now()
}
