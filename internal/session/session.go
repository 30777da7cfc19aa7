// Package session owns the current plan, the saved plans and the activity
// catalog for one user, and persists every change through a Store.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/javiermolinar/weekendly/internal/activity"
	"github.com/javiermolinar/weekendly/internal/catalog"
	"github.com/javiermolinar/weekendly/internal/plan"
	"github.com/javiermolinar/weekendly/internal/scheduler"
)

// ErrActivityExists is returned when adding a catalog activity whose id is
// already taken.
var ErrActivityExists = errors.New("activity already exists")

// Store persists plans and the catalog.
type Store interface {
	plan.Repository
	catalog.Repository
}

// Session applies user intents to the current plan.
// It is not safe for concurrent use.
type Session struct {
	engine  *plan.Engine
	store   Store
	catalog []activity.Activity
	current *plan.Plan
}

// Open restores the current plan and catalog from store. When the store
// holds no catalog, fallback is used and saved.
func Open(ctx context.Context, engine *plan.Engine, store Store, fallback []activity.Activity) (*Session, error) {
	current, err := store.LoadCurrent(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading current plan: %w", err)
	}

	activities, err := store.ListActivities(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	if len(activities) == 0 && len(fallback) > 0 {
		if err := catalog.Validate(fallback); err != nil {
			return nil, err
		}
		activities = append([]activity.Activity(nil), fallback...)
		if err := store.SaveActivities(ctx, activities); err != nil {
			return nil, fmt.Errorf("saving catalog: %w", err)
		}
	}

	return &Session{
		engine:  engine,
		store:   store,
		catalog: activities,
		current: current,
	}, nil
}

// Engine returns the schedule engine.
func (s *Session) Engine() *plan.Engine {
	return s.engine
}

// Current returns a copy of the current plan, or nil if there is none.
func (s *Session) Current() *plan.Plan {
	if s.current == nil {
		return nil
	}
	return s.current.Clone()
}

// HasPlan reports whether a current plan exists.
func (s *Session) HasPlan() bool {
	return s.current != nil
}

// Catalog returns the activities matching f.
func (s *Session) Catalog(f activity.Filter) []activity.Activity {
	return f.Apply(s.catalog)
}

// Activity returns the catalog activity with the given id.
func (s *Session) Activity(id string) (activity.Activity, bool) {
	return catalog.Find(s.catalog, id)
}

// SetActivities replaces the whole catalog.
func (s *Session) SetActivities(ctx context.Context, activities []activity.Activity) error {
	if err := catalog.Validate(activities); err != nil {
		return err
	}
	next := append([]activity.Activity(nil), activities...)
	if err := s.store.SaveActivities(ctx, next); err != nil {
		return fmt.Errorf("saving catalog: %w", err)
	}
	s.catalog = next
	return nil
}

// AddActivity appends an activity to the catalog.
func (s *Session) AddActivity(ctx context.Context, a activity.Activity) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if _, ok := s.Activity(a.ID); ok {
		return fmt.Errorf("%w: %s", ErrActivityExists, a.ID)
	}
	next := append(append([]activity.Activity(nil), s.catalog...), a)
	if err := s.store.SaveActivities(ctx, next); err != nil {
		return fmt.Errorf("saving catalog: %w", err)
	}
	s.catalog = next
	return nil
}

// UpdateActivity replaces the catalog entry with the same id. Scheduled
// copies keep the values they were placed with.
func (s *Session) UpdateActivity(ctx context.Context, a activity.Activity) (plan.Result, error) {
	if err := a.Validate(); err != nil {
		return plan.ResultRejected, err
	}
	i := -1
	for j := range s.catalog {
		if s.catalog[j].ID == a.ID {
			i = j
			break
		}
	}
	if i < 0 {
		log.Warnf("activity %s not in catalog, nothing updated", a.ID)
		return plan.ResultNotFound, nil
	}
	next := append([]activity.Activity(nil), s.catalog...)
	next[i] = a
	if err := s.store.SaveActivities(ctx, next); err != nil {
		return plan.ResultApplied, fmt.Errorf("saving catalog: %w", err)
	}
	s.catalog = next
	return plan.ResultApplied, nil
}

// NewPlan creates a plan and makes it current.
func (s *Session) NewPlan(ctx context.Context, name, theme string, totalBudget activity.Money) (*plan.Plan, error) {
	p, err := s.engine.NewPlan(name, theme, totalBudget)
	if err != nil {
		return nil, err
	}
	if err := s.store.SaveCurrent(ctx, p); err != nil {
		return nil, fmt.Errorf("saving current plan: %w", err)
	}
	s.current = p
	return p.Clone(), nil
}

// Schedule places the catalog activity on day at start. An empty start
// resolves to the next available time.
func (s *Session) Schedule(ctx context.Context, activityID string, day activity.Day, start string) (plan.Outcome, error) {
	a, ok := s.lookup(activityID)
	if !ok {
		return s.noActivity(), nil
	}
	return s.apply(ctx, func(p *plan.Plan) plan.Outcome {
		return s.engine.Add(p, a, day, start)
	})
}

// ScheduleWithPreference places the catalog activity on day in the
// preferred window.
func (s *Session) ScheduleWithPreference(ctx context.Context, activityID string, day activity.Day, pref scheduler.Preference) (plan.Outcome, error) {
	a, ok := s.lookup(activityID)
	if !ok {
		return s.noActivity(), nil
	}
	return s.apply(ctx, func(p *plan.Plan) plan.Outcome {
		return s.engine.AddWithPreference(p, a, day, pref)
	})
}

// Unschedule removes a scheduled entry.
func (s *Session) Unschedule(ctx context.Context, instanceID string, day activity.Day) (plan.Outcome, error) {
	return s.apply(ctx, func(p *plan.Plan) plan.Outcome {
		return s.engine.Remove(p, instanceID, day)
	})
}

// Move relocates a scheduled entry to another day.
func (s *Session) Move(ctx context.Context, instanceID string, from, to activity.Day, newTime string) (plan.Outcome, error) {
	return s.apply(ctx, func(p *plan.Plan) plan.Outcome {
		return s.engine.Move(p, instanceID, from, to, newTime)
	})
}

// Reorder lays the day out in the order of instanceIDs, assigning
// sequential start times from the start of the day.
func (s *Session) Reorder(ctx context.Context, day activity.Day, instanceIDs []string) (plan.Outcome, error) {
	if s.current == nil {
		return plan.Outcome{Result: plan.ResultNoPlan}, nil
	}
	ordered := make([]activity.ScheduledActivity, 0, len(instanceIDs))
	for _, id := range instanceIDs {
		e, ok := s.current.Find(day, id)
		if !ok {
			log.Warnf("activity %s not found on %s, nothing reordered", id, day)
			return plan.Outcome{Result: plan.ResultNotFound}, nil
		}
		ordered = append(ordered, e)
	}
	ordered = s.engine.Scheduler().Sequence(ordered)
	return s.apply(ctx, func(p *plan.Plan) plan.Outcome {
		return s.engine.Reorder(p, day, ordered)
	})
}

// UpdateCost records the actual cost of a scheduled entry.
func (s *Session) UpdateCost(ctx context.Context, instanceID string, day activity.Day, actual activity.Money) (plan.Outcome, error) {
	return s.apply(ctx, func(p *plan.Plan) plan.Outcome {
		return s.engine.UpdateActualCost(p, instanceID, day, actual)
	})
}

// SetBudget replaces the current plan's total budget.
func (s *Session) SetBudget(ctx context.Context, total activity.Money) (plan.Outcome, error) {
	return s.apply(ctx, func(p *plan.Plan) plan.Outcome {
		return s.engine.SetBudget(p, total)
	})
}

// SetAlerts toggles budget warnings on the current plan.
func (s *Session) SetAlerts(ctx context.Context, enabled bool) (plan.Outcome, error) {
	return s.apply(ctx, func(p *plan.Plan) plan.Outcome {
		return s.engine.SetBudgetAlerts(p, enabled)
	})
}

// SavePlan stores a copy of the current plan in the saved set.
func (s *Session) SavePlan(ctx context.Context) (plan.Result, error) {
	if s.current == nil {
		return plan.ResultNoPlan, nil
	}
	if err := s.store.SavePlan(ctx, s.current); err != nil {
		return plan.ResultApplied, fmt.Errorf("saving plan: %w", err)
	}
	log.WithField("plan", s.current.ID).Debug("saved plan")
	return plan.ResultApplied, nil
}

// LoadPlan makes a saved plan current.
func (s *Session) LoadPlan(ctx context.Context, id string) (plan.Result, error) {
	p, err := s.store.GetPlan(ctx, id)
	if err != nil {
		return plan.ResultNotFound, fmt.Errorf("loading plan: %w", err)
	}
	if p == nil {
		log.Warnf("plan %s not found, nothing loaded", id)
		return plan.ResultNotFound, nil
	}
	if err := s.store.SaveCurrent(ctx, p); err != nil {
		return plan.ResultApplied, fmt.Errorf("saving current plan: %w", err)
	}
	s.current = p
	return plan.ResultApplied, nil
}

// ImportPlan makes p current and adds it to the saved set.
func (s *Session) ImportPlan(ctx context.Context, p *plan.Plan) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if err := p.ValidateEntries(); err != nil {
		return err
	}
	if err := s.store.SavePlan(ctx, p); err != nil {
		return fmt.Errorf("saving plan: %w", err)
	}
	if err := s.store.SaveCurrent(ctx, p); err != nil {
		return fmt.Errorf("saving current plan: %w", err)
	}
	s.current = p.Clone()
	return nil
}

// DeletePlan removes a saved plan. The current plan is cleared when it is
// the one deleted.
func (s *Session) DeletePlan(ctx context.Context, id string) (plan.Result, error) {
	removed, err := s.store.DeletePlan(ctx, id)
	if err != nil {
		return plan.ResultNotFound, fmt.Errorf("deleting plan: %w", err)
	}

	result := plan.ResultNotFound
	if removed {
		result = plan.ResultApplied
	}
	if s.current != nil && s.current.ID == id {
		if err := s.store.SaveCurrent(ctx, nil); err != nil {
			return result, fmt.Errorf("clearing current plan: %w", err)
		}
		s.current = nil
		result = plan.ResultApplied
	}
	if result == plan.ResultNotFound {
		log.Warnf("plan %s not found, nothing deleted", id)
	}
	return result, nil
}

// ListPlans returns the saved plans, most recently updated first.
func (s *Session) ListPlans(ctx context.Context) ([]*plan.Plan, error) {
	plans, err := s.store.ListPlans(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing plans: %w", err)
	}
	return plans, nil
}

// FindEntry locates a scheduled entry of the current plan on either day.
// A prefix of the instance id is accepted when it is unambiguous, with or
// without the id's kind prefix ("scheduled-").
func (s *Session) FindEntry(id string) (activity.ScheduledActivity, bool) {
	if s.current == nil || id == "" {
		return activity.ScheduledActivity{}, false
	}
	var match activity.ScheduledActivity
	n := 0
	for _, e := range s.current.All() {
		short := ShortID(e.InstanceID)
		if e.InstanceID == id || short == id {
			return e, true
		}
		if strings.HasPrefix(e.InstanceID, id) || strings.HasPrefix(short, id) {
			match = e
			n++
		}
	}
	return match, n == 1
}

// ShortID strips the kind prefix from a generated id ("plan-", "scheduled-").
func ShortID(id string) string {
	if _, rest, ok := strings.Cut(id, "-"); ok && rest != "" {
		return rest
	}
	return id
}

func (s *Session) lookup(activityID string) (activity.Activity, bool) {
	a, ok := s.Activity(activityID)
	if !ok {
		log.Warnf("activity %s not in catalog, nothing scheduled", activityID)
	}
	return a, ok
}

func (s *Session) noActivity() plan.Outcome {
	if s.current == nil {
		return plan.Outcome{Result: plan.ResultNoPlan}
	}
	return plan.Outcome{Result: plan.ResultNotFound}
}

// apply runs mutate on a copy of the current plan. The copy replaces the
// current plan only once it has been saved, so a failed save leaves memory
// and store in agreement.
func (s *Session) apply(ctx context.Context, mutate func(p *plan.Plan) plan.Outcome) (plan.Outcome, error) {
	next := s.current.Clone()
	out := mutate(next)
	if !out.Result.Changed() {
		return out, nil
	}
	if err := s.store.SaveCurrent(ctx, next); err != nil {
		return out, fmt.Errorf("saving current plan: %w", err)
	}
	s.current = next
	return out, nil
}
