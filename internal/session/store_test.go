package session

import (
	"context"
	"slices"

	"github.com/javiermolinar/weekendly/internal/activity"
	"github.com/javiermolinar/weekendly/internal/plan"
)

func usd(v float64) activity.Money { return activity.Dollars(v) }

// memStore keeps everything in maps and counts writes.
type memStore struct {
	current    *plan.Plan
	saved      map[string]*plan.Plan
	activities []activity.Activity
	writes     int
	// saveErr, when set, fails SaveCurrent without storing anything.
	saveErr error
}

func newMemStore() *memStore {
	return &memStore{saved: map[string]*plan.Plan{}}
}

func (m *memStore) SaveCurrent(_ context.Context, p *plan.Plan) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.writes++
	if p == nil {
		m.current = nil
		return nil
	}
	m.current = p.Clone()
	return nil
}

func (m *memStore) LoadCurrent(context.Context) (*plan.Plan, error) {
	if m.current == nil {
		return nil, nil
	}
	return m.current.Clone(), nil
}

func (m *memStore) SavePlan(_ context.Context, p *plan.Plan) error {
	m.saved[p.ID] = p.Clone()
	return nil
}

func (m *memStore) GetPlan(_ context.Context, id string) (*plan.Plan, error) {
	p, ok := m.saved[id]
	if !ok {
		return nil, nil
	}
	return p.Clone(), nil
}

func (m *memStore) ListPlans(context.Context) ([]*plan.Plan, error) {
	plans := make([]*plan.Plan, 0, len(m.saved))
	for _, p := range m.saved {
		plans = append(plans, p.Clone())
	}
	slices.SortFunc(plans, func(a, b *plan.Plan) int {
		return b.UpdatedAt.Compare(a.UpdatedAt)
	})
	return plans, nil
}

func (m *memStore) DeletePlan(_ context.Context, id string) (bool, error) {
	_, ok := m.saved[id]
	delete(m.saved, id)
	return ok, nil
}

func (m *memStore) ListActivities(context.Context) ([]activity.Activity, error) {
	return slices.Clone(m.activities), nil
}

func (m *memStore) SaveActivities(_ context.Context, activities []activity.Activity) error {
	m.activities = slices.Clone(activities)
	return nil
}
