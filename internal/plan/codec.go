package plan

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/javiermolinar/weekendly/internal/activity"
)

// Decode errors.
var (
	ErrInvalidEntry   = errors.New("invalid scheduled activity")
	ErrLedgerMismatch = errors.New("plan totals do not match its activities")
)

// Encode writes the plan as indented JSON. Timestamps use RFC 3339.
func Encode(w io.Writer, p *Plan) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("encoding plan: %w", err)
	}
	return nil
}

// Decode reads a JSON plan and validates it, entries and totals included.
// Nil day lists are normalized to empty ones.
func Decode(r io.Reader) (*Plan, error) {
	var p Plan
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("decoding plan: %w", err)
	}
	if p.ID == "" {
		return nil, fmt.Errorf("decoding plan: missing id")
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("decoding plan: %w", err)
	}
	if err := p.ValidateEntries(); err != nil {
		return nil, fmt.Errorf("decoding plan: %w", err)
	}
	if p.Saturday == nil {
		p.Saturday = []activity.ScheduledActivity{}
	}
	if p.Sunday == nil {
		p.Sunday = []activity.ScheduledActivity{}
	}
	return &p, nil
}

// ValidateEntries checks every scheduled entry and the stored totals against
// the entries.
func (p *Plan) ValidateEntries() error {
	seen := make(map[string]bool, p.Len())
	for _, day := range activity.Days() {
		for _, e := range *p.entries(day) {
			if err := validateEntry(e, day); err != nil {
				return err
			}
			if seen[e.InstanceID] {
				return fmt.Errorf("%w: duplicate instance id %q", ErrInvalidEntry, e.InstanceID)
			}
			seen[e.InstanceID] = true
		}
	}
	if est := p.SumEstimated(); p.EstimatedCost != est {
		return fmt.Errorf("%w: estimated cost %v, activities sum to %v", ErrLedgerMismatch, p.EstimatedCost, est)
	}
	if actual := sumActual(p.Saturday, p.Sunday); p.ActualCost != actual {
		return fmt.Errorf("%w: actual cost %v, activities sum to %v", ErrLedgerMismatch, p.ActualCost, actual)
	}
	return nil
}

func validateEntry(e activity.ScheduledActivity, day activity.Day) error {
	if e.InstanceID == "" {
		return fmt.Errorf("%w: missing instance id", ErrInvalidEntry)
	}
	if err := e.Activity.Validate(); err != nil {
		return fmt.Errorf("%w %s: %w", ErrInvalidEntry, e.InstanceID, err)
	}
	if e.Day != day {
		return fmt.Errorf("%w %s: tagged %q but listed under %s", ErrInvalidEntry, e.InstanceID, e.Day, day)
	}
	if err := activity.ValidateTime(e.StartTime); err != nil {
		return fmt.Errorf("%w %s: start %q: %w", ErrInvalidEntry, e.InstanceID, e.StartTime, err)
	}
	if want := activity.AddDuration(e.StartTime, e.Duration); e.EndTime != want {
		return fmt.Errorf("%w %s: end %q, want %q", ErrInvalidEntry, e.InstanceID, e.EndTime, want)
	}
	if e.ActualCost != nil && *e.ActualCost < 0 {
		return fmt.Errorf("%w %s: %w", ErrInvalidEntry, e.InstanceID, activity.ErrNegativeCost)
	}
	return nil
}
