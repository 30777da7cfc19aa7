package plan

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator issues unique identifiers for plans and scheduled entries.
type IDGenerator interface {
	PlanID() string
	InstanceID() string
}

// UUIDGenerator issues random UUID based identifiers.
type UUIDGenerator struct{}

// PlanID returns a new plan identifier.
func (UUIDGenerator) PlanID() string {
	return "plan-" + uuid.NewString()
}

// InstanceID returns a new scheduled entry identifier.
func (UUIDGenerator) InstanceID() string {
	return "scheduled-" + uuid.NewString()
}

// SequenceGenerator issues monotonically increasing identifiers.
// It never collides within a process, regardless of clock resolution.
type SequenceGenerator struct {
	next atomic.Int64
}

// PlanID returns "plan-N".
func (g *SequenceGenerator) PlanID() string {
	return fmt.Sprintf("plan-%d", g.next.Add(1))
}

// InstanceID returns "scheduled-N".
func (g *SequenceGenerator) InstanceID() string {
	return fmt.Sprintf("scheduled-%d", g.next.Add(1))
}
