// Package catalog loads the activity catalog from the embedded defaults or a
// user file.
package catalog

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/weekendly/internal/activity"
)

//go:embed embedded/activities.toml
var embedded embed.FS

// ErrDuplicateID is returned when two catalog entries share an id.
var ErrDuplicateID = errors.New("duplicate activity id")

// Repository stores the session catalog.
type Repository interface {
	// ListActivities returns the stored catalog in its saved order.
	ListActivities(ctx context.Context) ([]activity.Activity, error)

	// SaveActivities replaces the stored catalog.
	SaveActivities(ctx context.Context, activities []activity.Activity) error
}

type file struct {
	Activities []entry `toml:"activity"`
}

// entry is an activity as written in a catalog file, with cost in dollars.
type entry struct {
	ID              string                   `toml:"id"`
	Name            string                   `toml:"name"`
	Category        activity.Category        `toml:"category"`
	Mood            activity.Mood            `toml:"mood"`
	Duration        int                      `toml:"duration"`
	Cost            float64                  `toml:"cost"`
	CostType        activity.CostType        `toml:"cost_type"`
	CostVariability activity.CostVariability `toml:"cost_variability"`
	Description     string                   `toml:"description,omitempty"`
}

func (e entry) toActivity() activity.Activity {
	return activity.Activity{
		ID:              e.ID,
		Name:            e.Name,
		Category:        e.Category,
		Mood:            e.Mood,
		Duration:        e.Duration,
		Cost:            activity.Dollars(e.Cost),
		CostType:        e.CostType,
		CostVariability: e.CostVariability,
		Description:     e.Description,
	}
}

func fromActivity(a activity.Activity) entry {
	return entry{
		ID:              a.ID,
		Name:            a.Name,
		Category:        a.Category,
		Mood:            a.Mood,
		Duration:        a.Duration,
		Cost:            a.Cost.Float64(),
		CostType:        a.CostType,
		CostVariability: a.CostVariability,
		Description:     a.Description,
	}
}

// Default returns the built-in catalog.
func Default() ([]activity.Activity, error) {
	data, err := embedded.ReadFile("embedded/activities.toml")
	if err != nil {
		return nil, fmt.Errorf("reading built-in catalog: %w", err)
	}
	return Parse(data)
}

// Load reads a catalog file. An empty path returns the built-in catalog.
func Load(path string) ([]activity.Activity, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	activities, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return activities, nil
}

// Parse decodes TOML catalog data and validates every entry.
func Parse(data []byte) ([]activity.Activity, error) {
	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	activities := make([]activity.Activity, len(f.Activities))
	for i, e := range f.Activities {
		activities[i] = e.toActivity()
	}
	if err := Validate(activities); err != nil {
		return nil, err
	}
	return activities, nil
}

// Validate checks each activity and rejects duplicate ids.
func Validate(activities []activity.Activity) error {
	seen := make(map[string]bool, len(activities))
	for _, a := range activities {
		if err := a.Validate(); err != nil {
			return err
		}
		if seen[a.ID] {
			return fmt.Errorf("%w: %s", ErrDuplicateID, a.ID)
		}
		seen[a.ID] = true
	}
	return nil
}

// Marshal encodes activities in the catalog file format.
func Marshal(activities []activity.Activity) ([]byte, error) {
	f := file{Activities: make([]entry, len(activities))}
	for i, a := range activities {
		f.Activities[i] = fromActivity(a)
	}
	data, err := toml.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("marshaling catalog: %w", err)
	}
	return data, nil
}

// Find returns the activity with the given id.
func Find(activities []activity.Activity, id string) (activity.Activity, bool) {
	for _, a := range activities {
		if a.ID == id {
			return a, true
		}
	}
	return activity.Activity{}, false
}
