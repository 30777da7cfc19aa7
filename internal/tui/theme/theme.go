// Package theme provides color themes for the TUI.
package theme

import (
	"embed"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/weekendly/internal/activity"
)

//go:embed embedded/*.toml
var embeddedThemes embed.FS

// Theme holds all colors for a TUI theme.
type Theme struct {
	Name        string `toml:"name"`
	Bg          string `toml:"bg"`           // Base background
	BgHighlight string `toml:"bg_highlight"` // Column panels, subtle highlight
	BgSelection string `toml:"bg_selection"` // Cursor, selection
	Fg          string `toml:"fg"`           // Primary foreground
	FgMuted     string `toml:"fg_muted"`     // Secondary text
	Accent      string `toml:"accent"`       // Title, focused borders
	Warning     string `toml:"warning"`      // Near budget
	Danger      string `toml:"danger"`       // Over budget
	Success     string `toml:"success"`      // Under budget

	// Category colors
	Food     string `toml:"food"`
	Outdoor  string `toml:"outdoor"`
	Indoor   string `toml:"indoor"`
	Social   string `toml:"social"`
	Wellness string `toml:"wellness"`
}

// Load loads a theme by name from embedded files.
// Falls back to mocha if the theme is not found.
func Load(name string) (*Theme, error) {
	if name == "" {
		name = "mocha"
	}
	name = strings.ToLower(name)

	path := "embedded/" + name + ".toml"
	data, err := embeddedThemes.ReadFile(path)
	if err != nil {
		// Fallback to mocha
		if name != "mocha" {
			return Load("mocha")
		}
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}

	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	t.applyDefaults()

	return &t, nil
}

// Category returns the hex color for an activity category.
func (t *Theme) Category(c activity.Category) string {
	switch c {
	case activity.CategoryFood:
		return t.Food
	case activity.CategoryOutdoor:
		return t.Outdoor
	case activity.CategoryIndoor:
		return t.Indoor
	case activity.CategorySocial:
		return t.Social
	case activity.CategoryWellness:
		return t.Wellness
	default:
		return t.Accent
	}
}

func (t *Theme) applyDefaults() {
	t.Danger = coalesce(t.Danger, t.Warning)
	t.Success = coalesce(t.Success, t.Accent)
	t.Food = coalesce(t.Food, t.Accent)
	t.Outdoor = coalesce(t.Outdoor, t.Accent)
	t.Indoor = coalesce(t.Indoor, t.Accent)
	t.Social = coalesce(t.Social, t.Accent)
	t.Wellness = coalesce(t.Wellness, t.Accent)
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Available returns a list of available theme names.
func Available() []string {
	return []string{"mocha", "macchiato", "frappe", "latte"}
}

// IsAvailable reports whether a theme name is available.
func IsAvailable(name string) bool {
	name = strings.ToLower(name)
	for _, themeName := range Available() {
		if themeName == name {
			return true
		}
	}
	return false
}
