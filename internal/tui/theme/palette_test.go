package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/weekendly/internal/activity"
	"github.com/javiermolinar/weekendly/internal/plan"
)

func darkTheme() *Theme {
	t := &Theme{
		Bg:          "#101010",
		BgHighlight: "#202020",
		BgSelection: "#303030",
		Fg:          "#ffffff",
		FgMuted:     "#aaaaaa",
		Accent:      "#ff0000",
		Warning:     "#888888",
		Danger:      "#ff4444",
		Success:     "#44ff44",
		Food:        "#112233",
		Outdoor:     "#445566",
	}
	t.applyDefaults()
	return t
}

func TestNewPalette_CategoryShades(t *testing.T) {
	base := darkTheme()
	palette := NewPalette(base)

	food := palette.Category(activity.CategoryFood)
	if food.Fg != lipgloss.Color(base.Food) {
		t.Fatalf("food Fg = %q, want %q", food.Fg, base.Food)
	}
	if food.Bg != lipgloss.Color(darkenColor(base.Food)) {
		t.Fatalf("food Bg = %q, want %q", food.Bg, darkenColor(base.Food))
	}
	if food.BgAlt != lipgloss.Color(alternateShade(darkenColor(base.Food), false)) {
		t.Fatalf("food BgAlt = %q", food.BgAlt)
	}
	if food.TextOn != lipgloss.Color(base.Fg) {
		t.Fatalf("food TextOn = %q, want light text on dark card", food.TextOn)
	}

	social := palette.Category(activity.CategorySocial)
	if social.Fg != lipgloss.Color(base.Accent) {
		t.Fatalf("social Fg = %q, want accent fallback", social.Fg)
	}
}

func TestNewPalette_UnknownCategory(t *testing.T) {
	palette := NewPalette(darkTheme())
	cc := palette.Category("napping")
	if cc.Fg != palette.Accent || cc.Bg != palette.BgHighlight {
		t.Fatalf("unknown category colors = %+v", cc)
	}
}

func TestNewPalette_LightThemeLightensCards(t *testing.T) {
	base := &Theme{
		Bg:          "#f5f5f5",
		BgHighlight: "#eeeeee",
		BgSelection: "#e0e0e0",
		Fg:          "#222222",
		FgMuted:     "#555555",
		Accent:      "#2f6feb",
		Warning:     "#c2410c",
		Indoor:      "#1d8a8a",
	}
	base.applyDefaults()

	palette := NewPalette(base)
	indoor := palette.Category(activity.CategoryIndoor)
	if relativeLuminance(string(indoor.Bg)) <= relativeLuminance(base.Indoor) {
		t.Fatalf("indoor Bg luminance = %f, want greater than category color", relativeLuminance(string(indoor.Bg)))
	}
}

func TestNewPalette_NilUsesMocha(t *testing.T) {
	mocha, _ := Load("mocha")
	palette := NewPalette(nil)
	if palette.Bg != lipgloss.Color(mocha.Bg) {
		t.Fatalf("Bg = %q, want %q", palette.Bg, mocha.Bg)
	}
}

func TestPalette_Status(t *testing.T) {
	palette := NewPalette(darkTheme())
	tests := []struct {
		status plan.BudgetStatus
		want   lipgloss.Color
	}{
		{plan.BudgetUnder, palette.Success},
		{plan.BudgetNear, palette.Warning},
		{plan.BudgetOver, palette.Danger},
	}
	for _, tt := range tests {
		if got := palette.Status(tt.status); got != tt.want {
			t.Errorf("Status(%s) = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestChooseTextColorPrefersContrast(t *testing.T) {
	bg := "#f0f0f0"
	lightText := "#ffffff"
	darkText := "#111111"

	if got := chooseTextColor(bg, lightText, darkText); got != darkText {
		t.Fatalf("chooseTextColor(%q, %q, %q) = %q, want %q", bg, lightText, darkText, got, darkText)
	}
}

func TestDarkenColor_Floor(t *testing.T) {
	if got := darkenColor("#000000"); got != "#282828" {
		t.Errorf("darkenColor(black) = %s, want #282828", got)
	}
	if got := darkenColor("bad"); got != "bad" {
		t.Errorf("darkenColor(bad) = %s, want unchanged", got)
	}
}
