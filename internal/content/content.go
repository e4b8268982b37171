// Package content holds the static copy of the guide page: hero text,
// concept and feature cards, the hotkey table, plugin and theme cards, and
// the closing call-to-action. The page treats all of it as plain data.
package content

import (
	"fmt"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// Entry is one {label, description} record, the shape shared by concept
// cards, feature cards and plugin cards.
type Entry struct {
	Label       string `yaml:"label"`
	Description string `yaml:"description"`
}

// Hotkey is one row of the shortcut table.
type Hotkey struct {
	Keys        string `yaml:"keys"`
	Description string `yaml:"description"`
}

// Theme is a theme card with its color swatches.
type Theme struct {
	Label       string   `yaml:"label"`
	Description string   `yaml:"description"`
	Colors      []string `yaml:"colors"`
}

// Banner is a hero or closing block.
type Banner struct {
	Title   string `yaml:"title"`
	Tagline string `yaml:"tagline"`
	CTA     string `yaml:"cta"`
	URL     string `yaml:"url"`
	Hint    string `yaml:"hint"`
}

// Guide is the whole page.
type Guide struct {
	Hero     Banner   `yaml:"hero"`
	Concepts []Entry  `yaml:"concepts"`
	Features []Entry  `yaml:"features"`
	Hotkeys  []Hotkey `yaml:"hotkeys"`
	Plugins  []Entry  `yaml:"plugins"`
	Themes   []Theme  `yaml:"themes"`
	Closing  Banner   `yaml:"closing"`
}

// Load parses the embedded guide document.
func Load() (*Guide, error) {
	return parse(guideYAML)
}

// LoadFile parses a guide document from disk, for users who want to swap
// the copy without rebuilding.
func LoadFile(path string) (*Guide, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read guide content: %w", err)
	}
	return parse(raw)
}

func parse(raw []byte) (*Guide, error) {
	var g Guide
	if err := yaml.Unmarshal(raw, &g); err != nil {
		return nil, fmt.Errorf("parse guide content: %w", err)
	}
	if err := g.validate(); err != nil {
		return nil, fmt.Errorf("validate guide content: %w", err)
	}
	return &g, nil
}

func (g *Guide) validate() error {
	if g.Hero.Title == "" {
		return fmt.Errorf("hero title is empty")
	}
	for name, n := range map[string]int{
		"concepts": len(g.Concepts),
		"features": len(g.Features),
		"hotkeys":  len(g.Hotkeys),
		"plugins":  len(g.Plugins),
		"themes":   len(g.Themes),
	} {
		if n == 0 {
			return fmt.Errorf("section %q is empty", name)
		}
	}
	for _, th := range g.Themes {
		if len(th.Colors) == 0 {
			return fmt.Errorf("theme %q has no swatches", th.Label)
		}
		for _, hex := range th.Colors {
			if _, err := colorful.Hex(hex); err != nil {
				return fmt.Errorf("theme %q swatch %q: %w", th.Label, hex, err)
			}
		}
	}
	return nil
}

// Swatches decodes the theme's hex swatches. Load validated them, so
// decoding cannot fail afterwards.
func (t *Theme) Swatches() []colorful.Color {
	out := make([]colorful.Color, 0, len(t.Colors))
	for _, hex := range t.Colors {
		c, err := colorful.Hex(hex)
		if err != nil {
			continue
		}
		out = append(out, c)
	}
	return out
}
