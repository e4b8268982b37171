package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbeddedGuide(t *testing.T) {
	g, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Obsidian", g.Hero.Title)
	assert.NotEmpty(t, g.Hero.CTA)
	assert.NotEmpty(t, g.Hero.URL)
	assert.NotEmpty(t, g.Concepts)
	assert.NotEmpty(t, g.Features)
	assert.NotEmpty(t, g.Hotkeys)
	assert.NotEmpty(t, g.Plugins)
	assert.NotEmpty(t, g.Themes)
	assert.NotEmpty(t, g.Closing.Title)

	for _, e := range g.Concepts {
		assert.NotEmpty(t, e.Label)
		assert.NotEmpty(t, e.Description)
	}
	for _, h := range g.Hotkeys {
		assert.NotEmpty(t, h.Keys)
		assert.NotEmpty(t, h.Description)
	}
}

func TestThemeSwatchesDecode(t *testing.T) {
	g, err := Load()
	require.NoError(t, err)

	for _, th := range g.Themes {
		sw := th.Swatches()
		assert.Len(t, sw, len(th.Colors), "theme %s", th.Label)
	}
}

func TestLoadFileOverride(t *testing.T) {
	doc := `
hero:
  title: Test
  cta: Go
  url: https://example.com
concepts: [{label: a, description: b}]
features: [{label: a, description: b}]
hotkeys: [{keys: a, description: b}]
plugins: [{label: a, description: b}]
themes: [{label: a, description: b, colors: ["#112233"]}]
closing: {title: Bye}
`
	path := filepath.Join(t.TempDir(), "guide.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	g, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Test", g.Hero.Title)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidateRejectsBadContent(t *testing.T) {
	cases := map[string]string{
		"missing hero title": `
concepts: [{label: a, description: b}]
features: [{label: a, description: b}]
hotkeys: [{keys: a, description: b}]
plugins: [{label: a, description: b}]
themes: [{label: a, description: b, colors: ["#112233"]}]
`,
		"empty section": `
hero: {title: T}
concepts: []
features: [{label: a, description: b}]
hotkeys: [{keys: a, description: b}]
plugins: [{label: a, description: b}]
themes: [{label: a, description: b, colors: ["#112233"]}]
`,
		"bad swatch": `
hero: {title: T}
concepts: [{label: a, description: b}]
features: [{label: a, description: b}]
hotkeys: [{keys: a, description: b}]
plugins: [{label: a, description: b}]
themes: [{label: a, description: b, colors: ["not-a-color"]}]
`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}
