package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry(t *testing.T) {
	for _, name := range []string{"error", "warning", "success", "title", "heading", "path", "key", "value", "muted", "code"} {
		t.Run(name, func(t *testing.T) {
			assert.True(t, Default().Has(name))
		})
	}
	assert.False(t, Default().Has("nope"))
}

func TestParse(t *testing.T) {
	r, err := Parse([]byte(`
colors:
  accent:
    light: "#000000"
    dark: "#FFFFFF"
styles:
  loud:
    bold: true
    foreground: accent
  wide:
    width: 10
`))
	require.NoError(t, err)

	assert.True(t, r.Get("loud").GetBold())
	assert.Equal(t, 10, r.Get("wide").GetWidth())
	assert.False(t, r.Get("missing").GetBold())

	_, err = Parse([]byte("styles: [unclosed"))
	assert.Error(t, err)
}

func TestRender(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		contains    string
		notContains string
	}{
		{"known_tag", "Wrote [path]Foo.html[/path]", "Foo.html", "[path]"},
		{"unknown_tag", "a [nope]b[/nope]", "[nope]b[/nope]", ""},
		{"mismatched_tag", "a [path]b[/muted]", "[path]b[/muted]", ""},
		{"no_tags", "plain text", "plain text", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Render(tt.input)
			assert.Contains(t, out, tt.contains)
			if tt.notContains != "" {
				assert.NotContains(t, out, tt.notContains)
			}
		})
	}
}
