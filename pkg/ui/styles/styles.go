// Package styles defines the visual styling for hilite's terminal output.
//
// Styles have semantic names and adaptive colors that follow light and
// dark terminal themes. They are loaded from the embedded styles.yaml.
//
// Style names are used as tags in messages:
//
//	Wrote [path]Foo.html[/path]
package styles

import (
	_ "embed"
	"fmt"
	"regexp"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

//go:embed styles.yaml
var defaultStyles []byte

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold         bool   `yaml:"bold,omitempty"`
	Italic       bool   `yaml:"italic,omitempty"`
	Underline    bool   `yaml:"underline,omitempty"`
	Foreground   string `yaml:"foreground,omitempty"`
	Background   string `yaml:"background,omitempty"`
	Width        int    `yaml:"width,omitempty"`
	MarginBottom int    `yaml:"marginBottom,omitempty"`
	PaddingLeft  int    `yaml:"paddingLeft,omitempty"`
	PaddingRight int    `yaml:"paddingRight,omitempty"`
}

// Config represents the complete styles configuration
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// Registry maps semantic names to lipgloss styles
type Registry struct {
	colors map[string]lipgloss.AdaptiveColor
	styles map[string]lipgloss.Style
}

var defaultRegistry *Registry

func init() {
	r, err := Parse(defaultStyles)
	if err != nil {
		panic(fmt.Sprintf("failed to load styles: %v", err))
	}
	defaultRegistry = r
}

// Default returns the registry built from the embedded styles
func Default() *Registry {
	return defaultRegistry
}

// Parse builds a registry from YAML style definitions
func Parse(data []byte) (*Registry, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse styles: %w", err)
	}

	r := &Registry{
		colors: make(map[string]lipgloss.AdaptiveColor, len(config.Colors)),
		styles: make(map[string]lipgloss.Style, len(config.Styles)),
	}
	for name, def := range config.Colors {
		r.colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}
	for name, def := range config.Styles {
		r.styles[name] = r.build(def)
	}
	return r, nil
}

// build constructs a lipgloss style from a style definition
func (r *Registry) build(def StyleDef) lipgloss.Style {
	style := lipgloss.NewStyle()

	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}

	if color, ok := r.colors[def.Foreground]; ok {
		style = style.Foreground(color)
	}
	if color, ok := r.colors[def.Background]; ok {
		style = style.Background(color)
	}

	if def.Width > 0 {
		style = style.Width(def.Width)
	}
	if def.MarginBottom > 0 {
		style = style.MarginBottom(def.MarginBottom)
	}
	if def.PaddingLeft > 0 || def.PaddingRight > 0 {
		style = style.Padding(0, def.PaddingRight, 0, def.PaddingLeft)
	}

	return style
}

// Has reports whether a style is defined
func (r *Registry) Has(name string) bool {
	_, ok := r.styles[name]
	return ok
}

// Get returns the named style, or a plain style when it is not defined
func (r *Registry) Get(name string) lipgloss.Style {
	if style, ok := r.styles[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

var tagPattern = regexp.MustCompile(`\[([a-z]+)\](.*?)\[/([a-z]+)\]`)

// Render replaces [name]text[/name] tags with the styled text. Unknown or
// mismatched tags are left as they are.
func (r *Registry) Render(text string) string {
	return tagPattern.ReplaceAllStringFunc(text, func(match string) string {
		m := tagPattern.FindStringSubmatch(match)
		if m[1] != m[3] || !r.Has(m[1]) {
			return match
		}
		return r.styles[m[1]].Render(m[2])
	})
}

// Get returns a style from the default registry
func Get(name string) lipgloss.Style {
	return defaultRegistry.Get(name)
}

// Render applies the default registry's tags to text
func Render(text string) string {
	return defaultRegistry.Render(text)
}
