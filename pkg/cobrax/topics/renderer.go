package topics

import (
	"github.com/charmbracelet/glamour"
)

// Renderer formats topic content for the terminal
type Renderer interface {
	// Render takes raw content and the topic's file extension
	Render(content string, format string) string
}

// PlainRenderer returns content unchanged
type PlainRenderer struct{}

// Render returns the content unchanged
func (r PlainRenderer) Render(content string, format string) string {
	return content
}

// GlamourRenderer renders markdown topics with glamour. Other formats are
// passed through.
type GlamourRenderer struct {
	// Style is a glamour style name or path; "" or "auto" detects the
	// terminal background
	Style string
	// Width wraps rendered text; 0 keeps glamour's default
	Width int
}

// NewGlamourRenderer creates a renderer with auto-detected style
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{Style: "auto"}
}

// Render converts markdown to terminal output, falling back to the raw
// content if glamour fails
func (r *GlamourRenderer) Render(content string, format string) string {
	if format != ".md" {
		return content
	}

	out, err := RenderMarkdown(content, r.Style, r.Width)
	if err != nil {
		return content
	}
	return out
}

// RenderMarkdown renders a markdown document with glamour
func RenderMarkdown(content, style string, width int) (string, error) {
	var options []glamour.TermRendererOption
	if style != "" && style != "auto" {
		options = append(options, glamour.WithStylePath(style))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}
	if width > 0 {
		options = append(options, glamour.WithWordWrap(width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return "", err
	}
	return renderer.Render(content)
}
