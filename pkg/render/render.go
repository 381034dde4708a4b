// Package render turns tokens into styled HTML and writes the fixed
// document preamble and postamble around them.
package render

import (
	"html"
	"io"
	"strings"
	"time"

	"github.com/arthur-debert/hilite/pkg/errors"
	"github.com/arthur-debert/hilite/pkg/style"
	"github.com/arthur-debert/hilite/pkg/token"
	"github.com/goodsign/monday"
)

// TimestampFormat is the layout of the generation date in the postamble.
// Day and month names are translated to the document locale.
const TimestampFormat = "Monday 2 January 2006, 15:04"

// Document describes the page wrapped around a token stream
type Document struct {
	// OutputName is the page title, normally the output file's base name
	OutputName string
	// InputName is the source file shown in the heading and postamble
	InputName string
	// Stylesheet is linked from the head when non-empty
	Stylesheet string
	// Locale selects the language of the generation date, e.g. "fr_FR"
	Locale string
	// Now is the generation time; zero means time.Now()
	Now time.Time
}

// Renderer renders tokens with a resolved palette
type Renderer struct {
	palette *style.Palette
}

// New creates a renderer. A nil palette means the defaults.
func New(p *style.Palette) *Renderer {
	if p == nil {
		p = style.Resolve(nil)
	}
	return &Renderer{palette: p}
}

// Palette returns the palette the renderer was built with
func (r *Renderer) Palette() *style.Palette {
	return r.palette
}

// Pair returns the colour and style used for tok
func (r *Renderer) Pair(tok token.Token) style.Pair {
	p := r.palette
	switch tok.Kind {
	case token.Bracket:
		return p.Bracket
	case token.Comment:
		if tok.Annotated {
			return p.Annotate
		}
		return p.Comment
	case token.Number:
		return p.Number
	case token.String:
		return p.String
	case token.Keyword:
		return p.KeywordPair(tok.Category)
	case token.ClassName:
		return p.Class
	case token.ConstantName:
		return p.Constant
	case token.PlainText:
		return p.Plain
	case token.PlainChar, token.DocComment, token.EOF:
		return style.Pair{}
	}
	return style.Pair{}
}

// Render returns the markup for tok. Doc comments and EOF render to
// nothing: the formatter has already written the doc comment.
func (r *Renderer) Render(tok token.Token) string {
	switch tok.Kind {
	case token.DocComment, token.EOF:
		return ""
	case token.PlainChar:
		return tok.Text
	}
	return Wrap(tok.Text, r.Pair(tok))
}

// Wrap applies pair to text: the style tag wraps the text and the colour
// span wraps the styled text. Empty parts are left out.
func Wrap(text string, pair style.Pair) string {
	if pair.Style != "" {
		text = "<" + pair.Style + ">" + text + "</" + pair.Style + ">"
	}
	if pair.Color != "" {
		text = `<span style="color:` + pair.Color + `">` + text + "</span>"
	}
	return text
}

// Preamble writes everything that precedes the token stream
func (r *Renderer) Preamble(w io.Writer, doc Document) error {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	b.WriteString("<title>" + html.EscapeString(doc.OutputName) + "</title>\n")
	if doc.Stylesheet != "" {
		b.WriteString(`<link rel="stylesheet" type="text/css" href="` + html.EscapeString(doc.Stylesheet) + "\">\n")
	}
	b.WriteString("</head>\n<body" + r.bodyStyle() + ">\n")
	b.WriteString(`<h2 class="source-name"><tt>` + html.EscapeString(doc.InputName) + "</tt></h2>\n")
	b.WriteString("<pre>\n")

	return write(w, b.String())
}

func (r *Renderer) bodyStyle() string {
	var props []string
	if r.palette.Background != "" {
		props = append(props, "background-color:"+r.palette.Background)
	}
	if r.palette.Text != "" {
		props = append(props, "color:"+r.palette.Text)
	}
	if r.palette.FontSize != "" {
		props = append(props, "font-size:"+r.palette.FontSize)
	}
	if len(props) == 0 {
		return ""
	}
	return ` style="` + strings.Join(props, ";") + `"`
}

// Postamble writes everything that follows the token stream
func (r *Renderer) Postamble(w io.Writer, doc Document) error {
	now := doc.Now
	if now.IsZero() {
		now = time.Now()
	}

	var b strings.Builder
	b.WriteString("\n</pre>\n<hr>\n<p class=\"generated\" align=\"right\"><em>\n")
	b.WriteString("This file was generated on " + Timestamp(now, doc.Locale))
	b.WriteString(" from file <kbd>" + html.EscapeString(doc.InputName) + "</kbd>\n")
	b.WriteString("</em></p>\n</body>\n</html>\n")

	return write(w, b.String())
}

// Timestamp formats t with day and month names in locale
func Timestamp(t time.Time, locale string) string {
	return monday.Format(t, TimestampFormat, Locale(locale))
}

var locales = map[string]monday.Locale{
	"en":    monday.LocaleEnUS,
	"en_us": monday.LocaleEnUS,
	"en_gb": monday.LocaleEnGB,
	"de":    monday.LocaleDeDE,
	"fr":    monday.LocaleFrFR,
	"fr_fr": monday.LocaleFrFR,
	"fr_ca": monday.LocaleFrCA,
	"es":    monday.LocaleEsES,
	"it":    monday.LocaleItIT,
	"pt":    monday.LocalePtPT,
	"pt_br": monday.LocalePtBR,
	"nl":    monday.LocaleNlNL,
	"ru":    monday.LocaleRuRU,
	"pl":    monday.LocalePlPL,
	"sv":    monday.LocaleSvSE,
	"ja":    monday.LocaleJaJP,
	"zh":    monday.LocaleZhCN,
	"zh_tw": monday.LocaleZhTW,
	"ko":    monday.LocaleKoKR,
}

// Locale maps a locale name such as "fr", "fr-FR" or "pt_BR" to a monday
// locale. Unknown names fall back to US English.
func Locale(name string) monday.Locale {
	name = strings.ToLower(strings.ReplaceAll(name, "-", "_"))
	if loc, ok := locales[name]; ok {
		return loc
	}
	if lang, _, found := strings.Cut(name, "_"); found {
		if loc, ok := locales[lang]; ok {
			return loc
		}
	}
	return monday.LocaleEnUS
}

func write(w io.Writer, s string) error {
	if _, err := io.WriteString(w, s); err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "failed to write output")
	}
	return nil
}
