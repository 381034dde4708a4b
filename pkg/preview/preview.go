// Package preview renders highlighted source in the terminal.
//
// The scanner's tokens are mapped onto chroma token types and a chroma
// style is built from the same palette the HTML output uses, so a preview
// shows the colours the page will have.
package preview

import (
	"fmt"
	"html"
	"image/color"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/arthur-debert/hilite/pkg/keywords"
	"github.com/arthur-debert/hilite/pkg/scanner"
	"github.com/arthur-debert/hilite/pkg/style"
	"github.com/arthur-debert/hilite/pkg/token"
	"github.com/muesli/termenv"
	"golang.org/x/image/colornames"
)

// Options configures a preview
type Options struct {
	Palette      *style.Palette
	Keywords     *keywords.Table
	AnnotateChar rune
	// Formatter is a chroma formatter name; empty picks one from the
	// terminal's colour profile
	Formatter string
}

// Render writes a terminal rendering of src to w
func Render(w io.Writer, src io.Reader, opts Options) error {
	palette := opts.Palette
	if palette == nil {
		palette = style.Resolve(nil)
	}

	tokens, err := Tokens(src, palette, opts)
	if err != nil {
		return err
	}

	chromaStyle, err := Style(palette)
	if err != nil {
		return err
	}

	name := opts.Formatter
	if name == "" {
		name = FormatterName(termenv.NewOutput(w).ColorProfile())
	}
	return formatters.Get(name).Format(w, chromaStyle, chroma.Literator(tokens...))
}

// sink collects what the scanner writes directly, in stream order
type sink struct {
	tokens *[]chroma.Token
}

func (s sink) Write(p []byte) (int, error) {
	*s.tokens = append(*s.tokens, chroma.Token{Type: chroma.Text, Value: string(p)})
	return len(p), nil
}

// Tokens scans src into chroma tokens with unescaped text. Doc comments
// are kept as ordinary comments.
func Tokens(src io.Reader, palette *style.Palette, opts Options) ([]chroma.Token, error) {
	var tokens []chroma.Token

	tag := ""
	if palette.AnnotateTag != "" {
		tag = "[" + html.EscapeString(palette.AnnotateTag) + "]"
	}
	s := scanner.New(src, sink{tokens: &tokens}, scanner.Options{
		Keywords:     opts.Keywords,
		AnnotateChar: opts.AnnotateChar,
		AnnotateTag:  tag,
	})

	for {
		tok, err := s.Next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == token.EOF {
			return tokens, nil
		}
		tokens = append(tokens, chroma.Token{
			Type:  TokenType(tok),
			Value: html.UnescapeString(tok.Text),
		})
	}
}

// TokenType maps a token onto a chroma token type
func TokenType(tok token.Token) chroma.TokenType {
	switch tok.Kind {
	case token.Keyword:
		return keywordTypes[tok.Category]
	case token.ClassName:
		return chroma.NameClass
	case token.ConstantName:
		return chroma.NameConstant
	case token.Number:
		return chroma.LiteralNumberInteger
	case token.String:
		return chroma.LiteralString
	case token.Comment:
		if tok.Annotated {
			return chroma.CommentSpecial
		}
		return chroma.Comment
	case token.DocComment:
		return chroma.CommentMultiline
	case token.Bracket:
		return chroma.Punctuation
	case token.PlainText:
		return chroma.Name
	case token.PlainChar, token.EOF:
		return chroma.Text
	}
	return chroma.Text
}

var keywordTypes = map[keywords.Category]chroma.TokenType{
	keywords.None:     chroma.Keyword,
	keywords.Modifier: chroma.KeywordReserved,
	keywords.Type:     chroma.KeywordType,
	keywords.Control:  chroma.Keyword,
	keywords.Declare:  chroma.KeywordDeclaration,
	keywords.Literal:  chroma.KeywordConstant,
	keywords.Other:    chroma.KeywordPseudo,
}

// Style builds a chroma style from a palette
func Style(p *style.Palette) (*chroma.Style, error) {
	entries := chroma.StyleEntries{
		chroma.Comment:            Entry(p.Comment),
		chroma.CommentMultiline:   Entry(p.Comment),
		chroma.CommentSpecial:     Entry(p.Annotate),
		chroma.Punctuation:        Entry(p.Bracket),
		chroma.NameClass:          Entry(p.Class),
		chroma.NameConstant:       Entry(p.Constant),
		chroma.LiteralNumber:      Entry(p.Number),
		chroma.LiteralString:      Entry(p.String),
		chroma.Name:               Entry(p.Plain),
		chroma.Keyword:            Entry(p.KeywordPair(keywords.Control)),
		chroma.KeywordReserved:    Entry(p.KeywordPair(keywords.Modifier)),
		chroma.KeywordType:        Entry(p.KeywordPair(keywords.Type)),
		chroma.KeywordDeclaration: Entry(p.KeywordPair(keywords.Declare)),
		chroma.KeywordConstant:    Entry(p.KeywordPair(keywords.Literal)),
		chroma.KeywordPseudo:      Entry(p.KeywordPair(keywords.Other)),
	}
	if hex := Hex(p.Text); hex != "" {
		entries[chroma.Text] = hex
	}

	// chroma rejects empty entries
	for tt, entry := range entries {
		if entry == "" {
			delete(entries, tt)
		}
	}

	s, err := chroma.NewStyle("hilite", entries)
	if err != nil {
		return nil, fmt.Errorf("failed to build preview style: %w", err)
	}
	return s, nil
}

// Entry converts a colour and markup pair into a chroma style entry
func Entry(pair style.Pair) string {
	var parts []string
	switch strings.ToLower(pair.Style) {
	case "strong", "b":
		parts = append(parts, "bold")
	case "em", "i", "cite", "var":
		parts = append(parts, "italic")
	case "u", "ins":
		parts = append(parts, "underline")
	}
	if hex := Hex(pair.Color); hex != "" {
		parts = append(parts, hex)
	}
	return strings.Join(parts, " ")
}

// Hex converts a CSS colour to #rrggbb. Named colours are looked up in
// the SVG colour table; unknown names give "".
func Hex(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	if strings.HasPrefix(name, "#") {
		return expandHex(name)
	}
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return ""
	}
	return rgbHex(c)
}

func expandHex(s string) string {
	digits := s[1:]
	for _, r := range digits {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return ""
		}
	}
	switch len(digits) {
	case 3:
		return "#" + string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	case 6:
		return s
	}
	return ""
}

func rgbHex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// FormatterName picks the chroma terminal formatter for a colour profile
func FormatterName(profile termenv.Profile) string {
	switch profile {
	case termenv.TrueColor:
		return "terminal16m"
	case termenv.ANSI256:
		return "terminal256"
	case termenv.ANSI:
		return "terminal16"
	}
	return "noop"
}
