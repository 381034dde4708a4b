// Package style resolves a flat style configuration into the colour and
// markup pairs used by the renderer.
//
// Every key has a default that applies when the key is absent. The value
// "*" means the key is explicitly unstyled, which is not the same thing as
// absent: an absent OTHER_COLOR inherits KEYWORD_COLOR, a "*" one renders
// other-keywords without any colour.
package style

import (
	"html"

	"github.com/arthur-debert/hilite/pkg/keywords"
)

// NoStyle is the configuration value meaning "no styling for this key"
const NoStyle = "*"

// Config is the raw key -> value style table
type Config map[string]string

// Style keys
const (
	FontSize         = "FONT_SIZE"
	BackgroundColor  = "BACKGROUND_COLOR"
	TextColor        = "TEXT_COLOR"
	DocBgColor       = "DOC_BG_COLOR"
	DocTextColor     = "DOC_TEXT_COLOR"
	CommentColor     = "COMMENT_COLOR"
	BracketColor     = "BRACKET_COLOR"
	KeywordColor     = "KEYWORD_COLOR"
	ModifierColor    = "MODIFIER_COLOR"
	TypeColor        = "TYPE_COLOR"
	ControlColor     = "CONTROL_COLOR"
	DeclareColor     = "DECLARE_COLOR"
	LiteralColor     = "LITERAL_COLOR"
	OtherColor       = "OTHER_COLOR"
	ClassColor       = "CLASS_COLOR"
	ConstantColor    = "CONSTANT_COLOR"
	NumberColor      = "NUMBER_COLOR"
	StringColor      = "STRING_COLOR"
	AnnotateColor    = "ANNOTATE_COLOR"
	AnnotateTagColor = "ANNOTATE_TAG_COLOR"
	CommentStyle     = "COMMENT_STYLE"
	BracketStyle     = "BRACKET_STYLE"
	KeywordStyle     = "KEYWORD_STYLE"
	ModifierStyle    = "MODIFIER_STYLE"
	TypeStyle        = "TYPE_STYLE"
	ControlStyle     = "CONTROL_STYLE"
	DeclareStyle     = "DECLARE_STYLE"
	LiteralStyle     = "LITERAL_STYLE"
	OtherStyle       = "OTHER_STYLE"
	ClassStyle       = "CLASS_STYLE"
	ConstantStyle    = "CONSTANT_STYLE"
	NumberStyle      = "NUMBER_STYLE"
	StringStyle      = "STRING_STYLE"
	PlainStyle       = "PLAIN_STYLE"
	AnnotateStyle    = "ANNOTATE_STYLE"
	AnnotateTag      = "ANNOTATE_TAG"
)

// legacy spellings accepted for the doc-comment colours
var aliases = map[string][]string{
	DocBgColor:   {"JAVADOC_BG_COLOR", "SYNTAXDOC_BG_COLOR"},
	DocTextColor: {"JAVADOC_TEXT_COLOR", "SYNTAXDOC_TEXT_COLOR"},
}

// Pair is a resolved colour and markup tag. Empty fields mean unstyled.
type Pair struct {
	Color string
	Style string
}

// Palette is a fully resolved style configuration
type Palette struct {
	FontSize   string
	Background string
	Text       string

	DocBackground string
	DocText       string

	Comment  Pair
	Annotate Pair
	Bracket  Pair
	Keyword  Pair
	Class    Pair
	Constant Pair
	Number   Pair
	String   Pair
	Plain    Pair

	keywords map[keywords.Category]Pair

	AnnotateTagColor string
	AnnotateTag      string
}

// KeywordPair returns the pair for a keyword category, falling back to the
// generic keyword pair.
func (p *Palette) KeywordPair(cat keywords.Category) Pair {
	if pair, ok := p.keywords[cat]; ok {
		return pair
	}
	return p.Keyword
}

// AnnotateTagMarkup returns the markup spliced into annotation comments,
// or "" when the tag is unstyled.
func (p *Palette) AnnotateTagMarkup() string {
	if p.AnnotateTag == "" {
		return ""
	}
	text := "<b>" + html.EscapeString(p.AnnotateTag) + "</b>"
	if p.AnnotateTagColor == "" {
		return `<span class="annotate-tag">` + text + "</span>"
	}
	return `<span class="annotate-tag" style="color:` + p.AnnotateTagColor + `">` + text + "</span>"
}

type resolver struct {
	cfg Config
}

// get returns the configured value, the default when absent, or "" for
// the no-style sentinel.
func (r resolver) get(key, def string) string {
	v, ok := r.lookup(key)
	if !ok {
		return def
	}
	if v == NoStyle {
		return ""
	}
	return v
}

func (r resolver) lookup(key string) (string, bool) {
	if v, ok := r.cfg[key]; ok {
		return v, true
	}
	for _, alias := range aliases[key] {
		if v, ok := r.cfg[alias]; ok {
			return v, true
		}
	}
	return "", false
}

// Resolve computes a palette from cfg. Base keys are resolved first and
// dependent defaults are computed from them afterwards, so the result does
// not depend on the order keys were loaded in.
func Resolve(cfg Config) *Palette {
	r := resolver{cfg: cfg}

	keywordColor := r.get(KeywordColor, "blue")
	keywordStyle := r.get(KeywordStyle, "strong")
	literalColor := r.get(LiteralColor, "green")

	p := &Palette{
		FontSize:      r.get(FontSize, ""),
		Background:    r.get(BackgroundColor, "#CCCCFF"),
		Text:          r.get(TextColor, ""),
		DocBackground: r.get(DocBgColor, "white"),
		DocText:       r.get(DocTextColor, "black"),

		Comment:  Pair{r.get(CommentColor, "#777777"), r.get(CommentStyle, "em")},
		Annotate: Pair{r.get(AnnotateColor, "yellow"), r.get(AnnotateStyle, "")},
		Bracket:  Pair{r.get(BracketColor, "gray"), r.get(BracketStyle, "")},
		Keyword:  Pair{keywordColor, keywordStyle},
		Class:    Pair{r.get(ClassColor, "blue"), r.get(ClassStyle, keywordStyle)},
		Constant: Pair{r.get(ConstantColor, "#009900"), r.get(ConstantStyle, "")},
		Number:   Pair{r.get(NumberColor, literalColor), r.get(NumberStyle, "")},
		String:   Pair{r.get(StringColor, literalColor), r.get(StringStyle, "")},
		Plain:    Pair{"", r.get(PlainStyle, "")},

		AnnotateTagColor: r.get(AnnotateTagColor, "red"),
		AnnotateTag:      r.get(AnnotateTag, "PLEASE READ"),
	}

	p.keywords = map[keywords.Category]Pair{
		keywords.Modifier: {r.get(ModifierColor, "purple"), r.get(ModifierStyle, keywordStyle)},
		keywords.Type:     {r.get(TypeColor, "blue"), r.get(TypeStyle, keywordStyle)},
		keywords.Control:  {r.get(ControlColor, "brown"), r.get(ControlStyle, keywordStyle)},
		keywords.Declare:  {r.get(DeclareColor, "red"), r.get(DeclareStyle, keywordStyle)},
		keywords.Literal:  {literalColor, r.get(LiteralStyle, "")},
		keywords.Other:    {r.get(OtherColor, keywordColor), r.get(OtherStyle, keywordStyle)},
	}

	return p
}

// Values flattens the palette back into a key -> value table, writing
// NoStyle for unstyled keys.
func (p *Palette) Values() map[string]string {
	v := func(s string) string {
		if s == "" {
			return NoStyle
		}
		return s
	}
	kw := func(cat keywords.Category) Pair { return p.KeywordPair(cat) }

	return map[string]string{
		FontSize:         v(p.FontSize),
		BackgroundColor:  v(p.Background),
		TextColor:        v(p.Text),
		DocBgColor:       v(p.DocBackground),
		DocTextColor:     v(p.DocText),
		CommentColor:     v(p.Comment.Color),
		CommentStyle:     v(p.Comment.Style),
		AnnotateColor:    v(p.Annotate.Color),
		AnnotateStyle:    v(p.Annotate.Style),
		BracketColor:     v(p.Bracket.Color),
		BracketStyle:     v(p.Bracket.Style),
		KeywordColor:     v(p.Keyword.Color),
		KeywordStyle:     v(p.Keyword.Style),
		ModifierColor:    v(kw(keywords.Modifier).Color),
		ModifierStyle:    v(kw(keywords.Modifier).Style),
		TypeColor:        v(kw(keywords.Type).Color),
		TypeStyle:        v(kw(keywords.Type).Style),
		ControlColor:     v(kw(keywords.Control).Color),
		ControlStyle:     v(kw(keywords.Control).Style),
		DeclareColor:     v(kw(keywords.Declare).Color),
		DeclareStyle:     v(kw(keywords.Declare).Style),
		LiteralColor:     v(kw(keywords.Literal).Color),
		LiteralStyle:     v(kw(keywords.Literal).Style),
		OtherColor:       v(kw(keywords.Other).Color),
		OtherStyle:       v(kw(keywords.Other).Style),
		ClassColor:       v(p.Class.Color),
		ClassStyle:       v(p.Class.Style),
		ConstantColor:    v(p.Constant.Color),
		ConstantStyle:    v(p.Constant.Style),
		NumberColor:      v(p.Number.Color),
		NumberStyle:      v(p.Number.Style),
		StringColor:      v(p.String.Color),
		StringStyle:      v(p.String.Style),
		PlainStyle:       v(p.Plain.Style),
		AnnotateTagColor: v(p.AnnotateTagColor),
		AnnotateTag:      v(p.AnnotateTag),
	}
}
