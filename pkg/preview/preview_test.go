package preview

import (
	"strings"
	"testing"

	"github.com/alecthomas/chroma/v2"
	"github.com/arthur-debert/hilite/pkg/keywords"
	"github.com/arthur-debert/hilite/pkg/style"
	"github.com/arthur-debert/hilite/pkg/token"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const source = `/** Adds. @param a first */
int add(int a, int b) {
    // $ check overflow
    return a + b / 2; // "x" < y
}
`

func TestRenderPlainKeepsSource(t *testing.T) {
	var out strings.Builder
	err := Render(&out, strings.NewReader(source), Options{Formatter: "noop"})
	require.NoError(t, err)
	assert.Equal(t, source, out.String())
}

func TestRenderAnnotation(t *testing.T) {
	var out strings.Builder
	err := Render(&out, strings.NewReader("// $ note\nx"), Options{
		Formatter:    "noop",
		AnnotateChar: '$',
		Palette:      style.Resolve(style.Config{style.AnnotateTag: "NB"}),
	})
	require.NoError(t, err)
	assert.Equal(t, "// [NB] note\nx", out.String())
}

func TestRenderTrueColor(t *testing.T) {
	var out strings.Builder
	err := Render(&out, strings.NewReader("return 1;"), Options{Formatter: "terminal16m"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "\x1b[")
	assert.Contains(t, out.String(), "return")
}

func TestRenderUnterminated(t *testing.T) {
	var out strings.Builder
	err := Render(&out, strings.NewReader(`x = "open`), Options{Formatter: "noop"})
	assert.Error(t, err)
}

func TestTokensOrder(t *testing.T) {
	tokens, err := Tokens(strings.NewReader("a / b"), style.Resolve(nil), Options{})
	require.NoError(t, err)

	var values []string
	for _, tok := range tokens {
		values = append(values, tok.Value)
	}
	assert.Equal(t, []string{"a", " ", "/", " ", "b"}, values)
	assert.Equal(t, chroma.Name, tokens[0].Type)
}

func TestTokenType(t *testing.T) {
	tests := []struct {
		name string
		tok  token.Token
		want chroma.TokenType
	}{
		{"modifier", token.Token{Kind: token.Keyword, Category: keywords.Modifier}, chroma.KeywordReserved},
		{"type", token.Token{Kind: token.Keyword, Category: keywords.Type}, chroma.KeywordType},
		{"control", token.Token{Kind: token.Keyword, Category: keywords.Control}, chroma.Keyword},
		{"declare", token.Token{Kind: token.Keyword, Category: keywords.Declare}, chroma.KeywordDeclaration},
		{"literal", token.Token{Kind: token.Keyword, Category: keywords.Literal}, chroma.KeywordConstant},
		{"other", token.Token{Kind: token.Keyword, Category: keywords.Other}, chroma.KeywordPseudo},
		{"class", token.Token{Kind: token.ClassName}, chroma.NameClass},
		{"constant", token.Token{Kind: token.ConstantName}, chroma.NameConstant},
		{"number", token.Token{Kind: token.Number}, chroma.LiteralNumberInteger},
		{"string", token.Token{Kind: token.String}, chroma.LiteralString},
		{"comment", token.Token{Kind: token.Comment}, chroma.Comment},
		{"annotated", token.Token{Kind: token.Comment, Annotated: true}, chroma.CommentSpecial},
		{"bracket", token.Token{Kind: token.Bracket}, chroma.Punctuation},
		{"plain_text", token.Token{Kind: token.PlainText}, chroma.Name},
		{"plain_char", token.Token{Kind: token.PlainChar}, chroma.Text},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TokenType(tt.tok))
		})
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"red", "#ff0000"},
		{"Navy", "#000080"},
		{"#CCCCFF", "#CCCCFF"},
		{"#abc", "#aabbcc"},
		{"#zzz", ""},
		{"#abcd", ""},
		{"notacolour", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Hex(tt.in))
		})
	}
}

func TestEntry(t *testing.T) {
	assert.Equal(t, "bold #ff0000", Entry(style.Pair{Color: "red", Style: "strong"}))
	assert.Equal(t, "italic", Entry(style.Pair{Style: "em"}))
	assert.Equal(t, "underline #000080", Entry(style.Pair{Color: "navy", Style: "u"}))
	assert.Equal(t, "", Entry(style.Pair{}))
	assert.Equal(t, "#008000", Entry(style.Pair{Color: "green", Style: "tt"}))
}

func TestStyle(t *testing.T) {
	p := style.Resolve(style.Config{
		style.CommentColor: "green",
		style.StringColor:  style.NoStyle,
		style.StringStyle:  style.NoStyle,
	})

	s, err := Style(p)
	require.NoError(t, err)

	assert.Equal(t, "#008000", s.Get(chroma.Comment).Colour.String())
	assert.False(t, s.Has(chroma.LiteralString))
}

func TestFormatterName(t *testing.T) {
	assert.Equal(t, "terminal16m", FormatterName(termenv.TrueColor))
	assert.Equal(t, "terminal256", FormatterName(termenv.ANSI256))
	assert.Equal(t, "terminal16", FormatterName(termenv.ANSI))
	assert.Equal(t, "noop", FormatterName(termenv.Ascii))
}
