package render

import (
	"html"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/arthur-debert/hilite/pkg/keywords"
	"github.com/arthur-debert/hilite/pkg/scanner"
	"github.com/arthur-debert/hilite/pkg/style"
	"github.com/arthur-debert/hilite/pkg/token"
	"github.com/goodsign/monday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderDefaults(t *testing.T) {
	r := New(nil)

	tests := []struct {
		name string
		tok  token.Token
		want string
	}{
		{
			name: "control_keyword",
			tok:  token.Token{Kind: token.Keyword, Text: "if", Category: keywords.Control},
			want: `<span style="color:brown"><strong>if</strong></span>`,
		},
		{
			name: "literal_keyword_has_no_style",
			tok:  token.Token{Kind: token.Keyword, Text: "null", Category: keywords.Literal},
			want: `<span style="color:green">null</span>`,
		},
		{
			name: "comment",
			tok:  token.Token{Kind: token.Comment, Text: "// hi\n"},
			want: "<span style=\"color:#777777\"><em>// hi\n</em></span>",
		},
		{
			name: "annotated_comment",
			tok:  token.Token{Kind: token.Comment, Text: "// note\n", Annotated: true},
			want: "<span style=\"color:yellow\">// note\n</span>",
		},
		{
			name: "number_inherits_literal_color",
			tok:  token.Token{Kind: token.Number, Text: "42"},
			want: `<span style="color:green">42</span>`,
		},
		{
			name: "constant",
			tok:  token.Token{Kind: token.ConstantName, Text: "X"},
			want: `<span style="color:#009900">X</span>`,
		},
		{
			name: "class",
			tok:  token.Token{Kind: token.ClassName, Text: "String"},
			want: `<span style="color:blue"><strong>String</strong></span>`,
		},
		{
			name: "bracket",
			tok:  token.Token{Kind: token.Bracket, Text: "{"},
			want: `<span style="color:gray">{</span>`,
		},
		{
			name: "plain_text_is_bare",
			tok:  token.Token{Kind: token.PlainText, Text: "counter"},
			want: "counter",
		},
		{
			name: "plain_char_as_is",
			tok:  token.Token{Kind: token.PlainChar, Text: "&lt;"},
			want: "&lt;",
		},
		{
			name: "doc_comment_is_empty",
			tok:  token.Token{Kind: token.DocComment},
			want: "",
		},
		{
			name: "eof_is_empty",
			tok:  token.Token{Kind: token.EOF},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Render(tt.tok))
		})
	}
}

func TestRenderNoStyleSentinel(t *testing.T) {
	r := New(style.Resolve(style.Config{
		style.KeywordColor:  style.NoStyle,
		style.ControlColor:  style.NoStyle,
		style.CommentStyle:  style.NoStyle,
		style.CommentColor:  style.NoStyle,
		style.PlainStyle:    "i",
		style.OtherStyle:    style.NoStyle,
		style.LiteralColor:  "orange",
		style.ConstantStyle: "b",
	}))

	assert.Equal(t, "<strong>if</strong>",
		r.Render(token.Token{Kind: token.Keyword, Text: "if", Category: keywords.Control}))
	assert.Equal(t, "new",
		r.Render(token.Token{Kind: token.Keyword, Text: "new", Category: keywords.Other}))
	assert.Equal(t, "/* x */",
		r.Render(token.Token{Kind: token.Comment, Text: "/* x */"}))
	assert.Equal(t, "<i>x</i>",
		r.Render(token.Token{Kind: token.PlainText, Text: "x"}))
	assert.Equal(t, `<span style="color:orange">"s"</span>`,
		r.Render(token.Token{Kind: token.String, Text: `"s"`}))
	assert.Equal(t, `<span style="color:#009900"><b>K</b></span>`,
		r.Render(token.Token{Kind: token.ConstantName, Text: "K"}))
}

func TestWrap(t *testing.T) {
	assert.Equal(t, "x", Wrap("x", style.Pair{}))
	assert.Equal(t, "<em>x</em>", Wrap("x", style.Pair{Style: "em"}))
	assert.Equal(t, `<span style="color:red">x</span>`, Wrap("x", style.Pair{Color: "red"}))
	assert.Equal(t, `<span style="color:red"><em>x</em></span>`, Wrap("x", style.Pair{Color: "red", Style: "em"}))
}

var fixedTime = time.Date(2024, time.March, 4, 9, 30, 0, 0, time.UTC)

func TestPreamble(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		var b strings.Builder
		require.NoError(t, New(nil).Preamble(&b, Document{
			OutputName: "Foo.html",
			InputName:  "Foo.java",
			Stylesheet: "style.css",
		}))
		out := b.String()

		assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>\n"))
		assert.Contains(t, out, "<title>Foo.html</title>")
		assert.Contains(t, out, `<link rel="stylesheet" type="text/css" href="style.css">`)
		assert.Contains(t, out, `<body style="background-color:#CCCCFF">`)
		assert.Contains(t, out, "<tt>Foo.java</tt>")
		assert.True(t, strings.HasSuffix(out, "<pre>\n"))
	})

	t.Run("all_attributes", func(t *testing.T) {
		r := New(style.Resolve(style.Config{
			style.BackgroundColor: "white",
			style.TextColor:       "black",
			style.FontSize:        "12pt",
		}))
		var b strings.Builder
		require.NoError(t, r.Preamble(&b, Document{OutputName: "a.html", InputName: "a"}))
		assert.Contains(t, b.String(), `<body style="background-color:white;color:black;font-size:12pt">`)
		assert.NotContains(t, b.String(), "stylesheet")
	})

	t.Run("no_attributes", func(t *testing.T) {
		r := New(style.Resolve(style.Config{style.BackgroundColor: style.NoStyle}))
		var b strings.Builder
		require.NoError(t, r.Preamble(&b, Document{OutputName: "a.html", InputName: "a"}))
		assert.Contains(t, b.String(), "<body>\n")
	})

	t.Run("names_are_escaped", func(t *testing.T) {
		var b strings.Builder
		require.NoError(t, New(nil).Preamble(&b, Document{OutputName: "a<b>.html", InputName: "a&b"}))
		assert.Contains(t, b.String(), "<title>a&lt;b&gt;.html</title>")
		assert.Contains(t, b.String(), "<tt>a&amp;b</tt>")
	})
}

func TestPostamble(t *testing.T) {
	var b strings.Builder
	require.NoError(t, New(nil).Postamble(&b, Document{InputName: "Foo.java", Now: fixedTime}))
	out := b.String()

	assert.True(t, strings.HasPrefix(out, "\n</pre>\n<hr>\n"))
	assert.Contains(t, out, "Monday 4 March 2024, 09:30")
	assert.Contains(t, out, "<kbd>Foo.java</kbd>")
	assert.True(t, strings.HasSuffix(out, "</html>\n"))
}

func TestTimestampLocale(t *testing.T) {
	fr := Timestamp(fixedTime, "fr")
	assert.Contains(t, fr, "lundi")
	assert.Contains(t, fr, "mars")
	assert.Contains(t, fr, "2024, 09:30")
	assert.Equal(t, "Monday 4 March 2024, 09:30", Timestamp(fixedTime, ""))
}

func TestLocale(t *testing.T) {
	tests := []struct {
		name string
		want monday.Locale
	}{
		{"", monday.LocaleEnUS},
		{"fr", monday.LocaleFrFR},
		{"fr-CA", monday.LocaleFrCA},
		{"de_AT", monday.LocaleDeDE},
		{"pt_BR", monday.LocalePtBR},
		{"xx_YY", monday.LocaleEnUS},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Locale(tt.name))
		})
	}
}

var markup = regexp.MustCompile(`<[^>]*>`)

// Removing every tag from the rendered stream and unescaping it gives the
// source back for input without comments or strings.
func TestMarkupStripRoundTrip(t *testing.T) {
	inputs := []string{
		"public static int max(int a, int b) { return a > b ? a : b; }\n",
		"if (X>1) { y = MAX_VALUE & 0xFF; }",
		"List<String> names = new ArrayList<>();\n\tnames.add(null);",
		"x = a / b;",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			var out strings.Builder
			s := scanner.New(strings.NewReader(input), &out, scanner.Options{})
			r := New(nil)
			for {
				tok, err := s.Next()
				require.NoError(t, err)
				if tok.Kind == token.EOF {
					break
				}
				out.WriteString(r.Render(tok))
			}

			assert.Equal(t, input, html.UnescapeString(markup.ReplaceAllString(out.String(), "")))
		})
	}
}
