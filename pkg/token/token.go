// Package token defines the lexical units produced by the scanner.
package token

import "github.com/arthur-debert/hilite/pkg/keywords"

// Kind identifies the class of a token
type Kind int

const (
	EOF Kind = iota
	PlainChar
	Bracket
	Comment
	Number
	String
	ClassName
	ConstantName
	Keyword
	PlainText
	DocComment
)

var kindNames = [...]string{
	EOF:          "eof",
	PlainChar:    "plain-char",
	Bracket:      "bracket",
	Comment:      "comment",
	Number:       "number",
	String:       "string",
	ClassName:    "class-name",
	ConstantName: "constant-name",
	Keyword:      "keyword",
	PlainText:    "plain-text",
	DocComment:   "doc-comment",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Token is one classified lexical unit. Text is already HTML escaped,
// except for doc comments whose text is never set.
type Token struct {
	Kind Kind
	Text string

	// Category is set only when Kind is Keyword
	Category keywords.Category

	// Annotated is set on comments whose first character is the
	// annotation sentinel
	Annotated bool
}

func (t Token) String() string {
	if t.Kind == Keyword {
		return t.Kind.String() + "(" + t.Category.String() + "):" + t.Text
	}
	return t.Kind.String() + ":" + t.Text
}
