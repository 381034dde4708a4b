// Package keywords holds the reserved-word tables and the character and
// identifier shape predicates used by the scanner.
//
// Tables are immutable once built and may be shared by any number of
// concurrent scans.
package keywords

import (
	"sort"
	"unicode"
	"unicode/utf8"
)

// Category is the highlighting class of a reserved word
type Category int

const (
	// None is the zero value, used for tokens that are not keywords
	None Category = iota
	Modifier
	Type
	Control
	Declare
	Literal
	Other
)

// Categories lists the keyword categories in display order
var Categories = []Category{Modifier, Type, Control, Declare, Literal, Other}

// String returns the lowercase name of the category
func (c Category) String() string {
	switch c {
	case Modifier:
		return "modifier"
	case Type:
		return "type"
	case Control:
		return "control"
	case Declare:
		return "declare"
	case Literal:
		return "literal"
	case Other:
		return "other"
	}
	return "none"
}

// Table maps keyword spellings to their category.
type Table struct {
	words map[string]Category
}

// NewTable builds a table from a category -> words listing.
func NewTable(byCategory map[Category][]string) *Table {
	t := &Table{words: make(map[string]Category)}
	for cat, words := range byCategory {
		for _, w := range words {
			t.words[w] = cat
		}
	}
	return t
}

// Lookup returns the category of word. Matching is exact and case-sensitive.
func (t *Table) Lookup(word string) (Category, bool) {
	if t == nil {
		return None, false
	}
	cat, ok := t.words[word]
	return cat, ok
}

// Len returns the number of keywords in the table
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.words)
}

// Words returns the sorted keywords of the given category
func (t *Table) Words(cat Category) []string {
	var words []string
	if t == nil {
		return words
	}
	for w, c := range t.words {
		if c == cat {
			words = append(words, w)
		}
	}
	sort.Strings(words)
	return words
}

var java = NewTable(map[Category][]string{
	Modifier: {
		"abstract", "final", "native", "private", "protected", "public",
		"static", "synchronized", "transient", "volatile",
	},
	Type: {
		"boolean", "byte", "char", "double", "float", "int", "long",
		"short", "void",
	},
	Control: {
		"break", "case", "catch", "continue", "default", "do", "else",
		"finally", "for", "goto", "if", "return", "switch", "throw",
		"try", "while",
	},
	Declare: {
		"class", "const", "extends", "implements", "import", "interface",
		"package", "throws",
	},
	Literal: {"null", "true", "false"},
	Other:   {"instanceof", "new", "super", "this"},
})

// Java returns the shared Java keyword table
func Java() *Table {
	return java
}

// IsIdentifierStart reports whether r can begin an identifier
func IsIdentifierStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_' || unicode.Is(unicode.Sc, r)
}

// IsIdentifierPart reports whether r can continue an identifier
func IsIdentifierPart(r rune) bool {
	return IsIdentifierStart(r) || unicode.IsDigit(r)
}

// IsDigit reports whether r is a decimal digit
func IsDigit(r rune) bool {
	return unicode.IsDigit(r)
}

// IsBracket reports whether r is a round, curly, or square bracket
func IsBracket(r rune) bool {
	switch r {
	case '{', '}', '(', ')', '[', ']':
		return true
	}
	return false
}

// IsQuote reports whether r opens a string
func IsQuote(r rune) bool {
	return r == '\'' || r == '"'
}

// IsConstantLike reports whether word contains at least one letter and no
// lowercase letters, e.g. MAX_SIZE or X.
func IsConstantLike(word string) bool {
	letters := false
	for _, r := range word {
		if !unicode.IsLetter(r) {
			continue
		}
		if unicode.IsLower(r) {
			return false
		}
		letters = true
	}
	return letters
}

// IsClassLike reports whether word starts with an uppercase letter and is
// not constant-like.
func IsClassLike(word string) bool {
	if word == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(word)
	return unicode.IsUpper(r) && !IsConstantLike(word)
}
