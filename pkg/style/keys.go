package style

// KeyInfo documents one style key
type KeyInfo struct {
	Key         string
	Default     string
	Description string
}

var keyInfos = []KeyInfo{
	{FontSize, "none", "font size of the document body"},
	{BackgroundColor, "#CCCCFF", "page background colour"},
	{TextColor, "none", "default text colour"},
	{DocBgColor, "white", "background of formatted doc comments"},
	{DocTextColor, "black", "text colour of formatted doc comments"},
	{CommentColor, "#777777", "comment colour"},
	{CommentStyle, "em", "comment markup"},
	{AnnotateColor, "yellow", "annotation comment colour"},
	{AnnotateStyle, "none", "annotation comment markup"},
	{AnnotateTagColor, "red", "colour of the annotation flag"},
	{AnnotateTag, "PLEASE READ", "text of the annotation flag"},
	{BracketColor, "gray", "bracket colour"},
	{BracketStyle, "none", "bracket markup"},
	{KeywordColor, "blue", "keyword colour"},
	{KeywordStyle, "strong", "keyword markup"},
	{ModifierColor, "purple", "modifier keyword colour"},
	{ModifierStyle, KeywordStyle, "modifier keyword markup"},
	{TypeColor, "blue", "type keyword colour"},
	{TypeStyle, KeywordStyle, "type keyword markup"},
	{ControlColor, "brown", "control keyword colour"},
	{ControlStyle, KeywordStyle, "control keyword markup"},
	{DeclareColor, "red", "declaration keyword colour"},
	{DeclareStyle, KeywordStyle, "declaration keyword markup"},
	{LiteralColor, "green", "literal keyword colour"},
	{LiteralStyle, "none", "literal keyword markup"},
	{OtherColor, KeywordColor, "other keyword colour"},
	{OtherStyle, KeywordStyle, "other keyword markup"},
	{ClassColor, "blue", "class name colour"},
	{ClassStyle, KeywordStyle, "class name markup"},
	{ConstantColor, "#009900", "constant name colour"},
	{ConstantStyle, "none", "constant name markup"},
	{NumberColor, LiteralColor, "number colour"},
	{NumberStyle, "none", "number markup"},
	{StringColor, LiteralColor, "string colour"},
	{StringStyle, "none", "string markup"},
	{PlainStyle, "none", "identifier markup"},
}

// Keys returns the documented style keys in display order
func Keys() []KeyInfo {
	out := make([]KeyInfo, len(keyInfos))
	copy(out, keyInfos)
	return out
}

// IsKey reports whether key is a known style key or legacy alias
func IsKey(key string) bool {
	for _, k := range keyInfos {
		if k.Key == key {
			return true
		}
	}
	for _, names := range aliases {
		for _, n := range names {
			if n == key {
				return true
			}
		}
	}
	return false
}
