package compose

import "strings"

// Kind discriminates the token union.
type Kind int

const (
	KindDigit Kind = iota
	KindPlus
	KindSeparator
)

// Separator is the layout role of a separator token.
type Separator int

const (
	GroupOpen Separator = iota + 1
	GroupClose
	MinorGap
	MajorGap
	Dash
)

var separatorLaTeX = map[Separator]string{
	GroupOpen:  `\boldsymbol{(}`,
	GroupClose: `\boldsymbol{)}`,
	MinorGap:   `\;`,
	MajorGap:   `\quad`,
	Dash:       `\text{---}`,
}

var separatorNames = map[Separator]string{
	GroupOpen:  "group-open",
	GroupClose: "group-close",
	MinorGap:   "minor-gap",
	MajorGap:   "major-gap",
	Dash:       "dash",
}

// LaTeX returns the markup emitted for the separator.
func (s Separator) LaTeX() string {
	return separatorLaTeX[s]
}

func (s Separator) String() string {
	if name, ok := separatorNames[s]; ok {
		return name
	}
	return "unknown"
}

// Token is one element of the composed stream: a digit with its expression,
// the plus sign with its expression, or a separator.
type Token struct {
	Kind       Kind
	Digit      rune
	Separator  Separator
	Expression string
	// Placeholder and Duplicate mirror the degradations reported by the bank.
	Placeholder bool
	Duplicate   bool
}

// DigitToken builds a digit token.
func DigitToken(d rune, expr string) Token {
	return Token{Kind: KindDigit, Digit: d, Expression: expr}
}

// PlusToken builds the plus-sign token.
func PlusToken(expr string) Token {
	return Token{Kind: KindPlus, Expression: expr}
}

// SeparatorToken builds a separator token.
func SeparatorToken(s Separator) Token {
	return Token{Kind: KindSeparator, Separator: s}
}

// IsSeparator reports whether the token is layout only.
func (t Token) IsSeparator() bool {
	return t.Kind == KindSeparator
}

// Is reports whether the token is the given separator.
func (t Token) Is(s Separator) bool {
	return t.Kind == KindSeparator && t.Separator == s
}

// LaTeX returns the markup for the token.
func (t Token) LaTeX() string {
	if t.IsSeparator() {
		return t.Separator.LaTeX()
	}
	return t.Expression
}

// Value is the literal the token's expression stands for: "+", a digit, or
// "" for separators.
func (t Token) Value() string {
	switch t.Kind {
	case KindPlus:
		return "+"
	case KindDigit:
		return string(t.Digit)
	default:
		return ""
	}
}

// DigitsOf concatenates the digits of the digit tokens in order.
func DigitsOf(tokens []Token) string {
	var b strings.Builder
	for _, t := range tokens {
		if t.Kind == KindDigit {
			b.WriteRune(t.Digit)
		}
	}
	return b.String()
}
