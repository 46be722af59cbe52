package compose

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func digits(s string) []Token {
	out := make([]Token, 0, len(s))
	for _, d := range s {
		out = append(out, DigitToken(d, string(d)))
	}
	return out
}

func TestColumns_GroupIsAtomic(t *testing.T) {
	var tokens []Token
	tokens = append(tokens, SeparatorToken(GroupOpen))
	tokens = append(tokens, digits("555")...)
	tokens = append(tokens, SeparatorToken(GroupClose), SeparatorToken(MinorGap))
	tokens = append(tokens, digits("12")...)

	cols := Columns(tokens)
	assert.Len(t, cols, 3)
	assert.Len(t, cols[0], 6)
	assert.Equal(t, `\boldsymbol{(} 5 5 5 \boldsymbol{)} \;`, cols[0].LaTeX())
}

func TestColumns_GroupWithoutGap(t *testing.T) {
	tokens := []Token{SeparatorToken(GroupOpen)}
	tokens = append(tokens, digits("12")...)
	tokens = append(tokens, SeparatorToken(GroupClose))
	tokens = append(tokens, digits("3")...)

	cols := Columns(tokens)
	assert.Len(t, cols, 2)
	assert.Len(t, cols[0], 4)
}

func TestColumns_UnclosedGroupRunsToEnd(t *testing.T) {
	tokens := append([]Token{SeparatorToken(GroupOpen)}, digits("12")...)
	cols := Columns(tokens)
	assert.Len(t, cols, 1)
	assert.Len(t, cols[0], 3)
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name    string
		tokens  []Token
		perLine int
		want    []string
	}{
		{"empty", nil, 3, nil},
		{"one line", digits("12"), 3, []string{"1 2"}},
		{"exact", digits("123456"), 3, []string{"1 2 3", "4 5 6"}},
		{"remainder", digits("1234567"), 3, []string{"1 2 3", "4 5 6", "7"}},
		{"wider lines", digits("1234567"), 4, []string{"1 2 3 4", "5 6 7"}},
		{"default width", digits("1234"), 0, []string{"1 2 3", "4"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.tokens, tt.perLine)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPack_NeverExceedsWidth(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 40).Draw(t, "columns")
		per := rapid.IntRange(1, 6).Draw(t, "perLine")

		cols := make([]Column, n)
		for i := range cols {
			cols[i] = Column{DigitToken('1', "1")}
		}
		lines := Pack(cols, per)

		total := 0
		for _, line := range lines {
			if len(line) == 0 || len(line) > per {
				t.Fatalf("line with %d columns, limit %d", len(line), per)
			}
			total += len(line)
		}
		if total != n {
			t.Fatalf("packed %d columns, want %d", total, n)
		}
	})
}
