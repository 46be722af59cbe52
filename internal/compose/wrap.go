package compose

import "strings"

// DefaultLineColumns is the number of columns packed into one output line.
const DefaultLineColumns = 3

// Column is an atomic layout unit. A bracketed group together with the minor
// gap that follows it forms one column; every other token is its own column.
type Column []Token

// LaTeX joins the column's tokens with spaces.
func (c Column) LaTeX() string {
	parts := make([]string, len(c))
	for i, t := range c {
		parts[i] = t.LaTeX()
	}
	return strings.Join(parts, " ")
}

// Columns is the first wrapping pass: it groups tokens into columns.
func Columns(tokens []Token) []Column {
	var cols []Column
	for i := 0; i < len(tokens); {
		if !tokens[i].Is(GroupOpen) {
			cols = append(cols, Column{tokens[i]})
			i++
			continue
		}

		j := i + 1
		for j < len(tokens) && !tokens[j-1].Is(GroupClose) {
			j++
		}
		if j < len(tokens) && tokens[j-1].Is(GroupClose) && tokens[j].Is(MinorGap) {
			j++
		}
		cols = append(cols, Column(tokens[i:j:j]))
		i = j
	}
	return cols
}

// Pack is the second wrapping pass: it fills lines with at most perLine
// columns each. perLine below 1 means DefaultLineColumns.
func Pack(cols []Column, perLine int) [][]Column {
	if perLine < 1 {
		perLine = DefaultLineColumns
	}
	var lines [][]Column
	for start := 0; start < len(cols); start += perLine {
		end := min(start+perLine, len(cols))
		lines = append(lines, cols[start:end:end])
	}
	return lines
}

// Wrap groups and packs tokens, returning the LaTeX of each line.
func Wrap(tokens []Token, perLine int) []string {
	packed := Pack(Columns(tokens), perLine)
	lines := make([]string, len(packed))
	for i, line := range packed {
		parts := make([]string, len(line))
		for j, col := range line {
			parts[j] = col.LaTeX()
		}
		lines[i] = strings.Join(parts, " ")
	}
	return lines
}

// AlignBody renders lines as rows of an align* environment.
func AlignBody(lines []string) string {
	rows := make([]string, len(lines))
	for i, l := range lines {
		rows[i] = "& " + l
	}
	return strings.Join(rows, " \\\\\n")
}
