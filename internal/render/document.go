// Package render turns a composed document into a LaTeX source, rasterizes it
// with the external TeX toolchain and writes the image and verification
// artifacts to the output directory.
package render

import (
	"strings"

	"github.com/Iron-Ham/dialogorithm/internal/compose"
)

var preamble = []string{
	`\documentclass[border=10pt]{standalone}`,
	`\usepackage{amsmath, amssymb, amsfonts, graphicx, xcolor}`,
	`\usepackage[T1]{fontenc}`,
	`\usepackage{helvet}`,
	`\renewcommand{\familydefault}{\sfdefault}`,
	`\begin{document}`,
	`\begin{center}`,
	`\begin{minipage}{0.95\linewidth}`,
	`\centering`,
}

var footer = []string{
	`\end{align*}`,
	`\end{minipage}`,
	`\end{center}`,
	`\end{document}`,
}

// BuildDocument returns the standalone LaTeX source for doc: the escaped
// signature as a heading above an align* block of the wrapped lines.
func BuildDocument(doc *compose.Document) string {
	var b strings.Builder
	for _, l := range preamble {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	b.WriteString(`{\Large \textbf{` + doc.EscapedSignature + `}}\\[0.5cm]`)
	b.WriteByte('\n')
	b.WriteString(`\begin{align*}`)
	b.WriteByte('\n')
	if body := doc.Body(); body != "" {
		b.WriteString(body)
		b.WriteByte('\n')
	}
	for _, l := range footer {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return b.String()
}
