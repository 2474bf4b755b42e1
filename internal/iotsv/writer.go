package iotsv

import (
	"bufio"
	"io"
	"strings"
)

// lineEnd terminates every written row.
const lineEnd = "\r\n"

// needsQuotes lists characters that force a field into quotes.
const needsQuotes = "\t\"\r\n"

// writer saves rows as tab-separated lines. A field is quoted only if it
// contains a tab, a quote or a line break; quotes inside it are doubled.
type writer struct {
	bw *bufio.Writer
}

func newWriter(w io.Writer) *writer {
	return &writer{bw: bufio.NewWriter(w)}
}

func (w *writer) Write(row []string) error {
	for i, v := range row {
		if i > 0 {
			if err := w.bw.WriteByte('\t'); err != nil {
				return err
			}
		}
		if _, err := w.bw.WriteString(quoteField(v)); err != nil {
			return err
		}
	}
	_, err := w.bw.WriteString(lineEnd)
	return err
}

func (w *writer) Flush() error {
	return w.bw.Flush()
}

func quoteField(s string) string {
	if !strings.ContainsAny(s, needsQuotes) {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
