package iotsv

import (
	"bufio"
	"errors"
	"io"
)

type parseState int

const (
	startRecord parseState = iota
	startField
	inField
	inQuotedField
	quoteInQuotedField
)

// reader splits tab-separated text into rows.
//
// A field that starts with '"' is quoted: tabs and line breaks inside it
// belong to the field and '""' stands for one quote. Text that follows the
// closing quote is appended to the field, so '"quoted" name' becomes
// 'quoted name'. Quotes anywhere else are ordinary characters. Line breaks
// ("\n", "\r\n" or "\r") are read as "\n". Empty lines are skipped.
type reader struct {
	br *bufio.Reader

	// line is the number of line breaks consumed so far.
	line int

	// recordLine is the line where the last returned row starts.
	recordLine int
}

func newReader(r io.Reader) *reader {
	return &reader{br: bufio.NewReader(r)}
}

// Read returns the next row or io.EOF when the input is exhausted.
func (r *reader) Read() ([]string, error) {
	for {
		row, err := r.readRecord()
		if err != nil {
			return nil, err
		}
		if row != nil {
			return row, nil
		}
	}
}

// Line returns the line number where the last row returned by Read
// starts.
func (r *reader) Line() int {
	return r.recordLine
}

// readRecord returns nil row and nil error for an empty line.
func (r *reader) readRecord() ([]string, error) {
	var (
		row   []string
		field []byte
		state = startRecord
	)
	r.recordLine = r.line + 1

	saveField := func() {
		row = append(row, string(field))
		field = field[:0]
	}

	for {
		c, err := r.readByte()
		if errors.Is(err, io.EOF) {
			if state == startRecord {
				return nil, io.EOF
			}
			saveField()
			return row, nil
		}
		if err != nil {
			return nil, err
		}

		switch state {
		case startRecord, startField:
			switch c {
			case '\n':
				if state == startRecord {
					return nil, nil
				}
				saveField()
				return row, nil
			case '\t':
				saveField()
				state = startField
			case '"':
				state = inQuotedField
			default:
				field = append(field, c)
				state = inField
			}
		case inField:
			switch c {
			case '\n':
				saveField()
				return row, nil
			case '\t':
				saveField()
				state = startField
			default:
				field = append(field, c)
			}
		case inQuotedField:
			if c == '"' {
				state = quoteInQuotedField
				continue
			}
			field = append(field, c)
		case quoteInQuotedField:
			switch c {
			case '"':
				field = append(field, c)
				state = inQuotedField
			case '\n':
				saveField()
				return row, nil
			case '\t':
				saveField()
				state = startField
			default:
				field = append(field, c)
				state = inField
			}
		}
	}
}

// readByte returns the next byte with every line break turned into '\n'.
func (r *reader) readByte() (byte, error) {
	c, err := r.br.ReadByte()
	if err != nil {
		return 0, err
	}
	if c == '\r' {
		next, err := r.br.Peek(1)
		if err == nil && next[0] == '\n' {
			_, _ = r.br.ReadByte()
		}
		c = '\n'
	}
	if c == '\n' {
		r.line++
	}
	return c, nil
}
