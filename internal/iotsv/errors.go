package iotsv

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/hgnckb/pkg/errcode"
)

// EntriesFormatError is returned when a row of the HGNC entries file
// cannot be converted to an entry.
func EntriesFormatError(path string, line int, err error) error {
	msg := `Cannot parse HGNC entries file <em>%s</em> at line %d

<em>Possible causes:</em>
  - HGNC changed the set or the order of exported columns
  - The download was interrupted or returned an error page

<em>How to fix:</em>
  1. Inspect the line: <em>sed -n '%dp' %s</em>
  2. Download a fresh copy: <em>hgnckb fetch</em>`

	vars := []any{path, line, line, path}

	return &gn.Error{
		Code: errcode.EntriesFormatError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("bad entries row at %s:%d: %w", path, line, err),
	}
}

// ReferenceFormatError is returned when a row of the reference file has
// fewer columns than synonym, identifier and species.
func ReferenceFormatError(path string, line int, err error) error {
	msg := `Cannot parse reference file <em>%s</em> at line %d

Every row needs at least synonym, identifier and species columns.`

	vars := []any{path, line}

	return &gn.Error{
		Code: errcode.ReferenceFormatError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("bad reference row at %s:%d: %w", path, line, err),
	}
}
