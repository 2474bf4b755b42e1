package iosqlite

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/hgnckb/pkg/errcode"
)

// OpenError is returned when the SQLite snapshot cannot be opened.
func OpenError(path string, err error) error {
	msg := "Cannot open SQLite snapshot <em>%s</em>"

	return &gn.Error{
		Code: errcode.SQLiteOpenError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("cannot open sqlite %s: %w", path, err),
	}
}

// WriteError is returned when records cannot be stored in the snapshot.
func WriteError(path string, err error) error {
	msg := "Cannot write records to SQLite snapshot <em>%s</em>"

	return &gn.Error{
		Code: errcode.SQLiteWriteError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("cannot write sqlite %s: %w", path, err),
	}
}
