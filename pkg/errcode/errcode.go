package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError
	WriteFileError

	// Logging errors
	CreateLogFileError

	// Fetch errors
	FetchRequestError
	FetchStatusError
	FetchReadBodyError
	FetchWriteError

	// Term generation and filtering errors
	EntriesFormatError
	ReferenceFormatError

	// SQLite snapshot errors
	SQLiteOpenError
	SQLiteWriteError
)
