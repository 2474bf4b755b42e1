package iofetch

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/hgnckb/pkg/errcode"
)

// RequestError is returned when HGNC cannot be reached.
func RequestError(url string, err error) error {
	msg := `Cannot download HGNC entries

<em>URL:</em> %s

<em>How to fix:</em>
  1. Check the network connection
  2. Increase <em>fetch.timeout_sec</em> in config.yaml
  3. Download the file manually and put it to <em>paths.entries_file</em>`

	return &gn.Error{
		Code: errcode.FetchRequestError,
		Msg:  msg,
		Vars: []any{url},
		Err:  fmt.Errorf("GET %s failed: %w", url, err),
	}
}

// StatusError is returned when HGNC responds with a non-2xx status.
func StatusError(url string, status int) error {
	msg := "HGNC download returned status <em>%d</em>"

	return &gn.Error{
		Code: errcode.FetchStatusError,
		Msg:  msg,
		Vars: []any{status},
		Err:  fmt.Errorf("GET %s: unexpected status %d", url, status),
	}
}

// ReadBodyError is returned when the response body cannot be read
// completely.
func ReadBodyError(url string, err error) error {
	msg := "Download of HGNC entries was interrupted"

	return &gn.Error{
		Code: errcode.FetchReadBodyError,
		Msg:  msg,
		Err:  fmt.Errorf("cannot read body of %s: %w", url, err),
	}
}

// WriteError is returned when downloaded entries cannot be saved.
func WriteError(path string, err error) error {
	msg := "Cannot save HGNC entries to <em>%s</em>"

	return &gn.Error{
		Code: errcode.FetchWriteError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("cannot write %s: %w", path, err),
	}
}
