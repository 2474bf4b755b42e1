// Package hgnckb defines the interfaces of the HGNC knowledge-base
// update. Implementations live in internal/io* packages.
package hgnckb

import (
	"context"
	"time"
)

// Fetcher downloads the HGNC entries file.
type Fetcher interface {
	// Fetch requests the HGNC custom download and saves the response body
	// to the entries file, overwriting it. The file stays untouched if the
	// request fails.
	Fetch(ctx context.Context) error
}

// Builder generates the HGNC resource of the knowledge base.
// Config is provided during construction.
type Builder interface {
	// Build generates records from the entries file, removes records
	// known to the reference file, sorts the rest and writes the output.
	// If fetching is enabled, the entries file is downloaded first.
	Build(ctx context.Context) (*Summary, error)
}

// Summary collects statistics of a Build run.
type Summary struct {
	// Rows is the number of data rows in the entries file.
	Rows int
	// Skipped is the number of rows without exactly one identifier.
	Skipped int
	// Generated is the number of records before filtering.
	Generated int
	// ReferencePairs is the number of distinct pairs of the reference set.
	ReferencePairs int
	// Written is the number of records in the output file.
	Written int
	// OutputPath is the location of the written resource.
	OutputPath string
	// Duration is the time the build took.
	Duration time.Duration
}
