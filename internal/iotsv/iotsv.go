// Package iotsv reads and writes the tab-separated files of the HGNC
// knowledge-base update.
package iotsv

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gnames/gnlib"
	"github.com/gnames/hgnckb/internal/iofs"
	"github.com/gnames/hgnckb/pkg/terms"
)

// referenceFieldsNum is the minimal column number of the reference file.
const referenceFieldsNum = 3

// ReadEntries reads the HGNC entries file, skips its header and calls fn
// for every data row. Any row with a wrong number of columns stops
// reading with an error.
func ReadEntries(path string, fn func(terms.Entry)) error {
	f, err := os.Open(path)
	if err != nil {
		return iofs.ReadFileError(path, err)
	}
	defer f.Close()

	r := newReader(f)

	if _, err = r.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return EntriesFormatError(path, 1, errors.New("header row is missing"))
		}
		return iofs.ReadFileError(path, err)
	}

	var count int
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return iofs.ReadFileError(path, err)
		}

		for i := range row {
			row[i] = gnlib.FixUtf8(row[i])
		}

		entry, err := terms.ParseEntry(row)
		if err != nil {
			return EntriesFormatError(path, r.Line(), err)
		}
		fn(entry)
		count++
	}

	slog.Info("Read HGNC entries", "path", path, "rows", count)
	return nil
}

// ReadReference loads synonym/identifier pairs of the given species from
// a headerless reference file. Columns after the third are ignored.
func ReadReference(path, species string) (*terms.ReferenceSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, iofs.ReadFileError(path, err)
	}
	defer f.Close()

	r := newReader(f)
	res := terms.NewReferenceSet()
	var rows int
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, iofs.ReadFileError(path, err)
		}
		rows++

		if len(row) < referenceFieldsNum {
			err = fmt.Errorf("expected at least %d fields, got %d",
				referenceFieldsNum, len(row))
			return nil, ReferenceFormatError(path, r.Line(), err)
		}

		if row[2] != species {
			continue
		}
		res.Add(row[0], row[1])
	}

	slog.Info("Read reference file",
		"path", path,
		"rows", rows,
		"pairs", res.Len(),
		"species", species,
	)
	return res, nil
}

// WriteRecords replaces the file at path with records, one tab-separated
// line per record and no header. Lines end with "\r\n". Data go to a
// temporary file first, so the previous file survives any failure.
func WriteRecords(path string, records []terms.Record) error {
	if err := iofs.EnsureParentDir(path); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".hgnckb-*.tsv")
	if err != nil {
		return iofs.WriteFileError(path, err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if err = writeRecords(tmp, records); err != nil {
		tmp.Close()
		return iofs.WriteFileError(path, err)
	}
	if err = tmp.Close(); err != nil {
		return iofs.WriteFileError(path, err)
	}
	if err = os.Chmod(tmpPath, 0644); err != nil {
		return iofs.WriteFileError(path, err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return iofs.WriteFileError(path, err)
	}

	slog.Info("Wrote records", "path", path, "records", len(records))
	return nil
}

func writeRecords(w io.Writer, records []terms.Record) error {
	tw := newWriter(w)
	for _, v := range records {
		if err := tw.Write(v.Fields()); err != nil {
			return err
		}
	}
	return tw.Flush()
}
