// Package iotesting provides shared fixtures for tests that work with
// HGNC entries and UniProt reference files.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/hgnckb/pkg/config"
)

// EntriesTSV is a small HGNC export. Two of its four rows are skipped:
// one has two identifiers, another has none.
const EntriesTSV = "HGNC ID\tApproved symbol\tApproved name\tStatus\t" +
	"Alias symbols\tPrevious symbols\tUniProt ID(supplied by UniProt)\n" +
	"HGNC:1\tABC\tProtein ABC\tApproved\tXYZ, PQR\tOLD1\tP12345\n" +
	"HGNC:2\tDEF\tProtein DEF\tApproved\tDEF1\t\tP1, P2\n" +
	"HGNC:3\tα-Protein1\tprotein one\tApproved\t\t\tQ00001\n" +
	"HGNC:4\tNOID\tno identifier\tApproved\t\t\t\n"

// ReferenceTSV removes two of the records generated from EntriesTSV.
// The Mouse row does not match the Human records.
const ReferenceTSV = "ABC\tP12345\tHuman\tgene\n" +
	"XYZ\tP12345\tMouse\tgene\n" +
	"protein one\tQ00001\tHuman\tprotein\textra\n"

// ExpectedTSV is the resource built from EntriesTSV and ReferenceTSV.
const ExpectedTSV = "OLD1\tP12345\tHuman\r\n" +
	"PQR\tP12345\tHuman\r\n" +
	"α-Protein1\tQ00001\tHuman\r\n" +
	"Protein ABC\tP12345\tHuman\r\n" +
	"XYZ\tP12345\tHuman\r\n"

// GetTestConfig returns a configuration that keeps all files inside a
// temporary directory. The reference file is written to the kb
// directory, the entries file is not created.
//
// Usage:
//
//	func TestSomething(t *testing.T) {
//	    cfg := iotesting.GetTestConfig(t)
//	    iotesting.WriteEntries(t, cfg, iotesting.EntriesTSV)
//	    // ... build with cfg
//	}
func GetTestConfig(t *testing.T) *config.Config {
	t.Helper()

	dir := t.TempDir()
	kbDir := filepath.Join(dir, "kb")
	if err := os.MkdirAll(kbDir, 0755); err != nil {
		t.Fatalf("Failed to create kb dir: %v", err)
	}

	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptPathsKBDir(kbDir),
		config.OptPathsEntriesFile(filepath.Join(dir, "hgnc_entries.tsv")),
	})

	WriteFile(t, cfg.ReferencePath(), ReferenceTSV)
	return cfg
}

// WriteEntries saves content to the entries file of cfg.
func WriteEntries(t *testing.T, cfg *config.Config, content string) {
	t.Helper()
	WriteFile(t, cfg.Paths.EntriesFile, content)
}

// WriteFile saves content to path or fails the test.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()

	err := os.WriteFile(path, []byte(content), 0644)
	if err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

// SetupTempHome points HOME to a temporary directory, so config and log
// files of a test never touch the real ~/.config/hgnckb.
//
// Returns the absolute path to the temporary home directory.
func SetupTempHome(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}
