// Package config provides configuration management for hgnckb.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Fetch: url, timeout_sec
//   - Paths: kb_dir, entries_file, reference_file, output_file, sqlite_file
//   - Log: level, format, destination
//   - General: species
//
// Runtime-only fields (CLI flags only):
//   - WithFetch (build command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use HGNCKB_ prefix with underscores for nesting:
//
//	HGNCKB_PATHS_KB_DIR=/data/reach/kb
//	HGNCKB_FETCH_TIMEOUT_SEC=600
//	HGNCKB_LOG_LEVEL=debug
//
// Variables can also be placed in a .env file in the working directory.
package config

import (
	"path/filepath"
	"strings"
)

// Config represents the complete hgnckb configuration.
type Config struct {
	// Fetch contains settings of the HGNC download.
	Fetch FetchConfig `mapstructure:"fetch" yaml:"fetch"`

	// Paths contains locations of input and output files.
	Paths PathsConfig `mapstructure:"paths" yaml:"paths"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// Species is assigned to every generated record. Only reference rows
	// with exactly this species take part in redundancy filtering.
	Species string `mapstructure:"species" yaml:"species"`

	// WithFetch is true if build has to download a fresh entries file
	// before generating terms.
	WithFetch bool `mapstructure:"-" yaml:"-"`

	// HomeDir determines where config and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string `mapstructure:"-" yaml:"-"`
}

// FetchConfig contains settings for downloading HGNC entries.
type FetchConfig struct {
	// URL is the HGNC custom download endpoint, including the trailing '?'.
	URL string `mapstructure:"url" yaml:"url"`

	// TimeoutSec limits the whole download, in seconds.
	TimeoutSec int `mapstructure:"timeout_sec" yaml:"timeout_sec"`
}

// PathsConfig contains locations of the files hgnckb reads and writes.
type PathsConfig struct {
	// KBDir is the knowledge-base resource directory. Relative
	// ReferenceFile and OutputFile are resolved against it.
	KBDir string `mapstructure:"kb_dir" yaml:"kb_dir"`

	// EntriesFile is the HGNC export, written by fetch and read by build.
	// A relative path is resolved against the working directory.
	EntriesFile string `mapstructure:"entries_file" yaml:"entries_file"`

	// ReferenceFile keeps UniProt synonyms already known to the
	// knowledge base.
	ReferenceFile string `mapstructure:"reference_file" yaml:"reference_file"`

	// OutputFile is the generated HGNC resource.
	OutputFile string `mapstructure:"output_file" yaml:"output_file"`

	// SQLiteFile, if not empty, receives a SQLite snapshot of the output.
	SQLiteFile string `mapstructure:"sqlite_file" yaml:"sqlite_file"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Fetch: FetchConfig{
			URL:        HGNCDownloadURL,
			TimeoutSec: 300,
		},
		Paths: PathsConfig{
			KBDir: filepath.Join(
				"src", "main", "resources", "org", "clulab", "reach", "kb",
			),
			EntriesFile:   "hgnc_entries.tsv",
			ReferenceFile: "uniprot-proteins.tsv",
			OutputFile:    "hgnc.tsv",
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		Species: "Human",
	}

	return res
}

// DownloadURL builds the download address of HGNC entries. Columns,
// statuses and parameters are joined with '&' and are not escaped.
func (f FetchConfig) DownloadURL() string {
	var cols, statuses []string
	for _, v := range HGNCColumns {
		cols = append(cols, "col="+v)
	}
	for _, v := range HGNCStatuses {
		statuses = append(statuses, "status="+v)
	}

	res := f.URL
	res += strings.Join(cols, "&") + "&"
	res += strings.Join(statuses, "&") + "&"
	res += strings.Join(HGNCParams, "&")
	return res
}

// ReferencePath returns the location of the reference file.
func (c *Config) ReferencePath() string {
	return c.inKBDir(c.Paths.ReferenceFile)
}

// OutputPath returns the location of the generated resource.
func (c *Config) OutputPath() string {
	return c.inKBDir(c.Paths.OutputFile)
}

func (c *Config) inKBDir(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Paths.KBDir, path)
}
