package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptFetchURL sets the HGNC download endpoint.
// The URL must use http or https scheme.
func OptFetchURL(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidURL("Fetch URL", s) {
			c.Fetch.URL = s
		}
	}
}

// OptFetchTimeoutSec sets the download timeout in seconds.
func OptFetchTimeoutSec(i int) Option {
	return func(c *Config) {
		if isValidInt("Fetch Timeout", i) {
			c.Fetch.TimeoutSec = i
		}
	}
}

// OptPathsKBDir sets the knowledge-base resource directory.
func OptPathsKBDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("KB Directory", s) {
			c.Paths.KBDir = s
		}
	}
}

// OptPathsEntriesFile sets the location of the HGNC entries file.
func OptPathsEntriesFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Entries File", s) {
			c.Paths.EntriesFile = s
		}
	}
}

// OptPathsReferenceFile sets the reference file, relative to KBDir
// unless absolute.
func OptPathsReferenceFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Reference File", s) {
			c.Paths.ReferenceFile = s
		}
	}
}

// OptPathsOutputFile sets the output file, relative to KBDir
// unless absolute.
func OptPathsOutputFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Output File", s) {
			c.Paths.OutputFile = s
		}
	}
}

// OptPathsSQLiteFile sets the SQLite snapshot location.
// Snapshot is not created while the path is empty.
func OptPathsSQLiteFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("SQLite File", s) {
			c.Paths.SQLiteFile = s
		}
	}
}

// OptSpecies sets the species of generated records.
func OptSpecies(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Species", s) {
			c.Species = s
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text", "tint".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptWithFetch sets whether build downloads entries first.
// Runtime-only field - not in ToOptions().
func OptWithFetch(b bool) Option {
	return func(c *Config) {
		c.WithFetch = b
	}
}

// OptHomeDir sets the home directory for config and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
