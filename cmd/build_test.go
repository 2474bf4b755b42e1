package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/hgnckb/internal/iotesting"
	"github.com/gnames/hgnckb/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetBuildCmd_Exists verifies getBuildCmd returns
// a valid command.
func TestGetBuildCmd_Exists(t *testing.T) {
	cmd := getBuildCmd()
	require.NotNil(t, cmd, "Build command should exist")
	assert.Equal(t, "build", cmd.Use,
		"Command name should be build")
	assert.NotNil(t, cmd.RunE, "RunE should be set")
	assert.Contains(t, cmd.Long, "UniProt",
		"Long description should mention UniProt")
}

// TestGetBuildCmd_Flags verifies flags and their shorthands.
func TestGetBuildCmd_Flags(t *testing.T) {
	cmd := getBuildCmd()

	tests := []struct {
		name, short, def string
	}{
		{"fetch", "f", "false"},
		{"entries", "e", ""},
		{"output", "o", ""},
		{"reference", "r", ""},
		{"sqlite", "s", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fl := cmd.Flags().Lookup(tt.name)
			require.NotNil(t, fl, "flag should exist")
			assert.Equal(t, tt.short, fl.Shorthand)
			assert.Equal(t, tt.def, fl.DefValue)
		})
	}
}

// TestBuildOptions verifies only changed flags become options.
func TestBuildOptions(t *testing.T) {
	cmd := getBuildCmd()
	require.NoError(t, cmd.Flags().Set("output", "/tmp/out.tsv"))
	require.NoError(t, cmd.Flags().Set("fetch", "true"))

	flags := buildFlags{
		fetch:   true,
		output:  "/tmp/out.tsv",
		entries: "ignored.tsv",
	}
	opts := buildOptions(cmd, flags)
	assert.Len(t, opts, 2)

	c := config.New()
	c.Update(opts)
	assert.True(t, c.WithFetch)
	assert.Equal(t, "/tmp/out.tsv", c.OutputPath())
	assert.Equal(t, config.New().Paths.EntriesFile, c.Paths.EntriesFile,
		"unchanged flag should not override config")
}

// TestRunBuild verifies the build command produces the resource.
func TestRunBuild(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping file system test in short mode")
	}

	c := iotesting.GetTestConfig(t)
	iotesting.WriteEntries(t, c, iotesting.EntriesTSV)
	output := filepath.Join(t.TempDir(), "hgnc.tsv")

	cmd := getBuildCmd()
	require.NoError(t, cmd.Flags().Set("output", output))

	err := runBuild(cmd, c, buildFlags{output: output})
	require.NoError(t, err)

	res, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, iotesting.ExpectedTSV, string(res))

	_, err = os.Stat(filepath.Join(c.Paths.KBDir, "hgnc.tsv"))
	assert.True(t, os.IsNotExist(err),
		"default output should not be written")
}

// TestRunBuild_MissingEntries verifies an error is returned
// when entries file does not exist.
func TestRunBuild_MissingEntries(t *testing.T) {
	dir := t.TempDir()
	cmd := getBuildCmd()
	flags := buildFlags{entries: filepath.Join(dir, "none.tsv")}
	require.NoError(t, cmd.Flags().Set("entries", flags.entries))

	err := runBuild(cmd, config.New(), flags)
	assert.Error(t, err)
}
