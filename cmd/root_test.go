package cmd

import (
	"bytes"
	"os"
	"testing"

	"github.com/gnames/hgnckb/internal/iotesting"
	"github.com/gnames/hgnckb/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetRootCmd_Exists verifies getRootCmd returns
// a valid command.
func TestGetRootCmd_Exists(t *testing.T) {
	cmd := getRootCmd()
	require.NotNil(t, cmd, "Root command should exist")
	assert.Equal(t, "hgnckb", cmd.Use,
		"Command name should be hgnckb")
}

// TestGetRootCmd_Subcommands verifies fetch and build are registered.
func TestGetRootCmd_Subcommands(t *testing.T) {
	cmd := getRootCmd()

	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "fetch")
	assert.Contains(t, names, "build")
}

// TestGetRootCmd_VersionFormat verifies version
// output format.
func TestGetRootCmd_VersionFormat(t *testing.T) {
	cmd := getRootCmd()

	// Set a test version
	cmd.Version = "version: v1.2.3\nbuild:   abc123"

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--version"})

	err := cmd.Execute()
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "v1.2.3",
		"Version output should contain version")
	assert.Contains(t, output, "abc123",
		"Version output should contain build")
}

// TestGetRootCmd_ShortVersionFlag verifies
// -V flag works.
func TestGetRootCmd_ShortVersionFlag(t *testing.T) {
	cmd := getRootCmd()
	cmd.Version = "version: v1.2.3\nbuild:   abc123"

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"-V"})

	err := cmd.Execute()
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "v1.2.3",
		"Version output should work with -V flag")
}

// TestGetRootCmd_HelpText verifies help text content.
func TestGetRootCmd_HelpText(t *testing.T) {
	cmd := getRootCmd()

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--help"})

	err := cmd.Execute()
	require.NoError(t, err)

	helpText := buf.String()
	assert.Contains(t, helpText, "hgnckb",
		"Help should mention hgnckb")
	assert.Contains(t, helpText, "HGNC",
		"Help should mention HGNC")
	assert.Contains(t, helpText, "HGNCKB_",
		"Help should list environment variables")
}

// TestBootstrap verifies directories, the config file and
// environment overrides.
func TestBootstrap(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping file system test in short mode")
	}

	home := iotesting.SetupTempHome(t)
	t.Setenv("HGNCKB_SPECIES", "Mouse")
	t.Setenv("HGNCKB_FETCH_TIMEOUT_SEC", "42")
	t.Setenv("HGNCKB_LOG_DESTINATION", "stderr")

	err := bootstrap(getRootCmd(), nil)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	_, err = os.Stat(config.ConfigFilePath(home))
	assert.NoError(t, err, "config.yaml should be created")
	_, err = os.Stat(config.LogDir(home))
	assert.NoError(t, err, "log directory should be created")

	assert.Equal(t, home, cfg.HomeDir)
	assert.Equal(t, "Mouse", cfg.Species)
	assert.Equal(t, 42, cfg.Fetch.TimeoutSec)
	assert.Equal(t, "stderr", cfg.Log.Destination)

	def := config.New()
	assert.Equal(t, def.Paths, cfg.Paths,
		"paths should keep defaults from config.yaml")
}
