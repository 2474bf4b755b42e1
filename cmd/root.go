/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/hgnckb/internal/iofs"
	"github.com/gnames/hgnckb/internal/iologger"
	app "github.com/gnames/hgnckb/pkg"
	"github.com/gnames/hgnckb/pkg/config"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// getRootCmd returns the base command with all subcommands attached.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "hgnckb",
		Short:   "hgnckb refreshes the HGNC resource of a knowledge base",
		Long: `hgnckb converts the HGNC gene-nomenclature export into the
synonym-to-UniProt resource of the REACH knowledge base.

The tool provides two commands:
  - fetch: Download a fresh HGNC entries file
  - build: Generate, filter, sort and write hgnc.tsv

Configuration precedence (highest to lowest):
  1. CLI flags (--entries, --output, etc.)
  2. Environment variables (HGNCKB_*), also read from a .env file
  3. Config file (~/.config/hgnckb/config.yaml)
  4. Built-in defaults

Environment Variables:
  Nested fields use underscores (paths.kb_dir → HGNCKB_PATHS_KB_DIR).

  Examples:
    HGNCKB_FETCH_URL                HGNC custom download endpoint
    HGNCKB_FETCH_TIMEOUT_SEC        Download timeout in seconds
    HGNCKB_PATHS_KB_DIR             Knowledge-base resource directory
    HGNCKB_PATHS_ENTRIES_FILE       HGNC entries file
    HGNCKB_PATHS_REFERENCE_FILE     UniProt reference file
    HGNCKB_PATHS_OUTPUT_FILE        Generated resource
    HGNCKB_PATHS_SQLITE_FILE        Optional SQLite snapshot
    HGNCKB_SPECIES                  Species of generated records
    HGNCKB_LOG_LEVEL                Log level (debug/info/warn/error)`,
		PersistentPreRunE: bootstrap,
		RunE:              runRoot,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "hgnckb version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for hgnckb")

	rootCmd.AddCommand(getFetchCmd())
	rootCmd.AddCommand(getBuildCmd())

	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error

	// .env is optional, real environment variables take precedence
	if err = godotenv.Load(); err != nil && !os.IsNotExist(err) {
		gn.Warn("Cannot read <em>.env</em> file: %s", err.Error())
	}

	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog, false); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// Reconfigure logging with user's settings, keeping bootstrap records
	if err = iologger.Init(config.LogDir(cfg.HomeDir), cfg.Log, true); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded", "config_file", config.ConfigFilePath(homeDir))

	return nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	versionFlag(cmd)
	return cmd.Help()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := getRootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables are allowed.
	// These match the fields included in config.ToOptions() - i.e., persistent
	// configuration that can be stored in config.yaml.
	v.SetEnvPrefix("HGNCKB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Fetch configuration
	v.BindEnv("fetch.url", "HGNCKB_FETCH_URL")
	v.BindEnv("fetch.timeout_sec", "HGNCKB_FETCH_TIMEOUT_SEC")

	// Paths configuration
	v.BindEnv("paths.kb_dir", "HGNCKB_PATHS_KB_DIR")
	v.BindEnv("paths.entries_file", "HGNCKB_PATHS_ENTRIES_FILE")
	v.BindEnv("paths.reference_file", "HGNCKB_PATHS_REFERENCE_FILE")
	v.BindEnv("paths.output_file", "HGNCKB_PATHS_OUTPUT_FILE")
	v.BindEnv("paths.sqlite_file", "HGNCKB_PATHS_SQLITE_FILE")

	// Log configuration
	v.BindEnv("log.level", "HGNCKB_LOG_LEVEL")
	v.BindEnv("log.format", "HGNCKB_LOG_FORMAT")
	v.BindEnv("log.destination", "HGNCKB_LOG_DESTINATION")

	// General configuration
	v.BindEnv("species", "HGNCKB_SPECIES")

	v.AutomaticEnv()
}
