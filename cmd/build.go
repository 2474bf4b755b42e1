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
	"context"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/hgnckb/internal/iobuild"
	"github.com/gnames/hgnckb/internal/iofetch"
	"github.com/gnames/hgnckb/pkg/config"
	"github.com/spf13/cobra"
)

type buildFlags struct {
	fetch     bool
	entries   string
	output    string
	reference string
	sqlite    string
}

// getBuildCmd returns the build command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getBuildCmd() *cobra.Command {
	var flags buildFlags

	buildCmd := &cobra.Command{
		Use:   "build",
		Short: "Generate HGNC resource of the knowledge base",
		Long: `Generate the HGNC synonym resource from HGNC entries.

This command:
  1. Optionally downloads fresh HGNC entries (--fetch)
  2. Converts every entry with exactly one UniProt identifier
     into (synonym, identifier, species) records
  3. Removes records already present in the UniProt reference
  4. Sorts records by a normalized synonym
  5. Writes the resource (and an optional SQLite snapshot)

Relative reference and output names are resolved against
paths.kb_dir from the configuration.

Examples:
  # Use files from the configuration
  hgnckb build

  # Download entries first
  hgnckb build --fetch

  # Work with custom locations
  hgnckb build -e entries.tsv -r ref.tsv -o /tmp/hgnc.tsv

  # Also save the result to SQLite
  hgnckb build -s /tmp/hgnc.sqlite`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runBuild(cmd, cfg, flags)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	buildCmd.Flags().BoolVarP(
		&flags.fetch, "fetch", "f", false,
		"download HGNC entries before the build",
	)
	buildCmd.Flags().StringVarP(
		&flags.entries, "entries", "e", "",
		"HGNC entries file",
	)
	buildCmd.Flags().StringVarP(
		&flags.output, "output", "o", "",
		"generated resource file",
	)
	buildCmd.Flags().StringVarP(
		&flags.reference, "reference", "r", "",
		"UniProt reference file",
	)
	buildCmd.Flags().StringVarP(
		&flags.sqlite, "sqlite", "s", "",
		"also write records to this SQLite file",
	)

	return buildCmd
}

func runBuild(cmd *cobra.Command, c *config.Config, flags buildFlags) error {
	ctx := context.Background()

	c.Update(buildOptions(cmd, flags))

	b := iobuild.New(c, iofetch.New(c))
	res, err := b.Build(ctx)
	if err != nil {
		return err
	}

	gn.Info("Processed %s rows, generated %s records, removed %s known pairs",
		humanize.Comma(int64(res.Rows)),
		humanize.Comma(int64(res.Generated)),
		humanize.Comma(int64(res.Generated-res.Written)),
	)
	return nil
}

// buildOptions converts flags set by a user into config options.
func buildOptions(cmd *cobra.Command, flags buildFlags) []config.Option {
	var res []config.Option
	fl := cmd.Flags()
	if fl.Changed("fetch") {
		res = append(res, config.OptWithFetch(flags.fetch))
	}
	if fl.Changed("entries") {
		res = append(res, config.OptPathsEntriesFile(flags.entries))
	}
	if fl.Changed("output") {
		res = append(res, config.OptPathsOutputFile(flags.output))
	}
	if fl.Changed("reference") {
		res = append(res, config.OptPathsReferenceFile(flags.reference))
	}
	if fl.Changed("sqlite") {
		res = append(res, config.OptPathsSQLiteFile(flags.sqlite))
	}
	return res
}
