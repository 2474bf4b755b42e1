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
	"log/slog"

	"github.com/gnames/gn"
	"github.com/gnames/hgnckb/internal/iofetch"
	"github.com/gnames/hgnckb/pkg/config"
	"github.com/spf13/cobra"
)

// getFetchCmd returns the fetch command.
func getFetchCmd() *cobra.Command {
	var entries string

	fetchCmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download HGNC entries",
		Long: `Download approved HGNC entries from the genenames.org custom
download service and save them to the entries file.

The previous entries file is replaced only if the download succeeds.

Examples:
  # Download to the configured entries file
  hgnckb fetch

  # Download to a different place
  hgnckb fetch -e /tmp/hgnc_entries.tsv`,
		Aliases: []string{"download"},
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runFetch(cmd, cfg, entries)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	fetchCmd.Flags().StringVarP(
		&entries, "entries", "e", "",
		"save HGNC entries to this file",
	)

	return fetchCmd
}

func runFetch(cmd *cobra.Command, c *config.Config, entries string) error {
	ctx := context.Background()

	if cmd.Flags().Changed("entries") {
		c.Update([]config.Option{config.OptPathsEntriesFile(entries)})
	}

	slog.Info("Fetching HGNC entries", "entries", c.Paths.EntriesFile)
	return iofetch.New(c).Fetch(ctx)
}
