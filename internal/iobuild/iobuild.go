// Package iobuild implements the Builder interface. It runs the HGNC
// knowledge-base update: optional download, term generation, redundancy
// filtering, sorting and writing of the resource.
package iobuild

import (
	"context"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/hgnckb/internal/iosqlite"
	"github.com/gnames/hgnckb/internal/iotsv"
	"github.com/gnames/hgnckb/pkg/config"
	"github.com/gnames/hgnckb/pkg/hgnckb"
	"github.com/gnames/hgnckb/pkg/terms"
)

type builder struct {
	cfg     *config.Config
	fetcher hgnckb.Fetcher
}

// New creates a Builder. The fetcher is used only if cfg.WithFetch is
// true.
func New(cfg *config.Config, f hgnckb.Fetcher) hgnckb.Builder {
	return &builder{cfg: cfg, fetcher: f}
}

// Build runs all phases in sequence and stops at the first error. The
// output file is replaced only after all records are ready.
func (b *builder) Build(ctx context.Context) (*hgnckb.Summary, error) {
	startTime := time.Now()
	slog.Info("Starting HGNC resource build",
		"entries", b.cfg.Paths.EntriesFile,
		"reference", b.cfg.ReferencePath(),
		"output", b.cfg.OutputPath(),
		"with_fetch", b.cfg.WithFetch,
	)

	if b.cfg.WithFetch {
		if err := b.fetcher.Fetch(ctx); err != nil {
			return nil, err
		}
	}

	gen, err := b.generate()
	if err != nil {
		return nil, err
	}
	res := hgnckb.Summary{
		Rows:       gen.Rows(),
		Skipped:    gen.Skipped(),
		Generated:  len(gen.Records()),
		OutputPath: b.cfg.OutputPath(),
	}

	recs, err := b.filter(gen.Records())
	if err != nil {
		return nil, err
	}
	res.ReferencePairs = recs.pairs

	terms.Sort(recs.records)

	if err = iotsv.WriteRecords(res.OutputPath, recs.records); err != nil {
		return nil, err
	}
	res.Written = len(recs.records)

	if path := b.cfg.Paths.SQLiteFile; path != "" {
		if err = iosqlite.Write(ctx, path, recs.records); err != nil {
			return nil, err
		}
		gn.Info("SQLite snapshot is saved to <em>%s</em>", path)
	}

	res.Duration = time.Since(startTime)
	slog.Info("HGNC resource build complete",
		"rows", res.Rows,
		"skipped", res.Skipped,
		"generated", res.Generated,
		"written", res.Written,
		"duration", gnfmt.TimeString(res.Duration.Seconds()),
	)
	gn.Info("Wrote %s entries to <em>%s</em> in <em>%s</em>",
		humanize.Comma(int64(res.Written)),
		res.OutputPath,
		gnfmt.TimeString(res.Duration.Seconds()),
	)

	return &res, nil
}

func (b *builder) generate() (*terms.Generator, error) {
	gen := terms.NewGenerator(b.cfg.Species)
	err := iotsv.ReadEntries(b.cfg.Paths.EntriesFile, func(e terms.Entry) {
		gen.Add(e)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Generated HGNC terms",
		"records", len(gen.Records()),
		"skipped_rows", gen.Skipped(),
	)
	gn.Info("Found a total of %s entries and skipped %s rows",
		humanize.Comma(int64(len(gen.Records()))),
		humanize.Comma(int64(gen.Skipped())),
	)
	return gen, nil
}

type filtered struct {
	records []terms.Record
	pairs   int
}

func (b *builder) filter(recs []terms.Record) (filtered, error) {
	var res filtered
	gn.Info("Filtering %s entries from HGNC",
		humanize.Comma(int64(len(recs))))

	set, err := iotsv.ReadReference(b.cfg.ReferencePath(), b.cfg.Species)
	if err != nil {
		return res, err
	}

	res.records = terms.Filter(recs, set)
	res.pairs = set.Len()

	slog.Info("Filtered HGNC terms",
		"before", len(recs),
		"after", len(res.records),
		"reference_pairs", res.pairs,
	)
	gn.Info("Filtered to %s entries that aren't in UniProt",
		humanize.Comma(int64(len(res.records))))
	return res, nil
}
