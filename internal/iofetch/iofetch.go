// Package iofetch implements the Fetcher interface that downloads HGNC
// entries over HTTP.
package iofetch

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/hgnckb/internal/iofs"
	"github.com/gnames/hgnckb/pkg/config"
	"github.com/gnames/hgnckb/pkg/hgnckb"
	"golang.org/x/text/encoding/charmap"
)

type fetcher struct {
	cfg    *config.Config
	client *http.Client
}

// New creates a Fetcher that saves HGNC entries to cfg.Paths.EntriesFile.
func New(cfg *config.Config) hgnckb.Fetcher {
	res := fetcher{
		cfg: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.Fetch.TimeoutSec) * time.Second,
		},
	}
	return &res
}

// Fetch downloads HGNC entries. Nothing is written unless the whole body
// was received with a 2xx status.
func (f *fetcher) Fetch(ctx context.Context) error {
	startTime := time.Now()
	url := f.cfg.Fetch.DownloadURL()
	path := f.cfg.Paths.EntriesFile

	slog.Info("Downloading HGNC entries", "url", url)
	gn.Info("Downloading HGNC entries from <em>%s</em>", f.cfg.Fetch.URL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return RequestError(url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return RequestError(url, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			slog.Warn("Failed to close response body", "error", err)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		slog.Error("HGNC download failed", "url", url, "status", resp.StatusCode)
		return StatusError(url, resp.StatusCode)
	}

	body, err := readBody(resp)
	if err != nil {
		return ReadBodyError(url, err)
	}

	body, err = toUTF8(body)
	if err != nil {
		return ReadBodyError(url, err)
	}

	if err = save(path, body); err != nil {
		return err
	}

	dur := time.Since(startTime)
	slog.Info("HGNC entries saved",
		"path", path,
		"status", resp.StatusCode,
		"bytes", len(body),
		"duration", gnfmt.TimeString(dur.Seconds()),
	)
	gn.Info("Saved %s bytes to <em>%s</em> in %s",
		humanize.Comma(int64(len(body))), path,
		gnfmt.TimeString(dur.Seconds()),
	)
	return nil
}

func readBody(resp *http.Response) ([]byte, error) {
	bar := pb.Full.Start64(max(resp.ContentLength, 0))
	bar.Set(pb.Bytes, true)
	bar.Set(pb.CleanOnFinish, true)
	bar.Set("prefix", "HGNC entries ")
	defer bar.Finish()

	return io.ReadAll(bar.NewProxyReader(resp.Body))
}

// toUTF8 converts ISO-8859-1 input to UTF-8. Valid UTF-8 is returned
// as is.
func toUTF8(body []byte) ([]byte, error) {
	if utf8.Valid(body) {
		return body, nil
	}
	slog.Warn("HGNC entries are not valid UTF-8, decoding as ISO-8859-1")
	return charmap.ISO8859_1.NewDecoder().Bytes(body)
}

// save replaces the entries file through a temporary file in the same
// directory.
func save(path string, body []byte) error {
	if err := iofs.EnsureParentDir(path); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".hgnckb-entries-*")
	if err != nil {
		return WriteError(path, err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err = io.Copy(tmp, bytes.NewReader(body)); err != nil {
		tmp.Close()
		return WriteError(path, err)
	}
	if err = tmp.Close(); err != nil {
		return WriteError(path, err)
	}
	if err = os.Chmod(tmpPath, 0644); err != nil {
		return WriteError(path, err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return WriteError(path, err)
	}
	return nil
}
