// Package iosqlite stores generated records in a SQLite file, so the
// resource can be inspected with SQL.
package iosqlite

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/gnames/hgnckb/internal/iofs"
	"github.com/gnames/hgnckb/pkg/terms"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGo)
)

const ddl = `
DROP TABLE IF EXISTS terms;
CREATE TABLE terms (
	id INTEGER PRIMARY KEY,
	synonym TEXT NOT NULL,
	identifier TEXT NOT NULL,
	species TEXT NOT NULL,
	sort_key TEXT NOT NULL
);
CREATE INDEX idx_terms_synonym ON terms (synonym);
CREATE INDEX idx_terms_identifier ON terms (identifier);
CREATE INDEX idx_terms_sort_key ON terms (sort_key);
`

const insertQ = `
INSERT INTO terms (id, synonym, identifier, species, sort_key)
VALUES (?, ?, ?, ?, ?)`

// Write replaces the terms table of the SQLite file at path with
// records. Row ids follow the order of records.
func Write(ctx context.Context, path string, records []terms.Record) error {
	if err := iofs.EnsureParentDir(path); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return OpenError(path, err)
	}
	defer db.Close()

	if err = db.PingContext(ctx); err != nil {
		return OpenError(path, err)
	}

	if err = insert(ctx, db, records); err != nil {
		return WriteError(path, err)
	}

	slog.Info("Wrote SQLite snapshot", "path", path, "records", len(records))
	return nil
}

func insert(ctx context.Context, db *sql.DB, records []terms.Record) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, ddl); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, insertQ)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, v := range records {
		_, err = stmt.ExecContext(ctx,
			i+1, v.Synonym, v.Identifier, v.Species,
			terms.NormalizeKey(v.Synonym),
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}
