package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"

	_ "modernc.org/sqlite" // SQLite driver (pure Go)

	"github.com/MerzoukeMansouri/adeo-mozaic-mcp/pkg/token"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS tokens (
	id            INTEGER PRIMARY KEY,
	category      TEXT NOT NULL,
	subcategory   TEXT,
	name          TEXT NOT NULL,
	path          TEXT NOT NULL,
	css_variable  TEXT NOT NULL,
	scss_variable TEXT NOT NULL,
	value_raw     TEXT NOT NULL,
	value_number  REAL,
	value_unit    TEXT,
	value_computed TEXT,
	properties    TEXT,
	source_file   TEXT,
	UNIQUE (category, path)
);

CREATE TABLE IF NOT EXISTS components (
	name        TEXT PRIMARY KEY,
	description TEXT NOT NULL DEFAULT '',
	tag         TEXT,
	import_path TEXT,
	props       TEXT NOT NULL DEFAULT '[]'
);

CREATE TABLE IF NOT EXISTS utilities (
	class_name TEXT PRIMARY KEY,
	property   TEXT NOT NULL,
	value      TEXT NOT NULL
);

CREATE VIRTUAL TABLE IF NOT EXISTS docs USING fts5(
	title, path UNINDEXED, category UNINDEXED, body
);

CREATE VIRTUAL TABLE IF NOT EXISTS icons USING fts5(
	name, base_name UNINDEXED, type UNINDEXED, size UNINDEXED,
	view_box UNINDEXED, paths UNINDEXED
);
`

// BuildData is everything the offline build pass writes into the store.
type BuildData struct {
	Tokens     []token.Token
	Components []Component
	Utilities  []Utility
	Docs       []DocRecord
	Icons      []IconRow
}

// Build creates (or replaces) the database at path and writes data in a
// single transaction. This is the only write path; the running server opens
// the result read-only.
func Build(ctx context.Context, path string, data BuildData) error {
	if path != ":memory:" {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove stale database: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("failed to create database at %s: %w", path, err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := insertTokens(ctx, tx, data.Tokens); err != nil {
		return err
	}
	if err := insertComponents(ctx, tx, data.Components); err != nil {
		return err
	}
	if err := insertUtilities(ctx, tx, data.Utilities); err != nil {
		return err
	}
	if err := insertDocs(ctx, tx, data.Docs); err != nil {
		return err
	}
	if err := insertIcons(ctx, tx, data.Icons); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit build transaction: %w", err)
	}
	return nil
}

func insertTokens(ctx context.Context, tx *sql.Tx, toks []token.Token) error {
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO tokens (category, subcategory, name, path, css_variable,
		 scss_variable, value_raw, value_number, value_unit, value_computed,
		 properties, source_file)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare token insert: %w", err)
	}
	defer stmt.Close()

	for _, t := range toks {
		var properties any
		if len(t.Properties) > 0 {
			encoded, err := json.Marshal(t.Properties)
			if err != nil {
				return fmt.Errorf("failed to encode properties for %s: %w", t.Path, err)
			}
			properties = string(encoded)
		}

		var number any
		if t.ValueNumber != nil {
			number = *t.ValueNumber
		}

		if _, err := stmt.ExecContext(ctx,
			string(t.Category), nullable(t.Subcategory), t.Name, t.Path,
			t.CSSVariable, t.SCSSVariable, t.ValueRaw, number,
			nullable(t.ValueUnit), nullable(t.ValueComputed), properties,
			nullable(t.SourceFile)); err != nil {
			return fmt.Errorf("failed to insert token %s/%s: %w", t.Category, t.Path, err)
		}
	}
	return nil
}

func insertComponents(ctx context.Context, tx *sql.Tx, comps []Component) error {
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO components (name, description, tag, import_path, props)
		 VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare component insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range comps {
		props, err := json.Marshal(c.Props)
		if err != nil {
			return fmt.Errorf("failed to encode props for %s: %w", c.Name, err)
		}
		if _, err := stmt.ExecContext(ctx, c.Name, c.Description,
			nullable(c.Tag), nullable(c.ImportPath), string(props)); err != nil {
			return fmt.Errorf("failed to insert component %s: %w", c.Name, err)
		}
	}
	return nil
}

func insertUtilities(ctx context.Context, tx *sql.Tx, utils []Utility) error {
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO utilities (class_name, property, value) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare utility insert: %w", err)
	}
	defer stmt.Close()

	for _, u := range utils {
		if _, err := stmt.ExecContext(ctx, u.ClassName, u.Property, u.Value); err != nil {
			return fmt.Errorf("failed to insert utility %s: %w", u.ClassName, err)
		}
	}
	return nil
}

func insertDocs(ctx context.Context, tx *sql.Tx, docs []DocRecord) error {
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO docs (title, path, category, body) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare doc insert: %w", err)
	}
	defer stmt.Close()

	for _, d := range docs {
		if _, err := stmt.ExecContext(ctx, d.Title, d.Path, d.Category, d.Body); err != nil {
			return fmt.Errorf("failed to insert doc %s: %w", d.Path, err)
		}
	}
	return nil
}

func insertIcons(ctx context.Context, tx *sql.Tx, icons []IconRow) error {
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO icons (name, base_name, type, size, view_box, paths)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare icon insert: %w", err)
	}
	defer stmt.Close()

	for _, ic := range icons {
		paths, err := json.Marshal(ic.Paths)
		if err != nil {
			return fmt.Errorf("failed to encode paths for %s: %w", ic.Name, err)
		}
		if _, err := stmt.ExecContext(ctx, ic.Name, ic.BaseName, ic.Type,
			ic.Size, ic.ViewBox, string(paths)); err != nil {
			return fmt.Errorf("failed to insert icon %s: %w", ic.Name, err)
		}
	}
	return nil
}

// nullable maps an empty string to SQL NULL.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
