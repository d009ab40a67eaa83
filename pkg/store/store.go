// Package store provides read access to the pre-built SQLite database of
// design-system metadata: normalized tokens, component prop schemas, CSS
// utilities, and FTS5 indexes over documentation and icons.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	_ "modernc.org/sqlite" // SQLite driver (pure Go)

	"github.com/MerzoukeMansouri/adeo-mozaic-mcp/pkg/token"
)

// ErrQuerySyntax marks a full-text expression the index could not parse.
// The search executor treats it as non-fatal and moves to the next strategy.
var ErrQuerySyntax = errors.New("store: bad index expression")

// tokenCacheSize covers every category with room for spare; token reads are
// the hot path of repeated get_tokens calls.
const tokenCacheSize = 16

// Store is a read-only handle on the design-system database. It is safe for
// concurrent use; the mutex only guards handle replacement during Reload.
type Store struct {
	mu         sync.RWMutex
	db         *sql.DB
	path       string
	tokenCache *lru.Cache[string, []token.Token]
}

// Open opens the database at path read-only. A store that cannot be opened
// is the one fatal condition of the system: no operation is meaningful
// without it.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("failed to open store at %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping store at %s: %w", path, err)
	}

	cache, err := lru.New[string, []token.Token](tokenCacheSize)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db, path: path, tokenCache: cache}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Reload reopens the database file and drops cached reads. Used by the
// watcher when the database is rebuilt underneath a running server.
func (s *Store) Reload() error {
	db, err := sql.Open("sqlite", "file:"+s.path+"?mode=ro")
	if err != nil {
		return fmt.Errorf("failed to reopen store: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to ping reopened store: %w", err)
	}

	s.mu.Lock()
	old := s.db
	s.db = db
	s.tokenCache.Purge()
	s.mu.Unlock()

	if old != nil {
		old.Close()
	}
	return nil
}

func (s *Store) handle() *sql.DB {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.db
}

// --- tokens ---

// TokensByCategory returns every token of the given category, ordered by
// path. Results are cached per category.
func (s *Store) TokensByCategory(ctx context.Context, category token.Category) ([]token.Token, error) {
	if cached, ok := s.tokenCache.Get(string(category)); ok {
		return cached, nil
	}

	rows, err := s.handle().QueryContext(ctx,
		`SELECT category, subcategory, name, path, css_variable, scss_variable,
		        value_raw, value_number, value_unit, value_computed, properties
		 FROM tokens WHERE category = ? ORDER BY path`, string(category))
	if err != nil {
		return nil, fmt.Errorf("failed to query tokens: %w", err)
	}
	defer rows.Close()

	toks, err := scanTokens(rows)
	if err != nil {
		return nil, err
	}

	s.tokenCache.Add(string(category), toks)
	return toks, nil
}

// AllTokens returns every token in the store, ordered by category then path.
func (s *Store) AllTokens(ctx context.Context) ([]token.Token, error) {
	rows, err := s.handle().QueryContext(ctx,
		`SELECT category, subcategory, name, path, css_variable, scss_variable,
		        value_raw, value_number, value_unit, value_computed, properties
		 FROM tokens ORDER BY category, path`)
	if err != nil {
		return nil, fmt.Errorf("failed to query tokens: %w", err)
	}
	defer rows.Close()

	return scanTokens(rows)
}

func scanTokens(rows *sql.Rows) ([]token.Token, error) {
	var toks []token.Token
	for rows.Next() {
		var (
			t          token.Token
			sub        sql.NullString
			number     sql.NullFloat64
			unit       sql.NullString
			computed   sql.NullString
			properties sql.NullString
		)
		if err := rows.Scan(&t.Category, &sub, &t.Name, &t.Path, &t.CSSVariable,
			&t.SCSSVariable, &t.ValueRaw, &number, &unit, &computed, &properties); err != nil {
			return nil, fmt.Errorf("failed to scan token row: %w", err)
		}
		t.Subcategory = sub.String
		if number.Valid {
			n := number.Float64
			t.ValueNumber = &n
		}
		t.ValueUnit = unit.String
		t.ValueComputed = computed.String
		if properties.Valid && properties.String != "" {
			if err := json.Unmarshal([]byte(properties.String), &t.Properties); err != nil {
				return nil, fmt.Errorf("failed to decode token properties for %s: %w", t.Path, err)
			}
		}
		toks = append(toks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("token row iteration failed: %w", err)
	}
	return toks, nil
}

// --- components ---

// ListComponents returns every component name with its description.
func (s *Store) ListComponents(ctx context.Context) ([]Component, error) {
	rows, err := s.handle().QueryContext(ctx,
		`SELECT name, description, tag, import_path, props FROM components ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query components: %w", err)
	}
	defer rows.Close()

	var comps []Component
	for rows.Next() {
		c, err := scanComponent(rows)
		if err != nil {
			return nil, err
		}
		comps = append(comps, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("component row iteration failed: %w", err)
	}
	return comps, nil
}

// GetComponent looks up a component by name, case-insensitively.
// The bool reports whether the component exists; absence is not an error.
func (s *Store) GetComponent(ctx context.Context, name string) (*Component, bool, error) {
	row := s.handle().QueryRowContext(ctx,
		`SELECT name, description, tag, import_path, props
		 FROM components WHERE name = ? COLLATE NOCASE`, name)

	c, err := scanComponent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &c, true, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanComponent(row rowScanner) (Component, error) {
	var (
		c          Component
		tag        sql.NullString
		importPath sql.NullString
		props      string
	)
	if err := row.Scan(&c.Name, &c.Description, &tag, &importPath, &props); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c, err
		}
		return c, fmt.Errorf("failed to scan component row: %w", err)
	}
	c.Tag = tag.String
	c.ImportPath = importPath.String
	if props != "" {
		if err := json.Unmarshal([]byte(props), &c.Props); err != nil {
			return c, fmt.Errorf("failed to decode props for %s: %w", c.Name, err)
		}
	}
	return c, nil
}

// --- utilities ---

// ListUtilities returns every CSS utility class, optionally filtered by the
// CSS property it sets. An empty property returns all utilities.
func (s *Store) ListUtilities(ctx context.Context, property string) ([]Utility, error) {
	query := `SELECT class_name, property, value FROM utilities ORDER BY class_name`
	args := []any{}
	if property != "" {
		query = `SELECT class_name, property, value FROM utilities WHERE property = ? ORDER BY class_name`
		args = append(args, property)
	}

	rows, err := s.handle().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query utilities: %w", err)
	}
	defer rows.Close()

	var utils []Utility
	for rows.Next() {
		var u Utility
		if err := rows.Scan(&u.ClassName, &u.Property, &u.Value); err != nil {
			return nil, fmt.Errorf("failed to scan utility row: %w", err)
		}
		utils = append(utils, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("utility row iteration failed: %w", err)
	}
	return utils, nil
}

// --- full-text search ---

// SearchDocs runs one FTS5 expression against the documentation index.
// Expressions the engine cannot parse surface as ErrQuerySyntax.
func (s *Store) SearchDocs(ctx context.Context, expr string, limit int) ([]DocResult, error) {
	rows, err := s.handle().QueryContext(ctx,
		`SELECT title, path, category, snippet(docs, 3, '', '', '…', 16)
		 FROM docs WHERE docs MATCH ? ORDER BY rank LIMIT ?`, expr, limit)
	if err != nil {
		return nil, wrapQueryError(err)
	}
	defer rows.Close()

	var results []DocResult
	for rows.Next() {
		var (
			r        DocResult
			category sql.NullString
		)
		if err := rows.Scan(&r.Title, &r.Path, &category, &r.Snippet); err != nil {
			return nil, fmt.Errorf("failed to scan doc row: %w", err)
		}
		r.Category = category.String
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryError(err)
	}
	return results, nil
}

// SearchIcons runs one FTS5 expression against the icon index.
func (s *Store) SearchIcons(ctx context.Context, expr string, limit int) ([]IconRow, error) {
	rows, err := s.handle().QueryContext(ctx,
		`SELECT name, base_name, type, size, view_box, paths
		 FROM icons WHERE icons MATCH ? ORDER BY rank LIMIT ?`, expr, limit)
	if err != nil {
		return nil, wrapQueryError(err)
	}
	defer rows.Close()

	var results []IconRow
	for rows.Next() {
		var (
			r     IconRow
			paths string
		)
		if err := rows.Scan(&r.Name, &r.BaseName, &r.Type, &r.Size, &r.ViewBox, &paths); err != nil {
			return nil, fmt.Errorf("failed to scan icon row: %w", err)
		}
		if paths != "" {
			if err := json.Unmarshal([]byte(paths), &r.Paths); err != nil {
				return nil, fmt.Errorf("failed to decode icon paths for %s: %w", r.Name, err)
			}
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryError(err)
	}
	return results, nil
}

// wrapQueryError classifies FTS5 parse failures so callers can fall back to
// a looser expression instead of aborting.
func wrapQueryError(err error) error {
	msg := err.Error()
	if strings.Contains(msg, "syntax error") || strings.Contains(msg, "malformed MATCH") ||
		strings.Contains(msg, "unknown special query") {
		return fmt.Errorf("%w: %v", ErrQuerySyntax, err)
	}
	return fmt.Errorf("index query failed: %w", err)
}
