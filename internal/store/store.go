// Package store provides the SQLite storage layer for the catalog sync.
//
// The database holds four tables: products (unique on brand+model), the
// product_aliases and product_fuzzy_patterns child tables (replaced
// wholesale per product on every sync), and filter_keywords (unique on
// keyword+filter_type, upsert-only).
//
// A sync run stages all of its writes on a single transaction obtained
// from Begin; nothing is visible until Commit. The read-side count
// queries used by the status command run outside any transaction.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/gearbase/camsync/internal/catalog"
)

// DB wraps the SQLite database connection.
type DB struct {
	conn *sql.DB
	path string
}

// Open creates a new database connection at the specified path.
//
// If the database doesn't exist it is created; InitSchema must still be
// called before writing. The connection is pinged so that an unusable
// path fails here, at startup, rather than mid-run.
//
// The caller MUST call Close() when done.
func Open(path string) (*DB, error) {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	conn, err := sql.Open("sqlite3", "file:"+path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// The sync run is single-threaded and uses exactly one transaction,
	// so one connection is all it ever needs.
	conn.SetMaxOpenConns(1)

	db := &DB{
		conn: conn,
		path: path,
	}

	if _, err := db.conn.Exec("PRAGMA foreign_keys=ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if _, err := db.conn.Exec("PRAGMA busy_timeout=5000"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	return db, nil
}

// Path returns the database file path.
func (db *DB) Path() string {
	return db.path
}

// RawDB returns the underlying sql.DB connection.
func (db *DB) RawDB() *sql.DB {
	return db.conn
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.conn == nil {
		return nil
	}
	if err := db.conn.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	db.conn = nil
	return nil
}

// InitSchema creates the database schema if it doesn't exist.
// Idempotent - safe to call on every startup.
func (db *DB) InitSchema(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS products (
		id INTEGER PRIMARY KEY,
		brand TEXT NOT NULL,
		model TEXT NOT NULL,
		full_name TEXT NOT NULL,
		category TEXT NOT NULL,
		buy_price_min REAL NOT NULL,
		buy_price_max REAL NOT NULL,
		sell_target REAL NOT NULL,
		active INTEGER NOT NULL DEFAULT 1,
		created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE (brand, model)
	);

	CREATE TABLE IF NOT EXISTS product_aliases (
		product_id INTEGER NOT NULL REFERENCES products(id) ON DELETE CASCADE,
		alias TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS product_fuzzy_patterns (
		product_id INTEGER NOT NULL REFERENCES products(id) ON DELETE CASCADE,
		pattern TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS filter_keywords (
		id INTEGER PRIMARY KEY,
		keyword TEXT NOT NULL,
		filter_type TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		UNIQUE (keyword, filter_type)
	);

	CREATE INDEX IF NOT EXISTS idx_aliases_product ON product_aliases(product_id);
	CREATE INDEX IF NOT EXISTS idx_patterns_product ON product_fuzzy_patterns(product_id);
	CREATE INDEX IF NOT EXISTS idx_keywords_type ON filter_keywords(filter_type);
	`

	if _, err := db.conn.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}

	return nil
}

// ProductCount returns the number of products in the database.
func (db *DB) ProductCount(ctx context.Context) (int, error) {
	return db.count(ctx, "products")
}

// AliasCount returns the number of alias rows in the database.
func (db *DB) AliasCount(ctx context.Context) (int, error) {
	return db.count(ctx, "product_aliases")
}

// FuzzyPatternCount returns the number of fuzzy pattern rows in the database.
func (db *DB) FuzzyPatternCount(ctx context.Context) (int, error) {
	return db.count(ctx, "product_fuzzy_patterns")
}

func (db *DB) count(ctx context.Context, table string) (int, error) {
	var count int
	err := db.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}
	return count, nil
}

// FilterKeywordCounts returns the number of stored keywords per filter type.
func (db *DB) FilterKeywordCounts(ctx context.Context) (map[catalog.FilterType]int, error) {
	rows, err := db.conn.QueryContext(ctx,
		"SELECT filter_type, COUNT(*) FROM filter_keywords GROUP BY filter_type")
	if err != nil {
		return nil, fmt.Errorf("failed to count filter keywords: %w", err)
	}
	defer rows.Close()

	counts := make(map[catalog.FilterType]int)
	for rows.Next() {
		var typ string
		var n int
		if err := rows.Scan(&typ, &n); err != nil {
			return nil, fmt.Errorf("failed to scan keyword count: %w", err)
		}
		counts[catalog.FilterType(typ)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating keyword counts: %w", err)
	}

	return counts, nil
}

// Wipe deletes every synced row from all four tables in one transaction.
// Used by the reset command; the schema itself is left in place.
func (db *DB) Wipe(ctx context.Context) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Child tables cascade from products, but delete explicitly so the
	// wipe doesn't depend on the foreign_keys pragma being set.
	for _, table := range []string{
		"product_aliases",
		"product_fuzzy_patterns",
		"products",
		"filter_keywords",
	} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to wipe %s: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit wipe: %w", err)
	}
	return nil
}
