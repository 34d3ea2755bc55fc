package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gearbase/camsync/internal/catalog"
)

// Tx stages the writes of one sync run on a single database transaction.
//
// All record operations are invisible to readers until Commit; a fatal
// error rolls back everything, including records that individually
// succeeded earlier in the same run.
type Tx struct {
	tx *sql.Tx
}

// Begin starts the transaction for a sync run.
func (db *DB) Begin(ctx context.Context) (*Tx, error) {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &Tx{tx: tx}, nil
}

// Commit makes the run's writes visible.
func (t *Tx) Commit() error {
	if err := t.tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Rollback discards the run's writes. Calling it after a successful
// Commit is a no-op, so it is safe to defer.
func (t *Tx) Rollback() error {
	err := t.tx.Rollback()
	if err == sql.ErrTxDone {
		return nil
	}
	return err
}

// UpsertProduct inserts or updates a product keyed on (brand, model).
//
// On conflict the non-identity fields are overwritten and updated_at is
// bumped; brand, model, and created_at stay untouched. Returns the row id
// (existing or newly assigned) so the caller can sync child collections.
func (t *Tx) UpsertProduct(ctx context.Context, p *catalog.ProductFile) (int64, error) {
	query := `
	INSERT INTO products (
		brand, model, full_name, category,
		buy_price_min, buy_price_max, sell_target, active
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT (brand, model) DO UPDATE SET
		full_name = excluded.full_name,
		category = excluded.category,
		buy_price_min = excluded.buy_price_min,
		buy_price_max = excluded.buy_price_max,
		sell_target = excluded.sell_target,
		active = excluded.active,
		updated_at = CURRENT_TIMESTAMP
	RETURNING id
	`

	var id int64
	err := t.tx.QueryRowContext(ctx, query,
		p.Brand,
		p.Model,
		p.FullName,
		p.Category,
		p.Pricing.BuyMin,
		p.Pricing.BuyMax,
		p.Pricing.SellTarget,
		boolToInt(p.Active),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to upsert product %s %s: %w", p.Brand, p.Model, err)
	}

	return id, nil
}

// ReplaceAliases replaces the entire alias set for a product: every
// existing row is deleted, then each alias is inserted in input order.
// An empty or nil list deletes all prior aliases, which is intentional -
// an empty list means "no aliases", not "unchanged".
func (t *Tx) ReplaceAliases(ctx context.Context, productID int64, aliases []string) error {
	return t.replaceChildren(ctx, "product_aliases", "alias", productID, aliases)
}

// ReplaceFuzzyPatterns replaces the entire fuzzy pattern set for a
// product, with the same wholesale semantics as ReplaceAliases.
func (t *Tx) ReplaceFuzzyPatterns(ctx context.Context, productID int64, patterns []string) error {
	return t.replaceChildren(ctx, "product_fuzzy_patterns", "pattern", productID, patterns)
}

func (t *Tx) replaceChildren(ctx context.Context, table, column string, productID int64, values []string) error {
	if _, err := t.tx.ExecContext(ctx,
		"DELETE FROM "+table+" WHERE product_id = ?", productID); err != nil {
		return fmt.Errorf("failed to clear %s for product %d: %w", table, productID, err)
	}

	for _, v := range values {
		if _, err := t.tx.ExecContext(ctx,
			"INSERT INTO "+table+" (product_id, "+column+") VALUES (?, ?)",
			productID, v); err != nil {
			return fmt.Errorf("failed to insert into %s for product %d: %w", table, productID, err)
		}
	}

	return nil
}

// UpsertFilterKeyword inserts or updates a keyword keyed on
// (keyword, filter_type). Only the description is overwritten on
// conflict. There is no delete step: keywords removed from a source
// file stay in storage.
func (t *Tx) UpsertFilterKeyword(ctx context.Context, keyword string, typ catalog.FilterType, description string) error {
	query := `
	INSERT INTO filter_keywords (keyword, filter_type, description)
	VALUES (?, ?, ?)
	ON CONFLICT (keyword, filter_type) DO UPDATE SET
		description = excluded.description
	`

	if _, err := t.tx.ExecContext(ctx, query, keyword, string(typ), description); err != nil {
		return fmt.Errorf("failed to upsert %s keyword %q: %w", typ, keyword, err)
	}

	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
