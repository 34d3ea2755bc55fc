package syncer

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/gearbase/camsync/internal/catalog"
	"github.com/gearbase/camsync/internal/store"
)

// syncer implements the Syncer interface.
type syncer struct {
	db      *store.DB
	logger  *log.Logger
	verbose bool
}

// New creates a new Syncer instance.
//
// The database connection must be open and have its schema initialized
// before passing it here. If logger is nil, a default logger writing to
// stderr is used. With verbose set, every file additionally logs its
// classification and per-record detail (child collection sizes, each
// keyword upsert).
func New(db *store.DB, logger *log.Logger, verbose bool) Syncer {
	if logger == nil {
		logger = log.New(os.Stderr, "[sync] ", log.LstdFlags)
	}
	return &syncer{
		db:      db,
		logger:  logger,
		verbose: verbose,
	}
}

// Run implements Syncer.Run.
func (s *syncer) Run(ctx context.Context, root string) (Stats, error) {
	var stats Stats

	s.logger.Printf("Scanning catalog files under %s", root)

	files, err := catalog.Discover(root)
	if err != nil {
		return stats, &FatalError{Err: err}
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return stats, &FatalError{Err: err}
	}
	// No-op after a successful commit.
	defer tx.Rollback()

	for _, path := range files {
		s.syncFile(ctx, tx, root, path, &stats)
	}

	if err := tx.Commit(); err != nil {
		return stats, &FatalError{Err: err}
	}

	s.logger.Printf("Run complete: products=%d keywords=%d skipped=%d errors=%d",
		stats.Products, stats.Keywords, stats.Skipped, stats.Errors)

	return stats, nil
}

// syncFile classifies one file and dispatches it to the matching record
// handler. Every outcome produces exactly one counter bump; failures here
// are record-scoped by definition and never abort the run.
func (s *syncer) syncFile(ctx context.Context, tx *store.Tx, root, path string, stats *Stats) {
	rel := relPath(root, path)

	data, err := os.ReadFile(path)
	if err != nil {
		s.logger.Printf("ERROR: failed to read %s: %v", rel, err)
		stats.Errors++
		return
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		s.logger.Printf("ERROR: failed to parse %s: %v", rel, err)
		stats.Errors++
		return
	}

	kind := catalog.Classify(doc)
	if s.verbose {
		s.logger.Printf("Classified %s as %s", rel, kind)
	}

	switch kind {
	case catalog.KindProduct:
		s.syncProduct(ctx, tx, rel, data, stats)
	case catalog.KindFilter:
		s.syncFilter(ctx, tx, path, rel, data, stats)
	default:
		s.logger.Printf("Skipped %s: unrecognized document", rel)
		stats.Skipped++
	}
}

// syncProduct upserts one product and replaces its child collections.
//
// A failed upsert yields no product id, so the child syncs are skipped
// for that record. A child sync failure after a successful upsert counts
// as an error, but the product itself still counts as synced.
func (s *syncer) syncProduct(ctx context.Context, tx *store.Tx, rel string, data []byte, stats *Stats) {
	p, err := catalog.ParseProduct(data)
	if err != nil {
		s.logger.Printf("ERROR: %s: %v", rel, err)
		stats.Errors++
		return
	}

	id, err := tx.UpsertProduct(ctx, p)
	if err != nil {
		s.logger.Printf("ERROR: %v", err)
		stats.Errors++
		return
	}

	if err := tx.ReplaceAliases(ctx, id, p.Aliases); err != nil {
		s.logger.Printf("ERROR: %v", err)
		stats.Errors++
	}
	if err := tx.ReplaceFuzzyPatterns(ctx, id, p.FuzzyPatterns); err != nil {
		s.logger.Printf("ERROR: %v", err)
		stats.Errors++
	}

	stats.Products++
	if s.verbose {
		s.logger.Printf("Replaced %d aliases and %d fuzzy patterns for %s %s",
			len(p.Aliases), len(p.FuzzyPatterns), p.Brand, p.Model)
	}
	s.logger.Printf("Synced product: %s %s", p.Brand, p.Model)
}

// syncFilter upserts every keyword of one filter file. The filter type
// comes from the path; a file whose path names neither "reject" nor
// "boost" is downgraded to skipped, since a typeless filter is useless.
func (s *syncer) syncFilter(ctx context.Context, tx *store.Tx, path, rel string, data []byte, stats *Stats) {
	typ, ok := catalog.FilterTypeFromPath(path)
	if !ok {
		s.logger.Printf("Skipped %s: filter file without reject/boost in its path", rel)
		stats.Skipped++
		return
	}

	f, err := catalog.ParseFilter(data)
	if err != nil {
		s.logger.Printf("ERROR: %s: %v", rel, err)
		stats.Errors++
		return
	}

	synced := 0
	for _, keyword := range f.Keywords {
		if err := tx.UpsertFilterKeyword(ctx, keyword, typ, f.Description); err != nil {
			s.logger.Printf("ERROR: %v", err)
			stats.Errors++
			continue
		}
		if s.verbose {
			s.logger.Printf("Upserted %s keyword %q", typ, keyword)
		}
		synced++
	}
	stats.Keywords += synced

	s.logger.Printf("Synced %d %s keywords from %s", synced, typ, rel)
}

// relPath shortens path for log lines; falls back to the full path when
// it is not under root.
func relPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return rel
}
