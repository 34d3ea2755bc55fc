package syncer

import "context"

// Stats aggregates the per-file outcomes of one run.
type Stats struct {
	// Products is the number of product files upserted successfully.
	Products int
	// Keywords is the number of filter keywords upserted successfully.
	Keywords int
	// Skipped counts files matching neither schema, plus filter files
	// whose type could not be inferred from their path.
	Skipped int
	// Errors counts parse failures and record-scoped storage failures.
	// A non-zero value does not prevent the run from committing.
	Errors int
}

// Syncer reconciles a catalog directory tree into the database.
type Syncer interface {
	// Run executes one complete sync pass over the tree rooted at root.
	//
	// All writes are staged on a single transaction and committed at the
	// end. Record-scoped failures are tallied in the returned Stats; a
	// non-nil error is always a *FatalError, meaning the transaction was
	// rolled back and nothing was persisted.
	//
	// The returned Stats are meaningful even on error, reflecting what
	// had been processed before the abort.
	Run(ctx context.Context, root string) (Stats, error)
}
