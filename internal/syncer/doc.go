// Package syncer drives the catalog-to-database reconciliation run.
//
// # Overview
//
// A run is a single-pass batch with three stages, executed sequentially
// with no parallelism:
//
//	Catalog root (YAML files)
//	     ├── Products/Cameras/**/*.yml   → product upserts + child replacement
//	     └── Products/**/filters_*.yml   → filter keyword upserts
//	                                            ↓
//	                                         Syncer
//	                                            ↓
//	                                        SQLite store
//
//  1. Discovery - recursively enumerate *.yml / *.yaml files under the
//     root, sorted lexicographically for reproducible runs.
//  2. Classification - parse each file into a generic document and decide
//     structurally whether it is a product, a filter, or unrecognized.
//  3. Reconciliation - upsert products keyed on (brand, model) and replace
//     their alias/fuzzy-pattern children wholesale; upsert filter keywords
//     keyed on (keyword, filter_type).
//
// # Error Handling
//
// The run is fail-forward at the record level and all-or-nothing at the
// transaction level:
//
//   - Parse failures, classification misses, and storage errors scoped to
//     one record are logged, counted, and never stop the run. The run
//     commits whatever succeeded.
//   - Anything failing outside a record boundary (discovery, beginning the
//     transaction, committing it) rolls back the entire run, including
//     records that individually succeeded, and surfaces as a *FatalError.
//
// Every error or skip produces exactly one log line; the returned Stats
// carry the aggregate counters for the final summary.
package syncer
