package syncer

import "errors"

// Failures during a run fall into exactly two categories:
//
//   - Record-scoped: a parse failure or storage write error affecting one
//     file or one keyword. These are logged, tallied in Stats.Errors, and
//     never escape Run; the transaction still commits.
//   - Run-fatal: a failure outside any record boundary (discovery walk,
//     beginning or committing the transaction). These roll back every
//     write of the run and are returned from Run wrapped in *FatalError.
//
// The category is a property of where the failure occurred, not of its
// depth in the call stack.

// FatalError marks an error that aborted the whole run. When Run returns
// one, the transaction has already been rolled back and the process
// should exit non-zero.
type FatalError struct {
	Err error
}

// Error implements the error interface.
func (e *FatalError) Error() string {
	return "sync run aborted: " + e.Err.Error()
}

// Unwrap supports errors.Is and errors.As on the wrapped cause.
func (e *FatalError) Unwrap() error {
	return e.Err
}

// IsFatal reports whether err carries the run-fatal category.
func IsFatal(err error) bool {
	var fe *FatalError
	return errors.As(err, &fe)
}
