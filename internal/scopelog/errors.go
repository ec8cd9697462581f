package scopelog

import "errors"

var (
	// ErrFormat reports a malformed template or a placeholder without a
	// matching argument.
	ErrFormat = errors.New("scopelog: invalid format")

	// ErrScopeOrder reports a scope released while it was not the active
	// scope. It always points at mismatched nesting in the caller.
	ErrScopeOrder = errors.New("format scope removed out of order")

	// ErrIO wraps failures of the underlying writer.
	ErrIO = errors.New("scopelog: write failed")
)
