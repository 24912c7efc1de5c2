/*
Package errors provides semantic error types for recordkv.

The package defines the failure conditions of the source and bucket adapters
as sentinels that can be checked with the standard errors.Is() function or
the provided helper functions.

Common Errors:

	var (
	    ErrUnavailableMedium    = errors.New("storage medium unavailable")
	    ErrMissingSchema        = errors.New("schema must be specified")
	    ErrDecode               = errors.New("stored value could not be decoded")
	    ErrUnsupportedOperation = errors.New("unsupported operation")
	    ErrUnsupportedQuery     = errors.New("unsupported query")
	)

Construction failures (ErrUnavailableMedium, ErrMissingSchema) are returned
by the adapter constructors before any storage access. Read failures
(ErrDecode) and dispatch failures (ErrUnsupportedOperation,
ErrUnsupportedQuery) are returned from the operation that hit them.
Nothing is retried.

Usage:

	err := src.Sync(ctx, transform)
	if errors.IsUnsupportedOperation(err) {
	    // operations before the unsupported one are already applied
	}

	err := errors.NewDecodeError("orbit/planet/jupiter", cause)
	err := errors.NewUnsupportedQueryError("findPlanets")

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
*/
package errors
