package sqlq

import "errors"

// Errors returned while composing queries. They are wrapped with details,
// test them with errors.Is.
var (
	// ErrInvalidAlias reports an empty, malformed or already used join alias.
	ErrInvalidAlias = errors.New("invalid alias")
	// ErrUnresolvedColumn reports a field that does not map to a column of the shape.
	ErrUnresolvedColumn = errors.New("unresolved column")
	// ErrConversionUnsupported reports a value that cannot be bound
	// because no converter, or no dialect support, exists for it.
	ErrConversionUnsupported = errors.New("conversion unsupported")
	// ErrMalformedSubquery reports a sub-query that cannot be joined.
	ErrMalformedSubquery = errors.New("malformed subquery")
)
