package calc

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Error types for calculation input validation.
// These are sentinel errors that can be compared with errors.Is().
const (
	// ErrInvalidInput indicates a malformed activity record: negative,
	// NaN or infinite amount, or a renewable percentage outside [0,100].
	ErrInvalidInput = constError("invalid activity input")

	// ErrInvalidMethod indicates an unrecognized Scope 2 accounting
	// method. Valid methods are location_based and market_based.
	ErrInvalidMethod = constError("invalid scope 2 method")
)
