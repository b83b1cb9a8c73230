package factors

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Error types for factor table loading and lookup.
// These are sentinel errors that can be compared with errors.Is().
const (
	// ErrLoad indicates malformed or missing reference data. It is fatal:
	// the calculator must not run against an invalid factor table.
	ErrLoad = constError("invalid emission factor data")

	// ErrNotFound indicates that no factor matches the requested
	// category, key and region.
	ErrNotFound = constError("emission factor not found")

	// ErrAmbiguousRegion indicates that the requested key has multiple
	// regional variants and no region was supplied to pick one.
	ErrAmbiguousRegion = constError("region required to resolve factor")

	// ErrUnknownGas indicates a gas symbol absent from the GWP table.
	ErrUnknownGas = constError("unknown greenhouse gas")
)
