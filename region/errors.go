package region

import "errors"

// Error kinds. These are stable identities callers can errors.Is
// against; wrap with fmt.Errorf("...: %w", ErrBounds) at call sites so
// callers can still errors.Is against the kind after context is
// attached. Package conformance does not match expected errors: a case
// whose operation returns one of these is reported as failed.
var (
	// ErrInvalidMemoryRegion means a cell sequence failed Validate.
	// Always a programming fault, never a recoverable input error.
	ErrInvalidMemoryRegion = errors.New("tidbytes: invalid memory region")

	// ErrBounds means an index, range, or target length violated a
	// containment constraint (get/set/truncate/extend).
	ErrBounds = errors.New("tidbytes: bounds error")

	// ErrByteAlignment means a byte-granular operation was asked to
	// act on a bit position or length that is not a multiple of 8.
	ErrByteAlignment = errors.New("tidbytes: byte alignment error")
)
