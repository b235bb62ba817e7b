package simd

// OverflowStatus is the answer of CheckAndResetOverflow.
type OverflowStatus int

const (
	// OverflowUnsupported means the target cannot detect overflow. It says
	// nothing about whether overflow happened.
	OverflowUnsupported OverflowStatus = iota

	// OverflowClear means no overflow was recorded since the last check.
	OverflowClear

	// OverflowDetected means an operation overflowed since the last check.
	OverflowDetected
)

func (s OverflowStatus) String() string {
	switch s {
	case OverflowUnsupported:
		return "unsupported"
	case OverflowClear:
		return "clear"
	case OverflowDetected:
		return "detected"
	default:
		return "unknown"
	}
}

// Checked reports whether the status is an actual measurement.
func (s OverflowStatus) Checked() bool {
	return s != OverflowUnsupported
}

// CheckAndResetOverflow queries and clears the overflow state of the vector
// unit. VSX has no overflow trapping, so the result is always
// OverflowUnsupported and callers must not rely on it for correctness.
func CheckAndResetOverflow() OverflowStatus {
	return OverflowUnsupported
}
