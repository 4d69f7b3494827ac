package keyops

// ComparisonFailedError is returned when an operation that requires a total
// order encounters a key pair its comparator cannot order. Callers that can
// degrade (e.g. ordered alignment) catch it and fall back to unordered
// behavior.
type ComparisonFailedError struct{}

func (e *ComparisonFailedError) Error() string {
	return "keys are not comparable under the index comparator"
}
