package errors

import "fmt"

// NoMatch reports that the descriptor catalog has no entry for a role and
// category set. The catalog is misconfigured.
func NoMatch(role string, categories []string) *Error {
	return Newf(CodeFailedPrecondition, "catalog misconfigured: no %s descriptor for categories %v", role, categories).
		WithReason(ReasonNoMatch).
		WithMeta("role", role).
		WithMeta("categories", fmt.Sprint(categories))
}

// DegenerateBias reports a descriptor set whose bias channels sum to zero.
func DegenerateBias(descriptors []string) *Error {
	return Newf(CodeFailedPrecondition, "descriptors %v carry no bias", descriptors).
		WithReason(ReasonDegenerateBias)
}

// UnrecognizedConstraintShape reports a level whose constraints match none
// of the supported combinations.
func UnrecognizedConstraintShape(level string, timeLimit, distance int, pace float64) *Error {
	return Newf(CodeFailedPrecondition,
		"level %q has unrecognized constraints (time=%d distance=%d pace=%g)",
		level, timeLimit, distance, pace).
		WithReason(ReasonUnrecognizedConstraintShape).
		WithMeta("level", level)
}

// GetReason extracts the reason from an error, empty if none
func GetReason(err error) Reason {
	var customErr *Error
	if As(err, &customErr) {
		return customErr.Reason
	}
	return ""
}

// IsNoMatch checks if an error is a catalog no-match error
func IsNoMatch(err error) bool {
	return GetReason(err) == ReasonNoMatch
}

// IsDegenerateBias checks if an error is a degenerate bias error
func IsDegenerateBias(err error) bool {
	return GetReason(err) == ReasonDegenerateBias
}

// IsUnrecognizedConstraintShape checks if an error is an unrecognized level shape
func IsUnrecognizedConstraintShape(err error) bool {
	return GetReason(err) == ReasonUnrecognizedConstraintShape
}
