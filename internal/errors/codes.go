package errors

// Code represents an error code. Values mirror the gRPC status codes.
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeDeadlineExceeded   Code = "DEADLINE_EXCEEDED"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeUnimplemented      Code = "UNIMPLEMENTED"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// Reason identifies a data-integrity failure inside the reward engine.
// These are never transient: retrying with the same input fails the same way.
type Reason string

// Reasons
const (
	ReasonNoMatch                     Reason = "NO_MATCH"
	ReasonDegenerateBias              Reason = "DEGENERATE_BIAS"
	ReasonUnrecognizedConstraintShape Reason = "UNRECOGNIZED_CONSTRAINT_SHAPE"
)

// String returns the string representation of the reason
func (r Reason) String() string {
	return string(r)
}
