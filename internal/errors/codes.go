package errors

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeDeadlineExceeded   Code = "DEADLINE_EXCEEDED"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeResourceExhausted  Code = "RESOURCE_EXHAUSTED"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeOutOfRange         Code = "OUT_OF_RANGE"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// Recoverable reports whether an error with this code is the caller's to fix.
// Internal and Unavailable errors are not: they mean the bot itself failed.
func (c Code) Recoverable() bool {
	switch c {
	case CodeInternal, CodeUnavailable:
		return false
	default:
		return true
	}
}

// Meta keys shared across packages
const (
	// MetaReason distinguishes errors that share a code,
	// e.g. the two kinds of FailedPrecondition.
	MetaReason = "reason"

	ReasonInsufficientFunds    = "insufficient_funds"
	ReasonInsufficientQuantity = "insufficient_quantity"
	ReasonNotRegistered        = "not_registered"
	ReasonStorage              = "storage"
)
