package core

import (
	"errors"
	"fmt"
)

// Kind classifies a MetagraphError the way the original toolkit's
// exception hierarchy did, so callers can branch on the failure category
// without string-matching a message.
type Kind int

const (
	// InvalidArgument marks a caller-supplied value that is nil, empty, or
	// otherwise malformed before any domain check runs.
	InvalidArgument Kind = iota
	// NotFound marks a reference to a node, edge, or element that does
	// not exist in the structure being queried.
	NotFound
	// RangeViolation marks a value or index outside its valid bounds.
	RangeViolation
	// Inconsistency marks two or more inputs that are individually valid
	// but cannot be combined (mismatched generating sets, incompatible
	// shapes).
	Inconsistency
)

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "InvalidArgument"
	case NotFound:
		return "NotFound"
	case RangeViolation:
		return "RangeViolation"
	case Inconsistency:
		return "Inconsistency"
	default:
		return "Unknown"
	}
}

// Sentinel errors for errors.Is checks. Every Error returned by this
// module wraps exactly one of these, matching its Kind.
var (
	// ErrInvalidArgument wraps errors of Kind InvalidArgument.
	ErrInvalidArgument = errors.New("core: invalid argument")

	// ErrNotFound wraps errors of Kind NotFound.
	ErrNotFound = errors.New("core: not found")

	// ErrRangeViolation wraps errors of Kind RangeViolation.
	ErrRangeViolation = errors.New("core: range violation")

	// ErrInconsistency wraps errors of Kind Inconsistency.
	ErrInconsistency = errors.New("core: inconsistency")
)

func sentinelFor(k Kind) error {
	switch k {
	case InvalidArgument:
		return ErrInvalidArgument
	case NotFound:
		return ErrNotFound
	case RangeViolation:
		return ErrRangeViolation
	case Inconsistency:
		return ErrInconsistency
	default:
		return ErrInvalidArgument
	}
}

// Error is the toolkit's structured error type. Argument names the
// offending parameter (empty when the failure isn't tied to one), and Key
// indexes into the message table (see messages.go) to produce a resolved,
// human-readable Message.
type Error struct {
	Kind     Kind
	Argument string
	Key      string
	Message  string
}

// NewError builds an Error of the given kind, resolving key against the
// message table. Unknown keys fall back to the key itself so a typo in a
// call site never panics.
func NewError(kind Kind, argument, key string) *Error {
	msg, ok := messages[key]
	if !ok {
		msg = key
	}
	return &Error{Kind: kind, Argument: argument, Key: key, Message: msg}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Argument == "" {
		return fmt.Sprintf("core: %s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("core: %s: argument %q: %s", e.Kind, e.Argument, e.Message)
}

// Unwrap lets errors.Is(err, core.ErrInvalidArgument) and friends work
// against an *Error without the caller knowing about Kind.
func (e *Error) Unwrap() error {
	return sentinelFor(e.Kind)
}

// GoString gives Error a developer-facing representation distinct from
// Error(), handy in test failure output.
func (e *Error) GoString() string {
	return fmt.Sprintf("core.Error{Kind: %s, Argument: %q, Key: %q, Message: %q}", e.Kind, e.Argument, e.Key, e.Message)
}
