package types

import "fmt"

// StatusCode is a bitmask, not a Go error: copy/delete/range operations in
// package value accumulate failures from recursive calls with bitwise OR
// (spec §7) and only inspect the aggregate once the traversal finishes.
// Good is the zero value so an uninitialized StatusCode reads as success.
type StatusCode uint32

const Good StatusCode = 0

const (
	// BadOutOfMemory marks an allocation failure anywhere in a traversal.
	BadOutOfMemory StatusCode = 1 << iota
	// BadInternalError marks a malformed descriptor, dimension-product
	// mismatch, or unresolvable member/discriminant.
	BadInternalError
	// BadIndexRangeInvalid marks an inverted NumericRange interval (min > max).
	BadIndexRangeInvalid
	// BadIndexRangeNoData marks a range whose dimension count or bounds
	// don't match the value being sliced.
	BadIndexRangeNoData
)

// IsGood reports whether no bit is set.
func (s StatusCode) IsGood() bool { return s == Good }

// IsBad is the complement of IsGood.
func (s StatusCode) IsBad() bool { return s != Good }

func (s StatusCode) String() string {
	if s.IsGood() {
		return "Good"
	}
	var out string
	add := func(bit StatusCode, name string) {
		if s&bit != 0 {
			if out != "" {
				out += "|"
			}
			out += name
		}
	}
	add(BadOutOfMemory, "BadOutOfMemory")
	add(BadInternalError, "BadInternalError")
	add(BadIndexRangeInvalid, "BadIndexRangeInvalid")
	add(BadIndexRangeNoData, "BadIndexRangeNoData")
	return out
}

// ErrKind classifies the few call sites (descriptor construction,
// registration and resolution) that return an idiomatic Go error instead of a bare
// StatusCode, so callers can branch on intent rather than text — the same
// shape the teacher's pkg/types/api.go uses for hive errors.
type ErrKind int

const (
	ErrKindDescriptor ErrKind = iota // malformed or unresolvable descriptor/member
	ErrKindRange                     // NumericRange validation failure
	ErrKindState                     // operation invalid for current value state
)

// Error is a typed error carrying the StatusCode an equivalent bare-status
// API would have returned, so callers bridging the two styles don't need a
// separate translation table.
type Error struct {
	Kind   ErrKind
	Status StatusCode
	Msg    string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := fmt.Sprintf("%s (%s)", e.Msg, e.Status)
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }
