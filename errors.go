package smtpcore

import (
	"strings"
)

// LogicErrorKind identifies which variant of LogicError is active.
type LogicErrorKind int

const (
	// KindCode means the response's status code itself signaled failure.
	KindCode LogicErrorKind = iota
	// KindUnexpectedCode means the status code was not an error but was
	// invalid in the command's current protocol phase.
	KindUnexpectedCode
	// KindCustom carries an error from a higher-level command
	// implementation, opaque to this package.
	KindCustom
)

// A LogicError is a protocol-level failure. Exactly one variant is active,
// fixed at construction: an erroneous response code (KindCode), a non-error
// code the command could not handle (KindUnexpectedCode), or an opaque
// command-specific error (KindCustom).
//
// For KindCustom the wrapped error is reachable through Unwrap, so the
// caller that issued the command can recover its own error type with
// errors.As.
type LogicError struct {
	kind LogicErrorKind
	resp Response
	err  error
}

// CodeError reports that the server replied with an error response code.
// The offending response is carried in the error so no information is lost.
func CodeError(resp Response) *LogicError {
	return &LogicError{kind: KindCode, resp: resp}
}

// UnexpectedCodeError reports that the server replied with a non-error
// code the command could not handle. For example on DATA the server
// responds with the intermediate code 354; if the client instead receives
// a 250 at that point something went wrong even though 250 is not an
// error.
func UnexpectedCodeError(resp Response) *LogicError {
	return &LogicError{kind: KindUnexpectedCode, resp: resp}
}

// CustomError wraps an error produced by a command implementation. The
// sender of the command knows which command it sent and can downcast the
// wrapped error accordingly.
func CustomError(err error) *LogicError {
	return &LogicError{kind: KindCustom, err: err}
}

// Kind returns the active variant.
func (e *LogicError) Kind() LogicErrorKind {
	return e.kind
}

// Response returns the offending server reply and true for KindCode and
// KindUnexpectedCode, and a zero Response and false for KindCustom.
func (e *LogicError) Response() (Response, bool) {
	if e.kind == KindCustom {
		return Response{}, false
	}
	return e.resp, true
}

func (e *LogicError) Error() string {
	switch e.kind {
	case KindCode:
		return "server responded with error response code: " + e.resp.String()
	case KindUnexpectedCode:
		return "server responded with unexpected non-error response code: " + e.resp.String()
	default:
		return e.err.Error()
	}
}

// Unwrap exposes the wrapped error of a KindCustom LogicError to
// errors.Is/errors.As. The other variants have no further cause.
func (e *LogicError) Unwrap() error {
	return e.err
}

// MissingCapabilities is the set of capabilities a command required but the
// server did not advertise, in the order the command declared them. It is a
// plain slice type so callers build and unwrap it with an ordinary
// conversion.
type MissingCapabilities []Capability

// Capabilities returns the missing capabilities as a plain slice.
func (m MissingCapabilities) Capabilities() []Capability {
	return []Capability(m)
}

func (m MissingCapabilities) Error() string {
	names := make([]string, len(m))
	for i, c := range m {
		names[i] = c.String()
	}
	return "missing capabilities: " + strings.Join(names, ", ")
}
