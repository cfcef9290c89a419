package smtpcore

import (
	"fmt"
)

// A Response is a parsed server reply: a three-digit status code and one or
// more message lines. It is immutable once constructed; the reply parser
// builds it, CheckResponse classifies it.
type Response struct {
	code  int
	lines []string
}

// NewResponse returns a response with the given status code and message
// lines. A reply with no text still carries one empty line so Lines never
// returns an empty slice.
func NewResponse(code int, lines ...string) Response {
	if len(lines) == 0 {
		lines = []string{""}
	}
	return Response{code: code, lines: lines}
}

// Code returns the three-digit status code.
func (r Response) Code() int {
	return r.code
}

// Lines returns the message lines of the reply.
func (r Response) Lines() []string {
	return r.lines
}

// IsErroneous reports whether the reply signals failure. Only the leading
// digit matters: 4 (transient) and 5 (permanent) are errors.
func (r Response) IsErroneous() bool {
	d := r.code / 100
	return d == 4 || d == 5
}

// IsPositive reports whether the reply is a 2xx completion reply.
func (r Response) IsPositive() bool {
	return r.code/100 == 2
}

// IsIntermediate reports whether the reply is a 3xx reply, i.e. the server
// expects more input before completing the command (e.g. 354 after DATA).
func (r Response) IsIntermediate() bool {
	return r.code/100 == 3
}

func (r Response) String() string {
	return fmt.Sprintf("%d %s", r.code, r.lines[0])
}

// CheckResponse is the single chokepoint all raw server replies pass
// through before a command implementation may trust them. It returns the
// response unchanged unless its code is in the error range, in which case
// it fails with a *LogicError of kind KindCode carrying the offending
// response.
//
// Whether a non-error code is nevertheless wrong for the current command
// phase is the command layer's judgment; it reports such replies with
// UnexpectedCodeError.
func CheckResponse(resp Response) (Response, error) {
	if resp.IsErroneous() {
		return resp, CodeError(resp)
	}
	return resp, nil
}
