package errors

import (
	"fmt"
	"net/http"
)

// Errors reported by the PUG-REST service in a fault document
var ErrBadRequest = fmt.Errorf("bad request")
var ErrNotFound = fmt.Errorf("not found")
var ErrNotAllowed = fmt.Errorf("not allowed")
var ErrTimeout = fmt.Errorf("timeout")
var ErrServerBusy = fmt.Errorf("server busy")
var ErrUnimplemented = fmt.Errorf("unimplemented")
var ErrServerError = fmt.Errorf("server error")
var ErrUnknown = fmt.Errorf("unknown error")

// Errors raised on the client side of the exchange
var ErrInternal = fmt.Errorf("internal error")
var ErrInvalidRequest = fmt.Errorf("invalid request")
var ErrRequest = fmt.Errorf("request error")
var ErrBadResponse = fmt.Errorf("bad response")
var ErrParse = fmt.Errorf("parse error")

// Fault codes as defined by the PUG-REST service
const (
	FaultCodeBadRequest    string = "PUGREST.BadRequest"
	FaultCodeNotFound      string = "PUGREST.NotFound"
	FaultCodeNotAllowed    string = "PUGREST.NotAllowed"
	FaultCodeTimeout       string = "PUGREST.Timeout"
	FaultCodeServerBusy    string = "PUGREST.ServerBusy"
	FaultCodeUnimplemented string = "PUGREST.Unimplemented"
	FaultCodeServerError   string = "PUGREST.ServerError"
)

var faultTargets = map[string]error{
	FaultCodeBadRequest:    ErrBadRequest,
	FaultCodeNotFound:      ErrNotFound,
	FaultCodeNotAllowed:    ErrNotAllowed,
	FaultCodeTimeout:       ErrTimeout,
	FaultCodeServerBusy:    ErrServerBusy,
	FaultCodeUnimplemented: ErrUnimplemented,
	FaultCodeServerError:   ErrServerError,
}

type myError struct {
	msg    string
	target error
}

func (m myError) Error() string        { return m.msg }
func (m myError) Is(target error) bool { return target == m.target }

func NewBadResponseError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrBadResponse,
	}
}

// FaultError is the typed error recovered from a PUG-REST fault document.
// Error returns the fault message verbatim.
type FaultError struct {
	Code    string
	Message string
	Details []string

	target error
}

func (f *FaultError) Error() string        { return f.Message }
func (f *FaultError) Is(target error) bool { return target == f.target }

// Kind returns the sentinel error this fault was classified as
func (f *FaultError) Kind() error {
	return f.target
}

// NewErrorFromFault maps a service defined fault code onto the closed set of
// fault errors. Unrecognized codes are reported as ErrUnknown with the
// original message preserved.
func NewErrorFromFault(code, message string, details []string) error {
	target, ok := faultTargets[code]
	if !ok {
		target = ErrUnknown
	}

	return &FaultError{
		Code:    code,
		Message: message,
		Details: details,
		target:  target,
	}
}

// IsFaultStatus reports if a response with the given status code is
// expected to carry a fault document
func IsFaultStatus(code int) bool {
	switch code {
	case http.StatusBadRequest,
		http.StatusNotFound,
		http.StatusMethodNotAllowed,
		http.StatusInternalServerError,
		http.StatusNotImplemented,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

// StatusError is returned for error statuses that are not eligible for
// fault decoding
type StatusError struct {
	StatusCode  int
	ContentType string
}

func (s *StatusError) Error() string {
	return fmt.Sprintf("unexpected response code %d (content-type: %s)", s.StatusCode, s.ContentType)
}

func (s *StatusError) Is(target error) bool { return target == ErrRequest }

func NewStatusError(code int, contentType string) error {
	return &StatusError{StatusCode: code, ContentType: contentType}
}

type ParseKind int

const (
	ParseInt ParseKind = iota
	ParseFloat
)

func (k ParseKind) String() string {
	if k == ParseFloat {
		return "float"
	}
	return "integer"
}

// ParseError reports element text that does not match the numeric grammar
// expected for that element
type ParseError struct {
	Kind    ParseKind
	Element string
	Text    string
	Err     error
}

func (p *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s from element %s: %q (%s)", p.Kind, p.Element, p.Text, p.Err.Error())
}

func (p *ParseError) Is(target error) bool { return target == ErrParse }
func (p *ParseError) Unwrap() error        { return p.Err }
