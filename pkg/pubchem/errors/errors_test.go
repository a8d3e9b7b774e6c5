package errors

import (
	"errors"
	"net/http"
	"strconv"
	"testing"

	"github.com/matryer/is"
)

func TestNotFoundFaultIsClassifiedAsNotFound(t *testing.T) {
	is := is.New(t)

	err := NewErrorFromFault("PUGREST.NotFound", "no results", nil)

	is.True(errors.Is(err, ErrNotFound))
	is.Equal(err.Error(), "no results")
}

func TestUnrecognizedFaultCodeIsClassifiedAsUnknown(t *testing.T) {
	is := is.New(t)

	err := NewErrorFromFault("PUGREST.Weird", "x", []string{"a", "b"})

	is.True(errors.Is(err, ErrUnknown))
	is.Equal(err.Error(), "x")

	var fault *FaultError
	is.True(errors.As(err, &fault))
	is.Equal(fault.Code, "PUGREST.Weird")
	is.Equal(fault.Details, []string{"a", "b"})
}

func TestAllFaultCodesAreClassified(t *testing.T) {
	is := is.New(t)

	for code, target := range map[string]error{
		"PUGREST.BadRequest":    ErrBadRequest,
		"PUGREST.NotFound":      ErrNotFound,
		"PUGREST.NotAllowed":    ErrNotAllowed,
		"PUGREST.Timeout":       ErrTimeout,
		"PUGREST.ServerBusy":    ErrServerBusy,
		"PUGREST.Unimplemented": ErrUnimplemented,
		"PUGREST.ServerError":   ErrServerError,
		"":                      ErrUnknown,
	} {
		err := NewErrorFromFault(code, "msg", nil)
		is.True(errors.Is(err, target)) // fault code should map onto its sentinel

		var fault *FaultError
		is.True(errors.As(err, &fault))
		is.Equal(fault.Kind(), target)
	}
}

func TestFaultErrorDoesNotMatchOtherKinds(t *testing.T) {
	is := is.New(t)

	err := NewErrorFromFault("PUGREST.Timeout", "too slow", nil)

	is.True(!errors.Is(err, ErrNotFound))
	is.True(!errors.Is(err, ErrRequest))
}

func TestFaultStatusCodes(t *testing.T) {
	is := is.New(t)

	eligible := map[int]bool{400: true, 404: true, 405: true, 500: true, 501: true, 503: true, 504: true}

	for code := 400; code < 600; code++ {
		is.Equal(IsFaultStatus(code), eligible[code]) // unexpected eligibility for status
	}

	is.True(!IsFaultStatus(http.StatusOK))
}

func TestStatusErrorIsRequestError(t *testing.T) {
	is := is.New(t)

	err := NewStatusError(http.StatusForbidden, "text/html")

	is.True(errors.Is(err, ErrRequest))
	is.Equal(err.Error(), "unexpected response code 403 (content-type: text/html)")
}

func TestParseErrorKeepsCause(t *testing.T) {
	is := is.New(t)

	_, cause := strconv.ParseInt("abc", 10, 32)
	err := error(&ParseError{Kind: ParseInt, Element: "Charge", Text: "abc", Err: cause})

	is.True(errors.Is(err, ErrParse))
	is.True(errors.Is(err, strconv.ErrSyntax))
	is.Equal(err.Error(), `failed to parse integer from element Charge: "abc" (strconv.ParseInt: parsing "abc": invalid syntax)`)
}

func TestBadResponseError(t *testing.T) {
	is := is.New(t)

	err := NewBadResponseError("empty property table")

	is.True(errors.Is(err, ErrBadResponse))
	is.Equal(err.Error(), "empty property table")
}
