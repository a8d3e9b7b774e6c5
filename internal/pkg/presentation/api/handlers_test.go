package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/diwise/pubchem/internal/pkg/application/lookup"
	"github.com/diwise/pubchem/internal/pkg/presentation/api/problems"
	pcerrors "github.com/diwise/pubchem/pkg/pubchem/errors"
	"github.com/diwise/pubchem/pkg/pubchem/rest"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/go-chi/chi/v5"
	"github.com/matryer/is"
)

func TestRetrieveProperties(t *testing.T) {
	is, ts, svc := setupTest(t)
	defer ts.Close()

	resp, body := newTestRequest(is, ts, "/api/v0/compounds/cid/2244/properties?property=MolecularFormula,Title")

	is.Equal(resp.StatusCode, http.StatusOK) // Check status code
	is.Equal(resp.Header.Get("Content-Type"), "application/json")
	is.True(strings.Contains(body, `"molecularFormula":"C9H8O4"`))

	calls := svc.LookupCalls()
	is.Equal(len(calls), 1)
	is.Equal(calls[0].Req.Namespace, "cid")
	is.Equal(calls[0].Req.Identifier, "2244")
	is.Equal(calls[0].Req.Operation, lookup.OperationProperties)
	is.Equal(calls[0].Req.Properties, []string{"MolecularFormula", "Title"})
}

func TestRetrieveCIDsWithEncodedIdentifier(t *testing.T) {
	is, ts, svc := setupTest(t)
	defer ts.Close()

	svc.LookupFunc = func(ctx context.Context, req lookup.Request) (*lookup.Result, error) {
		return &lookup.Result{CIDs: []int32{180}}, nil
	}

	resp, body := newTestRequest(is, ts, "/api/v0/compounds/inchi/InChI%3D1S%2FC3H6O%2Fc1-3%282%294%2Fh1-2H3/cids")

	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(body, "[180]")
	is.Equal(svc.LookupCalls()[0].Req.Identifier, "InChI=1S/C3H6O/c1-3(2)4/h1-2H3")
}

func TestEmptyListIsEncodedAsEmptyArray(t *testing.T) {
	is, ts, svc := setupTest(t)
	defer ts.Close()

	svc.LookupFunc = func(ctx context.Context, req lookup.Request) (*lookup.Result, error) {
		return &lookup.Result{}, nil
	}

	resp, body := newTestRequest(is, ts, "/api/v0/compounds/cid/2244/synonyms")

	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(body, "[]")
}

func TestNotFoundFaultIsReportedAsNotFound(t *testing.T) {
	is, ts, svc := setupTest(t)
	defer ts.Close()

	svc.LookupFunc = func(ctx context.Context, req lookup.Request) (*lookup.Result, error) {
		return nil, pcerrors.NewErrorFromFault(pcerrors.FaultCodeNotFound, "No CID found", nil)
	}

	resp, body := newTestRequest(is, ts, "/api/v0/compounds/name/nothing/cids")

	is.Equal(resp.StatusCode, http.StatusNotFound)
	is.Equal(resp.Header.Get("Content-Type"), problems.ProblemReportContentType)
	is.True(strings.Contains(body, `"detail": "No CID found"`))
	is.True(strings.Contains(body, `"instance": "urn:`))
}

func TestLookupErrorsAreMappedToStatusCodes(t *testing.T) {
	is, ts, svc := setupTest(t)
	defer ts.Close()

	cases := map[error]int{
		fmt.Errorf("unknown namespace (%w)", pcerrors.ErrInvalidRequest):                      http.StatusBadRequest,
		pcerrors.NewErrorFromFault(pcerrors.FaultCodeBadRequest, "bad", nil):                   http.StatusBadRequest,
		pcerrors.NewErrorFromFault(pcerrors.FaultCodeNotAllowed, "not allowed", nil):           http.StatusMethodNotAllowed,
		pcerrors.NewErrorFromFault(pcerrors.FaultCodeTimeout, "timeout", nil):                  http.StatusGatewayTimeout,
		pcerrors.NewErrorFromFault(pcerrors.FaultCodeServerBusy, "busy", nil):                  http.StatusServiceUnavailable,
		pcerrors.NewErrorFromFault(pcerrors.FaultCodeUnimplemented, "unimplemented", nil):      http.StatusNotImplemented,
		pcerrors.NewErrorFromFault(pcerrors.FaultCodeServerError, "server error", nil):         http.StatusBadGateway,
		pcerrors.NewErrorFromFault("PUGREST.Weird", "weird", nil):                              http.StatusBadGateway,
		pcerrors.NewStatusError(http.StatusForbidden, "text/html"):                             http.StatusBadGateway,
		pcerrors.NewBadResponseError("property table contained no properties"):                 http.StatusBadGateway,
		errors.New("some unknown error"):                                                      http.StatusBadGateway,
	}

	for err, code := range cases {
		svc.LookupFunc = func(ctx context.Context, req lookup.Request) (*lookup.Result, error) {
			return nil, err
		}

		resp, _ := newTestRequest(is, ts, "/api/v0/compounds/cid/2244/aids")

		is.Equal(resp.StatusCode, code) // Check status code
	}
}

func TestClientErrorsAreNotLoggedAsErrors(t *testing.T) {
	is := is.New(t)

	logs := &bytes.Buffer{}
	ctx := logging.NewContextWithLogger(context.Background(), slog.New(slog.NewJSONHandler(logs, nil)))

	svc := &lookup.ServiceMock{
		LookupFunc: func(ctx context.Context, req lookup.Request) (*lookup.Result, error) {
			if req.Identifier == "busy" {
				return nil, pcerrors.NewErrorFromFault(pcerrors.FaultCodeServerBusy, "Too many requests", nil)
			}
			return nil, pcerrors.NewErrorFromFault(pcerrors.FaultCodeNotFound, "No CID found", nil)
		},
	}

	r := chi.NewRouter()
	RegisterHandlers(ctx, r, svc)
	ts := httptest.NewServer(r)
	defer ts.Close()

	resp, _ := newTestRequest(is, ts, "/api/v0/compounds/name/nothing/cids")
	is.Equal(resp.StatusCode, http.StatusNotFound)
	is.True(strings.Contains(logs.String(), `"level":"INFO","msg":"lookup rejected"`))
	is.True(!strings.Contains(logs.String(), `"level":"ERROR"`))

	logs.Reset()

	resp, _ = newTestRequest(is, ts, "/api/v0/compounds/name/busy/cids")
	is.Equal(resp.StatusCode, http.StatusServiceUnavailable)
	is.True(strings.Contains(logs.String(), `"level":"ERROR","msg":"lookup failed"`))
}

func newTestRequest(is *is.I, ts *httptest.Server, path string) (*http.Response, string) {
	req, _ := http.NewRequest(http.MethodGet, ts.URL+path, nil)

	resp, err := http.DefaultClient.Do(req)
	is.NoErr(err) // http request failed
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	is.NoErr(err) // failed to read response body

	return resp, string(respBody)
}

func setupTest(t *testing.T) (*is.I, *httptest.Server, *lookup.ServiceMock) {
	is := is.New(t)
	r := chi.NewRouter()
	ts := httptest.NewServer(r)

	formula := "C9H8O4"
	title := "Aspirin"

	svc := &lookup.ServiceMock{
		LookupFunc: func(ctx context.Context, req lookup.Request) (*lookup.Result, error) {
			return &lookup.Result{
				Namespace:  req.Namespace,
				Identifier: req.Identifier,
				Operation:  req.Operation,
				Properties: &rest.Properties{CID: 2244, MolecularFormula: &formula, Title: &title},
			}, nil
		},
	}

	RegisterHandlers(context.Background(), r, svc)

	return is, ts, svc
}
