package main

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/diwise/service-chassis/pkg/infrastructure/servicerunner"
	testutils "github.com/diwise/service-chassis/pkg/test/http"
	"github.com/diwise/service-chassis/pkg/test/http/expects"
	"github.com/diwise/service-chassis/pkg/test/http/response"

	"github.com/matryer/is"
)

var Expects = testutils.Expects
var Returns = testutils.Returns
var method = expects.RequestMethod
var path = expects.RequestPath

var dowork = servicerunner.WithWorker[AppConfig]

func DefaultTestFlags(url string) FlagMap {
	return FlagMap{
		listenAddress: "",  // listen on all ipv4 and ipv6 interfaces
		servicePort:   "0", //

		pubchemURL:     url,
		pubchemTimeout: "5s",
		pubchemDebug:   "false",
	}
}

func TestIntegrateRetrieveCIDsByName(t *testing.T) {
	is := is.New(t)
	ctx, cancelTest := context.WithCancel(t.Context())

	ms := testutils.NewMockServiceThat(
		Expects(
			is,
			method(http.MethodPost),
			path("/compound/name/cids/XML"),
			expects.RequestBody("name=aspirin"),
		),
		Returns(
			response.ContentType("application/xml"),
			response.Code(http.StatusOK),
			response.Body([]byte(cidsResponseBody)),
		),
	)
	defer ms.Close()

	app, err := initialize(ctx, DefaultTestFlags(ms.URL()), &AppConfig{})
	is.NoErr(err)

	err = app.Run(ctx, dowork(func(ctx context.Context, appConfig *AppConfig) error {
		defer cancelTest()

		response, responseBody := testRequest(appConfig.publicPort, http.MethodGet, "/api/v0/compounds/name/aspirin/cids", nil)

		is.True(response != nil)
		is.Equal(response.StatusCode, http.StatusOK)
		is.Equal(responseBody, "[2244]")

		return nil
	}))
	is.NoErr(err)
}

func TestIntegrateNotFoundFault(t *testing.T) {
	is := is.New(t)
	ctx, cancelTest := context.WithCancel(t.Context())

	ms := testutils.NewMockServiceThat(
		Expects(is, path("/compound/name/property/Title/XML")),
		Returns(
			response.ContentType("application/xml"),
			response.Code(http.StatusNotFound),
			response.Body([]byte(notFoundResponseBody)),
		),
	)
	defer ms.Close()

	app, err := initialize(ctx, DefaultTestFlags(ms.URL()), &AppConfig{})
	is.NoErr(err)

	err = app.Run(ctx, dowork(func(ctx context.Context, appConfig *AppConfig) error {
		defer cancelTest()

		response, _ := testRequest(appConfig.publicPort, http.MethodGet, "/api/v0/compounds/name/unobtainium/properties?property=title", nil)

		is.True(response != nil)
		is.Equal(response.StatusCode, http.StatusNotFound)
		is.Equal(response.Header.Get("Content-Type"), "application/problem+json")

		return nil
	}))
	is.NoErr(err)
}

func TestIntegrateLivenessIsServedNextToTheAPI(t *testing.T) {
	is := is.New(t)
	ctx, cancelTest := context.WithCancel(t.Context())

	app, err := initialize(ctx, DefaultTestFlags("http://127.0.0.1:1"), &AppConfig{})
	is.NoErr(err)

	err = app.Run(ctx, dowork(func(ctx context.Context, appConfig *AppConfig) error {
		defer cancelTest()

		response, _ := testRequest(appConfig.publicPort, http.MethodGet, "/livez", nil)

		is.True(response != nil)
		is.Equal(response.StatusCode, http.StatusOK)

		return nil
	}))
	is.NoErr(err)
}

func TestInitializeRejectsInvalidTimeout(t *testing.T) {
	is := is.New(t)

	flags := DefaultTestFlags("")
	flags[pubchemTimeout] = "soon"

	_, err := initialize(t.Context(), flags, &AppConfig{})
	is.True(err != nil)
}

func TestCommandLineOverridesEnvironment(t *testing.T) {
	is := is.New(t)

	flags, err := parseExternalConfig([]string{"--port", "9090", "--debug"}, DefaultTestFlags("http://pubchem"))

	is.NoErr(err)
	is.Equal(flags[servicePort], "9090")
	is.Equal(flags[pubchemDebug], "true")
	is.Equal(flags[pubchemURL], "http://pubchem")
}

func testRequest(port, method, path string, body io.Reader) (*http.Response, string) {
	req, _ := http.NewRequest(method, "http://127.0.0.1:"+port+path, body)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, ""
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	return resp, string(respBody)
}

const cidsResponseBody string = `<?xml version="1.0" encoding="UTF-8"?>
<IdentifierList xmlns="http://pubchem.ncbi.nlm.nih.gov/pug_rest">
  <CID>2244</CID>
</IdentifierList>`

const notFoundResponseBody string = `<?xml version="1.0" encoding="UTF-8"?>
<Fault xmlns="http://pubchem.ncbi.nlm.nih.gov/pug_rest">
  <Code>PUGREST.NotFound</Code>
  <Message>No CID found</Message>
</Fault>`
