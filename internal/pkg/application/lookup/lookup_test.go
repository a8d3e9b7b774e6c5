package lookup

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/diwise/pubchem/pkg/pubchem/client"
	pcerrors "github.com/diwise/pubchem/pkg/pubchem/errors"
	testutils "github.com/diwise/service-chassis/pkg/test/http"
	"github.com/diwise/service-chassis/pkg/test/http/expects"
	"github.com/diwise/service-chassis/pkg/test/http/response"

	"github.com/matryer/is"
)

var Expects = testutils.Expects
var Returns = testutils.Returns
var anyInput = expects.AnyInput
var path = expects.RequestPath
var body = expects.RequestBody

func TestLoadConfiguration(t *testing.T) {
	is := is.New(t)

	cfg, err := LoadConfiguration(bytes.NewBufferString(batchYAML))
	is.NoErr(err)

	is.Equal(len(cfg.Lookups), 2)
	is.Equal(cfg.Lookups[0].Namespace, "cid")
	is.Equal(cfg.Lookups[0].Identifier, "2244")
	is.Equal(cfg.Lookups[0].Properties, []string{"MolecularFormula", "Title"})
	is.Equal(cfg.Lookups[1].Operation, OperationSynonyms)
}

func TestLookupProperties(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(is, path("/compound/cid/property/MolecularFormula/XML"), body("cid=2244")),
		Returns(response.Code(http.StatusOK), response.Body([]byte(propertiesXML))),
	)
	defer s.Close()

	svc := New(client.NewPubChemClient(s.URL()))

	result, err := svc.Lookup(context.Background(), Request{
		Namespace: "cid", Identifier: "2244", Properties: []string{"molecularformula"},
	})

	is.NoErr(err)
	is.Equal(result.Operation, OperationProperties)
	is.Equal(*result.Properties.MolecularFormula, "C9H8O4")
}

func TestLookupWithoutPropertiesRequestsAll(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(is, path("/compound/name/"+propertyPathForAll()+"/XML")),
		Returns(response.Code(http.StatusOK), response.Body([]byte(propertiesXML))),
	)
	defer s.Close()

	svc := New(client.NewPubChemClient(s.URL()))

	_, err := svc.Lookup(context.Background(), Request{Namespace: "name", Identifier: "aspirin"})

	is.NoErr(err)
}

func TestLookupCIDs(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(is, path("/compound/name/cids/XML"), body("name=aspirin")),
		Returns(response.Code(http.StatusOK), response.Body([]byte(cidsXML))),
	)
	defer s.Close()

	svc := New(client.NewPubChemClient(s.URL()))

	result, err := svc.Lookup(context.Background(), Request{Namespace: "name", Identifier: "aspirin", Operation: "CIDs"})

	is.NoErr(err)
	is.Equal(result.CIDs, []int32{2244})
}

func TestLookupRejectsInvalidRequests(t *testing.T) {
	is := is.New(t)

	svc := New(client.NewPubChemClient("http://localhost:0"))
	ctx := context.Background()

	_, err := svc.Lookup(ctx, Request{Namespace: "formula", Identifier: "C9H8O4"})
	is.True(errors.Is(err, pcerrors.ErrInvalidRequest))

	_, err = svc.Lookup(ctx, Request{Namespace: "cid", Identifier: " "})
	is.True(errors.Is(err, pcerrors.ErrInvalidRequest))

	_, err = svc.Lookup(ctx, Request{Namespace: "cid", Identifier: "2244", Operation: "structure"})
	is.True(errors.Is(err, pcerrors.ErrInvalidRequest))

	_, err = svc.Lookup(ctx, Request{Namespace: "cid", Identifier: "2244", Properties: []string{"Colour"}})
	is.True(errors.Is(err, pcerrors.ErrInvalidRequest))
}

func TestRunBatchContinuesAfterFailure(t *testing.T) {
	is := is.New(t)

	svc := &ServiceMock{
		LookupFunc: func(ctx context.Context, req Request) (*Result, error) {
			if req.Identifier == "missing" {
				return nil, pcerrors.NewErrorFromFault(pcerrors.FaultCodeNotFound, "No CID found", nil)
			}
			return &Result{Namespace: req.Namespace, Identifier: req.Identifier, Operation: OperationCIDs, CIDs: []int32{1}}, nil
		},
	}

	results, failures := RunBatch(context.Background(), svc, &Config{
		Lookups: []Request{
			{Namespace: "name", Identifier: "missing", Operation: OperationCIDs},
			{Namespace: "name", Identifier: "aspirin", Operation: OperationCIDs},
		},
	})

	is.Equal(failures, 1)
	is.Equal(len(results), 2)
	is.Equal(results[0].Error, "No CID found")
	is.Equal(results[1].CIDs, []int32{1})
	is.Equal(len(svc.LookupCalls()), 2)
}

func propertyPathForAll() string {
	names := ""
	for idx, p := range client.AllProperties() {
		if idx > 0 {
			names += ","
		}
		names += p.Name()
	}
	return "property/" + names
}

const batchYAML string = `
lookups:
  - namespace: cid
    identifier: "2244"
    properties:
      - MolecularFormula
      - Title
  - namespace: name
    identifier: acetone
    operation: synonyms
`

const propertiesXML string = `<?xml version="1.0" encoding="UTF-8"?>
<PropertyTable>
  <Properties>
    <CID>2244</CID>
    <MolecularFormula>C9H8O4</MolecularFormula>
  </Properties>
</PropertyTable>`

const cidsXML string = `<?xml version="1.0" encoding="UTF-8"?>
<IdentifierList>
  <CID>2244</CID>
</IdentifierList>`
