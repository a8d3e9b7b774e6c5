package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strconv"
	"strings"
	"time"

	pcerrors "github.com/diwise/pubchem/pkg/pubchem/errors"
	"github.com/diwise/pubchem/pkg/pubchem/rest"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const DefaultBaseURL string = "https://pubchem.ncbi.nlm.nih.gov/rest/pug"

// Namespace is the kind of identifier used to look up a compound
type Namespace string

const (
	NamespaceCID      Namespace = "cid"
	NamespaceName     Namespace = "name"
	NamespaceSMILES   Namespace = "smiles"
	NamespaceInChI    Namespace = "inchi"
	NamespaceInChIKey Namespace = "inchikey"
)

func ParseNamespace(ns string) (Namespace, error) {
	switch n := Namespace(strings.ToLower(ns)); n {
	case NamespaceCID, NamespaceName, NamespaceSMILES, NamespaceInChI, NamespaceInChIKey:
		return n, nil
	}

	return "", fmt.Errorf("unknown namespace %q (%w)", ns, pcerrors.ErrInvalidRequest)
}

type PubChemClient interface {
	Compound(namespace Namespace, identifier string) Compound
	CompoundByCID(cid int32) Compound
	CompoundByName(name string) Compound
	CompoundBySMILES(smiles string) Compound
	CompoundByInChI(inchi string) Compound
	CompoundByInChIKey(inchikey string) Compound
}

// Compound is a handle to a single compound in the PubChem database. No
// request is made until one of the retrieval methods is called.
type Compound interface {
	Namespace() Namespace
	Identifier() string

	Properties(ctx context.Context, properties ...CompoundProperty) (*rest.Properties, error)
	Title(ctx context.Context) (*string, error)
	MolecularFormula(ctx context.Context) (*string, error)

	CIDs(ctx context.Context) ([]int32, error)
	SIDs(ctx context.Context) ([]int32, error)
	AIDs(ctx context.Context) ([]int32, error)

	Synonyms(ctx context.Context) ([]string, error)
	Descriptions(ctx context.Context) ([]rest.Information, error)
}

func Debug(enabled string) func(*pcClient) {
	return func(c *pcClient) {
		c.debug = (enabled == "true")
	}
}

func Timeout(timeout time.Duration) func(*pcClient) {
	return func(c *pcClient) {
		c.httpClient.Timeout = timeout
	}
}

func NewPubChemClient(baseURL string, options ...func(*pcClient)) PubChemClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &pcClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		debug:   false,
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}

	for _, option := range options {
		option(c)
	}

	return c
}

const (
	TraceAttributeNamespace  string = "pubchem-namespace"
	TraceAttributeIdentifier string = "pubchem-identifier"
)

var tracer = otel.Tracer("pubchem-client")

type pcClient struct {
	baseURL    string
	debug      bool
	httpClient *http.Client
}

func (c *pcClient) Compound(namespace Namespace, identifier string) Compound {
	return &compound{client: c, namespace: namespace, identifier: identifier}
}

func (c *pcClient) CompoundByCID(cid int32) Compound {
	return c.Compound(NamespaceCID, strconv.FormatInt(int64(cid), 10))
}

func (c *pcClient) CompoundByName(name string) Compound {
	return c.Compound(NamespaceName, name)
}

func (c *pcClient) CompoundBySMILES(smiles string) Compound {
	return c.Compound(NamespaceSMILES, smiles)
}

func (c *pcClient) CompoundByInChI(inchi string) Compound {
	return c.Compound(NamespaceInChI, inchi)
}

func (c *pcClient) CompoundByInChIKey(inchikey string) Compound {
	return c.Compound(NamespaceInChIKey, inchikey)
}

type compound struct {
	client     *pcClient
	namespace  Namespace
	identifier string
}

func (cmp *compound) Namespace() Namespace { return cmp.namespace }
func (cmp *compound) Identifier() string   { return cmp.identifier }

func (cmp *compound) Properties(ctx context.Context, properties ...CompoundProperty) (*rest.Properties, error) {
	var err error

	ctx, span := cmp.startSpan(ctx, "retrieve-properties")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	if len(properties) == 0 {
		err = fmt.Errorf("at least one property must be requested (%w)", pcerrors.ErrInvalidRequest)
		return nil, err
	}

	table, err := retrieve[rest.PropertyTable](ctx, cmp, propertyPath(properties))
	if err != nil {
		return nil, err
	}

	if len(table.Properties) == 0 {
		err = pcerrors.NewBadResponseError("property table contained no properties")
		return nil, err
	}

	return &table.Properties[len(table.Properties)-1], nil
}

func (cmp *compound) Title(ctx context.Context) (*string, error) {
	p, err := cmp.Properties(ctx, Title)
	if err != nil {
		return nil, err
	}
	return p.Title, nil
}

func (cmp *compound) MolecularFormula(ctx context.Context) (*string, error) {
	p, err := cmp.Properties(ctx, MolecularFormula)
	if err != nil {
		return nil, err
	}
	return p.MolecularFormula, nil
}

func (cmp *compound) CIDs(ctx context.Context) ([]int32, error) {
	var err error

	ctx, span := cmp.startSpan(ctx, "retrieve-cids")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	list, err := retrieve[rest.IdentifierList](ctx, cmp, "cids")
	if err != nil {
		return nil, err
	}

	return list.CIDs, nil
}

func (cmp *compound) SIDs(ctx context.Context) ([]int32, error) {
	var err error

	ctx, span := cmp.startSpan(ctx, "retrieve-sids")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	list, err := retrieve[rest.InformationList](ctx, cmp, "sids")
	if err != nil {
		return nil, err
	}

	sids, err := collect(list, func(i rest.Information) []int32 { return i.SIDs })
	return sids, err
}

func (cmp *compound) AIDs(ctx context.Context) ([]int32, error) {
	var err error

	ctx, span := cmp.startSpan(ctx, "retrieve-aids")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	list, err := retrieve[rest.InformationList](ctx, cmp, "aids")
	if err != nil {
		return nil, err
	}

	aids, err := collect(list, func(i rest.Information) []int32 { return i.AIDs })
	return aids, err
}

func (cmp *compound) Synonyms(ctx context.Context) ([]string, error) {
	var err error

	ctx, span := cmp.startSpan(ctx, "retrieve-synonyms")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	list, err := retrieve[rest.InformationList](ctx, cmp, "synonyms")
	if err != nil {
		return nil, err
	}

	synonyms, err := collect(list, func(i rest.Information) []string { return i.Synonyms })
	return synonyms, err
}

func (cmp *compound) Descriptions(ctx context.Context) ([]rest.Information, error) {
	var err error

	ctx, span := cmp.startSpan(ctx, "retrieve-descriptions")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	list, err := retrieve[rest.InformationList](ctx, cmp, "description")
	if err != nil {
		return nil, err
	}

	return list.Information, nil
}

func (cmp *compound) startSpan(ctx context.Context, operation string) (context.Context, trace.Span) {
	return tracer.Start(ctx, operation,
		trace.WithAttributes(attribute.String(TraceAttributeNamespace, string(cmp.namespace))),
		trace.WithAttributes(attribute.String(TraceAttributeIdentifier, cmp.identifier)),
	)
}

// collect concatenates a field of every information record in the list
func collect[T any](list *rest.InformationList, field func(rest.Information) []T) ([]T, error) {
	if len(list.Information) == 0 {
		return nil, pcerrors.NewBadResponseError("information list contained no information records")
	}

	result := []T{}
	for _, info := range list.Information {
		result = append(result, field(info)...)
	}

	return result, nil
}

// retrieve performs the operation for the compound and decodes the response
// into the record type expected for that operation
func retrieve[T rest.Record](ctx context.Context, cmp *compound, operation string) (*T, error) {
	response, err := cmp.client.callPubChem(ctx, cmp.namespace, cmp.identifier, operation)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	return rest.Decode[T](response.Body)
}

// callPubChem posts the request for an operation and funnels the response
// into either an error or a response whose body holds the requested document.
// The caller is responsible for closing the body of a returned response.
func (c *pcClient) callPubChem(ctx context.Context, namespace Namespace, identifier, operation string) (*http.Response, error) {
	endpoint := fmt.Sprintf("%s/compound/%s/%s/XML", c.baseURL, namespace, operation)

	form := url.Values{}
	form.Set(string(namespace), identifier)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %s (%w)", err.Error(), pcerrors.ErrInternal)
	}

	req.Header.Add("Accept", "application/xml")
	req.Header.Add("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %s (%w)", err.Error(), pcerrors.ErrRequest)
	}

	if resp.StatusCode == http.StatusOK {
		return resp, nil
	}

	defer resp.Body.Close()

	if c.debug {
		reqbytes, _ := httputil.DumpRequest(req, false)
		respbytes, _ := httputil.DumpResponse(resp, false)

		log := logging.GetFromContext(ctx)
		log.Error("request failed", "request", string(reqbytes), "response", string(respbytes))
	}

	contentType := resp.Header.Get("Content-Type")

	if pcerrors.IsFaultStatus(resp.StatusCode) {
		err = rest.DecodeFault(resp.Body)
		if err != nil && !isFault(err) {
			return nil, fmt.Errorf("failed to decode fault from response with status code %d: %w", resp.StatusCode, err)
		}
		return nil, err
	}

	// drain the body so that the connection can be reused
	io.Copy(io.Discard, resp.Body)

	return nil, pcerrors.NewStatusError(resp.StatusCode, contentType)
}

func isFault(err error) bool {
	var fault *pcerrors.FaultError
	return errors.As(err, &fault)
}
