package lookup

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/diwise/pubchem/pkg/pubchem/client"
	pcerrors "github.com/diwise/pubchem/pkg/pubchem/errors"
	"github.com/diwise/pubchem/pkg/pubchem/rest"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

//go:generate moq -rm -out lookup_mock.go . Service

type Operation string

const (
	OperationProperties   Operation = "properties"
	OperationCIDs         Operation = "cids"
	OperationSIDs         Operation = "sids"
	OperationAIDs         Operation = "aids"
	OperationSynonyms     Operation = "synonyms"
	OperationDescriptions Operation = "descriptions"
)

func ParseOperation(op string) (Operation, error) {
	switch o := Operation(strings.ToLower(strings.TrimSpace(op))); o {
	case "":
		return OperationProperties, nil
	case OperationProperties, OperationCIDs, OperationSIDs, OperationAIDs, OperationSynonyms, OperationDescriptions:
		return o, nil
	}

	return "", fmt.Errorf("unknown operation %q (%w)", op, pcerrors.ErrInvalidRequest)
}

// Result holds the outcome of a lookup. Only the field matching the
// operation is populated, and Error is only set by RunBatch.
type Result struct {
	Namespace    string             `json:"namespace" yaml:"namespace"`
	Identifier   string             `json:"identifier" yaml:"identifier"`
	Operation    Operation          `json:"operation" yaml:"operation"`
	Properties   *rest.Properties   `json:"properties,omitempty" yaml:"properties,omitempty"`
	CIDs         []int32            `json:"cids,omitempty" yaml:"cids,omitempty"`
	SIDs         []int32            `json:"sids,omitempty" yaml:"sids,omitempty"`
	AIDs         []int32            `json:"aids,omitempty" yaml:"aids,omitempty"`
	Synonyms     []string           `json:"synonyms,omitempty" yaml:"synonyms,omitempty"`
	Descriptions []rest.Information `json:"descriptions,omitempty" yaml:"descriptions,omitempty"`
	Error        string             `json:"error,omitempty" yaml:"error,omitempty"`
}

type Service interface {
	Lookup(ctx context.Context, req Request) (*Result, error)
}

func New(pc client.PubChemClient) Service {
	return &lookupSvc{pc: pc}
}

type lookupSvc struct {
	pc client.PubChemClient
}

func (svc *lookupSvc) Lookup(ctx context.Context, req Request) (*Result, error) {
	ns, err := client.ParseNamespace(req.Namespace)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Identifier) == "" {
		return nil, fmt.Errorf("an identifier is required (%w)", pcerrors.ErrInvalidRequest)
	}

	op, err := ParseOperation(string(req.Operation))
	if err != nil {
		return nil, err
	}

	result := &Result{Namespace: string(ns), Identifier: req.Identifier, Operation: op}
	cmp := svc.pc.Compound(ns, req.Identifier)

	ctx = logging.NewContextWithLogger(ctx, logging.GetFromContext(ctx),
		slog.String("namespace", string(ns)), slog.String("operation", string(op)))

	switch op {
	case OperationProperties:
		var props []client.CompoundProperty
		props, err = propertiesOrAll(req.Properties)
		if err != nil {
			return nil, err
		}
		result.Properties, err = cmp.Properties(ctx, props...)
	case OperationCIDs:
		result.CIDs, err = cmp.CIDs(ctx)
	case OperationSIDs:
		result.SIDs, err = cmp.SIDs(ctx)
	case OperationAIDs:
		result.AIDs, err = cmp.AIDs(ctx)
	case OperationSynonyms:
		result.Synonyms, err = cmp.Synonyms(ctx)
	case OperationDescriptions:
		result.Descriptions, err = cmp.Descriptions(ctx)
	}

	if err != nil {
		logging.GetFromContext(ctx).Debug("lookup failed", "err", err.Error())
		return nil, err
	}

	return result, nil
}

func propertiesOrAll(names []string) ([]client.CompoundProperty, error) {
	props, err := client.ParseCompoundProperties(names)
	if err != nil {
		return nil, err
	}

	if len(props) == 0 {
		return client.AllProperties(), nil
	}

	return props, nil
}

// RunBatch performs every lookup in the configuration in order. A failed
// lookup does not stop the batch, its error is recorded in the result and
// the number of failures is returned alongside the results.
func RunBatch(ctx context.Context, svc Service, cfg *Config) ([]Result, int) {
	results := make([]Result, 0, len(cfg.Lookups))
	failures := 0

	for _, req := range cfg.Lookups {
		r, err := svc.Lookup(ctx, req)
		if err != nil {
			failures++
			results = append(results, Result{
				Namespace:  req.Namespace,
				Identifier: req.Identifier,
				Operation:  req.Operation,
				Error:      err.Error(),
			})
			continue
		}

		results = append(results, *r)
	}

	return results, failures
}
