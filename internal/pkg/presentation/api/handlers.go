package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/diwise/pubchem/internal/pkg/application/lookup"
	"github.com/diwise/pubchem/internal/pkg/presentation/api/problems"
	pcerrors "github.com/diwise/pubchem/pkg/pubchem/errors"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	TraceAttributeNamespace  string = "pubchem-namespace"
	TraceAttributeIdentifier string = "pubchem-identifier"
)

var tracer = otel.Tracer("pubchem-api/compounds")

func RegisterHandlers(ctx context.Context, r chi.Router, svc lookup.Service) {
	logger := logging.GetFromContext(ctx)

	r.Route("/api/v0/compounds/{namespace}/{identifier}", func(r chi.Router) {
		r.Use(Logger(logger))

		r.Get("/properties", NewLookupHandler(svc, lookup.OperationProperties))
		r.Get("/cids", NewLookupHandler(svc, lookup.OperationCIDs))
		r.Get("/sids", NewLookupHandler(svc, lookup.OperationSIDs))
		r.Get("/aids", NewLookupHandler(svc, lookup.OperationAIDs))
		r.Get("/synonyms", NewLookupHandler(svc, lookup.OperationSynonyms))
		r.Get("/descriptions", NewLookupHandler(svc, lookup.OperationDescriptions))
	})
}

func Logger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			_, ctx, _ = o11y.AddTraceIDToLoggerAndStoreInContext(
				trace.SpanFromContext(ctx),
				logger,
				ctx)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// NewLookupHandler handles GET requests for a single kind of compound data
func NewLookupHandler(svc lookup.Service, operation lookup.Operation) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx := r.Context()

		namespace := chi.URLParam(r, "namespace")
		identifier, err := url.PathUnescape(chi.URLParam(r, "identifier"))
		if err != nil {
			problems.ReportInvalidRequest(w, "malformed identifier: "+err.Error(), "")
			return
		}

		ctx, span := tracer.Start(ctx, "lookup-"+string(operation),
			trace.WithAttributes(
				attribute.String(TraceAttributeNamespace, namespace),
				attribute.String(TraceAttributeIdentifier, identifier),
			),
		)
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		traceID, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		result, err := svc.Lookup(ctx, lookup.Request{
			Namespace:  namespace,
			Identifier: identifier,
			Operation:  operation,
			Properties: requestedProperties(r),
		})
		if err != nil {
			if isClientError(err) {
				log.Info("lookup rejected", "operation", operation, "err", err.Error())
			} else {
				log.Error("lookup failed", "operation", operation, "err", err.Error())
			}
			reportLookupError(w, err, traceID)
			return
		}

		var body []byte
		body, err = json.Marshal(payload(result, operation))
		if err != nil {
			log.Error("failed to marshal lookup result", "err", err.Error())
			problems.NewBadGateway(err.Error(), instance(traceID)).WriteResponse(w)
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(body)
	})
}

// requestedProperties supports both property=A,B and property=A&property=B
func requestedProperties(r *http.Request) []string {
	names := []string{}
	for _, p := range r.URL.Query()["property"] {
		names = append(names, strings.Split(p, ",")...)
	}
	return names
}

func payload(result *lookup.Result, operation lookup.Operation) any {
	switch operation {
	case lookup.OperationProperties:
		return result.Properties
	case lookup.OperationCIDs:
		return nonNil(result.CIDs)
	case lookup.OperationSIDs:
		return nonNil(result.SIDs)
	case lookup.OperationAIDs:
		return nonNil(result.AIDs)
	case lookup.OperationSynonyms:
		return nonNil(result.Synonyms)
	case lookup.OperationDescriptions:
		return nonNil(result.Descriptions)
	}
	return result
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func instance(traceID string) string {
	if traceID == "" {
		return ""
	}
	return "urn:trace:" + traceID
}

// isClientError tells failures caused by the request apart from failures of PubChem itself
func isClientError(err error) bool {
	return errors.Is(err, pcerrors.ErrInvalidRequest) ||
		errors.Is(err, pcerrors.ErrNotFound) ||
		errors.Is(err, pcerrors.ErrBadRequest) ||
		errors.Is(err, pcerrors.ErrNotAllowed)
}

func reportLookupError(w http.ResponseWriter, err error, traceID string) {
	detail := err.Error()
	inst := instance(traceID)

	switch {
	case errors.Is(err, pcerrors.ErrInvalidRequest):
		problems.ReportInvalidRequest(w, detail, inst)
	case errors.Is(err, pcerrors.ErrNotFound):
		problems.ReportNotFound(w, detail, inst)
	case errors.Is(err, pcerrors.ErrBadRequest):
		problems.ReportBadRequest(w, detail, inst)
	case errors.Is(err, pcerrors.ErrNotAllowed):
		problems.ReportNotAllowed(w, detail, inst)
	case errors.Is(err, pcerrors.ErrTimeout):
		problems.ReportTimeout(w, detail, inst)
	case errors.Is(err, pcerrors.ErrServerBusy):
		problems.ReportServerBusy(w, detail, inst)
	case errors.Is(err, pcerrors.ErrUnimplemented):
		problems.ReportUnimplemented(w, detail, inst)
	default:
		problems.ReportBadGateway(w, detail, inst)
	}
}
