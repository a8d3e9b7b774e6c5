package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/diwise/pubchem/internal/pkg/application/lookup"
	"github.com/diwise/pubchem/pkg/pubchem/client"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	json "github.com/goccy/go-json"
	"github.com/spf13/pflag"
	yaml "gopkg.in/yaml.v2"
)

const appName string = "pubchem"

type options struct {
	namespace  string
	properties []string
	operation  lookup.Operation
	output     string
	file       string
	identifier string
}

func main() {
	appVersion := buildinfo.SourceVersion()

	// stdout carries the lookup results, so everything else is logged to stderr
	ctx, log := newLogger(context.Background(), os.Stderr, appVersion)

	cleanup, err := tracing.Init(ctx, log, appName, appVersion)
	if err != nil {
		log.Error("failed to init tracing", "err", err.Error())
		os.Exit(1)
	}
	defer cleanup()

	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}

	pc := client.NewPubChemClient(
		env.GetVariableOrDefault(ctx, "PUBCHEM_URL", client.DefaultBaseURL),
		client.Debug(env.GetVariableOrDefault(ctx, "PUBCHEM_DEBUG", "false")),
	)

	err = run(ctx, lookup.New(pc), opts, os.Stdout)
	if err != nil {
		log.Error("lookup failed", "err", err.Error())
		os.Exit(1)
	}
}

func newLogger(ctx context.Context, w io.Writer, version string) (context.Context, *slog.Logger) {
	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})).With(
		slog.String("service", appName),
		slog.String("version", version),
	)

	return logging.NewContextWithLogger(ctx, logger), logger
}

func parseArgs(args []string) (*options, error) {
	fs := pflag.NewFlagSet(appName, pflag.ContinueOnError)

	opts := &options{}

	fs.StringVarP(&opts.namespace, "namespace", "n", string(client.NamespaceCID), "kind of identifier: cid, name, smiles, inchi or inchikey")
	fs.StringSliceVarP(&opts.properties, "property", "p", nil, "property to retrieve, may be repeated or comma separated")
	fs.StringVarP(&opts.output, "output", "o", "json", "output format: json or yaml")
	fs.StringVarP(&opts.file, "file", "f", "", "yaml file with a batch of lookups")

	cids := fs.Bool("cids", false, "retrieve the compound ids")
	sids := fs.Bool("sids", false, "retrieve the substance ids")
	aids := fs.Bool("aids", false, "retrieve the assay ids")
	synonyms := fs.Bool("synonyms", false, "retrieve the synonyms")
	descriptions := fs.Bool("descriptions", false, "retrieve the descriptions")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	selected := map[lookup.Operation]bool{
		lookup.OperationCIDs:         *cids,
		lookup.OperationSIDs:         *sids,
		lookup.OperationAIDs:         *aids,
		lookup.OperationSynonyms:     *synonyms,
		lookup.OperationDescriptions: *descriptions,
	}

	opts.operation = lookup.OperationProperties
	for op, isSelected := range selected {
		if !isSelected {
			continue
		}
		if opts.operation != lookup.OperationProperties {
			return nil, fmt.Errorf("only one of --cids, --sids, --aids, --synonyms and --descriptions may be used")
		}
		opts.operation = op
	}

	if opts.operation != lookup.OperationProperties && len(opts.properties) > 0 {
		return nil, fmt.Errorf("--property can not be combined with --%s", opts.operation)
	}

	if _, err := client.ParseNamespace(opts.namespace); err != nil {
		return nil, err
	}

	if _, err := client.ParseCompoundProperties(opts.properties); err != nil {
		return nil, err
	}

	if opts.output != "json" && opts.output != "yaml" {
		return nil, fmt.Errorf("unsupported output format %q", opts.output)
	}

	switch {
	case opts.file != "" && fs.NArg() > 0:
		return nil, fmt.Errorf("an identifier can not be combined with --file")
	case opts.file == "" && fs.NArg() != 1:
		return nil, fmt.Errorf("usage: %s [flags] <identifier>", appName)
	case opts.file == "":
		opts.identifier = fs.Arg(0)
	}

	return opts, nil
}

func run(ctx context.Context, svc lookup.Service, opts *options, out io.Writer) error {
	log := logging.GetFromContext(ctx)

	if opts.file == "" {
		result, err := svc.Lookup(ctx, lookup.Request{
			Namespace:  opts.namespace,
			Identifier: opts.identifier,
			Operation:  opts.operation,
			Properties: opts.properties,
		})
		if err != nil {
			return err
		}

		log.Info("lookup done", "namespace", opts.namespace, "identifier", opts.identifier, "operation", opts.operation)

		return write(out, opts.output, result)
	}

	f, err := os.Open(opts.file)
	if err != nil {
		return fmt.Errorf("failed to open batch file: %w", err)
	}
	defer f.Close()

	cfg, err := lookup.LoadConfiguration(f)
	if err != nil {
		return fmt.Errorf("failed to load batch file %s: %w", opts.file, err)
	}

	results, failures := lookup.RunBatch(ctx, svc, cfg)
	log.Info("batch done", "file", opts.file, "lookups", len(results), "failures", failures)

	if err = write(out, opts.output, results); err != nil {
		return err
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d lookups failed", failures, len(results))
	}

	return nil
}

func write(out io.Writer, format string, v any) error {
	if format == "yaml" {
		b, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = out.Write(b)
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
