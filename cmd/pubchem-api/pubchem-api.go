package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/diwise/pubchem/internal/pkg/application/lookup"
	"github.com/diwise/pubchem/internal/pkg/infrastructure/router"
	"github.com/diwise/pubchem/internal/pkg/presentation/api"
	"github.com/diwise/pubchem/pkg/pubchem/client"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/servicerunner"
	"github.com/spf13/pflag"
)

const serviceName string = "pubchem-api"

type AppConfig struct {
	pubchem    client.PubChemClient
	publicPort string
}

func main() {
	serviceVersion := buildinfo.SourceVersion()

	ctx, log, cleanup := o11y.Init(context.Background(), serviceName, serviceVersion, "json")
	defer cleanup()

	flags, err := parseExternalConfig(os.Args[1:], DefaultFlags(ctx))
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		log.Error("failed to parse command line", "err", err.Error())
		os.Exit(1)
	}

	app, err := initialize(ctx, flags, &AppConfig{})
	if err != nil {
		log.Error("failed to initialize service", "err", err.Error())
		os.Exit(1)
	}

	err = app.Run(ctx)
	if err != nil {
		log.Error("failed to start service", "err", err.Error())
		os.Exit(1)
	}
}

func initialize(ctx context.Context, flags FlagMap, cfg *AppConfig) (servicerunner.Runner[AppConfig], error) {
	timeout, err := time.ParseDuration(flags[pubchemTimeout])
	if err != nil {
		return nil, fmt.Errorf("invalid timeout %q: %w", flags[pubchemTimeout], err)
	}

	if cfg.pubchem == nil {
		cfg.pubchem = client.NewPubChemClient(
			flags[pubchemURL],
			client.Debug(flags[pubchemDebug]),
			client.Timeout(timeout),
		)
	}

	_, runner := servicerunner.New(ctx, *cfg,
		servicerunner.WithHTTPServeMux[AppConfig]("public",
			servicerunner.WithListenAddr[AppConfig](flags[listenAddress]),
			servicerunner.WithPort[AppConfig](flags[servicePort]),
			servicerunner.WithK8SLivenessProbe[AppConfig](func() error { return nil }),
			servicerunner.OnMuxInit[AppConfig](func(ctx context.Context, identifier, port string, svcCfg *AppConfig, handler *http.ServeMux) error {
				svcCfg.publicPort = port

				r := router.New(serviceName, logging.GetFromContext(ctx))
				api.RegisterHandlers(ctx, r, lookup.New(svcCfg.pubchem))

				handler.Handle("/", r)

				logging.GetFromContext(ctx).Info("listening for connections", "mux", identifier, "port", port)
				return nil
			}),
		),
		servicerunner.OnShutdown[AppConfig](func(ctx context.Context, svcCfg *AppConfig) error {
			logging.GetFromContext(ctx).Info("shutting down")
			return nil
		}),
	)

	return runner, nil
}
