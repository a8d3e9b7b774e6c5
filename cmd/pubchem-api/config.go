package main

import (
	"context"
	"fmt"

	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/spf13/pflag"
)

type FlagType int
type FlagMap map[FlagType]string

const (
	listenAddress FlagType = iota
	servicePort

	pubchemURL
	pubchemTimeout
	pubchemDebug
)

func DefaultFlags(ctx context.Context) FlagMap {
	return FlagMap{
		listenAddress: env.GetVariableOrDefault(ctx, "LISTEN_ADDRESS", ""),
		servicePort:   env.GetVariableOrDefault(ctx, "SERVICE_PORT", "8080"),

		pubchemURL:     env.GetVariableOrDefault(ctx, "PUBCHEM_URL", ""),
		pubchemTimeout: env.GetVariableOrDefault(ctx, "PUBCHEM_TIMEOUT", "30s"),
		pubchemDebug:   env.GetVariableOrDefault(ctx, "PUBCHEM_DEBUG", "false"),
	}
}

// parseExternalConfig lets command line flags override the environment
func parseExternalConfig(args []string, flags FlagMap) (FlagMap, error) {
	fs := pflag.NewFlagSet("pubchem-api", pflag.ContinueOnError)

	address := fs.String("listen", flags[listenAddress], "address to listen on, all interfaces when empty")
	port := fs.String("port", flags[servicePort], "port to listen on")
	url := fs.String("pubchem-url", flags[pubchemURL], "base url of the PUG-REST service")
	timeout := fs.String("timeout", flags[pubchemTimeout], "timeout for requests to PubChem")
	debug := fs.Bool("debug", flags[pubchemDebug] == "true", "log failed requests to PubChem")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	flags[listenAddress] = *address
	flags[servicePort] = *port
	flags[pubchemURL] = *url
	flags[pubchemTimeout] = *timeout
	flags[pubchemDebug] = fmt.Sprintf("%t", *debug)

	return flags, nil
}
