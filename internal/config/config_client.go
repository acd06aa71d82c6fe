// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
)

// ClientConfig is the configuration view used by the command-line client.
type ClientConfig struct {
	// Adapter contains the API address, timeout and bearer token.
	Adapter Adapter
	// Args holds the positional arguments left after flag parsing
	// (the client command and its operands).
	Args []string
}

// GetClientConfig builds and validates the client configuration from the
// defaults, the dotenv file, ADAPTER_* environment variables and the client
// flags in args.
func GetClientConfig(args []string) (*ClientConfig, error) {
	b := newConfigBuilder().
		withDefaults().
		withDotEnv().
		withEnv()

	flagsCfg, rest, err := parseClientFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
	} else {
		b.configs = append(b.configs, flagsCfg)
	}

	cfg, err := b.merge()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: cfg.Adapter,
		Args:    rest,
	}

	return clientCfg, clientCfg.validate()
}
