// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package cmdctx provides project context loading for CLI commands.
package cmdctx

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dacolabs/odpsmap/internal/config"
	"github.com/dacolabs/odpsmap/internal/doctree"
	"github.com/dacolabs/odpsmap/internal/odcs"
)

var (
	// ErrNotInitialized indicates no odpsmap.yaml was found in the current directory.
	ErrNotInitialized = errors.New("not in an odpsmap project (odpsmap.yaml not found)")

	// ErrInvalidConfig indicates the config file exists but is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrContractNotFound indicates the contract file referenced by config doesn't exist.
	ErrContractNotFound = errors.New("contract file not found")

	// ErrInvalidContract indicates the contract file exists but couldn't be parsed.
	ErrInvalidContract = errors.New("invalid ODCS contract")
)

// ConfigFileName is the name of the odpsmap configuration file.
const ConfigFileName = "odpsmap.yaml"

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the resolved project configuration and parsed contract.
type Context struct {
	// Config is the loaded project configuration.
	Config *config.Config

	// Contract is the parsed ODCS contract document.
	Contract *doctree.Node

	// ContractPath is the resolved path the contract was read from.
	ContractPath string
}

// Load loads the project context from the current working directory and
// returns a new context.Context with the odpsmap Context stored in it.
func Load(ctx context.Context) (context.Context, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	configPath := filepath.Join(cwd, ConfigFileName)
	if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) {
		return nil, ErrNotInitialized
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if validateErr := cfg.Validate(); validateErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, validateErr)
	}

	contractPath := cfg.Contract
	if !filepath.IsAbs(contractPath) {
		contractPath = filepath.Join(cwd, contractPath)
	}

	f, err := os.Open(contractPath) //nolint:gosec // contractPath is derived from config
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrContractNotFound, err)
	}
	defer func() { _ = f.Close() }()

	contract, err := odcs.ParserForPath(contractPath).Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidContract, err)
	}

	projectCtx := &Context{
		Config:       cfg,
		Contract:     contract,
		ContractPath: contractPath,
	}

	return context.WithValue(ctx, contextKey{}, projectCtx), nil
}

// From extracts the odpsmap Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if projectCtx, ok := ctx.Value(contextKey{}).(*Context); ok {
		return projectCtx
	}
	return nil
}
