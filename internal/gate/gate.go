// Copyright 2025 The AssetGate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package gate implements the token gateway: an authorization-gated
// command/query dispatcher between a caller and the host ledger's
// fungible-token subsystem. Mutations are owner-only and produce exactly one
// outbound effect message; queries are answered by the host subsystem, with
// multi-page results aggregated into one complete response.
package gate

import (
	"context"

	"github.com/rs/zerolog"
	"gitlab.com/assetgate/assetgate/internal/ledger"
	"gitlab.com/assetgate/assetgate/pkg/database/keyvalue"
	"gitlab.com/assetgate/assetgate/pkg/errors"
	"gitlab.com/assetgate/assetgate/pkg/ownable"
	"gitlab.com/assetgate/assetgate/protocol"
)

const (
	gatewayName    = "assetgate"
	gatewayVersion = "1.0.0"

	// defaultMaxPages bounds the pagination aggregation loop. A host
	// subsystem that hands out continuation keys past this bound is assumed
	// to be broken and the query fails with ResourceExhausted.
	defaultMaxPages = 10000
)

// Options configure a Gateway.
type Options struct {
	// Store persists the gateway's identity record and ownership.
	Store keyvalue.Store

	// Querier is the host subsystem's query boundary.
	Querier ledger.Querier

	// Logger is optional.
	Logger *zerolog.Logger

	// MaxPages bounds the pagination aggregation loop. Zero means the
	// default.
	MaxPages uint64
}

// Gateway dispatches token commands and queries.
type Gateway struct {
	identity  identityStore
	owner     *ownable.Tracker
	querier   ledger.Querier
	logger    zerolog.Logger
	maxPages  uint64
	executors map[protocol.MsgType]messageExecutor
}

func New(opts Options) (*Gateway, error) {
	if opts.Store == nil {
		return nil, errors.BadRequest.With("store is missing")
	}
	if opts.Querier == nil {
		return nil, errors.BadRequest.With("querier is missing")
	}

	g := new(Gateway)
	g.identity = identityStore{opts.Store}
	g.owner = ownable.New(opts.Store)
	g.querier = opts.Querier
	g.logger = zerolog.Nop()
	if opts.Logger != nil {
		g.logger = *opts.Logger
	}
	g.maxPages = opts.MaxPages
	if g.maxPages == 0 {
		g.maxPages = defaultMaxPages
	}

	g.executors = newExecutorMap([]messageExecutor{
		Mint{},
		Burn{},
		Freeze{},
		Unfreeze{},
		SetFrozen{},
		GloballyFreeze{},
		GloballyUnfreeze{},
		SetWhitelistedLimit{},
	})
	return g, nil
}

// Initialize issues the gateway's token. It derives and persists the
// denomination, records the caller as the owner, and produces the outbound
// issue message. Initialize may be called once.
func (g *Gateway) Initialize(caller, address string, settings *protocol.IssueSettings) (*Response, error) {
	// Validate everything that can fail before the first write. A failure
	// partway through would otherwise leave a partial record behind with no
	// way to retry.
	if caller == "" {
		return nil, errors.BadRequest.With("caller is missing")
	}
	if address == "" {
		return nil, errors.BadRequest.With("address is missing")
	}
	if settings == nil {
		return nil, errors.BadRequest.With("issue settings are missing")
	}

	switch _, err := g.identity.Load(); {
	case err == nil:
		return nil, errors.Conflict.With("already initialized")
	case !errors.Is(err, errors.NotFound):
		return nil, errors.UnknownError.Wrap(err)
	}

	// The denomination doubles as the once-only guard, so it is written
	// last: if an earlier write fails, no denomination is recorded and
	// initialization can be retried.
	denom := protocol.BuildDenom(settings.Subunit, address)
	err := g.identity.SaveInfo(&Info{Name: gatewayName, Version: gatewayVersion})
	if err != nil {
		return nil, errors.UnknownError.Wrap(err)
	}
	err = g.owner.Initialize(caller)
	if err != nil {
		return nil, errors.UnknownError.Wrap(err)
	}
	err = g.identity.Save(denom)
	if err != nil {
		return nil, errors.UnknownError.Wrap(err)
	}

	g.logger.Info().Str("denom", denom).Str("owner", caller).Msg("initialized gateway")
	mExecuteOps.WithLabelValues(protocol.MsgTypeIssue.String()).Inc()

	return new(Response).
		addAttribute("owner", caller).
		addAttribute("denom", denom).
		addMessage(&protocol.IssueToken{IssueSettings: *settings}), nil
}

// Execute dispatches a mutating request. The caller must be the owner; an
// unauthorized call fails before any effect message is constructed.
func (g *Gateway) Execute(caller string, req protocol.ExecuteRequest) (*Response, error) {
	if req == nil {
		return nil, errors.BadRequest.With("request is missing")
	}

	x, ok := g.executors[req.Type()]
	if !ok {
		return nil, errors.InternalError.WithFormat("no executor for %v", req.Type())
	}

	st := &state{identity: g.identity, owner: g.owner, caller: caller}
	resp, err := x.Process(st, req)
	if err != nil {
		g.logger.Debug().Err(err).Stringer("method", req.Type()).Str("caller", caller).Msg("execute failed")
		return nil, err
	}

	mExecuteOps.WithLabelValues(req.Type().String()).Inc()
	g.logger.Debug().Stringer("method", req.Type()).Str("caller", caller).Msg("executed")
	return resp, nil
}

// Query dispatches a query request. Multi-page queries are aggregated into a
// single complete response; the caller never sees pagination.
func (g *Gateway) Query(ctx context.Context, req protocol.QueryRequest) (protocol.QueryResponse, error) {
	if req == nil {
		return nil, errors.BadRequest.With("request is missing")
	}

	mQueryOps.WithLabelValues(req.Type().String()).Inc()

	switch req := req.(type) {
	case *protocol.ParamsQuery:
		return g.querier.Params(ctx)
	case *protocol.TokenQuery:
		return g.queryToken(ctx)
	case *protocol.TokensQuery:
		return g.queryTokens(ctx, req.Issuer)
	case *protocol.BalanceQuery:
		return g.queryBalance(ctx, req.Account)
	case *protocol.FrozenBalanceQuery:
		return g.queryFrozenBalance(ctx, req.Account)
	case *protocol.FrozenBalancesQuery:
		return g.queryFrozenBalances(ctx, req.Account)
	case *protocol.WhitelistedBalanceQuery:
		return g.queryWhitelistedBalance(ctx, req.Account)
	case *protocol.WhitelistedBalancesQuery:
		return g.queryWhitelistedBalances(ctx, req.Account)
	default:
		return nil, errors.InternalError.WithFormat("no handler for query %v", req.Type())
	}
}

// Denom returns the gateway's denomination. Denom fails with NotFound before
// Initialize has run.
func (g *Gateway) Denom() (string, error) { return g.identity.Load() }

// Owner returns the gateway's owner. Owner fails with NotFound before
// Initialize has run.
func (g *Gateway) Owner() (string, error) { return g.owner.Owner() }

// Info returns the gateway's metadata record.
func (g *Gateway) Info() (*Info, error) { return g.identity.LoadInfo() }

// Ownership exposes the ownership tracker, through which ownership can be
// transferred.
func (g *Gateway) Ownership() *ownable.Tracker { return g.owner }
