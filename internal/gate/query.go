// Copyright 2025 The AssetGate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package gate

import (
	"context"

	"gitlab.com/assetgate/assetgate/protocol"
)

// Single-shot queries forward the host subsystem's response unchanged,
// scoping denomination-bound queries with the identity record.

func (g *Gateway) queryToken(ctx context.Context) (*protocol.TokenResponse, error) {
	denom, err := g.identity.Load()
	if err != nil {
		return nil, err
	}
	return g.querier.Token(ctx, denom)
}

func (g *Gateway) queryBalance(ctx context.Context, account string) (*protocol.BalanceResponse, error) {
	denom, err := g.identity.Load()
	if err != nil {
		return nil, err
	}
	return g.querier.Balance(ctx, account, denom)
}

func (g *Gateway) queryFrozenBalance(ctx context.Context, account string) (*protocol.FrozenBalanceResponse, error) {
	denom, err := g.identity.Load()
	if err != nil {
		return nil, err
	}
	return g.querier.FrozenBalance(ctx, account, denom)
}

func (g *Gateway) queryWhitelistedBalance(ctx context.Context, account string) (*protocol.WhitelistedBalanceResponse, error) {
	denom, err := g.identity.Load()
	if err != nil {
		return nil, err
	}
	return g.querier.WhitelistedBalance(ctx, account, denom)
}

// Paginated queries aggregate every page into one complete response, pairing
// the final page's metadata with the accumulated items.

func (g *Gateway) queryTokens(ctx context.Context, issuer string) (*protocol.TokensResponse, error) {
	tokens, page, err := aggregatePages(ctx, g.maxPages,
		func(ctx context.Context, pr *protocol.PageRequest) ([]protocol.Token, *protocol.PageResponse, error) {
			res, err := g.querier.Tokens(ctx, issuer, pr)
			if err != nil {
				return nil, nil, err
			}
			return res.Tokens, res.Pagination, nil
		})
	if err != nil {
		return nil, err
	}
	return &protocol.TokensResponse{Pagination: page, Tokens: tokens}, nil
}

func (g *Gateway) queryFrozenBalances(ctx context.Context, account string) (*protocol.FrozenBalancesResponse, error) {
	balances, page, err := aggregatePages(ctx, g.maxPages,
		func(ctx context.Context, pr *protocol.PageRequest) ([]protocol.Coin, *protocol.PageResponse, error) {
			res, err := g.querier.FrozenBalances(ctx, account, pr)
			if err != nil {
				return nil, nil, err
			}
			return res.Balances, res.Pagination, nil
		})
	if err != nil {
		return nil, err
	}
	return &protocol.FrozenBalancesResponse{Pagination: page, Balances: balances}, nil
}

func (g *Gateway) queryWhitelistedBalances(ctx context.Context, account string) (*protocol.WhitelistedBalancesResponse, error) {
	balances, page, err := aggregatePages(ctx, g.maxPages,
		func(ctx context.Context, pr *protocol.PageRequest) ([]protocol.Coin, *protocol.PageResponse, error) {
			res, err := g.querier.WhitelistedBalances(ctx, account, pr)
			if err != nil {
				return nil, nil, err
			}
			return res.Balances, res.Pagination, nil
		})
	if err != nil {
		return nil, err
	}
	return &protocol.WhitelistedBalancesResponse{Pagination: page, Balances: balances}, nil
}
