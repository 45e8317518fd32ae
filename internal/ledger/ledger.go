// Copyright 2025 The AssetGate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package ledger defines the boundary to the host ledger's fungible-token
// subsystem. The subsystem owns all token, balance, freeze, and whitelist
// state; the gateway only queries it through this interface and hands it
// effect messages to execute.
package ledger

import (
	"context"

	"gitlab.com/assetgate/assetgate/protocol"
)

// Querier answers the gateway's queries. Queries execute synchronously within
// the calling invocation. Paginated methods return one page per call; the
// continuation key of the next page travels in the page response.
type Querier interface {
	// Params returns the subsystem's issuance parameters.
	Params(ctx context.Context) (*protocol.ParamsResponse, error)

	// Token returns the token record for the denomination.
	Token(ctx context.Context, denom string) (*protocol.TokenResponse, error)

	// Tokens returns a page of the tokens issued by the issuer.
	Tokens(ctx context.Context, issuer string, page *protocol.PageRequest) (*protocol.TokensResponse, error)

	// Balance returns the account's balance of the denomination.
	Balance(ctx context.Context, account, denom string) (*protocol.BalanceResponse, error)

	// FrozenBalance returns the account's frozen amount of the denomination.
	FrozenBalance(ctx context.Context, account, denom string) (*protocol.FrozenBalanceResponse, error)

	// FrozenBalances returns a page of the account's frozen balances.
	FrozenBalances(ctx context.Context, account string, page *protocol.PageRequest) (*protocol.FrozenBalancesResponse, error)

	// WhitelistedBalance returns the account's whitelisted limit of the
	// denomination.
	WhitelistedBalance(ctx context.Context, account, denom string) (*protocol.WhitelistedBalanceResponse, error)

	// WhitelistedBalances returns a page of the account's whitelisted
	// balances.
	WhitelistedBalances(ctx context.Context, account string, page *protocol.PageRequest) (*protocol.WhitelistedBalancesResponse, error)
}
