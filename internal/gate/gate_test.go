// Copyright 2025 The AssetGate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package gate_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"gitlab.com/assetgate/assetgate/internal/gate"
	"gitlab.com/assetgate/assetgate/internal/ledger/memledger"
	"gitlab.com/assetgate/assetgate/pkg/database/keyvalue/memory"
	"gitlab.com/assetgate/assetgate/pkg/errors"
	"gitlab.com/assetgate/assetgate/protocol"
)

const (
	owner    = "alice"
	contract = "contractX"
)

func settings() *protocol.IssueSettings {
	return &protocol.IssueSettings{
		Symbol:        "ABC",
		Subunit:       "uabc",
		Precision:     6,
		InitialAmount: big.NewInt(1000),
		Features: []protocol.TokenFeature{
			protocol.FeatureMinting,
			protocol.FeatureBurning,
			protocol.FeatureFreezing,
			protocol.FeatureWhitelisting,
		},
	}
}

// setup initializes a gateway backed by an in-memory reference host and
// applies the issue message to the host, as the host environment would.
func setup(t *testing.T, o ...memledger.Option) (*gate.Gateway, *memledger.Ledger) {
	t.Helper()

	host, err := memledger.New(o...)
	require.NoError(t, err)

	g, err := gate.New(gate.Options{Store: memory.New(), Querier: host})
	require.NoError(t, err)

	resp, err := g.Initialize(owner, contract, settings())
	require.NoError(t, err)
	require.Len(t, resp.Messages, 1)
	require.NoError(t, host.Apply(contract, resp.Messages[0]))

	return g, host
}

func TestInitialize(t *testing.T) {
	host, err := memledger.New()
	require.NoError(t, err)
	g, err := gate.New(gate.Options{Store: memory.New(), Querier: host})
	require.NoError(t, err)

	resp, err := g.Initialize(owner, contract, settings())
	require.NoError(t, err)

	v, ok := resp.Attribute("owner")
	require.True(t, ok)
	require.Equal(t, owner, v)
	v, ok = resp.Attribute("denom")
	require.True(t, ok)
	require.Equal(t, "uabc-contractx", v)

	require.Len(t, resp.Messages, 1)
	issue, ok := resp.Messages[0].(*protocol.IssueToken)
	require.True(t, ok)
	require.Equal(t, "uabc", issue.Subunit)

	denom, err := g.Denom()
	require.NoError(t, err)
	require.Equal(t, "uabc-contractx", denom)

	info, err := g.Info()
	require.NoError(t, err)
	require.Equal(t, "assetgate", info.Name)

	// Initialization is once only
	_, err = g.Initialize(owner, contract, settings())
	require.True(t, errors.Is(err, errors.Conflict))
}

func TestInitializeFailureLeavesNoState(t *testing.T) {
	host, err := memledger.New()
	require.NoError(t, err)
	g, err := gate.New(gate.Options{Store: memory.New(), Querier: host})
	require.NoError(t, err)

	// A rejected initialization must not persist anything
	_, err = g.Initialize("", contract, settings())
	require.True(t, errors.Is(err, errors.BadRequest))
	_, err = g.Denom()
	require.True(t, errors.Is(err, errors.NotFound))
	_, err = g.Owner()
	require.True(t, errors.Is(err, errors.NotFound))

	// A retry with valid inputs succeeds
	resp, err := g.Initialize(owner, contract, settings())
	require.NoError(t, err)
	require.Len(t, resp.Messages, 1)

	denom, err := g.Denom()
	require.NoError(t, err)
	require.Equal(t, "uabc-contractx", denom)
	got, err := g.Owner()
	require.NoError(t, err)
	require.Equal(t, owner, got)
}

func TestExecuteUnauthorized(t *testing.T) {
	g, _ := setup(t)

	requests := []protocol.ExecuteRequest{
		&protocol.MintRequest{Amount: big.NewInt(10)},
		&protocol.BurnRequest{Amount: big.NewInt(10)},
		&protocol.FreezeRequest{Account: "bob", Amount: big.NewInt(10)},
		&protocol.UnfreezeRequest{Account: "bob", Amount: big.NewInt(10)},
		&protocol.SetFrozenRequest{Account: "bob", Amount: big.NewInt(10)},
		&protocol.GloballyFreezeRequest{},
		&protocol.GloballyUnfreezeRequest{},
		&protocol.SetWhitelistedLimitRequest{Account: "bob", Amount: big.NewInt(10)},
	}

	for _, req := range requests {
		t.Run(req.Type().String(), func(t *testing.T) {
			resp, err := g.Execute("mallory", req)
			require.True(t, errors.Is(err, errors.Unauthorized))
			require.Nil(t, resp)
		})
	}
}

func TestExecuteProducesOneMessage(t *testing.T) {
	g, _ := setup(t)

	cases := []struct {
		req       protocol.ExecuteRequest
		hasAmount bool
	}{
		{&protocol.MintRequest{Amount: big.NewInt(10), Recipient: "bob"}, true},
		{&protocol.BurnRequest{Amount: big.NewInt(10)}, true},
		{&protocol.FreezeRequest{Account: "bob", Amount: big.NewInt(10)}, true},
		{&protocol.UnfreezeRequest{Account: "bob", Amount: big.NewInt(5)}, true},
		{&protocol.SetFrozenRequest{Account: "bob", Amount: big.NewInt(3)}, true},
		{&protocol.GloballyFreezeRequest{}, false},
		{&protocol.GloballyUnfreezeRequest{}, false},
		{&protocol.SetWhitelistedLimitRequest{Account: "bob", Amount: big.NewInt(7)}, true},
	}

	for _, c := range cases {
		t.Run(c.req.Type().String(), func(t *testing.T) {
			resp, err := g.Execute(owner, c.req)
			require.NoError(t, err)
			require.Len(t, resp.Messages, 1)
			require.Equal(t, c.req.Type(), resp.Messages[0].Type())

			method, ok := resp.Attribute("method")
			require.True(t, ok)
			require.Equal(t, c.req.Type().String(), method)

			denom, ok := resp.Attribute("denom")
			require.True(t, ok)
			require.Equal(t, "uabc-contractx", denom)

			_, ok = resp.Attribute("amount")
			require.Equal(t, c.hasAmount, ok)
		})
	}
}

func TestExecuteRejectsBadAmount(t *testing.T) {
	g, _ := setup(t)

	_, err := g.Execute(owner, &protocol.MintRequest{})
	require.True(t, errors.Is(err, errors.BadRequest))
	_, err = g.Execute(owner, &protocol.BurnRequest{Amount: big.NewInt(-1)})
	require.True(t, errors.Is(err, errors.BadRequest))
}

func TestQueryToken(t *testing.T) {
	g, _ := setup(t)

	// The query must reference the denomination computed at initialization
	res, err := g.Query(context.Background(), &protocol.TokenQuery{})
	require.NoError(t, err)
	tok := res.(*protocol.TokenResponse).Token
	require.Equal(t, "uabc-contractx", tok.Denom)
	require.Equal(t, "ABC", tok.Symbol)
}

func TestQueryIdempotent(t *testing.T) {
	g, _ := setup(t)

	first, err := g.Query(context.Background(), &protocol.BalanceQuery{Account: contract})
	require.NoError(t, err)
	second, err := g.Query(context.Background(), &protocol.BalanceQuery{Account: contract})
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestEndToEnd(t *testing.T) {
	// Host pages of two force the aggregation loop to run
	g, host := setup(t, memledger.WithPageSize(2))
	ctx := context.Background()

	// Mint as the owner
	resp, err := g.Execute(owner, &protocol.MintRequest{Amount: big.NewInt(1000)})
	require.NoError(t, err)
	require.Len(t, resp.Messages, 1)
	mint := resp.Messages[0].(*protocol.MintToken)
	require.Equal(t, "uabc-contractx", mint.Coin.Denom)
	require.Equal(t, big.NewInt(1000), mint.Coin.Amount)
	require.NoError(t, host.Apply(contract, mint))

	// Mint as a non-owner produces no effect
	_, err = g.Execute("mallory", &protocol.MintRequest{Amount: big.NewInt(1)})
	require.True(t, errors.Is(err, errors.Unauthorized))

	res, err := g.Query(ctx, &protocol.BalanceQuery{Account: contract})
	require.NoError(t, err)
	require.Equal(t, big.NewInt(2000), res.(*protocol.BalanceResponse).Balance.Amount)

	// Freeze across several denoms so the frozen-balances query paginates.
	// The host only knows the gateway's denom, so issue more tokens from
	// the same address with the host directly.
	for _, subunit := range []string{"ubbb", "uccc", "uddd", "ueee"} {
		s := settings()
		s.Subunit = subunit
		require.NoError(t, host.Apply(contract, &protocol.IssueToken{IssueSettings: *s}))
		require.NoError(t, host.Apply(contract, &protocol.FreezeToken{
			Account: "bob",
			Coin:    protocol.NewCoin(big.NewInt(5), protocol.BuildDenom(subunit, contract)),
		}))
	}
	resp, err = g.Execute(owner, &protocol.FreezeRequest{Account: "bob", Amount: big.NewInt(9)})
	require.NoError(t, err)
	require.NoError(t, host.Apply(contract, resp.Messages[0]))

	// Five frozen balances, pages of two: the caller still sees one
	// complete response
	fres, err := g.Query(ctx, &protocol.FrozenBalancesQuery{Account: "bob"})
	require.NoError(t, err)
	frozen := fres.(*protocol.FrozenBalancesResponse)
	require.Len(t, frozen.Balances, 5)
	require.Equal(t, "uabc-contractx", frozen.Balances[0].Denom)
	require.Equal(t, big.NewInt(9), frozen.Balances[0].Amount)

	// The aggregated response carries the last page's metadata
	require.NotNil(t, frozen.Pagination)
	require.Empty(t, frozen.Pagination.NextKey)
	require.Equal(t, uint64(5), frozen.Pagination.Total)

	// Tokens by issuer aggregates the same way
	tres, err := g.Query(ctx, &protocol.TokensQuery{Issuer: contract})
	require.NoError(t, err)
	require.Len(t, tres.(*protocol.TokensResponse).Tokens, 5)
}
