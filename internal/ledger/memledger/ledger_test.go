// Copyright 2025 The AssetGate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package memledger

import (
	"context"
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"gitlab.com/assetgate/assetgate/pkg/errors"
	"gitlab.com/assetgate/assetgate/protocol"
)

func issueMsg(subunit string, features ...protocol.TokenFeature) *protocol.IssueToken {
	return &protocol.IssueToken{IssueSettings: protocol.IssueSettings{
		Symbol:        "ABC",
		Subunit:       subunit,
		Precision:     6,
		InitialAmount: big.NewInt(1000),
		Features:      features,
	}}
}

func TestIssue(t *testing.T) {
	l, err := New()
	require.NoError(t, err)

	require.NoError(t, l.Apply("contractX", issueMsg("uabc")))

	res, err := l.Token(context.Background(), "uabc-contractx")
	require.NoError(t, err)
	require.Equal(t, "uabc-contractx", res.Token.Denom)
	require.Equal(t, "contractX", res.Token.Issuer)

	bal, err := l.Balance(context.Background(), "contractX", "uabc-contractx")
	require.NoError(t, err)
	require.Equal(t, big.NewInt(1000), bal.Balance.Amount)

	// Same subunit and issuer is rejected
	err = l.Apply("contractX", issueMsg("uabc"))
	require.True(t, errors.Is(err, errors.Conflict))

	// Invalid settings are rejected
	bad := issueMsg("uABC")
	err = l.Apply("contractX", bad)
	require.True(t, errors.Is(err, errors.BadRequest))
}

func TestMintBurn(t *testing.T) {
	l, err := New()
	require.NoError(t, err)
	require.NoError(t, l.Apply("issuer", issueMsg("uabc", protocol.FeatureMinting)))

	coin := func(n int64) protocol.Coin { return protocol.NewCoin(big.NewInt(n), "uabc-issuer") }

	// Only the issuer can mint
	err = l.Apply("mallory", &protocol.MintToken{Coin: coin(10)})
	require.True(t, errors.Is(err, errors.Unauthorized))

	// Mint to the issuer by default
	require.NoError(t, l.Apply("issuer", &protocol.MintToken{Coin: coin(10)}))
	bal, err := l.Balance(context.Background(), "issuer", "uabc-issuer")
	require.NoError(t, err)
	require.Equal(t, big.NewInt(1010), bal.Balance.Amount)

	// Mint to a recipient
	require.NoError(t, l.Apply("issuer", &protocol.MintToken{Coin: coin(5), Recipient: "bob"}))
	bal, err = l.Balance(context.Background(), "bob", "uabc-issuer")
	require.NoError(t, err)
	require.Equal(t, big.NewInt(5), bal.Balance.Amount)

	// The issuer can burn its own balance
	require.NoError(t, l.Apply("issuer", &protocol.BurnToken{Coin: coin(1000)}))
	bal, err = l.Balance(context.Background(), "issuer", "uabc-issuer")
	require.NoError(t, err)
	require.Equal(t, big.NewInt(10), bal.Balance.Amount)

	// But not more than it has
	err = l.Apply("issuer", &protocol.BurnToken{Coin: coin(1000)})
	require.True(t, errors.Is(err, errors.BadRequest))

	// Minting requires the feature
	require.NoError(t, l.Apply("issuer2", issueMsg("uabc")))
	err = l.Apply("issuer2", &protocol.MintToken{Coin: protocol.NewCoin(big.NewInt(1), "uabc-issuer2")})
	require.True(t, errors.Is(err, errors.BadRequest))
}

func TestFreeze(t *testing.T) {
	l, err := New()
	require.NoError(t, err)
	require.NoError(t, l.Apply("issuer", issueMsg("uabc", protocol.FeatureFreezing)))

	coin := func(n int64) protocol.Coin { return protocol.NewCoin(big.NewInt(n), "uabc-issuer") }
	frozen := func() *big.Int {
		res, err := l.FrozenBalance(context.Background(), "bob", "uabc-issuer")
		require.NoError(t, err)
		return res.Balance.Amount
	}

	require.NoError(t, l.Apply("issuer", &protocol.FreezeToken{Account: "bob", Coin: coin(100)}))
	require.Equal(t, big.NewInt(100), frozen())

	require.NoError(t, l.Apply("issuer", &protocol.UnfreezeToken{Account: "bob", Coin: coin(40)}))
	require.Equal(t, big.NewInt(60), frozen())

	// Cannot unfreeze below zero
	err = l.Apply("issuer", &protocol.UnfreezeToken{Account: "bob", Coin: coin(100)})
	require.True(t, errors.Is(err, errors.BadRequest))

	require.NoError(t, l.Apply("issuer", &protocol.SetFrozenToken{Account: "bob", Coin: coin(7)}))
	require.Equal(t, big.NewInt(7), frozen())

	// Global freeze flips the token flag
	require.NoError(t, l.Apply("issuer", &protocol.GloballyFreezeToken{Denom: "uabc-issuer"}))
	res, err := l.Token(context.Background(), "uabc-issuer")
	require.NoError(t, err)
	require.True(t, res.Token.GloballyFrozen)

	require.NoError(t, l.Apply("issuer", &protocol.GloballyUnfreezeToken{Denom: "uabc-issuer"}))
	res, err = l.Token(context.Background(), "uabc-issuer")
	require.NoError(t, err)
	require.False(t, res.Token.GloballyFrozen)
}

func TestWhitelist(t *testing.T) {
	l, err := New()
	require.NoError(t, err)
	require.NoError(t, l.Apply("issuer", issueMsg("uabc", protocol.FeatureWhitelisting)))

	err = l.Apply("issuer", &protocol.SetWhitelistedLimitToken{
		Account: "bob",
		Coin:    protocol.NewCoin(big.NewInt(500), "uabc-issuer"),
	})
	require.NoError(t, err)

	res, err := l.WhitelistedBalance(context.Background(), "bob", "uabc-issuer")
	require.NoError(t, err)
	require.Equal(t, big.NewInt(500), res.Balance.Amount)
}

func TestTokensPagination(t *testing.T) {
	l, err := New(WithPageSize(3))
	require.NoError(t, err)

	for i := 0; i < 7; i++ {
		require.NoError(t, l.Apply("issuer", issueMsg(fmt.Sprintf("utok%d", i))))
	}

	var all []protocol.Token
	var page *protocol.PageRequest
	pages := 0
	for {
		res, err := l.Tokens(context.Background(), "issuer", page)
		require.NoError(t, err)
		require.LessOrEqual(t, len(res.Tokens), 3)
		require.EqualValues(t, 7, res.Pagination.Total)
		all = append(all, res.Tokens...)
		pages++
		if len(res.Pagination.NextKey) == 0 {
			break
		}
		page = &protocol.PageRequest{Key: res.Pagination.NextKey}
	}

	require.Equal(t, 3, pages)
	require.Len(t, all, 7)
	for i, token := range all {
		require.Equal(t, fmt.Sprintf("utok%d-issuer", i), token.Denom)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	l, err := New()
	require.NoError(t, err)
	require.NoError(t, l.Apply("issuer", issueMsg("uabc", protocol.FeatureFreezing)))
	require.NoError(t, l.Apply("issuer", &protocol.FreezeToken{
		Account: "bob",
		Coin:    protocol.NewCoin(big.NewInt(9), "uabc-issuer"),
	}))

	l2, err := New()
	require.NoError(t, err)
	l2.Restore(l.Snapshot())

	res, err := l2.FrozenBalance(context.Background(), "bob", "uabc-issuer")
	require.NoError(t, err)
	require.Equal(t, big.NewInt(9), res.Balance.Amount)

	tok, err := l2.Token(context.Background(), "uabc-issuer")
	require.NoError(t, err)
	require.Equal(t, "ABC", tok.Token.Symbol)
}
