// Copyright 2025 The AssetGate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package memledger

import (
	"math/big"
	"sort"

	"gitlab.com/assetgate/assetgate/protocol"
)

// Snapshot is a serializable copy of the ledger's state.
type Snapshot struct {
	Params      protocol.Params                `json:"params"`
	Tokens      []protocol.Token               `json:"tokens,omitempty"`
	Supply      map[string]*big.Int            `json:"supply,omitempty"`
	Balances    map[string]map[string]*big.Int `json:"balances,omitempty"`
	Frozen      map[string]map[string]*big.Int `json:"frozen,omitempty"`
	Whitelisted map[string]map[string]*big.Int `json:"whitelisted,omitempty"`
}

// Snapshot exports the ledger's state.
func (l *Ledger) Snapshot() *Snapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()

	s := &Snapshot{
		Params:      l.params,
		Supply:      copyAmounts(l.supply),
		Balances:    copyBalances(l.balances),
		Frozen:      copyBalances(l.frozen),
		Whitelisted: copyBalances(l.whitelisted),
	}
	for _, token := range l.tokens {
		s.Tokens = append(s.Tokens, *token)
	}
	sort.Slice(s.Tokens, func(i, j int) bool { return s.Tokens[i].Denom < s.Tokens[j].Denom })
	return s
}

// Restore replaces the ledger's state with the snapshot.
func (l *Ledger) Restore(s *Snapshot) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.params = s.Params
	l.tokens = map[string]*protocol.Token{}
	for _, token := range s.Tokens {
		token := token
		l.tokens[token.Denom] = &token
	}
	l.supply = copyAmounts(s.Supply)
	l.balances = copyBalances(s.Balances)
	l.frozen = copyBalances(s.Frozen)
	l.whitelisted = copyBalances(s.Whitelisted)
}

func copyAmounts(m map[string]*big.Int) map[string]*big.Int {
	c := make(map[string]*big.Int, len(m))
	for k, v := range m {
		c[k] = new(big.Int).Set(v)
	}
	return c
}

func copyBalances(m map[string]map[string]*big.Int) map[string]map[string]*big.Int {
	c := make(map[string]map[string]*big.Int, len(m))
	for k, v := range m {
		c[k] = copyAmounts(v)
	}
	return c
}
