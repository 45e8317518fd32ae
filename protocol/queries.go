// Copyright 2025 The AssetGate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package protocol

// Inbound query requests. The gateway scopes denomination-bound queries with
// its identity record; plural queries are aggregated across all of the host
// subsystem's pages before the response is returned.

// ParamsQuery requests the host subsystem's issuance parameters.
type ParamsQuery struct{}

// TokenQuery requests the gateway's token record.
type TokenQuery struct{}

// TokensQuery requests every token issued by the issuer.
type TokensQuery struct {
	Issuer string `json:"issuer"`
}

// BalanceQuery requests the account's balance of the gateway's token.
type BalanceQuery struct {
	Account string `json:"account"`
}

// FrozenBalanceQuery requests the account's frozen amount of the gateway's
// token.
type FrozenBalanceQuery struct {
	Account string `json:"account"`
}

// FrozenBalancesQuery requests every frozen balance of the account.
type FrozenBalancesQuery struct {
	Account string `json:"account"`
}

// WhitelistedBalanceQuery requests the account's whitelisted limit of the
// gateway's token.
type WhitelistedBalanceQuery struct {
	Account string `json:"account"`
}

// WhitelistedBalancesQuery requests every whitelisted balance of the account.
type WhitelistedBalancesQuery struct {
	Account string `json:"account"`
}

func (*ParamsQuery) Type() QueryType              { return QueryTypeParams }
func (*TokenQuery) Type() QueryType               { return QueryTypeToken }
func (*TokensQuery) Type() QueryType              { return QueryTypeTokens }
func (*BalanceQuery) Type() QueryType             { return QueryTypeBalance }
func (*FrozenBalanceQuery) Type() QueryType       { return QueryTypeFrozenBalance }
func (*FrozenBalancesQuery) Type() QueryType      { return QueryTypeFrozenBalances }
func (*WhitelistedBalanceQuery) Type() QueryType  { return QueryTypeWhitelistedBalance }
func (*WhitelistedBalancesQuery) Type() QueryType { return QueryTypeWhitelistedBalances }

func (*ParamsQuery) isQueryRequest()              {}
func (*TokenQuery) isQueryRequest()               {}
func (*TokensQuery) isQueryRequest()              {}
func (*BalanceQuery) isQueryRequest()             {}
func (*FrozenBalanceQuery) isQueryRequest()       {}
func (*FrozenBalancesQuery) isQueryRequest()      {}
func (*WhitelistedBalanceQuery) isQueryRequest()  {}
func (*WhitelistedBalancesQuery) isQueryRequest() {}

// ParamsResponse is the response to a ParamsQuery.
type ParamsResponse struct {
	Params Params `json:"params"`
}

// TokenResponse is the response to a TokenQuery.
type TokenResponse struct {
	Token Token `json:"token"`
}

// TokensResponse is the response to a TokensQuery.
type TokensResponse struct {
	Pagination *PageResponse `json:"pagination,omitempty"`
	Tokens     []Token       `json:"tokens"`
}

// BalanceResponse is the response to a BalanceQuery.
type BalanceResponse struct {
	Balance Coin `json:"balance"`
}

// FrozenBalanceResponse is the response to a FrozenBalanceQuery.
type FrozenBalanceResponse struct {
	Balance Coin `json:"balance"`
}

// FrozenBalancesResponse is the response to a FrozenBalancesQuery.
type FrozenBalancesResponse struct {
	Pagination *PageResponse `json:"pagination,omitempty"`
	Balances   []Coin        `json:"balances"`
}

// WhitelistedBalanceResponse is the response to a WhitelistedBalanceQuery.
type WhitelistedBalanceResponse struct {
	Balance Coin `json:"balance"`
}

// WhitelistedBalancesResponse is the response to a WhitelistedBalancesQuery.
type WhitelistedBalancesResponse struct {
	Pagination *PageResponse `json:"pagination,omitempty"`
	Balances   []Coin        `json:"balances"`
}

func (*ParamsResponse) isQueryResponse()              {}
func (*TokenResponse) isQueryResponse()               {}
func (*TokensResponse) isQueryResponse()              {}
func (*BalanceResponse) isQueryResponse()             {}
func (*FrozenBalanceResponse) isQueryResponse()       {}
func (*FrozenBalancesResponse) isQueryResponse()      {}
func (*WhitelistedBalanceResponse) isQueryResponse()  {}
func (*WhitelistedBalancesResponse) isQueryResponse() {}
