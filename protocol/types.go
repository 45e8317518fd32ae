// Copyright 2025 The AssetGate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package protocol defines the messages, queries, and responses exchanged
// between the gateway, its callers, and the host ledger's fungible-token
// subsystem.
package protocol

import "strings"

// MsgType is the type of a token operation.
type MsgType uint64

const (
	MsgTypeUnknown MsgType = iota
	MsgTypeIssue
	MsgTypeMint
	MsgTypeBurn
	MsgTypeFreeze
	MsgTypeUnfreeze
	MsgTypeSetFrozen
	MsgTypeGloballyFreeze
	MsgTypeGloballyUnfreeze
	MsgTypeSetWhitelistedLimit
)

func (t MsgType) String() string {
	switch t {
	case MsgTypeIssue:
		return "issue"
	case MsgTypeMint:
		return "mint"
	case MsgTypeBurn:
		return "burn"
	case MsgTypeFreeze:
		return "freeze"
	case MsgTypeUnfreeze:
		return "unfreeze"
	case MsgTypeSetFrozen:
		return "set_frozen"
	case MsgTypeGloballyFreeze:
		return "globally_freeze"
	case MsgTypeGloballyUnfreeze:
		return "globally_unfreeze"
	case MsgTypeSetWhitelistedLimit:
		return "set_whitelisted_limit"
	default:
		return "unknown"
	}
}

// QueryType is the type of a token query.
type QueryType uint64

const (
	QueryTypeUnknown QueryType = iota
	QueryTypeParams
	QueryTypeToken
	QueryTypeTokens
	QueryTypeBalance
	QueryTypeFrozenBalance
	QueryTypeFrozenBalances
	QueryTypeWhitelistedBalance
	QueryTypeWhitelistedBalances
)

func (t QueryType) String() string {
	switch t {
	case QueryTypeParams:
		return "params"
	case QueryTypeToken:
		return "token"
	case QueryTypeTokens:
		return "tokens"
	case QueryTypeBalance:
		return "balance"
	case QueryTypeFrozenBalance:
		return "frozen_balance"
	case QueryTypeFrozenBalances:
		return "frozen_balances"
	case QueryTypeWhitelistedBalance:
		return "whitelisted_balance"
	case QueryTypeWhitelistedBalances:
		return "whitelisted_balances"
	default:
		return "unknown"
	}
}

// Msg is an outbound effect message for the host subsystem. Msg is a closed
// union - every implementation lives in this package.
type Msg interface {
	Type() MsgType
	isMsg()
}

// ExecuteRequest is an inbound mutating request. ExecuteRequest is a closed
// union - every implementation lives in this package.
type ExecuteRequest interface {
	Type() MsgType
	isExecuteRequest()
}

// QueryRequest is an inbound query request. QueryRequest is a closed union -
// every implementation lives in this package.
type QueryRequest interface {
	Type() QueryType
	isQueryRequest()
}

// QueryResponse is the response to a QueryRequest.
type QueryResponse interface {
	isQueryResponse()
}

// BuildDenom builds the globally unique denomination for a token issued by
// the given address: lowercase(subunit + "-" + address).
func BuildDenom(subunit, address string) string {
	return strings.ToLower(subunit + "-" + address)
}
