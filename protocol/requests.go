// Copyright 2025 The AssetGate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package protocol

import "math/big"

// Inbound mutating requests. None of them carry the denomination - the
// gateway fills it in from its identity record.

// MintRequest mints new units, credited to Recipient or to the issuer when
// Recipient is empty.
type MintRequest struct {
	Amount    *big.Int `json:"amount"`
	Recipient string   `json:"recipient,omitempty"`
}

// BurnRequest burns units from the issuer's balance.
type BurnRequest struct {
	Amount *big.Int `json:"amount"`
}

// FreezeRequest increases the frozen amount of the account.
type FreezeRequest struct {
	Account string   `json:"account"`
	Amount  *big.Int `json:"amount"`
}

// UnfreezeRequest decreases the frozen amount of the account.
type UnfreezeRequest struct {
	Account string   `json:"account"`
	Amount  *big.Int `json:"amount"`
}

// SetFrozenRequest sets the frozen amount of the account.
type SetFrozenRequest struct {
	Account string   `json:"account"`
	Amount  *big.Int `json:"amount"`
}

// GloballyFreezeRequest freezes the token for every account.
type GloballyFreezeRequest struct{}

// GloballyUnfreezeRequest lifts a global freeze.
type GloballyUnfreezeRequest struct{}

// SetWhitelistedLimitRequest sets the whitelisted limit of the account.
type SetWhitelistedLimitRequest struct {
	Account string   `json:"account"`
	Amount  *big.Int `json:"amount"`
}

func (*MintRequest) Type() MsgType                { return MsgTypeMint }
func (*BurnRequest) Type() MsgType                { return MsgTypeBurn }
func (*FreezeRequest) Type() MsgType              { return MsgTypeFreeze }
func (*UnfreezeRequest) Type() MsgType            { return MsgTypeUnfreeze }
func (*SetFrozenRequest) Type() MsgType           { return MsgTypeSetFrozen }
func (*GloballyFreezeRequest) Type() MsgType      { return MsgTypeGloballyFreeze }
func (*GloballyUnfreezeRequest) Type() MsgType    { return MsgTypeGloballyUnfreeze }
func (*SetWhitelistedLimitRequest) Type() MsgType { return MsgTypeSetWhitelistedLimit }

func (*MintRequest) isExecuteRequest()                {}
func (*BurnRequest) isExecuteRequest()                {}
func (*FreezeRequest) isExecuteRequest()              {}
func (*UnfreezeRequest) isExecuteRequest()            {}
func (*SetFrozenRequest) isExecuteRequest()           {}
func (*GloballyFreezeRequest) isExecuteRequest()      {}
func (*GloballyUnfreezeRequest) isExecuteRequest()    {}
func (*SetWhitelistedLimitRequest) isExecuteRequest() {}
