// Copyright 2025 The AssetGate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package protocol

// The host subsystem owns all token, balance, freeze, and whitelist state.
// The gateway drives it exclusively through these effect messages; it never
// applies an effect itself.

// IssueToken issues a new token. The host subsystem derives the denomination
// from the subunit and the message sender.
type IssueToken struct {
	IssueSettings
}

// MintToken mints Coin.Amount new units and credits them to Recipient, or to
// the issuer when Recipient is empty.
type MintToken struct {
	Coin      Coin   `json:"coin"`
	Recipient string `json:"recipient,omitempty"`
}

// BurnToken burns Coin.Amount units from the sender's balance.
type BurnToken struct {
	Coin Coin `json:"coin"`
}

// FreezeToken increases the frozen amount of the account by Coin.Amount.
type FreezeToken struct {
	Account string `json:"account"`
	Coin    Coin   `json:"coin"`
}

// UnfreezeToken decreases the frozen amount of the account by Coin.Amount.
type UnfreezeToken struct {
	Account string `json:"account"`
	Coin    Coin   `json:"coin"`
}

// SetFrozenToken sets the frozen amount of the account to Coin.Amount.
type SetFrozenToken struct {
	Account string `json:"account"`
	Coin    Coin   `json:"coin"`
}

// GloballyFreezeToken freezes the denomination for every account.
type GloballyFreezeToken struct {
	Denom string `json:"denom"`
}

// GloballyUnfreezeToken lifts a global freeze.
type GloballyUnfreezeToken struct {
	Denom string `json:"denom"`
}

// SetWhitelistedLimitToken sets the whitelisted limit of the account to
// Coin.Amount.
type SetWhitelistedLimitToken struct {
	Account string `json:"account"`
	Coin    Coin   `json:"coin"`
}

func (*IssueToken) Type() MsgType               { return MsgTypeIssue }
func (*MintToken) Type() MsgType                { return MsgTypeMint }
func (*BurnToken) Type() MsgType                { return MsgTypeBurn }
func (*FreezeToken) Type() MsgType              { return MsgTypeFreeze }
func (*UnfreezeToken) Type() MsgType            { return MsgTypeUnfreeze }
func (*SetFrozenToken) Type() MsgType           { return MsgTypeSetFrozen }
func (*GloballyFreezeToken) Type() MsgType      { return MsgTypeGloballyFreeze }
func (*GloballyUnfreezeToken) Type() MsgType    { return MsgTypeGloballyUnfreeze }
func (*SetWhitelistedLimitToken) Type() MsgType { return MsgTypeSetWhitelistedLimit }

func (*IssueToken) isMsg()               {}
func (*MintToken) isMsg()                {}
func (*BurnToken) isMsg()                {}
func (*FreezeToken) isMsg()              {}
func (*UnfreezeToken) isMsg()            {}
func (*SetFrozenToken) isMsg()           {}
func (*GloballyFreezeToken) isMsg()      {}
func (*GloballyUnfreezeToken) isMsg()    {}
func (*SetWhitelistedLimitToken) isMsg() {}
