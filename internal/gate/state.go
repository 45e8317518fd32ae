// Copyright 2025 The AssetGate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package gate

import (
	"math/big"

	"gitlab.com/assetgate/assetgate/pkg/errors"
	"gitlab.com/assetgate/assetgate/pkg/ownable"
	"gitlab.com/assetgate/assetgate/protocol"
)

// state is the per-invocation context handed to an executor.
type state struct {
	identity identityStore
	owner    *ownable.Tracker
	caller   string
}

// assertOwner fails with Unauthorized unless the caller is the owner. Every
// executor calls this before constructing its effect message, so an
// unauthorized call never produces a partial effect.
func (st *state) assertOwner() error {
	return st.owner.AssertOwner(st.caller)
}

// denom loads the identity record. A NotFound here means the gateway was
// never initialized, which no normal call path can reach.
func (st *state) denom() (string, error) {
	return st.identity.Load()
}

// Attribute is a human-readable key-value pair attached to a response.
type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Response is the result of a mutating operation: human-readable attributes
// plus the outbound effect messages for the host environment to execute.
// Every operation produces at most one message.
type Response struct {
	Attributes []Attribute    `json:"attributes,omitempty"`
	Messages   []protocol.Msg `json:"messages,omitempty"`
}

func (r *Response) addAttribute(key, value string) *Response {
	r.Attributes = append(r.Attributes, Attribute{Key: key, Value: value})
	return r
}

func (r *Response) addMessage(msg protocol.Msg) *Response {
	r.Messages = append(r.Messages, msg)
	return r
}

// Attribute returns the value of the named attribute.
func (r *Response) Attribute(key string) (string, bool) {
	for _, a := range r.Attributes {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// methodResponse starts a response with the uniform method and denom
// attributes every mutating operation carries.
func methodResponse(method protocol.MsgType, denom string) *Response {
	return new(Response).
		addAttribute("method", method.String()).
		addAttribute("denom", denom)
}

// checkAmount rejects a missing or negative amount before it reaches the
// host subsystem.
func checkAmount(amount *big.Int) error {
	switch {
	case amount == nil:
		return errors.BadRequest.With("amount is missing")
	case amount.Sign() < 0:
		return errors.BadRequest.With("amount is negative")
	}
	return nil
}
