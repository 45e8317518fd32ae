// Copyright 2025 The AssetGate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package gate

import (
	"gitlab.com/assetgate/assetgate/pkg/errors"
	"gitlab.com/assetgate/assetgate/protocol"
)

type Mint struct{}

func (Mint) Type() protocol.MsgType { return protocol.MsgTypeMint }

func (Mint) Process(st *state, req protocol.ExecuteRequest) (*Response, error) {
	body, ok := req.(*protocol.MintRequest)
	if !ok {
		return nil, errors.InternalError.WithFormat("invalid payload: want %T, got %T", new(protocol.MintRequest), req)
	}

	err := st.assertOwner()
	if err != nil {
		return nil, err
	}
	err = checkAmount(body.Amount)
	if err != nil {
		return nil, err
	}
	denom, err := st.denom()
	if err != nil {
		return nil, err
	}

	return methodResponse(protocol.MsgTypeMint, denom).
		addAttribute("amount", body.Amount.String()).
		addMessage(&protocol.MintToken{
			Coin:      protocol.NewCoin(body.Amount, denom),
			Recipient: body.Recipient,
		}), nil
}
