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

type Burn struct{}

func (Burn) Type() protocol.MsgType { return protocol.MsgTypeBurn }

func (Burn) Process(st *state, req protocol.ExecuteRequest) (*Response, error) {
	body, ok := req.(*protocol.BurnRequest)
	if !ok {
		return nil, errors.InternalError.WithFormat("invalid payload: want %T, got %T", new(protocol.BurnRequest), req)
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

	return methodResponse(protocol.MsgTypeBurn, denom).
		addAttribute("amount", body.Amount.String()).
		addMessage(&protocol.BurnToken{
			Coin: protocol.NewCoin(body.Amount, denom),
		}), nil
}
