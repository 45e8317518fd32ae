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

type Freeze struct{}

func (Freeze) Type() protocol.MsgType { return protocol.MsgTypeFreeze }

func (Freeze) Process(st *state, req protocol.ExecuteRequest) (*Response, error) {
	body, ok := req.(*protocol.FreezeRequest)
	if !ok {
		return nil, errors.InternalError.WithFormat("invalid payload: want %T, got %T", new(protocol.FreezeRequest), req)
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

	return methodResponse(protocol.MsgTypeFreeze, denom).
		addAttribute("amount", body.Amount.String()).
		addMessage(&protocol.FreezeToken{
			Account: body.Account,
			Coin:    protocol.NewCoin(body.Amount, denom),
		}), nil
}

type Unfreeze struct{}

func (Unfreeze) Type() protocol.MsgType { return protocol.MsgTypeUnfreeze }

func (Unfreeze) Process(st *state, req protocol.ExecuteRequest) (*Response, error) {
	body, ok := req.(*protocol.UnfreezeRequest)
	if !ok {
		return nil, errors.InternalError.WithFormat("invalid payload: want %T, got %T", new(protocol.UnfreezeRequest), req)
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

	return methodResponse(protocol.MsgTypeUnfreeze, denom).
		addAttribute("amount", body.Amount.String()).
		addMessage(&protocol.UnfreezeToken{
			Account: body.Account,
			Coin:    protocol.NewCoin(body.Amount, denom),
		}), nil
}

type SetFrozen struct{}

func (SetFrozen) Type() protocol.MsgType { return protocol.MsgTypeSetFrozen }

func (SetFrozen) Process(st *state, req protocol.ExecuteRequest) (*Response, error) {
	body, ok := req.(*protocol.SetFrozenRequest)
	if !ok {
		return nil, errors.InternalError.WithFormat("invalid payload: want %T, got %T", new(protocol.SetFrozenRequest), req)
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

	return methodResponse(protocol.MsgTypeSetFrozen, denom).
		addAttribute("amount", body.Amount.String()).
		addMessage(&protocol.SetFrozenToken{
			Account: body.Account,
			Coin:    protocol.NewCoin(body.Amount, denom),
		}), nil
}

type GloballyFreeze struct{}

func (GloballyFreeze) Type() protocol.MsgType { return protocol.MsgTypeGloballyFreeze }

func (GloballyFreeze) Process(st *state, req protocol.ExecuteRequest) (*Response, error) {
	_, ok := req.(*protocol.GloballyFreezeRequest)
	if !ok {
		return nil, errors.InternalError.WithFormat("invalid payload: want %T, got %T", new(protocol.GloballyFreezeRequest), req)
	}

	err := st.assertOwner()
	if err != nil {
		return nil, err
	}
	denom, err := st.denom()
	if err != nil {
		return nil, err
	}

	return methodResponse(protocol.MsgTypeGloballyFreeze, denom).
		addMessage(&protocol.GloballyFreezeToken{Denom: denom}), nil
}

type GloballyUnfreeze struct{}

func (GloballyUnfreeze) Type() protocol.MsgType { return protocol.MsgTypeGloballyUnfreeze }

func (GloballyUnfreeze) Process(st *state, req protocol.ExecuteRequest) (*Response, error) {
	_, ok := req.(*protocol.GloballyUnfreezeRequest)
	if !ok {
		return nil, errors.InternalError.WithFormat("invalid payload: want %T, got %T", new(protocol.GloballyUnfreezeRequest), req)
	}

	err := st.assertOwner()
	if err != nil {
		return nil, err
	}
	denom, err := st.denom()
	if err != nil {
		return nil, err
	}

	return methodResponse(protocol.MsgTypeGloballyUnfreeze, denom).
		addMessage(&protocol.GloballyUnfreezeToken{Denom: denom}), nil
}
