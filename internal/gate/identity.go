// Copyright 2025 The AssetGate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package gate

import (
	"encoding/json"

	"gitlab.com/assetgate/assetgate/pkg/database/keyvalue"
	"gitlab.com/assetgate/assetgate/pkg/errors"
)

var (
	denomKey = []byte("denom")
	infoKey  = []byte("contract-info")
)

// Info is the gateway's metadata record, written once at initialization.
type Info struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// identityStore persists the gateway's identity record - the denomination.
// The record is written exactly once, at initialization, and never updated.
type identityStore struct {
	store keyvalue.Store
}

// Save writes the denomination. Save fails with Conflict if a denomination
// has already been recorded.
func (s identityStore) Save(denom string) error {
	_, err := s.store.Get(denomKey)
	switch {
	case err == nil:
		return errors.Conflict.With("denom is already initialized")
	case !errors.Is(err, errors.NotFound):
		return err
	}

	return s.store.Put(denomKey, []byte(denom))
}

// Load returns the denomination. Load fails with NotFound if initialization
// never ran.
func (s identityStore) Load() (string, error) {
	b, err := s.store.Get(denomKey)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (s identityStore) SaveInfo(info *Info) error {
	b, err := json.Marshal(info)
	if err != nil {
		return errors.InternalError.WithFormat("encode info: %w", err)
	}
	return s.store.Put(infoKey, b)
}

func (s identityStore) LoadInfo() (*Info, error) {
	b, err := s.store.Get(infoKey)
	if err != nil {
		return nil, err
	}

	info := new(Info)
	err = json.Unmarshal(b, info)
	if err != nil {
		return nil, errors.InternalError.WithFormat("decode info: %w", err)
	}
	return info, nil
}
