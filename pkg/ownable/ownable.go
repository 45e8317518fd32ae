// Copyright 2025 The AssetGate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package ownable tracks a single owner identity in a key-value store and
// enforces owner-only access. Ownership can be handed over with a two-step
// transfer: the current owner names a transferee, and the transfer takes
// effect only once the transferee accepts it.
package ownable

import (
	"encoding/json"

	"gitlab.com/assetgate/assetgate/pkg/database/keyvalue"
	"gitlab.com/assetgate/assetgate/pkg/errors"
)

var ownershipKey = []byte("ownership")

// Ownership is the persisted ownership record.
type Ownership struct {
	Owner        string `json:"owner"`
	PendingOwner string `json:"pending_owner,omitempty"`
}

// Tracker stores and verifies the owner identity.
type Tracker struct {
	store keyvalue.Store
}

func New(store keyvalue.Store) *Tracker {
	return &Tracker{store: store}
}

// Initialize records the owner. Initialize fails with Conflict if an owner
// has already been recorded.
func (t *Tracker) Initialize(owner string) error {
	if owner == "" {
		return errors.BadRequest.With("owner is missing")
	}

	_, err := t.load()
	switch {
	case err == nil:
		return errors.Conflict.With("ownership is already initialized")
	case !errors.Is(err, errors.NotFound):
		return err
	}

	return t.save(&Ownership{Owner: owner})
}

// Owner returns the recorded owner. Owner fails with NotFound if Initialize
// was never called.
func (t *Tracker) Owner() (string, error) {
	o, err := t.load()
	if err != nil {
		return "", err
	}
	return o.Owner, nil
}

// AssertOwner fails with Unauthorized unless the caller is the recorded
// owner. It has no other effect.
func (t *Tracker) AssertOwner(caller string) error {
	o, err := t.load()
	if err != nil {
		return err
	}
	if o.Owner != caller {
		return errors.Unauthorized.WithFormat("%s is not the owner", caller)
	}
	return nil
}

// TransferOwnership names a new owner. Only the current owner may call it.
// The transfer has no effect until the transferee calls AcceptOwnership.
func (t *Tracker) TransferOwnership(caller, newOwner string) error {
	if newOwner == "" {
		return errors.BadRequest.With("new owner is missing")
	}

	o, err := t.load()
	if err != nil {
		return err
	}
	if o.Owner != caller {
		return errors.Unauthorized.WithFormat("%s is not the owner", caller)
	}

	o.PendingOwner = newOwner
	return t.save(o)
}

// AcceptOwnership completes a pending transfer. Only the named transferee may
// call it.
func (t *Tracker) AcceptOwnership(caller string) error {
	o, err := t.load()
	if err != nil {
		return err
	}
	if o.PendingOwner == "" {
		return errors.NotFound.With("no pending ownership transfer")
	}
	if o.PendingOwner != caller {
		return errors.Unauthorized.WithFormat("%s is not the pending owner", caller)
	}

	o.Owner = caller
	o.PendingOwner = ""
	return t.save(o)
}

func (t *Tracker) load() (*Ownership, error) {
	b, err := t.store.Get(ownershipKey)
	if err != nil {
		return nil, err
	}

	o := new(Ownership)
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, errors.InternalError.WithFormat("decode ownership: %w", err)
	}
	return o, nil
}

func (t *Tracker) save(o *Ownership) error {
	b, err := json.Marshal(o)
	if err != nil {
		return errors.InternalError.WithFormat("encode ownership: %w", err)
	}
	return t.store.Put(ownershipKey, b)
}
