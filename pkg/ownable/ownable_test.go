// Copyright 2025 The AssetGate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package ownable

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gitlab.com/assetgate/assetgate/pkg/database/keyvalue/memory"
	"gitlab.com/assetgate/assetgate/pkg/errors"
)

func TestInitialize(t *testing.T) {
	o := New(memory.New())

	_, err := o.Owner()
	require.True(t, errors.Is(err, errors.NotFound))

	require.NoError(t, o.Initialize("alice"))
	owner, err := o.Owner()
	require.NoError(t, err)
	require.Equal(t, "alice", owner)

	// Initialize is once only
	err = o.Initialize("bob")
	require.True(t, errors.Is(err, errors.Conflict))
}

func TestAssertOwner(t *testing.T) {
	o := New(memory.New())
	require.NoError(t, o.Initialize("alice"))

	require.NoError(t, o.AssertOwner("alice"))
	err := o.AssertOwner("bob")
	require.True(t, errors.Is(err, errors.Unauthorized))
}

func TestTransfer(t *testing.T) {
	o := New(memory.New())
	require.NoError(t, o.Initialize("alice"))

	// Only the owner can start a transfer
	err := o.TransferOwnership("bob", "bob")
	require.True(t, errors.Is(err, errors.Unauthorized))

	require.NoError(t, o.TransferOwnership("alice", "bob"))

	// Pending transfer is not effective until accepted
	require.NoError(t, o.AssertOwner("alice"))
	require.True(t, errors.Is(o.AssertOwner("bob"), errors.Unauthorized))

	// Only the transferee can accept
	err = o.AcceptOwnership("carol")
	require.True(t, errors.Is(err, errors.Unauthorized))

	require.NoError(t, o.AcceptOwnership("bob"))
	require.NoError(t, o.AssertOwner("bob"))
	require.True(t, errors.Is(o.AssertOwner("alice"), errors.Unauthorized))

	// No pending transfer remains
	err = o.AcceptOwnership("bob")
	require.True(t, errors.Is(err, errors.NotFound))
}
