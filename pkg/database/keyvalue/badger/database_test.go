// Copyright 2025 The AssetGate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package badger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gitlab.com/assetgate/assetgate/pkg/errors"
)

func TestDatabase(t *testing.T) {
	db, err := New(t.TempDir())
	require.NoError(t, err)
	defer func() { require.NoError(t, db.Close()) }()

	_, err = db.Get([]byte("denom"))
	require.True(t, errors.Is(err, errors.NotFound))

	require.NoError(t, db.Put([]byte("denom"), []byte("uabc-contractx")))
	v, err := db.Get([]byte("denom"))
	require.NoError(t, err)
	require.Equal(t, []byte("uabc-contractx"), v)

	require.NoError(t, db.Delete([]byte("denom")))
	_, err = db.Get([]byte("denom"))
	require.True(t, errors.Is(err, errors.NotFound))
}

func TestReopen(t *testing.T) {
	dir := t.TempDir()

	db, err := New(dir)
	require.NoError(t, err)
	require.NoError(t, db.Put([]byte("denom"), []byte("uabc-contractx")))
	require.NoError(t, db.Close())

	db, err = New(dir)
	require.NoError(t, err)
	defer func() { require.NoError(t, db.Close()) }()

	v, err := db.Get([]byte("denom"))
	require.NoError(t, err)
	require.Equal(t, []byte("uabc-contractx"), v)
}

func TestClosed(t *testing.T) {
	db, err := New(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, db.Close())

	_, err = db.Get([]byte("denom"))
	require.Error(t, err)
	require.Error(t, db.Put([]byte("denom"), nil))
}
