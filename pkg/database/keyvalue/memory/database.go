// Copyright 2025 The AssetGate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package memory

import (
	"sync"

	"gitlab.com/assetgate/assetgate/pkg/database/keyvalue"
	"gitlab.com/assetgate/assetgate/pkg/errors"
)

// Database is an in-memory key-value store.
type Database struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

var _ keyvalue.Store = (*Database)(nil)

func New() *Database {
	return &Database{entries: map[string][]byte{}}
}

func (d *Database) Get(key []byte) ([]byte, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	value, ok := d.entries[string(key)]
	if !ok {
		return nil, errors.NotFound.WithFormat("%q not found", key)
	}

	// Copy so the caller can't modify the stored value
	v := make([]byte, len(value))
	copy(v, value)
	return v, nil
}

func (d *Database) Put(key, value []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	v := make([]byte, len(value))
	copy(v, value)
	d.entries[string(key)] = v
	return nil
}

func (d *Database) Delete(key []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	delete(d.entries, string(key))
	return nil
}
