// Copyright 2025 The AssetGate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package keyvalue

// Store is a key-value store.
type Store interface {
	// Get loads the value recorded for the key. Get returns a NotFound error
	// if the key has no value.
	Get(key []byte) ([]byte, error)

	// Put records a value for the key, overwriting any existing value.
	Put(key, value []byte) error

	// Delete removes the key. Deleting a key that does not exist is not an
	// error.
	Delete(key []byte) error
}

// Closer is a Store that must be closed after use, such as a disk-backed
// store.
type Closer interface {
	Store
	Close() error
}
