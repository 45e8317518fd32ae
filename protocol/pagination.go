// Copyright 2025 The AssetGate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package protocol

// PageRequest selects a page of a multi-page query. A nil PageRequest selects
// the first page with the host subsystem's default size.
type PageRequest struct {
	// Key is the continuation key returned by the previous page. Key is
	// opaque to the gateway.
	Key []byte `json:"key,omitempty"`

	// Limit is the maximum number of items to return. Zero means the host
	// subsystem's default.
	Limit uint64 `json:"limit,omitempty"`

	// CountTotal requests the total item count in the response.
	CountTotal bool `json:"count_total,omitempty"`
}

// PageResponse describes the page that was returned.
type PageResponse struct {
	// NextKey is the continuation key of the next page, or empty at the end
	// of the result set.
	NextKey []byte `json:"next_key,omitempty"`

	// Total is the total item count, when requested.
	Total uint64 `json:"total,omitempty"`
}
