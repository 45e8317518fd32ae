// Copyright 2025 The AssetGate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package gate

import (
	"context"

	"gitlab.com/assetgate/assetgate/pkg/errors"
	"gitlab.com/assetgate/assetgate/protocol"
)

// pageFunc fetches one page from the host subsystem.
type pageFunc[T any] func(ctx context.Context, page *protocol.PageRequest) ([]T, *protocol.PageResponse, error)

// aggregatePages fetches pages until the host subsystem reports no
// continuation key, returning every item in the order received along with
// the final page's metadata. Aggregation assumes the upstream pagination
// terminates; maxPages bounds the loop so a cyclic or unbounded continuation
// chain fails with ResourceExhausted instead of spinning. Upstream failures
// abort the aggregation and are returned as-is.
func aggregatePages[T any](ctx context.Context, maxPages uint64, fetch pageFunc[T]) ([]T, *protocol.PageResponse, error) {
	var all []T
	var req *protocol.PageRequest
	for n := uint64(0); ; n++ {
		if err := ctx.Err(); err != nil {
			return nil, nil, errors.UnknownError.Wrap(err)
		}
		if n >= maxPages {
			return nil, nil, errors.ResourceExhausted.WithFormat("pagination exceeded %d pages", maxPages)
		}

		items, page, err := fetch(ctx, req)
		if err != nil {
			return nil, nil, err
		}
		all = append(all, items...)

		if page == nil || len(page.NextKey) == 0 {
			mQueryPages.Observe(float64(n + 1))
			return all, page, nil
		}
		req = &protocol.PageRequest{Key: page.NextKey}
	}
}
