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

type executorFor[T any, V interface{ Type() T }] interface {
	Type() T
	Process(*state, V) (*Response, error)
}

type messageExecutor = executorFor[protocol.MsgType, protocol.ExecuteRequest]

func newExecutorMap[T comparable, V interface{ Type() T }](list []executorFor[T, V]) map[T]executorFor[T, V] {
	m := map[T]executorFor[T, V]{}
	for _, x := range list {
		if _, ok := m[x.Type()]; ok {
			panic(errors.InternalError.WithFormat("duplicate executor for %v", x.Type()))
		}
		m[x.Type()] = x
	}
	return m
}
