// Copyright 2025 The AssetGate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package errors

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsStatus(t *testing.T) {
	err := Unauthorized.WithFormat("%s is not the owner", "alice")
	require.True(t, errors.Is(err, Unauthorized))
	require.False(t, errors.Is(err, NotFound))
}

func TestWrapNil(t *testing.T) {
	require.NoError(t, UnknownError.Wrap(nil))
}

func TestWrapPreservesCause(t *testing.T) {
	err := NotFound.WithFormat("denom: %w", io.EOF)
	require.True(t, errors.Is(err, io.EOF))
	require.True(t, errors.Is(err, NotFound))

	err2 := UpstreamError.Wrap(err).(*Error)
	require.True(t, errors.Is(err2, NotFound))
	require.True(t, errors.Is(err2, io.EOF))
	require.Equal(t, UpstreamError, err2.Code)
}

func TestCode(t *testing.T) {
	cases := []struct {
		err    error
		expect Status
	}{
		{nil, OK},
		{Unauthorized.With("nope"), Unauthorized},
		{ResourceExhausted.WithFormat("%d pages", 100), ResourceExhausted},
		{fmt.Errorf("outer: %w", Conflict.With("twice")), Conflict},
		{io.EOF, UnknownError},
	}

	for _, c := range cases {
		t.Run("", func(t *testing.T) {
			require.Equal(t, c.expect, Code(c.err))
		})
	}
}
