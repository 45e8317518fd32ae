// Copyright 2025 The AssetGate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "json", "info")
	require.NoError(t, err)

	logger.Debug().Msg("dropped")
	logger.Info().Str("denom", "uabc-contractx").Msg("issued token")

	out := buf.String()
	require.NotContains(t, out, "dropped")
	require.Contains(t, out, "issued token")
	require.Contains(t, out, "uabc-contractx")
}

func TestNewRejectsBadInputs(t *testing.T) {
	var buf bytes.Buffer
	_, err := New(&buf, "json", "loud")
	require.Error(t, err)
	_, err = New(&buf, "xml", "info")
	require.Error(t, err)
}

func TestPlainFormat(t *testing.T) {
	var buf strings.Builder
	logger, err := New(&buf, "plain", "debug")
	require.NoError(t, err)

	logger.Info().Msg("hello")
	require.Contains(t, buf.String(), "INFO")
	require.Contains(t, buf.String(), "hello")
}
