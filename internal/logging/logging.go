// Copyright 2025 The AssetGate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package logging

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gitlab.com/assetgate/assetgate/pkg/errors"
)

// New creates a logger that writes to w. Format is "plain" (the default) for
// pretty console output or "json" for raw JSON.
func New(w io.Writer, format, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Nop(), errors.BadRequest.WithFormat("log level %q is not supported", level)
	}

	switch strings.ToLower(format) {
	case "", "text", "plain":
		// Use zerolog's console writer to write pretty logs
		w = &zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
			FormatLevel: func(i interface{}) string {
				if ll, ok := i.(string); ok {
					return strings.ToUpper(ll)
				}
				return "????"
			},
		}
	case "json":
		// Raw JSON
	default:
		return zerolog.Nop(), errors.BadRequest.WithFormat("log format %q is not supported", format)
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}
