// Copyright 2025 The AssetGate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package badger

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/dgraph-io/badger"
	"github.com/rs/zerolog"
	"gitlab.com/assetgate/assetgate/pkg/database/keyvalue"
	"gitlab.com/assetgate/assetgate/pkg/errors"
)

// Database is a Badger-backed key-value store.
type Database struct {
	badger *badger.DB
	logger zerolog.Logger
	ready  bool
	mu     sync.RWMutex
}

var _ keyvalue.Closer = (*Database)(nil)

type Option func(*Database)

// WithLogger sets the logger Badger's internal messages are forwarded to.
func WithLogger(logger zerolog.Logger) Option {
	return func(d *Database) { d.logger = logger }
}

func New(filepath string, o ...Option) (*Database, error) {
	// Make sure all directories exist
	err := os.MkdirAll(filepath, 0700)
	if err != nil {
		return nil, errors.UnknownError.WithFormat("open badger: create %q: %w", filepath, err)
	}

	d := new(Database)
	d.logger = zerolog.Nop()
	for _, o := range o {
		o(d)
	}

	opts := badger.DefaultOptions(filepath)
	opts = opts.WithLogger(zlogger{d.logger})

	d.ready = true

	// Open Badger
	d.badger, err = badger.Open(opts)
	if err != nil {
		return nil, err
	}
	mDbOpen.Inc()

	// Run GC every hour
	go d.gc()

	return d, nil
}

func (d *Database) Get(key []byte) ([]byte, error) {
	l, err := d.lock(false)
	if err != nil {
		return nil, err
	}
	defer l.Unlock()

	var value []byte
	err = d.badger.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	switch {
	case err == nil:
		return value, nil
	case errors.Is(err, badger.ErrKeyNotFound):
		return nil, errors.NotFound.WithFormat("%q not found", key)
	default:
		return nil, errors.UnknownError.WithFormat("get %q: %w", key, err)
	}
}

func (d *Database) Put(key, value []byte) error {
	l, err := d.lock(false)
	if err != nil {
		return err
	}
	defer l.Unlock()

	err = d.badger.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
	return errors.UnknownError.Wrap(err)
}

func (d *Database) Delete(key []byte) error {
	l, err := d.lock(false)
	if err != nil {
		return err
	}
	defer l.Unlock()

	err = d.badger.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
	return errors.UnknownError.Wrap(err)
}

// Close closes the underlying database.
func (d *Database) Close() error {
	if l, err := d.lock(true); err != nil {
		return err
	} else {
		defer l.Unlock()
	}

	d.ready = false
	mDbOpen.Dec()
	return d.badger.Close()
}

func (d *Database) gc() {
	for {
		// GC every hour
		time.Sleep(time.Hour)

		// Still open?
		l, err := d.lock(false)
		if err != nil {
			return
		}

		// Run GC if 50% space could be reclaimed
		start := time.Now()
		err = d.badger.RunValueLogGC(0.5)
		if err != nil && !errors.Is(err, badger.ErrNoRewrite) {
			d.logger.Error().Err(err).Msg("Badger GC failed")
		}
		mGcRun.Inc()
		mGcDuration.Set(time.Since(start).Seconds())

		// Release the lock
		l.Unlock()
	}
}

// lock acquires a lock on the ready mutex and checks for readiness. This
// prevents race conditions between Get/Put and Close, which can cause panics.
func (d *Database) lock(closing bool) (sync.Locker, error) {
	var l sync.Locker = &d.mu
	if !closing {
		l = d.mu.RLocker()
	}

	l.Lock()
	if !d.ready {
		l.Unlock()
		return nil, errors.InternalError.With("already closed")
	}

	return l, nil
}

// zlogger forwards Badger's log messages to zerolog.
type zlogger struct {
	l zerolog.Logger
}

func (l zlogger) format(format string, args ...interface{}) string {
	s := fmt.Sprintf(format, args...)
	return strings.TrimRight(s, "\n")
}

func (l zlogger) Errorf(format string, args ...interface{}) {
	l.l.Error().Str("module", "badger").Msg(l.format(format, args...))
}

func (l zlogger) Warningf(format string, args ...interface{}) {
	l.l.Warn().Str("module", "badger").Msg(l.format(format, args...))
}

func (l zlogger) Infof(format string, args ...interface{}) {
	l.l.Info().Str("module", "badger").Msg(l.format(format, args...))
}

func (l zlogger) Debugf(format string, args ...interface{}) {
	l.l.Debug().Str("module", "badger").Msg(l.format(format, args...))
}
