// Copyright 2025 The AssetGate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package main

import (
	"encoding/json"
	"fmt"
	"log"
	"math/big"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gitlab.com/assetgate/assetgate/internal/gate"
	"gitlab.com/assetgate/assetgate/internal/ledger/memledger"
	"gitlab.com/assetgate/assetgate/internal/logging"
	"gitlab.com/assetgate/assetgate/pkg/database/keyvalue/badger"
	"gitlab.com/assetgate/assetgate/pkg/errors"
	"gitlab.com/assetgate/assetgate/protocol"
)

var currentUser = func() *user.User {
	usr, err := user.Current()
	if err != nil {
		log.Fatal(err)
	}
	return usr
}()

var defaultWorkDir = filepath.Join(currentUser.HomeDir, ".assetgate")

var cmdMain = &cobra.Command{
	Use:   "assetgated",
	Short: "Token issuance and access-control gateway",
	Run:   printUsageAndExit1,
}

var flagMain struct {
	WorkDir   string
	Sender    string
	LogLevel  string
	LogFormat string
	MaxPages  uint64
}

func init() {
	cmdMain.PersistentFlags().StringVarP(&flagMain.WorkDir, "work-dir", "w", defaultWorkDir, "Working directory for configuration and data")
	cmdMain.PersistentFlags().StringVar(&flagMain.Sender, "sender", "", "Address the command is sent from")
	cmdMain.PersistentFlags().StringVar(&flagMain.LogLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")
	cmdMain.PersistentFlags().StringVar(&flagMain.LogFormat, "log-format", "plain", "Log format (plain or json)")
	cmdMain.PersistentFlags().Uint64Var(&flagMain.MaxPages, "max-pages", 0, "Maximum number of pages fetched per aggregated query")

	check(viper.BindPFlags(cmdMain.PersistentFlags()))
	viper.SetEnvPrefix("ASSETGATE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func main() {
	cmdMain.Execute()
}

func printUsageAndExit1(cmd *cobra.Command, _ []string) {
	_ = cmd.Usage()
	os.Exit(1)
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

func check(err error) {
	if err != nil {
		fatalf("%v", err)
	}
}

func checkf(err error, format string, otherArgs ...interface{}) {
	if err != nil {
		fatalf(format+": %v", append(otherArgs, err)...)
	}
}

// hostStateKey is the key the host ledger's snapshot is persisted under,
// next to the gateway's own records.
var hostStateKey = []byte("host-state")

// environment is a gateway wired to a locally persisted reference host.
type environment struct {
	store *badger.Database
	gate  *gate.Gateway
	host  *memledger.Ledger
}

func openEnvironment() *environment {
	logger, err := logging.New(os.Stderr, viper.GetString("log-format"), viper.GetString("log-level"))
	check(err)

	store, err := badger.New(filepath.Join(viper.GetString("work-dir"), "data"), badger.WithLogger(logger))
	checkf(err, "open store")

	host, err := memledger.New(memledger.WithLogger(logger))
	check(err)
	data, err := store.Get(hostStateKey)
	switch {
	case err == nil:
		snapshot := new(memledger.Snapshot)
		checkf(json.Unmarshal(data, snapshot), "load host state")
		host.Restore(snapshot)
	case !errors.Is(err, errors.NotFound):
		checkf(err, "load host state")
	}

	g, err := gate.New(gate.Options{
		Store:    store,
		Querier:  host,
		Logger:   &logger,
		MaxPages: viper.GetUint64("max-pages"),
	})
	check(err)

	return &environment{store: store, gate: g, host: host}
}

func (e *environment) Close() {
	check(e.store.Close())
}

// saveHost persists the reference host's state.
func (e *environment) saveHost() {
	data, err := json.Marshal(e.host.Snapshot())
	check(err)
	checkf(e.store.Put(hostStateKey, data), "save host state")
}

// address returns the gateway's own address on the host, recovered from the
// issuer of its token.
func (e *environment) address(cmd *cobra.Command) string {
	denom, err := e.gate.Denom()
	checkf(err, "load denomination")
	res, err := e.host.Token(cmd.Context(), denom)
	checkf(err, "load token")
	return res.Token.Issuer
}

// deliver applies the response's effect messages to the host, saves the
// host's state, and prints the response.
func (e *environment) deliver(cmd *cobra.Command, resp *gate.Response) {
	sender := e.address(cmd)
	for _, msg := range resp.Messages {
		checkf(e.host.Apply(sender, msg), "apply %v", msg.Type())
	}
	e.saveHost()
	printJSON(resp)
}

func printJSON(v interface{}) {
	data, err := json.MarshalIndent(v, "", "  ")
	check(err)
	fmt.Println(string(data))
}

func sender() string {
	s := viper.GetString("sender")
	if s == "" {
		fatalf("--sender is required")
	}
	return s
}

func parseAmount(s string) *big.Int {
	amount, ok := new(big.Int).SetString(s, 10)
	if !ok {
		fatalf("invalid amount %q", s)
	}
	return amount
}

func execute(cmd *cobra.Command, req protocol.ExecuteRequest) {
	env := openEnvironment()
	defer env.Close()

	resp, err := env.gate.Execute(sender(), req)
	checkf(err, "%v", req.Type())
	env.deliver(cmd, resp)
}
