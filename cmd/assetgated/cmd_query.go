// Copyright 2025 The AssetGate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package main

import (
	"github.com/spf13/cobra"
	"gitlab.com/assetgate/assetgate/protocol"
)

var cmdQuery = &cobra.Command{
	Use:   "query",
	Short: "Query the gateway and the host subsystem",
	Run:   printUsageAndExit1,
}

var cmdQueryParams = &cobra.Command{
	Use:   "params",
	Short: "Show the host subsystem's issuance parameters",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		query(cmd, &protocol.ParamsQuery{})
	},
}

var cmdQueryToken = &cobra.Command{
	Use:   "token",
	Short: "Show the gateway's token record",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		query(cmd, &protocol.TokenQuery{})
	},
}

var cmdQueryTokens = &cobra.Command{
	Use:   "tokens <issuer>",
	Short: "List every token issued by the issuer",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		query(cmd, &protocol.TokensQuery{Issuer: args[0]})
	},
}

var cmdQueryBalance = &cobra.Command{
	Use:   "balance <account>",
	Short: "Show the account's balance of the gateway's token",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		query(cmd, &protocol.BalanceQuery{Account: args[0]})
	},
}

var cmdQueryFrozen = &cobra.Command{
	Use:   "frozen <account>",
	Short: "Show the account's frozen amount of the gateway's token",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		query(cmd, &protocol.FrozenBalanceQuery{Account: args[0]})
	},
}

var cmdQueryFrozenAll = &cobra.Command{
	Use:   "frozen-all <account>",
	Short: "List every frozen balance of the account",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		query(cmd, &protocol.FrozenBalancesQuery{Account: args[0]})
	},
}

var cmdQueryWhitelist = &cobra.Command{
	Use:   "whitelist <account>",
	Short: "Show the account's whitelisted limit of the gateway's token",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		query(cmd, &protocol.WhitelistedBalanceQuery{Account: args[0]})
	},
}

var cmdQueryWhitelistAll = &cobra.Command{
	Use:   "whitelist-all <account>",
	Short: "List every whitelisted balance of the account",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		query(cmd, &protocol.WhitelistedBalancesQuery{Account: args[0]})
	},
}

var cmdQueryOwner = &cobra.Command{
	Use:   "owner",
	Short: "Show the gateway's owner",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		env := openEnvironment()
		defer env.Close()

		owner, err := env.gate.Owner()
		checkf(err, "load owner")
		printJSON(map[string]string{"owner": owner})
	},
}

func init() {
	cmdMain.AddCommand(cmdQuery)
	cmdQuery.AddCommand(
		cmdQueryParams,
		cmdQueryToken,
		cmdQueryTokens,
		cmdQueryBalance,
		cmdQueryFrozen,
		cmdQueryFrozenAll,
		cmdQueryWhitelist,
		cmdQueryWhitelistAll,
		cmdQueryOwner,
	)
}

func query(cmd *cobra.Command, req protocol.QueryRequest) {
	env := openEnvironment()
	defer env.Close()

	res, err := env.gate.Query(cmd.Context(), req)
	checkf(err, "%v", req.Type())
	printJSON(res)
}
