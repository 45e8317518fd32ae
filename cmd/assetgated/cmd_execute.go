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

var cmdMint = &cobra.Command{
	Use:   "mint <amount> [recipient]",
	Short: "Mint new units of the gateway's token",
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		req := &protocol.MintRequest{Amount: parseAmount(args[0])}
		if len(args) > 1 {
			req.Recipient = args[1]
		}
		execute(cmd, req)
	},
}

var cmdBurn = &cobra.Command{
	Use:   "burn <amount>",
	Short: "Burn units of the gateway's token",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		execute(cmd, &protocol.BurnRequest{Amount: parseAmount(args[0])})
	},
}

var cmdFreeze = &cobra.Command{
	Use:   "freeze <account> <amount>",
	Short: "Increase the account's frozen amount",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		execute(cmd, &protocol.FreezeRequest{Account: args[0], Amount: parseAmount(args[1])})
	},
}

var cmdUnfreeze = &cobra.Command{
	Use:   "unfreeze <account> <amount>",
	Short: "Decrease the account's frozen amount",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		execute(cmd, &protocol.UnfreezeRequest{Account: args[0], Amount: parseAmount(args[1])})
	},
}

var cmdSetFrozen = &cobra.Command{
	Use:   "set-frozen <account> <amount>",
	Short: "Set the account's frozen amount",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		execute(cmd, &protocol.SetFrozenRequest{Account: args[0], Amount: parseAmount(args[1])})
	},
}

var cmdFreezeAll = &cobra.Command{
	Use:   "freeze-all",
	Short: "Globally freeze the gateway's token",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		execute(cmd, &protocol.GloballyFreezeRequest{})
	},
}

var cmdUnfreezeAll = &cobra.Command{
	Use:   "unfreeze-all",
	Short: "Globally unfreeze the gateway's token",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		execute(cmd, &protocol.GloballyUnfreezeRequest{})
	},
}

var cmdSetWhitelist = &cobra.Command{
	Use:   "set-whitelist <account> <amount>",
	Short: "Set the account's whitelisted limit",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		execute(cmd, &protocol.SetWhitelistedLimitRequest{Account: args[0], Amount: parseAmount(args[1])})
	},
}

func init() {
	cmdMain.AddCommand(
		cmdMint,
		cmdBurn,
		cmdFreeze,
		cmdUnfreeze,
		cmdSetFrozen,
		cmdFreezeAll,
		cmdUnfreezeAll,
		cmdSetWhitelist,
	)
}
