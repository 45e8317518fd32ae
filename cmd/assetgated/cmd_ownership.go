// Copyright 2025 The AssetGate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package main

import (
	"github.com/spf13/cobra"
)

var cmdTransferOwnership = &cobra.Command{
	Use:   "transfer-ownership <new-owner>",
	Short: "Offer ownership of the gateway to another address",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		env := openEnvironment()
		defer env.Close()

		checkf(env.gate.Ownership().TransferOwnership(sender(), args[0]), "transfer ownership")
		printJSON(map[string]string{"pending_owner": args[0]})
	},
}

var cmdAcceptOwnership = &cobra.Command{
	Use:   "accept-ownership",
	Short: "Accept a pending ownership offer",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		env := openEnvironment()
		defer env.Close()

		checkf(env.gate.Ownership().AcceptOwnership(sender()), "accept ownership")
		printJSON(map[string]string{"owner": sender()})
	},
}

func init() {
	cmdMain.AddCommand(cmdTransferOwnership, cmdAcceptOwnership)
}
