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

var cmdInit = &cobra.Command{
	Use:   "init <symbol> <subunit>",
	Short: "Issue the gateway's token and record its denomination",
	Args:  cobra.ExactArgs(2),
	Run:   runInit,
}

var flagInit struct {
	Address            string
	Precision          uint32
	InitialAmount      string
	Description        string
	Features           []string
	BurnRate           string
	SendCommissionRate string
	URI                string
	URIHash            string
}

func init() {
	cmdMain.AddCommand(cmdInit)

	cmdInit.Flags().StringVar(&flagInit.Address, "address", "assetgate", "The gateway's address on the host ledger")
	cmdInit.Flags().Uint32Var(&flagInit.Precision, "precision", 6, "Number of decimal places")
	cmdInit.Flags().StringVar(&flagInit.InitialAmount, "initial-amount", "0", "Amount minted to the gateway at issuance")
	cmdInit.Flags().StringVar(&flagInit.Description, "description", "", "Token description")
	cmdInit.Flags().StringSliceVar(&flagInit.Features, "features", []string{"minting", "burning", "freezing", "whitelisting"}, "Enabled token features")
	cmdInit.Flags().StringVar(&flagInit.BurnRate, "burn-rate", "", "Rate burned on transfer")
	cmdInit.Flags().StringVar(&flagInit.SendCommissionRate, "send-commission-rate", "", "Commission rate sent to the issuer on transfer")
	cmdInit.Flags().StringVar(&flagInit.URI, "uri", "", "Token metadata URI")
	cmdInit.Flags().StringVar(&flagInit.URIHash, "uri-hash", "", "Hash of the token metadata")
}

func runInit(cmd *cobra.Command, args []string) {
	settings := &protocol.IssueSettings{
		Symbol:             args[0],
		Subunit:            args[1],
		Precision:          flagInit.Precision,
		InitialAmount:      parseAmount(flagInit.InitialAmount),
		Description:        flagInit.Description,
		BurnRate:           flagInit.BurnRate,
		SendCommissionRate: flagInit.SendCommissionRate,
		URI:                flagInit.URI,
		URIHash:            flagInit.URIHash,
	}
	for _, name := range flagInit.Features {
		f, ok := protocol.TokenFeatureByName(name)
		if !ok {
			fatalf("unknown feature %q", name)
		}
		settings.Features = append(settings.Features, f)
	}

	env := openEnvironment()
	defer env.Close()

	resp, err := env.gate.Initialize(sender(), flagInit.Address, settings)
	checkf(err, "initialize")

	// The token does not exist on the host yet, so the issue message is
	// applied with the address given here rather than one recovered from
	// the host.
	for _, msg := range resp.Messages {
		checkf(env.host.Apply(flagInit.Address, msg), "apply %v", msg.Type())
	}
	env.saveHost()
	printJSON(resp)
}
