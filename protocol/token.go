// Copyright 2025 The AssetGate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package protocol

import "math/big"

// Coin is an amount of a specific denomination.
type Coin struct {
	Denom  string   `json:"denom"`
	Amount *big.Int `json:"amount"`
}

// NewCoin creates a new coin. NewCoin copies the amount.
func NewCoin(amount *big.Int, denom string) Coin {
	return Coin{Denom: denom, Amount: new(big.Int).Set(amount)}
}

// TokenFeature enables an optional behavior of an issued token.
type TokenFeature uint32

const (
	FeatureMinting TokenFeature = iota
	FeatureBurning
	FeatureFreezing
	FeatureWhitelisting
	FeatureIBC
)

func (f TokenFeature) String() string {
	switch f {
	case FeatureMinting:
		return "minting"
	case FeatureBurning:
		return "burning"
	case FeatureFreezing:
		return "freezing"
	case FeatureWhitelisting:
		return "whitelisting"
	case FeatureIBC:
		return "ibc"
	default:
		return "unknown"
	}
}

// TokenFeatureByName returns the feature with the given name.
func TokenFeatureByName(name string) (TokenFeature, bool) {
	for _, f := range []TokenFeature{FeatureMinting, FeatureBurning, FeatureFreezing, FeatureWhitelisting, FeatureIBC} {
		if f.String() == name {
			return f, true
		}
	}
	return 0, false
}

// Token is the host subsystem's record of an issued token.
type Token struct {
	Denom              string         `json:"denom"`
	Issuer             string         `json:"issuer"`
	Symbol             string         `json:"symbol"`
	Subunit            string         `json:"subunit"`
	Precision          uint32         `json:"precision"`
	Description        string         `json:"description,omitempty"`
	GloballyFrozen     bool           `json:"globally_frozen"`
	Features           []TokenFeature `json:"features,omitempty"`
	BurnRate           string         `json:"burn_rate,omitempty"`
	SendCommissionRate string         `json:"send_commission_rate,omitempty"`
	URI                string         `json:"uri,omitempty"`
	URIHash            string         `json:"uri_hash,omitempty"`
}

// HasFeature returns true if the token was issued with the feature enabled.
func (t *Token) HasFeature(feature TokenFeature) bool {
	for _, f := range t.Features {
		if f == feature {
			return true
		}
	}
	return false
}

// Params are the host subsystem's token-issuance parameters.
type Params struct {
	IssueFee Coin `json:"issue_fee"`
}
