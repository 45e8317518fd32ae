// Copyright 2025 The AssetGate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package protocol

import (
	"fmt"
	"math/big"
	"reflect"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// IssueSettings are the parameters of a new token. They arrive with the
// gateway's initialization request and are carried verbatim on the outbound
// IssueToken message.
type IssueSettings struct {
	Symbol             string         `json:"symbol" validate:"required,token-symbol"`
	Subunit            string         `json:"subunit" validate:"required,token-subunit"`
	Precision          uint32         `json:"precision" validate:"lte=20"`
	InitialAmount      *big.Int       `json:"initial_amount" validate:"required"`
	Description        string         `json:"description,omitempty"`
	Features           []TokenFeature `json:"features,omitempty"`
	BurnRate           string         `json:"burn_rate,omitempty" validate:"omitempty,token-rate"`
	SendCommissionRate string         `json:"send_commission_rate,omitempty" validate:"omitempty,token-rate"`
	URI                string         `json:"uri,omitempty"`
	URIHash            string         `json:"uri_hash,omitempty"`
}

var (
	symbolRegexp  = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9/:._-]{0,127}$`)
	subunitRegexp = regexp.MustCompile(`^[a-z][a-z0-9/:._]{0,50}$`)
)

// NewValidator creates a validator with the token validations registered:
// "token-symbol", "token-subunit", and "token-rate" (a decimal in [0, 1]).
func NewValidator() (*validator.Validate, error) {
	v := validator.New()

	str := func(fl validator.FieldLevel) string {
		if fl.Field().Kind() != reflect.String {
			panic(fmt.Errorf("%q is not a string", fl.FieldName()))
		}
		return fl.Field().String()
	}

	err := v.RegisterValidation("token-symbol", func(fl validator.FieldLevel) bool {
		return symbolRegexp.MatchString(str(fl))
	})
	if err != nil {
		return nil, err
	}

	err = v.RegisterValidation("token-subunit", func(fl validator.FieldLevel) bool {
		return subunitRegexp.MatchString(str(fl))
	})
	if err != nil {
		return nil, err
	}

	err = v.RegisterValidation("token-rate", func(fl validator.FieldLevel) bool {
		r, ok := new(big.Rat).SetString(str(fl))
		if !ok {
			return false
		}
		return r.Sign() >= 0 && r.Cmp(big.NewRat(1, 1)) <= 0
	})
	if err != nil {
		return nil, err
	}

	return v, nil
}
