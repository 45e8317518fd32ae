// Copyright 2025 The AssetGate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package memledger is an in-memory host-side fungible-token subsystem. It
// executes the gateway's effect messages and answers its queries. It backs
// the gateway's tests and the assetgated command; a production deployment
// replaces it with the real host ledger.
package memledger

import (
	"context"
	"math/big"
	"sort"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gitlab.com/assetgate/assetgate/internal/ledger"
	"gitlab.com/assetgate/assetgate/pkg/errors"
	"gitlab.com/assetgate/assetgate/protocol"
)

const defaultPageSize = 100

// Ledger is an in-memory fungible-token subsystem.
type Ledger struct {
	mu       sync.RWMutex
	validate *validator.Validate
	logger   zerolog.Logger
	pageSize uint64

	params      protocol.Params
	tokens      map[string]*protocol.Token          // denom -> token
	supply      map[string]*big.Int                 // denom -> issued supply
	balances    map[string]map[string]*big.Int      // account -> denom -> amount
	frozen      map[string]map[string]*big.Int      // account -> denom -> amount
	whitelisted map[string]map[string]*big.Int      // account -> denom -> limit
}

var _ ledger.Querier = (*Ledger)(nil)

type Option func(*Ledger)

// WithPageSize sets the default page size of the paginated queries.
func WithPageSize(n uint64) Option {
	return func(l *Ledger) { l.pageSize = n }
}

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(l *Ledger) { l.logger = logger }
}

// WithParams sets the issuance parameters.
func WithParams(params protocol.Params) Option {
	return func(l *Ledger) { l.params = params }
}

func New(o ...Option) (*Ledger, error) {
	v, err := protocol.NewValidator()
	if err != nil {
		return nil, errors.InternalError.Wrap(err)
	}

	l := &Ledger{
		validate:    v,
		logger:      zerolog.Nop(),
		pageSize:    defaultPageSize,
		tokens:      map[string]*protocol.Token{},
		supply:      map[string]*big.Int{},
		balances:    map[string]map[string]*big.Int{},
		frozen:      map[string]map[string]*big.Int{},
		whitelisted: map[string]map[string]*big.Int{},
	}
	for _, o := range o {
		o(l)
	}
	return l, nil
}

// Apply executes an effect message sent by the given sender.
func (l *Ledger) Apply(sender string, msg protocol.Msg) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	switch msg := msg.(type) {
	case *protocol.IssueToken:
		return l.issue(sender, msg)
	case *protocol.MintToken:
		return l.mint(sender, msg)
	case *protocol.BurnToken:
		return l.burn(sender, msg)
	case *protocol.FreezeToken:
		return l.freeze(sender, msg.Account, msg.Coin, add)
	case *protocol.UnfreezeToken:
		return l.freeze(sender, msg.Account, msg.Coin, subtract)
	case *protocol.SetFrozenToken:
		return l.freeze(sender, msg.Account, msg.Coin, set)
	case *protocol.GloballyFreezeToken:
		return l.globallyFreeze(sender, msg.Denom, true)
	case *protocol.GloballyUnfreezeToken:
		return l.globallyFreeze(sender, msg.Denom, false)
	case *protocol.SetWhitelistedLimitToken:
		return l.setWhitelistedLimit(sender, msg.Account, msg.Coin)
	default:
		return errors.BadRequest.WithFormat("unsupported message type %v", msg.Type())
	}
}

func (l *Ledger) issue(sender string, msg *protocol.IssueToken) error {
	err := l.validate.Struct(msg.IssueSettings)
	if err != nil {
		return errors.BadRequest.WithFormat("invalid issue settings: %w", err)
	}
	if msg.InitialAmount.Sign() < 0 {
		return errors.BadRequest.With("initial amount is negative")
	}

	denom := protocol.BuildDenom(msg.Subunit, sender)
	if _, ok := l.tokens[denom]; ok {
		return errors.Conflict.WithFormat("subunit %s already registered for the address %s", msg.Subunit, sender)
	}

	l.tokens[denom] = &protocol.Token{
		Denom:              denom,
		Issuer:             sender,
		Symbol:             msg.Symbol,
		Subunit:            msg.Subunit,
		Precision:          msg.Precision,
		Description:        msg.Description,
		Features:           msg.Features,
		BurnRate:           msg.BurnRate,
		SendCommissionRate: msg.SendCommissionRate,
		URI:                msg.URI,
		URIHash:            msg.URIHash,
	}
	l.supply[denom] = new(big.Int).Set(msg.InitialAmount)
	l.credit(l.balances, sender, denom, msg.InitialAmount)

	l.logger.Debug().Str("denom", denom).Str("issuer", sender).Msg("issued token")
	return nil
}

func (l *Ledger) mint(sender string, msg *protocol.MintToken) error {
	token, err := l.token(msg.Coin.Denom)
	if err != nil {
		return err
	}
	if token.Issuer != sender {
		return errors.Unauthorized.WithFormat("%s is not the issuer of %s", sender, token.Denom)
	}
	if !token.HasFeature(protocol.FeatureMinting) {
		return errors.BadRequest.WithFormat("minting is disabled for %s", token.Denom)
	}
	if msg.Coin.Amount.Sign() < 0 {
		return errors.BadRequest.With("amount is negative")
	}

	recipient := msg.Recipient
	if recipient == "" {
		recipient = sender
	}

	l.supply[token.Denom].Add(l.supply[token.Denom], msg.Coin.Amount)
	l.credit(l.balances, recipient, token.Denom, msg.Coin.Amount)
	return nil
}

func (l *Ledger) burn(sender string, msg *protocol.BurnToken) error {
	token, err := l.token(msg.Coin.Denom)
	if err != nil {
		return err
	}
	if token.Issuer != sender && !token.HasFeature(protocol.FeatureBurning) {
		return errors.BadRequest.WithFormat("burning is disabled for %s", token.Denom)
	}
	if msg.Coin.Amount.Sign() < 0 {
		return errors.BadRequest.With("amount is negative")
	}

	balance := l.amount(l.balances, sender, token.Denom)
	if balance.Cmp(msg.Coin.Amount) < 0 {
		return errors.BadRequest.WithFormat("%s has insufficient balance of %s", sender, token.Denom)
	}

	balance.Sub(balance, msg.Coin.Amount)
	l.supply[token.Denom].Sub(l.supply[token.Denom], msg.Coin.Amount)
	return nil
}

type freezeOp int

const (
	add freezeOp = iota
	subtract
	set
)

func (l *Ledger) freeze(sender, account string, coin protocol.Coin, op freezeOp) error {
	token, err := l.token(coin.Denom)
	if err != nil {
		return err
	}
	if token.Issuer != sender {
		return errors.Unauthorized.WithFormat("%s is not the issuer of %s", sender, token.Denom)
	}
	if !token.HasFeature(protocol.FeatureFreezing) {
		return errors.BadRequest.WithFormat("freezing is disabled for %s", token.Denom)
	}
	if account == "" {
		return errors.BadRequest.With("account is missing")
	}
	if coin.Amount.Sign() < 0 {
		return errors.BadRequest.With("amount is negative")
	}

	frozen := l.amount(l.frozen, account, token.Denom)
	switch op {
	case add:
		frozen.Add(frozen, coin.Amount)
	case subtract:
		if frozen.Cmp(coin.Amount) < 0 {
			return errors.BadRequest.WithFormat("%s has only %v frozen of %s", account, frozen, token.Denom)
		}
		frozen.Sub(frozen, coin.Amount)
	case set:
		frozen.Set(coin.Amount)
	}
	return nil
}

func (l *Ledger) globallyFreeze(sender, denom string, frozen bool) error {
	token, err := l.token(denom)
	if err != nil {
		return err
	}
	if token.Issuer != sender {
		return errors.Unauthorized.WithFormat("%s is not the issuer of %s", sender, token.Denom)
	}
	if !token.HasFeature(protocol.FeatureFreezing) {
		return errors.BadRequest.WithFormat("freezing is disabled for %s", token.Denom)
	}

	token.GloballyFrozen = frozen
	return nil
}

func (l *Ledger) setWhitelistedLimit(sender, account string, coin protocol.Coin) error {
	token, err := l.token(coin.Denom)
	if err != nil {
		return err
	}
	if token.Issuer != sender {
		return errors.Unauthorized.WithFormat("%s is not the issuer of %s", sender, token.Denom)
	}
	if !token.HasFeature(protocol.FeatureWhitelisting) {
		return errors.BadRequest.WithFormat("whitelisting is disabled for %s", token.Denom)
	}
	if account == "" {
		return errors.BadRequest.With("account is missing")
	}
	if coin.Amount.Sign() < 0 {
		return errors.BadRequest.With("amount is negative")
	}

	l.amount(l.whitelisted, account, token.Denom).Set(coin.Amount)
	return nil
}

func (l *Ledger) token(denom string) (*protocol.Token, error) {
	token, ok := l.tokens[denom]
	if !ok {
		return nil, errors.NotFound.WithFormat("token %s not found", denom)
	}
	return token, nil
}

// amount returns the named balance entry, creating a zero entry if there is
// none.
func (l *Ledger) amount(m map[string]map[string]*big.Int, account, denom string) *big.Int {
	byDenom, ok := m[account]
	if !ok {
		byDenom = map[string]*big.Int{}
		m[account] = byDenom
	}
	v, ok := byDenom[denom]
	if !ok {
		v = new(big.Int)
		byDenom[denom] = v
	}
	return v
}

func (l *Ledger) credit(m map[string]map[string]*big.Int, account, denom string, amount *big.Int) {
	v := l.amount(m, account, denom)
	v.Add(v, amount)
}

// sortedDenoms returns the denoms of the account's entries, sorted. Zero
// entries are skipped.
func sortedDenoms(byDenom map[string]*big.Int) []string {
	denoms := make([]string, 0, len(byDenom))
	for denom, v := range byDenom {
		if v.Sign() != 0 {
			denoms = append(denoms, denom)
		}
	}
	sort.Strings(denoms)
	return denoms
}

// paginate returns the page of keys selected by the request, along with the
// page metadata. Keys must be sorted. The continuation key is the first key
// of the next page.
func (l *Ledger) paginate(keys []string, page *protocol.PageRequest) ([]string, *protocol.PageResponse) {
	limit := l.pageSize
	start := 0
	if page != nil {
		if page.Limit > 0 {
			limit = page.Limit
		}
		if len(page.Key) > 0 {
			start = sort.SearchStrings(keys, string(page.Key))
		}
	}

	end := start + int(limit)
	if end > len(keys) {
		end = len(keys)
	}

	res := &protocol.PageResponse{Total: uint64(len(keys))}
	if end < len(keys) {
		res.NextKey = []byte(keys[end])
	}
	return keys[start:end], res
}

func (l *Ledger) Params(_ context.Context) (*protocol.ParamsResponse, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return &protocol.ParamsResponse{Params: l.params}, nil
}

func (l *Ledger) Token(_ context.Context, denom string) (*protocol.TokenResponse, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	token, err := l.token(denom)
	if err != nil {
		return nil, err
	}
	return &protocol.TokenResponse{Token: *token}, nil
}

func (l *Ledger) Tokens(_ context.Context, issuer string, page *protocol.PageRequest) (*protocol.TokensResponse, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var denoms []string
	for denom, token := range l.tokens {
		if token.Issuer == issuer {
			denoms = append(denoms, denom)
		}
	}
	sort.Strings(denoms)

	keys, pageRes := l.paginate(denoms, page)
	tokens := make([]protocol.Token, 0, len(keys))
	for _, denom := range keys {
		tokens = append(tokens, *l.tokens[denom])
	}
	return &protocol.TokensResponse{Pagination: pageRes, Tokens: tokens}, nil
}

func (l *Ledger) Balance(_ context.Context, account, denom string) (*protocol.BalanceResponse, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return &protocol.BalanceResponse{Balance: l.coin(l.balances, account, denom)}, nil
}

func (l *Ledger) FrozenBalance(_ context.Context, account, denom string) (*protocol.FrozenBalanceResponse, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return &protocol.FrozenBalanceResponse{Balance: l.coin(l.frozen, account, denom)}, nil
}

func (l *Ledger) FrozenBalances(_ context.Context, account string, page *protocol.PageRequest) (*protocol.FrozenBalancesResponse, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	coins, pageRes := l.balancePage(l.frozen, account, page)
	return &protocol.FrozenBalancesResponse{Pagination: pageRes, Balances: coins}, nil
}

func (l *Ledger) WhitelistedBalance(_ context.Context, account, denom string) (*protocol.WhitelistedBalanceResponse, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return &protocol.WhitelistedBalanceResponse{Balance: l.coin(l.whitelisted, account, denom)}, nil
}

func (l *Ledger) WhitelistedBalances(_ context.Context, account string, page *protocol.PageRequest) (*protocol.WhitelistedBalancesResponse, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	coins, pageRes := l.balancePage(l.whitelisted, account, page)
	return &protocol.WhitelistedBalancesResponse{Pagination: pageRes, Balances: coins}, nil
}

func (l *Ledger) coin(m map[string]map[string]*big.Int, account, denom string) protocol.Coin {
	amount := new(big.Int)
	if byDenom, ok := m[account]; ok {
		if v, ok := byDenom[denom]; ok {
			amount.Set(v)
		}
	}
	return protocol.Coin{Denom: denom, Amount: amount}
}

func (l *Ledger) balancePage(m map[string]map[string]*big.Int, account string, page *protocol.PageRequest) ([]protocol.Coin, *protocol.PageResponse) {
	keys, pageRes := l.paginate(sortedDenoms(m[account]), page)
	coins := make([]protocol.Coin, 0, len(keys))
	for _, denom := range keys {
		coins = append(coins, protocol.NewCoin(m[account][denom], denom))
	}
	return coins, pageRes
}
