// Package contract implements the capped free-mint token: a one-time
// Initialize that fixes identity, per-mint reward, and supply cap, and a
// repeatable MintTokens gated by coinbase-miner and tribute-output checks.
package contract

import (
	"github.com/embermint/embermint/internal/miner"
	"github.com/embermint/embermint/pkg/types"
)

// TokenAccounting is the capability set every token variant exposes.
// A future variant composes by implementing this interface; State is the
// free-mint implementation.
type TokenAccounting interface {
	Name() (string, error)
	Symbol() (string, error)
	TotalSupply() (types.Amount, error)
	Cap() (types.Amount, error)
	Minted() (types.Amount, error)
	ValuePerMint() (types.Amount, error)
	Data() ([]byte, error)
	Mint(value types.Amount) (types.Transfer, error)
}

var _ TokenAccounting = (*State)(nil)

// FreeMint is the mint-eligibility engine. The struct itself is immutable
// configuration; all durable state lives in the per-call storage view.
type FreeMint struct {
	allow   *miner.Allowlist
	tribute TributeOutput
}

// Option configures a FreeMint contract.
type Option func(*FreeMint)

// WithAllowlist replaces the miner allowlist.
func WithAllowlist(a *miner.Allowlist) Option {
	return func(c *FreeMint) { c.allow = a }
}

// WithTribute replaces the tribute requirement.
func WithTribute(t TributeOutput) Option {
	return func(c *FreeMint) { c.tribute = t }
}

// New creates a free-mint contract with the protocol's default miner
// allowlist and tribute requirement.
func New(opts ...Option) *FreeMint {
	c := &FreeMint{
		allow:   miner.Default(),
		tribute: DefaultTribute(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
