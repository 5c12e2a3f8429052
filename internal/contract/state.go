package contract

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/embermint/embermint/internal/storage"
	"github.com/embermint/embermint/pkg/types"
)

// Storage keys for the contract's logical fields. Keeping the key naming
// in one place prevents collision bugs; tx-hashes entries live under
// their own prefix in replay.go.
var (
	keyName         = []byte("name")
	keySymbol       = []byte("symbol")
	keyTotalSupply  = []byte("totalsupply")
	keyMinted       = []byte("minted")
	keyValuePerMint = []byte("value-per-mint")
	keyCap          = []byte("cap")
	keyData         = []byte("data")
	keyInitialized  = []byte("initialized")
)

// State is the typed facade over the contract's storage namespace.
// It owns the supply counters, the token identity, and the payload blob.
type State struct {
	db   storage.DB
	self types.TokenID
}

// NewState creates a state facade for the contract identified by self.
func NewState(db storage.DB, self types.TokenID) *State {
	return &State{db: db, self: self}
}

// amount reads a fixed-width 128-bit field, defaulting to zero when the
// field has never been written.
func (s *State) amount(key []byte) (types.Amount, error) {
	ok, err := s.db.Has(key)
	if err != nil {
		return types.Amount{}, fmt.Errorf("state read %q: %w", key, err)
	}
	if !ok {
		return types.Amount{}, nil
	}
	raw, err := s.db.Get(key)
	if err != nil {
		return types.Amount{}, fmt.Errorf("state read %q: %w", key, err)
	}
	return types.AmountFromLE16(raw)
}

func (s *State) putAmount(key []byte, v types.Amount) error {
	return s.db.Put(key, v.LE16())
}

// text reads a string field, defaulting to empty and rejecting stored
// bytes that are not valid UTF-8.
func (s *State) text(key []byte) (string, error) {
	ok, err := s.db.Has(key)
	if err != nil {
		return "", fmt.Errorf("state read %q: %w", key, err)
	}
	if !ok {
		return "", nil
	}
	raw, err := s.db.Get(key)
	if err != nil {
		return "", fmt.Errorf("state read %q: %w", key, err)
	}
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("%w: field %q", ErrCorruptText, key)
	}
	return string(raw), nil
}

// Name returns the token name.
func (s *State) Name() (string, error) {
	return s.text(keyName)
}

// SetName stores the token name.
func (s *State) SetName(name string) error {
	return s.db.Put(keyName, []byte(name))
}

// Symbol returns the token symbol.
func (s *State) Symbol() (string, error) {
	return s.text(keySymbol)
}

// SetSymbol stores the token symbol.
func (s *State) SetSymbol(symbol string) error {
	return s.db.Put(keySymbol, []byte(symbol))
}

// TotalSupply returns the total units issued so far.
func (s *State) TotalSupply() (types.Amount, error) {
	return s.amount(keyTotalSupply)
}

// IncreaseTotalSupply adds v to the total supply with an overflow check.
func (s *State) IncreaseTotalSupply(v types.Amount) error {
	total, err := s.TotalSupply()
	if err != nil {
		return err
	}
	sum, err := total.Add(v)
	if err != nil {
		return ErrSupplyOverflow
	}
	return s.putAmount(keyTotalSupply, sum)
}

// Mint issues value units: the total supply grows and a transfer of the
// contract's own token is returned. No other state is touched.
func (s *State) Mint(value types.Amount) (types.Transfer, error) {
	if err := s.IncreaseTotalSupply(value); err != nil {
		return types.Transfer{}, err
	}
	return types.Transfer{ID: s.self, Value: value}, nil
}

// Minted returns the number of successful mint calls.
func (s *State) Minted() (types.Amount, error) {
	return s.amount(keyMinted)
}

// IncrementMinted bumps the mint counter by one with an overflow check.
func (s *State) IncrementMinted() error {
	minted, err := s.Minted()
	if err != nil {
		return err
	}
	next, err := minted.Add(types.NewAmount(1))
	if err != nil {
		return ErrMintCountOverflow
	}
	return s.putAmount(keyMinted, next)
}

// ValuePerMint returns the units issued per successful mint call.
func (s *State) ValuePerMint() (types.Amount, error) {
	return s.amount(keyValuePerMint)
}

// SetValuePerMint stores the per-mint issuance amount.
func (s *State) SetValuePerMint(v types.Amount) error {
	return s.putAmount(keyValuePerMint, v)
}

// Cap returns the supply cap. An unlimited cap reads as MaxAmount.
func (s *State) Cap() (types.Amount, error) {
	return s.amount(keyCap)
}

// SetCap stores the supply cap. A configured cap of zero is caller-facing
// shorthand for unlimited and is stored as the maximum representable
// value, so the stored cap is always a comparable upper bound.
func (s *State) SetCap(v types.Amount) error {
	if v.IsZero() {
		v = types.MaxAmount()
	}
	return s.putAmount(keyCap, v)
}

// Data returns the payload blob, decompressed. A missing or corrupt blob
// reads as empty.
func (s *State) Data() ([]byte, error) {
	ok, err := s.db.Has(keyData)
	if err != nil {
		return nil, fmt.Errorf("state read %q: %w", keyData, err)
	}
	if !ok {
		return []byte{}, nil
	}
	raw, err := s.db.Get(keyData)
	if err != nil {
		return nil, fmt.Errorf("state read %q: %w", keyData, err)
	}
	return gunzip(raw), nil
}

// SetData stores the compressed payload blob as-is.
func (s *State) SetData(blob []byte) error {
	if blob == nil {
		blob = []byte{}
	}
	return s.db.Put(keyData, blob)
}

// Initialized reports whether Initialize has already run.
func (s *State) Initialized() (bool, error) {
	return s.db.Has(keyInitialized)
}

// MarkInitialized records that Initialize has run. One-way.
func (s *State) MarkInitialized() error {
	return s.db.Put(keyInitialized, []byte{0x01})
}

// gunzip decompresses a gzip blob, returning empty on any error.
// The blob is host-supplied opaque data; a bad blob is not worth failing
// a read-only query over.
func gunzip(raw []byte) []byte {
	if len(raw) == 0 {
		return []byte{}
	}
	zr, err := gzip.NewReader(bytes.NewReader(raw))
	if err != nil {
		return []byte{}
	}
	defer zr.Close()
	out, err := io.ReadAll(zr)
	if err != nil {
		return []byte{}
	}
	return out
}
