package types

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/holiman/uint256"
)

// AmountSize is the storage width of an Amount in bytes.
const AmountSize = 16

// ErrAmountOverflow is returned when an arithmetic result exceeds 128 bits.
var ErrAmountOverflow = errors.New("amount overflow")

// Amount is an unsigned 128-bit token quantity.
//
// It rides on a 256-bit integer internally; every constructor and operation
// maintains the invariant that the value fits in 128 bits, so arithmetic can
// detect 128-bit overflow by inspecting the bit length of the wide result.
type Amount struct {
	v uint256.Int
}

// NewAmount returns the Amount for a uint64 value.
func NewAmount(u uint64) Amount {
	var a Amount
	a.v.SetUint64(u)
	return a
}

// MaxAmount returns 2^128 - 1, the largest representable Amount.
// It doubles as the stored sentinel for an unlimited supply cap.
func MaxAmount() Amount {
	var a Amount
	a.v[0] = ^uint64(0)
	a.v[1] = ^uint64(0)
	return a
}

// AmountFromLE16 decodes a 16-byte little-endian value.
func AmountFromLE16(b []byte) (Amount, error) {
	if len(b) != AmountSize {
		return Amount{}, fmt.Errorf("amount must be %d bytes, got %d", AmountSize, len(b))
	}
	var a Amount
	a.v[0] = binary.LittleEndian.Uint64(b[0:8])
	a.v[1] = binary.LittleEndian.Uint64(b[8:16])
	return a, nil
}

// LE16 encodes the amount as 16 little-endian bytes, the fixed-width
// representation used for storage and query responses.
func (a Amount) LE16() []byte {
	b := make([]byte, AmountSize)
	binary.LittleEndian.PutUint64(b[0:8], a.v[0])
	binary.LittleEndian.PutUint64(b[8:16], a.v[1])
	return b
}

// Add returns a+b, or ErrAmountOverflow if the sum exceeds 128 bits.
func (a Amount) Add(b Amount) (Amount, error) {
	var sum Amount
	sum.v.Add(&a.v, &b.v)
	if sum.v.BitLen() > 128 {
		return Amount{}, ErrAmountOverflow
	}
	return sum, nil
}

// Cmp compares a and b, returning -1, 0, or 1.
func (a Amount) Cmp(b Amount) int {
	return a.v.Cmp(&b.v)
}

// IsZero returns true if the amount is zero.
func (a Amount) IsZero() bool {
	return a.v.IsZero()
}

// Uint64 returns the low 64 bits of the amount.
func (a Amount) Uint64() uint64 {
	return a.v.Uint64()
}

// String returns the decimal representation.
func (a Amount) String() string {
	return a.v.Dec()
}

// MarshalJSON encodes the amount as a decimal string.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.v.Dec() + `"`), nil
}

// UnmarshalJSON decodes a decimal string into an amount.
func (a *Amount) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return errors.New("amount must be a decimal string")
	}
	v, err := uint256.FromDecimal(string(data[1 : len(data)-1]))
	if err != nil {
		return fmt.Errorf("invalid amount: %w", err)
	}
	if v.BitLen() > 128 {
		return ErrAmountOverflow
	}
	a.v = *v
	return nil
}
