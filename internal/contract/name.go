package contract

import (
	"fmt"
	"unicode/utf8"

	"github.com/embermint/embermint/pkg/types"
)

// TrimWord decodes a 128-bit word into text: the word's little-endian
// bytes with every zero byte dropped, interpreted as UTF-8.
//
// A non-trailing zero byte mid-name cannot be represented and is simply
// dropped. That is a known limit of the encoding, not something callers
// should work around.
func TrimWord(v types.Amount) (string, error) {
	le := v.LE16()
	out := make([]byte, 0, len(le))
	for _, b := range le {
		if b != 0 {
			out = append(out, b)
		}
	}
	if !utf8.Valid(out) {
		return "", fmt.Errorf("%w: %x", ErrCorruptText, out)
	}
	return string(out), nil
}

// NameFromParts decodes a display name spread across two 128-bit words,
// preserving order. Names longer than 16 bytes spill into the second word.
func NameFromParts(part1, part2 types.Amount) (string, error) {
	a, err := TrimWord(part1)
	if err != nil {
		return "", err
	}
	b, err := TrimWord(part2)
	if err != nil {
		return "", err
	}
	return a + b, nil
}

// EncodeWord packs up to 16 bytes of text into a 128-bit word,
// little-endian, the inverse of TrimWord. Zero bytes cannot be encoded.
func EncodeWord(s string) (types.Amount, error) {
	raw := []byte(s)
	if len(raw) > types.AmountSize {
		return types.Amount{}, fmt.Errorf("text %q exceeds %d bytes", s, types.AmountSize)
	}
	for _, b := range raw {
		if b == 0 {
			return types.Amount{}, fmt.Errorf("text %q contains a zero byte", s)
		}
	}
	le := make([]byte, types.AmountSize)
	copy(le, raw)
	return types.AmountFromLE16(le)
}

// EncodeNameWords splits a display name across two 128-bit words.
func EncodeNameWords(name string) (types.Amount, types.Amount, error) {
	raw := []byte(name)
	if len(raw) > 2*types.AmountSize {
		return types.Amount{}, types.Amount{}, fmt.Errorf("name %q exceeds %d bytes", name, 2*types.AmountSize)
	}
	first := raw
	var second []byte
	if len(raw) > types.AmountSize {
		first = raw[:types.AmountSize]
		second = raw[types.AmountSize:]
	}
	w1, err := EncodeWord(string(first))
	if err != nil {
		return types.Amount{}, types.Amount{}, err
	}
	w2, err := EncodeWord(string(second))
	if err != nil {
		return types.Amount{}, types.Amount{}, err
	}
	return w1, w2, nil
}
