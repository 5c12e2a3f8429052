package wire

import (
	"bytes"
	"errors"
	"testing"
)

// buildCoinbaseBlock assembles the minimal raw-block prefix the coinbase
// parser walks: header, tx count, then the coinbase tx up to its script.
func buildCoinbaseBlock(t *testing.T, withMarker bool, script []byte) []byte {
	t.Helper()

	var buf []byte
	buf = append(buf, make([]byte, 80)...) // header
	buf = append(buf, 0x01)                // tx count
	buf = append(buf, 0x02, 0x00, 0x00, 0x00) // tx version
	if withMarker {
		buf = append(buf, 0x00, 0x01)
	}
	buf = append(buf, 0x01)                // input count
	buf = append(buf, make([]byte, 36)...) // null outpoint
	buf = AppendCompactSize(buf, uint64(len(script)))
	buf = append(buf, script...)
	return buf
}

func TestCoinbaseScript(t *testing.T) {
	script := append([]byte{0x03, 0x8f, 0x11, 0x0d}, []byte("AntPool extra tag data")...)

	tests := []struct {
		name       string
		withMarker bool
	}{
		{"legacy serialization", false},
		{"segwit marker", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block := buildCoinbaseBlock(t, tt.withMarker, script)
			got, err := CoinbaseScript(block)
			if err != nil {
				t.Fatalf("CoinbaseScript() error: %v", err)
			}
			if !bytes.Equal(got, script) {
				t.Errorf("CoinbaseScript() = %x, want %x", got, script)
			}
		})
	}
}

func TestCoinbaseScript_TrailingBlockData(t *testing.T) {
	// Data after the coinbase script (more of the tx, more txs) is ignored.
	script := []byte("/slush/")
	block := buildCoinbaseBlock(t, false, script)
	block = append(block, make([]byte, 500)...)

	got, err := CoinbaseScript(block)
	if err != nil {
		t.Fatalf("CoinbaseScript() error: %v", err)
	}
	if !bytes.Equal(got, script) {
		t.Errorf("CoinbaseScript() = %x, want %x", got, script)
	}
}

func TestCoinbaseScript_TooShort(t *testing.T) {
	for _, n := range []int{0, 1, 79, 80} {
		if _, err := CoinbaseScript(make([]byte, n)); !errors.Is(err, ErrBlockTooShort) {
			t.Errorf("CoinbaseScript(%d bytes) error = %v, want ErrBlockTooShort", n, err)
		}
	}
}

func TestCoinbaseScript_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		block func() []byte
		want  error
	}{
		{
			name: "zero transactions",
			block: func() []byte {
				b := make([]byte, 80)
				return append(b, 0x00)
			},
			want: ErrBlockNoTxs,
		},
		{
			name: "zero inputs",
			block: func() []byte {
				b := make([]byte, 80)
				b = append(b, 0x01)                   // tx count
				b = append(b, 0x01, 0x00, 0x00, 0x00) // version
				b = append(b, 0x00, 0x01)             // witness marker
				b = append(b, 0x00)                   // input count
				return b
			},
			want: ErrCoinbaseNoInputs,
		},
		{
			name: "script longer than remaining data",
			block: func() []byte {
				b := buildCoinbaseBlock(t, false, nil)
				// Claim a 200-byte script with nothing behind it.
				b[len(b)-1] = 200
				return b
			},
			want: ErrCoinbaseTruncated,
		},
		{
			name: "truncated outpoint",
			block: func() []byte {
				b := make([]byte, 80)
				b = append(b, 0x01)
				b = append(b, 0x01, 0x00, 0x00, 0x00)
				b = append(b, 0x01)                  // input count (no marker)
				b = append(b, make([]byte, 10)...)   // partial outpoint
				return b
			},
			want: ErrCoinbaseTruncated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CoinbaseScript(tt.block())
			if !errors.Is(err, tt.want) {
				t.Errorf("CoinbaseScript() error = %v, want %v", err, tt.want)
			}
		})
	}
}
