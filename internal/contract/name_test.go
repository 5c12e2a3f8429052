package contract

import (
	"errors"
	"testing"

	"github.com/embermint/embermint/pkg/types"
)

func mustEncodeWord(t *testing.T, s string) types.Amount {
	t.Helper()
	w, err := EncodeWord(s)
	if err != nil {
		t.Fatalf("EncodeWord(%q) error: %v", s, err)
	}
	return w
}

func TestTrimWord(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"short", "Foo"},
		{"symbol", "FOO"},
		{"single char", "X"},
		{"full 16 bytes", "ABCDEFGHIJKLMNOP"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TrimWord(mustEncodeWord(t, tt.in))
			if err != nil {
				t.Fatalf("TrimWord() error: %v", err)
			}
			if got != tt.in {
				t.Errorf("TrimWord() = %q, want %q", got, tt.in)
			}
		})
	}
}

func TestTrimWord_NoZeroBytes(t *testing.T) {
	// A word whose 16 bytes contain no zero decodes to all 16 bytes.
	le := []byte("0123456789abcdef")
	w, err := types.AmountFromLE16(le)
	if err != nil {
		t.Fatalf("AmountFromLE16() error: %v", err)
	}
	got, err := TrimWord(w)
	if err != nil {
		t.Fatalf("TrimWord() error: %v", err)
	}
	if got != "0123456789abcdef" {
		t.Errorf("TrimWord() = %q", got)
	}
}

func TestTrimWord_InvalidUTF8(t *testing.T) {
	le := make([]byte, 16)
	le[0] = 0xff
	le[1] = 0xfe
	w, err := types.AmountFromLE16(le)
	if err != nil {
		t.Fatalf("AmountFromLE16() error: %v", err)
	}
	if _, err := TrimWord(w); !errors.Is(err, ErrCorruptText) {
		t.Errorf("TrimWord() error = %v, want ErrCorruptText", err)
	}
}

func TestNameFromParts(t *testing.T) {
	tests := []struct {
		name  string
		part1 string
		part2 string
		want  string
	}{
		{"second word empty", "Foo", "", "Foo"},
		{"spills into second word", "ABCDEFGHIJKLMNOP", "QRST", "ABCDEFGHIJKLMNOPQRST"},
		{"both empty", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NameFromParts(mustEncodeWord(t, tt.part1), mustEncodeWord(t, tt.part2))
			if err != nil {
				t.Fatalf("NameFromParts() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("NameFromParts() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNameFromParts_ZeroSecondEqualsTrim(t *testing.T) {
	// NameFromParts(v, 0) == TrimWord(v) for any word.
	for _, s := range []string{"", "a", "Foo", "ABCDEFGHIJKLMNOP"} {
		w := mustEncodeWord(t, s)
		single, err := TrimWord(w)
		if err != nil {
			t.Fatalf("TrimWord() error: %v", err)
		}
		joined, err := NameFromParts(w, types.Amount{})
		if err != nil {
			t.Fatalf("NameFromParts() error: %v", err)
		}
		if single != joined {
			t.Errorf("NameFromParts(%q, 0) = %q, TrimWord = %q", s, joined, single)
		}
	}
}

func TestEncodeNameWords(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"short", "Foo"},
		{"exactly 16", "ABCDEFGHIJKLMNOP"},
		{"long", "ABCDEFGHIJKLMNOPQRSTUVWX"},
		{"max 32", "ABCDEFGHIJKLMNOPQRSTUVWXYZ012345"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w1, w2, err := EncodeNameWords(tt.in)
			if err != nil {
				t.Fatalf("EncodeNameWords() error: %v", err)
			}
			got, err := NameFromParts(w1, w2)
			if err != nil {
				t.Fatalf("NameFromParts() error: %v", err)
			}
			if got != tt.in {
				t.Errorf("roundtrip = %q, want %q", got, tt.in)
			}
		})
	}
}

func TestEncodeNameWords_TooLong(t *testing.T) {
	if _, _, err := EncodeNameWords(string(make([]byte, 33))); err == nil {
		t.Error("EncodeNameWords() should reject names over 32 bytes")
	}
}

func TestEncodeWord_ZeroByte(t *testing.T) {
	if _, err := EncodeWord("a\x00b"); err == nil {
		t.Error("EncodeWord() should reject embedded zero bytes")
	}
}
