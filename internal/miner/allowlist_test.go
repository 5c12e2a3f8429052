package miner

import (
	"testing"
)

func TestAllowlist_Accepts(t *testing.T) {
	allow := Default()

	tests := []struct {
		name   string
		script []byte
		want   bool
	}{
		{"empty script", nil, false},
		{"no tag", []byte("some random coinbase text"), false},
		{"antpool bare", []byte("AntPool"), true},
		{"antpool surrounded", append(append([]byte{0x03, 0x8f, 0x11}, []byte("xxAntPoolyy")...), 0xff), true},
		{"slush", []byte("/slush/ mined this"), true},
		{"binance", []byte("...binance..."), true},
		{"poolin", []byte("poolin.com"), true},
		{"case mismatch", []byte("antpool"), false},
		{"partial tag", []byte("AntPoo"), false},
		{"tag split by byte", []byte("Ant\x00Pool"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := allow.Accepts(tt.script); got != tt.want {
				t.Errorf("Accepts(%q) = %v, want %v", tt.script, got, tt.want)
			}
		})
	}
}

func TestAllowlist_Match(t *testing.T) {
	allow := NewAllowlist([][]byte{[]byte("aaa"), []byte("bbb")})

	tag, ok := allow.Match([]byte("xx bbb xx"))
	if !ok || string(tag) != "bbb" {
		t.Errorf("Match() = %q, %v", tag, ok)
	}

	// First tag in table order wins when both match.
	tag, ok = allow.Match([]byte("bbb aaa"))
	if !ok || string(tag) != "aaa" {
		t.Errorf("Match() = %q, want table-order first match aaa", tag)
	}

	if _, ok := allow.Match([]byte("ccc")); ok {
		t.Error("Match() should fail with no tag present")
	}
}

func TestAllowlist_Empty(t *testing.T) {
	allow := NewAllowlist(nil)
	if allow.Accepts([]byte("AntPool")) {
		t.Error("empty allowlist must reject everything")
	}
}

func TestAllowlist_CopiesTags(t *testing.T) {
	tag := []byte("mutable")
	allow := NewAllowlist([][]byte{tag})
	tag[0] = 'X'

	if !allow.Accepts([]byte("a mutable tag")) {
		t.Error("allowlist should have copied the original tag bytes")
	}
}

func TestDefault_TableSize(t *testing.T) {
	if got := Default().Len(); got != 9 {
		t.Errorf("default allowlist has %d tags, want 9", got)
	}
}
