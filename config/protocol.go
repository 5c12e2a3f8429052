package config

// =============================================================================
// Protocol rules (consensus-critical, must match across all nodes)
// =============================================================================

// TributeValue is the exact value, in smallest units, the minting
// transaction's tribute output must carry.
const TributeValue uint64 = 1069

// tributeScript is the required locking script of the tribute output:
// a version-0 witness program paying a fixed 20-byte hash.
var tributeScript = []byte{
	0x00, 0x14, 0x5f, 0x68, 0x8f, 0xe6, 0xc5, 0x7e, 0x67, 0xa0,
	0xb7, 0xcf, 0xd8, 0x0a, 0x94, 0x71, 0xd9, 0xfb, 0xcc, 0x3f,
	0xa2, 0xfb,
}

// TributeScript returns the required tribute locking script.
func TributeScript() []byte {
	s := make([]byte, len(tributeScript))
	copy(s, tributeScript)
	return s
}

// defaultMinerTags lists the coinbase-script signatures of recognized
// mining pools. A mint attempt is only accepted when the block's coinbase
// script contains at least one of these byte sequences.
//
// Pool identities change over time; the table is data, not control flow,
// so updating it never touches the eligibility logic.
var defaultMinerTags = [][]byte{
	[]byte("AntPool"),
	[]byte("WhitePool"),
	[]byte("binance"),
	[]byte("MiningSqua"),
	[]byte("0x783c3f00"),
	[]byte("btccom"),
	[]byte("/slush/"),
	[]byte("ultimus"),
	[]byte("poolin.com"),
}

// DefaultMinerTags returns a copy of the recognized miner-tag table.
func DefaultMinerTags() [][]byte {
	tags := make([][]byte, len(defaultMinerTags))
	for i, t := range defaultMinerTags {
		tag := make([]byte, len(t))
		copy(tag, t)
		tags[i] = tag
	}
	return tags
}
