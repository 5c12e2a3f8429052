// Package miner identifies the mining pool behind a block from its
// coinbase script.
package miner

import (
	"bytes"

	"github.com/embermint/embermint/config"
)

// Allowlist holds the byte-tag signatures of recognized mining pools.
type Allowlist struct {
	tags [][]byte
}

// NewAllowlist creates an allowlist from the given tag table.
// Tags are matched as exact, case-sensitive byte subsequences.
func NewAllowlist(tags [][]byte) *Allowlist {
	copied := make([][]byte, 0, len(tags))
	for _, t := range tags {
		tag := make([]byte, len(t))
		copy(tag, t)
		copied = append(copied, tag)
	}
	return &Allowlist{tags: copied}
}

// Default returns an allowlist built from the protocol's tag table.
func Default() *Allowlist {
	return NewAllowlist(config.DefaultMinerTags())
}

// Accepts reports whether the coinbase script contains at least one
// recognized tag. An empty allowlist accepts nothing.
func (a *Allowlist) Accepts(script []byte) bool {
	_, ok := a.Match(script)
	return ok
}

// Match returns the first tag found in the script, short-circuiting on
// the first hit. Tag order follows the configured table.
func (a *Allowlist) Match(script []byte) ([]byte, bool) {
	for _, tag := range a.tags {
		if bytes.Contains(script, tag) {
			return tag, true
		}
	}
	return nil, false
}

// Len returns the number of configured tags.
func (a *Allowlist) Len() int {
	return len(a.tags)
}
