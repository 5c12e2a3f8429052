package contract

import (
	"fmt"

	"github.com/embermint/embermint/internal/storage"
	"github.com/embermint/embermint/pkg/types"
)

// prefixUsedTx namespaces consumed transaction IDs: tx-hashes/<txid> -> 1.
var prefixUsedTx = []byte("tx-hashes/")

// ReplayGuard is the append-only set of transaction IDs already consumed
// by a mint call. An ID, once present, is permanent.
type ReplayGuard struct {
	db storage.DB
}

// NewReplayGuard creates a replay guard over the contract's storage.
func NewReplayGuard(db storage.DB) *ReplayGuard {
	return &ReplayGuard{db: db}
}

func usedTxKey(txid types.Hash) []byte {
	key := make([]byte, len(prefixUsedTx)+types.HashSize)
	copy(key, prefixUsedTx)
	copy(key[len(prefixUsedTx):], txid[:])
	return key
}

// HasSeen reports whether a prior successful mint consumed this exact
// transaction ID.
func (g *ReplayGuard) HasSeen(txid types.Hash) (bool, error) {
	key := usedTxKey(txid)
	ok, err := g.db.Has(key)
	if err != nil {
		return false, fmt.Errorf("replay guard read: %w", err)
	}
	if !ok {
		return false, nil
	}
	raw, err := g.db.Get(key)
	if err != nil {
		return false, fmt.Errorf("replay guard read: %w", err)
	}
	return len(raw) == 1 && raw[0] == 0x01, nil
}

// MarkSeen records the transaction ID. Idempotent. Callers must only mark
// after every other eligibility check has passed, so a failed call never
// consumes the ID.
func (g *ReplayGuard) MarkSeen(txid types.Hash) error {
	return g.db.Put(usedTxKey(txid), []byte{0x01})
}
