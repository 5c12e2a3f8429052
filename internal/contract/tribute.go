package contract

import (
	"bytes"
	"fmt"

	"github.com/embermint/embermint/config"
	"github.com/embermint/embermint/pkg/wire"
)

// tributeIndex is the output slot the tribute payment must occupy:
// the third output of the minting transaction.
const tributeIndex = 2

// TributeOutput is the fixed payment a minting transaction must carry:
// an exact value locked by an exact script.
type TributeOutput struct {
	Value  uint64
	Script []byte
}

// DefaultTribute returns the protocol's tribute requirement.
func DefaultTribute() TributeOutput {
	return TributeOutput{
		Value:  config.TributeValue,
		Script: config.TributeScript(),
	}
}

// Check validates the minting transaction's tribute output. The third
// output must exist and match the required value and locking script
// byte-for-byte; there is no partial credit.
func (t TributeOutput) Check(tx *wire.Transaction) error {
	if len(tx.Outputs) == 0 {
		return ErrNoOutputs
	}
	if len(tx.Outputs) <= tributeIndex {
		return fmt.Errorf("%w: have %d outputs, need at least %d", ErrNoTribute, len(tx.Outputs), tributeIndex+1)
	}

	out := tx.Outputs[tributeIndex]
	if out.Value != t.Value {
		return fmt.Errorf("%w: output carries %d, want %d", ErrTributeValue, out.Value, t.Value)
	}
	if !bytes.Equal(out.Script, t.Script) {
		return fmt.Errorf("%w: output locked by %x", ErrTributeScript, out.Script)
	}
	return nil
}
