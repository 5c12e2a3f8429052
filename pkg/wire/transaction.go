package wire

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/embermint/embermint/pkg/types"
)

// Transaction decoding errors.
var (
	ErrTxTruncated    = errors.New("transaction data truncated")
	ErrTxTrailingData = errors.New("transaction has trailing data")
)

// maxItemSize bounds any single length-prefixed element (script, witness
// item) so a corrupt varint cannot trigger a huge allocation.
const maxItemSize = 4_000_000

// OutPoint references an output of a previous transaction.
type OutPoint struct {
	TxID  types.Hash
	Index uint32
}

// TxIn is a transaction input.
type TxIn struct {
	PrevOut  OutPoint
	Script   []byte // unlocking script (scriptSig)
	Sequence uint32
	Witness  [][]byte
}

// TxOut is a transaction output.
type TxOut struct {
	Value  uint64 // smallest units
	Script []byte // locking script (scriptPubKey)
}

// Transaction is a decoded Bitcoin transaction.
type Transaction struct {
	Version  int32
	Inputs   []TxIn
	Outputs  []TxOut
	LockTime uint32
}

// DecodeTransaction parses raw consensus-serialized transaction bytes,
// including the segwit marker/flag extension when present. The entire
// input must be consumed.
func DecodeTransaction(raw []byte) (*Transaction, error) {
	r := bytes.NewReader(raw)
	tx := &Transaction{}

	var ver [4]byte
	if _, err := io.ReadFull(r, ver[:]); err != nil {
		return nil, ErrTxTruncated
	}
	tx.Version = int32(binary.LittleEndian.Uint32(ver[:]))

	// Segwit extension begins with marker 0x00, flag 0x01 where the input
	// count would otherwise be. A count of zero inputs is not serializable,
	// so the marker is unambiguous.
	hasWitness := false
	var marker [2]byte
	if _, err := io.ReadFull(r, marker[:]); err != nil {
		return nil, ErrTxTruncated
	}
	if marker[0] == 0x00 && marker[1] == 0x01 {
		hasWitness = true
	} else {
		if _, err := r.Seek(-2, io.SeekCurrent); err != nil {
			return nil, err
		}
	}

	inCount, err := ReadCompactSize(r)
	if err != nil {
		return nil, err
	}
	if inCount > uint64(r.Len()) {
		return nil, fmt.Errorf("input count %d exceeds remaining data", inCount)
	}
	tx.Inputs = make([]TxIn, inCount)
	for i := range tx.Inputs {
		if err := decodeInput(r, &tx.Inputs[i]); err != nil {
			return nil, err
		}
	}

	outCount, err := ReadCompactSize(r)
	if err != nil {
		return nil, err
	}
	if outCount > uint64(r.Len()) {
		return nil, fmt.Errorf("output count %d exceeds remaining data", outCount)
	}
	tx.Outputs = make([]TxOut, outCount)
	for i := range tx.Outputs {
		if err := decodeOutput(r, &tx.Outputs[i]); err != nil {
			return nil, err
		}
	}

	if hasWitness {
		for i := range tx.Inputs {
			items, err := readByteVector(r)
			if err != nil {
				return nil, err
			}
			tx.Inputs[i].Witness = items
		}
	}

	var lock [4]byte
	if _, err := io.ReadFull(r, lock[:]); err != nil {
		return nil, ErrTxTruncated
	}
	tx.LockTime = binary.LittleEndian.Uint32(lock[:])

	if r.Len() != 0 {
		return nil, ErrTxTrailingData
	}
	return tx, nil
}

func decodeInput(r *bytes.Reader, in *TxIn) error {
	var outpoint [36]byte
	if _, err := io.ReadFull(r, outpoint[:]); err != nil {
		return ErrTxTruncated
	}
	copy(in.PrevOut.TxID[:], outpoint[:32])
	in.PrevOut.Index = binary.LittleEndian.Uint32(outpoint[32:])

	script, err := readItem(r)
	if err != nil {
		return err
	}
	in.Script = script

	var seq [4]byte
	if _, err := io.ReadFull(r, seq[:]); err != nil {
		return ErrTxTruncated
	}
	in.Sequence = binary.LittleEndian.Uint32(seq[:])
	return nil
}

func decodeOutput(r *bytes.Reader, out *TxOut) error {
	var value [8]byte
	if _, err := io.ReadFull(r, value[:]); err != nil {
		return ErrTxTruncated
	}
	out.Value = binary.LittleEndian.Uint64(value[:])

	script, err := readItem(r)
	if err != nil {
		return err
	}
	out.Script = script
	return nil
}

// readItem reads a compact-size length followed by that many bytes.
func readItem(r *bytes.Reader) ([]byte, error) {
	n, err := ReadCompactSize(r)
	if err != nil {
		return nil, err
	}
	if n > maxItemSize || n > uint64(r.Len()) {
		return nil, ErrTxTruncated
	}
	item := make([]byte, n)
	if _, err := io.ReadFull(r, item); err != nil {
		return nil, ErrTxTruncated
	}
	return item, nil
}

// readByteVector reads a compact-size count of length-prefixed items
// (one input's witness stack).
func readByteVector(r *bytes.Reader) ([][]byte, error) {
	count, err := ReadCompactSize(r)
	if err != nil {
		return nil, err
	}
	if count > uint64(r.Len()) {
		return nil, ErrTxTruncated
	}
	items := make([][]byte, count)
	for i := range items {
		item, err := readItem(r)
		if err != nil {
			return nil, err
		}
		items[i] = item
	}
	return items, nil
}

// TxID computes the transaction identifier: double SHA-256 of the
// serialization without witness data.
func (tx *Transaction) TxID() types.Hash {
	first := sha256.Sum256(tx.serialize(false))
	return sha256.Sum256(first[:])
}

// Bytes returns the consensus serialization, including witness data when
// any input carries a witness stack.
func (tx *Transaction) Bytes() []byte {
	return tx.serialize(tx.hasWitness())
}

func (tx *Transaction) hasWitness() bool {
	for _, in := range tx.Inputs {
		if len(in.Witness) > 0 {
			return true
		}
	}
	return false
}

func (tx *Transaction) serialize(withWitness bool) []byte {
	var buf []byte
	buf = binary.LittleEndian.AppendUint32(buf, uint32(tx.Version))

	if withWitness {
		buf = append(buf, 0x00, 0x01)
	}

	buf = AppendCompactSize(buf, uint64(len(tx.Inputs)))
	for _, in := range tx.Inputs {
		buf = append(buf, in.PrevOut.TxID[:]...)
		buf = binary.LittleEndian.AppendUint32(buf, in.PrevOut.Index)
		buf = AppendCompactSize(buf, uint64(len(in.Script)))
		buf = append(buf, in.Script...)
		buf = binary.LittleEndian.AppendUint32(buf, in.Sequence)
	}

	buf = AppendCompactSize(buf, uint64(len(tx.Outputs)))
	for _, out := range tx.Outputs {
		buf = binary.LittleEndian.AppendUint64(buf, out.Value)
		buf = AppendCompactSize(buf, uint64(len(out.Script)))
		buf = append(buf, out.Script...)
	}

	if withWitness {
		for _, in := range tx.Inputs {
			buf = AppendCompactSize(buf, uint64(len(in.Witness)))
			for _, item := range in.Witness {
				buf = AppendCompactSize(buf, uint64(len(item)))
				buf = append(buf, item...)
			}
		}
	}

	buf = binary.LittleEndian.AppendUint32(buf, tx.LockTime)
	return buf
}
