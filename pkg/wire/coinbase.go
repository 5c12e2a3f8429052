package wire

import (
	"bytes"
	"errors"
	"io"
)

// blockHeaderSize is the fixed serialized size of a block header.
const blockHeaderSize = 80

// Coinbase extraction errors.
var (
	ErrBlockTooShort     = errors.New("block data too short")
	ErrBlockNoTxs        = errors.New("block does not contain transactions")
	ErrCoinbaseNoInputs  = errors.New("coinbase tx has no inputs")
	ErrCoinbaseTruncated = errors.New("coinbase script truncated")
)

// CoinbaseScript extracts the unlocking script of the first input of a
// block's first transaction — the coinbase script, where miners embed
// identifying text.
//
// Only the fields leading up to the script are walked; the rest of the
// block is never touched. The 36-byte null outpoint of the coinbase input
// is skipped without validation.
func CoinbaseScript(blockData []byte) ([]byte, error) {
	if len(blockData) < blockHeaderSize+1 {
		return nil, ErrBlockTooShort
	}

	r := bytes.NewReader(blockData[blockHeaderSize:])

	txCount, err := ReadCompactSize(r)
	if err != nil {
		return nil, err
	}
	if txCount == 0 {
		return nil, ErrBlockNoTxs
	}

	// Transaction version.
	if _, err := r.Seek(4, io.SeekCurrent); err != nil || r.Len() < 2 {
		return nil, ErrCoinbaseTruncated
	}

	// Optional segwit marker/flag. When the two bytes are not the marker
	// they belong to the input count, so rewind.
	var marker [2]byte
	if _, err := io.ReadFull(r, marker[:]); err != nil {
		return nil, ErrCoinbaseTruncated
	}
	if marker[0] != 0x00 || marker[1] != 0x01 {
		if _, err := r.Seek(-2, io.SeekCurrent); err != nil {
			return nil, err
		}
	}

	inputCount, err := ReadCompactSize(r)
	if err != nil {
		return nil, err
	}
	if inputCount == 0 {
		return nil, ErrCoinbaseNoInputs
	}

	// Referenced outpoint: 32-byte hash + 4-byte index.
	if r.Len() < 36 {
		return nil, ErrCoinbaseTruncated
	}
	if _, err := r.Seek(36, io.SeekCurrent); err != nil {
		return nil, err
	}

	scriptLen, err := ReadCompactSize(r)
	if err != nil {
		return nil, err
	}
	if scriptLen > uint64(r.Len()) {
		return nil, ErrCoinbaseTruncated
	}
	script := make([]byte, scriptLen)
	if _, err := io.ReadFull(r, script); err != nil {
		return nil, ErrCoinbaseTruncated
	}
	return script, nil
}
