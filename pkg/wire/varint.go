// Package wire parses raw Bitcoin wire-format blocks and transactions.
//
// Only the pieces the mint contract needs are implemented: compact-size
// integers, full transaction decoding (for the tribute check and txid),
// coinbase script extraction from raw block bytes, and witness envelope
// payload extraction. There is no network code here.
package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
)

// ErrVarIntTruncated is returned when a compact-size integer is cut short.
var ErrVarIntTruncated = errors.New("truncated compact-size integer")

// ReadCompactSize decodes a Bitcoin compact-size integer.
//
// A single byte 0-252 is the value itself; 0xfd, 0xfe, and 0xff introduce
// 2-, 4-, and 8-byte little-endian extensions respectively.
func ReadCompactSize(r *bytes.Reader) (uint64, error) {
	first, err := r.ReadByte()
	if err != nil {
		return 0, ErrVarIntTruncated
	}

	var width int
	switch first {
	case 0xfd:
		width = 2
	case 0xfe:
		width = 4
	case 0xff:
		width = 8
	default:
		return uint64(first), nil
	}

	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:width]); err != nil {
		return 0, ErrVarIntTruncated
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

// AppendCompactSize appends the compact-size encoding of v to buf.
func AppendCompactSize(buf []byte, v uint64) []byte {
	switch {
	case v < 0xfd:
		return append(buf, byte(v))
	case v <= 0xffff:
		buf = append(buf, 0xfd)
		return binary.LittleEndian.AppendUint16(buf, uint16(v))
	case v <= 0xffffffff:
		buf = append(buf, 0xfe)
		return binary.LittleEndian.AppendUint32(buf, uint32(v))
	default:
		buf = append(buf, 0xff)
		return binary.LittleEndian.AppendUint64(buf, v)
	}
}
