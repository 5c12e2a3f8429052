package wire

// Script opcodes used by the witness envelope format.
const (
	opFalse     = 0x00
	opIf        = 0x63
	opEndIf     = 0x68
	opPushData1 = 0x4c
	opPushData2 = 0x4d
	opPushData4 = 0x4e
)

// WitnessPayload extracts the data payload embedded in the witness of the
// given input, if any.
//
// The payload rides in an inscription-style envelope inside one of the
// witness script items: OP_FALSE OP_IF <data pushes> OP_ENDIF. All data
// pushes inside the envelope are concatenated. Returns nil when the input
// does not exist or no envelope is present.
func WitnessPayload(tx *Transaction, input int) []byte {
	if tx == nil || input < 0 || input >= len(tx.Inputs) {
		return nil
	}
	for _, item := range tx.Inputs[input].Witness {
		if payload := envelopePayload(item); payload != nil {
			return payload
		}
	}
	return nil
}

// envelopePayload scans a script for an OP_FALSE OP_IF envelope and
// returns the concatenated pushed data, or nil if no well-formed
// envelope is found.
func envelopePayload(script []byte) []byte {
	for i := 0; i+1 < len(script); i++ {
		if script[i] != opFalse || script[i+1] != opIf {
			continue
		}
		if payload, ok := readEnvelope(script[i+2:]); ok {
			return payload
		}
	}
	return nil
}

// readEnvelope reads data pushes until OP_ENDIF. Returns ok=false when the
// envelope is malformed or unterminated.
func readEnvelope(script []byte) ([]byte, bool) {
	payload := []byte{}
	i := 0
	for i < len(script) {
		op := script[i]
		i++

		if op == opEndIf {
			return payload, true
		}

		var n int
		switch {
		case op > opFalse && op < opPushData1:
			n = int(op)
		case op == opPushData1:
			if i >= len(script) {
				return nil, false
			}
			n = int(script[i])
			i++
		case op == opPushData2:
			if i+2 > len(script) {
				return nil, false
			}
			n = int(script[i]) | int(script[i+1])<<8
			i += 2
		case op == opPushData4:
			if i+4 > len(script) {
				return nil, false
			}
			n = int(script[i]) | int(script[i+1])<<8 | int(script[i+2])<<16 | int(script[i+3])<<24
			i += 4
		case op == opFalse:
			// Empty push. Nothing to append.
			continue
		default:
			// Non-push opcode inside the envelope: not a data envelope.
			return nil, false
		}

		if n < 0 || i+n > len(script) {
			return nil, false
		}
		payload = append(payload, script[i:i+n]...)
		i += n
	}
	return nil, false
}
