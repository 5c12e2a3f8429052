// Package runtime models the execution host surface a contract call sees:
// the call context, the call data, the response, and the atomic commit of
// each invocation's write set.
package runtime

import (
	"github.com/embermint/embermint/pkg/types"
)

// CallContext carries everything ambient about the current invocation.
// It is an explicit value passed into every operation; the contract never
// reads process-wide state.
type CallContext struct {
	// Self is the identity of the contract being invoked. Transfers the
	// contract mints are denominated in this ID.
	Self types.TokenID

	// Caller identifies the invoking party, when known. The mint contract
	// does not gate on it but it is part of the host surface.
	Caller types.TokenID

	// Block is the raw serialized bytes of the block containing the call.
	Block []byte

	// Transaction is the raw serialized bytes of the invoking transaction.
	Transaction []byte

	// Incoming lists transfers attached to the call. Responses forward
	// them back untouched.
	Incoming []types.Transfer
}

// CallData is the decoded invocation payload: an opcode plus its
// 128-bit integer arguments.
type CallData struct {
	Opcode uint64
	Args   []types.Amount
}

// Response is a call's result payload: transfers issued by the call plus
// opaque response data for queries.
type Response struct {
	Transfers []types.Transfer
	Data      []byte
}

// Forward creates a response that passes the call's incoming transfers
// back to the caller. Every operation starts from this.
func Forward(ctx *CallContext) *Response {
	resp := &Response{}
	if len(ctx.Incoming) > 0 {
		resp.Transfers = append(resp.Transfers, ctx.Incoming...)
	}
	return resp
}
