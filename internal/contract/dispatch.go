package contract

import (
	"fmt"

	"github.com/embermint/embermint/internal/runtime"
	"github.com/embermint/embermint/internal/storage"
	"github.com/embermint/embermint/pkg/types"
)

// Opcodes of the contract's invocation surface.
const (
	OpInitialize      uint64 = 0
	OpMintTokens      uint64 = 77
	OpRename          uint64 = 88
	OpGetName         uint64 = 99
	OpGetSymbol       uint64 = 100
	OpGetTotalSupply  uint64 = 101
	OpGetCap          uint64 = 102
	OpGetMinted       uint64 = 103
	OpGetValuePerMint uint64 = 104
	OpGetData         uint64 = 1000
)

var _ runtime.Handler = (*FreeMint)(nil)

// argCounts maps each opcode to its required argument count.
var argCounts = map[uint64]int{
	OpInitialize:      6,
	OpMintTokens:      0,
	OpRename:          3,
	OpGetName:         0,
	OpGetSymbol:       0,
	OpGetTotalSupply:  0,
	OpGetCap:          0,
	OpGetMinted:       0,
	OpGetValuePerMint: 0,
	OpGetData:         0,
}

// Call routes one invocation to its operation. db is the staged storage
// view the host hands each call.
func (c *FreeMint) Call(db storage.DB, ctx *runtime.CallContext, call runtime.CallData) (*runtime.Response, error) {
	want, ok := argCounts[call.Opcode]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownOpcode, call.Opcode)
	}
	if len(call.Args) != want {
		return nil, fmt.Errorf("%w: opcode %d takes %d args, got %d", ErrArgCount, call.Opcode, want, len(call.Args))
	}

	st := NewState(db, ctx.Self)

	switch call.Opcode {
	case OpInitialize:
		return c.initialize(st, ctx, call.Args)
	case OpMintTokens:
		return c.mintTokens(db, st, ctx)
	case OpRename:
		return c.rename(st, ctx, call.Args)
	case OpGetName:
		return textQuery(ctx, st.Name)
	case OpGetSymbol:
		return textQuery(ctx, st.Symbol)
	case OpGetTotalSupply:
		return amountQuery(ctx, st.TotalSupply)
	case OpGetCap:
		return amountQuery(ctx, st.Cap)
	case OpGetMinted:
		return amountQuery(ctx, st.Minted)
	case OpGetValuePerMint:
		return amountQuery(ctx, st.ValuePerMint)
	case OpGetData:
		data, err := st.Data()
		if err != nil {
			return nil, err
		}
		resp := runtime.Forward(ctx)
		resp.Data = data
		return resp, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownOpcode, call.Opcode)
	}
}

func textQuery(ctx *runtime.CallContext, read func() (string, error)) (*runtime.Response, error) {
	s, err := read()
	if err != nil {
		return nil, err
	}
	resp := runtime.Forward(ctx)
	resp.Data = []byte(s)
	return resp, nil
}

func amountQuery(ctx *runtime.CallContext, read func() (types.Amount, error)) (*runtime.Response, error) {
	v, err := read()
	if err != nil {
		return nil, err
	}
	resp := runtime.Forward(ctx)
	resp.Data = v.LE16()
	return resp, nil
}
