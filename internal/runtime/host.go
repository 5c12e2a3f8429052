package runtime

import (
	"time"

	"github.com/embermint/embermint/internal/log"
	"github.com/embermint/embermint/internal/storage"
)

// Handler executes one contract invocation against the given storage.
// The storage handed to Call is a staged view; the handler must not
// assume anything it writes is durable.
type Handler interface {
	Call(db storage.DB, ctx *CallContext, call CallData) (*Response, error)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(db storage.DB, ctx *CallContext, call CallData) (*Response, error)

// Call invokes the function.
func (f HandlerFunc) Call(db storage.DB, ctx *CallContext, call CallData) (*Response, error) {
	return f(db, ctx, call)
}

// Host serializes contract invocations against a storage partition and
// enforces all-or-nothing commit semantics: a call that returns an error
// leaves no durable writes, a call that succeeds commits its entire
// write set together.
type Host struct {
	db      storage.DB
	handler Handler
}

// NewHost creates a host around a contract's storage partition.
func NewHost(db storage.DB, handler Handler) *Host {
	return &Host{db: db, handler: handler}
}

// Execute runs a single invocation to completion. Calls are evaluated one
// at a time; there is no intra-call concurrency.
func (h *Host) Execute(ctx *CallContext, call CallData) (*Response, error) {
	start := time.Now()

	staged := storage.NewStaged(h.db)
	resp, err := h.handler.Call(staged, ctx, call)
	if err != nil {
		staged.Discard()
		log.Runtime.Debug().
			Uint64("opcode", call.Opcode).
			Dur("duration", time.Since(start)).
			Err(err).
			Msg("call rejected")
		return nil, err
	}

	if err := staged.Commit(); err != nil {
		return nil, err
	}

	log.Runtime.Debug().
		Uint64("opcode", call.Opcode).
		Int("transfers", len(resp.Transfers)).
		Dur("duration", time.Since(start)).
		Msg("call committed")
	return resp, nil
}
