package contract

import (
	"fmt"

	"github.com/embermint/embermint/internal/log"
	"github.com/embermint/embermint/internal/runtime"
	"github.com/embermint/embermint/internal/storage"
	"github.com/embermint/embermint/pkg/types"
	"github.com/embermint/embermint/pkg/wire"
)

// initialize runs the one-time configuration: identity, per-mint reward,
// supply cap, payload blob, and the optional initial issuance.
func (c *FreeMint) initialize(st *State, ctx *runtime.CallContext, args []types.Amount) (*runtime.Response, error) {
	resp := runtime.Forward(ctx)

	// The flag is checked and set before any other mutation, so a second
	// Initialize fails without touching prior state.
	done, err := st.Initialized()
	if err != nil {
		return nil, err
	}
	if done {
		return nil, ErrAlreadyInitialized
	}
	if err := st.MarkInitialized(); err != nil {
		return nil, err
	}

	units, valuePerMint, capValue := args[0], args[1], args[2]

	if err := st.SetValuePerMint(valuePerMint); err != nil {
		return nil, err
	}
	if err := st.SetCap(capValue); err != nil {
		return nil, err
	}

	// The payload blob rides in the initializing transaction's witness.
	tx, err := wire.DecodeTransaction(ctx.Transaction)
	if err != nil {
		return nil, fmt.Errorf("decode initializing transaction: %w", err)
	}
	if err := st.SetData(wire.WitnessPayload(tx, 0)); err != nil {
		return nil, err
	}

	if err := c.setIdentity(st, args[3], args[4], args[5]); err != nil {
		return nil, err
	}

	if !units.IsZero() {
		transfer, err := st.Mint(units)
		if err != nil {
			return nil, err
		}
		resp.Transfers = append(resp.Transfers, transfer)
	}

	name, _ := st.Name()
	log.Contract.Info().
		Str("name", name).
		Str("cap", capValue.String()).
		Str("value_per_mint", valuePerMint.String()).
		Str("initial_units", units.String()).
		Msg("token initialized")
	return resp, nil
}

// mintTokens runs one mint attempt. All eligibility checks happen before
// any state mutation; the replay guard is updated last among the gating
// writes, right before the issuance itself.
func (c *FreeMint) mintTokens(db storage.DB, st *State, ctx *runtime.CallContext) (*runtime.Response, error) {
	resp := runtime.Forward(ctx)

	script, err := wire.CoinbaseScript(ctx.Block)
	if err != nil {
		return nil, err
	}
	if !c.allow.Accepts(script) {
		return nil, ErrUnknownMiner
	}

	tx, err := wire.DecodeTransaction(ctx.Transaction)
	if err != nil {
		return nil, fmt.Errorf("decode minting transaction: %w", err)
	}
	txid := tx.TxID()

	if err := c.tribute.Check(tx); err != nil {
		return nil, err
	}

	guard := NewReplayGuard(db)
	seen, err := guard.HasSeen(txid)
	if err != nil {
		return nil, err
	}
	if seen {
		return nil, ErrTxAlreadyUsed
	}

	minted, err := st.Minted()
	if err != nil {
		return nil, err
	}
	capValue, err := st.Cap()
	if err != nil {
		return nil, err
	}
	if minted.Cmp(capValue) >= 0 {
		return nil, fmt.Errorf("%w: %s of %s", ErrCapReached, minted, capValue)
	}

	if err := guard.MarkSeen(txid); err != nil {
		return nil, err
	}

	value, err := st.ValuePerMint()
	if err != nil {
		return nil, err
	}
	transfer, err := st.Mint(value)
	if err != nil {
		return nil, err
	}
	resp.Transfers = append(resp.Transfers, transfer)

	if err := st.IncrementMinted(); err != nil {
		return nil, err
	}

	log.Contract.Debug().
		Str("txid", txid.String()).
		Str("value", value.String()).
		Msg("mint accepted")
	return resp, nil
}

// rename re-runs the identity-setting logic. Supply state is untouched.
// There is deliberately no caller check here; any access control lives
// outside the contract.
func (c *FreeMint) rename(st *State, ctx *runtime.CallContext, args []types.Amount) (*runtime.Response, error) {
	if err := c.setIdentity(st, args[0], args[1], args[2]); err != nil {
		return nil, err
	}
	return runtime.Forward(ctx), nil
}

func (c *FreeMint) setIdentity(st *State, nameW1, nameW2, symbolWord types.Amount) error {
	name, err := NameFromParts(nameW1, nameW2)
	if err != nil {
		return err
	}
	symbol, err := TrimWord(symbolWord)
	if err != nil {
		return err
	}
	if err := st.SetName(name); err != nil {
		return err
	}
	return st.SetSymbol(symbol)
}
