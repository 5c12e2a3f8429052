package contract

import "errors"

// Mint-eligibility and configuration errors.
var (
	ErrAlreadyInitialized = errors.New("contract already initialized")
	ErrUnknownMiner       = errors.New("coinbase script: required tag not found")
	ErrTxAlreadyUsed      = errors.New("transaction already used for minting")
	ErrCapReached         = errors.New("supply cap reached")

	ErrNoOutputs     = errors.New("transaction has no outputs")
	ErrNoTribute     = errors.New("transaction is missing the tribute output")
	ErrTributeValue  = errors.New("tribute output value mismatch")
	ErrTributeScript = errors.New("tribute output script mismatch")

	ErrSupplyOverflow    = errors.New("total supply overflow")
	ErrMintCountOverflow = errors.New("mint counter overflow")

	// ErrCorruptText signals that a stored name or symbol is not valid
	// UTF-8. This means a prior deployment wrote bad state; it is not a
	// normal runtime condition.
	ErrCorruptText = errors.New("stored text is not valid UTF-8")

	ErrUnknownOpcode = errors.New("unknown opcode")
	ErrArgCount      = errors.New("wrong argument count")
)
