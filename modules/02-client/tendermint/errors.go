package tendermint

import (
	errorsmod "cosmossdk.io/errors"
)

// ModuleName scopes this variant's registered error codes.
const ModuleName = "07-tendermint"

var (
	ErrInvalidClientState  = errorsmod.Register(ModuleName, 2, "invalid client state")
	ErrInvalidHeader       = errorsmod.Register(ModuleName, 3, "invalid header")
	ErrInvalidMisbehaviour = errorsmod.Register(ModuleName, 4, "invalid misbehaviour")
	ErrInvalidConsensusState = errorsmod.Register(ModuleName, 5, "invalid consensus state")
	ErrTrustingPeriodExpired = errorsmod.Register(ModuleName, 6, "trusting period has expired")
	ErrInvalidProof        = errorsmod.Register(ModuleName, 7, "invalid merkle proof")
)
