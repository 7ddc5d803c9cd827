package types

import (
	errorsmod "cosmossdk.io/errors"
)

// ModuleName is this subsystem's error code space.
const ModuleName = "ibcclient"

var (
	ErrClientNotFound         = errorsmod.Register(ModuleName, 2, "client not found")
	ErrClientNotActive        = errorsmod.Register(ModuleName, 3, "client is not active")
	ErrInvalidClient          = errorsmod.Register(ModuleName, 4, "invalid client")
	ErrConsensusStateNotFound = errorsmod.Register(ModuleName, 5, "consensus state not found")
	ErrClientTypeNotFound     = errorsmod.Register(ModuleName, 6, "client type not found")
	ErrInvalidClientMessage   = errorsmod.Register(ModuleName, 7, "invalid client message")
	ErrInvalidHeight          = errorsmod.Register(ModuleName, 8, "invalid height")
	ErrInvalidHeader          = errorsmod.Register(ModuleName, 9, "invalid header")
	ErrInvalidMisbehaviour    = errorsmod.Register(ModuleName, 10, "invalid misbehaviour")
	ErrLowUpgradeHeight       = errorsmod.Register(ModuleName, 11, "upgrade height must be greater than current latest height")
	ErrInvalidUpgradeProof    = errorsmod.Register(ModuleName, 12, "invalid upgrade proof")
	ErrFrozenClient           = errorsmod.Register(ModuleName, 13, "client is frozen")
	ErrInvalidSubstitute      = errorsmod.Register(ModuleName, 14, "invalid substitute client")
	ErrConsensusStateMonotonicity = errorsmod.Register(ModuleName, 15, "consensus state timestamps are not monotonically increasing")
)
