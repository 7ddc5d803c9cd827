package types

import (
	errorsmod "cosmossdk.io/errors"
)

const ModuleName = "ibcconnection"

var (
	ErrConnectionNotFound     = errorsmod.Register(ModuleName, 2, "connection not found")
	ErrInvalidConnection      = errorsmod.Register(ModuleName, 3, "invalid connection")
	ErrInvalidConnectionState = errorsmod.Register(ModuleName, 4, "invalid connection state")
	ErrNoCommonVersion        = errorsmod.Register(ModuleName, 5, "no common version")
	ErrInvalidVersion         = errorsmod.Register(ModuleName, 6, "invalid version")
	ErrInvalidConsensusHeight = errorsmod.Register(ModuleName, 7, "invalid consensus height")
	ErrInvalidClientState     = errorsmod.Register(ModuleName, 8, "invalid self-client description")
	ErrInvalidProof           = errorsmod.Register(ModuleName, 9, "invalid connection handshake proof")
	ErrClientNotActive        = errorsmod.Register(ModuleName, 10, "client is not active")
)
