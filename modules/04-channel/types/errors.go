package types

import (
	errorsmod "cosmossdk.io/errors"
)

const ModuleName = "ibcchannel"

var (
	ErrChannelNotFound          = errorsmod.Register(ModuleName, 2, "channel not found")
	ErrInvalidChannel           = errorsmod.Register(ModuleName, 3, "invalid channel")
	ErrInvalidChannelState      = errorsmod.Register(ModuleName, 4, "invalid channel state")
	ErrInvalidPacket            = errorsmod.Register(ModuleName, 5, "invalid packet")
	ErrPacketTimeout            = errorsmod.Register(ModuleName, 6, "packet has already timed out")
	ErrPacketTimeoutNotReached  = errorsmod.Register(ModuleName, 7, "packet timeout not yet reached")
	ErrInvalidPacketSequence    = errorsmod.Register(ModuleName, 8, "invalid packet sequence")
	ErrDuplicateAcknowledgement = errorsmod.Register(ModuleName, 9, "acknowledgement already exists for packet")
	ErrIncorrectPacketCommitment = errorsmod.Register(ModuleName, 10, "packet commitment bytes do not match")
	ErrDelayPeriodNotElapsed    = errorsmod.Register(ModuleName, 11, "connection delay period has not elapsed")
	ErrInvalidProof             = errorsmod.Register(ModuleName, 12, "invalid channel or packet proof")
	ErrConnectionNotOpen        = errorsmod.Register(ModuleName, 13, "connection is not open")
	ErrClientNotActive          = errorsmod.Register(ModuleName, 14, "client is not active")
	ErrOrderingMismatch         = errorsmod.Register(ModuleName, 15, "channel ordering is not supported by the connection version")
	ErrUnknownPort              = errorsmod.Register(ModuleName, 16, "no module bound to port")
	ErrModuleNotFound           = errorsmod.Register(ModuleName, 17, "bound module not found")
	ErrInvalidAcknowledgement   = errorsmod.Register(ModuleName, 18, "acknowledgement cannot be empty")
)
