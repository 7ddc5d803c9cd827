package core

import (
	errorsmod "cosmossdk.io/errors"
)

const ModuleName = "ibccore"

var (
	ErrUnknownMessageType = errorsmod.Register(ModuleName, 2, "envelope carries no known message")
)
