package keeper

import (
	errorsmod "cosmossdk.io/errors"
)

const ModuleName = "ibcport"

var (
	ErrUnknownPort    = errorsmod.Register(ModuleName, 2, "no module bound to port")
	ErrModuleNotFound = errorsmod.Register(ModuleName, 3, "bound module not found")
)
