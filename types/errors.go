package types

import (
	errorsmod "cosmossdk.io/errors"
)

// ModuleName is the code space shared by the identifier and height grammar.
// Per-subsystem errors live in their own packages with their own code spaces;
// this one backs only the shared ICS-24 host types.
const ModuleName = "ibchost"

var (
	// ErrInvalidHeight is returned when a height fails to parse or violates
	// the revision-height-nonzero invariant (spec §3).
	ErrInvalidHeight = errorsmod.Register(ModuleName, 2, "invalid height")
	// ErrInvalidIdentifier is returned when an identifier fails the ICS-24
	// grammar or a per-kind length bound (spec §3).
	ErrInvalidIdentifier = errorsmod.Register(ModuleName, 3, "invalid identifier")
	// ErrInvalidPath is returned by path parsers when a store key does not
	// match its expected canonical shape.
	ErrInvalidPath = errorsmod.Register(ModuleName, 4, "invalid path")
)
