// Package tendermint is the canonical client capability (spec §4.2): the
// "07-tendermint" variant backed by cometbft's skipping verification
// algorithm and ICS-23 Merkle proofs. It is the one concrete
// exported.ClientState/ConsensusState implementation shipped with the
// engine; other consensus algorithms plug in the same way, as their own
// package implementing the same two interfaces (design note, spec §9: "flat
// enum plus module-level functions per variant" — here realized as one
// package per variant rather than a case arm, so adding a variant never
// touches this one).
package tendermint

import (
	"fmt"
	"time"

	errorsmod "cosmossdk.io/errors"
	ics23 "github.com/cosmos/ics23/go"

	"github.com/cosmosnet/ibc-core-engine/exported"
	"github.com/cosmosnet/ibc-core-engine/types"
)

// ClientType is this variant's identifier prefix, also used as the
// "<client-type>" half of every client id it allocates (spec §3).
const ClientType = "07-tendermint"

// ClientState is the canonical client's on-chain record (spec §3
// "ClientState (per client)").
type ClientState struct {
	ChainID        string
	TrustLevel     Fraction
	TrustingPeriod time.Duration
	UnbondingPeriod time.Duration
	MaxClockDrift  time.Duration
	LatestHeightValue types.Height
	// FrozenHeight is the zero Height when the client is not frozen. Per
	// spec §3, "frozen-height (absent iff active)" — the zero value plays
	// the role of "absent" since a real frozen height always has a nonzero
	// revision height.
	FrozenHeightValue types.Height
	ProofSpecs        []*ics23.ProofSpec
	UpgradePath       []string
}

// NewClientState builds an active (non-frozen) client state.
func NewClientState(
	chainID string,
	trustLevel Fraction,
	trustingPeriod, unbondingPeriod, maxClockDrift time.Duration,
	latestHeight types.Height,
	proofSpecs []*ics23.ProofSpec,
	upgradePath []string,
) *ClientState {
	return &ClientState{
		ChainID:           chainID,
		TrustLevel:        trustLevel,
		TrustingPeriod:    trustingPeriod,
		UnbondingPeriod:   unbondingPeriod,
		MaxClockDrift:     maxClockDrift,
		LatestHeightValue: latestHeight,
		ProofSpecs:        proofSpecs,
		UpgradePath:       upgradePath,
	}
}

// ClientType implements exported.ClientState.
func (cs *ClientState) ClientType() string { return ClientType }

// LatestHeight implements exported.ClientState.
func (cs *ClientState) LatestHeight() types.Height { return cs.LatestHeightValue }

// IsFrozen reports whether FrozenHeightValue has been set.
func (cs *ClientState) IsFrozen() bool { return !cs.FrozenHeightValue.IsZero() }

// Validate implements exported.ClientState: checks the client state is
// internally well-formed, independent of any store.
func (cs *ClientState) Validate() error {
	if types.ParseChainID(cs.ChainID) == 0 && cs.ChainID == "" {
		return errorsmod.Wrap(ErrInvalidClientState, "chain id cannot be empty")
	}
	if !cs.TrustLevel.IsValid() {
		return errorsmod.Wrapf(ErrInvalidClientState, "trust level %d/%d is outside (0, 1]", cs.TrustLevel.Numerator, cs.TrustLevel.Denominator)
	}
	if cs.TrustingPeriod <= 0 {
		return errorsmod.Wrap(ErrInvalidClientState, "trusting period must be positive")
	}
	if cs.UnbondingPeriod <= 0 {
		return errorsmod.Wrap(ErrInvalidClientState, "unbonding period must be positive")
	}
	if cs.TrustingPeriod >= cs.UnbondingPeriod {
		return errorsmod.Wrap(ErrInvalidClientState, "trusting period must be strictly less than unbonding period")
	}
	if cs.MaxClockDrift <= 0 {
		return errorsmod.Wrap(ErrInvalidClientState, "max clock drift must be positive")
	}
	if !cs.LatestHeightValue.IsValid() {
		return errorsmod.Wrap(ErrInvalidClientState, "latest height must have a nonzero revision height")
	}
	if len(cs.ProofSpecs) == 0 {
		return errorsmod.Wrap(ErrInvalidClientState, "proof specs cannot be empty")
	}
	return nil
}

// ZeroCustomFields implements exported.ClientState: the copy keeps only
// chain identity, proof specs, and upgrade path.
func (cs *ClientState) ZeroCustomFields() exported.ClientState {
	return &ClientState{
		ChainID:     cs.ChainID,
		ProofSpecs:  cs.ProofSpecs,
		UpgradePath: cs.UpgradePath,
	}
}

// CommitmentBytes implements exported.ClientState. Like every other stored
// value in this engine, the canonical wire form is the host's concern (spec
// §1 "codec wrappers"); this is only the fixed, order-stable representation
// the in-memory host and the tendermint client agree on for proof
// verification.
func (cs *ClientState) CommitmentBytes() []byte {
	return []byte(fmt.Sprintf("%s/%d/%d/%s", cs.ChainID, cs.TrustingPeriod, cs.UnbondingPeriod, cs.LatestHeightValue.String()))
}
