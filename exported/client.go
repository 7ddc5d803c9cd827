// Package exported defines the capability-style interfaces shared across the
// core: the pluggable light-client contract (spec §4.2) and the consensus
// commitment it verifies against. Concrete client algorithms (the canonical
// "07-tendermint" variant and any other) implement these interfaces; the
// core never type-switches on a concrete struct, only on ClientType().
package exported

import (
	"github.com/cosmosnet/ibc-core-engine/types"
)

// Status mirrors the four-way lifecycle spec §4.2 assigns to a client.
type Status string

const (
	// Active clients may accept new headers and verify proofs.
	Active Status = "Active"
	// Frozen clients were caught in misbehaviour; they never accept new
	// headers, and proof verification against them is rejected.
	Frozen Status = "Frozen"
	// Expired clients have gone past their trusting period without an
	// update; they keep verifying but never update.
	Expired Status = "Expired"
	// Unauthorized is returned for a client whose capability cannot assert
	// a status (e.g. a malformed or unsupported client variant).
	Unauthorized Status = "Unauthorized"
)

// ClientMessage is the sum type of inputs a client capability consumes to
// advance or challenge its tracked consensus: headers on update, evidence on
// misbehaviour submission. The core treats the payload opaquely and only
// ever routes it back to the client variant that produced its ClientType.
type ClientMessage interface {
	ClientType() string
	ValidateBasic() error
}

// HeaderMessage is the subset of ClientMessage that installs exactly one new
// consensus state (a header, as opposed to misbehaviour evidence). The
// keeper uses it to persist the consensus state a client capability's
// UpdateState reported writing, without needing to know the concrete client
// variant (spec §9 "core never type-switches on a concrete struct").
type HeaderMessage interface {
	ClientMessage
	NewConsensusState() ConsensusState
	NewHeight() types.Height
}

// ConsensusState is the per-height commitment a client tracks: the remote
// chain's Merkle root and timestamp, plus whatever digest the variant needs
// to verify the *next* header (e.g. a validator set hash).
type ConsensusState interface {
	ClientType() string
	// GetTimestamp returns the consensus timestamp in nanoseconds since the
	// Unix epoch.
	GetTimestamp() uint64
	// GetRoot returns the Merkle root committing to the counterparty's
	// state at this height.
	GetRoot() []byte
	ValidateBasic() error
	// CommitmentBytes returns the deterministic encoding a membership proof
	// of this consensus state commits to.
	CommitmentBytes() []byte
}

// ClientContext is the read surface a ClientState implementation needs to do
// its work: lookups of its own prior state, and facts about the local host.
// It is passed explicitly into every ClientState method instead of being
// held by reference, so no client ever needs a back-pointer into the keeper
// that owns it (design note, spec §9 "Cyclic references").
type ClientContext interface {
	HostHeight() types.Height
	HostTimestamp() uint64
	CommitmentPrefix() []byte
	MaxExpectedTimePerBlock() uint64

	GetClientState(clientID string) (ClientState, bool)
	GetConsensusState(clientID string, height types.Height) (ConsensusState, bool)
	// GetSelfConsensusState returns the host's own recollection of its
	// consensus at the given height, used by counterparty self-validation
	// during connection handshakes (spec §4.3 "self-client description").
	GetSelfConsensusState(height types.Height) (ConsensusState, error)
}

// ClientState is the pluggable light-client capability from spec §4.2.
// Exactly one implementation exists per supported consensus algorithm; the
// core dispatches to it purely through this interface (design note: "flat
// enum plus module-level functions per variant" realized here as one
// interface implementation per client type, selected by ClientType()).
type ClientState interface {
	ClientType() string
	Validate() error
	LatestHeight() types.Height
	// CommitmentBytes returns the deterministic encoding a membership proof
	// of this client state commits to.
	CommitmentBytes() []byte

	// Status derives the client's lifecycle state by consulting its own
	// frozen-height field and, for expiry, the context's host timestamp.
	Status(ctx ClientContext, clientID string) Status

	// ValidateProofHeight rejects a proof height beyond the client's latest
	// tracked height (spec §8 invariant 8).
	ValidateProofHeight(ctx ClientContext, clientID string, proofHeight types.Height) error

	// VerifyClientMessage performs the cryptographic check of an update or
	// misbehaviour message against stored consensus state.
	VerifyClientMessage(ctx ClientContext, clientID string, msg ClientMessage) error

	// CheckForMisbehaviour reports whether msg is evidence of a protocol
	// violation rather than a legitimate update.
	CheckForMisbehaviour(ctx ClientContext, clientID string, msg ClientMessage) bool

	// UpdateState advances the client state for msg and returns every
	// height at which msg implies a new consensus state; the keeper
	// persists those consensus states.
	UpdateState(ctx ClientContext, clientID string, msg ClientMessage) []types.Height

	// UpdateStateOnMisbehaviour freezes the client; it does not write a new
	// consensus state.
	UpdateStateOnMisbehaviour(ctx ClientContext, clientID string, msg ClientMessage)

	// VerifyUpgradeAndUpdateState checks the two upgrade proofs against the
	// client's current consensus root, then returns the height at which the
	// upgraded state should be recorded.
	VerifyUpgradeAndUpdateState(
		ctx ClientContext,
		clientID string,
		newClient ClientState,
		newConsState ConsensusState,
		upgradeClientProof, upgradeConsStateProof []byte,
	) (types.Height, error)

	VerifyMembership(
		ctx ClientContext,
		clientID string,
		height types.Height,
		delayTimePeriod, delayBlockPeriod uint64,
		proof []byte,
		path []byte,
		value []byte,
	) error

	VerifyNonMembership(
		ctx ClientContext,
		clientID string,
		height types.Height,
		delayTimePeriod, delayBlockPeriod uint64,
		proof []byte,
		path []byte,
	) error

	// CheckSubstitute compares the invariant fields of this (subject)
	// client against a proposed substitute, returning an error if they
	// diverge in a way that would change the chain being tracked.
	CheckSubstitute(substitute ClientState) error

	// ZeroCustomFields returns a copy of the client state with all
	// algorithm-specific tunables cleared, keeping only the fields that
	// identify the tracked chain.
	ZeroCustomFields() ClientState
}
