// Package mock is a trivial client capability used only by tests: it skips
// all cryptography and accepts any header whose height strictly advances
// the tracked latest height. Real ibc-go ships the same kind of capability
// under testing/mock for exactly this reason — handshake and packet-flow
// handler logic is the part worth exercising thoroughly, and pairing every
// test with full Merkle-proof construction would mostly just be testing
// ics23 itself (already covered by its own test suite).
package mock

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/cosmosnet/ibc-core-engine/exported"
	"github.com/cosmosnet/ibc-core-engine/types"
)

// ClientType is this capability's identifier prefix.
const ClientType = "06-mock"

// ModuleName scopes this package's registered errors.
const ModuleName = "mockclient"

var ErrMockVerification = errorsmod.Register(ModuleName, 2, "mock verification failed")

// ClientState is the mock client's on-chain record: just a latest height
// and a frozen flag, no trust parameters at all.
type ClientState struct {
	LatestHeightValue types.Height
	FrozenHeightValue types.Height
}

// NewClientState builds an active mock client at the given height.
func NewClientState(latestHeight types.Height) *ClientState {
	return &ClientState{LatestHeightValue: latestHeight}
}

func (cs *ClientState) ClientType() string        { return ClientType }
func (cs *ClientState) LatestHeight() types.Height { return cs.LatestHeightValue }
func (cs *ClientState) IsFrozen() bool             { return !cs.FrozenHeightValue.IsZero() }

func (cs *ClientState) Validate() error {
	if !cs.LatestHeightValue.IsValid() {
		return errorsmod.Wrap(ErrMockVerification, "latest height must have a nonzero revision height")
	}
	return nil
}

func (cs *ClientState) Status(ctx exported.ClientContext, clientID string) exported.Status {
	if cs.IsFrozen() {
		return exported.Frozen
	}
	return exported.Active
}

func (cs *ClientState) ValidateProofHeight(ctx exported.ClientContext, clientID string, proofHeight types.Height) error {
	if proofHeight.GT(cs.LatestHeightValue) {
		return errorsmod.Wrapf(ErrMockVerification, "proof height %s exceeds latest height %s", proofHeight, cs.LatestHeightValue)
	}
	return nil
}

// VerifyClientMessage accepts any Header whose height strictly advances the
// client, and any Misbehaviour unconditionally.
func (cs *ClientState) VerifyClientMessage(ctx exported.ClientContext, clientID string, msg exported.ClientMessage) error {
	switch m := msg.(type) {
	case *Header:
		if !m.Height.GT(cs.LatestHeightValue) {
			return errorsmod.Wrapf(ErrMockVerification, "header height %s does not advance latest height %s", m.Height, cs.LatestHeightValue)
		}
		return nil
	case *Misbehaviour:
		return nil
	default:
		return errorsmod.Wrapf(ErrMockVerification, "unsupported client message type %T", msg)
	}
}

// CheckForMisbehaviour reports true only for an explicit Misbehaviour
// message; mock headers never implicitly conflict since there is no real
// consensus data to cross-check.
func (cs *ClientState) CheckForMisbehaviour(ctx exported.ClientContext, clientID string, msg exported.ClientMessage) bool {
	_, ok := msg.(*Misbehaviour)
	return ok
}

func (cs *ClientState) UpdateState(ctx exported.ClientContext, clientID string, msg exported.ClientMessage) []types.Height {
	header, ok := msg.(*Header)
	if !ok {
		return nil
	}
	if header.Height.GT(cs.LatestHeightValue) {
		cs.LatestHeightValue = header.Height
	}
	return []types.Height{header.Height}
}

func (cs *ClientState) UpdateStateOnMisbehaviour(ctx exported.ClientContext, clientID string, msg exported.ClientMessage) {
	cs.FrozenHeightValue = cs.LatestHeightValue
}

func (cs *ClientState) VerifyUpgradeAndUpdateState(
	ctx exported.ClientContext,
	clientID string,
	newClient exported.ClientState,
	newConsState exported.ConsensusState,
	upgradeClientProof, upgradeConsStateProof []byte,
) (types.Height, error) {
	return newClient.LatestHeight(), nil
}

// VerifyMembership accepts any proof equal to the literal value being
// checked: tests construct such "proofs" directly rather than through any
// real commitment scheme.
func (cs *ClientState) VerifyMembership(
	ctx exported.ClientContext,
	clientID string,
	height types.Height,
	delayTimePeriod, delayBlockPeriod uint64,
	proof []byte,
	path []byte,
	value []byte,
) error {
	if err := cs.ValidateProofHeight(ctx, clientID, height); err != nil {
		return err
	}
	if string(proof) != string(value) {
		return errorsmod.Wrap(ErrMockVerification, "mock proof does not match expected value")
	}
	return nil
}

// VerifyNonMembership accepts an empty proof unconditionally.
func (cs *ClientState) VerifyNonMembership(
	ctx exported.ClientContext,
	clientID string,
	height types.Height,
	delayTimePeriod, delayBlockPeriod uint64,
	proof []byte,
	path []byte,
) error {
	if err := cs.ValidateProofHeight(ctx, clientID, height); err != nil {
		return err
	}
	if len(proof) != 0 {
		return errorsmod.Wrap(ErrMockVerification, "mock non-membership proof must be empty")
	}
	return nil
}

func (cs *ClientState) CheckSubstitute(substitute exported.ClientState) error {
	if _, ok := substitute.(*ClientState); !ok {
		return errorsmod.Wrapf(ErrMockVerification, "substitute is not a %s client", ClientType)
	}
	return nil
}

func (cs *ClientState) ZeroCustomFields() exported.ClientState {
	return &ClientState{}
}

// CommitmentBytes implements exported.ClientState.
func (cs *ClientState) CommitmentBytes() []byte {
	return []byte(cs.LatestHeightValue.String())
}

// ConsensusState is the mock client's per-height record.
type ConsensusState struct {
	TimestampNanos uint64
	Root           []byte
}

func NewConsensusState(timestampNanos uint64, root []byte) *ConsensusState {
	return &ConsensusState{TimestampNanos: timestampNanos, Root: root}
}

func (cons *ConsensusState) ClientType() string    { return ClientType }
func (cons *ConsensusState) GetTimestamp() uint64  { return cons.TimestampNanos }
func (cons *ConsensusState) GetRoot() []byte       { return cons.Root }
func (cons *ConsensusState) ValidateBasic() error {
	if cons.TimestampNanos == 0 {
		return errorsmod.Wrap(ErrMockVerification, "timestamp cannot be zero")
	}
	return nil
}

// CommitmentBytes implements exported.ConsensusState.
func (cons *ConsensusState) CommitmentBytes() []byte {
	return cons.Root
}

// Header is the mock ClientMessage carrying only a height and a timestamp.
type Header struct {
	Height         types.Height
	TimestampNanos uint64
}

func (h *Header) ClientType() string { return ClientType }

func (h *Header) ValidateBasic() error {
	if !h.Height.IsValid() {
		return errorsmod.Wrap(ErrMockVerification, "height must have a nonzero revision height")
	}
	return nil
}

func (h *Header) NewHeight() types.Height { return h.Height }

func (h *Header) NewConsensusState() exported.ConsensusState {
	return NewConsensusState(h.TimestampNanos, []byte(h.Height.String()))
}

// Misbehaviour is the mock evidence message; it carries no payload since
// the mock client accepts any instance unconditionally.
type Misbehaviour struct{}

func (m *Misbehaviour) ClientType() string  { return ClientType }
func (m *Misbehaviour) ValidateBasic() error { return nil }
