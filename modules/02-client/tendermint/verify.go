package tendermint

import (
	"bytes"
	"reflect"
	"time"

	errorsmod "cosmossdk.io/errors"
	ics23 "github.com/cosmos/ics23/go"
	"github.com/cosmos/gogoproto/proto"

	"github.com/cosmosnet/ibc-core-engine/exported"
	"github.com/cosmosnet/ibc-core-engine/types"
)

// Status implements exported.ClientState. A client explicitly frozen by
// misbehaviour stays Frozen regardless of the clock; otherwise it is Expired
// once the host timestamp has drifted more than TrustingPeriod past the
// latest consensus state's timestamp, and Active in between.
func (cs *ClientState) Status(ctx exported.ClientContext, clientID string) exported.Status {
	if cs.IsFrozen() {
		return exported.Frozen
	}

	consState, ok := ctx.GetConsensusState(clientID, cs.LatestHeightValue)
	if !ok {
		return exported.Unauthorized
	}

	expiry := time.Unix(0, int64(consState.GetTimestamp())).Add(cs.TrustingPeriod)
	now := time.Unix(0, int64(ctx.HostTimestamp()))
	if now.After(expiry) {
		return exported.Expired
	}
	return exported.Active
}

// ValidateProofHeight implements exported.ClientState (spec §8 invariant 8:
// a proof height beyond the client's latest tracked height is rejected).
func (cs *ClientState) ValidateProofHeight(ctx exported.ClientContext, clientID string, proofHeight types.Height) error {
	if proofHeight.GT(cs.LatestHeightValue) {
		return errorsmod.Wrapf(ErrInvalidHeader, "proof height %s is greater than client's latest height %s", proofHeight, cs.LatestHeightValue)
	}
	return nil
}

// VerifyClientMessage implements exported.ClientState by dispatching to
// Header or Misbehaviour verification; any other ClientMessage variant is
// rejected since this client recognizes only its own two message shapes.
func (cs *ClientState) VerifyClientMessage(ctx exported.ClientContext, clientID string, msg exported.ClientMessage) error {
	switch m := msg.(type) {
	case *Header:
		return cs.verifyHeader(ctx, clientID, m)
	case *Misbehaviour:
		return cs.verifyMisbehaviour(ctx, clientID, m)
	default:
		return errorsmod.Wrapf(ErrInvalidHeader, "unsupported client message type %T", msg)
	}
}

func (cs *ClientState) verifyHeader(ctx exported.ClientContext, clientID string, header *Header) error {
	if err := header.ValidateBasic(); err != nil {
		return err
	}

	trustedConsState, ok := ctx.GetConsensusState(clientID, header.TrustedHeight)
	if !ok {
		return errorsmod.Wrapf(ErrInvalidHeader, "no consensus state at trusted height %s", header.TrustedHeight)
	}
	tmTrustedConsState, ok := trustedConsState.(*ConsensusState)
	if !ok {
		return errorsmod.Wrap(ErrInvalidHeader, "trusted consensus state is not a tendermint consensus state")
	}

	if !bytesEqual(header.TrustedValidators.Hash(), tmTrustedConsState.NextValidatorsHash) {
		return errorsmod.Wrap(ErrInvalidHeader, "trusted validator set does not match the trusted consensus state's next validators hash")
	}

	now := time.Unix(0, int64(ctx.HostTimestamp()))
	trustedTime := time.Unix(0, int64(tmTrustedConsState.GetTimestamp()))
	if now.Sub(trustedTime) > cs.TrustingPeriod {
		return errorsmod.Wrapf(ErrTrustingPeriodExpired, "time since trusted consensus state %s exceeds trusting period %s", now.Sub(trustedTime), cs.TrustingPeriod)
	}
	if header.SignedHeader.Header.Time.After(now.Add(cs.MaxClockDrift)) {
		return errorsmod.Wrap(ErrInvalidHeader, "header time is too far in the future")
	}

	chainID := header.SignedHeader.Header.ChainID
	isAdjacent := header.GetHeight().EQ(header.TrustedHeight.Increment())

	var err error
	if isAdjacent {
		// Adjacent update: the trusted validator set itself must have
		// produced the new header's commit.
		err = header.TrustedValidators.VerifyCommitLight(chainID, header.SignedHeader.Commit.BlockID, header.SignedHeader.Header.Height, header.SignedHeader.Commit)
	} else {
		// Non-adjacent ("skipping") update: only a quorum weighted by
		// TrustLevel of the trusted validator set needs to have signed.
		err = header.TrustedValidators.VerifyCommitLightTrusting(chainID, header.SignedHeader.Commit, cs.TrustLevel.ToTendermint())
	}
	if err != nil {
		return errorsmod.Wrapf(ErrInvalidHeader, "header failed trusted-validator verification: %v", err)
	}

	// The untrusted header's own claimed validator set must also have
	// actually produced its commit.
	if err := header.ValidatorSet.VerifyCommitLight(chainID, header.SignedHeader.Commit.BlockID, header.SignedHeader.Header.Height, header.SignedHeader.Commit); err != nil {
		return errorsmod.Wrapf(ErrInvalidHeader, "header's validator set did not produce its commit: %v", err)
	}

	return nil
}

func (cs *ClientState) verifyMisbehaviour(ctx exported.ClientContext, clientID string, m *Misbehaviour) error {
	if err := m.ValidateBasic(); err != nil {
		return err
	}
	if err := cs.verifyHeader(ctx, clientID, m.Header1); err != nil {
		return errorsmod.Wrap(ErrInvalidMisbehaviour, "header1: "+err.Error())
	}
	if err := cs.verifyHeader(ctx, clientID, m.Header2); err != nil {
		return errorsmod.Wrap(ErrInvalidMisbehaviour, "header2: "+err.Error())
	}
	return nil
}

// CheckForMisbehaviour implements exported.ClientState: an explicit
// Misbehaviour message always counts. A Header counts when a consensus state
// already stored at its height has a different root, or when it lies above
// the latest height with a timestamp not after the latest consensus state's.
// A Header at or below the latest height is not compared against the
// timestamps of the consensus states at neighbouring heights.
func (cs *ClientState) CheckForMisbehaviour(ctx exported.ClientContext, clientID string, msg exported.ClientMessage) bool {
	switch m := msg.(type) {
	case *Misbehaviour:
		return true
	case *Header:
		height := m.GetHeight()
		existing, ok := ctx.GetConsensusState(clientID, height)
		if ok {
			existingTM, isTM := existing.(*ConsensusState)
			if isTM && !bytesEqual(existingTM.Root, m.SignedHeader.Header.AppHash) {
				return true
			}
		}
		if height.GT(cs.LatestHeightValue) {
			latestConsState, ok := ctx.GetConsensusState(clientID, cs.LatestHeightValue)
			if ok && uint64(m.SignedHeader.Header.Time.UnixNano()) <= latestConsState.GetTimestamp() {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// UpdateState implements exported.ClientState: if the header advances the
// latest height, updates LatestHeightValue. Returns the header's height as
// the single height at which the keeper then stores the header's consensus
// state.
func (cs *ClientState) UpdateState(ctx exported.ClientContext, clientID string, msg exported.ClientMessage) []types.Height {
	header, ok := msg.(*Header)
	if !ok {
		return nil
	}

	height := header.GetHeight()
	if height.GT(cs.LatestHeightValue) {
		cs.LatestHeightValue = height
	}

	// The new consensus state is persisted by the keeper (it owns the
	// store); this method only reports which height to persist it at and
	// mutates the in-memory client state's LatestHeightValue. The keeper
	// constructs the consensus state value itself via NewConsensusStateFromHeader.
	return []types.Height{height}
}

// NewConsensusStateFromHeader derives the consensus state a Header implies.
func NewConsensusStateFromHeader(header *Header) *ConsensusState {
	return NewConsensusState(
		uint64(header.SignedHeader.Header.Time.UnixNano()),
		header.SignedHeader.Header.AppHash,
		header.SignedHeader.Header.NextValidatorsHash,
	)
}

// UpdateStateOnMisbehaviour implements exported.ClientState: freezes the
// client at the height misbehaviour was detected, per spec §4.2 "frozen
// (height = misbehaviour height)".
func (cs *ClientState) UpdateStateOnMisbehaviour(ctx exported.ClientContext, clientID string, msg exported.ClientMessage) {
	frozenHeight := cs.LatestHeightValue
	if m, ok := msg.(*Misbehaviour); ok {
		h1, h2 := m.Header1.GetHeight(), m.Header2.GetHeight()
		if h1.LT(h2) {
			frozenHeight = h1
		} else {
			frozenHeight = h2
		}
	}
	cs.FrozenHeightValue = frozenHeight
}

// VerifyUpgradeAndUpdateState implements exported.ClientState: checks the
// two upgrade proofs against the current consensus root, then returns the
// upgraded client's latest height as the height the new state installs at
// (spec §4.2 "height = the height at which the old client would have
// expired, or its own last height").
func (cs *ClientState) VerifyUpgradeAndUpdateState(
	ctx exported.ClientContext,
	clientID string,
	newClient exported.ClientState,
	newConsState exported.ConsensusState,
	upgradeClientProof, upgradeConsStateProof []byte,
) (types.Height, error) {
	consState, ok := ctx.GetConsensusState(clientID, cs.LatestHeightValue)
	if !ok {
		return types.Height{}, errorsmod.Wrapf(ErrInvalidConsensusState, "no consensus state at latest height %s", cs.LatestHeightValue)
	}

	if len(cs.UpgradePath) == 0 {
		return types.Height{}, errorsmod.Wrap(ErrInvalidProof, "client has no configured upgrade path")
	}

	newTMClient, ok := newClient.(*ClientState)
	if !ok {
		return types.Height{}, errorsmod.Wrapf(ErrInvalidClientState, "upgraded client is not a %s client", ClientType)
	}
	newTMConsState, ok := newConsState.(*ConsensusState)
	if !ok {
		return types.Height{}, errorsmod.Wrap(ErrInvalidConsensusState, "upgraded consensus state is not a tendermint consensus state")
	}

	if err := verifyProof(cs.ProofSpecs, consState.GetRoot(), cs.UpgradePath, upgradeClientProof, newTMClient.CommitmentBytes()); err != nil {
		return types.Height{}, errorsmod.Wrap(ErrInvalidProof, "upgraded client state proof: "+err.Error())
	}
	if err := verifyProof(cs.ProofSpecs, consState.GetRoot(), cs.UpgradePath, upgradeConsStateProof, newTMConsState.CommitmentBytes()); err != nil {
		return types.Height{}, errorsmod.Wrap(ErrInvalidProof, "upgraded consensus state proof: "+err.Error())
	}

	return newClient.LatestHeight(), nil
}

// VerifyMembership implements exported.ClientState via a single ICS-23
// proof against the consensus root at height (spec §4.2, §4.4 commitment
// verification). delayTimePeriod/delayBlockPeriod are the channel-level
// packet delay (spec §4.4); this method ignores them. The channel keeper
// enforces the delay itself (enforceDelayPeriod) for acknowledgements and
// timeouts, after the proof check, since the client itself has no notion
// of "when the proof was submitted".
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
	if cs.IsFrozen() {
		return errorsmod.Wrap(ErrInvalidClientState, "cannot verify membership: client is frozen")
	}

	consState, ok := ctx.GetConsensusState(clientID, height)
	if !ok {
		return errorsmod.Wrapf(ErrInvalidConsensusState, "no consensus state at height %s", height)
	}

	return verifyProof(cs.ProofSpecs, consState.GetRoot(), splitPath(string(path)), proof, value)
}

// VerifyNonMembership implements exported.ClientState.
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
	if cs.IsFrozen() {
		return errorsmod.Wrap(ErrInvalidClientState, "cannot verify non-membership: client is frozen")
	}

	consState, ok := ctx.GetConsensusState(clientID, height)
	if !ok {
		return errorsmod.Wrapf(ErrInvalidConsensusState, "no consensus state at height %s", height)
	}

	commitmentProof := &ics23.CommitmentProof{}
	if err := proto.Unmarshal(proof, commitmentProof); err != nil {
		return errorsmod.Wrap(ErrInvalidProof, "failed to unmarshal commitment proof: "+err.Error())
	}

	spec := ics23.IavlSpec
	if len(cs.ProofSpecs) > 0 {
		spec = cs.ProofSpecs[0]
	}

	if !ics23.VerifyNonMembership(spec, commitmentProof, consState.GetRoot(), []byte(string(path))) {
		return errorsmod.Wrap(ErrInvalidProof, "non-membership proof did not verify")
	}
	return nil
}

// CheckSubstitute implements exported.ClientState: the subject's chain
// identity, proof specs, and upgrade path must be preserved by the
// substitute (spec §4.2 RecoverClient); everything else (trust level,
// periods, heights) is expected to differ and is not compared.
func (cs *ClientState) CheckSubstitute(substitute exported.ClientState) error {
	sub, ok := substitute.(*ClientState)
	if !ok {
		return errorsmod.Wrapf(ErrInvalidClientState, "substitute is not a %s client", ClientType)
	}
	if sub.ChainID != cs.ChainID {
		return errorsmod.Wrapf(ErrInvalidClientState, "substitute chain id %q does not match subject chain id %q", sub.ChainID, cs.ChainID)
	}
	if !reflect.DeepEqual(sub.ProofSpecs, cs.ProofSpecs) {
		return errorsmod.Wrap(ErrInvalidClientState, "substitute proof specs do not match subject proof specs")
	}
	if !reflect.DeepEqual(sub.UpgradePath, cs.UpgradePath) {
		return errorsmod.Wrap(ErrInvalidClientState, "substitute upgrade path does not match subject upgrade path")
	}
	return nil
}

// verifyProof checks a single ICS-23 commitment proof of value at the
// concatenated path against root. The host exposes one flat, prefixed KV
// space rather than a nested multi-store (spec §9 design note on host
// simplicity), so unlike a full Cosmos SDK IAVL+multistore proof chain,
// one CommitmentProof against one root is always sufficient here.
func verifyProof(specs []*ics23.ProofSpec, root []byte, pathSegments []string, proofBytes, value []byte) error {
	commitmentProof := &ics23.CommitmentProof{}
	if err := proto.Unmarshal(proofBytes, commitmentProof); err != nil {
		return errorsmod.Wrap(ErrInvalidProof, "failed to unmarshal commitment proof: "+err.Error())
	}

	spec := ics23.IavlSpec
	if len(specs) > 0 {
		spec = specs[0]
	}

	key := []byte(joinPath(pathSegments))
	if !ics23.VerifyMembership(spec, commitmentProof, root, key, value) {
		return errorsmod.Wrap(ErrInvalidProof, "membership proof did not verify")
	}
	return nil
}

func splitPath(path string) []string {
	return []string{path}
}

func joinPath(segments []string) string {
	var buf bytes.Buffer
	for i, s := range segments {
		if i > 0 {
			buf.WriteByte('/')
		}
		buf.WriteString(s)
	}
	return buf.String()
}

