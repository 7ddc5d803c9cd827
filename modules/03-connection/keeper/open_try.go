package keeper

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/cosmosnet/ibc-core-engine/host"
	connectiontypes "github.com/cosmosnet/ibc-core-engine/modules/03-connection/types"
)

// ValidateConnectionOpenTry picks a common version, validates B's
// self-client description as A claims to see it, and verifies A's three
// proofs against B's client tracking A (spec §4.3 OpenTry).
func (k Keeper) ValidateConnectionOpenTry(h host.ReadHost, msg connectiontypes.MsgConnectionOpenTry) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}

	if msg.ConsensusHeight.GT(h.HostHeight()) {
		return errorsmod.Wrapf(connectiontypes.ErrInvalidConsensusHeight,
			"consensus height %s exceeds current host height %s", msg.ConsensusHeight, h.HostHeight())
	}

	if _, err := connectiontypes.PickVersion(connectiontypes.GetSupportedVersions(), msg.CounterpartyVersions); err != nil {
		return err
	}

	if err := k.validateSelfClient(h, msg.ClientState); err != nil {
		return err
	}

	if _, err := k.requireActiveClient(h, msg.ClientID); err != nil {
		return err
	}

	return k.verifyOpenTryProofs(h, msg)
}

func (k Keeper) verifyOpenTryProofs(h host.ReadHost, msg connectiontypes.MsgConnectionOpenTry) error {
	expectedConn := connectiontypes.ConnectionEnd{
		State:    connectiontypes.Init,
		ClientID: msg.Counterparty.ClientID,
		Counterparty: connectiontypes.Counterparty{
			ClientID: msg.ClientID,
			Prefix:   h.CommitmentPrefix(),
		},
		Versions: msg.CounterpartyVersions,
	}

	connPath := host.PrefixedPath(msg.Counterparty.Prefix, host.FullConnectionPath(msg.Counterparty.ConnectionID))
	if err := k.ClientKeeper.VerifyMembership(h, msg.ClientID, msg.ProofHeight, 0, 0, msg.ProofInit, connPath, expectedConn.CommitmentBytes()); err != nil {
		return errorsmod.Wrap(connectiontypes.ErrInvalidProof, "connection init proof: "+err.Error())
	}

	// (b) A's stored client-of-B must equal the client state A claims to
	// track B with in msg.ClientState.
	clientPath := host.PrefixedPath(msg.Counterparty.Prefix, host.FullClientStatePath(msg.Counterparty.ClientID))
	if err := k.ClientKeeper.VerifyMembership(h, msg.ClientID, msg.ProofHeight, 0, 0, msg.ProofClient, clientPath, msg.ClientState.CommitmentBytes()); err != nil {
		return errorsmod.Wrap(connectiontypes.ErrInvalidProof, "counterparty client state proof: "+err.Error())
	}

	// (c) A's stored consensus-of-B at consensus_height must equal B's own
	// recollection of itself at that height.
	selfConsState, err := k.ClientKeeper.GetSelfConsensusState(h, msg.ConsensusHeight)
	if err != nil {
		return errorsmod.Wrap(connectiontypes.ErrInvalidConsensusHeight, err.Error())
	}
	consPath := host.PrefixedPath(msg.Counterparty.Prefix, host.FullConsensusStatePath(msg.Counterparty.ClientID, msg.ConsensusHeight.RevisionNumber, msg.ConsensusHeight.RevisionHeight))
	if err := k.ClientKeeper.VerifyMembership(h, msg.ClientID, msg.ProofHeight, 0, 0, msg.ProofConsensus, consPath, selfConsState.CommitmentBytes()); err != nil {
		return errorsmod.Wrap(connectiontypes.ErrInvalidProof, "counterparty consensus state proof: "+err.Error())
	}

	return nil
}

// ExecuteConnectionOpenTry allocates a connection id on B, persists
// TryOpen, and emits OpenTryConnection (spec §4.3).
func (k Keeper) ExecuteConnectionOpenTry(h host.WriteHost, msg connectiontypes.MsgConnectionOpenTry) (string, error) {
	version, err := connectiontypes.PickVersion(connectiontypes.GetSupportedVersions(), msg.CounterpartyVersions)
	if err != nil {
		return "", err
	}

	if err := k.verifyOpenTryProofs(h, msg); err != nil {
		return "", err
	}

	connectionID := k.generateConnectionIdentifier(h)
	conn := connectiontypes.ConnectionEnd{
		State:        connectiontypes.TryOpen,
		ClientID:     msg.ClientID,
		Counterparty: msg.Counterparty,
		Versions:     []connectiontypes.Version{version},
		DelayPeriod:  msg.DelayPeriod,
	}
	k.SetConnection(h, connectionID, conn)

	h.Logger().Info("connection try", "connection_id", connectionID, "client_id", msg.ClientID)
	h.EmitEvent(connectiontypes.NewMessageEvent())
	h.EmitEvent(connectiontypes.NewOpenTryConnectionEvent(connectionID, msg.ClientID, msg.Counterparty.ClientID, msg.Counterparty.ConnectionID))

	return connectionID, nil
}
