package keeper

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/cosmosnet/ibc-core-engine/host"
	connectiontypes "github.com/cosmosnet/ibc-core-engine/modules/03-connection/types"
)

// ValidateConnectionOpenAck requires A's connection to be in Init and
// verifies B's TryOpen end plus A's client/consensus as stored on B (spec
// §4.3 OpenAck).
func (k Keeper) ValidateConnectionOpenAck(h host.ReadHost, msg connectiontypes.MsgConnectionOpenAck) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}

	conn, err := k.MustGetConnection(h, msg.ConnectionID)
	if err != nil {
		return err
	}
	if conn.State != connectiontypes.Init {
		return errorsmod.Wrapf(connectiontypes.ErrInvalidConnectionState, "connection %s is in state %s, expected Init", msg.ConnectionID, conn.State)
	}

	if msg.ConsensusHeight.GT(h.HostHeight()) {
		return errorsmod.Wrapf(connectiontypes.ErrInvalidConsensusHeight,
			"consensus height %s exceeds current host height %s", msg.ConsensusHeight, h.HostHeight())
	}

	if err := k.validateSelfClient(h, msg.ClientState); err != nil {
		return err
	}

	if _, err := k.requireActiveClient(h, conn.ClientID); err != nil {
		return err
	}

	return k.verifyOpenAckProofs(h, conn, msg)
}

func (k Keeper) verifyOpenAckProofs(h host.ReadHost, conn connectiontypes.ConnectionEnd, msg connectiontypes.MsgConnectionOpenAck) error {
	expectedConn := connectiontypes.ConnectionEnd{
		State:    connectiontypes.TryOpen,
		ClientID: conn.Counterparty.ClientID,
		Counterparty: connectiontypes.Counterparty{
			ClientID:     conn.ClientID,
			ConnectionID: msg.ConnectionID,
			Prefix:       h.CommitmentPrefix(),
		},
		Versions: []connectiontypes.Version{msg.Version},
	}

	connPath := host.PrefixedPath(conn.Counterparty.Prefix, host.FullConnectionPath(msg.CounterpartyConnectionID))
	if err := k.ClientKeeper.VerifyMembership(h, conn.ClientID, msg.ProofHeight, 0, 0, msg.ProofTry, connPath, expectedConn.CommitmentBytes()); err != nil {
		return errorsmod.Wrap(connectiontypes.ErrInvalidProof, "connection try-open proof: "+err.Error())
	}

	clientPath := host.PrefixedPath(conn.Counterparty.Prefix, host.FullClientStatePath(conn.Counterparty.ClientID))
	if err := k.ClientKeeper.VerifyMembership(h, conn.ClientID, msg.ProofHeight, 0, 0, msg.ProofClient, clientPath, msg.ClientState.CommitmentBytes()); err != nil {
		return errorsmod.Wrap(connectiontypes.ErrInvalidProof, "counterparty client state proof: "+err.Error())
	}

	selfConsState, err := k.ClientKeeper.GetSelfConsensusState(h, msg.ConsensusHeight)
	if err != nil {
		return errorsmod.Wrap(connectiontypes.ErrInvalidConsensusHeight, err.Error())
	}
	consPath := host.PrefixedPath(conn.Counterparty.Prefix, host.FullConsensusStatePath(conn.Counterparty.ClientID, msg.ConsensusHeight.RevisionNumber, msg.ConsensusHeight.RevisionHeight))
	if err := k.ClientKeeper.VerifyMembership(h, conn.ClientID, msg.ProofHeight, 0, 0, msg.ProofConsensus, consPath, selfConsState.CommitmentBytes()); err != nil {
		return errorsmod.Wrap(connectiontypes.ErrInvalidProof, "counterparty consensus state proof: "+err.Error())
	}

	return nil
}

// ExecuteConnectionOpenAck transitions A's connection to Open, sets the
// counterparty connection id, and adopts the negotiated version (spec
// §4.3).
func (k Keeper) ExecuteConnectionOpenAck(h host.WriteHost, msg connectiontypes.MsgConnectionOpenAck) error {
	conn, err := k.MustGetConnection(h, msg.ConnectionID)
	if err != nil {
		return err
	}
	if conn.State != connectiontypes.Init {
		return errorsmod.Wrapf(connectiontypes.ErrInvalidConnectionState, "connection %s is in state %s, expected Init", msg.ConnectionID, conn.State)
	}

	if err := k.verifyOpenAckProofs(h, conn, msg); err != nil {
		return err
	}

	conn.State = connectiontypes.Open
	conn.Counterparty.ConnectionID = msg.CounterpartyConnectionID
	conn.Versions = []connectiontypes.Version{msg.Version}
	k.SetConnection(h, msg.ConnectionID, conn)

	h.Logger().Info("connection ack", "connection_id", msg.ConnectionID)
	h.EmitEvent(connectiontypes.NewMessageEvent())
	h.EmitEvent(connectiontypes.NewOpenAckConnectionEvent(msg.ConnectionID, conn.ClientID, conn.Counterparty.ClientID, conn.Counterparty.ConnectionID))

	return nil
}
