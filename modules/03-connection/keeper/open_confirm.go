package keeper

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/cosmosnet/ibc-core-engine/host"
	connectiontypes "github.com/cosmosnet/ibc-core-engine/modules/03-connection/types"
)

// ValidateConnectionOpenConfirm requires B's connection to be in TryOpen and
// verifies that A's side has already transitioned to Open (spec §4.3
// OpenConfirm).
func (k Keeper) ValidateConnectionOpenConfirm(h host.ReadHost, msg connectiontypes.MsgConnectionOpenConfirm) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}

	conn, err := k.MustGetConnection(h, msg.ConnectionID)
	if err != nil {
		return err
	}
	if conn.State != connectiontypes.TryOpen {
		return errorsmod.Wrapf(connectiontypes.ErrInvalidConnectionState, "connection %s is in state %s, expected TryOpen", msg.ConnectionID, conn.State)
	}

	return k.verifyOpenConfirmProof(h, conn, msg)
}

func (k Keeper) verifyOpenConfirmProof(h host.ReadHost, conn connectiontypes.ConnectionEnd, msg connectiontypes.MsgConnectionOpenConfirm) error {
	version, err := conn.GetVersion()
	if err != nil {
		return err
	}

	expectedConn := connectiontypes.ConnectionEnd{
		State:    connectiontypes.Open,
		ClientID: conn.Counterparty.ClientID,
		Counterparty: connectiontypes.Counterparty{
			ClientID:     conn.ClientID,
			ConnectionID: msg.ConnectionID,
			Prefix:       h.CommitmentPrefix(),
		},
		Versions: []connectiontypes.Version{version},
	}

	connPath := host.PrefixedPath(conn.Counterparty.Prefix, host.FullConnectionPath(conn.Counterparty.ConnectionID))
	if err := k.ClientKeeper.VerifyMembership(h, conn.ClientID, msg.ProofHeight, 0, 0, msg.ProofAck, connPath, expectedConn.CommitmentBytes()); err != nil {
		return errorsmod.Wrap(connectiontypes.ErrInvalidProof, "connection open proof: "+err.Error())
	}
	return nil
}

// ExecuteConnectionOpenConfirm transitions B's connection to Open (spec
// §4.3).
func (k Keeper) ExecuteConnectionOpenConfirm(h host.WriteHost, msg connectiontypes.MsgConnectionOpenConfirm) error {
	conn, err := k.MustGetConnection(h, msg.ConnectionID)
	if err != nil {
		return err
	}
	if conn.State != connectiontypes.TryOpen {
		return errorsmod.Wrapf(connectiontypes.ErrInvalidConnectionState, "connection %s is in state %s, expected TryOpen", msg.ConnectionID, conn.State)
	}

	if err := k.verifyOpenConfirmProof(h, conn, msg); err != nil {
		return err
	}

	conn.State = connectiontypes.Open
	k.SetConnection(h, msg.ConnectionID, conn)

	h.Logger().Info("connection confirm", "connection_id", msg.ConnectionID)
	h.EmitEvent(connectiontypes.NewMessageEvent())
	h.EmitEvent(connectiontypes.NewOpenConfirmConnectionEvent(msg.ConnectionID, conn.ClientID, conn.Counterparty.ClientID, conn.Counterparty.ConnectionID))

	return nil
}
