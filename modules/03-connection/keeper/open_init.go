package keeper

import (
	"github.com/cosmosnet/ibc-core-engine/host"
	connectiontypes "github.com/cosmosnet/ibc-core-engine/modules/03-connection/types"
)

// ValidateConnectionOpenInit requires the local client to be active (spec §4.3).
func (k Keeper) ValidateConnectionOpenInit(h host.ReadHost, msg connectiontypes.MsgConnectionOpenInit) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	_, err := k.requireActiveClient(h, msg.ClientID)
	return err
}

// ExecuteConnectionOpenInit allocates a connection id, persists the Init
// connection end, and emits OpenInitConnection (spec §4.3).
func (k Keeper) ExecuteConnectionOpenInit(h host.WriteHost, msg connectiontypes.MsgConnectionOpenInit) (string, error) {
	if _, err := k.requireActiveClient(h, msg.ClientID); err != nil {
		return "", err
	}

	version := connectiontypes.DefaultIBCVersion
	if msg.Version != nil {
		version = *msg.Version
	}

	connectionID := k.generateConnectionIdentifier(h)
	conn := connectiontypes.ConnectionEnd{
		State:        connectiontypes.Init,
		ClientID:     msg.ClientID,
		Counterparty: msg.Counterparty,
		Versions:     []connectiontypes.Version{version},
		DelayPeriod:  msg.DelayPeriod,
	}
	k.SetConnection(h, connectionID, conn)

	h.Logger().Info("connection init", "connection_id", connectionID, "client_id", msg.ClientID)
	h.EmitEvent(connectiontypes.NewMessageEvent())
	h.EmitEvent(connectiontypes.NewOpenInitConnectionEvent(connectionID, msg.ClientID, msg.Counterparty.ClientID))

	return connectionID, nil
}
