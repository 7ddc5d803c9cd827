// Package keeper implements the channel handshake (spec §4.4), close (spec
// §4.4), and packet lifecycle (spec §4.5) handlers.
package keeper

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/cosmosnet/ibc-core-engine/exported"
	"github.com/cosmosnet/ibc-core-engine/host"
	channeltypes "github.com/cosmosnet/ibc-core-engine/modules/04-channel/types"
	connectionkeeper "github.com/cosmosnet/ibc-core-engine/modules/03-connection/keeper"
	connectiontypes "github.com/cosmosnet/ibc-core-engine/modules/03-connection/types"
	portkeeper "github.com/cosmosnet/ibc-core-engine/modules/05-port/keeper"
	ibctypes "github.com/cosmosnet/ibc-core-engine/types"
)

// Keeper owns the channel and packet subsystems. It depends on the
// connection keeper to resolve connection ends (and, through it, the
// client keeper) and on the port router to resolve module callbacks,
// mirroring how connection.Keeper depends on clientkeeper.Keeper.
type Keeper struct {
	ConnectionKeeper connectionkeeper.Keeper
	Router           *portkeeper.Router
}

func NewKeeper(connectionKeeper connectionkeeper.Keeper, router *portkeeper.Router) Keeper {
	return Keeper{ConnectionKeeper: connectionKeeper, Router: router}
}

// GetChannel fetches and type-asserts the channel end stored at
// channelEnds/ports/{p}/channels/{c}.
func (k Keeper) GetChannel(h host.ReadHost, portID, channelID string) (channeltypes.ChannelEnd, bool) {
	v, ok := h.Get(host.FullChannelPath(portID, channelID))
	if !ok {
		return channeltypes.ChannelEnd{}, false
	}
	ch, ok := v.(channeltypes.ChannelEnd)
	return ch, ok
}

func (k Keeper) MustGetChannel(h host.ReadHost, portID, channelID string) (channeltypes.ChannelEnd, error) {
	ch, ok := k.GetChannel(h, portID, channelID)
	if !ok {
		return channeltypes.ChannelEnd{}, errorsmod.Wrapf(channeltypes.ErrChannelNotFound, "port %s channel %s not found", portID, channelID)
	}
	return ch, nil
}

func (k Keeper) SetChannel(h host.WriteHost, portID, channelID string, channel channeltypes.ChannelEnd) {
	h.Set(host.FullChannelPath(portID, channelID), channel)
}

func (k Keeper) generateChannelIdentifier(h host.WriteHost) string {
	counter := h.IncrementChannelCounter()
	return ibctypes.FormatChannelID(counter)
}

func (k Keeper) GetNextSequenceSend(h host.ReadHost, portID, channelID string) (uint64, bool) {
	return k.getSequence(h, host.NextSequenceSendPath(portID, channelID))
}

func (k Keeper) SetNextSequenceSend(h host.WriteHost, portID, channelID string, seq uint64) {
	h.Set(host.NextSequenceSendPath(portID, channelID), seq)
}

func (k Keeper) GetNextSequenceRecv(h host.ReadHost, portID, channelID string) (uint64, bool) {
	return k.getSequence(h, host.NextSequenceRecvPath(portID, channelID))
}

func (k Keeper) SetNextSequenceRecv(h host.WriteHost, portID, channelID string, seq uint64) {
	h.Set(host.NextSequenceRecvPath(portID, channelID), seq)
}

func (k Keeper) GetNextSequenceAck(h host.ReadHost, portID, channelID string) (uint64, bool) {
	return k.getSequence(h, host.NextSequenceAckPath(portID, channelID))
}

func (k Keeper) SetNextSequenceAck(h host.WriteHost, portID, channelID string, seq uint64) {
	h.Set(host.NextSequenceAckPath(portID, channelID), seq)
}

func (k Keeper) getSequence(h host.ReadHost, path string) (uint64, bool) {
	v, ok := h.Get(path)
	if !ok {
		return 0, false
	}
	seq, ok := v.(uint64)
	return seq, ok
}

func (k Keeper) GetPacketCommitment(h host.ReadHost, portID, channelID string, sequence uint64) ([]byte, bool) {
	v, ok := h.Get(host.PacketCommitmentPath(portID, channelID, sequence))
	if !ok {
		return nil, false
	}
	b, ok := v.([]byte)
	return b, ok
}

func (k Keeper) SetPacketCommitment(h host.WriteHost, portID, channelID string, sequence uint64, commitment []byte) {
	h.Set(host.PacketCommitmentPath(portID, channelID, sequence), commitment)
}

func (k Keeper) DeletePacketCommitment(h host.WriteHost, portID, channelID string, sequence uint64) {
	h.Delete(host.PacketCommitmentPath(portID, channelID, sequence))
}

func (k Keeper) HasPacketReceipt(h host.ReadHost, portID, channelID string, sequence uint64) bool {
	return h.Has(host.PacketReceiptPath(portID, channelID, sequence))
}

func (k Keeper) SetPacketReceipt(h host.WriteHost, portID, channelID string, sequence uint64) {
	h.Set(host.PacketReceiptPath(portID, channelID, sequence), channeltypes.ReceiptOk)
}

func (k Keeper) HasPacketAcknowledgement(h host.ReadHost, portID, channelID string, sequence uint64) bool {
	return h.Has(host.PacketAcknowledgementPath(portID, channelID, sequence))
}

func (k Keeper) SetPacketAcknowledgement(h host.WriteHost, portID, channelID string, sequence uint64, ackHash []byte) {
	h.Set(host.PacketAcknowledgementPath(portID, channelID, sequence), ackHash)
}

// connectionForChannel resolves and validates the single connection hop a
// channel message requires (spec §4.4 "require connection_hops.len()==1;
// load the connection; require it Open; load the connection's client;
// require Active").
func (k Keeper) connectionForChannel(h host.ReadHost, connectionHops []string) (connectiontypes.ConnectionEnd, exported.ClientState, error) {
	if len(connectionHops) != 1 {
		return connectiontypes.ConnectionEnd{}, nil, errorsmod.Wrapf(channeltypes.ErrInvalidChannel, "connection hops must have exactly one entry, got %d", len(connectionHops))
	}
	conn, err := k.ConnectionKeeper.MustGetConnection(h, connectionHops[0])
	if err != nil {
		return connectiontypes.ConnectionEnd{}, nil, err
	}
	if conn.State != connectiontypes.Open {
		return connectiontypes.ConnectionEnd{}, nil, errorsmod.Wrapf(channeltypes.ErrConnectionNotOpen, "connection %s is in state %s, expected Open", connectionHops[0], conn.State)
	}
	clientState, err := k.ConnectionKeeper.ClientKeeper.MustGetClientState(h, conn.ClientID)
	if err != nil {
		return connectiontypes.ConnectionEnd{}, nil, err
	}
	status, err := k.ConnectionKeeper.ClientKeeper.ClientStatus(h, conn.ClientID)
	if err != nil {
		return connectiontypes.ConnectionEnd{}, nil, err
	}
	if status != exported.Active {
		return connectiontypes.ConnectionEnd{}, nil, errorsmod.Wrapf(channeltypes.ErrClientNotActive, "client %s has status %s", conn.ClientID, status)
	}
	return conn, clientState, nil
}
