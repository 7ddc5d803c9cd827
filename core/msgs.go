// Package core implements the dispatcher (spec §4.1): a MsgEnvelope tagged
// union over {Client, Connection, Channel, Packet} messages and the
// validate;execute sequence. Port/module resolution for channel and packet
// messages happens inside the channel keeper, through the port router.
package core

import (
	clienttypes "github.com/cosmosnet/ibc-core-engine/modules/02-client/types"
	connectiontypes "github.com/cosmosnet/ibc-core-engine/modules/03-connection/types"
	channeltypes "github.com/cosmosnet/ibc-core-engine/modules/04-channel/types"
)

// MsgEnvelope is the tagged union every inbound message is wrapped in
// before dispatch. Exactly one field is non-nil. This plays the role of the
// protobuf `Any`-wrapped wire message after its type_url has already been
// resolved to a concrete Go type (spec §6 "Wire formats").
type MsgEnvelope struct {
	CreateClient       *clienttypes.MsgCreateClient
	UpdateClient       *clienttypes.MsgUpdateClient
	UpgradeClient      *clienttypes.MsgUpgradeClient
	SubmitMisbehaviour *clienttypes.MsgUpdateClient // aliased to UpdateClient, spec §6

	ConnectionOpenInit    *connectiontypes.MsgConnectionOpenInit
	ConnectionOpenTry     *connectiontypes.MsgConnectionOpenTry
	ConnectionOpenAck     *connectiontypes.MsgConnectionOpenAck
	ConnectionOpenConfirm *connectiontypes.MsgConnectionOpenConfirm

	ChannelOpenInit    *channeltypes.MsgChannelOpenInit
	ChannelOpenTry     *channeltypes.MsgChannelOpenTry
	ChannelOpenAck     *channeltypes.MsgChannelOpenAck
	ChannelOpenConfirm *channeltypes.MsgChannelOpenConfirm
	ChannelCloseInit   *channeltypes.MsgChannelCloseInit
	ChannelCloseConfirm *channeltypes.MsgChannelCloseConfirm

	RecvPacket     *channeltypes.MsgRecvPacket
	Acknowledgement *channeltypes.MsgAcknowledgement
	Timeout         *channeltypes.MsgTimeout
	TimeoutOnClose  *channeltypes.MsgTimeoutOnClose
}

// Category classifies an envelope for the mandatory Message event preamble
// (spec §4.6).
type Category int

const (
	CategoryUnknown Category = iota
	CategoryClient
	CategoryConnection
	CategoryChannel
)

// Category reports which subsystem owns the populated field, or
// CategoryUnknown if the envelope carries nothing (spec §7 "Routing
// errors — UnknownMessageType").
func (e MsgEnvelope) Category() Category {
	switch {
	case e.CreateClient != nil, e.UpdateClient != nil, e.UpgradeClient != nil, e.SubmitMisbehaviour != nil:
		return CategoryClient
	case e.ConnectionOpenInit != nil, e.ConnectionOpenTry != nil, e.ConnectionOpenAck != nil, e.ConnectionOpenConfirm != nil:
		return CategoryConnection
	case e.ChannelOpenInit != nil, e.ChannelOpenTry != nil, e.ChannelOpenAck != nil, e.ChannelOpenConfirm != nil,
		e.ChannelCloseInit != nil, e.ChannelCloseConfirm != nil,
		e.RecvPacket != nil, e.Acknowledgement != nil, e.Timeout != nil, e.TimeoutOnClose != nil:
		return CategoryChannel
	default:
		return CategoryUnknown
	}
}

// PortID returns the local port id a Channel-category message's proof
// chain hangs off of, for a host's own routing; the dispatcher does not
// call it.
// Packet messages carry the port on the packet itself, not the envelope.
func (e MsgEnvelope) PortID() (string, bool) {
	switch {
	case e.ChannelOpenInit != nil:
		return e.ChannelOpenInit.PortID, true
	case e.ChannelOpenTry != nil:
		return e.ChannelOpenTry.PortID, true
	case e.ChannelOpenAck != nil:
		return e.ChannelOpenAck.PortID, true
	case e.ChannelOpenConfirm != nil:
		return e.ChannelOpenConfirm.PortID, true
	case e.ChannelCloseInit != nil:
		return e.ChannelCloseInit.PortID, true
	case e.ChannelCloseConfirm != nil:
		return e.ChannelCloseConfirm.PortID, true
	case e.RecvPacket != nil:
		return e.RecvPacket.Packet.DestPort, true
	case e.Acknowledgement != nil:
		return e.Acknowledgement.Packet.SourcePort, true
	case e.Timeout != nil:
		return e.Timeout.Packet.SourcePort, true
	case e.TimeoutOnClose != nil:
		return e.TimeoutOnClose.Packet.SourcePort, true
	default:
		return "", false
	}
}
