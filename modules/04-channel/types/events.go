package types

import (
	"encoding/hex"
	"fmt"

	"github.com/cosmosnet/ibc-core-engine/host"
)

const (
	EventTypeOpenInitChannel    = "channel_open_init"
	EventTypeOpenTryChannel     = "channel_open_try"
	EventTypeOpenAckChannel     = "channel_open_ack"
	EventTypeOpenConfirmChannel = "channel_open_confirm"
	EventTypeCloseInitChannel   = "channel_close_init"
	EventTypeCloseConfirmChannel = "channel_close_confirm"
	EventTypeChannelClosed      = "channel_closed"

	EventTypeSendPacket        = "send_packet"
	EventTypeReceivePacket     = "receive_packet"
	EventTypeWriteAcknowledgement = "write_acknowledgement"
	EventTypeAcknowledgePacket = "acknowledge_packet"
	EventTypeTimeoutPacket     = "timeout_packet"
)

func NewMessageEvent() host.Event {
	return host.NewEvent(host.EventTypeMessage, host.Attribute{Key: host.AttributeKeyModule, Value: host.CategoryChannel})
}

func NewOpenInitChannelEvent(portID, channelID, counterpartyPortID, connectionID, version string) host.Event {
	return host.NewEvent(EventTypeOpenInitChannel,
		host.Attribute{Key: host.AttributeKeyPortID, Value: portID},
		host.Attribute{Key: host.AttributeKeyChannelID, Value: channelID},
		host.Attribute{Key: host.AttributeKeyCounterpartyPortID, Value: counterpartyPortID},
		host.Attribute{Key: host.AttributeKeyConnectionIDChannel, Value: connectionID},
		host.Attribute{Key: host.AttributeVersion, Value: version},
	)
}

func NewOpenTryChannelEvent(portID, channelID, counterpartyPortID, counterpartyChannelID, connectionID, version string) host.Event {
	return host.NewEvent(EventTypeOpenTryChannel,
		host.Attribute{Key: host.AttributeKeyPortID, Value: portID},
		host.Attribute{Key: host.AttributeKeyChannelID, Value: channelID},
		host.Attribute{Key: host.AttributeKeyCounterpartyPortID, Value: counterpartyPortID},
		host.Attribute{Key: host.AttributeKeyCounterpartyChannelID, Value: counterpartyChannelID},
		host.Attribute{Key: host.AttributeKeyConnectionIDChannel, Value: connectionID},
		host.Attribute{Key: host.AttributeVersion, Value: version},
	)
}

func NewOpenAckChannelEvent(portID, channelID, counterpartyPortID, counterpartyChannelID, connectionID string) host.Event {
	return host.NewEvent(EventTypeOpenAckChannel,
		host.Attribute{Key: host.AttributeKeyPortID, Value: portID},
		host.Attribute{Key: host.AttributeKeyChannelID, Value: channelID},
		host.Attribute{Key: host.AttributeKeyCounterpartyPortID, Value: counterpartyPortID},
		host.Attribute{Key: host.AttributeKeyCounterpartyChannelID, Value: counterpartyChannelID},
		host.Attribute{Key: host.AttributeKeyConnectionIDChannel, Value: connectionID},
	)
}

func NewOpenConfirmChannelEvent(portID, channelID, counterpartyPortID, counterpartyChannelID, connectionID string) host.Event {
	return host.NewEvent(EventTypeOpenConfirmChannel,
		host.Attribute{Key: host.AttributeKeyPortID, Value: portID},
		host.Attribute{Key: host.AttributeKeyChannelID, Value: channelID},
		host.Attribute{Key: host.AttributeKeyCounterpartyPortID, Value: counterpartyPortID},
		host.Attribute{Key: host.AttributeKeyCounterpartyChannelID, Value: counterpartyChannelID},
		host.Attribute{Key: host.AttributeKeyConnectionIDChannel, Value: connectionID},
	)
}

func NewCloseInitChannelEvent(portID, channelID string) host.Event {
	return host.NewEvent(EventTypeCloseInitChannel,
		host.Attribute{Key: host.AttributeKeyPortID, Value: portID},
		host.Attribute{Key: host.AttributeKeyChannelID, Value: channelID},
	)
}

func NewCloseConfirmChannelEvent(portID, channelID string) host.Event {
	return host.NewEvent(EventTypeCloseConfirmChannel,
		host.Attribute{Key: host.AttributeKeyPortID, Value: portID},
		host.Attribute{Key: host.AttributeKeyChannelID, Value: channelID},
	)
}

func NewChannelClosedEvent(portID, channelID string) host.Event {
	return host.NewEvent(EventTypeChannelClosed,
		host.Attribute{Key: host.AttributeKeyPortID, Value: portID},
		host.Attribute{Key: host.AttributeKeyChannelID, Value: channelID},
	)
}

func packetAttributes(p Packet, ordering, connectionID string) []host.Attribute {
	return []host.Attribute{
		{Key: host.AttributeKeySequence, Value: fmt.Sprintf("%d", p.Sequence)},
		{Key: host.AttributeKeyDataHex, Value: hex.EncodeToString(p.Data)},
		{Key: host.AttributeKeySrcPort, Value: p.SourcePort},
		{Key: host.AttributeKeySrcChannel, Value: p.SourceChannel},
		{Key: host.AttributeKeyDstPort, Value: p.DestPort},
		{Key: host.AttributeKeyDstChannel, Value: p.DestChannel},
		{Key: host.AttributeKeyTimeoutHeight, Value: p.TimeoutHeight.String()},
		{Key: host.AttributeKeyTimeoutTimestamp, Value: fmt.Sprintf("%d", p.TimeoutTimestamp)},
		{Key: host.AttributeKeyChannelOrdering, Value: ordering},
		{Key: host.AttributeKeyConnection, Value: connectionID},
	}
}

func NewSendPacketEvent(p Packet, ordering, connectionID string) host.Event {
	return host.NewEvent(EventTypeSendPacket, packetAttributes(p, ordering, connectionID)...)
}

func NewReceivePacketEvent(p Packet, ordering, connectionID string) host.Event {
	return host.NewEvent(EventTypeReceivePacket, packetAttributes(p, ordering, connectionID)...)
}

func NewWriteAcknowledgementEvent(p Packet, ack []byte, connectionID string) host.Event {
	attrs := append(packetAttributes(p, "", connectionID),
		host.Attribute{Key: host.AttributeKeyAck, Value: string(ack)},
		host.Attribute{Key: host.AttributeKeyAckHex, Value: hex.EncodeToString(ack)},
	)
	return host.NewEvent(EventTypeWriteAcknowledgement, attrs...)
}

func NewAcknowledgePacketEvent(p Packet, ordering, connectionID string) host.Event {
	return host.NewEvent(EventTypeAcknowledgePacket, packetAttributes(p, ordering, connectionID)...)
}

func NewTimeoutPacketEvent(p Packet, connectionID string) host.Event {
	return host.NewEvent(EventTypeTimeoutPacket, packetAttributes(p, "", connectionID)...)
}
