package types

import (
	"github.com/cosmosnet/ibc-core-engine/host"
)

const (
	EventTypeOpenInitConnection    = "connection_open_init"
	EventTypeOpenTryConnection     = "connection_open_try"
	EventTypeOpenAckConnection     = "connection_open_ack"
	EventTypeOpenConfirmConnection = "connection_open_confirm"

	AttributeKeyConnectionID             = "connection_id"
	AttributeKeyClientID                 = "client_id"
	AttributeKeyCounterpartyClientID     = "counterparty_client_id"
	AttributeKeyCounterpartyConnectionID = "counterparty_connection_id"
)

func NewMessageEvent() host.Event {
	return host.NewEvent(host.EventTypeMessage, host.Attribute{Key: host.AttributeKeyModule, Value: host.CategoryConnection})
}

func NewOpenInitConnectionEvent(connectionID, clientID, counterpartyClientID string) host.Event {
	return host.NewEvent(EventTypeOpenInitConnection,
		host.Attribute{Key: AttributeKeyConnectionID, Value: connectionID},
		host.Attribute{Key: AttributeKeyClientID, Value: clientID},
		host.Attribute{Key: AttributeKeyCounterpartyClientID, Value: counterpartyClientID},
	)
}

func NewOpenTryConnectionEvent(connectionID, clientID, counterpartyClientID, counterpartyConnectionID string) host.Event {
	return host.NewEvent(EventTypeOpenTryConnection,
		host.Attribute{Key: AttributeKeyConnectionID, Value: connectionID},
		host.Attribute{Key: AttributeKeyClientID, Value: clientID},
		host.Attribute{Key: AttributeKeyCounterpartyClientID, Value: counterpartyClientID},
		host.Attribute{Key: AttributeKeyCounterpartyConnectionID, Value: counterpartyConnectionID},
	)
}

func NewOpenAckConnectionEvent(connectionID, clientID, counterpartyClientID, counterpartyConnectionID string) host.Event {
	return host.NewEvent(EventTypeOpenAckConnection,
		host.Attribute{Key: AttributeKeyConnectionID, Value: connectionID},
		host.Attribute{Key: AttributeKeyClientID, Value: clientID},
		host.Attribute{Key: AttributeKeyCounterpartyClientID, Value: counterpartyClientID},
		host.Attribute{Key: AttributeKeyCounterpartyConnectionID, Value: counterpartyConnectionID},
	)
}

func NewOpenConfirmConnectionEvent(connectionID, clientID, counterpartyClientID, counterpartyConnectionID string) host.Event {
	return host.NewEvent(EventTypeOpenConfirmConnection,
		host.Attribute{Key: AttributeKeyConnectionID, Value: connectionID},
		host.Attribute{Key: AttributeKeyClientID, Value: clientID},
		host.Attribute{Key: AttributeKeyCounterpartyClientID, Value: counterpartyClientID},
		host.Attribute{Key: AttributeKeyCounterpartyConnectionID, Value: counterpartyConnectionID},
	)
}
