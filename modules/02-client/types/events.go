package types

import (
	"strings"

	"github.com/cosmosnet/ibc-core-engine/host"
	"github.com/cosmosnet/ibc-core-engine/types"
)

// Event kinds emitted by the client subsystem (spec §4.2, §6).
const (
	EventTypeCreateClient       = "create_client"
	EventTypeUpdateClient       = "update_client"
	EventTypeUpgradeClient      = "upgrade_client"
	EventTypeClientMisbehaviour = "client_misbehaviour"
)

// formatConsensusHeights renders the list of heights at which UpdateClient
// wrote new consensus states as the comma-joined wire format (spec §6, §8
// scenario 1: `consensus_heights=["0-10"]`).
func formatConsensusHeights(heights []types.Height) string {
	parts := make([]string, len(heights))
	for i, h := range heights {
		parts[i] = h.String()
	}
	return strings.Join(parts, ",")
}

// NewCreateClientEvent builds the CreateClient event.
func NewCreateClientEvent(clientID, clientType string, consensusHeight types.Height) host.Event {
	return host.NewEvent(EventTypeCreateClient,
		host.NewAttribute(host.AttributeKeyClientID, clientID),
		host.NewAttribute(host.AttributeKeyClientType, clientType),
		host.NewAttribute(host.AttributeKeyConsensusHeight, consensusHeight.String()),
	)
}

// NewUpdateClientEvent builds the UpdateClient event.
func NewUpdateClientEvent(clientID, clientType string, consensusHeights []types.Height) host.Event {
	return host.NewEvent(EventTypeUpdateClient,
		host.NewAttribute(host.AttributeKeyClientID, clientID),
		host.NewAttribute(host.AttributeKeyClientType, clientType),
		host.NewAttribute(host.AttributeKeyConsensusHeights, formatConsensusHeights(consensusHeights)),
	)
}

// NewUpgradeClientEvent builds the UpgradeClient event.
func NewUpgradeClientEvent(clientID, clientType string, consensusHeight types.Height) host.Event {
	return host.NewEvent(EventTypeUpgradeClient,
		host.NewAttribute(host.AttributeKeyClientID, clientID),
		host.NewAttribute(host.AttributeKeyClientType, clientType),
		host.NewAttribute(host.AttributeKeyConsensusHeight, consensusHeight.String()),
	)
}

// NewClientMisbehaviourEvent builds the ClientMisbehaviour event.
func NewClientMisbehaviourEvent(clientID, clientType string) host.Event {
	return host.NewEvent(EventTypeClientMisbehaviour,
		host.NewAttribute(host.AttributeKeyClientID, clientID),
		host.NewAttribute(host.AttributeKeyClientType, clientType),
	)
}

// NewMessageEvent builds the mandatory per-transaction preamble event
// (spec §4.6).
func NewMessageEvent() host.Event {
	return host.NewEvent(host.EventTypeMessage, host.NewAttribute(host.AttributeKeyModule, host.CategoryClient))
}
