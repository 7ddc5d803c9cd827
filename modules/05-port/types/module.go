// Package types defines the capability handle applications present to the
// channel subsystem (spec §4.4 "Module callbacks", §9 "pass them as
// capability handles — a small vtable").
package types

import (
	channeltypes "github.com/cosmosnet/ibc-core-engine/modules/04-channel/types"
)

// ModuleCallbacks is the vtable a port-bound application module implements.
// Validate callbacks may not mutate host state; execute callbacks may
// return extra events and log lines appended to the emitted transaction
// output, and may reject the transition with an application-level error
// (spec §4.4).
type ModuleCallbacks interface {
	OnChanOpenInitValidate(portID, channelID string, channel channeltypes.ChannelEnd, version string) error
	OnChanOpenInitExecute(portID, channelID string, channel channeltypes.ChannelEnd, version string) (string, []CallbackEvent, error)

	OnChanOpenTryValidate(portID, channelID string, channel channeltypes.ChannelEnd, counterpartyVersion string) error
	OnChanOpenTryExecute(portID, channelID string, channel channeltypes.ChannelEnd, counterpartyVersion string) (string, []CallbackEvent, error)

	OnChanOpenAckValidate(portID, channelID, counterpartyVersion string) error
	OnChanOpenAckExecute(portID, channelID, counterpartyVersion string) ([]CallbackEvent, error)

	OnChanOpenConfirmValidate(portID, channelID string) error
	OnChanOpenConfirmExecute(portID, channelID string) ([]CallbackEvent, error)

	OnChanCloseInitValidate(portID, channelID string) error
	OnChanCloseInitExecute(portID, channelID string) ([]CallbackEvent, error)

	OnChanCloseConfirmValidate(portID, channelID string) error
	OnChanCloseConfirmExecute(portID, channelID string) ([]CallbackEvent, error)

	// OnRecvPacketExecute cannot fail (spec §4.5 step 7): application
	// errors are reported as an error-acknowledgement, not a Go error.
	OnRecvPacketExecute(packet channeltypes.Packet) (channeltypes.Acknowledgement, []CallbackEvent)

	OnAcknowledgementPacketExecute(packet channeltypes.Packet, ack channeltypes.Acknowledgement) ([]CallbackEvent, error)

	OnTimeoutPacketExecute(packet channeltypes.Packet) ([]CallbackEvent, error)
}

// CallbackEvent is an application-level event a module callback appends to
// a transaction's output alongside the core's own events (spec §4.4
// "extra events and log lines").
type CallbackEvent struct {
	Type       string
	Attributes map[string]string
}
