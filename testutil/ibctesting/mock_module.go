// Package ibctesting is an in-memory two-chain harness exercising the core
// dispatcher end to end (spec §8), the role the teacher's testutil/simapp
// and testutil/integration packages play for their own baseapp-level
// integration tests, scaled down to the host-agnostic core: no baseapp, no
// real consensus, just two host.memhost stores linked by mock clients.
package ibctesting

import (
	channeltypes "github.com/cosmosnet/ibc-core-engine/modules/04-channel/types"
	porttypes "github.com/cosmosnet/ibc-core-engine/modules/05-port/types"
)

// MockPortID is the port every TestChain binds its MockModule to.
const MockPortID = "mock"

// MockModule is the trivial application module bound to MockPortID: it
// accepts every channel handshake step unconditionally, echoes received
// packet data back as a successful acknowledgement, and records what
// happened so tests can assert on it. It plays the same role ibc-go's
// testing/mock module plays for its own channel/packet test suite.
type MockModule struct {
	Received []channeltypes.Packet
	Acked    []channeltypes.Packet
	TimedOut []channeltypes.Packet
}

// NewMockModule returns a fresh, empty MockModule.
func NewMockModule() *MockModule {
	return &MockModule{}
}

func (m *MockModule) OnChanOpenInitValidate(portID, channelID string, channel channeltypes.ChannelEnd, version string) error {
	return nil
}

func (m *MockModule) OnChanOpenInitExecute(portID, channelID string, channel channeltypes.ChannelEnd, version string) (string, []porttypes.CallbackEvent, error) {
	if version == "" {
		version = "mock-1"
	}
	return version, nil, nil
}

func (m *MockModule) OnChanOpenTryValidate(portID, channelID string, channel channeltypes.ChannelEnd, counterpartyVersion string) error {
	return nil
}

func (m *MockModule) OnChanOpenTryExecute(portID, channelID string, channel channeltypes.ChannelEnd, counterpartyVersion string) (string, []porttypes.CallbackEvent, error) {
	return counterpartyVersion, nil, nil
}

func (m *MockModule) OnChanOpenAckValidate(portID, channelID, counterpartyVersion string) error {
	return nil
}

func (m *MockModule) OnChanOpenAckExecute(portID, channelID, counterpartyVersion string) ([]porttypes.CallbackEvent, error) {
	return nil, nil
}

func (m *MockModule) OnChanOpenConfirmValidate(portID, channelID string) error { return nil }

func (m *MockModule) OnChanOpenConfirmExecute(portID, channelID string) ([]porttypes.CallbackEvent, error) {
	return nil, nil
}

func (m *MockModule) OnChanCloseInitValidate(portID, channelID string) error { return nil }

func (m *MockModule) OnChanCloseInitExecute(portID, channelID string) ([]porttypes.CallbackEvent, error) {
	return nil, nil
}

func (m *MockModule) OnChanCloseConfirmValidate(portID, channelID string) error { return nil }

func (m *MockModule) OnChanCloseConfirmExecute(portID, channelID string) ([]porttypes.CallbackEvent, error) {
	return nil, nil
}

// OnRecvPacketExecute always succeeds, echoing the packet's data back as
// the acknowledgement result (spec §4.5 step 7: this callback cannot
// fail).
func (m *MockModule) OnRecvPacketExecute(packet channeltypes.Packet) (channeltypes.Acknowledgement, []porttypes.CallbackEvent) {
	m.Received = append(m.Received, packet)
	return channeltypes.NewResultAcknowledgement(packet.Data), nil
}

func (m *MockModule) OnAcknowledgementPacketExecute(packet channeltypes.Packet, ack channeltypes.Acknowledgement) ([]porttypes.CallbackEvent, error) {
	m.Acked = append(m.Acked, packet)
	return nil, nil
}

func (m *MockModule) OnTimeoutPacketExecute(packet channeltypes.Packet) ([]porttypes.CallbackEvent, error) {
	m.TimedOut = append(m.TimedOut, packet)
	return nil, nil
}
