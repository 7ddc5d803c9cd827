package keeper

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/cosmosnet/ibc-core-engine/host"
	channeltypes "github.com/cosmosnet/ibc-core-engine/modules/04-channel/types"
	ibctypes "github.com/cosmosnet/ibc-core-engine/types"
)

// SendPacket is the internal API application modules call to send a packet
// over an Open channel (spec §4.5 "SendPacket" — invoked by application
// modules, not a wire message). It assigns the next sequence, stores the
// packet commitment, and emits SendPacket. Returns the assigned sequence.
func (k Keeper) SendPacket(
	h host.WriteHost,
	sourcePort, sourceChannel string,
	data []byte,
	timeoutHeight ibctypes.Height,
	timeoutTimestamp uint64,
) (uint64, error) {
	if timeoutHeight.IsZero() && timeoutTimestamp == 0 {
		return 0, errorsmod.Wrap(channeltypes.ErrInvalidPacket, "at least one of timeout height or timeout timestamp must be set")
	}

	channel, err := k.MustGetChannel(h, sourcePort, sourceChannel)
	if err != nil {
		return 0, err
	}
	if channel.State != channeltypes.Open {
		return 0, errorsmod.Wrapf(channeltypes.ErrInvalidChannelState, "channel %s/%s is in state %s, expected Open", sourcePort, sourceChannel, channel.State)
	}

	conn, clientState, err := k.connectionForChannel(h, channel.ConnectionHops)
	if err != nil {
		return 0, err
	}

	latest := clientState.LatestHeight()
	if !timeoutHeight.IsZero() && !timeoutHeight.GT(latest) {
		return 0, errorsmod.Wrapf(channeltypes.ErrPacketTimeout, "timeout height %s must exceed the current latest consensus height %s of the client tracking the counterparty", timeoutHeight, latest)
	}
	if timeoutTimestamp != 0 {
		consState, ok := k.ConnectionKeeper.ClientKeeper.GetConsensusState(h, conn.ClientID, latest)
		if ok && timeoutTimestamp <= consState.GetTimestamp() {
			return 0, errorsmod.Wrapf(channeltypes.ErrPacketTimeout, "timeout timestamp %d must exceed the counterparty's timestamp %d at the current latest consensus height", timeoutTimestamp, consState.GetTimestamp())
		}
	}

	sequence, ok := k.GetNextSequenceSend(h, sourcePort, sourceChannel)
	if !ok {
		return 0, errorsmod.Wrapf(channeltypes.ErrInvalidChannel, "no next send sequence for %s/%s", sourcePort, sourceChannel)
	}

	packet := channeltypes.Packet{
		Sequence:         sequence,
		SourcePort:       sourcePort,
		SourceChannel:    sourceChannel,
		DestPort:         channel.Counterparty.PortID,
		DestChannel:      channel.Counterparty.ChannelID,
		Data:             data,
		TimeoutHeight:    timeoutHeight,
		TimeoutTimestamp: timeoutTimestamp,
	}
	if err := packet.ValidateBasic(); err != nil {
		return 0, err
	}

	k.SetNextSequenceSend(h, sourcePort, sourceChannel, sequence+1)
	k.SetPacketCommitment(h, sourcePort, sourceChannel, sequence, channeltypes.CommitPacket(packet))

	h.Logger().Info("send packet", "port_id", sourcePort, "channel_id", sourceChannel, "sequence", sequence)
	h.EmitEvent(channeltypes.NewSendPacketEvent(packet, string(channel.Ordering), channel.ConnectionHops[0]))

	return sequence, nil
}
