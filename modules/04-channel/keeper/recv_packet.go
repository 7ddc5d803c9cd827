package keeper

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/cosmosnet/ibc-core-engine/host"
	channeltypes "github.com/cosmosnet/ibc-core-engine/modules/04-channel/types"
)

// ValidateRecvPacket checks the destination channel is Open, the
// counterparty matches the packet's claimed source, the client is Active,
// the packet has not timed out at B's current height/timestamp, and
// verifies A's commitment membership proof (spec §4.5 "RecvPacket" steps
// 1-4).
func (k Keeper) ValidateRecvPacket(h host.ReadHost, msg channeltypes.MsgRecvPacket) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	return k.verifyRecvPacket(h, msg)
}

func (k Keeper) verifyRecvPacket(h host.ReadHost, msg channeltypes.MsgRecvPacket) error {
	packet := msg.Packet

	channel, err := k.MustGetChannel(h, packet.DestPort, packet.DestChannel)
	if err != nil {
		return err
	}
	if channel.State != channeltypes.Open {
		return errorsmod.Wrapf(channeltypes.ErrInvalidChannelState, "channel %s/%s is in state %s, expected Open", packet.DestPort, packet.DestChannel, channel.State)
	}
	if channel.Counterparty.PortID != packet.SourcePort || channel.Counterparty.ChannelID != packet.SourceChannel {
		return errorsmod.Wrap(channeltypes.ErrInvalidPacket, "packet source does not match channel counterparty")
	}

	conn, _, err := k.connectionForChannel(h, channel.ConnectionHops)
	if err != nil {
		return err
	}

	if !packet.TimeoutHeight.IsZero() && h.HostHeight().GTE(packet.TimeoutHeight) {
		return errorsmod.Wrap(channeltypes.ErrPacketTimeout, "packet has already timed out by height at the destination chain")
	}
	if packet.TimeoutTimestamp != 0 && h.HostTimestamp() >= packet.TimeoutTimestamp {
		return errorsmod.Wrap(channeltypes.ErrPacketTimeout, "packet has already timed out by timestamp at the destination chain")
	}

	commitPath := host.PrefixedPath(conn.Counterparty.Prefix, host.PacketCommitmentPath(packet.SourcePort, packet.SourceChannel, packet.Sequence))
	expected := channeltypes.CommitPacket(packet)
	if err := k.ConnectionKeeper.ClientKeeper.VerifyMembership(h, conn.ClientID, msg.ProofHeight, conn.DelayPeriod, 0, msg.Proof, commitPath, expected); err != nil {
		return errorsmod.Wrap(channeltypes.ErrInvalidProof, "packet commitment proof: "+err.Error())
	}

	return nil
}

// ExecuteRecvPacket runs the destination module's on_recv_packet_execute
// callback, applies ordered/unordered dedup bookkeeping, and writes the
// acknowledgement hash (spec §4.5 "RecvPacket" steps 5-9). It returns
// (ack, true) on a genuine receive, or (nil, false) for either of the two
// NO-OP successes (already-received on Unordered, stale sequence on
// Ordered) — the caller must not emit ReceivePacket/WriteAcknowledgement
// nor persist anything when ok is false (spec §7 "NO-OP successes").
func (k Keeper) ExecuteRecvPacket(h host.WriteHost, msg channeltypes.MsgRecvPacket) (ack channeltypes.Acknowledgement, ok bool, err error) {
	packet := msg.Packet

	if err := k.verifyRecvPacket(h, msg); err != nil {
		return channeltypes.Acknowledgement{}, false, err
	}

	channel, err := k.MustGetChannel(h, packet.DestPort, packet.DestChannel)
	if err != nil {
		return channeltypes.Acknowledgement{}, false, err
	}

	if channel.Ordering == channeltypes.Unordered {
		if k.HasPacketReceipt(h, packet.DestPort, packet.DestChannel, packet.Sequence) {
			return channeltypes.Acknowledgement{}, false, nil
		}
	} else {
		nextSeqRecv, ok := k.GetNextSequenceRecv(h, packet.DestPort, packet.DestChannel)
		if !ok {
			return channeltypes.Acknowledgement{}, false, errorsmod.Wrapf(channeltypes.ErrInvalidChannel, "no next recv sequence for %s/%s", packet.DestPort, packet.DestChannel)
		}
		if packet.Sequence < nextSeqRecv {
			return channeltypes.Acknowledgement{}, false, nil
		}
		if packet.Sequence > nextSeqRecv {
			return channeltypes.Acknowledgement{}, false, errorsmod.Wrapf(channeltypes.ErrInvalidPacketSequence, "packet sequence %d does not match next receive sequence %d", packet.Sequence, nextSeqRecv)
		}
	}

	if k.HasPacketAcknowledgement(h, packet.DestPort, packet.DestChannel, packet.Sequence) {
		return channeltypes.Acknowledgement{}, false, errorsmod.Wrapf(channeltypes.ErrDuplicateAcknowledgement, "acknowledgement already exists for sequence %d", packet.Sequence)
	}

	cbs, err := k.Router.GetRoute(packet.DestPort)
	if err != nil {
		return channeltypes.Acknowledgement{}, false, err
	}
	acknowledgement, extras := cbs.OnRecvPacketExecute(packet)

	if channel.Ordering == channeltypes.Unordered {
		k.SetPacketReceipt(h, packet.DestPort, packet.DestChannel, packet.Sequence)
	} else {
		nextSeqRecv, _ := k.GetNextSequenceRecv(h, packet.DestPort, packet.DestChannel)
		k.SetNextSequenceRecv(h, packet.DestPort, packet.DestChannel, nextSeqRecv+1)
	}
	ackBytes := acknowledgement.Marshal()
	k.SetPacketAcknowledgement(h, packet.DestPort, packet.DestChannel, packet.Sequence, channeltypes.CommitAcknowledgement(ackBytes))

	h.Logger().Info("receive packet", "port_id", packet.DestPort, "channel_id", packet.DestChannel, "sequence", packet.Sequence)
	h.EmitEvent(channeltypes.NewReceivePacketEvent(packet, string(channel.Ordering), channel.ConnectionHops[0]))
	h.EmitEvent(channeltypes.NewWriteAcknowledgementEvent(packet, ackBytes, channel.ConnectionHops[0]))
	emitCallbackEvents(h, extras)

	return acknowledgement, true, nil
}
