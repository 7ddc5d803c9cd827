package keeper

import (
	"bytes"

	errorsmod "cosmossdk.io/errors"

	"github.com/cosmosnet/ibc-core-engine/host"
	channeltypes "github.com/cosmosnet/ibc-core-engine/modules/04-channel/types"
)

// ValidateAcknowledgement loads A's channel end, checks the stored
// commitment (if any), sequence ordering, and the membership proof of the
// acknowledgement hash on B (spec §4.5 "Acknowledgement" steps 1-5). A
// missing commitment is reported via the ok=false NO-OP path, not an
// error.
func (k Keeper) ValidateAcknowledgement(h host.ReadHost, msg channeltypes.MsgAcknowledgement) (ok bool, err error) {
	if err := msg.ValidateBasic(); err != nil {
		return false, err
	}
	return k.verifyAcknowledgement(h, msg)
}

func (k Keeper) verifyAcknowledgement(h host.ReadHost, msg channeltypes.MsgAcknowledgement) (bool, error) {
	packet := msg.Packet

	channel, err := k.MustGetChannel(h, packet.SourcePort, packet.SourceChannel)
	if err != nil {
		return false, err
	}
	if channel.State != channeltypes.Open {
		return false, errorsmod.Wrapf(channeltypes.ErrInvalidChannelState, "channel %s/%s is in state %s, expected Open", packet.SourcePort, packet.SourceChannel, channel.State)
	}
	if channel.Counterparty.PortID != packet.DestPort || channel.Counterparty.ChannelID != packet.DestChannel {
		return false, errorsmod.Wrap(channeltypes.ErrInvalidPacket, "packet destination does not match channel counterparty")
	}

	commitment, ok := k.GetPacketCommitment(h, packet.SourcePort, packet.SourceChannel, packet.Sequence)
	if !ok {
		return false, nil
	}
	if !bytes.Equal(commitment, channeltypes.CommitPacket(packet)) {
		return false, errorsmod.Wrap(channeltypes.ErrIncorrectPacketCommitment, "stored packet commitment does not match the packet being acknowledged")
	}

	if channel.Ordering == channeltypes.Ordered {
		nextSeqAck, ok := k.GetNextSequenceAck(h, packet.SourcePort, packet.SourceChannel)
		if !ok || packet.Sequence != nextSeqAck {
			return false, errorsmod.Wrapf(channeltypes.ErrInvalidPacketSequence, "packet sequence %d does not match next ack sequence %d", packet.Sequence, nextSeqAck)
		}
	}

	conn, _, err := k.connectionForChannel(h, channel.ConnectionHops)
	if err != nil {
		return false, err
	}

	ackPath := host.PrefixedPath(conn.Counterparty.Prefix, host.PacketAcknowledgementPath(packet.DestPort, packet.DestChannel, packet.Sequence))
	expected := channeltypes.CommitAcknowledgement(msg.Acknowledgement)
	if err := k.ConnectionKeeper.ClientKeeper.VerifyMembership(h, conn.ClientID, msg.ProofHeight, conn.DelayPeriod, 0, msg.ProofAcked, ackPath, expected); err != nil {
		return false, errorsmod.Wrap(channeltypes.ErrInvalidProof, "acknowledgement proof: "+err.Error())
	}

	if err := k.enforceDelayPeriod(h, conn, conn.ClientID, msg.ProofHeight); err != nil {
		return false, err
	}

	return true, nil
}

// ExecuteAcknowledgement runs the source module's callback, deletes the
// packet commitment, and advances next_seq_ack for Ordered channels (spec
// §4.5 "Acknowledgement" steps 6-8). Returns ok=false for the commitment-
// absent NO-OP success.
func (k Keeper) ExecuteAcknowledgement(h host.WriteHost, msg channeltypes.MsgAcknowledgement) (ok bool, err error) {
	packet := msg.Packet

	verified, err := k.verifyAcknowledgement(h, msg)
	if err != nil {
		return false, err
	}
	if !verified {
		return false, nil
	}

	channel, err := k.MustGetChannel(h, packet.SourcePort, packet.SourceChannel)
	if err != nil {
		return false, err
	}

	cbs, err := k.Router.GetRoute(packet.SourcePort)
	if err != nil {
		return false, err
	}
	ack := channeltypes.Acknowledgement{Result: msg.Acknowledgement}
	extras, err := cbs.OnAcknowledgementPacketExecute(packet, ack)
	if err != nil {
		return false, err
	}

	k.DeletePacketCommitment(h, packet.SourcePort, packet.SourceChannel, packet.Sequence)
	if channel.Ordering == channeltypes.Ordered {
		nextSeqAck, _ := k.GetNextSequenceAck(h, packet.SourcePort, packet.SourceChannel)
		k.SetNextSequenceAck(h, packet.SourcePort, packet.SourceChannel, nextSeqAck+1)
	}

	h.Logger().Info("acknowledge packet", "port_id", packet.SourcePort, "channel_id", packet.SourceChannel, "sequence", packet.Sequence)
	h.EmitEvent(channeltypes.NewAcknowledgePacketEvent(packet, string(channel.Ordering), channel.ConnectionHops[0]))
	emitCallbackEvents(h, extras)

	return true, nil
}
