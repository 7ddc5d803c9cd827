package keeper

import (
	"bytes"

	errorsmod "cosmossdk.io/errors"

	"github.com/cosmosnet/ibc-core-engine/host"
	connectiontypes "github.com/cosmosnet/ibc-core-engine/modules/03-connection/types"
	channeltypes "github.com/cosmosnet/ibc-core-engine/modules/04-channel/types"
)

// ValidateTimeout loads the commitment, checks it against the packet, and
// verifies the timeout actually elapsed at B plus the matching
// non-membership/next-sequence proof (spec §4.5 "Timeout" steps 1-5, 7). A
// missing commitment is reported via the ok=false NO-OP path.
func (k Keeper) ValidateTimeout(h host.ReadHost, msg channeltypes.MsgTimeout) (ok bool, err error) {
	if err := msg.ValidateBasic(); err != nil {
		return false, err
	}
	return k.verifyTimeout(h, msg, nil)
}

// ValidateTimeoutOnClose is Timeout's counterpart for a counterparty
// channel already Closed: it additionally verifies the remote channel end
// (spec §4.5 "TimeoutOnClose" step 6).
func (k Keeper) ValidateTimeoutOnClose(h host.ReadHost, msg channeltypes.MsgTimeoutOnClose) (ok bool, err error) {
	if err := msg.ValidateBasic(); err != nil {
		return false, err
	}
	onClose := msg
	return k.verifyTimeout(h, channeltypes.MsgTimeout{
		Packet:           onClose.Packet,
		ProofHeight:      onClose.ProofHeight,
		ProofUnreceived:  onClose.ProofUnreceived,
		NextSequenceRecv: onClose.NextSequenceRecv,
		Signer:           onClose.Signer,
	}, &onClose)
}

func (k Keeper) verifyTimeout(h host.ReadHost, msg channeltypes.MsgTimeout, onClose *channeltypes.MsgTimeoutOnClose) (bool, error) {
	packet := msg.Packet

	commitment, ok := k.GetPacketCommitment(h, packet.SourcePort, packet.SourceChannel, packet.Sequence)
	if !ok {
		return false, nil
	}
	if !bytes.Equal(commitment, channeltypes.CommitPacket(packet)) {
		return false, errorsmod.Wrap(channeltypes.ErrIncorrectPacketCommitment, "stored packet commitment does not match the packet being timed out")
	}

	channel, err := k.MustGetChannel(h, packet.SourcePort, packet.SourceChannel)
	if err != nil {
		return false, err
	}
	conn, _, err := k.connectionForChannel(h, channel.ConnectionHops)
	if err != nil {
		return false, err
	}

	consState, ok := k.ConnectionKeeper.ClientKeeper.GetConsensusState(h, conn.ClientID, msg.ProofHeight)
	if !ok {
		return false, errorsmod.Wrapf(channeltypes.ErrPacketTimeoutNotReached, "no consensus state for client %s at proof height %s", conn.ClientID, msg.ProofHeight)
	}
	elapsedByHeight := !packet.TimeoutHeight.IsZero() && packet.TimeoutHeight.LTE(msg.ProofHeight)
	elapsedByTime := packet.TimeoutTimestamp != 0 && packet.TimeoutTimestamp <= consState.GetTimestamp()
	if !elapsedByHeight && !elapsedByTime {
		return false, errorsmod.Wrap(channeltypes.ErrPacketTimeoutNotReached, "packet has not yet timed out at the counterparty")
	}

	if channel.Ordering == channeltypes.Ordered {
		if packet.Sequence < msg.NextSequenceRecv {
			return false, errorsmod.Wrapf(channeltypes.ErrInvalidPacketSequence, "packet sequence %d is less than the counterparty's claimed next receive sequence %d", packet.Sequence, msg.NextSequenceRecv)
		}
		nextSeqRecvPath := host.PrefixedPath(conn.Counterparty.Prefix, host.NextSequenceRecvPath(packet.DestPort, packet.DestChannel))
		expected := channeltypes.SequenceCommitmentBytes(msg.NextSequenceRecv)
		if err := k.ConnectionKeeper.ClientKeeper.VerifyMembership(h, conn.ClientID, msg.ProofHeight, conn.DelayPeriod, 0, msg.ProofUnreceived, nextSeqRecvPath, expected); err != nil {
			return false, errorsmod.Wrap(channeltypes.ErrInvalidProof, "next sequence recv proof: "+err.Error())
		}
	} else {
		receiptPath := host.PrefixedPath(conn.Counterparty.Prefix, host.PacketReceiptPath(packet.DestPort, packet.DestChannel, packet.Sequence))
		if err := k.ConnectionKeeper.ClientKeeper.VerifyNonMembership(h, conn.ClientID, msg.ProofHeight, conn.DelayPeriod, 0, msg.ProofUnreceived, receiptPath); err != nil {
			return false, errorsmod.Wrap(channeltypes.ErrInvalidProof, "packet receipt non-membership proof: "+err.Error())
		}
	}

	if onClose != nil {
		if err := k.verifyCounterpartyClosed(h, conn, channel, onClose); err != nil {
			return false, err
		}
	}

	if err := k.enforceDelayPeriod(h, conn, conn.ClientID, msg.ProofHeight); err != nil {
		return false, err
	}

	return true, nil
}

// verifyCounterpartyClosed verifies B's channel end is Closed and still
// points its counterparty at our (port, channel) (spec §4.5
// "TimeoutOnClose" step 6).
func (k Keeper) verifyCounterpartyClosed(h host.ReadHost, conn connectiontypes.ConnectionEnd, channel channeltypes.ChannelEnd, msg *channeltypes.MsgTimeoutOnClose) error {
	expected := channeltypes.ChannelEnd{
		State:    channeltypes.Closed,
		Ordering: channel.Ordering,
		Counterparty: channeltypes.Counterparty{
			PortID:    msg.Packet.SourcePort,
			ChannelID: msg.Packet.SourceChannel,
		},
		ConnectionHops: []string{conn.Counterparty.ConnectionID},
		Version:        channel.Version,
	}

	remotePath := host.PrefixedPath(conn.Counterparty.Prefix, host.FullChannelPath(channel.Counterparty.PortID, channel.Counterparty.ChannelID))
	if err := k.ConnectionKeeper.ClientKeeper.VerifyMembership(h, conn.ClientID, msg.ProofHeight, 0, 0, msg.ProofClose, remotePath, expected.CommitmentBytes()); err != nil {
		return errorsmod.Wrap(channeltypes.ErrInvalidProof, "counterparty closed proof: "+err.Error())
	}
	return nil
}

// ExecuteTimeout runs the source module's callback, deletes the
// commitment, and for Ordered channels closes the channel (spec §4.5
// "Timeout" step 8). Returns ok=false for the commitment-absent NO-OP
// success.
func (k Keeper) ExecuteTimeout(h host.WriteHost, msg channeltypes.MsgTimeout) (ok bool, err error) {
	verified, err := k.verifyTimeout(h, msg, nil)
	if err != nil {
		return false, err
	}
	if !verified {
		return false, nil
	}
	return k.finishTimeout(h, msg.Packet)
}

// ExecuteTimeoutOnClose is ExecuteTimeout's counterpart for the
// counterparty-channel-Closed variant.
func (k Keeper) ExecuteTimeoutOnClose(h host.WriteHost, msg channeltypes.MsgTimeoutOnClose) (ok bool, err error) {
	verified, err := k.verifyTimeout(h, channeltypes.MsgTimeout{
		Packet:           msg.Packet,
		ProofHeight:      msg.ProofHeight,
		ProofUnreceived:  msg.ProofUnreceived,
		NextSequenceRecv: msg.NextSequenceRecv,
		Signer:           msg.Signer,
	}, &msg)
	if err != nil {
		return false, err
	}
	if !verified {
		return false, nil
	}
	return k.finishTimeout(h, msg.Packet)
}

func (k Keeper) finishTimeout(h host.WriteHost, packet channeltypes.Packet) (bool, error) {
	channel, err := k.MustGetChannel(h, packet.SourcePort, packet.SourceChannel)
	if err != nil {
		return false, err
	}

	cbs, err := k.Router.GetRoute(packet.SourcePort)
	if err != nil {
		return false, err
	}
	extras, err := cbs.OnTimeoutPacketExecute(packet)
	if err != nil {
		return false, err
	}

	k.DeletePacketCommitment(h, packet.SourcePort, packet.SourceChannel, packet.Sequence)

	h.Logger().Info("timeout packet", "port_id", packet.SourcePort, "channel_id", packet.SourceChannel, "sequence", packet.Sequence)
	h.EmitEvent(channeltypes.NewTimeoutPacketEvent(packet, channel.ConnectionHops[0]))
	emitCallbackEvents(h, extras)

	if channel.Ordering == channeltypes.Ordered {
		channel.State = channeltypes.Closed
		k.SetChannel(h, packet.SourcePort, packet.SourceChannel, channel)
		h.EmitEvent(channeltypes.NewChannelClosedEvent(packet.SourcePort, packet.SourceChannel))
	}

	return true, nil
}
