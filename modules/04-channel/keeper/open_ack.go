package keeper

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/cosmosnet/ibc-core-engine/host"
	channeltypes "github.com/cosmosnet/ibc-core-engine/modules/04-channel/types"
	connectiontypes "github.com/cosmosnet/ibc-core-engine/modules/03-connection/types"
)

// ValidateChannelOpenAck requires our channel in Init and verifies B's
// proof of its TryOpen end carrying our (port, channel) (spec §4.4
// "OpenAck").
func (k Keeper) ValidateChannelOpenAck(h host.ReadHost, msg channeltypes.MsgChannelOpenAck) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}

	channel, err := k.MustGetChannel(h, msg.PortID, msg.ChannelID)
	if err != nil {
		return err
	}
	if channel.State != channeltypes.Init {
		return errorsmod.Wrapf(channeltypes.ErrInvalidChannelState, "channel %s/%s is in state %s, expected Init", msg.PortID, msg.ChannelID, channel.State)
	}

	conn, _, err := k.connectionForChannel(h, channel.ConnectionHops)
	if err != nil {
		return err
	}

	if err := k.verifyChanOpenAckProof(h, conn, channel, msg); err != nil {
		return err
	}

	cbs, err := k.Router.GetRoute(msg.PortID)
	if err != nil {
		return err
	}
	return cbs.OnChanOpenAckValidate(msg.PortID, msg.ChannelID, msg.CounterpartyVersion)
}

func (k Keeper) verifyChanOpenAckProof(h host.ReadHost, conn connectiontypes.ConnectionEnd, channel channeltypes.ChannelEnd, msg channeltypes.MsgChannelOpenAck) error {
	expected := channeltypes.ChannelEnd{
		State:    channeltypes.TryOpen,
		Ordering: channel.Ordering,
		Counterparty: channeltypes.Counterparty{
			PortID:    msg.PortID,
			ChannelID: msg.ChannelID,
		},
		ConnectionHops: []string{conn.Counterparty.ConnectionID},
		Version:        msg.CounterpartyVersion,
	}

	remotePath := host.PrefixedPath(conn.Counterparty.Prefix, host.FullChannelPath(channel.Counterparty.PortID, msg.CounterpartyChannelID))
	if err := k.ConnectionKeeper.ClientKeeper.VerifyMembership(h, conn.ClientID, msg.ProofHeight, 0, 0, msg.ProofTry, remotePath, expected.CommitmentBytes()); err != nil {
		return errorsmod.Wrap(channeltypes.ErrInvalidProof, "channel try-open proof: "+err.Error())
	}
	return nil
}

// ExecuteChannelOpenAck transitions our channel from Init to Open, records
// B's channel id and version, and emits OpenAckChannel (spec §4.4
// "OpenAck").
func (k Keeper) ExecuteChannelOpenAck(h host.WriteHost, msg channeltypes.MsgChannelOpenAck) error {
	channel, err := k.MustGetChannel(h, msg.PortID, msg.ChannelID)
	if err != nil {
		return err
	}
	if channel.State != channeltypes.Init {
		return errorsmod.Wrapf(channeltypes.ErrInvalidChannelState, "channel %s/%s is in state %s, expected Init", msg.PortID, msg.ChannelID, channel.State)
	}

	conn, _, err := k.connectionForChannel(h, channel.ConnectionHops)
	if err != nil {
		return err
	}

	if err := k.verifyChanOpenAckProof(h, conn, channel, msg); err != nil {
		return err
	}

	cbs, err := k.Router.GetRoute(msg.PortID)
	if err != nil {
		return err
	}
	if err := cbs.OnChanOpenAckValidate(msg.PortID, msg.ChannelID, msg.CounterpartyVersion); err != nil {
		return err
	}
	extras, err := cbs.OnChanOpenAckExecute(msg.PortID, msg.ChannelID, msg.CounterpartyVersion)
	if err != nil {
		return err
	}

	channel.State = channeltypes.Open
	channel.Counterparty.ChannelID = msg.CounterpartyChannelID
	channel.Version = msg.CounterpartyVersion
	k.SetChannel(h, msg.PortID, msg.ChannelID, channel)

	h.Logger().Info("channel open ack", "port_id", msg.PortID, "channel_id", msg.ChannelID)
	h.EmitEvent(channeltypes.NewMessageEvent())
	h.EmitEvent(channeltypes.NewOpenAckChannelEvent(msg.PortID, msg.ChannelID, channel.Counterparty.PortID, channel.Counterparty.ChannelID, channel.ConnectionHops[0]))
	emitCallbackEvents(h, extras)

	return nil
}
