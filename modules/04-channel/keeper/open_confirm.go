package keeper

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/cosmosnet/ibc-core-engine/host"
	channeltypes "github.com/cosmosnet/ibc-core-engine/modules/04-channel/types"
	connectiontypes "github.com/cosmosnet/ibc-core-engine/modules/03-connection/types"
)

// ValidateChannelOpenConfirm requires our channel in TryOpen and verifies
// A's channel is Open (spec §4.4 "OpenConfirm").
func (k Keeper) ValidateChannelOpenConfirm(h host.ReadHost, msg channeltypes.MsgChannelOpenConfirm) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}

	channel, err := k.MustGetChannel(h, msg.PortID, msg.ChannelID)
	if err != nil {
		return err
	}
	if channel.State != channeltypes.TryOpen {
		return errorsmod.Wrapf(channeltypes.ErrInvalidChannelState, "channel %s/%s is in state %s, expected TryOpen", msg.PortID, msg.ChannelID, channel.State)
	}

	conn, _, err := k.connectionForChannel(h, channel.ConnectionHops)
	if err != nil {
		return err
	}

	if err := k.verifyChanOpenConfirmProof(h, conn, channel, msg); err != nil {
		return err
	}

	cbs, err := k.Router.GetRoute(msg.PortID)
	if err != nil {
		return err
	}
	return cbs.OnChanOpenConfirmValidate(msg.PortID, msg.ChannelID)
}

func (k Keeper) verifyChanOpenConfirmProof(h host.ReadHost, conn connectiontypes.ConnectionEnd, channel channeltypes.ChannelEnd, msg channeltypes.MsgChannelOpenConfirm) error {
	expected := channeltypes.ChannelEnd{
		State:    channeltypes.Open,
		Ordering: channel.Ordering,
		Counterparty: channeltypes.Counterparty{
			PortID:    msg.PortID,
			ChannelID: msg.ChannelID,
		},
		ConnectionHops: []string{conn.Counterparty.ConnectionID},
		Version:        channel.Version,
	}

	remotePath := host.PrefixedPath(conn.Counterparty.Prefix, host.FullChannelPath(channel.Counterparty.PortID, channel.Counterparty.ChannelID))
	if err := k.ConnectionKeeper.ClientKeeper.VerifyMembership(h, conn.ClientID, msg.ProofHeight, 0, 0, msg.ProofAck, remotePath, expected.CommitmentBytes()); err != nil {
		return errorsmod.Wrap(channeltypes.ErrInvalidProof, "channel open proof: "+err.Error())
	}
	return nil
}

// ExecuteChannelOpenConfirm transitions our channel from TryOpen to Open
// and emits OpenConfirmChannel (spec §4.4 "OpenConfirm").
func (k Keeper) ExecuteChannelOpenConfirm(h host.WriteHost, msg channeltypes.MsgChannelOpenConfirm) error {
	channel, err := k.MustGetChannel(h, msg.PortID, msg.ChannelID)
	if err != nil {
		return err
	}
	if channel.State != channeltypes.TryOpen {
		return errorsmod.Wrapf(channeltypes.ErrInvalidChannelState, "channel %s/%s is in state %s, expected TryOpen", msg.PortID, msg.ChannelID, channel.State)
	}

	conn, _, err := k.connectionForChannel(h, channel.ConnectionHops)
	if err != nil {
		return err
	}

	if err := k.verifyChanOpenConfirmProof(h, conn, channel, msg); err != nil {
		return err
	}

	cbs, err := k.Router.GetRoute(msg.PortID)
	if err != nil {
		return err
	}
	if err := cbs.OnChanOpenConfirmValidate(msg.PortID, msg.ChannelID); err != nil {
		return err
	}
	extras, err := cbs.OnChanOpenConfirmExecute(msg.PortID, msg.ChannelID)
	if err != nil {
		return err
	}

	channel.State = channeltypes.Open
	k.SetChannel(h, msg.PortID, msg.ChannelID, channel)

	h.Logger().Info("channel open confirm", "port_id", msg.PortID, "channel_id", msg.ChannelID)
	h.EmitEvent(channeltypes.NewMessageEvent())
	h.EmitEvent(channeltypes.NewOpenConfirmChannelEvent(msg.PortID, msg.ChannelID, channel.Counterparty.PortID, channel.Counterparty.ChannelID, channel.ConnectionHops[0]))
	emitCallbackEvents(h, extras)

	return nil
}
