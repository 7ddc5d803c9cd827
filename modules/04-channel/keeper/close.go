package keeper

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/cosmosnet/ibc-core-engine/host"
	connectiontypes "github.com/cosmosnet/ibc-core-engine/modules/03-connection/types"
	channeltypes "github.com/cosmosnet/ibc-core-engine/modules/04-channel/types"
)

// ValidateChannelCloseInit requires the channel not already Closed (spec
// §4.4 "CloseInit").
func (k Keeper) ValidateChannelCloseInit(h host.ReadHost, msg channeltypes.MsgChannelCloseInit) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}

	channel, err := k.MustGetChannel(h, msg.PortID, msg.ChannelID)
	if err != nil {
		return err
	}
	if channel.State == channeltypes.Closed {
		return errorsmod.Wrapf(channeltypes.ErrInvalidChannelState, "channel %s/%s is already Closed", msg.PortID, msg.ChannelID)
	}

	if _, _, err := k.connectionForChannel(h, channel.ConnectionHops); err != nil {
		return err
	}

	cbs, err := k.Router.GetRoute(msg.PortID)
	if err != nil {
		return err
	}
	return cbs.OnChanCloseInitValidate(msg.PortID, msg.ChannelID)
}

// ExecuteChannelCloseInit transitions the channel to Closed and emits
// ChannelClosed (spec §4.4 "CloseInit").
func (k Keeper) ExecuteChannelCloseInit(h host.WriteHost, msg channeltypes.MsgChannelCloseInit) error {
	channel, err := k.MustGetChannel(h, msg.PortID, msg.ChannelID)
	if err != nil {
		return err
	}
	if channel.State == channeltypes.Closed {
		return errorsmod.Wrapf(channeltypes.ErrInvalidChannelState, "channel %s/%s is already Closed", msg.PortID, msg.ChannelID)
	}
	if _, _, err := k.connectionForChannel(h, channel.ConnectionHops); err != nil {
		return err
	}

	cbs, err := k.Router.GetRoute(msg.PortID)
	if err != nil {
		return err
	}
	if err := cbs.OnChanCloseInitValidate(msg.PortID, msg.ChannelID); err != nil {
		return err
	}
	extras, err := cbs.OnChanCloseInitExecute(msg.PortID, msg.ChannelID)
	if err != nil {
		return err
	}

	channel.State = channeltypes.Closed
	k.SetChannel(h, msg.PortID, msg.ChannelID, channel)

	h.Logger().Info("channel close init", "port_id", msg.PortID, "channel_id", msg.ChannelID)
	h.EmitEvent(channeltypes.NewMessageEvent())
	h.EmitEvent(channeltypes.NewCloseInitChannelEvent(msg.PortID, msg.ChannelID))
	h.EmitEvent(channeltypes.NewChannelClosedEvent(msg.PortID, msg.ChannelID))
	emitCallbackEvents(h, extras)

	return nil
}

// ValidateChannelCloseConfirm requires our channel not Closed and verifies
// the remote end is already Closed (spec §4.4 "CloseConfirm").
func (k Keeper) ValidateChannelCloseConfirm(h host.ReadHost, msg channeltypes.MsgChannelCloseConfirm) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}

	channel, err := k.MustGetChannel(h, msg.PortID, msg.ChannelID)
	if err != nil {
		return err
	}
	if channel.State == channeltypes.Closed {
		return errorsmod.Wrapf(channeltypes.ErrInvalidChannelState, "channel %s/%s is already Closed", msg.PortID, msg.ChannelID)
	}

	conn, _, err := k.connectionForChannel(h, channel.ConnectionHops)
	if err != nil {
		return err
	}

	if err := k.verifyChanCloseConfirmProof(h, conn, channel, msg); err != nil {
		return err
	}

	cbs, err := k.Router.GetRoute(msg.PortID)
	if err != nil {
		return err
	}
	return cbs.OnChanCloseConfirmValidate(msg.PortID, msg.ChannelID)
}

// verifyChanCloseConfirmProof checks that the remote channel end is Closed
// (spec §4.4 "verify the remote end is Closed").
func (k Keeper) verifyChanCloseConfirmProof(h host.ReadHost, conn connectiontypes.ConnectionEnd, channel channeltypes.ChannelEnd, msg channeltypes.MsgChannelCloseConfirm) error {
	expected := channeltypes.ChannelEnd{
		State:    channeltypes.Closed,
		Ordering: channel.Ordering,
		Counterparty: channeltypes.Counterparty{
			PortID:    msg.PortID,
			ChannelID: msg.ChannelID,
		},
		ConnectionHops: []string{conn.Counterparty.ConnectionID},
		Version:        channel.Version,
	}

	remotePath := host.PrefixedPath(conn.Counterparty.Prefix, host.FullChannelPath(channel.Counterparty.PortID, channel.Counterparty.ChannelID))
	if err := k.ConnectionKeeper.ClientKeeper.VerifyMembership(h, conn.ClientID, msg.ProofHeight, 0, 0, msg.ProofInit, remotePath, expected.CommitmentBytes()); err != nil {
		return errorsmod.Wrap(channeltypes.ErrInvalidProof, "channel closed proof: "+err.Error())
	}
	return nil
}

// ExecuteChannelCloseConfirm transitions our channel to Closed (spec §4.4
// "CloseConfirm").
func (k Keeper) ExecuteChannelCloseConfirm(h host.WriteHost, msg channeltypes.MsgChannelCloseConfirm) error {
	channel, err := k.MustGetChannel(h, msg.PortID, msg.ChannelID)
	if err != nil {
		return err
	}
	if channel.State == channeltypes.Closed {
		return errorsmod.Wrapf(channeltypes.ErrInvalidChannelState, "channel %s/%s is already Closed", msg.PortID, msg.ChannelID)
	}

	conn, _, err := k.connectionForChannel(h, channel.ConnectionHops)
	if err != nil {
		return err
	}
	if err := k.verifyChanCloseConfirmProof(h, conn, channel, msg); err != nil {
		return err
	}

	cbs, err := k.Router.GetRoute(msg.PortID)
	if err != nil {
		return err
	}
	if err := cbs.OnChanCloseConfirmValidate(msg.PortID, msg.ChannelID); err != nil {
		return err
	}
	extras, err := cbs.OnChanCloseConfirmExecute(msg.PortID, msg.ChannelID)
	if err != nil {
		return err
	}

	channel.State = channeltypes.Closed
	k.SetChannel(h, msg.PortID, msg.ChannelID, channel)

	h.Logger().Info("channel close confirm", "port_id", msg.PortID, "channel_id", msg.ChannelID)
	h.EmitEvent(channeltypes.NewMessageEvent())
	h.EmitEvent(channeltypes.NewCloseConfirmChannelEvent(msg.PortID, msg.ChannelID))
	h.EmitEvent(channeltypes.NewChannelClosedEvent(msg.PortID, msg.ChannelID))
	emitCallbackEvents(h, extras)

	return nil
}
