package keeper

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/cosmosnet/ibc-core-engine/host"
	channeltypes "github.com/cosmosnet/ibc-core-engine/modules/04-channel/types"
	connectiontypes "github.com/cosmosnet/ibc-core-engine/modules/03-connection/types"
)

// ValidateChannelOpenTry requires the single Open connection hop, that the
// chosen ordering is supported by the connection version's feature set,
// and verifies A's proof of its Init channel end (spec §4.4 "OpenTry").
func (k Keeper) ValidateChannelOpenTry(h host.ReadHost, msg channeltypes.MsgChannelOpenTry) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}

	conn, _, err := k.connectionForChannel(h, msg.Channel.ConnectionHops)
	if err != nil {
		return err
	}

	version, err := conn.GetVersion()
	if err != nil {
		return err
	}
	if !version.SupportsFeature(msg.Channel.Ordering.Feature()) {
		return errorsmod.Wrapf(channeltypes.ErrOrderingMismatch, "connection version %s does not support ordering %s", version.Identifier, msg.Channel.Ordering)
	}

	if err := k.verifyChanOpenTryProof(h, conn, msg); err != nil {
		return err
	}

	cbs, err := k.Router.GetRoute(msg.PortID)
	if err != nil {
		return err
	}
	channel := msg.Channel
	channel.State = channeltypes.TryOpen
	return cbs.OnChanOpenTryValidate(msg.PortID, "", channel, msg.CounterpartyVersion)
}

// verifyChanOpenTryProof checks that A's channel end is Init, points its
// counterparty at our port (with no channel id yet), and carries the
// version A proposed
// (spec §4.4 "verify proof that A's channel is Init with A's counterparty
// port correctly set and version matching").
func (k Keeper) verifyChanOpenTryProof(h host.ReadHost, conn connectiontypes.ConnectionEnd, msg channeltypes.MsgChannelOpenTry) error {
	expected := channeltypes.ChannelEnd{
		State:    channeltypes.Init,
		Ordering: msg.Channel.Ordering,
		Counterparty: channeltypes.Counterparty{
			PortID: msg.PortID,
		},
		ConnectionHops: []string{conn.Counterparty.ConnectionID},
		Version:        msg.CounterpartyVersion,
	}

	remotePath := host.PrefixedPath(conn.Counterparty.Prefix, host.FullChannelPath(msg.Channel.Counterparty.PortID, msg.Channel.Counterparty.ChannelID))
	if err := k.ConnectionKeeper.ClientKeeper.VerifyMembership(h, conn.ClientID, msg.ProofHeight, 0, 0, msg.ProofInit, remotePath, expected.CommitmentBytes()); err != nil {
		return errorsmod.Wrap(channeltypes.ErrInvalidProof, "channel init proof: "+err.Error())
	}
	return nil
}

// ExecuteChannelOpenTry allocates a channel id on B, persists TryOpen with
// counterparty carrying A's known (port, channel), and emits OpenTryChannel
// (spec §4.4 "OpenTry").
func (k Keeper) ExecuteChannelOpenTry(h host.WriteHost, msg channeltypes.MsgChannelOpenTry) (string, error) {
	conn, _, err := k.connectionForChannel(h, msg.Channel.ConnectionHops)
	if err != nil {
		return "", err
	}

	if err := k.verifyChanOpenTryProof(h, conn, msg); err != nil {
		return "", err
	}

	cbs, err := k.Router.GetRoute(msg.PortID)
	if err != nil {
		return "", err
	}

	channelID := k.generateChannelIdentifier(h)
	channel := msg.Channel
	channel.State = channeltypes.TryOpen

	if err := cbs.OnChanOpenTryValidate(msg.PortID, channelID, channel, msg.CounterpartyVersion); err != nil {
		return "", err
	}
	version, extras, err := cbs.OnChanOpenTryExecute(msg.PortID, channelID, channel, msg.CounterpartyVersion)
	if err != nil {
		return "", err
	}
	channel.Version = version

	k.SetChannel(h, msg.PortID, channelID, channel)
	k.SetNextSequenceSend(h, msg.PortID, channelID, 1)
	k.SetNextSequenceRecv(h, msg.PortID, channelID, 1)
	k.SetNextSequenceAck(h, msg.PortID, channelID, 1)

	h.Logger().Info("channel open try", "port_id", msg.PortID, "channel_id", channelID)
	h.EmitEvent(channeltypes.NewMessageEvent())
	h.EmitEvent(channeltypes.NewOpenTryChannelEvent(msg.PortID, channelID, channel.Counterparty.PortID, channel.Counterparty.ChannelID, msg.Channel.ConnectionHops[0], channel.Version))
	emitCallbackEvents(h, extras)

	return channelID, nil
}
