package keeper

import (
	"github.com/cosmosnet/ibc-core-engine/host"
	channeltypes "github.com/cosmosnet/ibc-core-engine/modules/04-channel/types"
)

// ValidateChannelOpenInit requires a single Open connection hop to an
// Active client (spec §4.4).
func (k Keeper) ValidateChannelOpenInit(h host.ReadHost, msg channeltypes.MsgChannelOpenInit) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	if _, _, err := k.connectionForChannel(h, msg.Channel.ConnectionHops); err != nil {
		return err
	}

	cbs, err := k.Router.GetRoute(msg.PortID)
	if err != nil {
		return err
	}
	return cbs.OnChanOpenInitValidate(msg.PortID, "", msg.Channel, msg.Channel.Version)
}

// ExecuteChannelOpenInit allocates a channel id, persists state=Init with
// all three sequence counters at 1, runs the module's open-init hooks, and
// emits OpenInitChannel (spec §4.4 "OpenInit").
func (k Keeper) ExecuteChannelOpenInit(h host.WriteHost, msg channeltypes.MsgChannelOpenInit) (string, error) {
	if _, _, err := k.connectionForChannel(h, msg.Channel.ConnectionHops); err != nil {
		return "", err
	}

	cbs, err := k.Router.GetRoute(msg.PortID)
	if err != nil {
		return "", err
	}
	if err := cbs.OnChanOpenInitValidate(msg.PortID, "", msg.Channel, msg.Channel.Version); err != nil {
		return "", err
	}

	channelID := k.generateChannelIdentifier(h)
	channel := msg.Channel
	channel.State = channeltypes.Init

	version, extras, err := cbs.OnChanOpenInitExecute(msg.PortID, channelID, channel, channel.Version)
	if err != nil {
		return "", err
	}
	channel.Version = version

	k.SetChannel(h, msg.PortID, channelID, channel)
	k.SetNextSequenceSend(h, msg.PortID, channelID, 1)
	k.SetNextSequenceRecv(h, msg.PortID, channelID, 1)
	k.SetNextSequenceAck(h, msg.PortID, channelID, 1)

	h.Logger().Info("channel open init", "port_id", msg.PortID, "channel_id", channelID)
	h.EmitEvent(channeltypes.NewMessageEvent())
	h.EmitEvent(channeltypes.NewOpenInitChannelEvent(msg.PortID, channelID, channel.Counterparty.PortID, msg.Channel.ConnectionHops[0], channel.Version))
	emitCallbackEvents(h, extras)

	return channelID, nil
}
