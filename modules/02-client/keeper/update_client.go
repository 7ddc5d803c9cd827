package keeper

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/cosmosnet/ibc-core-engine/exported"
	"github.com/cosmosnet/ibc-core-engine/host"
	clienttypes "github.com/cosmosnet/ibc-core-engine/modules/02-client/types"
)

// ValidateUpdateClient requires an active, known client and a client
// message that passes cryptographic verification against stored consensus
// state (spec §4.2). MsgSubmitMisbehaviour shares this same validate path:
// whether msg.ClientMessage turns out to carry a legitimate header or
// misbehaviour evidence is decided inside execute.
func (k Keeper) ValidateUpdateClient(h host.ReadHost, msg clienttypes.MsgUpdateClient) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}

	clientState, err := k.MustGetClientState(h, msg.ClientID)
	if err != nil {
		return err
	}

	status := clientState.Status(k.contextFor(h), msg.ClientID)
	if status != exported.Active {
		return errorsmod.Wrapf(clienttypes.ErrClientNotActive, "client %s has status %s", msg.ClientID, status)
	}

	if err := clientState.VerifyClientMessage(k.contextFor(h), msg.ClientID, msg.ClientMessage); err != nil {
		return errorsmod.Wrap(clienttypes.ErrInvalidClientMessage, err.Error())
	}

	return nil
}

// ExecuteUpdateClient re-derives the client state (a concurrent relayer may
// have already advanced it since validate ran) and either freezes the client
// on misbehaviour or writes every new consensus state UpdateState reports.
// The client capability itself is responsible for detecting a monotonicity
// violation as misbehaviour (spec §4.2: CheckForMisbehaviour triggers "when
// monotonicity of timestamps between adjacent-height consensus states would
// be violated"); this handler additionally enforces the invariant against
// the immediately preceding latest-height consensus state it already has in
// hand, as a belt-and-suspenders check (spec §8 invariant 3).
func (k Keeper) ExecuteUpdateClient(h host.WriteHost, msg clienttypes.MsgUpdateClient) error {
	clientState, err := k.MustGetClientState(h, msg.ClientID)
	if err != nil {
		return err
	}

	ctx := k.contextFor(h)

	priorLatestHeight := clientState.LatestHeight()
	priorLatestConsState, havePrior := k.GetConsensusState(h, msg.ClientID, priorLatestHeight)

	if clientState.CheckForMisbehaviour(ctx, msg.ClientID, msg.ClientMessage) {
		clientState.UpdateStateOnMisbehaviour(ctx, msg.ClientID, msg.ClientMessage)
		k.SetClientState(h, msg.ClientID, clientState)

		h.Logger().Info("client frozen by misbehaviour", "client_id", msg.ClientID)
		h.EmitEvent(clienttypes.NewMessageEvent())
		h.EmitEvent(clienttypes.NewClientMisbehaviourEvent(msg.ClientID, clientState.ClientType()))
		return nil
	}

	newHeights := clientState.UpdateState(ctx, msg.ClientID, msg.ClientMessage)

	headerMsg, hasConsensusState := msg.ClientMessage.(exported.HeaderMessage)

	for _, height := range newHeights {
		var newConsState exported.ConsensusState
		if hasConsensusState && headerMsg.NewHeight().EQ(height) {
			newConsState = headerMsg.NewConsensusState()
			k.SetConsensusState(h, msg.ClientID, height, newConsState)
			h.SetUpdateMeta(msg.ClientID, height, h.HostTimestamp(), h.HostHeight())
		} else if existing, ok := k.GetConsensusState(h, msg.ClientID, height); ok {
			newConsState = existing
		} else {
			return errorsmod.Wrapf(clienttypes.ErrConsensusStateNotFound,
				"client state claims a consensus state was written at %s but none is stored", height)
		}

		if havePrior && height.GT(priorLatestHeight) && newConsState.GetTimestamp() <= priorLatestConsState.GetTimestamp() {
			return errorsmod.Wrapf(clienttypes.ErrConsensusStateMonotonicity,
				"consensus state at %s has timestamp %d, not greater than %s's timestamp %d",
				height, newConsState.GetTimestamp(), priorLatestHeight, priorLatestConsState.GetTimestamp())
		}
	}

	k.SetClientState(h, msg.ClientID, clientState)

	h.Logger().Info("client updated", "client_id", msg.ClientID, "latest_height", clientState.LatestHeight().String())
	h.EmitEvent(clienttypes.NewMessageEvent())
	h.EmitEvent(clienttypes.NewUpdateClientEvent(msg.ClientID, clientState.ClientType(), newHeights))

	return nil
}
