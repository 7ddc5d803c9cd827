package keeper

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/cosmosnet/ibc-core-engine/exported"
	"github.com/cosmosnet/ibc-core-engine/host"
	clienttypes "github.com/cosmosnet/ibc-core-engine/modules/02-client/types"
	ibctypes "github.com/cosmosnet/ibc-core-engine/types"
)

// RecoverClient is sudo-initiated, not an envelope message (spec §4.2): it
// has no MsgEnvelope variant and the dispatcher never routes to it. A host
// calls it directly from a governance-gated code path.
//
// The subject client must be inactive, the substitute must be active and
// strictly ahead, CheckSubstitute must accept the pairing, and on success
// the subject adopts the substitute's latest consensus state and is
// unfrozen.
func (k Keeper) RecoverClient(h host.WriteHost, subjectClientID, substituteClientID string) error {
	subject, err := k.MustGetClientState(h, subjectClientID)
	if err != nil {
		return errorsmod.Wrapf(err, "subject client %s", subjectClientID)
	}
	substitute, err := k.MustGetClientState(h, substituteClientID)
	if err != nil {
		return errorsmod.Wrapf(err, "substitute client %s", substituteClientID)
	}

	ctx := k.contextFor(h)

	subjectStatus := subject.Status(ctx, subjectClientID)
	if subjectStatus == exported.Active {
		return errorsmod.Wrapf(clienttypes.ErrInvalidSubstitute, "subject client %s is already active", subjectClientID)
	}

	substituteStatus := substitute.Status(ctx, substituteClientID)
	if substituteStatus != exported.Active {
		return errorsmod.Wrapf(clienttypes.ErrInvalidSubstitute, "substitute client %s has status %s, expected Active", substituteClientID, substituteStatus)
	}

	if !substitute.LatestHeight().GT(subject.LatestHeight()) {
		return errorsmod.Wrapf(clienttypes.ErrInvalidSubstitute,
			"substitute latest height %s must be greater than subject latest height %s",
			substitute.LatestHeight(), subject.LatestHeight())
	}

	if err := subject.CheckSubstitute(substitute); err != nil {
		return errorsmod.Wrap(clienttypes.ErrInvalidSubstitute, err.Error())
	}

	substituteConsState, ok := k.GetConsensusState(h, substituteClientID, substitute.LatestHeight())
	if !ok {
		return errorsmod.Wrapf(clienttypes.ErrConsensusStateNotFound,
			"substitute client %s has no consensus state at its latest height %s", substituteClientID, substitute.LatestHeight())
	}

	k.SetClientState(h, subjectClientID, substitute)
	k.SetConsensusState(h, subjectClientID, substitute.LatestHeight(), substituteConsState)

	h.Logger().Info("client recovered", "subject", subjectClientID, "substitute", substituteClientID)
	h.EmitEvent(clienttypes.NewMessageEvent())
	h.EmitEvent(clienttypes.NewUpdateClientEvent(subjectClientID, substitute.ClientType(), []ibctypes.Height{substitute.LatestHeight()}))

	return nil
}
