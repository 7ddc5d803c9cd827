package keeper

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/cosmosnet/ibc-core-engine/host"
	clienttypes "github.com/cosmosnet/ibc-core-engine/modules/02-client/types"
)

// ValidateUpgradeClient checks that the upgrade target height is strictly
// ahead of the client's current latest height (spec §4.2, §8 boundary
// behavior). The Merkle proof checks happen in execute since they are the
// expensive part and validate must stay cheap and pure; the height check
// alone is enough to reject the common "stale upgrade" case before any
// state is touched.
func (k Keeper) ValidateUpgradeClient(h host.ReadHost, msg clienttypes.MsgUpgradeClient) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}

	clientState, err := k.MustGetClientState(h, msg.ClientID)
	if err != nil {
		return err
	}

	if !msg.UpgradedClientState.LatestHeight().GT(clientState.LatestHeight()) {
		return errorsmod.Wrapf(clienttypes.ErrLowUpgradeHeight,
			"upgraded client height %s must be greater than current latest height %s",
			msg.UpgradedClientState.LatestHeight(), clientState.LatestHeight())
	}

	return nil
}

// ExecuteUpgradeClient verifies the two Merkle proofs against the client's
// current consensus root and, on success, replaces the client and consensus
// state at the height the client capability reports (spec §4.2).
func (k Keeper) ExecuteUpgradeClient(h host.WriteHost, msg clienttypes.MsgUpgradeClient) error {
	clientState, err := k.MustGetClientState(h, msg.ClientID)
	if err != nil {
		return err
	}

	if !msg.UpgradedClientState.LatestHeight().GT(clientState.LatestHeight()) {
		return errorsmod.Wrapf(clienttypes.ErrLowUpgradeHeight,
			"upgraded client height %s must be greater than current latest height %s",
			msg.UpgradedClientState.LatestHeight(), clientState.LatestHeight())
	}

	ctx := k.contextFor(h)

	newHeight, err := clientState.VerifyUpgradeAndUpdateState(
		ctx,
		msg.ClientID,
		msg.UpgradedClientState,
		msg.UpgradedConsensusState,
		msg.ProofUpgradeClient,
		msg.ProofUpgradeConsensusState,
	)
	if err != nil {
		return errorsmod.Wrap(clienttypes.ErrInvalidUpgradeProof, err.Error())
	}

	k.SetClientState(h, msg.ClientID, msg.UpgradedClientState)
	k.SetConsensusState(h, msg.ClientID, newHeight, msg.UpgradedConsensusState)

	h.Logger().Info("client upgraded", "client_id", msg.ClientID, "new_height", newHeight.String())
	h.EmitEvent(clienttypes.NewMessageEvent())
	h.EmitEvent(clienttypes.NewUpgradeClientEvent(msg.ClientID, msg.UpgradedClientState.ClientType(), newHeight))

	return nil
}
