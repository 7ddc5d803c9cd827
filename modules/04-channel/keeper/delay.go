package keeper

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/cosmosnet/ibc-core-engine/host"
	connectiontypes "github.com/cosmosnet/ibc-core-engine/modules/03-connection/types"
	channeltypes "github.com/cosmosnet/ibc-core-engine/modules/04-channel/types"
	ibctypes "github.com/cosmosnet/ibc-core-engine/types"
)

// enforceDelayPeriod checks both the time-based and block-based halves of a
// connection's delay period have elapsed since proofHeight (spec §4.5
// Acknowledgement step 6, Timeout step 7). The clocks being compared are
// both the local host's own: the local host time/height recorded via
// SetUpdateMeta at the moment this chain processed the consensus state at
// proofHeight, versus the local host's current time/height. The
// counterparty's own consensus state timestamp and proofHeight are a
// different chain's clock entirely and play no part in this check (spec
// §4.2 "record update metadata for that height").
func (k Keeper) enforceDelayPeriod(h host.ReadHost, conn connectiontypes.ConnectionEnd, clientID string, proofHeight ibctypes.Height) error {
	if conn.DelayPeriod == 0 {
		return nil
	}

	updateTime, updateHeight, ok := h.GetUpdateMeta(clientID, proofHeight)
	if !ok {
		return errorsmod.Wrapf(channeltypes.ErrDelayPeriodNotElapsed, "no update metadata for client %s at height %s", clientID, proofHeight)
	}

	if updateTime+conn.DelayPeriod > h.HostTimestamp() {
		return errorsmod.Wrapf(channeltypes.ErrDelayPeriodNotElapsed, "time delay period of %dns has not elapsed since proof height", conn.DelayPeriod)
	}

	maxTimePerBlock := h.MaxExpectedTimePerBlock()
	if maxTimePerBlock == 0 {
		return nil
	}
	delayBlocks := (conn.DelayPeriod + maxTimePerBlock - 1) / maxTimePerBlock
	if updateHeight.RevisionHeight+delayBlocks > h.HostHeight().RevisionHeight {
		return errorsmod.Wrapf(channeltypes.ErrDelayPeriodNotElapsed, "block delay period of %d blocks has not elapsed since proof height", delayBlocks)
	}

	return nil
}
