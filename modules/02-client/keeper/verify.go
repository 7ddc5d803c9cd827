package keeper

import (
	"github.com/cosmosnet/ibc-core-engine/exported"
	"github.com/cosmosnet/ibc-core-engine/host"
	ibctypes "github.com/cosmosnet/ibc-core-engine/types"
)

// VerifyMembership looks up clientID's client state and delegates to its
// VerifyMembership capability, supplying the appropriately scoped
// ClientContext (spec §4.2). Every other subsystem that needs to check a
// counterparty-held commitment goes through here rather than touching a
// ClientState directly, keeping the ClientContext wiring in one place.
func (k Keeper) VerifyMembership(
	h host.ReadHost,
	clientID string,
	height ibctypes.Height,
	delayTimePeriod, delayBlockPeriod uint64,
	proof []byte,
	path []byte,
	value []byte,
) error {
	clientState, err := k.MustGetClientState(h, clientID)
	if err != nil {
		return err
	}
	return clientState.VerifyMembership(k.contextFor(h), clientID, height, delayTimePeriod, delayBlockPeriod, proof, path, value)
}

// VerifyNonMembership is VerifyMembership's non-membership counterpart.
func (k Keeper) VerifyNonMembership(
	h host.ReadHost,
	clientID string,
	height ibctypes.Height,
	delayTimePeriod, delayBlockPeriod uint64,
	proof []byte,
	path []byte,
) error {
	clientState, err := k.MustGetClientState(h, clientID)
	if err != nil {
		return err
	}
	return clientState.VerifyNonMembership(k.contextFor(h), clientID, height, delayTimePeriod, delayBlockPeriod, proof, path)
}

// GetSelfConsensusState returns this host's own recollection of its
// consensus at height, used by counterparty self-validation during
// handshakes.
func (k Keeper) GetSelfConsensusState(h host.ReadHost, height ibctypes.Height) (exported.ConsensusState, error) {
	return k.contextFor(h).GetSelfConsensusState(height)
}
