// Package keeper implements the client subsystem's handlers (spec §4.2):
// CreateClient, UpdateClient, UpgradeClient, and the sudo-only
// RecoverClient. It is the concrete ClientContext host implementations
// plug into, and it is the only place that knows how the exported.ClientState
// capability is wired to the generic host store.
package keeper

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/cosmosnet/ibc-core-engine/exported"
	"github.com/cosmosnet/ibc-core-engine/host"
	clienttypes "github.com/cosmosnet/ibc-core-engine/modules/02-client/types"
	ibctypes "github.com/cosmosnet/ibc-core-engine/types"
)

// Keeper owns the client subsystem. It is stateless beyond the host it
// wraps, matching the teacher's keeper-holds-a-store-handle shape
// (x/pse/keeper.Keeper) generalized to the host-agnostic store interface.
type Keeper struct{}

// NewKeeper returns a new client subsystem keeper.
func NewKeeper() Keeper {
	return Keeper{}
}

// hostContext adapts a host.ReadHost into the narrower exported.ClientContext
// a ClientState implementation is given, per the design note (spec §9) to
// pass context explicitly rather than storing back-references.
type hostContext struct {
	h host.ReadHost
	k Keeper
}

func (k Keeper) contextFor(h host.ReadHost) exported.ClientContext {
	return hostContext{h: h, k: k}
}

func (c hostContext) HostHeight() ibctypes.Height        { return c.h.HostHeight() }
func (c hostContext) HostTimestamp() uint64               { return c.h.HostTimestamp() }
func (c hostContext) CommitmentPrefix() []byte             { return c.h.CommitmentPrefix() }
func (c hostContext) MaxExpectedTimePerBlock() uint64       { return c.h.MaxExpectedTimePerBlock() }

func (c hostContext) GetClientState(clientID string) (exported.ClientState, bool) {
	return c.k.GetClientState(c.h, clientID)
}

func (c hostContext) GetConsensusState(clientID string, height ibctypes.Height) (exported.ConsensusState, bool) {
	return c.k.GetConsensusState(c.h, clientID, height)
}

func (c hostContext) GetSelfConsensusState(height ibctypes.Height) (exported.ConsensusState, error) {
	v, ok := c.h.HostConsensusState(height)
	if !ok {
		return nil, errorsmod.Wrapf(clienttypes.ErrConsensusStateNotFound, "no self consensus state at height %s", height)
	}
	cs, ok := v.(exported.ConsensusState)
	if !ok {
		return nil, errorsmod.Wrapf(clienttypes.ErrConsensusStateNotFound, "self consensus state at height %s has unexpected type %T", height, v)
	}
	return cs, nil
}

// GetClientState fetches and type-asserts the client state stored at
// clients/{id}/clientState.
func (k Keeper) GetClientState(h host.ReadHost, clientID string) (exported.ClientState, bool) {
	v, ok := h.Get(host.FullClientStatePath(clientID))
	if !ok {
		return nil, false
	}
	cs, ok := v.(exported.ClientState)
	return cs, ok
}

// MustGetClientState fetches the client state or returns ErrClientNotFound.
func (k Keeper) MustGetClientState(h host.ReadHost, clientID string) (exported.ClientState, error) {
	cs, ok := k.GetClientState(h, clientID)
	if !ok {
		return nil, errorsmod.Wrapf(clienttypes.ErrClientNotFound, "client %s not found", clientID)
	}
	return cs, nil
}

// SetClientState persists the client state.
func (k Keeper) SetClientState(h host.WriteHost, clientID string, cs exported.ClientState) {
	h.Set(host.FullClientStatePath(clientID), cs)
}

// GetConsensusState fetches and type-asserts the consensus state stored at
// clients/{id}/consensusStates/{rev}-{h}.
func (k Keeper) GetConsensusState(h host.ReadHost, clientID string, height ibctypes.Height) (exported.ConsensusState, bool) {
	v, ok := h.Get(host.FullConsensusStatePath(clientID, height.RevisionNumber, height.RevisionHeight))
	if !ok {
		return nil, false
	}
	cs, ok := v.(exported.ConsensusState)
	return cs, ok
}

// SetConsensusState persists a consensus state at the given height.
func (k Keeper) SetConsensusState(h host.WriteHost, clientID string, height ibctypes.Height, cs exported.ConsensusState) {
	h.Set(host.FullConsensusStatePath(clientID, height.RevisionNumber, height.RevisionHeight), cs)
}

// ClientStatus derives the current status of clientID by delegating to its
// ClientState's own Status method with an appropriately scoped context
// (spec §4.2 "Status derivation").
func (k Keeper) ClientStatus(h host.ReadHost, clientID string) (exported.Status, error) {
	cs, ok := k.GetClientState(h, clientID)
	if !ok {
		return exported.Unauthorized, errorsmod.Wrapf(clienttypes.ErrClientNotFound, "client %s not found", clientID)
	}
	return cs.Status(k.contextFor(h), clientID), nil
}

// generateClientIdentifier allocates "<client-type>-<counter>" and advances
// the host's client counter exactly once (spec §5 "incremented exactly once
// per allocation").
func (k Keeper) generateClientIdentifier(h host.WriteHost, clientType string) string {
	counter := h.IncrementClientCounter()
	return ibctypes.FormatClientID(clientType, counter)
}

