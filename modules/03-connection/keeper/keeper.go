// Package keeper implements the connection subsystem's handshake handlers
// (spec §4.3): OpenInit, OpenTry, OpenAck, OpenConfirm.
package keeper

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/cosmosnet/ibc-core-engine/exported"
	"github.com/cosmosnet/ibc-core-engine/host"
	clientkeeper "github.com/cosmosnet/ibc-core-engine/modules/02-client/keeper"
	connectiontypes "github.com/cosmosnet/ibc-core-engine/modules/03-connection/types"
	ibctypes "github.com/cosmosnet/ibc-core-engine/types"
)

// Keeper owns the connection subsystem. It depends on the client subsystem's
// keeper to resolve client status and verify proofs, mirroring how the
// teacher's keepers depend on each other through plain struct fields rather
// than a shared global registry.
type Keeper struct {
	ClientKeeper clientkeeper.Keeper
}

func NewKeeper(clientKeeper clientkeeper.Keeper) Keeper {
	return Keeper{ClientKeeper: clientKeeper}
}

// GetConnection fetches and type-asserts the connection end stored at
// connections/{id}.
func (k Keeper) GetConnection(h host.ReadHost, connectionID string) (connectiontypes.ConnectionEnd, bool) {
	v, ok := h.Get(host.FullConnectionPath(connectionID))
	if !ok {
		return connectiontypes.ConnectionEnd{}, false
	}
	conn, ok := v.(connectiontypes.ConnectionEnd)
	return conn, ok
}

// MustGetConnection fetches the connection end or returns ErrConnectionNotFound.
func (k Keeper) MustGetConnection(h host.ReadHost, connectionID string) (connectiontypes.ConnectionEnd, error) {
	conn, ok := k.GetConnection(h, connectionID)
	if !ok {
		return connectiontypes.ConnectionEnd{}, errorsmod.Wrapf(connectiontypes.ErrConnectionNotFound, "connection %s not found", connectionID)
	}
	return conn, nil
}

// SetConnection persists the connection end.
func (k Keeper) SetConnection(h host.WriteHost, connectionID string, conn connectiontypes.ConnectionEnd) {
	h.Set(host.FullConnectionPath(connectionID), conn)
}

// generateConnectionIdentifier allocates "connection-<counter>" and
// advances the host's connection counter exactly once (spec §5).
func (k Keeper) generateConnectionIdentifier(h host.WriteHost) string {
	counter := h.IncrementConnectionCounter()
	return ibctypes.FormatConnectionID(counter)
}

// requireActiveClient loads clientID's state and requires it Active,
// returning the client state for subsequent proof verification.
func (k Keeper) requireActiveClient(h host.ReadHost, clientID string) (exported.ClientState, error) {
	clientState, err := k.ClientKeeper.MustGetClientState(h, clientID)
	if err != nil {
		return nil, err
	}
	status, err := k.ClientKeeper.ClientStatus(h, clientID)
	if err != nil {
		return nil, err
	}
	if status != exported.Active {
		return nil, errorsmod.Wrapf(connectiontypes.ErrClientNotActive, "client %s has status %s", clientID, status)
	}
	return clientState, nil
}

// validateSelfClient checks that the client description a counterparty
// claims to hold of this chain (clientState) is consistent with this
// chain's own recollection of itself, protecting against an impostor chain
// advertising a bogus self-description (spec §4.3 "self-client
// description").
func (k Keeper) validateSelfClient(h host.ReadHost, clientState exported.ClientState) error {
	if clientState.ClientType() == "" {
		return errorsmod.Wrap(connectiontypes.ErrInvalidClientState, "client type cannot be empty")
	}
	if err := clientState.Validate(); err != nil {
		return errorsmod.Wrap(connectiontypes.ErrInvalidClientState, err.Error())
	}
	if clientState.LatestHeight().GT(h.HostHeight()) {
		return errorsmod.Wrapf(connectiontypes.ErrInvalidClientState,
			"counterparty's claimed client height %s is greater than the current host height %s", clientState.LatestHeight(), h.HostHeight())
	}
	return nil
}
