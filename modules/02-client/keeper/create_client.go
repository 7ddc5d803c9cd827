package keeper

import (
	"github.com/cosmosnet/ibc-core-engine/host"
	clienttypes "github.com/cosmosnet/ibc-core-engine/modules/02-client/types"
)

// ValidateCreateClient is the validate phase of MsgCreateClient. There is
// nothing in the store to check against yet: the only preconditions are
// the message's own well-formedness, already covered by ValidateBasic, and
// validity of the client state itself.
func (k Keeper) ValidateCreateClient(h host.ReadHost, msg clienttypes.MsgCreateClient) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	return nil
}

// ExecuteCreateClient allocates a fresh client id, persists the initial
// client and consensus state, and emits CreateClient (spec §4.2).
func (k Keeper) ExecuteCreateClient(h host.WriteHost, msg clienttypes.MsgCreateClient) (string, error) {
	clientID := k.generateClientIdentifier(h, msg.ClientState.ClientType())

	k.SetClientState(h, clientID, msg.ClientState)
	k.SetConsensusState(h, clientID, msg.ClientState.LatestHeight(), msg.ConsensusState)
	h.SetUpdateMeta(clientID, msg.ClientState.LatestHeight(), h.HostTimestamp(), h.HostHeight())

	h.Logger().Info("client created", "client_id", clientID, "client_type", msg.ClientState.ClientType())
	h.EmitEvent(clienttypes.NewMessageEvent())
	h.EmitEvent(clienttypes.NewCreateClientEvent(clientID, msg.ClientState.ClientType(), msg.ClientState.LatestHeight()))

	return clientID, nil
}

