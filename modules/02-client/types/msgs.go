package types

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/cosmosnet/ibc-core-engine/exported"
	ibctypes "github.com/cosmosnet/ibc-core-engine/types"
)

// MsgCreateClient corresponds to /ibc.core.client.v1.MsgCreateClient
// (spec §6).
type MsgCreateClient struct {
	ClientState    exported.ClientState
	ConsensusState exported.ConsensusState
	Signer         string
}

// ValidateBasic performs stateless checks before validate ever touches the
// store.
func (msg MsgCreateClient) ValidateBasic() error {
	if msg.ClientState == nil {
		return errorsmod.Wrap(ErrInvalidClient, "client state cannot be nil")
	}
	if msg.ConsensusState == nil {
		return errorsmod.Wrap(ErrInvalidClient, "consensus state cannot be nil")
	}
	if msg.ClientState.ClientType() != msg.ConsensusState.ClientType() {
		return errorsmod.Wrapf(ErrInvalidClient, "client state type %q does not match consensus state type %q",
			msg.ClientState.ClientType(), msg.ConsensusState.ClientType())
	}
	if err := msg.ClientState.Validate(); err != nil {
		return errorsmod.Wrap(ErrInvalidClient, err.Error())
	}
	if err := msg.ConsensusState.ValidateBasic(); err != nil {
		return errorsmod.Wrap(ErrInvalidClient, err.Error())
	}
	if msg.Signer == "" {
		return errorsmod.Wrap(ErrInvalidClient, "signer cannot be empty")
	}
	return nil
}

// MsgUpdateClient corresponds to /ibc.core.client.v1.MsgUpdateClient. Per
// spec §6, MsgSubmitMisbehaviour is aliased to this same message: whether the
// client message turns out to be a legitimate header or misbehaviour
// evidence is determined inside the handler, not by the wire message shape.
type MsgUpdateClient struct {
	ClientID      string
	ClientMessage exported.ClientMessage
	Signer        string
}

func (msg MsgUpdateClient) ValidateBasic() error {
	if err := ibctypes.ValidateClientID(msg.ClientID); err != nil {
		return err
	}
	if msg.ClientMessage == nil {
		return errorsmod.Wrap(ErrInvalidClientMessage, "client message cannot be nil")
	}
	if err := msg.ClientMessage.ValidateBasic(); err != nil {
		return errorsmod.Wrap(ErrInvalidClientMessage, err.Error())
	}
	if msg.Signer == "" {
		return errorsmod.Wrap(ErrInvalidClient, "signer cannot be empty")
	}
	return nil
}

// MsgUpgradeClient corresponds to /ibc.core.client.v1.MsgUpgradeClient.
type MsgUpgradeClient struct {
	ClientID                   string
	UpgradedClientState        exported.ClientState
	UpgradedConsensusState     exported.ConsensusState
	ProofUpgradeClient         []byte
	ProofUpgradeConsensusState []byte
	Signer                     string
}

func (msg MsgUpgradeClient) ValidateBasic() error {
	if err := ibctypes.ValidateClientID(msg.ClientID); err != nil {
		return err
	}
	if msg.UpgradedClientState == nil || msg.UpgradedConsensusState == nil {
		return errorsmod.Wrap(ErrInvalidClient, "upgraded client and consensus state cannot be nil")
	}
	if len(msg.ProofUpgradeClient) == 0 || len(msg.ProofUpgradeConsensusState) == 0 {
		return errorsmod.Wrap(ErrInvalidUpgradeProof, "upgrade proofs cannot be empty")
	}
	if msg.Signer == "" {
		return errorsmod.Wrap(ErrInvalidClient, "signer cannot be empty")
	}
	return nil
}
