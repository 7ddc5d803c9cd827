package types

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/cosmosnet/ibc-core-engine/exported"
	ibctypes "github.com/cosmosnet/ibc-core-engine/types"
)

// MsgConnectionOpenInit is the OpenInit wire message (spec §4.3, §6).
type MsgConnectionOpenInit struct {
	ClientID     string
	Counterparty Counterparty
	Version      *Version
	DelayPeriod  uint64
	Signer       string
}

func (msg MsgConnectionOpenInit) ValidateBasic() error {
	if err := ibctypes.ValidateClientID(msg.ClientID); err != nil {
		return errorsmod.Wrap(err, "client id")
	}
	if err := ibctypes.ValidateClientID(msg.Counterparty.ClientID); err != nil {
		return errorsmod.Wrap(err, "counterparty client id")
	}
	if len(msg.Counterparty.Prefix) == 0 {
		return errorsmod.Wrap(ErrInvalidConnection, "counterparty commitment prefix cannot be empty")
	}
	if msg.Signer == "" {
		return errorsmod.Wrap(ErrInvalidConnection, "signer cannot be empty")
	}
	return nil
}

// MsgConnectionOpenTry is the OpenTry wire message (spec §4.3).
type MsgConnectionOpenTry struct {
	ClientID             string
	Counterparty         Counterparty
	CounterpartyVersions []Version
	DelayPeriod          uint64

	ClientState exported.ClientState

	ProofHeight                ibctypes.Height
	ProofInit                  []byte
	ProofClient                []byte
	ProofConsensus             []byte
	ConsensusHeight            ibctypes.Height

	Signer string
}

func (msg MsgConnectionOpenTry) ValidateBasic() error {
	if err := ibctypes.ValidateClientID(msg.ClientID); err != nil {
		return errorsmod.Wrap(err, "client id")
	}
	if err := ibctypes.ValidateClientID(msg.Counterparty.ClientID); err != nil {
		return errorsmod.Wrap(err, "counterparty client id")
	}
	if !msg.Counterparty.HasConnectionID() {
		return errorsmod.Wrap(ErrInvalidConnection, "counterparty connection id cannot be empty")
	}
	if len(msg.CounterpartyVersions) == 0 {
		return errorsmod.Wrap(ErrInvalidVersion, "counterparty versions cannot be empty")
	}
	if msg.ClientState == nil {
		return errorsmod.Wrap(ErrInvalidClientState, "client state cannot be nil")
	}
	if err := msg.ClientState.Validate(); err != nil {
		return errorsmod.Wrap(ErrInvalidClientState, err.Error())
	}
	if len(msg.ProofInit) == 0 || len(msg.ProofClient) == 0 || len(msg.ProofConsensus) == 0 {
		return errorsmod.Wrap(ErrInvalidProof, "all three proofs must be non-empty")
	}
	if !msg.ProofHeight.IsValid() || !msg.ConsensusHeight.IsValid() {
		return errorsmod.Wrap(ErrInvalidConsensusHeight, "proof height and consensus height must be valid")
	}
	if msg.Signer == "" {
		return errorsmod.Wrap(ErrInvalidConnection, "signer cannot be empty")
	}
	return nil
}

// MsgConnectionOpenAck is the OpenAck wire message (spec §4.3).
type MsgConnectionOpenAck struct {
	ConnectionID             string
	CounterpartyConnectionID string
	Version                  Version

	ClientState exported.ClientState

	ProofHeight     ibctypes.Height
	ProofTry        []byte
	ProofClient     []byte
	ProofConsensus  []byte
	ConsensusHeight ibctypes.Height

	Signer string
}

func (msg MsgConnectionOpenAck) ValidateBasic() error {
	if err := ibctypes.ValidateConnectionID(msg.ConnectionID); err != nil {
		return errorsmod.Wrap(err, "connection id")
	}
	if err := ibctypes.ValidateConnectionID(msg.CounterpartyConnectionID); err != nil {
		return errorsmod.Wrap(err, "counterparty connection id")
	}
	if msg.ClientState == nil {
		return errorsmod.Wrap(ErrInvalidClientState, "client state cannot be nil")
	}
	if err := msg.ClientState.Validate(); err != nil {
		return errorsmod.Wrap(ErrInvalidClientState, err.Error())
	}
	if len(msg.ProofTry) == 0 || len(msg.ProofClient) == 0 || len(msg.ProofConsensus) == 0 {
		return errorsmod.Wrap(ErrInvalidProof, "all three proofs must be non-empty")
	}
	if !msg.ProofHeight.IsValid() || !msg.ConsensusHeight.IsValid() {
		return errorsmod.Wrap(ErrInvalidConsensusHeight, "proof height and consensus height must be valid")
	}
	if msg.Signer == "" {
		return errorsmod.Wrap(ErrInvalidConnection, "signer cannot be empty")
	}
	return nil
}

// MsgConnectionOpenConfirm is the OpenConfirm wire message (spec §4.3).
type MsgConnectionOpenConfirm struct {
	ConnectionID string
	ProofHeight  ibctypes.Height
	ProofAck     []byte
	Signer       string
}

func (msg MsgConnectionOpenConfirm) ValidateBasic() error {
	if err := ibctypes.ValidateConnectionID(msg.ConnectionID); err != nil {
		return errorsmod.Wrap(err, "connection id")
	}
	if len(msg.ProofAck) == 0 {
		return errorsmod.Wrap(ErrInvalidProof, "proof cannot be empty")
	}
	if !msg.ProofHeight.IsValid() {
		return errorsmod.Wrap(ErrInvalidConsensusHeight, "proof height must be valid")
	}
	if msg.Signer == "" {
		return errorsmod.Wrap(ErrInvalidConnection, "signer cannot be empty")
	}
	return nil
}
