package types

import (
	errorsmod "cosmossdk.io/errors"

	ibctypes "github.com/cosmosnet/ibc-core-engine/types"
)

type MsgChannelOpenInit struct {
	PortID  string
	Channel ChannelEnd
	Signer  string
}

func (msg MsgChannelOpenInit) ValidateBasic() error {
	if err := ibctypes.ValidatePortID(msg.PortID); err != nil {
		return errorsmod.Wrap(err, "port id")
	}
	if err := msg.Channel.ValidateBasic(); err != nil {
		return err
	}
	if msg.Channel.State != Init {
		return errorsmod.Wrapf(ErrInvalidChannelState, "channel must be proposed in state Init, got %s", msg.Channel.State)
	}
	if msg.Signer == "" {
		return errorsmod.Wrap(ErrInvalidChannel, "signer cannot be empty")
	}
	return nil
}

type MsgChannelOpenTry struct {
	PortID              string
	Channel             ChannelEnd
	CounterpartyVersion string

	ProofHeight ibctypes.Height
	ProofInit   []byte

	Signer string
}

func (msg MsgChannelOpenTry) ValidateBasic() error {
	if err := ibctypes.ValidatePortID(msg.PortID); err != nil {
		return errorsmod.Wrap(err, "port id")
	}
	if err := msg.Channel.ValidateBasic(); err != nil {
		return err
	}
	if msg.Channel.State != TryOpen {
		return errorsmod.Wrapf(ErrInvalidChannelState, "channel must be proposed in state TryOpen, got %s", msg.Channel.State)
	}
	if len(msg.ProofInit) == 0 {
		return errorsmod.Wrap(ErrInvalidProof, "proof cannot be empty")
	}
	if !msg.ProofHeight.IsValid() {
		return errorsmod.Wrap(ErrInvalidChannel, "proof height must be valid")
	}
	if msg.Signer == "" {
		return errorsmod.Wrap(ErrInvalidChannel, "signer cannot be empty")
	}
	return nil
}

type MsgChannelOpenAck struct {
	PortID                string
	ChannelID             string
	CounterpartyChannelID string
	CounterpartyVersion   string

	ProofHeight ibctypes.Height
	ProofTry    []byte

	Signer string
}

func (msg MsgChannelOpenAck) ValidateBasic() error {
	if err := ibctypes.ValidatePortID(msg.PortID); err != nil {
		return errorsmod.Wrap(err, "port id")
	}
	if err := ibctypes.ValidateChannelID(msg.ChannelID); err != nil {
		return errorsmod.Wrap(err, "channel id")
	}
	if err := ibctypes.ValidateChannelID(msg.CounterpartyChannelID); err != nil {
		return errorsmod.Wrap(err, "counterparty channel id")
	}
	if len(msg.ProofTry) == 0 {
		return errorsmod.Wrap(ErrInvalidProof, "proof cannot be empty")
	}
	if !msg.ProofHeight.IsValid() {
		return errorsmod.Wrap(ErrInvalidChannel, "proof height must be valid")
	}
	if msg.Signer == "" {
		return errorsmod.Wrap(ErrInvalidChannel, "signer cannot be empty")
	}
	return nil
}

type MsgChannelOpenConfirm struct {
	PortID      string
	ChannelID   string
	ProofHeight ibctypes.Height
	ProofAck    []byte
	Signer      string
}

func (msg MsgChannelOpenConfirm) ValidateBasic() error {
	if err := ibctypes.ValidatePortID(msg.PortID); err != nil {
		return errorsmod.Wrap(err, "port id")
	}
	if err := ibctypes.ValidateChannelID(msg.ChannelID); err != nil {
		return errorsmod.Wrap(err, "channel id")
	}
	if len(msg.ProofAck) == 0 {
		return errorsmod.Wrap(ErrInvalidProof, "proof cannot be empty")
	}
	if !msg.ProofHeight.IsValid() {
		return errorsmod.Wrap(ErrInvalidChannel, "proof height must be valid")
	}
	if msg.Signer == "" {
		return errorsmod.Wrap(ErrInvalidChannel, "signer cannot be empty")
	}
	return nil
}

type MsgChannelCloseInit struct {
	PortID    string
	ChannelID string
	Signer    string
}

func (msg MsgChannelCloseInit) ValidateBasic() error {
	if err := ibctypes.ValidatePortID(msg.PortID); err != nil {
		return errorsmod.Wrap(err, "port id")
	}
	if err := ibctypes.ValidateChannelID(msg.ChannelID); err != nil {
		return errorsmod.Wrap(err, "channel id")
	}
	if msg.Signer == "" {
		return errorsmod.Wrap(ErrInvalidChannel, "signer cannot be empty")
	}
	return nil
}

type MsgChannelCloseConfirm struct {
	PortID      string
	ChannelID   string
	ProofHeight ibctypes.Height
	ProofInit   []byte
	Signer      string
}

func (msg MsgChannelCloseConfirm) ValidateBasic() error {
	if err := ibctypes.ValidatePortID(msg.PortID); err != nil {
		return errorsmod.Wrap(err, "port id")
	}
	if err := ibctypes.ValidateChannelID(msg.ChannelID); err != nil {
		return errorsmod.Wrap(err, "channel id")
	}
	if len(msg.ProofInit) == 0 {
		return errorsmod.Wrap(ErrInvalidProof, "proof cannot be empty")
	}
	if !msg.ProofHeight.IsValid() {
		return errorsmod.Wrap(ErrInvalidChannel, "proof height must be valid")
	}
	if msg.Signer == "" {
		return errorsmod.Wrap(ErrInvalidChannel, "signer cannot be empty")
	}
	return nil
}

type MsgRecvPacket struct {
	Packet      Packet
	ProofHeight ibctypes.Height
	Proof       []byte
	Signer      string
}

func (msg MsgRecvPacket) ValidateBasic() error {
	if err := msg.Packet.ValidateBasic(); err != nil {
		return err
	}
	if len(msg.Proof) == 0 {
		return errorsmod.Wrap(ErrInvalidProof, "proof cannot be empty")
	}
	if !msg.ProofHeight.IsValid() {
		return errorsmod.Wrap(ErrInvalidChannel, "proof height must be valid")
	}
	if msg.Signer == "" {
		return errorsmod.Wrap(ErrInvalidChannel, "signer cannot be empty")
	}
	return nil
}

type MsgAcknowledgement struct {
	Packet          Packet
	Acknowledgement []byte
	ProofHeight     ibctypes.Height
	ProofAcked      []byte
	Signer          string
}

func (msg MsgAcknowledgement) ValidateBasic() error {
	if err := msg.Packet.ValidateBasic(); err != nil {
		return err
	}
	if len(msg.Acknowledgement) == 0 {
		return errorsmod.Wrap(ErrInvalidAcknowledgement, "acknowledgement cannot be empty")
	}
	if len(msg.ProofAcked) == 0 {
		return errorsmod.Wrap(ErrInvalidProof, "proof cannot be empty")
	}
	if !msg.ProofHeight.IsValid() {
		return errorsmod.Wrap(ErrInvalidChannel, "proof height must be valid")
	}
	if msg.Signer == "" {
		return errorsmod.Wrap(ErrInvalidChannel, "signer cannot be empty")
	}
	return nil
}

type MsgTimeout struct {
	Packet           Packet
	ProofHeight      ibctypes.Height
	ProofUnreceived  []byte
	NextSequenceRecv uint64
	Signer           string
}

func (msg MsgTimeout) ValidateBasic() error {
	if err := msg.Packet.ValidateBasic(); err != nil {
		return err
	}
	if len(msg.ProofUnreceived) == 0 {
		return errorsmod.Wrap(ErrInvalidProof, "proof cannot be empty")
	}
	if !msg.ProofHeight.IsValid() {
		return errorsmod.Wrap(ErrInvalidChannel, "proof height must be valid")
	}
	if msg.Signer == "" {
		return errorsmod.Wrap(ErrInvalidChannel, "signer cannot be empty")
	}
	return nil
}

type MsgTimeoutOnClose struct {
	Packet           Packet
	ProofHeight      ibctypes.Height
	ProofUnreceived  []byte
	ProofClose       []byte
	NextSequenceRecv uint64
	Signer           string
}

func (msg MsgTimeoutOnClose) ValidateBasic() error {
	if err := msg.Packet.ValidateBasic(); err != nil {
		return err
	}
	if len(msg.ProofUnreceived) == 0 || len(msg.ProofClose) == 0 {
		return errorsmod.Wrap(ErrInvalidProof, "proofs cannot be empty")
	}
	if !msg.ProofHeight.IsValid() {
		return errorsmod.Wrap(ErrInvalidChannel, "proof height must be valid")
	}
	if msg.Signer == "" {
		return errorsmod.Wrap(ErrInvalidChannel, "signer cannot be empty")
	}
	return nil
}
