package tendermint

import (
	errorsmod "cosmossdk.io/errors"
)

// Misbehaviour is the other ClientMessage variant (spec §3
// "header/evidence"): two conflicting signed headers for the same height,
// each independently verifiable against the trusted store, proving the
// validator set double-signed.
type Misbehaviour struct {
	Header1 *Header
	Header2 *Header
}

// ClientType implements exported.ClientMessage.
func (m *Misbehaviour) ClientType() string { return ClientType }

// ValidateBasic implements exported.ClientMessage.
func (m *Misbehaviour) ValidateBasic() error {
	if m.Header1 == nil || m.Header2 == nil {
		return errorsmod.Wrap(ErrInvalidMisbehaviour, "both headers must be set")
	}
	if err := m.Header1.ValidateBasic(); err != nil {
		return errorsmod.Wrap(ErrInvalidMisbehaviour, "header1: "+err.Error())
	}
	if err := m.Header2.ValidateBasic(); err != nil {
		return errorsmod.Wrap(ErrInvalidMisbehaviour, "header2: "+err.Error())
	}
	if m.Header1.SignedHeader.Header.ChainID != m.Header2.SignedHeader.Header.ChainID {
		return errorsmod.Wrap(ErrInvalidMisbehaviour, "headers belong to different chains")
	}
	if m.Header1.GetHeight().EQ(m.Header2.GetHeight()) &&
		bytesEqual(m.Header1.SignedHeader.Header.Hash(), m.Header2.SignedHeader.Header.Hash()) {
		return errorsmod.Wrap(ErrInvalidMisbehaviour, "headers are identical, not conflicting")
	}
	return nil
}
