package tendermint

import (
	errorsmod "cosmossdk.io/errors"
	cmttypes "github.com/cometbft/cometbft/types"

	"github.com/cosmosnet/ibc-core-engine/exported"
	"github.com/cosmosnet/ibc-core-engine/types"
)

// Header is the ClientMessage a relayer submits to advance the client (spec
// §3 "header/evidence"). It carries a signed header plus the validator set
// that produced it, and the height/validator set the client already trusts,
// so the skipping-verification algorithm can walk from known to new.
type Header struct {
	SignedHeader *cmttypes.SignedHeader
	ValidatorSet *cmttypes.ValidatorSet

	TrustedHeight     types.Height
	TrustedValidators *cmttypes.ValidatorSet
}

// ClientType implements exported.ClientMessage.
func (h *Header) ClientType() string { return ClientType }

// GetHeight returns the height this header would install.
func (h *Header) GetHeight() types.Height {
	return types.NewHeight(types.ParseChainID(h.SignedHeader.Header.ChainID), uint64(h.SignedHeader.Header.Height))
}

// NewHeight implements exported.HeaderMessage.
func (h *Header) NewHeight() types.Height { return h.GetHeight() }

// NewConsensusState implements exported.HeaderMessage.
func (h *Header) NewConsensusState() exported.ConsensusState {
	return NewConsensusStateFromHeader(h)
}

// ValidateBasic implements exported.ClientMessage.
func (h *Header) ValidateBasic() error {
	if h.SignedHeader == nil || h.SignedHeader.Header == nil {
		return errorsmod.Wrap(ErrInvalidHeader, "signed header cannot be nil")
	}
	if h.ValidatorSet == nil {
		return errorsmod.Wrap(ErrInvalidHeader, "validator set cannot be nil")
	}
	if h.TrustedValidators == nil {
		return errorsmod.Wrap(ErrInvalidHeader, "trusted validator set cannot be nil")
	}
	if !h.TrustedHeight.IsValid() {
		return errorsmod.Wrap(ErrInvalidHeader, "trusted height must have a nonzero revision height")
	}
	if err := h.SignedHeader.ValidateBasic(h.SignedHeader.Header.ChainID); err != nil {
		return errorsmod.Wrapf(ErrInvalidHeader, "signed header failed basic validation: %v", err)
	}
	if !bytesEqual(h.ValidatorSet.Hash(), h.SignedHeader.Header.ValidatorsHash) {
		return errorsmod.Wrap(ErrInvalidHeader, "validator set does not match header's validators hash")
	}
	return nil
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
