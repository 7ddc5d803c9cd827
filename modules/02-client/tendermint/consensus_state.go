package tendermint

import (
	"encoding/binary"

	errorsmod "cosmossdk.io/errors"
)

// ConsensusState is the canonical client's per-height consensus record
// (spec §3 "ConsensusState (per client, per height)").
type ConsensusState struct {
	// TimestampNanos is the host chain block time, nanoseconds since epoch.
	TimestampNanos uint64
	// Root is the Merkle root ICS-23 proofs are checked against.
	Root []byte
	// NextValidatorsHash pins the validator set expected to sign the next
	// header, the link the skipping-verification algorithm walks.
	NextValidatorsHash []byte
}

// NewConsensusState builds a consensus state.
func NewConsensusState(timestampNanos uint64, root, nextValidatorsHash []byte) *ConsensusState {
	return &ConsensusState{
		TimestampNanos:     timestampNanos,
		Root:               root,
		NextValidatorsHash: nextValidatorsHash,
	}
}

// ClientType implements exported.ConsensusState.
func (cons *ConsensusState) ClientType() string { return ClientType }

// GetTimestamp implements exported.ConsensusState.
func (cons *ConsensusState) GetTimestamp() uint64 { return cons.TimestampNanos }

// GetRoot implements exported.ConsensusState.
func (cons *ConsensusState) GetRoot() []byte { return cons.Root }

// ValidateBasic implements exported.ConsensusState.
func (cons *ConsensusState) ValidateBasic() error {
	if len(cons.Root) == 0 {
		return errorsmod.Wrap(ErrInvalidConsensusState, "root cannot be empty")
	}
	if len(cons.NextValidatorsHash) == 0 {
		return errorsmod.Wrap(ErrInvalidConsensusState, "next validators hash cannot be empty")
	}
	if cons.TimestampNanos == 0 {
		return errorsmod.Wrap(ErrInvalidConsensusState, "timestamp cannot be zero")
	}
	return nil
}

// CommitmentBytes implements exported.ConsensusState (see
// ClientState.CommitmentBytes).
func (cons *ConsensusState) CommitmentBytes() []byte {
	buf := make([]byte, 8, 8+len(cons.Root)+len(cons.NextValidatorsHash))
	binary.BigEndian.PutUint64(buf, cons.TimestampNanos)
	buf = append(buf, cons.Root...)
	buf = append(buf, cons.NextValidatorsHash...)
	return buf
}
