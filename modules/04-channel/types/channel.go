// Package types holds the channel and packet subsystem's data model (spec
// §3, §4.4, §4.5): the per-channel handshake state machine and the packet
// commitment/receipt/acknowledgement scheme layered over an Open connection.
package types

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	errorsmod "cosmossdk.io/errors"

	ibctypes "github.com/cosmosnet/ibc-core-engine/types"
)

// State is a channel end's position in its five-state lifecycle.
type State string

const (
	Uninitialized State = "STATE_UNINITIALIZED_UNSPECIFIED"
	Init          State = "STATE_INIT"
	TryOpen       State = "STATE_TRYOPEN"
	Open          State = "STATE_OPEN"
	Closed        State = "STATE_CLOSED"
)

// Order is a channel's delivery ordering guarantee.
type Order string

const (
	NoneOrder     Order = "ORDER_NONE_UNSPECIFIED"
	Unordered     Order = "ORDER_UNORDERED"
	Ordered       Order = "ORDER_ORDERED"
)

// Feature returns the connection-version feature string this ordering
// requires support for (spec §4.4 "verify the chosen ordering is supported
// by the connection version's feature set").
func (o Order) Feature() string { return string(o) }

// Counterparty identifies the remote side of a channel (spec §3).
type Counterparty struct {
	PortID    string
	ChannelID string
}

func (c Counterparty) HasChannelID() bool { return c.ChannelID != "" }

// ChannelEnd is the per-channel record (spec §3 "ChannelEnd").
type ChannelEnd struct {
	State          State
	Ordering       Order
	Counterparty   Counterparty
	ConnectionHops []string
	Version        string
}

// ValidateBasic checks ChannelEnd's own invariants (spec §3: single-hop
// only; counterparty channel id present in TryOpen and Open).
func (c ChannelEnd) ValidateBasic() error {
	if len(c.ConnectionHops) != 1 {
		return errorsmod.Wrapf(ErrInvalidChannel, "connection hops must have exactly one entry, got %d", len(c.ConnectionHops))
	}
	if err := ibctypes.ValidatePortID(c.Counterparty.PortID); err != nil {
		return errorsmod.Wrap(err, "counterparty port id")
	}
	if (c.State == TryOpen || c.State == Open) && !c.Counterparty.HasChannelID() {
		return errorsmod.Wrapf(ErrInvalidChannel, "channel in state %s must carry a counterparty channel id", c.State)
	}
	return nil
}

// CommitmentBytes is the deterministic encoding a membership proof of this
// channel end commits to (see connection.ConnectionEnd.CommitmentBytes for
// the same design note).
func (c ChannelEnd) CommitmentBytes() []byte {
	return []byte(fmt.Sprintf("%s/%s/%s/%s/%s/%s", c.State, c.Ordering, c.Counterparty.PortID, c.Counterparty.ChannelID, c.ConnectionHops[0], c.Version))
}

// Packet is one packet's full identity and payload (spec §3 "Packet").
type Packet struct {
	Sequence           uint64
	SourcePort         string
	SourceChannel      string
	DestPort           string
	DestChannel        string
	Data               []byte
	TimeoutHeight      ibctypes.Height
	TimeoutTimestamp   uint64
}

// ValidateBasic checks a packet's own invariants: non-empty data and at
// least one timeout set (spec §3).
func (p Packet) ValidateBasic() error {
	if p.Sequence == 0 {
		return errorsmod.Wrap(ErrInvalidPacket, "sequence cannot be zero")
	}
	if err := ibctypes.ValidatePortID(p.SourcePort); err != nil {
		return errorsmod.Wrap(err, "source port")
	}
	if err := ibctypes.ValidateChannelID(p.SourceChannel); err != nil {
		return errorsmod.Wrap(err, "source channel")
	}
	if err := ibctypes.ValidatePortID(p.DestPort); err != nil {
		return errorsmod.Wrap(err, "destination port")
	}
	if err := ibctypes.ValidateChannelID(p.DestChannel); err != nil {
		return errorsmod.Wrap(err, "destination channel")
	}
	if len(p.Data) == 0 {
		return errorsmod.Wrap(ErrInvalidPacket, "data cannot be empty")
	}
	if p.TimeoutHeight.IsZero() && p.TimeoutTimestamp == 0 {
		return errorsmod.Wrap(ErrInvalidPacket, "at least one of timeout height or timeout timestamp must be set")
	}
	return nil
}

// CommitPacket computes the 32-byte packet commitment: SHA-256 over the
// big-endian timeout timestamp, timeout revision number and timeout revision
// height, followed by SHA-256(data). No domain separator is mixed in.
func CommitPacket(p Packet) []byte {
	h := sha256.New()
	var tsBuf [8]byte
	binary.BigEndian.PutUint64(tsBuf[:], p.TimeoutTimestamp)
	h.Write(tsBuf[:])

	var rnBuf, rhBuf [8]byte
	binary.BigEndian.PutUint64(rnBuf[:], p.TimeoutHeight.RevisionNumber)
	binary.BigEndian.PutUint64(rhBuf[:], p.TimeoutHeight.RevisionHeight)
	h.Write(rnBuf[:])
	h.Write(rhBuf[:])

	dataHash := sha256.Sum256(p.Data)
	h.Write(dataHash[:])

	sum := h.Sum(nil)
	return sum[:]
}

// CommitAcknowledgement hashes the acknowledgement bytes stored at the ack
// path after a receive (spec §3 "AcknowledgementCommitment").
func CommitAcknowledgement(ack []byte) []byte {
	sum := sha256.Sum256(ack)
	return sum[:]
}

// ReceiptOk is the sentinel value stored at a packet's receipt path on
// successful receive over an unordered channel (spec §3 "Receipt").
var ReceiptOk = []byte{1}

// SequenceCommitmentBytes is the deterministic encoding a membership proof
// of a stored sequence number (e.g. next_sequence_recv) commits to, for the
// same reason ChannelEnd/ConnectionEnd have a CommitmentBytes method (spec
// §4.5 Timeout step 5, Ordered case).
func SequenceCommitmentBytes(seq uint64) []byte {
	return []byte(fmt.Sprintf("%d", seq))
}
