// Package types holds the data types shared across every IBC core subsystem:
// heights and the ICS-24 identifier grammar.
package types

import (
	"fmt"
	"strconv"
	"strings"

	errorsmod "cosmossdk.io/errors"
)

// Height is a monotonically increasing pair used to track the progress of a
// chain. Heights of the same revision number are comparable by their
// revision height; a revision bump (e.g. a chain upgrade) resets the
// revision height but never the ordering guarantee across the pair.
type Height struct {
	RevisionNumber uint64
	RevisionHeight uint64
}

// NewHeight constructs a Height from its components.
func NewHeight(revisionNumber, revisionHeight uint64) Height {
	return Height{RevisionNumber: revisionNumber, RevisionHeight: revisionHeight}
}

// ZeroHeight returns the height used as an absent-timeout sentinel.
func ZeroHeight() Height {
	return Height{}
}

// IsZero reports whether the height is the zero value.
func (h Height) IsZero() bool {
	return h.RevisionNumber == 0 && h.RevisionHeight == 0
}

// IsValid reports whether h could represent real on-chain progress: a
// revision height of zero is never a valid tracked height (spec §3).
func (h Height) IsValid() bool {
	return h.RevisionHeight != 0
}

// LT reports whether h is strictly lower than other, ordered lexicographically
// by (RevisionNumber, RevisionHeight).
func (h Height) LT(other Height) bool {
	if h.RevisionNumber != other.RevisionNumber {
		return h.RevisionNumber < other.RevisionNumber
	}
	return h.RevisionHeight < other.RevisionHeight
}

// LTE reports whether h is lower than or equal to other.
func (h Height) LTE(other Height) bool {
	return h.LT(other) || h.EQ(other)
}

// GT reports whether h is strictly greater than other.
func (h Height) GT(other Height) bool {
	return other.LT(h)
}

// GTE reports whether h is greater than or equal to other.
func (h Height) GTE(other Height) bool {
	return !h.LT(other)
}

// EQ reports whether h and other are the same height.
func (h Height) EQ(other Height) bool {
	return h.RevisionNumber == other.RevisionNumber && h.RevisionHeight == other.RevisionHeight
}

// String formats the height as "<rev_num>-<rev_height>", the canonical
// wire representation (spec §3).
func (h Height) String() string {
	return fmt.Sprintf("%d-%d", h.RevisionNumber, h.RevisionHeight)
}

// Increment returns a new height with the revision height advanced by one.
func (h Height) Increment() Height {
	return Height{RevisionNumber: h.RevisionNumber, RevisionHeight: h.RevisionHeight + 1}
}

// ParseHeight parses the canonical "<rev_num>-<rev_height>" representation.
// Empty components, non-numeric components, a missing dash, or more than one
// dash are all rejected, as is a revision height of zero.
func ParseHeight(s string) (Height, error) {
	split := strings.Split(s, "-")
	if len(split) != 2 {
		return Height{}, errorsmod.Wrapf(ErrInvalidHeight, "expected format <revision-number>-<revision-height>, got %q", s)
	}
	if split[0] == "" || split[1] == "" {
		return Height{}, errorsmod.Wrapf(ErrInvalidHeight, "height components must not be empty: %q", s)
	}

	revisionNumber, err := strconv.ParseUint(split[0], 10, 64)
	if err != nil {
		return Height{}, errorsmod.Wrapf(ErrInvalidHeight, "invalid revision number in %q: %s", s, err)
	}
	revisionHeight, err := strconv.ParseUint(split[1], 10, 64)
	if err != nil {
		return Height{}, errorsmod.Wrapf(ErrInvalidHeight, "invalid revision height in %q: %s", s, err)
	}
	if revisionHeight == 0 {
		return Height{}, errorsmod.Wrapf(ErrInvalidHeight, "revision height cannot be zero: %q", s)
	}

	return Height{RevisionNumber: revisionNumber, RevisionHeight: revisionHeight}, nil
}

// ParseChainID returns the revision number of a chain identifier of the form
// "<name>-<revision_number>". Chain ids without a parseable numeric
// suffix are treated as revision 0, matching the convention that non-versioned
// chain ids track a single, never-upgraded revision.
func ParseChainID(chainID string) uint64 {
	idx := strings.LastIndex(chainID, "-")
	if idx < 0 || idx == len(chainID)-1 {
		return 0
	}
	revision, err := strconv.ParseUint(chainID[idx+1:], 10, 64)
	if err != nil {
		return 0
	}
	return revision
}
