// Package types holds the connection subsystem's data model (spec §3, §4.3):
// the handshake state machine between two clients, one hop at a time.
package types

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"

	ibctypes "github.com/cosmosnet/ibc-core-engine/types"
)

// State is a connection end's position in the four-step handshake.
type State string

const (
	Uninitialized State = "STATE_UNINITIALIZED_UNSPECIFIED"
	Init          State = "STATE_INIT"
	TryOpen       State = "STATE_TRYOPEN"
	Open          State = "STATE_OPEN"
)

// Counterparty identifies the remote side of a connection (spec §3).
type Counterparty struct {
	ClientID     string
	ConnectionID string
	Prefix       []byte
}

// HasConnectionID reports whether the counterparty connection id has been
// populated, which is required from TryOpen onward (spec §3 invariant).
func (c Counterparty) HasConnectionID() bool { return c.ConnectionID != "" }

// Version is a connection version: an opaque identifier plus the ordered
// feature set (e.g. "ORDER_ORDERED", "ORDER_UNORDERED") it supports. The
// core compares identifiers only for equality; it reads the features to
// intersect them in PickVersion and to check that a channel's ordering is
// supported (SupportsFeature) during channel OpenTry.
type Version struct {
	Identifier string
	Features   []string
}

// SupportsFeature reports whether feature is advertised by v.
func (v Version) SupportsFeature(feature string) bool {
	for _, f := range v.Features {
		if f == feature {
			return true
		}
	}
	return false
}

// DefaultIBCVersion is the one version this engine negotiates: ICS-03's
// canonical "1" identifier supporting both channel orderings.
var DefaultIBCVersion = Version{
	Identifier: "1",
	Features:   []string{"ORDER_ORDERED", "ORDER_UNORDERED"},
}

// GetSupportedVersions returns the versions this chain proposes during
// OpenInit.
func GetSupportedVersions() []Version {
	return []Version{DefaultIBCVersion}
}

// PickVersion walks the supported list in order and picks the first version
// whose identifier also appears among the proposed ones with at least one
// feature in common, returning it with the intersected feature set.
// Returns ErrNoCommonVersion if none match (spec §4.3 OpenTry).
func PickVersion(supported, proposed []Version) (Version, error) {
	for _, s := range supported {
		for _, p := range proposed {
			if s.Identifier != p.Identifier {
				continue
			}
			var features []string
			for _, f := range s.Features {
				if p.SupportsFeature(f) {
					features = append(features, f)
				}
			}
			if len(features) == 0 {
				continue
			}
			return Version{Identifier: s.Identifier, Features: features}, nil
		}
	}
	return Version{}, errorsmod.Wrap(ErrNoCommonVersion, "no proposed version is compatible with a supported version")
}

// ConnectionEnd is the per-connection record (spec §3 "ConnectionEnd").
type ConnectionEnd struct {
	State        State
	ClientID     string
	Counterparty Counterparty
	Versions     []Version
	DelayPeriod  uint64
}

// ValidateBasic checks ConnectionEnd's own invariants, independent of any
// store (spec §3: "versions non-empty once past Init; counterparty
// connection id present from TryOpen onward").
func (c ConnectionEnd) ValidateBasic() error {
	if err := ibctypes.ValidateClientID(c.ClientID); err != nil {
		return errorsmod.Wrap(err, "local client id")
	}
	if err := ibctypes.ValidateClientID(c.Counterparty.ClientID); err != nil {
		return errorsmod.Wrap(err, "counterparty client id")
	}
	if c.State != Init && c.State != Uninitialized && len(c.Versions) == 0 {
		return errorsmod.Wrapf(ErrInvalidConnection, "connection in state %s must have at least one version", c.State)
	}
	if (c.State == TryOpen || c.State == Open) && !c.Counterparty.HasConnectionID() {
		return errorsmod.Wrapf(ErrInvalidConnection, "connection in state %s must carry a counterparty connection id", c.State)
	}
	return nil
}

// GetVersion returns the single negotiated version, once past the version
// negotiation phase. Callers must have already enforced len(Versions) == 1.
func (c ConnectionEnd) GetVersion() (Version, error) {
	if len(c.Versions) != 1 {
		return Version{}, errorsmod.Wrapf(ErrInvalidVersion, "expected exactly one negotiated version, found %d", len(c.Versions))
	}
	return c.Versions[0], nil
}

// CommitmentBytes is the deterministic encoding a counterparty's membership
// proof of this connection end commits to. Wire encoding is the host's
// concern everywhere else in this engine (spec §1 "codec wrappers —
// boundary glue"); this is only the fixed byte representation the proof
// verification path needs to agree on with whatever produced the proof.
func (c ConnectionEnd) CommitmentBytes() []byte {
	return []byte(fmt.Sprintf("%s/%s/%s/%s/%d", c.State, c.ClientID, c.Counterparty.ClientID, c.Counterparty.ConnectionID, c.DelayPeriod))
}
