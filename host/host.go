package host

import (
	"cosmossdk.io/log"

	"github.com/cosmosnet/ibc-core-engine/types"
)

// ReadHost is the capability the dispatcher hands to validate (spec §4.1,
// §4.6, §9 "two capabilities on the same underlying host store"). It can
// observe everything the core needs to check a message but can never
// mutate state, which gives a compile-time guarantee that validate is pure.
type ReadHost interface {
	// HostHeight returns the height of the chain running the core.
	HostHeight() types.Height
	// HostTimestamp returns nanoseconds since the Unix epoch.
	HostTimestamp() uint64
	// HostConsensusState returns the host's own recollection of its
	// consensus at a past height (used for self-client validation).
	HostConsensusState(height types.Height) (any, bool)
	// GetUpdateMeta returns the local host time and height this chain
	// recorded when it wrote clientID's consensus state at height (spec
	// §4.2 "record update metadata for that height"), consulted by
	// delay-period enforcement (spec §4.5 Acknowledgement step 6, Timeout
	// step 7) rather than the counterparty's own clock/height at that
	// consensus state.
	GetUpdateMeta(clientID string, height types.Height) (hostTime uint64, hostHeight types.Height, found bool)
	// CommitmentPrefix is this chain's commitment prefix, prepended to
	// local paths before a counterparty verifies them (spec GLOSSARY).
	CommitmentPrefix() []byte
	// MaxExpectedTimePerBlock bounds the block-count portion of a
	// connection's delay period (spec §4.5 Acknowledgement step 6).
	MaxExpectedTimePerBlock() uint64

	ClientCounter() uint64
	ConnectionCounter() uint64
	ChannelCounter() uint64

	// Get fetches the decoded value stored at path, if any. Serialization
	// is the host's concern (spec §1 "codec wrappers — boundary glue"); the
	// core passes and receives already-decoded Go values.
	Get(path string) (value any, found bool)
	Has(path string) bool

	Logger() log.Logger
}

// WriteHost is the capability the dispatcher hands to execute: every
// ReadHost operation, plus mutation, counters, events, and logging.
type WriteHost interface {
	ReadHost

	Set(path string, value any)
	Delete(path string)

	// SetUpdateMeta records the local host time and height at the moment
	// this chain writes clientID's consensus state at height (spec §4.2).
	SetUpdateMeta(clientID string, height types.Height, hostTime uint64, hostHeight types.Height)

	IncrementClientCounter() uint64
	IncrementConnectionCounter() uint64
	IncrementChannelCounter() uint64

	EmitEvent(e Event)
}
