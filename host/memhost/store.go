// Package memhost is a minimal in-memory implementation of host.WriteHost,
// adapted from the bootstrap responsibilities of the teacher's
// testutil/simapp (which spins up a full baseapp for integration tests) down
// to exactly what the host-agnostic core needs: a KV store keyed by
// canonical path, monotonic counters, a mutable clock, and an event sink.
// It is a test/reference host, not a production storage backend (spec §1
// excludes "host chain storage backends" from the core's scope).
package memhost

import (
	"sort"

	"cosmossdk.io/log"

	"github.com/cosmosnet/ibc-core-engine/host"
	"github.com/cosmosnet/ibc-core-engine/types"
)

// Store is an in-memory host.WriteHost. The zero value is not usable; call
// New.
type Store struct {
	data map[string]any

	height    types.Height
	timestamp uint64 // nanoseconds since Unix epoch

	clientCounter     uint64
	connectionCounter uint64
	channelCounter    uint64

	commitmentPrefix        []byte
	maxExpectedTimePerBlock uint64

	logger log.Logger
	events []host.Event

	selfConsensusStates map[types.Height]any
}

// New returns a Store at the given initial height and timestamp, with the
// given commitment prefix (conventionally "ibc").
func New(chainHeight types.Height, timestampUnixNano uint64, commitmentPrefix string) *Store {
	return &Store{
		data:                    make(map[string]any),
		height:                  chainHeight,
		timestamp:               timestampUnixNano,
		commitmentPrefix:        []byte(commitmentPrefix),
		maxExpectedTimePerBlock: uint64((30 * 1_000_000_000)), // 30s, cometbft's own default
		logger:                  log.NewNopLogger(),
		selfConsensusStates:     make(map[types.Height]any),
	}
}

// WithLogger swaps in a logger (e.g. a testing logger) and returns the
// receiver for chaining.
func (s *Store) WithLogger(logger log.Logger) *Store {
	s.logger = logger
	return s
}

// AdvanceBlock moves the simulated chain forward by one block, advancing the
// host's height and timestamp and recording a self-consensus-state snapshot
// of the resulting root hash, keyed by the new height, for counterparty
// self-client validation (spec §4.3).
func (s *Store) AdvanceBlock(blockDuration uint64, selfConsensusState any) types.Height {
	s.height = s.height.Increment()
	s.timestamp += blockDuration
	s.selfConsensusStates[s.height] = selfConsensusState
	return s.height
}

func (s *Store) HostHeight() types.Height { return s.height }
func (s *Store) HostTimestamp() uint64    { return s.timestamp }

func (s *Store) HostConsensusState(height types.Height) (any, bool) {
	v, ok := s.selfConsensusStates[height]
	return v, ok
}

func (s *Store) CommitmentPrefix() []byte        { return s.commitmentPrefix }
func (s *Store) MaxExpectedTimePerBlock() uint64 { return s.maxExpectedTimePerBlock }

func (s *Store) ClientCounter() uint64     { return s.clientCounter }
func (s *Store) ConnectionCounter() uint64 { return s.connectionCounter }
func (s *Store) ChannelCounter() uint64    { return s.channelCounter }

func (s *Store) IncrementClientCounter() uint64 {
	c := s.clientCounter
	s.clientCounter++
	return c
}

func (s *Store) IncrementConnectionCounter() uint64 {
	c := s.connectionCounter
	s.connectionCounter++
	return c
}

func (s *Store) IncrementChannelCounter() uint64 {
	c := s.channelCounter
	s.channelCounter++
	return c
}

func (s *Store) Get(path string) (any, bool) {
	v, ok := s.data[path]
	return v, ok
}

func (s *Store) Has(path string) bool {
	_, ok := s.data[path]
	return ok
}

func (s *Store) Set(path string, value any) {
	s.data[path] = value
}

func (s *Store) Delete(path string) {
	delete(s.data, path)
}

type updateMeta struct {
	hostTime   uint64
	hostHeight types.Height
}

func (s *Store) SetUpdateMeta(clientID string, height types.Height, hostTime uint64, hostHeight types.Height) {
	path := host.ClientUpdateMetaPath(clientID, height.RevisionNumber, height.RevisionHeight)
	s.data[path] = updateMeta{hostTime: hostTime, hostHeight: hostHeight}
}

func (s *Store) GetUpdateMeta(clientID string, height types.Height) (uint64, types.Height, bool) {
	path := host.ClientUpdateMetaPath(clientID, height.RevisionNumber, height.RevisionHeight)
	v, ok := s.data[path]
	if !ok {
		return 0, types.Height{}, false
	}
	meta := v.(updateMeta)
	return meta.hostTime, meta.hostHeight, true
}

func (s *Store) EmitEvent(e host.Event) {
	s.events = append(s.events, e)
}

// Events returns every event emitted since the store was created or last
// drained with ClearEvents.
func (s *Store) Events() []host.Event {
	return s.events
}

// ClearEvents discards accumulated events, mirroring per-transaction event
// buffer resets in a real host.
func (s *Store) ClearEvents() {
	s.events = nil
}

func (s *Store) Logger() log.Logger {
	return s.logger
}

// Paths returns every stored path in sorted order. Used by test fixtures
// that need a deterministic enumeration of store contents (e.g. building a
// commitment tree over everything "committed" at a height).
func (s *Store) Paths() []string {
	paths := make([]string, 0, len(s.data))
	for p := range s.data {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
