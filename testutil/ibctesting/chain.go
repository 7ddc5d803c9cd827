package ibctesting

import (
	"cosmossdk.io/log"

	"github.com/cosmosnet/ibc-core-engine/core"
	"github.com/cosmosnet/ibc-core-engine/host/memhost"
	clientkeeper "github.com/cosmosnet/ibc-core-engine/modules/02-client/keeper"
	"github.com/cosmosnet/ibc-core-engine/modules/02-client/mock"
	clienttypes "github.com/cosmosnet/ibc-core-engine/modules/02-client/types"
	connectionkeeper "github.com/cosmosnet/ibc-core-engine/modules/03-connection/keeper"
	channelkeeper "github.com/cosmosnet/ibc-core-engine/modules/04-channel/keeper"
	portkeeper "github.com/cosmosnet/ibc-core-engine/modules/05-port/keeper"
	ibctypes "github.com/cosmosnet/ibc-core-engine/types"
)

// BlockDuration is the fixed simulated block time every TestChain advances
// by on NextBlock, chosen to comfortably exceed a connection's delay
// period in the scenarios that exercise one.
const BlockDuration = uint64(5_000_000_000) // 5s in nanoseconds

// TestChain is one side of a two-chain in-memory IBC setup: a memhost.Store
// plus the three subsystem keepers and the dispatcher that ties them
// together, exactly as a real host would wire them, with MockPortID
// pre-bound to a MockModule.
type TestChain struct {
	ChainID string
	Sender  string

	Store *memhost.Store

	ClientKeeper     clientkeeper.Keeper
	ConnectionKeeper connectionkeeper.Keeper
	ChannelKeeper    channelkeeper.Keeper
	PortRouter       *portkeeper.Router
	Dispatcher       core.Dispatcher

	MockModule *MockModule
}

// NewTestChain builds a TestChain whose store starts at height (1, 1) and
// is advanced one block to (1, 2), prefix "ibc", with MockPortID already
// bound.
func NewTestChain(chainID string) *TestChain {
	store := memhost.New(ibctypes.NewHeight(1, 1), 1_600_000_000_000_000_000, "ibc")
	store.WithLogger(log.NewNopLogger())

	clientKeeper := clientkeeper.NewKeeper()
	connectionKeeper := connectionkeeper.NewKeeper(clientKeeper)
	router := portkeeper.NewRouter()
	channelKeeper := channelkeeper.NewKeeper(connectionKeeper, router)
	dispatcher := core.NewDispatcher(clientKeeper, connectionKeeper, channelKeeper)

	mockModule := NewMockModule()
	router.BindPort(MockPortID, mockModule)

	chain := &TestChain{
		ChainID:          chainID,
		Sender:           chainID + "-sender",
		Store:            store,
		ClientKeeper:     clientKeeper,
		ConnectionKeeper: connectionKeeper,
		ChannelKeeper:    channelKeeper,
		PortRouter:       router,
		Dispatcher:       dispatcher,
		MockModule:       mockModule,
	}

	// Record a self-consensus-state snapshot at the height AdvanceBlock is
	// about to move to, so the very first connection handshake already has
	// something to prove against.
	genesisHeight := chain.Height().Increment()
	chain.Store.AdvanceBlock(0, mock.NewConsensusState(chain.Timestamp(), []byte(genesisHeight.String())))

	return chain
}

func (c *TestChain) Height() ibctypes.Height { return c.Store.HostHeight() }
func (c *TestChain) Timestamp() uint64       { return c.Store.HostTimestamp() }

// NextBlock advances the chain by one simulated block and records the
// resulting self-consensus-state snapshot, mirroring how a real chain's
// BeginBlock/EndBlock would commit a new app hash (spec §4.3 "self-client
// description").
func (c *TestChain) NextBlock() ibctypes.Height {
	newHeight := c.Height().Increment()
	newTimestamp := c.Timestamp() + BlockDuration
	cons := mock.NewConsensusState(newTimestamp, []byte(newHeight.String()))
	return c.Store.AdvanceBlock(BlockDuration, cons)
}

// CreateMockClient runs MsgCreateClient on c, tracking counterparty's
// current height and timestamp via the mock client capability.
func (c *TestChain) CreateMockClient(counterparty *TestChain) (string, error) {
	msg := clienttypes.MsgCreateClient{
		ClientState:    mock.NewClientState(counterparty.Height()),
		ConsensusState: mock.NewConsensusState(counterparty.Timestamp(), []byte(counterparty.Height().String())),
		Signer:         c.Sender,
	}
	res, err := c.Dispatcher.Dispatch(c.Store, core.MsgEnvelope{CreateClient: &msg})
	if err != nil {
		return "", err
	}
	return res.ClientID, nil
}

// UpdateMockClient advances clientID to counterparty's current height; it
// is a no-op when the client already tracks that height.
func (c *TestChain) UpdateMockClient(clientID string, counterparty *TestChain) error {
	cs, err := c.ClientKeeper.MustGetClientState(c.Store, clientID)
	if err != nil {
		return err
	}
	if cs.LatestHeight().EQ(counterparty.Height()) {
		return nil
	}
	msg := clienttypes.MsgUpdateClient{
		ClientID: clientID,
		ClientMessage: &mock.Header{
			Height:         counterparty.Height(),
			TimestampNanos: counterparty.Timestamp(),
		},
		Signer: c.Sender,
	}
	_, err := c.Dispatcher.Dispatch(c.Store, core.MsgEnvelope{UpdateClient: &msg})
	return err
}

// SubmitMockMisbehaviour freezes clientID by submitting mock misbehaviour
// evidence, which the mock client accepts unconditionally.
func (c *TestChain) SubmitMockMisbehaviour(clientID string) error {
	msg := clienttypes.MsgUpdateClient{
		ClientID:      clientID,
		ClientMessage: &mock.Misbehaviour{},
		Signer:        c.Sender,
	}
	_, err := c.Dispatcher.Dispatch(c.Store, core.MsgEnvelope{SubmitMisbehaviour: &msg})
	return err
}

// ClientStateCommitment returns clientID's stored client state's commitment
// bytes, i.e. the "proof" a mock-client counterparty accepts as a literal
// copy of that value.
func (c *TestChain) ClientStateCommitment(clientID string) ([]byte, error) {
	cs, err := c.ClientKeeper.MustGetClientState(c.Store, clientID)
	if err != nil {
		return nil, err
	}
	return cs.CommitmentBytes(), nil
}
