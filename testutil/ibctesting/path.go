package ibctesting

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/cosmosnet/ibc-core-engine/core"
	connectiontypes "github.com/cosmosnet/ibc-core-engine/modules/03-connection/types"
	channeltypes "github.com/cosmosnet/ibc-core-engine/modules/04-channel/types"
	ibctypes "github.com/cosmosnet/ibc-core-engine/types"
)

// Path links two TestChains and tracks the identifiers the handshakes on
// either side allocate, mirroring ibc-go's own ibctesting.Path helper. The
// mock client's VerifyMembership only ever accepts a proof that is a
// byte-exact copy of the value being proven (modules/02-client/mock), so
// every proof this harness builds is the same CommitmentBytes() encoding
// the verifying keeper itself would compute from the message and the
// stored state — there is no real Merkle tree underneath.
type Path struct {
	ChainA, ChainB *TestChain

	ClientIDA, ClientIDB         string
	ConnectionIDA, ConnectionIDB string
	ChannelIDA, ChannelIDB       string

	PortIDA, PortIDB string
	Ordering         channeltypes.Order
}

// NewPath returns a Path over MockPortID on both sides, unordered by
// default.
func NewPath(chainA, chainB *TestChain) *Path {
	return &Path{
		ChainA:   chainA,
		ChainB:   chainB,
		PortIDA:  MockPortID,
		PortIDB:  MockPortID,
		Ordering: channeltypes.Unordered,
	}
}

// CreateClients runs MsgCreateClient on both chains, each tracking the
// other's current height.
func (p *Path) CreateClients() error {
	var err error
	p.ClientIDA, err = p.ChainA.CreateMockClient(p.ChainB)
	if err != nil {
		return errorsmod.Wrap(err, "create client on chain A")
	}
	p.ClientIDB, err = p.ChainB.CreateMockClient(p.ChainA)
	if err != nil {
		return errorsmod.Wrap(err, "create client on chain B")
	}
	return nil
}

// selfConsensusCommitment returns chain's own recollection of itself at
// height, as the connection handshake's self-client validation checks it
// (spec §4.3).
func selfConsensusCommitment(chain *TestChain, height ibctypes.Height) ([]byte, error) {
	cons, err := chain.ClientKeeper.GetSelfConsensusState(chain.Store, height)
	if err != nil {
		return nil, err
	}
	return cons.CommitmentBytes(), nil
}

// OpenConnection drives the four-step connection handshake to completion,
// A initiating. Both clients must already exist (CreateClients).
func (p *Path) OpenConnection() error {
	initMsg := connectiontypes.MsgConnectionOpenInit{
		ClientID: p.ClientIDA,
		Counterparty: connectiontypes.Counterparty{
			ClientID: p.ClientIDB,
			Prefix:   p.ChainB.Store.CommitmentPrefix(),
		},
		Signer: p.ChainA.Sender,
	}
	res, err := p.ChainA.Dispatcher.Dispatch(p.ChainA.Store, core.MsgEnvelope{ConnectionOpenInit: &initMsg})
	if err != nil {
		return errorsmod.Wrap(err, "connection open init")
	}
	p.ConnectionIDA = res.ConnectionID

	if err := p.ChainB.UpdateMockClient(p.ClientIDB, p.ChainA); err != nil {
		return errorsmod.Wrap(err, "update client B before open try")
	}
	proofHeightA := p.ChainA.Height()

	clientStateA, err := p.ChainA.ClientKeeper.MustGetClientState(p.ChainA.Store, p.ClientIDA)
	if err != nil {
		return err
	}
	expectedInit := connectiontypes.ConnectionEnd{
		State:    connectiontypes.Init,
		ClientID: p.ClientIDA,
		Counterparty: connectiontypes.Counterparty{
			ClientID: p.ClientIDB,
			Prefix:   p.ChainB.Store.CommitmentPrefix(),
		},
		Versions: connectiontypes.GetSupportedVersions(),
	}
	selfConsB, err := selfConsensusCommitment(p.ChainB, p.ChainB.Height())
	if err != nil {
		return errorsmod.Wrap(err, "chain B self consensus state")
	}

	tryMsg := connectiontypes.MsgConnectionOpenTry{
		ClientID: p.ClientIDB,
		Counterparty: connectiontypes.Counterparty{
			ClientID:     p.ClientIDA,
			ConnectionID: p.ConnectionIDA,
			Prefix:       p.ChainA.Store.CommitmentPrefix(),
		},
		CounterpartyVersions: connectiontypes.GetSupportedVersions(),
		ClientState:          clientStateA,
		ProofHeight:          proofHeightA,
		ProofInit:            expectedInit.CommitmentBytes(),
		ProofClient:          clientStateA.CommitmentBytes(),
		ProofConsensus:       selfConsB,
		ConsensusHeight:      p.ChainB.Height(),
		Signer:               p.ChainB.Sender,
	}
	res, err = p.ChainB.Dispatcher.Dispatch(p.ChainB.Store, core.MsgEnvelope{ConnectionOpenTry: &tryMsg})
	if err != nil {
		return errorsmod.Wrap(err, "connection open try")
	}
	p.ConnectionIDB = res.ConnectionID

	if err := p.ChainA.UpdateMockClient(p.ClientIDA, p.ChainB); err != nil {
		return errorsmod.Wrap(err, "update client A before open ack")
	}
	proofHeightB := p.ChainB.Height()

	clientStateB, err := p.ChainB.ClientKeeper.MustGetClientState(p.ChainB.Store, p.ClientIDB)
	if err != nil {
		return err
	}
	expectedTry := connectiontypes.ConnectionEnd{
		State:    connectiontypes.TryOpen,
		ClientID: p.ClientIDB,
		Counterparty: connectiontypes.Counterparty{
			ClientID:     p.ClientIDA,
			ConnectionID: p.ConnectionIDA,
			Prefix:       p.ChainA.Store.CommitmentPrefix(),
		},
		Versions: []connectiontypes.Version{connectiontypes.DefaultIBCVersion},
	}
	selfConsA, err := selfConsensusCommitment(p.ChainA, p.ChainA.Height())
	if err != nil {
		return errorsmod.Wrap(err, "chain A self consensus state")
	}

	ackMsg := connectiontypes.MsgConnectionOpenAck{
		ConnectionID:             p.ConnectionIDA,
		CounterpartyConnectionID: p.ConnectionIDB,
		Version:                  connectiontypes.DefaultIBCVersion,
		ClientState:              clientStateB,
		ProofHeight:              proofHeightB,
		ProofTry:                 expectedTry.CommitmentBytes(),
		ProofClient:              clientStateB.CommitmentBytes(),
		ProofConsensus:           selfConsA,
		ConsensusHeight:          p.ChainA.Height(),
		Signer:                   p.ChainA.Sender,
	}
	if _, err := p.ChainA.Dispatcher.Dispatch(p.ChainA.Store, core.MsgEnvelope{ConnectionOpenAck: &ackMsg}); err != nil {
		return errorsmod.Wrap(err, "connection open ack")
	}

	if err := p.ChainB.UpdateMockClient(p.ClientIDB, p.ChainA); err != nil {
		return errorsmod.Wrap(err, "update client B before open confirm")
	}
	proofHeightA2 := p.ChainA.Height()

	expectedOpen := connectiontypes.ConnectionEnd{
		State:    connectiontypes.Open,
		ClientID: p.ClientIDA,
		Counterparty: connectiontypes.Counterparty{
			ClientID:     p.ClientIDB,
			ConnectionID: p.ConnectionIDB,
			Prefix:       p.ChainB.Store.CommitmentPrefix(),
		},
		Versions: []connectiontypes.Version{connectiontypes.DefaultIBCVersion},
	}
	confirmMsg := connectiontypes.MsgConnectionOpenConfirm{
		ConnectionID: p.ConnectionIDB,
		ProofHeight:  proofHeightA2,
		ProofAck:     expectedOpen.CommitmentBytes(),
		Signer:       p.ChainB.Sender,
	}
	if _, err := p.ChainB.Dispatcher.Dispatch(p.ChainB.Store, core.MsgEnvelope{ConnectionOpenConfirm: &confirmMsg}); err != nil {
		return errorsmod.Wrap(err, "connection open confirm")
	}

	return nil
}

// OpenChannel drives the four-step channel handshake over the already-Open
// connection, A initiating, both sides on MockPortID.
func (p *Path) OpenChannel() error {
	initMsg := channeltypes.MsgChannelOpenInit{
		PortID: p.PortIDA,
		Channel: channeltypes.ChannelEnd{
			State:          channeltypes.Init,
			Ordering:       p.Ordering,
			Counterparty:   channeltypes.Counterparty{PortID: p.PortIDB},
			ConnectionHops: []string{p.ConnectionIDA},
		},
		Signer: p.ChainA.Sender,
	}
	res, err := p.ChainA.Dispatcher.Dispatch(p.ChainA.Store, core.MsgEnvelope{ChannelOpenInit: &initMsg})
	if err != nil {
		return errorsmod.Wrap(err, "channel open init")
	}
	p.ChannelIDA = res.ChannelID

	channelA, ok := p.ChainA.ChannelKeeper.GetChannel(p.ChainA.Store, p.PortIDA, p.ChannelIDA)
	if !ok {
		return errorsmod.Wrap(channeltypes.ErrChannelNotFound, "channel A missing right after open init")
	}

	if err := p.ChainB.UpdateMockClient(p.ClientIDB, p.ChainA); err != nil {
		return errorsmod.Wrap(err, "update client B before chan open try")
	}
	proofHeightA := p.ChainA.Height()

	expectedInit := channeltypes.ChannelEnd{
		State:          channeltypes.Init,
		Ordering:       p.Ordering,
		Counterparty:   channeltypes.Counterparty{PortID: p.PortIDB},
		ConnectionHops: []string{p.ConnectionIDA},
		Version:        channelA.Version,
	}
	tryMsg := channeltypes.MsgChannelOpenTry{
		PortID: p.PortIDB,
		Channel: channeltypes.ChannelEnd{
			State:          channeltypes.TryOpen,
			Ordering:       p.Ordering,
			Counterparty:   channeltypes.Counterparty{PortID: p.PortIDA, ChannelID: p.ChannelIDA},
			ConnectionHops: []string{p.ConnectionIDB},
		},
		CounterpartyVersion: channelA.Version,
		ProofHeight:         proofHeightA,
		ProofInit:           expectedInit.CommitmentBytes(),
		Signer:              p.ChainB.Sender,
	}
	res, err = p.ChainB.Dispatcher.Dispatch(p.ChainB.Store, core.MsgEnvelope{ChannelOpenTry: &tryMsg})
	if err != nil {
		return errorsmod.Wrap(err, "channel open try")
	}
	p.ChannelIDB = res.ChannelID

	channelB, ok := p.ChainB.ChannelKeeper.GetChannel(p.ChainB.Store, p.PortIDB, p.ChannelIDB)
	if !ok {
		return errorsmod.Wrap(channeltypes.ErrChannelNotFound, "channel B missing right after open try")
	}

	if err := p.ChainA.UpdateMockClient(p.ClientIDA, p.ChainB); err != nil {
		return errorsmod.Wrap(err, "update client A before chan open ack")
	}
	proofHeightB := p.ChainB.Height()

	expectedTry := channeltypes.ChannelEnd{
		State:          channeltypes.TryOpen,
		Ordering:       p.Ordering,
		Counterparty:   channeltypes.Counterparty{PortID: p.PortIDA, ChannelID: p.ChannelIDA},
		ConnectionHops: []string{p.ConnectionIDB},
		Version:        channelB.Version,
	}
	ackMsg := channeltypes.MsgChannelOpenAck{
		PortID:                p.PortIDA,
		ChannelID:             p.ChannelIDA,
		CounterpartyChannelID: p.ChannelIDB,
		CounterpartyVersion:   channelB.Version,
		ProofHeight:           proofHeightB,
		ProofTry:              expectedTry.CommitmentBytes(),
		Signer:                p.ChainA.Sender,
	}
	if _, err := p.ChainA.Dispatcher.Dispatch(p.ChainA.Store, core.MsgEnvelope{ChannelOpenAck: &ackMsg}); err != nil {
		return errorsmod.Wrap(err, "channel open ack")
	}

	if err := p.ChainB.UpdateMockClient(p.ClientIDB, p.ChainA); err != nil {
		return errorsmod.Wrap(err, "update client B before chan open confirm")
	}
	proofHeightA2 := p.ChainA.Height()

	expectedOpen := channeltypes.ChannelEnd{
		State:          channeltypes.Open,
		Ordering:       p.Ordering,
		Counterparty:   channeltypes.Counterparty{PortID: p.PortIDA, ChannelID: p.ChannelIDA},
		ConnectionHops: []string{p.ConnectionIDB},
		Version:        channelB.Version,
	}
	confirmMsg := channeltypes.MsgChannelOpenConfirm{
		PortID:      p.PortIDB,
		ChannelID:   p.ChannelIDB,
		ProofHeight: proofHeightA2,
		ProofAck:    expectedOpen.CommitmentBytes(),
		Signer:      p.ChainB.Sender,
	}
	if _, err := p.ChainB.Dispatcher.Dispatch(p.ChainB.Store, core.MsgEnvelope{ChannelOpenConfirm: &confirmMsg}); err != nil {
		return errorsmod.Wrap(err, "channel open confirm")
	}

	return nil
}

// SendFromA calls the channel keeper's application-facing SendPacket on
// chain A over this path's channel, returning the packet the caller
// relays to chain B.
func (p *Path) SendFromA(data []byte, timeoutHeight ibctypes.Height, timeoutTimestamp uint64) (channeltypes.Packet, error) {
	seq, err := p.ChainA.ChannelKeeper.SendPacket(p.ChainA.Store, p.PortIDA, p.ChannelIDA, data, timeoutHeight, timeoutTimestamp)
	if err != nil {
		return channeltypes.Packet{}, err
	}
	channel, ok := p.ChainA.ChannelKeeper.GetChannel(p.ChainA.Store, p.PortIDA, p.ChannelIDA)
	if !ok {
		return channeltypes.Packet{}, errorsmod.Wrap(channeltypes.ErrChannelNotFound, "channel A disappeared after send")
	}
	return channeltypes.Packet{
		Sequence:         seq,
		SourcePort:       p.PortIDA,
		SourceChannel:    p.ChannelIDA,
		DestPort:         channel.Counterparty.PortID,
		DestChannel:      channel.Counterparty.ChannelID,
		Data:             data,
		TimeoutHeight:    timeoutHeight,
		TimeoutTimestamp: timeoutTimestamp,
	}, nil
}

// RelayRecv updates B's client tracking A, then submits MsgRecvPacket on
// B. ok is false for the already-received NO-OP success.
func (p *Path) RelayRecv(packet channeltypes.Packet) (ack []byte, ok bool, err error) {
	if err := p.ChainB.UpdateMockClient(p.ClientIDB, p.ChainA); err != nil {
		return nil, false, errorsmod.Wrap(err, "update client B before recv")
	}
	msg := channeltypes.MsgRecvPacket{
		Packet:      packet,
		ProofHeight: p.ChainA.Height(),
		Proof:       channeltypes.CommitPacket(packet),
		Signer:      p.ChainB.Sender,
	}
	res, err := p.ChainB.Dispatcher.Dispatch(p.ChainB.Store, core.MsgEnvelope{RecvPacket: &msg})
	if err != nil {
		return nil, false, err
	}
	return res.Acknowledgement, !res.NoOp, nil
}

// RelayAck updates A's client tracking B, then submits MsgAcknowledgement
// on A. ok is false for the commitment-absent NO-OP success.
func (p *Path) RelayAck(packet channeltypes.Packet, ack []byte) (ok bool, err error) {
	if err := p.ChainA.UpdateMockClient(p.ClientIDA, p.ChainB); err != nil {
		return false, errorsmod.Wrap(err, "update client A before ack")
	}
	msg := channeltypes.MsgAcknowledgement{
		Packet:          packet,
		Acknowledgement: ack,
		ProofHeight:     p.ChainB.Height(),
		ProofAcked:      channeltypes.CommitAcknowledgement(ack),
		Signer:          p.ChainA.Sender,
	}
	res, err := p.ChainA.Dispatcher.Dispatch(p.ChainA.Store, core.MsgEnvelope{Acknowledgement: &msg})
	if err != nil {
		return false, err
	}
	return !res.NoOp, nil
}

// RelayTimeout updates A's client tracking B, then submits MsgTimeout on A
// for an Ordered-channel packet B never received: the next_sequence_recv
// membership proof path (spec §4.5 Timeout step 5, Ordered case). This
// harness only exercises the Ordered variant: the mock client's
// VerifyNonMembership requires a literally empty proof
// (modules/02-client/mock), which MsgTimeout.ValidateBasic's non-empty
// ProofUnreceived requirement can never satisfy, so the Unordered
// receipt-non-membership path cannot be driven through the mock client.
func (p *Path) RelayTimeout(packet channeltypes.Packet) (ok bool, err error) {
	if p.Ordering != channeltypes.Ordered {
		return false, errorsmod.Wrap(channeltypes.ErrOrderingMismatch, "RelayTimeout only supports Ordered channels through the mock client")
	}
	if err := p.ChainA.UpdateMockClient(p.ClientIDA, p.ChainB); err != nil {
		return false, errorsmod.Wrap(err, "update client A before timeout")
	}
	nextSeqRecv, ok := p.ChainB.ChannelKeeper.GetNextSequenceRecv(p.ChainB.Store, p.PortIDB, p.ChannelIDB)
	if !ok {
		return false, errorsmod.Wrap(channeltypes.ErrInvalidChannel, "no next recv sequence on chain B")
	}
	msg := channeltypes.MsgTimeout{
		Packet:           packet,
		ProofHeight:      p.ChainB.Height(),
		ProofUnreceived:  channeltypes.SequenceCommitmentBytes(nextSeqRecv),
		NextSequenceRecv: nextSeqRecv,
		Signer:           p.ChainA.Sender,
	}
	res, err := p.ChainA.Dispatcher.Dispatch(p.ChainA.Store, core.MsgEnvelope{Timeout: &msg})
	if err != nil {
		return false, err
	}
	return !res.NoOp, nil
}
