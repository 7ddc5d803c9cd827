package core

import (
	"github.com/cosmosnet/ibc-core-engine/host"
	clientkeeper "github.com/cosmosnet/ibc-core-engine/modules/02-client/keeper"
	connectionkeeper "github.com/cosmosnet/ibc-core-engine/modules/03-connection/keeper"
	channelkeeper "github.com/cosmosnet/ibc-core-engine/modules/04-channel/keeper"
)

// Dispatcher owns the three subsystem keepers and runs the
// validate;execute sequence for every MsgEnvelope (spec §4.1, §9
// "two-phase validate/execute"). It is the single entrypoint a host wires
// its transaction executor to.
type Dispatcher struct {
	ClientKeeper     clientkeeper.Keeper
	ConnectionKeeper connectionkeeper.Keeper
	ChannelKeeper    channelkeeper.Keeper
}

func NewDispatcher(clientKeeper clientkeeper.Keeper, connectionKeeper connectionkeeper.Keeper, channelKeeper channelkeeper.Keeper) Dispatcher {
	return Dispatcher{
		ClientKeeper:     clientKeeper,
		ConnectionKeeper: connectionKeeper,
		ChannelKeeper:    channelKeeper,
	}
}

// Validate runs the read-only pre-check for an envelope against h. A
// non-nil error means execute must not be attempted and no state may
// change (spec §7 "Errors from validate abort the message with no state
// change").
func (d Dispatcher) Validate(h host.ReadHost, e MsgEnvelope) error {
	switch {
	case e.CreateClient != nil:
		return d.ClientKeeper.ValidateCreateClient(h, *e.CreateClient)
	case e.UpdateClient != nil:
		return d.ClientKeeper.ValidateUpdateClient(h, *e.UpdateClient)
	case e.SubmitMisbehaviour != nil:
		return d.ClientKeeper.ValidateUpdateClient(h, *e.SubmitMisbehaviour)
	case e.UpgradeClient != nil:
		return d.ClientKeeper.ValidateUpgradeClient(h, *e.UpgradeClient)

	case e.ConnectionOpenInit != nil:
		return d.ConnectionKeeper.ValidateConnectionOpenInit(h, *e.ConnectionOpenInit)
	case e.ConnectionOpenTry != nil:
		return d.ConnectionKeeper.ValidateConnectionOpenTry(h, *e.ConnectionOpenTry)
	case e.ConnectionOpenAck != nil:
		return d.ConnectionKeeper.ValidateConnectionOpenAck(h, *e.ConnectionOpenAck)
	case e.ConnectionOpenConfirm != nil:
		return d.ConnectionKeeper.ValidateConnectionOpenConfirm(h, *e.ConnectionOpenConfirm)

	case e.ChannelOpenInit != nil:
		return d.ChannelKeeper.ValidateChannelOpenInit(h, *e.ChannelOpenInit)
	case e.ChannelOpenTry != nil:
		return d.ChannelKeeper.ValidateChannelOpenTry(h, *e.ChannelOpenTry)
	case e.ChannelOpenAck != nil:
		return d.ChannelKeeper.ValidateChannelOpenAck(h, *e.ChannelOpenAck)
	case e.ChannelOpenConfirm != nil:
		return d.ChannelKeeper.ValidateChannelOpenConfirm(h, *e.ChannelOpenConfirm)
	case e.ChannelCloseInit != nil:
		return d.ChannelKeeper.ValidateChannelCloseInit(h, *e.ChannelCloseInit)
	case e.ChannelCloseConfirm != nil:
		return d.ChannelKeeper.ValidateChannelCloseConfirm(h, *e.ChannelCloseConfirm)

	case e.RecvPacket != nil:
		return d.ChannelKeeper.ValidateRecvPacket(h, *e.RecvPacket)
	case e.Acknowledgement != nil:
		_, err := d.ChannelKeeper.ValidateAcknowledgement(h, *e.Acknowledgement)
		return err
	case e.Timeout != nil:
		_, err := d.ChannelKeeper.ValidateTimeout(h, *e.Timeout)
		return err
	case e.TimeoutOnClose != nil:
		_, err := d.ChannelKeeper.ValidateTimeoutOnClose(h, *e.TimeoutOnClose)
		return err

	default:
		return ErrUnknownMessageType
	}
}

// Result carries what Execute produced, beyond the events the keepers
// already emitted directly onto h. Fields are populated selectively
// depending on which envelope variant ran.
type Result struct {
	ClientID       string
	ConnectionID   string
	ChannelID      string
	Acknowledgement []byte
	NoOp           bool
}

// Execute runs the mutating half for an envelope that has already passed
// Validate. A non-nil error is fatal to the whole transaction and the host
// must roll back every change Execute made (spec §7 "Errors from execute
// abort the transaction; the host rolls back").
func (d Dispatcher) Execute(h host.WriteHost, e MsgEnvelope) (Result, error) {
	switch {
	case e.CreateClient != nil:
		id, err := d.ClientKeeper.ExecuteCreateClient(h, *e.CreateClient)
		return Result{ClientID: id}, err
	case e.UpdateClient != nil:
		return Result{}, d.ClientKeeper.ExecuteUpdateClient(h, *e.UpdateClient)
	case e.SubmitMisbehaviour != nil:
		return Result{}, d.ClientKeeper.ExecuteUpdateClient(h, *e.SubmitMisbehaviour)
	case e.UpgradeClient != nil:
		return Result{}, d.ClientKeeper.ExecuteUpgradeClient(h, *e.UpgradeClient)

	case e.ConnectionOpenInit != nil:
		id, err := d.ConnectionKeeper.ExecuteConnectionOpenInit(h, *e.ConnectionOpenInit)
		return Result{ConnectionID: id}, err
	case e.ConnectionOpenTry != nil:
		id, err := d.ConnectionKeeper.ExecuteConnectionOpenTry(h, *e.ConnectionOpenTry)
		return Result{ConnectionID: id}, err
	case e.ConnectionOpenAck != nil:
		return Result{}, d.ConnectionKeeper.ExecuteConnectionOpenAck(h, *e.ConnectionOpenAck)
	case e.ConnectionOpenConfirm != nil:
		return Result{}, d.ConnectionKeeper.ExecuteConnectionOpenConfirm(h, *e.ConnectionOpenConfirm)

	case e.ChannelOpenInit != nil:
		id, err := d.ChannelKeeper.ExecuteChannelOpenInit(h, *e.ChannelOpenInit)
		return Result{ChannelID: id}, err
	case e.ChannelOpenTry != nil:
		id, err := d.ChannelKeeper.ExecuteChannelOpenTry(h, *e.ChannelOpenTry)
		return Result{ChannelID: id}, err
	case e.ChannelOpenAck != nil:
		return Result{}, d.ChannelKeeper.ExecuteChannelOpenAck(h, *e.ChannelOpenAck)
	case e.ChannelOpenConfirm != nil:
		return Result{}, d.ChannelKeeper.ExecuteChannelOpenConfirm(h, *e.ChannelOpenConfirm)
	case e.ChannelCloseInit != nil:
		return Result{}, d.ChannelKeeper.ExecuteChannelCloseInit(h, *e.ChannelCloseInit)
	case e.ChannelCloseConfirm != nil:
		return Result{}, d.ChannelKeeper.ExecuteChannelCloseConfirm(h, *e.ChannelCloseConfirm)

	case e.RecvPacket != nil:
		ack, ok, err := d.ChannelKeeper.ExecuteRecvPacket(h, *e.RecvPacket)
		if err != nil {
			return Result{}, err
		}
		if !ok {
			return Result{NoOp: true}, nil
		}
		return Result{Acknowledgement: ack.Marshal()}, nil
	case e.Acknowledgement != nil:
		ok, err := d.ChannelKeeper.ExecuteAcknowledgement(h, *e.Acknowledgement)
		if err != nil {
			return Result{}, err
		}
		return Result{NoOp: !ok}, nil
	case e.Timeout != nil:
		ok, err := d.ChannelKeeper.ExecuteTimeout(h, *e.Timeout)
		if err != nil {
			return Result{}, err
		}
		return Result{NoOp: !ok}, nil
	case e.TimeoutOnClose != nil:
		ok, err := d.ChannelKeeper.ExecuteTimeoutOnClose(h, *e.TimeoutOnClose)
		if err != nil {
			return Result{}, err
		}
		return Result{NoOp: !ok}, nil

	default:
		return Result{}, ErrUnknownMessageType
	}
}

// Dispatch runs Validate then, on success, Execute — the standard
// entrypoint a host's transaction executor calls per message (spec §4.1).
func (d Dispatcher) Dispatch(h host.WriteHost, e MsgEnvelope) (Result, error) {
	if err := d.Validate(h, e); err != nil {
		return Result{}, err
	}
	return d.Execute(h, e)
}
