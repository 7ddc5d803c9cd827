package host

// Attribute is a single key/value pair on an Event.
type Attribute struct {
	Key   string
	Value string
}

// NewAttribute builds an Attribute.
func NewAttribute(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

// Event is a structured record a handler emits: a kind string plus
// attributes (spec §4.6, §6). Kinds and attribute keys are part of the
// host-visible contract other chains and indexers key off of.
type Event struct {
	Type       string
	Attributes []Attribute
}

// NewEvent builds an Event from a type and a flat list of attributes.
func NewEvent(eventType string, attrs ...Attribute) Event {
	return Event{Type: eventType, Attributes: attrs}
}

// Well-known event type and attribute names (spec §4.6, §6).
const (
	EventTypeMessage = "Message"

	AttributeKeyModule = "module"

	AttributeKeyClientID         = "client_id"
	AttributeKeyClientType       = "client_type"
	AttributeKeyConsensusHeight  = "consensus_height"
	AttributeKeyConsensusHeights = "consensus_heights"
	AttributeKeyHeader           = "header"

	AttributeKeyConnectionID             = "connection_id"
	AttributeKeyClientIDConnection       = "client_id"
	AttributeKeyCounterpartyClientID     = "counterparty_client_id"
	AttributeKeyCounterpartyConnectionID = "counterparty_connection_id"

	AttributeKeyPortID                = "port_id"
	AttributeKeyChannelID              = "channel_id"
	AttributeKeyCounterpartyPortID     = "counterparty_port_id"
	AttributeKeyCounterpartyChannelID  = "counterparty_channel_id"
	AttributeKeyConnectionIDChannel    = "connection_id"
	AttributeVersion                   = "version"

	AttributeKeyDataHex             = "packet_data_hex"
	AttributeKeySequence            = "packet_sequence"
	AttributeKeySrcPort             = "packet_src_port"
	AttributeKeySrcChannel          = "packet_src_channel"
	AttributeKeyDstPort             = "packet_dst_port"
	AttributeKeyDstChannel          = "packet_dst_channel"
	AttributeKeyTimeoutHeight       = "packet_timeout_height"
	AttributeKeyTimeoutTimestamp    = "packet_timeout_timestamp"
	AttributeKeyAck                 = "packet_ack"
	AttributeKeyAckHex              = "packet_ack_hex"
	AttributeKeyChannelOrdering     = "packet_channel_ordering"
	AttributeKeyConnection          = "packet_connection"
)

// Category names for the mandatory per-transaction Message preamble event
// (spec §4.6).
const (
	CategoryClient     = "Client"
	CategoryConnection = "Connection"
	CategoryChannel    = "Channel"
)

// EventManager accumulates events in emission order. The dispatcher and
// keepers in this module do not use it: keepers emit straight onto the
// host through WriteHost.EmitEvent.
type EventManager struct {
	events []Event
}

// NewEventManager returns an empty manager.
func NewEventManager() *EventManager {
	return &EventManager{}
}

// Emit appends one event.
func (m *EventManager) Emit(e Event) {
	m.events = append(m.events, e)
}

// EmitMany appends several events in order.
func (m *EventManager) EmitMany(events ...Event) {
	m.events = append(m.events, events...)
}

// Events returns the accumulated events in emission order.
func (m *EventManager) Events() []Event {
	return m.events
}
