// Package host defines the boundary the core is parameterized over (spec
// §4.6): the read/write contract a concrete chain must supply, the
// canonical path encoding every subsystem keys its state with, and the
// structured event model emitted by handlers.
package host

import "fmt"

// Canonical path builders. These strings are part of the cross-chain wire
// contract: counterparty proofs are verified against them bit-exactly, so
// none of them may be "prettified" (spec §9).

// FullClientStatePath returns "clients/{id}/clientState".
func FullClientStatePath(clientID string) string {
	return fmt.Sprintf("clients/%s/clientState", clientID)
}

// FullConsensusStatePath returns "clients/{id}/consensusStates/{rev}-{h}".
func FullConsensusStatePath(clientID string, revisionNumber, revisionHeight uint64) string {
	return fmt.Sprintf("clients/%s/consensusStates/%d-%d", clientID, revisionNumber, revisionHeight)
}

// FullConnectionPath returns "connections/{id}".
func FullConnectionPath(connectionID string) string {
	return fmt.Sprintf("connections/%s", connectionID)
}

// FullChannelPath returns "channelEnds/ports/{p}/channels/{c}".
func FullChannelPath(portID, channelID string) string {
	return fmt.Sprintf("channelEnds/ports/%s/channels/%s", portID, channelID)
}

// NextSequenceSendPath returns "nextSequenceSend/ports/{p}/channels/{c}".
func NextSequenceSendPath(portID, channelID string) string {
	return fmt.Sprintf("nextSequenceSend/ports/%s/channels/%s", portID, channelID)
}

// NextSequenceRecvPath returns "nextSequenceRecv/ports/{p}/channels/{c}".
func NextSequenceRecvPath(portID, channelID string) string {
	return fmt.Sprintf("nextSequenceRecv/ports/%s/channels/%s", portID, channelID)
}

// NextSequenceAckPath returns "nextSequenceAck/ports/{p}/channels/{c}".
func NextSequenceAckPath(portID, channelID string) string {
	return fmt.Sprintf("nextSequenceAck/ports/%s/channels/%s", portID, channelID)
}

// PacketCommitmentPath returns "commitments/ports/{p}/channels/{c}/sequences/{seq}".
func PacketCommitmentPath(portID, channelID string, sequence uint64) string {
	return fmt.Sprintf("commitments/ports/%s/channels/%s/sequences/%d", portID, channelID, sequence)
}

// PacketReceiptPath returns "receipts/ports/{p}/channels/{c}/sequences/{seq}".
func PacketReceiptPath(portID, channelID string, sequence uint64) string {
	return fmt.Sprintf("receipts/ports/%s/channels/%s/sequences/%d", portID, channelID, sequence)
}

// PacketAcknowledgementPath returns "acks/ports/{p}/channels/{c}/sequences/{seq}".
func PacketAcknowledgementPath(portID, channelID string, sequence uint64) string {
	return fmt.Sprintf("acks/ports/%s/channels/%s/sequences/%d", portID, channelID, sequence)
}

// ClientUpdateMetaPath returns "clients/{id}/updateMeta/{rev}-{h}" — where
// the local host time/height recorded at that update is stored (spec §4.2
// "record update metadata for that height").
func ClientUpdateMetaPath(clientID string, revisionNumber, revisionHeight uint64) string {
	return fmt.Sprintf("clients/%s/updateMeta/%d-%d", clientID, revisionNumber, revisionHeight)
}

// UpgradedClientStatePath returns "upgradedClient/{h}/upgradedClient".
func UpgradedClientStatePath(height uint64) string {
	return fmt.Sprintf("upgradedClient/%d/upgradedClient", height)
}

// UpgradedConsensusStatePath returns "upgradedClient/{h}/upgradedConsState".
func UpgradedConsensusStatePath(height uint64) string {
	return fmt.Sprintf("upgradedClient/%d/upgradedConsState", height)
}

// PrefixedPath prepends the counterparty's commitment prefix to a local path
// before Merkle verification (spec GLOSSARY "Prefix").
func PrefixedPath(prefix []byte, path string) []byte {
	out := make([]byte, 0, len(prefix)+1+len(path))
	out = append(out, prefix...)
	out = append(out, '/')
	out = append(out, path...)
	return out
}
