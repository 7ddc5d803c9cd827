package types

import (
	"fmt"
	"strconv"
	"strings"

	errorsmod "cosmossdk.io/errors"
)

// identifierCharset is the ICS-24 grammar: alphanumeric plus the listed
// punctuation. '/' is deliberately excluded since canonical paths use it as
// a segment separator.
const identifierCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789._+-#[]<>"

// Per-kind length bounds (spec §3).
const (
	MinClientIDLength     = 9
	MaxClientIDLength     = 64
	MinConnectionIDLength = 10
	MaxConnectionIDLength = 64
	MinChannelIDLength    = 8
	MaxChannelIDLength    = 64
	MinPortIDLength       = 2
	MaxPortIDLength       = 128

	// MinClientTypeLength resolves the spec §9 open question: the two
	// divergent validation paths in the source are converged on one rule —
	// the client-type prefix must be at least 7 characters (e.g. the
	// canonical "07-tendermint").
	MinClientTypeLength = 7
)

// ValidateIdentifier checks s against the ICS-24 charset and the given
// inclusive length bounds. It does not know about per-kind structural rules
// (e.g. the client-id type prefix); callers layer those on top.
func ValidateIdentifier(s string, minLength, maxLength int) error {
	if strings.TrimSpace(s) == "" {
		return errorsmod.Wrap(ErrInvalidIdentifier, "identifier cannot be blank")
	}
	if len(s) < minLength || len(s) > maxLength {
		return errorsmod.Wrapf(ErrInvalidIdentifier, "identifier %q has length %d, expected between %d and %d characters", s, len(s), minLength, maxLength)
	}
	for _, r := range s {
		if !strings.ContainsRune(identifierCharset, r) {
			return errorsmod.Wrapf(ErrInvalidIdentifier, "identifier %q contains invalid character %q", s, r)
		}
	}
	return nil
}

// ValidateClientID enforces the ICS-24 charset, the client id length bounds,
// and the "<client-type>-<u64>" structural rule (spec §3, §9).
func ValidateClientID(id string) error {
	if err := ValidateIdentifier(id, MinClientIDLength, MaxClientIDLength); err != nil {
		return err
	}
	clientType, counter, err := splitClientID(id)
	if err != nil {
		return err
	}
	if len(clientType) < MinClientTypeLength {
		return errorsmod.Wrapf(ErrInvalidIdentifier, "client type %q must be at least %d characters", clientType, MinClientTypeLength)
	}
	_ = counter
	return nil
}

// splitClientID splits "<client-type>-<u64>" at the last dash and validates
// that the suffix is a well-formed u64 counter.
func splitClientID(id string) (clientType string, counter uint64, err error) {
	idx := strings.LastIndex(id, "-")
	if idx < 0 || idx == len(id)-1 {
		return "", 0, errorsmod.Wrapf(ErrInvalidIdentifier, "client id %q must have the form <client-type>-<counter>", id)
	}
	clientType = id[:idx]
	counter, convErr := strconv.ParseUint(id[idx+1:], 10, 64)
	if convErr != nil {
		return "", 0, errorsmod.Wrapf(ErrInvalidIdentifier, "client id %q counter suffix is not a valid u64: %s", id, convErr)
	}
	return clientType, counter, nil
}

// ValidateConnectionID enforces the connection identifier grammar and bounds.
func ValidateConnectionID(id string) error {
	return ValidateIdentifier(id, MinConnectionIDLength, MaxConnectionIDLength)
}

// ValidateChannelID enforces the channel identifier grammar and bounds.
func ValidateChannelID(id string) error {
	return ValidateIdentifier(id, MinChannelIDLength, MaxChannelIDLength)
}

// ValidatePortID enforces the port identifier grammar and bounds.
func ValidatePortID(id string) error {
	return ValidateIdentifier(id, MinPortIDLength, MaxPortIDLength)
}

// FormatClientID renders the canonical "<client-type>-<counter>" shape used
// when the client subsystem allocates a fresh identifier.
func FormatClientID(clientType string, counter uint64) string {
	return fmt.Sprintf("%s-%d", clientType, counter)
}

// FormatConnectionID renders the canonical "connection-<counter>" shape.
func FormatConnectionID(counter uint64) string {
	return fmt.Sprintf("connection-%d", counter)
}

// FormatChannelID renders the canonical "channel-<counter>" shape.
func FormatChannelID(counter uint64) string {
	return fmt.Sprintf("channel-%d", counter)
}
