package types_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cosmosnet/ibc-core-engine/types"
)

func TestValidateClientID(t *testing.T) {
	testCases := []struct {
		name      string
		id        string
		expectErr bool
	}{
		{name: "valid_tendermint", id: "07-tendermint-0"},
		{name: "valid_tendermint_high_counter", id: "07-tendermint-184467440737"},
		{name: "too_short_type", id: "tm-0"},
		{name: "missing_counter", id: "07-tendermint"},
		{name: "non_numeric_counter", id: "07-tendermint-abc"},
		{name: "contains_slash", id: "07-tendermint/0"},
		{name: "too_long", id: "07-tendermint-" + strings.Repeat("0", 60)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			requireT := require.New(t)
			err := types.ValidateClientID(tc.id)
			if strings.HasPrefix(tc.name, "valid") {
				requireT.NoError(err)
				return
			}
			requireT.Error(err)
		})
	}
}

func TestValidateIdentifierCharset(t *testing.T) {
	requireT := require.New(t)

	requireT.NoError(types.ValidatePortID("transfer"))
	requireT.NoError(types.ValidatePortID("ics20-1.v2"))
	requireT.Error(types.ValidatePortID("a"))
	requireT.Error(types.ValidatePortID("has/slash"))
	requireT.Error(types.ValidatePortID(""))
}

func TestFormatters(t *testing.T) {
	requireT := require.New(t)

	requireT.Equal("07-tendermint-3", types.FormatClientID("07-tendermint", 3))
	requireT.Equal("connection-5", types.FormatConnectionID(5))
	requireT.Equal("channel-7", types.FormatChannelID(7))
}
