package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cosmosnet/ibc-core-engine/types"
)

func TestHeightOrdering(t *testing.T) {
	requireT := require.New(t)

	h1 := types.NewHeight(0, 5)
	h2 := types.NewHeight(0, 10)
	h3 := types.NewHeight(1, 1)

	requireT.True(h1.LT(h2))
	requireT.True(h2.LT(h3))
	requireT.True(h2.GT(h1))
	requireT.True(h1.LTE(h1))
	requireT.True(h1.EQ(types.NewHeight(0, 5)))
	requireT.False(h1.GTE(h2))
}

func TestHeightString(t *testing.T) {
	requireT := require.New(t)

	requireT.Equal("0-10", types.NewHeight(0, 10).String())
	requireT.Equal("3-42", types.NewHeight(3, 42).String())
}

func TestHeightIsValid(t *testing.T) {
	requireT := require.New(t)

	requireT.False(types.NewHeight(0, 0).IsValid())
	requireT.True(types.NewHeight(0, 1).IsValid())
}

func TestParseHeight(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		expected  types.Height
		expectErr bool
	}{
		{name: "valid", input: "0-10", expected: types.NewHeight(0, 10)},
		{name: "valid_nonzero_revision", input: "4-100", expected: types.NewHeight(4, 100)},
		{name: "empty_string", input: "", expectErr: true},
		{name: "missing_dash", input: "010", expectErr: true},
		{name: "multiple_dashes", input: "0-1-0", expectErr: true},
		{name: "empty_component", input: "0-", expectErr: true},
		{name: "empty_leading_component", input: "-10", expectErr: true},
		{name: "non_numeric", input: "a-b", expectErr: true},
		{name: "zero_height", input: "0-0", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			requireT := require.New(t)

			got, err := types.ParseHeight(tc.input)
			if tc.expectErr {
				requireT.Error(err)
				return
			}
			requireT.NoError(err)
			requireT.Equal(tc.expected, got)
		})
	}
}

func TestParseHeightRoundTrip(t *testing.T) {
	requireT := require.New(t)

	h := types.NewHeight(7, 123)
	parsed, err := types.ParseHeight(h.String())
	requireT.NoError(err)
	requireT.Equal(h, parsed)
}

func TestParseChainID(t *testing.T) {
	requireT := require.New(t)

	requireT.Equal(uint64(1), types.ParseChainID("chain-1"))
	requireT.Equal(uint64(42), types.ParseChainID("my-test-chain-42"))
	requireT.Equal(uint64(0), types.ParseChainID("no-revision-suffix-here-"))
	requireT.Equal(uint64(0), types.ParseChainID("nodash"))
}
