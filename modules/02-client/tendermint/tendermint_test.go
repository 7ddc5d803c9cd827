package tendermint_test

import (
	"testing"
	"time"

	ics23 "github.com/cosmos/ics23/go"
	"github.com/stretchr/testify/require"

	"github.com/cosmosnet/ibc-core-engine/modules/02-client/tendermint"
	"github.com/cosmosnet/ibc-core-engine/types"
)

func TestFractionIsValid(t *testing.T) {
	requireT := require.New(t)

	requireT.True(tendermint.DefaultTrustLevel.IsValid())
	requireT.True(tendermint.Fraction{Numerator: 2, Denominator: 3}.IsValid())
	requireT.False(tendermint.Fraction{Numerator: 0, Denominator: 3}.IsValid())
	requireT.False(tendermint.Fraction{Numerator: 4, Denominator: 3}.IsValid())
	requireT.False(tendermint.Fraction{Numerator: 1, Denominator: 0}.IsValid())
}

func validClientState() *tendermint.ClientState {
	return tendermint.NewClientState(
		"test-chain-1",
		tendermint.DefaultTrustLevel,
		24*time.Hour,
		48*time.Hour,
		10*time.Second,
		types.NewHeight(1, 100),
		[]*ics23.ProofSpec{ics23.IavlSpec},
		[]string{"upgrade", "upgradedIBCState"},
	)
}

func TestClientStateValidate(t *testing.T) {
	requireT := require.New(t)

	requireT.NoError(validClientState().Validate())

	bad := validClientState()
	bad.TrustingPeriod = bad.UnbondingPeriod
	requireT.Error(bad.Validate())

	bad = validClientState()
	bad.TrustLevel = tendermint.Fraction{Numerator: 0, Denominator: 1}
	requireT.Error(bad.Validate())

	bad = validClientState()
	bad.LatestHeightValue = types.Height{}
	requireT.Error(bad.Validate())

	bad = validClientState()
	bad.ProofSpecs = nil
	requireT.Error(bad.Validate())
}

func TestClientStateIsFrozen(t *testing.T) {
	requireT := require.New(t)

	cs := validClientState()
	requireT.False(cs.IsFrozen())

	cs.FrozenHeightValue = types.NewHeight(1, 50)
	requireT.True(cs.IsFrozen())
}

func TestZeroCustomFields(t *testing.T) {
	requireT := require.New(t)

	cs := validClientState()
	zeroed := cs.ZeroCustomFields()

	requireT.Equal(cs.ChainID, zeroed.(*tendermint.ClientState).ChainID)
	requireT.Equal(cs.ProofSpecs, zeroed.(*tendermint.ClientState).ProofSpecs)
	requireT.True(zeroed.(*tendermint.ClientState).TrustingPeriod == 0)
}

func TestCheckSubstitute(t *testing.T) {
	requireT := require.New(t)

	subject := validClientState()
	substitute := validClientState()
	requireT.NoError(subject.CheckSubstitute(substitute))

	differentChain := validClientState()
	differentChain.ChainID = "other-chain-1"
	requireT.Error(subject.CheckSubstitute(differentChain))

	fewerSpecs := validClientState()
	fewerSpecs.ProofSpecs = nil
	requireT.Error(subject.CheckSubstitute(fewerSpecs))
}

func TestConsensusStateValidateBasic(t *testing.T) {
	requireT := require.New(t)

	cons := tendermint.NewConsensusState(1, []byte("root"), []byte("valhash"))
	requireT.NoError(cons.ValidateBasic())

	requireT.Error(tendermint.NewConsensusState(1, nil, []byte("valhash")).ValidateBasic())
	requireT.Error(tendermint.NewConsensusState(1, []byte("root"), nil).ValidateBasic())
	requireT.Error(tendermint.NewConsensusState(0, []byte("root"), []byte("valhash")).ValidateBasic())
}

func TestConsensusStateClientType(t *testing.T) {
	requireT := require.New(t)

	cons := tendermint.NewConsensusState(1, []byte("root"), []byte("valhash"))
	requireT.Equal(tendermint.ClientType, cons.ClientType())
}
