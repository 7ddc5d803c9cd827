package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	connectiontypes "github.com/cosmosnet/ibc-core-engine/modules/03-connection/types"
)

func TestPickVersion(t *testing.T) {
	requireT := require.New(t)

	supported := connectiontypes.GetSupportedVersions()

	v, err := connectiontypes.PickVersion(supported, []connectiontypes.Version{
		{Identifier: "1", Features: []string{"ORDER_UNORDERED"}},
	})
	requireT.NoError(err)
	requireT.Equal("1", v.Identifier)
	requireT.Equal([]string{"ORDER_UNORDERED"}, v.Features)

	_, err = connectiontypes.PickVersion(supported, []connectiontypes.Version{
		{Identifier: "2", Features: []string{"ORDER_UNORDERED"}},
	})
	requireT.ErrorIs(err, connectiontypes.ErrNoCommonVersion)
}

func TestConnectionEndValidateBasic(t *testing.T) {
	requireT := require.New(t)

	conn := connectiontypes.ConnectionEnd{
		State:    connectiontypes.Init,
		ClientID: "07-tendermint-0",
		Counterparty: connectiontypes.Counterparty{
			ClientID: "07-tendermint-1",
		},
	}
	requireT.NoError(conn.ValidateBasic())

	tryOpenNoCounterpartyID := conn
	tryOpenNoCounterpartyID.State = connectiontypes.TryOpen
	tryOpenNoCounterpartyID.Versions = []connectiontypes.Version{connectiontypes.DefaultIBCVersion}
	requireT.Error(tryOpenNoCounterpartyID.ValidateBasic())

	openNoVersions := conn
	openNoVersions.State = connectiontypes.Open
	requireT.Error(openNoVersions.ValidateBasic())
}

func TestConnectionEndGetVersion(t *testing.T) {
	requireT := require.New(t)

	conn := connectiontypes.ConnectionEnd{Versions: []connectiontypes.Version{connectiontypes.DefaultIBCVersion}}
	v, err := conn.GetVersion()
	requireT.NoError(err)
	requireT.Equal(connectiontypes.DefaultIBCVersion, v)

	empty := connectiontypes.ConnectionEnd{}
	_, err = empty.GetVersion()
	requireT.Error(err)
}
