package types_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/phoenix-labs/phoenix/x/relaunch/types"
)

func validParams() types.Params {
	addr := func(name string) string {
		raw := make([]byte, 20)
		copy(raw, name)
		return sdk.AccAddress(raw).String()
	}
	return types.Params{
		LegacyDenom:     "ulegacy",
		BaseDenom:       "ubase",
		SuccessorName:   "Phoenix",
		SuccessorSymbol: "PHNX",
		DaoAddress:      addr("dao"),
		DaoAmount:       math.NewInt(400),
		AgentAddress:    addr("agent"),
		AgentAmount:     math.NewInt(100),
		AirdropAmount:   math.NewInt(50),
		PoolAmount:      math.NewInt(450),
		Authority:       addr("authority"),
	}
}

func TestParamsValidate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(p *types.Params)
		wantErr bool
	}{
		{name: "valid", mutate: func(p *types.Params) {}},
		{name: "empty legacy denom", mutate: func(p *types.Params) { p.LegacyDenom = "" }, wantErr: true},
		{name: "empty base denom", mutate: func(p *types.Params) { p.BaseDenom = "" }, wantErr: true},
		{name: "empty name", mutate: func(p *types.Params) { p.SuccessorName = "" }, wantErr: true},
		{name: "empty symbol", mutate: func(p *types.Params) { p.SuccessorSymbol = "" }, wantErr: true},
		{name: "successor equals legacy", mutate: func(p *types.Params) { p.LegacyDenom = "uphnx" }, wantErr: true},
		{name: "successor equals base", mutate: func(p *types.Params) { p.BaseDenom = "uphnx" }, wantErr: true},
		{name: "bad dao address", mutate: func(p *types.Params) { p.DaoAddress = "notanaddress" }, wantErr: true},
		{name: "bad agent address", mutate: func(p *types.Params) { p.AgentAddress = "notanaddress" }, wantErr: true},
		{name: "bad authority", mutate: func(p *types.Params) { p.Authority = "" }, wantErr: true},
		{name: "nil amount", mutate: func(p *types.Params) { p.DaoAmount = math.Int{} }, wantErr: true},
		{name: "negative amount", mutate: func(p *types.Params) { p.PoolAmount = math.NewInt(-1) }, wantErr: true},
		{name: "zero allocation allowed per field", mutate: func(p *types.Params) { p.AirdropAmount = math.ZeroInt() }},
		{name: "all zero", mutate: func(p *types.Params) {
			p.DaoAmount = math.ZeroInt()
			p.AgentAmount = math.ZeroInt()
			p.AirdropAmount = math.ZeroInt()
			p.PoolAmount = math.ZeroInt()
		}, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := validParams()
			tc.mutate(&p)
			err := p.Validate()
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestSuccessorDenomDerivation(t *testing.T) {
	p := validParams()
	require.Equal(t, "uphnx", p.SuccessorDenom())

	p.SuccessorSymbol = "ABC"
	require.Equal(t, "uabc", p.SuccessorDenom())
}

func TestTotalSupply(t *testing.T) {
	p := validParams()
	require.Equal(t, math.NewInt(1000), p.TotalSupply())
}

func TestGenesisValidate(t *testing.T) {
	// Dormant genesis is valid.
	require.NoError(t, (types.GenesisState{}).Validate())

	// Completed without params is not.
	require.Error(t, (types.GenesisState{Completed: true}).Validate())

	// Completed needs a successor denom.
	gs := types.GenesisState{Params: validParams(), Completed: true}
	require.Error(t, gs.Validate())
	gs.SuccessorDenom = "uphnx"
	require.NoError(t, gs.Validate())

	// A denom recorded before completion is inconsistent.
	gs = types.GenesisState{Params: validParams(), SuccessorDenom: "uphnx"}
	require.Error(t, gs.Validate())
}
