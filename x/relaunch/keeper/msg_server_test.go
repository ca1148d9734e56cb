package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/phoenix-labs/phoenix/testutil/keeper"
	"github.com/phoenix-labs/phoenix/x/relaunch/keeper"
	"github.com/phoenix-labs/phoenix/x/relaunch/types"
)

func TestMsgRelaunchAuthority(t *testing.T) {
	params := testkeeper.DefaultRelaunchParams()
	f := testkeeper.RelaunchKeeper(t, params, math.NewInt(10_000_000))
	srv := keeper.NewMsgServerImpl(f.Keeper)

	// A non-authority signer is rejected before anything executes.
	intruder := testkeeper.TestAddr("intruder").String()
	_, err := srv.Relaunch(f.Ctx, types.NewMsgRelaunch(intruder))
	require.ErrorIs(t, err, types.ErrUnauthorized)
	require.Equal(t, types.StatusPending, f.Keeper.GetStatus(f.Ctx))

	// The configured authority succeeds.
	resp, err := srv.Relaunch(f.Ctx, types.NewMsgRelaunch(params.Authority))
	require.NoError(t, err)
	require.Equal(t, params.SuccessorDenom(), resp.SuccessorDenom)
	require.Equal(t, types.StatusCompleted, f.Keeper.GetStatus(f.Ctx))

	// Even the authority cannot run it twice.
	_, err = srv.Relaunch(f.Ctx, types.NewMsgRelaunch(params.Authority))
	require.ErrorIs(t, err, types.ErrAlreadyRelaunched)
}
