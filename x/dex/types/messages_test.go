package types_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/phoenix-labs/phoenix/x/dex/types"
)

func testAddr(name string) string {
	raw := make([]byte, 20)
	copy(raw, name)
	return sdk.AccAddress(raw).String()
}

func TestMsgCreatePoolValidateBasic(t *testing.T) {
	valid := types.MsgCreatePool{Creator: testAddr("creator"), TokenA: "uphnx", TokenB: "ubase"}
	require.NoError(t, valid.ValidateBasic())

	bad := valid
	bad.Creator = "nope"
	require.Error(t, bad.ValidateBasic())

	bad = valid
	bad.TokenB = bad.TokenA
	require.ErrorIs(t, bad.ValidateBasic(), types.ErrSameToken)

	bad = valid
	bad.TokenA = ""
	require.ErrorIs(t, bad.ValidateBasic(), types.ErrInvalidTokenDenom)
}

func TestMsgAddLiquidityValidateBasic(t *testing.T) {
	valid := types.MsgAddLiquidity{
		Provider: testAddr("provider"),
		PoolId:   1,
		CoinA:    sdk.NewCoin("uphnx", math.NewInt(100)),
		CoinB:    sdk.NewCoin("ubase", math.NewInt(100)),
	}
	require.NoError(t, valid.ValidateBasic())

	bad := valid
	bad.PoolId = 0
	require.Error(t, bad.ValidateBasic())

	bad = valid
	bad.CoinA = sdk.NewCoin("uphnx", math.ZeroInt())
	require.ErrorIs(t, bad.ValidateBasic(), types.ErrInvalidAmount)

	bad = valid
	bad.CoinB = sdk.NewCoin("uphnx", math.NewInt(100))
	require.ErrorIs(t, bad.ValidateBasic(), types.ErrSameToken)
}

func TestMsgSwapValidateBasic(t *testing.T) {
	valid := types.MsgSwap{
		Trader:       testAddr("trader"),
		PoolId:       1,
		TokenIn:      "ubase",
		AmountIn:     math.NewInt(100),
		MinAmountOut: math.ZeroInt(),
	}
	require.NoError(t, valid.ValidateBasic())

	bad := valid
	bad.AmountIn = math.ZeroInt()
	require.ErrorIs(t, bad.ValidateBasic(), types.ErrInvalidAmount)

	bad = valid
	bad.MinAmountOut = math.NewInt(-1)
	require.ErrorIs(t, bad.ValidateBasic(), types.ErrInvalidAmount)

	bad = valid
	bad.MinAmountOut = math.Int{}
	require.ErrorIs(t, bad.ValidateBasic(), types.ErrInvalidAmount)
}

func TestMsgRemoveLiquidityValidateBasic(t *testing.T) {
	valid := types.MsgRemoveLiquidity{
		Provider: testAddr("provider"),
		PoolId:   1,
		Shares:   math.NewInt(5),
	}
	require.NoError(t, valid.ValidateBasic())

	bad := valid
	bad.Shares = math.ZeroInt()
	require.ErrorIs(t, bad.ValidateBasic(), types.ErrInvalidAmount)
}
