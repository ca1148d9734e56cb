package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/phoenix-labs/phoenix/x/dex/types"
)

// Swap fee in basis points, taken from the input amount and left in the
// pool reserves for liquidity providers.
const swapFeeBps = 30

// Swap trades tokenIn for the other side of the pair at the constant
// product price. Reverts with ErrMinAmountOut when slippage pushes the
// output below minAmountOut.
func (k Keeper) Swap(ctx context.Context, trader sdk.AccAddress, poolID uint64, tokenIn sdk.Coin, minAmountOut math.Int) (sdk.Coin, error) {
	if !tokenIn.Amount.IsPositive() {
		return sdk.Coin{}, types.ErrInvalidAmount.Wrap("input amount must be positive")
	}

	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return sdk.Coin{}, err
	}
	if !pool.HasToken(tokenIn.Denom) {
		return sdk.Coin{}, types.ErrInvalidTokenDenom.Wrapf("pool %d does not trade %s", poolID, tokenIn.Denom)
	}

	var reserveIn, reserveOut math.Int
	var denomOut string
	if tokenIn.Denom == pool.TokenA {
		reserveIn, reserveOut, denomOut = pool.ReserveA, pool.ReserveB, pool.TokenB
	} else {
		reserveIn, reserveOut, denomOut = pool.ReserveB, pool.ReserveA, pool.TokenA
	}

	if reserveIn.IsZero() || reserveOut.IsZero() {
		return sdk.Coin{}, types.ErrInsufficientLiquidity.Wrapf("pool %d has an empty reserve", poolID)
	}

	// amountOut = amountIn*(10000-fee)*reserveOut / (reserveIn*10000 + amountIn*(10000-fee))
	feeMul := math.NewInt(10000 - swapFeeBps)
	amountInWithFee := tokenIn.Amount.Mul(feeMul)
	numerator := amountInWithFee.Mul(reserveOut)
	denominator := reserveIn.Mul(math.NewInt(10000)).Add(amountInWithFee)
	amountOut := numerator.Quo(denominator)

	if amountOut.IsZero() {
		return sdk.Coin{}, types.ErrInvalidAmount.Wrap("input too small to produce output")
	}
	if amountOut.LT(minAmountOut) {
		return sdk.Coin{}, types.ErrMinAmountOut.Wrapf("would receive %s%s, minimum is %s%s", amountOut, denomOut, minAmountOut, denomOut)
	}

	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, trader, types.ModuleName, sdk.NewCoins(tokenIn)); err != nil {
		return sdk.Coin{}, types.ErrInsufficientLiquidity.Wrapf("collect input: %v", err)
	}

	if tokenIn.Denom == pool.TokenA {
		pool.ReserveA = pool.ReserveA.Add(tokenIn.Amount)
		pool.ReserveB = pool.ReserveB.Sub(amountOut)
	} else {
		pool.ReserveB = pool.ReserveB.Add(tokenIn.Amount)
		pool.ReserveA = pool.ReserveA.Sub(amountOut)
	}
	if err := k.SetPool(ctx, pool); err != nil {
		return sdk.Coin{}, err
	}

	coinOut := sdk.NewCoin(denomOut, amountOut)
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, trader, sdk.NewCoins(coinOut)); err != nil {
		return sdk.Coin{}, fmt.Errorf("Swap: pay out %s: %w", coinOut, err)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSwap,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyTrader, trader.String()),
			sdk.NewAttribute(types.AttributeKeyTokenIn, tokenIn.Denom),
			sdk.NewAttribute(types.AttributeKeyTokenOut, denomOut),
			sdk.NewAttribute(types.AttributeKeyAmountIn, tokenIn.Amount.String()),
			sdk.NewAttribute(types.AttributeKeyAmountOut, amountOut.String()),
		),
	)

	return coinOut, nil
}
