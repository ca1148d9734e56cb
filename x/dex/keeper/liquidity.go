package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/phoenix-labs/phoenix/x/dex/types"
)

// GetPosition retrieves a provider's liquidity position in a pool
func (k Keeper) GetPosition(ctx context.Context, poolID uint64, provider sdk.AccAddress) (math.Int, error) {
	store := k.getStore(ctx)
	bz := store.Get(PositionKey(poolID, provider))
	if bz == nil {
		return math.ZeroInt(), nil
	}

	var shares math.Int
	if err := shares.Unmarshal(bz); err != nil {
		return math.ZeroInt(), err
	}
	return shares, nil
}

// SetPosition sets a provider's liquidity position in a pool
func (k Keeper) SetPosition(ctx context.Context, poolID uint64, provider sdk.AccAddress, shares math.Int) error {
	store := k.getStore(ctx)
	if shares.IsZero() {
		store.Delete(PositionKey(poolID, provider))
		return nil
	}

	bz, err := shares.Marshal()
	if err != nil {
		return err
	}
	store.Set(PositionKey(poolID, provider), bz)
	return nil
}

// AddLiquidity deposits coinA and coinB into the pool and mints shares to
// provider. The first deposit mints sqrt(a*b) shares; later deposits mint
// pro-rata against current reserves with no minimum-received protection,
// accepting whatever ratio the pool is at.
func (k Keeper) AddLiquidity(ctx context.Context, provider sdk.AccAddress, poolID uint64, coinA, coinB sdk.Coin) (math.Int, error) {
	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.ZeroInt(), err
	}

	coinA, coinB, err = orderCoins(pool, coinA, coinB)
	if err != nil {
		return math.ZeroInt(), err
	}
	amountA, amountB := coinA.Amount, coinB.Amount

	if !amountA.IsPositive() || !amountB.IsPositive() {
		return math.ZeroInt(), types.ErrInvalidAmount.Wrap("liquidity amounts must be positive")
	}

	var newShares math.Int
	if pool.TotalShares.IsZero() {
		if !pool.ReserveA.IsZero() || !pool.ReserveB.IsZero() {
			return math.ZeroInt(), types.ErrInvalidPoolState.Wrap("pool has reserves but zero shares")
		}

		// Initial shares use the geometric mean sqrt(a*b), which makes the
		// first provider's share count independent of the deposit ratio.
		product := amountA.Mul(amountB)
		sqrtShares, err := math.LegacyNewDecFromInt(product).ApproxSqrt()
		if err != nil {
			return math.ZeroInt(), types.ErrInvalidAmount.Wrapf("initial share calculation: %v", err)
		}
		newShares = sqrtShares.TruncateInt()
		if newShares.IsZero() {
			return math.ZeroInt(), types.ErrInvalidAmount.Wrap("initial liquidity amounts too small")
		}
	} else {
		if pool.ReserveA.IsZero() || pool.ReserveB.IsZero() {
			return math.ZeroInt(), types.ErrInvalidPoolState.Wrap("pool has shares but zero reserves")
		}

		sharesFromA := amountA.Mul(pool.TotalShares).Quo(pool.ReserveA)
		sharesFromB := amountB.Mul(pool.TotalShares).Quo(pool.ReserveB)
		newShares = math.MinInt(sharesFromA, sharesFromB)
		if newShares.IsZero() {
			return math.ZeroInt(), types.ErrInvalidAmount.Wrap("deposit too small for current reserves")
		}
	}

	// Transfer first, then record state (checks-effects-interactions).
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, provider, types.ModuleName, sdk.NewCoins(coinA, coinB)); err != nil {
		return math.ZeroInt(), types.ErrInsufficientLiquidity.Wrapf("transfer deposit: %v", err)
	}

	pool.ReserveA = pool.ReserveA.Add(amountA)
	pool.ReserveB = pool.ReserveB.Add(amountB)
	pool.TotalShares = pool.TotalShares.Add(newShares)
	if err := k.SetPool(ctx, pool); err != nil {
		return math.ZeroInt(), err
	}

	position, err := k.GetPosition(ctx, poolID, provider)
	if err != nil {
		return math.ZeroInt(), err
	}
	if err := k.SetPosition(ctx, poolID, provider, position.Add(newShares)); err != nil {
		return math.ZeroInt(), err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeAddLiquidity,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(types.AttributeKeyAmountA, amountA.String()),
			sdk.NewAttribute(types.AttributeKeyAmountB, amountB.String()),
			sdk.NewAttribute(types.AttributeKeyShares, newShares.String()),
		),
	)

	return newShares, nil
}

// RemoveLiquidity withdraws the provider's pro-rata reserves for shares.
// Burned shares have no position behind them and can never reach here.
func (k Keeper) RemoveLiquidity(ctx context.Context, provider sdk.AccAddress, poolID uint64, shares math.Int) (sdk.Coin, sdk.Coin, error) {
	if !shares.IsPositive() {
		return sdk.Coin{}, sdk.Coin{}, types.ErrInvalidAmount.Wrap("shares must be positive")
	}

	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return sdk.Coin{}, sdk.Coin{}, err
	}

	position, err := k.GetPosition(ctx, poolID, provider)
	if err != nil {
		return sdk.Coin{}, sdk.Coin{}, err
	}
	if position.IsZero() {
		return sdk.Coin{}, sdk.Coin{}, types.ErrNoPosition.Wrapf("provider %s in pool %d", provider, poolID)
	}
	if shares.GT(position) {
		return sdk.Coin{}, sdk.Coin{}, types.ErrInsufficientShares.Wrapf("have %s, want %s", position, shares)
	}

	amountA := shares.Mul(pool.ReserveA).Quo(pool.TotalShares)
	amountB := shares.Mul(pool.ReserveB).Quo(pool.TotalShares)
	if amountA.IsZero() && amountB.IsZero() {
		return sdk.Coin{}, sdk.Coin{}, types.ErrInvalidAmount.Wrap("shares too small for current reserves")
	}

	coinA := sdk.NewCoin(pool.TokenA, amountA)
	coinB := sdk.NewCoin(pool.TokenB, amountB)

	pool.ReserveA = pool.ReserveA.Sub(amountA)
	pool.ReserveB = pool.ReserveB.Sub(amountB)
	pool.TotalShares = pool.TotalShares.Sub(shares)
	if err := k.SetPool(ctx, pool); err != nil {
		return sdk.Coin{}, sdk.Coin{}, err
	}
	if err := k.SetPosition(ctx, poolID, provider, position.Sub(shares)); err != nil {
		return sdk.Coin{}, sdk.Coin{}, err
	}

	payout := sdk.NewCoins(coinA, coinB)
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, provider, payout); err != nil {
		return sdk.Coin{}, sdk.Coin{}, fmt.Errorf("RemoveLiquidity: pay out %s: %w", payout, err)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRemoveLiquidity,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(types.AttributeKeyAmountA, amountA.String()),
			sdk.NewAttribute(types.AttributeKeyAmountB, amountB.String()),
			sdk.NewAttribute(types.AttributeKeyShares, shares.String()),
		),
	)

	return coinA, coinB, nil
}

// BurnShares retires the provider's entire position for good. The shares
// move into the pool's burned counter: they keep backing reserves, so the
// locked liquidity stays tradable, but no owner exists and no operation
// can ever withdraw it. There is deliberately no inverse.
func (k Keeper) BurnShares(ctx context.Context, provider sdk.AccAddress, poolID uint64) (math.Int, error) {
	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.ZeroInt(), err
	}

	position, err := k.GetPosition(ctx, poolID, provider)
	if err != nil {
		return math.ZeroInt(), err
	}
	if position.IsZero() {
		return math.ZeroInt(), types.ErrNoPosition.Wrapf("provider %s in pool %d", provider, poolID)
	}

	if err := k.SetPosition(ctx, poolID, provider, math.ZeroInt()); err != nil {
		return math.ZeroInt(), err
	}

	pool.BurnedShares = pool.BurnedShares.Add(position)
	if err := k.SetPool(ctx, pool); err != nil {
		return math.ZeroInt(), err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSharesBurned,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(types.AttributeKeyShares, position.String()),
		),
	)

	return position, nil
}

// orderCoins matches the deposit coins to the pool's token ordering
func orderCoins(pool *types.Pool, coinA, coinB sdk.Coin) (sdk.Coin, sdk.Coin, error) {
	switch {
	case coinA.Denom == pool.TokenA && coinB.Denom == pool.TokenB:
		return coinA, coinB, nil
	case coinA.Denom == pool.TokenB && coinB.Denom == pool.TokenA:
		return coinB, coinA, nil
	default:
		return sdk.Coin{}, sdk.Coin{}, types.ErrInvalidTokenDenom.Wrapf(
			"deposit %s/%s does not match pool pair %s/%s",
			coinA.Denom, coinB.Denom, pool.TokenA, pool.TokenB)
	}
}
