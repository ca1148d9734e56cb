package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/phoenix-labs/phoenix/x/dex/types"
)

// RegisterInvariants registers all dex invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "reserves-backed", ReservesBackedInvariant(k))
	ir.RegisterRoute(types.ModuleName, "shares-accounting", SharesAccountingInvariant(k))
}

// ReservesBackedInvariant checks that the module account holds at least the
// sum of every pool's recorded reserves per denom.
func ReservesBackedInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		required := make(map[string]math.Int)
		err := k.IteratePools(ctx, func(pool types.Pool) bool {
			for _, side := range []struct {
				denom  string
				amount math.Int
			}{
				{pool.TokenA, pool.ReserveA},
				{pool.TokenB, pool.ReserveB},
			} {
				if cur, ok := required[side.denom]; ok {
					required[side.denom] = cur.Add(side.amount)
				} else {
					required[side.denom] = side.amount
				}
			}
			return false
		})
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "reserves-backed",
				fmt.Sprintf("cannot iterate pools: %v", err)), true
		}

		moduleAddr := k.GetModuleAddress()
		for denom, amount := range required {
			balance := k.bankKeeper.GetBalance(ctx, moduleAddr, denom)
			if balance.Amount.LT(amount) {
				return sdk.FormatInvariant(types.ModuleName, "reserves-backed",
					fmt.Sprintf("module holds %s%s but pools record %s%s", balance.Amount, denom, amount, denom)), true
			}
		}

		return "", false
	}
}

// SharesAccountingInvariant checks that, per pool, the sum of provider
// positions plus burned shares equals the pool's total shares.
func SharesAccountingInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		positions, err := k.allPositions(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "shares-accounting",
				fmt.Sprintf("cannot iterate positions: %v", err)), true
		}

		held := make(map[uint64]math.Int)
		for _, pos := range positions {
			if cur, ok := held[pos.PoolId]; ok {
				held[pos.PoolId] = cur.Add(pos.Shares)
			} else {
				held[pos.PoolId] = pos.Shares
			}
		}

		var msg string
		broken := false
		err = k.IteratePools(ctx, func(pool types.Pool) bool {
			sum := pool.BurnedShares
			if positionSum, ok := held[pool.Id]; ok {
				sum = sum.Add(positionSum)
			}
			if !sum.Equal(pool.TotalShares) {
				msg = fmt.Sprintf("pool %d: positions+burned %s != total shares %s", pool.Id, sum, pool.TotalShares)
				broken = true
				return true
			}
			return false
		})
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "shares-accounting",
				fmt.Sprintf("cannot iterate pools: %v", err)), true
		}
		if broken {
			return sdk.FormatInvariant(types.ModuleName, "shares-accounting", msg), true
		}

		return "", false
	}
}
