package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/phoenix-labs/phoenix/x/relaunch/types"
)

// RegisterInvariants registers all relaunch invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "supply-conservation", SupplyConservationInvariant(k))
}

// SupplyConservationInvariant checks that, once the relaunch completed, the
// successor asset's total supply equals the sum of the four configured
// allocations. Nothing mints or burns the denom outside the relaunch, so
// any deviation means corrupted state.
func SupplyConservationInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		if k.GetStatus(ctx) != types.StatusCompleted {
			return "", false
		}

		denom, ok := k.GetSuccessorDenom(ctx)
		if !ok {
			return sdk.FormatInvariant(types.ModuleName, "supply-conservation",
				"relaunch completed but no successor denom recorded"), true
		}

		params, err := k.GetParams(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "supply-conservation",
				fmt.Sprintf("cannot read params: %v", err)), true
		}

		supply := k.bankKeeper.GetSupply(ctx, denom)
		if !supply.Amount.Equal(params.TotalSupply()) {
			return sdk.FormatInvariant(types.ModuleName, "supply-conservation",
				fmt.Sprintf("successor supply %s != configured total %s", supply.Amount, params.TotalSupply())), true
		}

		return "", false
	}
}
