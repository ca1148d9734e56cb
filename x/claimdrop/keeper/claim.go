package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/phoenix-labs/phoenix/x/claimdrop/types"
)

// Deposit pulls coin from funder into the claim fund. The transfer and the
// fund accounting are one call, so there is no state where the fund
// believes it holds coins the module account does not.
func (k Keeper) Deposit(ctx context.Context, funder sdk.AccAddress, coin sdk.Coin) error {
	if coin.IsNil() || coin.IsZero() {
		return types.ErrZeroDeposit
	}

	fund, funded := k.GetFund(ctx)
	if funded && fund.Denom != coin.Denom {
		return types.ErrFundMismatch.Wrapf("fund holds %s, deposit is %s", fund.Denom, coin.Denom)
	}

	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, funder, types.ModuleName, sdk.NewCoins(coin)); err != nil {
		return fmt.Errorf("Deposit: pull %s from %s: %w", coin, funder, err)
	}

	if funded {
		coin = fund.Add(coin)
	}
	k.setFund(ctx, coin)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeDeposit,
			sdk.NewAttribute(types.AttributeKeyFunder, funder.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, coin.String()),
		),
	)

	return nil
}

// Claim pays out the claimant's allocation: their current legacy-asset
// balance, capped at whatever remains in the fund. Each address claims at
// most once. Eligibility beyond "holds the legacy asset" is not this
// module's concern.
func (k Keeper) Claim(ctx context.Context, claimant sdk.AccAddress) (sdk.Coin, error) {
	if k.HasClaimed(ctx, claimant) {
		return sdk.Coin{}, types.ErrAlreadyClaimed.Wrapf("address %s", claimant)
	}

	fund, funded := k.GetFund(ctx)
	if !funded || fund.IsZero() {
		return sdk.Coin{}, types.ErrNotFunded
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return sdk.Coin{}, err
	}

	legacy := k.bankKeeper.GetBalance(ctx, claimant, params.LegacyDenom)
	if legacy.IsZero() {
		return sdk.Coin{}, types.ErrNothingToClaim.Wrapf("address %s holds no %s", claimant, params.LegacyDenom)
	}

	payout := sdk.NewCoin(fund.Denom, legacy.Amount)
	if payout.Amount.GT(fund.Amount) {
		payout.Amount = fund.Amount
	}

	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, claimant, sdk.NewCoins(payout)); err != nil {
		return sdk.Coin{}, fmt.Errorf("Claim: pay %s to %s: %w", payout, claimant, err)
	}

	remaining := fund.Sub(payout)
	k.setFund(ctx, remaining)
	k.setClaimed(ctx, claimant)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeClaimPaid,
			sdk.NewAttribute(types.AttributeKeyClaimant, claimant.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, payout.String()),
			sdk.NewAttribute(types.AttributeKeyLegacyDenom, params.LegacyDenom),
			sdk.NewAttribute(types.AttributeKeyRemaining, remaining.String()),
		),
	)

	return payout, nil
}
