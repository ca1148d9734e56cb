package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/phoenix-labs/phoenix/x/relaunch/types"
)

// Relaunch executes the one-time migration from the legacy asset to the
// successor asset. The whole sequence runs on a branched store and is
// committed with a single write, so an observer sees either every step
// applied or none of them. The completion flag is the first write inside
// the branch, which rejects any nested attempt before it can touch funds.
//
// Sequence:
//  1. flip the one-shot flag
//  2. check the claim mechanism is bound to the legacy denom
//  3. issue the successor denom and pay out the DAO and agent allocations
//  4. fund the claim mechanism with the airdrop allocation
//  5. ensure the successor/base pool exists
//  6. sweep remaining successor and base balances into the pool and burn
//     the resulting shares
func (k Keeper) Relaunch(ctx context.Context) (*types.MsgRelaunchResponse, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	if k.GetStatus(ctx) == types.StatusCompleted {
		return nil, types.ErrAlreadyRelaunched
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}
	if params.IsEmpty() {
		return nil, types.ErrInvalidParams.Wrap("no allocation ledger configured")
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	if k.metrics != nil {
		k.metrics.Attempts.Inc()
	}

	// Branch the store: a failure in any step discards everything written
	// so far, including the completion flag.
	cacheCtx, writeFn := sdkCtx.CacheContext()

	resp, err := k.runSequence(cacheCtx, params)
	if err != nil {
		k.Logger(ctx).Error("relaunch failed, discarding all state changes", "err", err)
		return nil, err
	}

	writeFn()

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRelaunchCompleted,
			sdk.NewAttribute(types.AttributeKeySuccessorDenom, resp.SuccessorDenom),
			sdk.NewAttribute(types.AttributeKeyLegacyDenom, params.LegacyDenom),
			sdk.NewAttribute(types.AttributeKeyTotalSupply, resp.TotalSupply.String()),
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", resp.PoolId)),
		),
	)

	if k.metrics != nil {
		k.metrics.Completed.Set(1)
		k.metrics.SuccessorSupply.Set(float64(resp.TotalSupply.Int64()))
	}

	k.Logger(ctx).Info("relaunch completed",
		"successor", resp.SuccessorDenom,
		"supply", resp.TotalSupply.String(),
		"pool", resp.PoolId,
	)

	return resp, nil
}

// runSequence performs the relaunch steps on the branched context.
func (k Keeper) runSequence(ctx sdk.Context, params types.Params) (*types.MsgRelaunchResponse, error) {
	// Step 1: claim the one-shot right before any external interaction.
	k.setCompleted(ctx)

	// Step 2: the claim mechanism must already be bound to the legacy
	// asset it validates claims against.
	bound, err := k.claimKeeper.BoundDenom(ctx)
	if err != nil {
		return nil, err
	}
	if bound != params.LegacyDenom {
		return nil, types.ErrClaimNotBound.Wrapf("claim mechanism bound to %q, expected %q", bound, params.LegacyDenom)
	}

	// Step 3: issue the successor asset and distribute the fixed
	// allocations. The airdrop and pool allocations stay with this module
	// account for the next two steps.
	denom, err := k.deploySuccessor(ctx, params)
	if err != nil {
		return nil, err
	}

	// Step 4: fund the claim mechanism. The deposit pulls from the module
	// account, so the pool sweep below can no longer double-spend it.
	if params.AirdropAmount.IsPositive() {
		airdrop := sdk.NewCoin(denom, params.AirdropAmount)
		if err := k.claimKeeper.Deposit(ctx, k.GetModuleAddress(), airdrop); err != nil {
			return nil, err
		}
		k.setClaimFunded(ctx, airdrop)

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeClaimFunded,
				sdk.NewAttribute(types.AttributeKeySuccessorDenom, denom),
				sdk.NewAttribute(types.AttributeKeyAirdropAmount, params.AirdropAmount.String()),
			),
		)
	}

	// Step 5: make sure the trading pool exists.
	poolID, created, err := k.dexKeeper.EnsurePool(ctx, denom, params.BaseDenom)
	if err != nil {
		return nil, err
	}

	// Step 6: sweep every remaining successor token and the entire base
	// currency balance into the pool, then retire the shares for good.
	moduleAddr := k.GetModuleAddress()

	tokens := k.bankKeeper.GetBalance(ctx, moduleAddr, denom)
	if tokens.IsZero() {
		return nil, types.ErrNoTokensToDeploy
	}
	if tokens.Amount.LT(params.PoolAmount) {
		return nil, types.ErrNoTokensToDeploy.Wrapf(
			"held %s below configured pool amount %s", tokens.Amount, params.PoolAmount)
	}

	base := k.bankKeeper.GetBalance(ctx, moduleAddr, params.BaseDenom)
	if base.IsZero() {
		return nil, types.ErrNoBaseToDeploy
	}

	shares, err := k.dexKeeper.AddLiquidity(ctx, moduleAddr, poolID, tokens, base)
	if err != nil {
		return nil, err
	}

	burned, err := k.dexKeeper.BurnShares(ctx, moduleAddr, poolID)
	if err != nil {
		return nil, err
	}
	if !burned.Equal(shares) {
		return nil, types.ErrInvalidParams.Wrapf("burned %s shares, minted %s", burned, shares)
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSuccessorDeployed,
			sdk.NewAttribute(types.AttributeKeySuccessorDenom, denom),
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyPoolCreated, fmt.Sprintf("%t", created)),
			sdk.NewAttribute(types.AttributeKeyPoolTokens, tokens.String()),
			sdk.NewAttribute(types.AttributeKeyPoolBase, base.String()),
			sdk.NewAttribute(types.AttributeKeyBurnedShares, burned.String()),
		),
	)

	return &types.MsgRelaunchResponse{
		SuccessorDenom: denom,
		TotalSupply:    params.TotalSupply(),
		PoolId:         poolID,
	}, nil
}
