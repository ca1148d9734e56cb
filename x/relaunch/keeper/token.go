package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"

	"github.com/phoenix-labs/phoenix/x/relaunch/types"
)

// deploySuccessor mints the successor denom with its full initial
// distribution and registers its metadata. Administrative control of the
// denom is recorded to the DAO, never to this module.
//
// Exactly three recipients exist for this migration: the DAO, the agent
// wallet, and the module account itself holding the airdrop and pool
// allocations it redistributes in later steps.
func (k Keeper) deploySuccessor(ctx sdk.Context, params types.Params) (string, error) {
	if existing, ok := k.GetSuccessorDenom(ctx); ok {
		return "", types.ErrAlreadyDeployed.Wrapf("successor denom %q already recorded", existing)
	}

	denom := params.SuccessorDenom()

	dao, err := sdk.AccAddressFromBech32(params.DaoAddress)
	if err != nil {
		return "", types.ErrInvalidParams.Wrapf("dao address: %v", err)
	}
	agent, err := sdk.AccAddressFromBech32(params.AgentAddress)
	if err != nil {
		return "", types.ErrInvalidParams.Wrapf("agent address: %v", err)
	}

	recipients := []sdk.AccAddress{dao, agent, k.GetModuleAddress()}
	amounts := []math.Int{params.DaoAmount, params.AgentAmount, params.AirdropAmount.Add(params.PoolAmount)}

	if err := k.mintInitial(ctx, denom, recipients, amounts); err != nil {
		return "", err
	}

	k.bankKeeper.SetDenomMetaData(ctx, banktypes.Metadata{
		Description: fmt.Sprintf("%s, successor of %s", params.SuccessorName, params.LegacyDenom),
		DenomUnits: []*banktypes.DenomUnit{
			{Denom: denom, Exponent: 0},
			{Denom: params.SuccessorSymbol, Exponent: 6},
		},
		Base:    denom,
		Display: params.SuccessorSymbol,
		Name:    params.SuccessorName,
		Symbol:  params.SuccessorSymbol,
	})

	k.setSuccessorDenom(ctx, denom)
	k.setSuccessorAdmin(ctx, dao)

	return denom, nil
}

// mintInitial mints the sum of amounts to the module account and pays each
// external recipient its slice. Minting happens once: total supply of the
// denom equals the sum of the distribution list forever after.
func (k Keeper) mintInitial(ctx sdk.Context, denom string, recipients []sdk.AccAddress, amounts []math.Int) error {
	if len(recipients) != len(amounts) {
		return types.ErrLengthMismatch.Wrapf("%d recipients, %d amounts", len(recipients), len(amounts))
	}

	total := math.ZeroInt()
	for _, amt := range amounts {
		if amt.IsNegative() {
			return types.ErrInvalidParams.Wrapf("negative mint amount %s", amt)
		}
		total = total.Add(amt)
	}
	if total.IsZero() {
		return types.ErrInvalidParams.Wrap("nothing to mint")
	}

	if err := k.bankKeeper.MintCoins(ctx, types.ModuleName, sdk.NewCoins(sdk.NewCoin(denom, total))); err != nil {
		return fmt.Errorf("mintInitial: mint %s%s: %w", total, denom, err)
	}

	moduleAddr := k.GetModuleAddress()
	for i, recipient := range recipients {
		if amounts[i].IsZero() || recipient.Equals(moduleAddr) {
			continue
		}
		coin := sdk.NewCoin(denom, amounts[i])
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, recipient, sdk.NewCoins(coin)); err != nil {
			return fmt.Errorf("mintInitial: distribute %s to %s: %w", coin, recipient, err)
		}
	}

	return nil
}
