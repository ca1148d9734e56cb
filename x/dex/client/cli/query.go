package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"

	"github.com/phoenix-labs/phoenix/x/dex/types"
)

// GetQueryCmd returns the cli query commands for the dex module
func GetQueryCmd() *cobra.Command {
	dexQueryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the dex module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	dexQueryCmd.AddCommand(
		GetCmdQueryPool(),
		GetCmdQueryPools(),
		GetCmdQueryPosition(),
	)

	return dexQueryCmd
}

// GetCmdQueryPool returns the command to query a single pool
func GetCmdQueryPool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pool [pool-id]",
		Short: "Query a liquidity pool by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return err
			}

			bz, err := json.Marshal(types.QueryPoolRequest{PoolId: poolID})
			if err != nil {
				return err
			}

			res, _, err := clientCtx.QueryWithData(
				fmt.Sprintf("custom/%s/%s", types.QuerierRoute, types.QueryPool), bz)
			if err != nil {
				return err
			}

			return clientCtx.PrintString(string(res) + "\n")
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryPools returns the command to list every pool
func GetCmdQueryPools() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pools",
		Short: "Query all liquidity pools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			res, _, err := clientCtx.QueryWithData(
				fmt.Sprintf("custom/%s/%s", types.QuerierRoute, types.QueryPools), nil)
			if err != nil {
				return err
			}

			return clientCtx.PrintString(string(res) + "\n")
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryPosition returns the command to query a provider's shares
func GetCmdQueryPosition() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "position [pool-id] [provider]",
		Short: "Query a provider's share balance in a pool",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return err
			}

			bz, err := json.Marshal(types.QueryPositionRequest{PoolId: poolID, Provider: args[1]})
			if err != nil {
				return err
			}

			res, _, err := clientCtx.QueryWithData(
				fmt.Sprintf("custom/%s/%s", types.QuerierRoute, types.QueryPosition), bz)
			if err != nil {
				return err
			}

			return clientCtx.PrintString(string(res) + "\n")
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
