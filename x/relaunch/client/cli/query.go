package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"

	"github.com/phoenix-labs/phoenix/x/relaunch/types"
)

// GetQueryCmd returns the cli query commands for the relaunch module
func GetQueryCmd() *cobra.Command {
	relaunchQueryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the relaunch module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	relaunchQueryCmd.AddCommand(
		GetCmdQueryParams(),
		GetCmdQueryStatus(),
	)

	return relaunchQueryCmd
}

// GetCmdQueryParams returns the command to query the allocation ledger
func GetCmdQueryParams() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Query the relaunch allocation ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			res, _, err := clientCtx.QueryWithData(
				fmt.Sprintf("custom/%s/%s", types.QuerierRoute, types.QueryParams), nil)
			if err != nil {
				return err
			}

			return clientCtx.PrintString(string(res) + "\n")
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryStatus returns the command to query the relaunch status
func GetCmdQueryStatus() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Query whether the relaunch has executed",
		Long: `Query relaunch status: pending or completed, and once completed the
successor denom and the coin funding the claim mechanism.

Example:
  $ phoenixd query relaunch status`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			res, _, err := clientCtx.QueryWithData(
				fmt.Sprintf("custom/%s/%s", types.QuerierRoute, types.QueryStatus), nil)
			if err != nil {
				return err
			}

			return clientCtx.PrintString(string(res) + "\n")
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
