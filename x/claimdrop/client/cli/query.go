package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"

	"github.com/phoenix-labs/phoenix/x/claimdrop/types"
)

// GetQueryCmd returns the cli query commands for the claimdrop module
func GetQueryCmd() *cobra.Command {
	claimQueryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the claimdrop module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	claimQueryCmd.AddCommand(
		GetCmdQueryFund(),
		GetCmdQueryClaimed(),
	)

	return claimQueryCmd
}

// GetCmdQueryFund returns the command to query the remaining claim fund
func GetCmdQueryFund() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fund",
		Short: "Query the remaining claimable fund",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			res, _, err := clientCtx.QueryWithData(
				fmt.Sprintf("custom/%s/%s", types.QuerierRoute, types.QueryFund), nil)
			if err != nil {
				return err
			}

			return clientCtx.PrintString(string(res) + "\n")
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryClaimed returns the command to query whether an address claimed
func GetCmdQueryClaimed() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claimed [address]",
		Short: "Query whether an address has already claimed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			res, _, err := clientCtx.QueryWithData(
				fmt.Sprintf("custom/%s/%s/%s", types.QuerierRoute, types.QueryClaimed, args[0]), nil)
			if err != nil {
				return err
			}

			return clientCtx.PrintString(string(res) + "\n")
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
