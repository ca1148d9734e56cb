package cli

import (
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/phoenix-labs/phoenix/x/relaunch/types"
)

// GetTxCmd returns the transaction commands for the relaunch module
func GetTxCmd() *cobra.Command {
	relaunchTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Relaunch transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	relaunchTxCmd.AddCommand(
		CmdRelaunch(),
	)

	return relaunchTxCmd
}

// CmdRelaunch returns a CLI command handler for executing the one-time migration
func CmdRelaunch() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "execute",
		Short: "Execute the one-time token relaunch",
		Long: `Execute the one-time migration from the legacy asset to the successor
asset. Only the configured relaunch authority may run this, and it can
succeed at most once.

Example:
  $ phoenixd tx relaunch execute --from authority`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := types.NewMsgRelaunch(clientCtx.GetFromAddress().String())
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
