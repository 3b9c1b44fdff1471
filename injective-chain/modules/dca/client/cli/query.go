package cli

import (
	"strconv"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/spf13/cobra"

	"github.com/InjectiveLabs/injective-dca/injective-chain/modules/dca/types"
)

const (
	flagStartAfter = "start-after"
	flagLimit      = "limit"
	flagAscending  = "ascending"
)

// GetQueryCmd returns the parent command for all dca CLI query commands.
func GetQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the dca module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(
		GetConfigCmd(),
		GetDcaOrderCmd(),
		GetDcaOrdersCmd(),
		GetUserDcaOrdersCmd(),
		GetUserAssetDcaOrdersCmd(),
		GetUserTipsCmd(),
		GetTipFeesCmd(),
		GetUserConfigCmd(),
	)
	return cmd
}

func GetConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Args:  cobra.NoArgs,
		Short: "Get the dca module configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			queryClient := types.NewQueryClient(clientCtx)

			res, err := queryClient.Config(cmd.Context(), &types.QueryConfigRequest{})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

func GetDcaOrderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order [id]",
		Args:  cobra.ExactArgs(1),
		Short: "Get a dca order by id",
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			id, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.DcaOrder(cmd.Context(), &types.QueryDcaOrderRequest{Id: id})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

func GetDcaOrdersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Args:  cobra.NoArgs,
		Short: "List dca orders",
		RunE: func(cmd *cobra.Command, _ []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			req := &types.QueryDcaOrdersRequest{}
			if req.StartAfter, err = cmd.Flags().GetUint64(flagStartAfter); err != nil {
				return err
			}
			if req.Limit, err = cmd.Flags().GetUint32(flagLimit); err != nil {
				return err
			}
			if req.IsAscending, err = cmd.Flags().GetBool(flagAscending); err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.DcaOrders(cmd.Context(), req)
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	cmd.Flags().Uint64(flagStartAfter, 0, "exclusive order id cursor")
	cmd.Flags().Uint32(flagLimit, 0, "page size")
	cmd.Flags().Bool(flagAscending, true, "ascending id order")

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

func GetUserDcaOrdersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user-orders [user]",
		Args:  cobra.ExactArgs(1),
		Short: "List one user's dca orders with their spendable balances",
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.UserDcaOrders(cmd.Context(), &types.QueryUserDcaOrdersRequest{User: args[0]})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

func GetUserAssetDcaOrdersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user-asset-orders [user] [asset]",
		Args:  cobra.ExactArgs(2),
		Short: "List one user's dca orders depositing one asset",
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			req := &types.QueryUserAssetDcaOrdersRequest{
				User:      args[0],
				AssetInfo: parseAssetInfo(args[1]),
			}
			if req.StartAfter, err = cmd.Flags().GetUint64(flagStartAfter); err != nil {
				return err
			}
			if req.Limit, err = cmd.Flags().GetUint32(flagLimit); err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.UserAssetDcaOrders(cmd.Context(), req)
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	cmd.Flags().Uint64(flagStartAfter, 0, "exclusive order id cursor")
	cmd.Flags().Uint32(flagLimit, 0, "page size")

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

func GetUserTipsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user-tips [user]",
		Args:  cobra.ExactArgs(1),
		Short: "List one user's tip jar balances",
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.UserTips(cmd.Context(), &types.QueryUserTipsRequest{User: args[0]})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

func GetTipFeesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tip-fees",
		Args:  cobra.NoArgs,
		Short: "List the whitelisted tip assets and their per-hop fees",
		RunE: func(cmd *cobra.Command, _ []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.TipFees(cmd.Context(), &types.QueryTipFeesRequest{})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

func GetUserConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user-config [user]",
		Args:  cobra.ExactArgs(1),
		Short: "Get one user's dca overrides",
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.UserConfig(cmd.Context(), &types.QueryUserConfigRequest{User: args[0]})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
