package cli

import (
	"strconv"
	"strings"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/InjectiveLabs/injective-dca/injective-chain/modules/dca/types"
)

const (
	flagStartPurchase = "start-purchase"
	flagMaxHops       = "max-hops"
	flagMaxSpread     = "max-spread"
	flagInitialAsset  = "initial-asset"
	flagTargetAsset   = "target-asset"
	flagInterval      = "interval"
	flagDcaAmount     = "dca-amount"
	flagResetPurchase = "reset-purchase-time"
)

// GetTxCmd returns a root CLI command handler for dca transaction commands.
func GetTxCmd() *cobra.Command {
	txCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Dca transactions subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	txCmd.AddCommand(
		NewCreateDcaOrderTxCmd(),
		NewModifyDcaOrderTxCmd(),
		NewCancelDcaOrderTxCmd(),
		NewPerformDcaPurchaseTxCmd(),
		NewAddBotTipTxCmd(),
		NewWithdrawTipsTxCmd(),
		NewUpdateUserConfigTxCmd(),
	)
	return txCmd
}

func NewCreateDcaOrderTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-dca-order [initial-asset] [amount] [target-asset] [interval] [dca-amount] [flags]",
		Args:  cobra.ExactArgs(5),
		Short: "Create a recurring purchase order",
		Long: `Create a recurring purchase order. Assets are given as a native
denom or a cw20 contract address.

		Example:
		$ %s tx dca create-dca-order inj 1000000 peggy0xdAC17F958D2ee523a2206206994597C13D831ec7 86400 100000 --from=genesis --keyring-backend=file --yes
		`,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			initialInfo := parseAssetInfo(args[0])
			amount, ok := math.NewIntFromString(args[1])
			if !ok {
				return errors.Errorf("invalid amount %s", args[1])
			}
			targetInfo := parseAssetInfo(args[2])
			interval, err := strconv.ParseUint(args[3], 10, 64)
			if err != nil {
				return err
			}
			dcaAmount, ok := math.NewIntFromString(args[4])
			if !ok {
				return errors.Errorf("invalid dca amount %s", args[4])
			}

			startPurchase, err := cmd.Flags().GetUint64(flagStartPurchase)
			if err != nil {
				return err
			}
			maxHops, err := cmd.Flags().GetUint32(flagMaxHops)
			if err != nil {
				return err
			}
			maxSpread, err := parseSpreadFlag(cmd)
			if err != nil {
				return err
			}

			from := clientCtx.GetFromAddress()
			msg := &types.MsgCreateDcaOrder{
				Sender:        from.String(),
				InitialAsset:  types.Asset{Info: initialInfo, Amount: amount},
				TargetAsset:   targetInfo,
				Interval:      interval,
				DcaAmount:     dcaAmount,
				StartPurchase: startPurchase,
				MaxHops:       maxHops,
				MaxSpread:     maxSpread,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().Uint64(flagStartPurchase, 0, "unix time before which no purchase runs")
	cmd.Flags().Uint32(flagMaxHops, 0, "per-order hop cap override")
	cmd.Flags().String(flagMaxSpread, "", "per-order max spread override")

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

func NewModifyDcaOrderTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "modify-dca-order [id] [flags]",
		Args:  cobra.ExactArgs(1),
		Short: "Modify an existing dca order",
		Long: `Modify an existing dca order. Only the given flags change.

		Example:
		$ %s tx dca modify-dca-order 7 --initial-asset=inj --amount=2000000 --dca-amount=200000 --from=genesis --keyring-backend=file --yes
		`,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			id, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return err
			}

			msg := &types.MsgModifyDcaOrder{
				Sender: clientCtx.GetFromAddress().String(),
				Id:     id,
			}

			initialAssetStr, err := cmd.Flags().GetString(flagInitialAsset)
			if err != nil {
				return err
			}
			amountStr, err := cmd.Flags().GetString("amount")
			if err != nil {
				return err
			}
			if initialAssetStr != "" {
				amount, ok := math.NewIntFromString(amountStr)
				if !ok {
					return errors.Errorf("invalid amount %s", amountStr)
				}
				msg.NewInitialAsset = &types.Asset{Info: parseAssetInfo(initialAssetStr), Amount: amount}
			}

			targetAssetStr, err := cmd.Flags().GetString(flagTargetAsset)
			if err != nil {
				return err
			}
			if targetAssetStr != "" {
				target := parseAssetInfo(targetAssetStr)
				msg.NewTargetAsset = &target
			}

			if msg.NewInterval, err = cmd.Flags().GetUint64(flagInterval); err != nil {
				return err
			}

			dcaAmountStr, err := cmd.Flags().GetString(flagDcaAmount)
			if err != nil {
				return err
			}
			if dcaAmountStr != "" {
				dcaAmount, ok := math.NewIntFromString(dcaAmountStr)
				if !ok {
					return errors.Errorf("invalid dca amount %s", dcaAmountStr)
				}
				msg.NewDcaAmount = &dcaAmount
			}

			if msg.ShouldResetPurchaseTime, err = cmd.Flags().GetBool(flagResetPurchase); err != nil {
				return err
			}
			if msg.StartPurchase, err = cmd.Flags().GetUint64(flagStartPurchase); err != nil {
				return err
			}
			if msg.MaxHops, err = cmd.Flags().GetUint32(flagMaxHops); err != nil {
				return err
			}
			if msg.MaxSpread, err = parseSpreadFlag(cmd); err != nil {
				return err
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(flagInitialAsset, "", "new deposit asset")
	cmd.Flags().String("amount", "", "new deposit amount")
	cmd.Flags().String(flagTargetAsset, "", "new target asset")
	cmd.Flags().Uint64(flagInterval, 0, "new purchase interval in seconds")
	cmd.Flags().String(flagDcaAmount, "", "new per-purchase amount")
	cmd.Flags().Bool(flagResetPurchase, false, "reset the last purchase time")
	cmd.Flags().Uint64(flagStartPurchase, 0, "unix time before which no purchase runs")
	cmd.Flags().Uint32(flagMaxHops, 0, "per-order hop cap override")
	cmd.Flags().String(flagMaxSpread, "", "per-order max spread override")

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

func NewCancelDcaOrderTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cancel-dca-order [id] [flags]",
		Args:  cobra.ExactArgs(1),
		Short: "Cancel a dca order and refund the remaining deposit",
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			id, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return err
			}

			msg := &types.MsgCancelDcaOrder{
				Sender: clientCtx.GetFromAddress().String(),
				Id:     id,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

func NewPerformDcaPurchaseTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "perform-dca-purchase [id] [route] [flags]",
		Args:  cobra.ExactArgs(2),
		Short: "Execute one purchase of a dca order over a swap route",
		Long: `Execute one purchase of a dca order. The route is a comma-separated
asset path from the deposit asset to the target asset.

		Example:
		$ %s tx dca perform-dca-purchase 7 inj,peggy0xdAC17F958D2ee523a2206206994597C13D831ec7 --from=bot --keyring-backend=file --yes
		`,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			id, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return err
			}

			hops, err := parseRoute(args[1])
			if err != nil {
				return err
			}

			msg := &types.MsgPerformDcaPurchase{
				Sender: clientCtx.GetFromAddress().String(),
				Id:     id,
				Hops:   hops,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

func NewAddBotTipTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-bot-tip [asset] [amount] [flags]",
		Args:  cobra.ExactArgs(2),
		Short: "Deposit a tip jar balance paying purchase bots",
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			amount, ok := math.NewIntFromString(args[1])
			if !ok {
				return errors.Errorf("invalid amount %s", args[1])
			}

			msg := &types.MsgAddBotTip{
				Sender: clientCtx.GetFromAddress().String(),
				Asset:  types.Asset{Info: parseAssetInfo(args[0]), Amount: amount},
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

func NewWithdrawTipsTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw-tips [asset=amount,...] [flags]",
		Args:  cobra.MaximumNArgs(1),
		Short: "Withdraw tip jar balances, or everything when no asset is given",
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgWithdrawTips{
				Sender: clientCtx.GetFromAddress().String(),
			}

			if len(args) == 1 && args[0] != "" {
				for _, pair := range strings.Split(args[0], ",") {
					parts := strings.SplitN(pair, "=", 2)
					if len(parts) != 2 {
						return errors.Errorf("invalid tip %s, expected asset=amount", pair)
					}
					amount, ok := math.NewIntFromString(parts[1])
					if !ok {
						return errors.Errorf("invalid amount %s", parts[1])
					}
					msg.Tips = append(msg.Tips, types.Asset{Info: parseAssetInfo(parts[0]), Amount: amount})
				}
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

func NewUpdateUserConfigTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update-user-config [flags]",
		Args:  cobra.ExactArgs(0),
		Short: "Set or clear per-user dca overrides",
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			maxHops, err := cmd.Flags().GetUint32(flagMaxHops)
			if err != nil {
				return err
			}
			maxSpread, err := parseSpreadFlag(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgUpdateUserConfig{
				Sender:    clientCtx.GetFromAddress().String(),
				MaxHops:   maxHops,
				MaxSpread: maxSpread,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().Uint32(flagMaxHops, 0, "per-user hop cap override, 0 clears")
	cmd.Flags().String(flagMaxSpread, "", "per-user max spread override, empty clears")

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// parseAssetInfo reads an asset argument: a bech32 contract address selects a
// cw20 token, anything else is taken as a native denom.
func parseAssetInfo(arg string) types.AssetInfo {
	if _, err := sdk.AccAddressFromBech32(arg); err == nil {
		return types.AssetInfo{ContractAddress: arg}
	}
	return types.AssetInfo{Denom: arg}
}

// parseRoute turns a comma-separated asset path into the hop list between
// consecutive assets.
func parseRoute(arg string) ([]types.SwapOperation, error) {
	path := strings.Split(arg, ",")
	if len(path) < 2 {
		return nil, errors.Errorf("route %s needs at least two assets", arg)
	}

	hops := make([]types.SwapOperation, 0, len(path)-1)
	for i := 0; i < len(path)-1; i++ {
		hops = append(hops, types.SwapOperation{
			OfferAssetInfo: parseAssetInfo(path[i]),
			AskAssetInfo:   parseAssetInfo(path[i+1]),
		})
	}
	return hops, nil
}

func parseSpreadFlag(cmd *cobra.Command) (*math.LegacyDec, error) {
	spreadStr, err := cmd.Flags().GetString(flagMaxSpread)
	if err != nil {
		return nil, err
	}
	if spreadStr == "" {
		return nil, nil
	}
	spread, err := math.LegacyNewDecFromStr(spreadStr)
	if err != nil {
		return nil, err
	}
	return &spread, nil
}
