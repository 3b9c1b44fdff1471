package keeper

import (
	"encoding/json"

	"cosmossdk.io/errors"
	"cosmossdk.io/math"
	"github.com/InjectiveLabs/metrics"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/InjectiveLabs/injective-dca/injective-chain/modules/dca/types"
)

// wasmAssetInfo is the astroport JSON shape of an asset identity.
type wasmAssetInfo struct {
	Token       *wasmToken       `json:"token,omitempty"`
	NativeToken *wasmNativeToken `json:"native_token,omitempty"`
}

type wasmToken struct {
	ContractAddr string `json:"contract_addr"`
}

type wasmNativeToken struct {
	Denom string `json:"denom"`
}

func newWasmAssetInfo(info types.AssetInfo) wasmAssetInfo {
	if info.IsNative() {
		return wasmAssetInfo{NativeToken: &wasmNativeToken{Denom: info.Denom}}
	}
	return wasmAssetInfo{Token: &wasmToken{ContractAddr: info.ContractAddress}}
}

// QueryTokenAllowance returns the CW20 allowance the owner has granted to the
// dca module account on the token contract.
func (k *Keeper) QueryTokenAllowance(ctx sdk.Context, tokenContract, owner string) (math.Int, error) {
	ctx, doneFn := metrics.ReportFuncCallAndTimingSdkCtx(ctx, k.svcTags)
	defer doneFn()

	type allowanceQuery struct {
		Owner   string `json:"owner"`
		Spender string `json:"spender"`
	}
	queryBz, err := json.Marshal(struct {
		Allowance allowanceQuery `json:"allowance"`
	}{
		Allowance: allowanceQuery{
			Owner:   owner,
			Spender: k.moduleAddress.String(),
		},
	})
	if err != nil {
		return math.ZeroInt(), err
	}

	bz, err := k.wasmViewer.QuerySmart(ctx, sdk.MustAccAddressFromBech32(tokenContract), queryBz)
	if err != nil {
		metrics.ReportFuncError(k.svcTags)
		return math.ZeroInt(), errors.Wrapf(err, "allowance query on %s failed", tokenContract)
	}

	var result struct {
		Allowance math.Int `json:"allowance"`
	}
	if err := json.Unmarshal(bz, &result); err != nil {
		return math.ZeroInt(), err
	}

	return result.Allowance, nil
}

// QueryFactoryOwner returns the owner recorded in the factory contract's
// config. Config updates are gated on it.
func (k *Keeper) QueryFactoryOwner(ctx sdk.Context) (string, error) {
	ctx, doneFn := metrics.ReportFuncCallAndTimingSdkCtx(ctx, k.svcTags)
	defer doneFn()

	params := k.GetParams(ctx)
	if params.FactoryAddress == "" {
		return "", errors.Wrap(types.ErrUnauthorized, "no factory contract configured")
	}

	queryBz, err := json.Marshal(struct {
		Config struct{} `json:"config"`
	}{})
	if err != nil {
		return "", err
	}

	bz, err := k.wasmViewer.QuerySmart(ctx, sdk.MustAccAddressFromBech32(params.FactoryAddress), queryBz)
	if err != nil {
		metrics.ReportFuncError(k.svcTags)
		return "", errors.Wrap(err, "factory config query failed")
	}

	var result struct {
		Owner string `json:"owner"`
	}
	if err := json.Unmarshal(bz, &result); err != nil {
		return "", err
	}

	return result.Owner, nil
}

// ExecuteTokenTransfer moves CW20 tokens held by the dca module account to
// the recipient.
func (k *Keeper) ExecuteTokenTransfer(ctx sdk.Context, tokenContract string, recipient sdk.AccAddress, amount math.Int) error {
	ctx, doneFn := metrics.ReportFuncCallAndTimingSdkCtx(ctx, k.svcTags)
	defer doneFn()

	type transferMsg struct {
		Recipient string   `json:"recipient"`
		Amount    math.Int `json:"amount"`
	}
	execBz, err := json.Marshal(struct {
		Transfer transferMsg `json:"transfer"`
	}{
		Transfer: transferMsg{Recipient: recipient.String(), Amount: amount},
	})
	if err != nil {
		return err
	}

	_, err = k.wasmExecutor.Execute(ctx, sdk.MustAccAddressFromBech32(tokenContract), k.moduleAddress, execBz, sdk.Coins{})
	if err != nil {
		metrics.ReportFuncError(k.svcTags)
		return errors.Wrapf(err, "cw20 transfer on %s failed", tokenContract)
	}
	return nil
}

// ExecuteTokenTransferFrom draws CW20 tokens from the owner's allowance to
// the recipient. The dca module account is the approved spender.
func (k *Keeper) ExecuteTokenTransferFrom(ctx sdk.Context, tokenContract string, owner, recipient sdk.AccAddress, amount math.Int) error {
	ctx, doneFn := metrics.ReportFuncCallAndTimingSdkCtx(ctx, k.svcTags)
	defer doneFn()

	type transferFromMsg struct {
		Owner     string   `json:"owner"`
		Recipient string   `json:"recipient"`
		Amount    math.Int `json:"amount"`
	}
	execBz, err := json.Marshal(struct {
		TransferFrom transferFromMsg `json:"transfer_from"`
	}{
		TransferFrom: transferFromMsg{
			Owner:     owner.String(),
			Recipient: recipient.String(),
			Amount:    amount,
		},
	})
	if err != nil {
		return err
	}

	_, err = k.wasmExecutor.Execute(ctx, sdk.MustAccAddressFromBech32(tokenContract), k.moduleAddress, execBz, sdk.Coins{})
	if err != nil {
		metrics.ReportFuncError(k.svcTags)
		return errors.Wrapf(err, "cw20 transfer_from on %s failed", tokenContract)
	}
	return nil
}

// ExecuteRouterSwap submits the hop route to the router contract with the
// order owner as the final recipient. Native offer funds are attached from
// the module escrow.
func (k *Keeper) ExecuteRouterSwap(
	ctx sdk.Context,
	hops []types.SwapOperation,
	maxSpread math.LegacyDec,
	recipient sdk.AccAddress,
	funds sdk.Coins,
) error {
	ctx, doneFn := metrics.ReportFuncCallAndTimingSdkCtx(ctx, k.svcTags)
	defer doneFn()

	params := k.GetParams(ctx)
	if params.RouterAddress == "" {
		return errors.Wrap(types.ErrInvalidHopRoute, "no router contract configured")
	}

	type astroSwap struct {
		OfferAssetInfo wasmAssetInfo `json:"offer_asset_info"`
		AskAssetInfo   wasmAssetInfo `json:"ask_asset_info"`
	}
	type swapOperation struct {
		AstroSwap astroSwap `json:"astro_swap"`
	}

	operations := make([]swapOperation, len(hops))
	for i := range hops {
		operations[i] = swapOperation{
			AstroSwap: astroSwap{
				OfferAssetInfo: newWasmAssetInfo(hops[i].OfferAssetInfo),
				AskAssetInfo:   newWasmAssetInfo(hops[i].AskAssetInfo),
			},
		}
	}

	type executeSwapOperations struct {
		Operations     []swapOperation `json:"operations"`
		MinimumReceive *math.Int       `json:"minimum_receive"`
		To             string          `json:"to"`
		MaxSpread      math.LegacyDec  `json:"max_spread"`
	}
	execBz, err := json.Marshal(struct {
		ExecuteSwapOperations executeSwapOperations `json:"execute_swap_operations"`
	}{
		ExecuteSwapOperations: executeSwapOperations{
			Operations: operations,
			To:         recipient.String(),
			MaxSpread:  maxSpread,
		},
	})
	if err != nil {
		return err
	}

	_, err = k.wasmExecutor.Execute(ctx, sdk.MustAccAddressFromBech32(params.RouterAddress), k.moduleAddress, execBz, funds)
	if err != nil {
		metrics.ReportFuncError(k.svcTags)
		return errors.Wrap(err, "router swap execution failed")
	}
	return nil
}
