package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	cryptocodec "github.com/cosmos/cosmos-sdk/crypto/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/msgservice"
)

// RegisterLegacyAminoCodec registers the necessary x/dca interfaces and
// concrete types on the provided LegacyAmino codec.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgCreateDcaOrder{}, "dca/MsgCreateDcaOrder", nil)
	cdc.RegisterConcrete(&MsgModifyDcaOrder{}, "dca/MsgModifyDcaOrder", nil)
	cdc.RegisterConcrete(&MsgCancelDcaOrder{}, "dca/MsgCancelDcaOrder", nil)
	cdc.RegisterConcrete(&MsgPerformDcaPurchase{}, "dca/MsgPerformDcaPurchase", nil)
	cdc.RegisterConcrete(&MsgAddBotTip{}, "dca/MsgAddBotTip", nil)
	cdc.RegisterConcrete(&MsgWithdrawTips{}, "dca/MsgWithdrawTips", nil)
	cdc.RegisterConcrete(&MsgUpdateConfig{}, "dca/MsgUpdateConfig", nil)
	cdc.RegisterConcrete(&MsgUpdateUserConfig{}, "dca/MsgUpdateUserConfig", nil)
}

// RegisterInterfaces registers the x/dca message implementations with the
// interface registry.
func RegisterInterfaces(registry codectypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgCreateDcaOrder{},
		&MsgModifyDcaOrder{},
		&MsgCancelDcaOrder{},
		&MsgPerformDcaPurchase{},
		&MsgAddBotTip{},
		&MsgWithdrawTips{},
		&MsgUpdateConfig{},
		&MsgUpdateUserConfig{},
	)

	msgservice.RegisterMsgServiceDesc(registry, &_Msg_serviceDesc)
}

// ModuleCdc references the global x/dca module codec.
var ModuleCdc = codec.NewLegacyAmino()

func init() {
	RegisterLegacyAminoCodec(ModuleCdc)
	cryptocodec.RegisterCrypto(ModuleCdc)
	ModuleCdc.Seal()
}
