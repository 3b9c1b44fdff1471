package main

import (
	"context"
	"strconv"
	"time"

	rpchttp "github.com/cometbft/cometbft/rpc/client/http"
	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/crypto/keyring"
	"github.com/cosmos/cosmos-sdk/std"
	cosmostypes "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	cli "github.com/jawher/mow.cli"
	"github.com/xlab/closer"
	log "github.com/xlab/suplog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	authtx "github.com/cosmos/cosmos-sdk/x/auth/tx"

	"github.com/InjectiveLabs/injective-dca/dcabot/orchestrator"
	"github.com/InjectiveLabs/injective-dca/dcabot/orchestrator/cosmos"
	"github.com/InjectiveLabs/injective-dca/dcabot/orchestrator/pricefeed"
	dcatypes "github.com/InjectiveLabs/injective-dca/injective-chain/modules/dca/types"
)

// orchestratorCmd runs the scanner and executor loops against a single
// Injective node, broadcasting purchases from the configured bot key.
//
// $ dcabot orchestrator --cosmos-from=bot
func orchestratorCmd(cmd *cli.Cmd) {
	var (
		// Cosmos params
		cosmosChainID   *string
		cosmosGRPC      *string
		tendermintRPC   *string
		cosmosGasPrices *string

		// Cosmos key management
		cosmosKeyringDir     *string
		cosmosKeyringAppName *string
		cosmosKeyringBackend *string
		cosmosKeyFrom        *string
		cosmosKeyPassphrase  *string

		// Bot config
		loopDuration     *string
		minTipUSD        *string
		maxOrdersPerRun  *int
		healthCheckPort  *int
		coingeckoAPI     *string
		coingeckoCoinIDs *[]string
	)

	initCosmosOptions(
		cmd,
		&cosmosChainID,
		&cosmosGRPC,
		&tendermintRPC,
		&cosmosGasPrices,
	)

	initCosmosKeyOptions(
		cmd,
		&cosmosKeyringDir,
		&cosmosKeyringAppName,
		&cosmosKeyringBackend,
		&cosmosKeyFrom,
		&cosmosKeyPassphrase,
	)

	initBotOptions(
		cmd,
		&loopDuration,
		&minTipUSD,
		&maxOrdersPerRun,
		&healthCheckPort,
		&coingeckoAPI,
		&coingeckoCoinIDs,
	)

	cmd.Action = func() {
		// ensure a clean exit
		defer closer.Close()

		registry := codectypes.NewInterfaceRegistry()
		std.RegisterInterfaces(registry)
		authtypes.RegisterInterfaces(registry)
		dcatypes.RegisterInterfaces(registry)
		cdc := codec.NewProtoCodec(registry)
		txConfig := authtx.NewTxConfig(cdc, authtx.DefaultSignModes)

		kr, err := keyring.New(
			*cosmosKeyringAppName,
			*cosmosKeyringBackend,
			*cosmosKeyringDir,
			newPassReader(*cosmosKeyPassphrase),
			cdc,
		)
		orShutdown(err)

		fromName, fromAddr, err := resolveFrom(kr, *cosmosKeyFrom)
		orShutdown(err)

		log.WithFields(log.Fields{
			"addr": fromAddr.String(),
			"key":  fromName,
		}).Infoln("using Cosmos bot account")

		rpcClient, err := rpchttp.New(*tendermintRPC)
		orShutdown(err)

		grpcConn, err := grpc.NewClient(
			dialAddr(*cosmosGRPC),
			grpc.WithTransportCredentials(insecure.NewCredentials()),
		)
		orShutdown(err)
		closer.Bind(func() { _ = grpcConn.Close() })

		clientCtx := client.Context{}.
			WithChainID(*cosmosChainID).
			WithCodec(cdc).
			WithInterfaceRegistry(registry).
			WithTxConfig(txConfig).
			WithKeyring(kr).
			WithFromName(fromName).
			WithFromAddress(fromAddr).
			WithAccountRetriever(authtypes.AccountRetriever{}).
			WithBroadcastMode(flags.BroadcastSync).
			WithClient(rpcClient).
			WithSkipConfirmation(true)

		txFactory := tx.Factory{}.
			WithChainID(*cosmosChainID).
			WithKeybase(kr).
			WithTxConfig(txConfig).
			WithAccountRetriever(clientCtx.AccountRetriever).
			WithGasAdjustment(1.5).
			WithGasPrices(*cosmosGasPrices).
			WithSimulateAndExecute(true)

		net := cosmos.NewNetwork(
			grpcConn,
			*tendermintRPC,
			fromAddr,
			cosmos.NewBroadcastClient(clientCtx, txFactory),
		)

		minTip, err := strconv.ParseFloat(*minTipUSD, 64)
		orShutdown(err)

		priceFeed := pricefeed.NewCoingeckoPriceFeed(10*time.Minute, &pricefeed.Config{
			BaseURL: *coingeckoAPI,
			CoinIDs: parseCoinIDMapping(*coingeckoCoinIDs),
		})

		bot, err := orchestrator.NewOrchestrator(
			net,
			priceFeed,
			orchestrator.Config{
				CosmosAddr:      fromAddr,
				LoopDuration:    duration(*loopDuration, time.Minute),
				MinTipUSD:       minTip,
				MaxOrdersPerRun: *maxOrdersPerRun,
				HealthCheckPort: uint64(*healthCheckPort),
			},
		)
		orShutdown(err)

		ctx, cancelFn := context.WithCancel(context.Background())
		closer.Bind(cancelFn)

		go func() {
			if err := bot.RunHealthCheckServer(uint64(*healthCheckPort)); err != nil {
				log.WithError(err).Errorln("health check server failed")
			}
		}()

		go func() {
			if err := bot.Run(ctx); err != nil {
				log.Errorln(err)

				// signal there that the app failed
				closer.Exit(1)
			}
		}()

		closer.Hold()
	}
}

// resolveFrom locates the bot key in the keyring either by bech32 address or
// by key name.
func resolveFrom(kr keyring.Keyring, from string) (string, cosmostypes.AccAddress, error) {
	if addr, err := cosmostypes.AccAddressFromBech32(from); err == nil {
		record, err := kr.KeyByAddress(addr)
		if err != nil {
			return "", nil, err
		}
		return record.Name, addr, nil
	}

	record, err := kr.Key(from)
	if err != nil {
		return "", nil, err
	}

	addr, err := record.GetAddress()
	if err != nil {
		return "", nil, err
	}

	return record.Name, addr, nil
}
