package main

import (
	cli "github.com/jawher/mow.cli"
)

// initGlobalOptions defines the application options shared by all commands.
func initGlobalOptions(
	envName **string,
	appLogLevel **string,
	svcWaitTimeout **string,
) {
	*envName = app.String(cli.StringOpt{
		Name:   "e env",
		Desc:   "The environment name this app runs in. Used for metrics and error reporting.",
		EnvVar: "DCABOT_ENV",
		Value:  "local",
	})

	*appLogLevel = app.String(cli.StringOpt{
		Name:   "l log-level",
		Desc:   "Available levels: error, warn, info, debug.",
		EnvVar: "DCABOT_LOG_LEVEL",
		Value:  "info",
	})

	*svcWaitTimeout = app.String(cli.StringOpt{
		Name:   "svc-wait-timeout",
		Desc:   "Standard wait timeout for external services (e.g. Cosmos daemon GRPC connection)",
		EnvVar: "DCABOT_SERVICE_WAIT_TIMEOUT",
		Value:  "1m",
	})
}

func initCosmosOptions(
	cmd *cli.Cmd,
	cosmosChainID **string,
	cosmosGRPC **string,
	tendermintRPC **string,
	cosmosGasPrices **string,
) {
	*cosmosChainID = cmd.String(cli.StringOpt{
		Name:   "cosmos-chain-id",
		Desc:   "Specify Chain ID of the Cosmos network.",
		EnvVar: "DCABOT_COSMOS_CHAIN_ID",
		Value:  "injective-1",
	})

	*cosmosGRPC = cmd.String(cli.StringOpt{
		Name:   "cosmos-grpc",
		Desc:   "Cosmos GRPC querying endpoint",
		EnvVar: "DCABOT_COSMOS_GRPC",
		Value:  "tcp://localhost:9900",
	})

	*tendermintRPC = cmd.String(cli.StringOpt{
		Name:   "tendermint-rpc",
		Desc:   "Tendermint RPC endpoint",
		EnvVar: "DCABOT_TENDERMINT_RPC",
		Value:  "http://localhost:26657",
	})

	*cosmosGasPrices = cmd.String(cli.StringOpt{
		Name:   "cosmos-gas-prices",
		Desc:   "Specify Cosmos chain transaction fees as DecCoins gas prices",
		EnvVar: "DCABOT_COSMOS_GAS_PRICES",
		Value:  "160000000inj",
	})
}

func initCosmosKeyOptions(
	cmd *cli.Cmd,
	cosmosKeyringDir **string,
	cosmosKeyringAppName **string,
	cosmosKeyringBackend **string,
	cosmosKeyFrom **string,
	cosmosKeyPassphrase **string,
) {
	*cosmosKeyringBackend = cmd.String(cli.StringOpt{
		Name:   "cosmos-keyring",
		Desc:   "Specify Cosmos keyring backend (os|file|kwallet|pass|test)",
		EnvVar: "DCABOT_COSMOS_KEYRING",
		Value:  "file",
	})

	*cosmosKeyringDir = cmd.String(cli.StringOpt{
		Name:   "cosmos-keyring-dir",
		Desc:   "Specify Cosmos keyring dir, if using file keyring.",
		EnvVar: "DCABOT_COSMOS_KEYRING_DIR",
		Value:  "",
	})

	*cosmosKeyringAppName = cmd.String(cli.StringOpt{
		Name:   "cosmos-keyring-app",
		Desc:   "Specify Cosmos keyring app name.",
		EnvVar: "DCABOT_COSMOS_KEYRING_APP",
		Value:  "dcabot",
	})

	*cosmosKeyFrom = cmd.String(cli.StringOpt{
		Name:   "cosmos-from",
		Desc:   "Specify the Cosmos bot key name or address.",
		EnvVar: "DCABOT_COSMOS_FROM",
	})

	*cosmosKeyPassphrase = cmd.String(cli.StringOpt{
		Name:   "cosmos-from-passphrase",
		Desc:   "Specify keyring passphrase, otherwise Stdin will be used.",
		EnvVar: "DCABOT_COSMOS_FROM_PASSPHRASE",
	})
}

func initBotOptions(
	cmd *cli.Cmd,
	loopDuration **string,
	minTipUSD **string,
	maxOrdersPerRun **int,
	healthCheckPort **int,
	coingeckoAPI **string,
	coingeckoCoinIDs **[]string,
) {
	*loopDuration = cmd.String(cli.StringOpt{
		Name:   "loop-duration",
		Desc:   "Duration between two consecutive order book scans.",
		EnvVar: "DCABOT_LOOP_DURATION",
		Value:  "1m",
	})

	*minTipUSD = cmd.String(cli.StringOpt{
		Name:   "min-tip-usd",
		Desc:   "If set, purchases whose tip is worth less USD are skipped.",
		EnvVar: "DCABOT_MIN_TIP_USD",
		Value:  "0",
	})

	*maxOrdersPerRun = cmd.Int(cli.IntOpt{
		Name:   "max-orders-per-run",
		Desc:   "Cap on the number of orders inspected per scan.",
		EnvVar: "DCABOT_MAX_ORDERS_PER_RUN",
		Value:  200,
	})

	*healthCheckPort = cmd.Int(cli.IntOpt{
		Name:   "health-check-port",
		Desc:   "Port for the HTTP health check endpoint.",
		EnvVar: "DCABOT_HEALTH_CHECK_PORT",
		Value:  6500,
	})

	*coingeckoAPI = cmd.String(cli.StringOpt{
		Name:   "coingecko-api",
		Desc:   "Specify HTTP endpoint for the Coingecko price feed.",
		EnvVar: "DCABOT_COINGECKO_API",
		Value:  "https://api.coingecko.com/api/v3",
	})

	*coingeckoCoinIDs = cmd.Strings(cli.StringsOpt{
		Name:   "coingecko-coin-id",
		Desc:   "Maps a DCA asset to a Coingecko coin id as asset:coin-id. Repeatable.",
		EnvVar: "DCABOT_COINGECKO_COIN_IDS",
	})
}
