package pricefeed

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/InjectiveLabs/coretracer"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	log "github.com/xlab/suplog"

	"github.com/InjectiveLabs/injective-dca/injective-chain/modules/dca/types"
)

const (
	maxRespTime        = 15 * time.Second
	maxRespHeadersTime = 15 * time.Second
	maxRespBytes       = 10 * 1024 * 1024
)

var zeroPrice = float64(0)

type Config struct {
	BaseURL string

	// Maps DCA asset identities (bank denoms and CW20 contract addresses) to
	// Coingecko coin ids. Assets missing from the map cannot be priced.
	CoinIDs map[string]string
}

type CoingeckoPriceFeed struct {
	client *http.Client
	config *Config

	interval time.Duration

	logger  log.Logger
	svcTags coretracer.Tags
}

// NewCoingeckoPriceFeed returns a price puller for DCA assets. Prices are
// pulled per asset from the simple price endpoint, keyed by the coin id the
// config maps the asset to.
func NewCoingeckoPriceFeed(interval time.Duration, endpointConfig *Config) *CoingeckoPriceFeed {
	return &CoingeckoPriceFeed{
		client: &http.Client{
			Transport: &http.Transport{
				ResponseHeaderTimeout: maxRespHeadersTime,
			},
			Timeout: maxRespTime,
		},
		config: checkCoingeckoConfig(endpointConfig),

		interval: interval,

		logger: log.WithFields(log.Fields{
			"svc":      "dca_pricefeed",
			"provider": "coingeckgo",
		}),
		svcTags: coretracer.NewTag("pricefeed_provider", "coingeckgo"),
	}
}

func urlJoin(baseURL string, segments ...string) string {
	u, err := url.Parse(baseURL)
	if err != nil {
		panic(err)
	}
	u.Path = path.Join(append([]string{u.Path}, segments...)...)
	return u.String()

}

func (cp *CoingeckoPriceFeed) QueryUSDPrice(ctx context.Context, asset types.AssetInfo) (float64, error) {
	defer coretracer.Trace(&ctx, cp.svcTags)()

	coinID, ok := cp.config.CoinIDs[asset.ID()]
	if !ok {
		err := errors.Errorf("no coin id mapped for asset %s", asset.ID())
		coretracer.TraceError(ctx, err)
		return zeroPrice, err
	}

	u, err := url.ParseRequestURI(urlJoin(cp.config.BaseURL, "simple", "price"))
	if err != nil {
		coretracer.TraceError(ctx, err)
		cp.logger.WithError(err).Fatalln("failed to parse URL")
	}

	q := make(url.Values)

	q.Set("ids", strings.ToLower(coinID))
	q.Set("vs_currencies", "usd")
	u.RawQuery = q.Encode()

	reqURL := u.String()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		coretracer.TraceError(ctx, err)
		cp.logger.WithError(err).Fatalln("failed to create HTTP request")
		return zeroPrice, err
	}

	resp, err := cp.client.Do(req)
	if err != nil {
		coretracer.TraceError(ctx, err)
		return zeroPrice, errors.Wrapf(err, "failed to fetch price from %s", reqURL)
	}

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxRespBytes))
	if err != nil {
		_ = resp.Body.Close()
		coretracer.TraceError(ctx, err)
		return zeroPrice, errors.Wrapf(err, "failed to read response body from %s", reqURL)
	}

	_ = resp.Body.Close()

	var f interface{}
	if err := json.Unmarshal(respBody, &f); err != nil {
		coretracer.TraceError(ctx, err)
		return zeroPrice, err
	}

	m, ok := f.(map[string]interface{})
	if !ok {
		err = errors.Errorf("failed to cast response type: map[string]interface{}")
		coretracer.TraceError(ctx, err)
		return zeroPrice, err
	}

	v := m[strings.ToLower(coinID)]
	if v == nil {
		err = errors.Errorf("failed to get coin id")
		coretracer.TraceError(ctx, err)
		return zeroPrice, err
	}

	n, ok := v.(map[string]interface{})
	if !ok {
		err = errors.Errorf("failed to cast value type: map[string]interface{}")
		coretracer.TraceError(ctx, err)
		return zeroPrice, err
	}

	tokenPriceInUSD := n["usd"].(float64)
	return tokenPriceInUSD, nil
}

func checkCoingeckoConfig(cfg *Config) *Config {
	if cfg == nil {
		cfg = &Config{}
	}

	if len(cfg.BaseURL) == 0 {
		cfg.BaseURL = "https://api.coingecko.com/api/v3"
	}

	if cfg.CoinIDs == nil {
		cfg.CoinIDs = map[string]string{}
	}

	return cfg
}

// CheckTipThreshold reports whether a tip of totalTip units of asset is worth
// at least minTipUSD. Amounts are interpreted with 18 decimals.
func (cp *CoingeckoPriceFeed) CheckTipThreshold(
	ctx context.Context,
	asset types.AssetInfo,
	totalTip sdkmath.Int,
	minTipUSD float64,
) bool {
	defer coretracer.Trace(&ctx, cp.svcTags)()

	tokenPriceInUSD, err := cp.QueryUSDPrice(ctx, asset)
	if err != nil {
		coretracer.TraceError(ctx, err)
		return false
	}

	tokenPriceInUSDDec := decimal.NewFromFloat(tokenPriceInUSD)
	totalTipInUSDDec := decimal.NewFromBigInt(totalTip.BigInt(), -18).Mul(tokenPriceInUSDDec)
	minTipUSDDec := decimal.NewFromFloat(minTipUSD)

	if totalTipInUSDDec.GreaterThan(minTipUSDDec) {
		return true
	}
	return false
}
