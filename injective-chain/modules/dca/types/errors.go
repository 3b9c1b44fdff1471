package types

// DONTCOVER

import (
	"cosmossdk.io/errors"
)

// x/dca module sentinel errors
var (
	ErrUnauthorized                   = errors.Register(ModuleName, 2, "unauthorized")
	ErrInvalidAsset                   = errors.Register(ModuleName, 3, "invalid asset")
	ErrInvalidZeroAmount              = errors.Register(ModuleName, 4, "amount cannot be zero")
	ErrInvalidTipAmount               = errors.Register(ModuleName, 5, "tip fee amount cannot be zero")
	ErrInvalidBotTipToken             = errors.Register(ModuleName, 6, "tip asset is not whitelisted")
	ErrInvalidTokenDeposit            = errors.Register(ModuleName, 7, "token allowance does not cover the deposit")
	ErrInvalidNativeTokenDeposit      = errors.Register(ModuleName, 8, "native deposit funding mismatch")
	ErrDuplicateAsset                 = errors.Register(ModuleName, 9, "initial and target asset are the same")
	ErrDepositTooSmall                = errors.Register(ModuleName, 10, "deposit is smaller than the per-purchase amount")
	ErrIndivisibleDeposit             = errors.Register(ModuleName, 11, "deposit is not divisible by the per-purchase amount")
	ErrStartTimeInPast                = errors.Register(ModuleName, 12, "start purchase time is in the past")
	ErrEmptyHopRoute                  = errors.Register(ModuleName, 13, "hop route cannot be empty")
	ErrMaxHopsAssertion               = errors.Register(ModuleName, 14, "hop route exceeds the maximum hop count")
	ErrInvalidHopRoute                = errors.Register(ModuleName, 15, "hop route contains a non-whitelisted asset")
	ErrInitialAssetAssertion          = errors.Register(ModuleName, 16, "first hop does not start from the order deposit asset")
	ErrTargetAssetAssertion           = errors.Register(ModuleName, 17, "last hop does not end in the order target asset")
	ErrNativeSwapNotSupported         = errors.Register(ModuleName, 18, "native pair swaps are not supported")
	ErrPurchaseTooEarly               = errors.Register(ModuleName, 19, "purchase interval has not elapsed yet")
	ErrInsufficientBalance            = errors.Register(ModuleName, 20, "order deposit cannot cover the purchase")
	ErrInsufficientTipBalance         = errors.Register(ModuleName, 21, "no tip jar covers the bot fee")
	ErrInsufficientTipWithdrawBalance = errors.Register(ModuleName, 22, "tip jar balance is smaller than the requested withdrawal")
	ErrNonExistentTipJar              = errors.Register(ModuleName, 23, "no tip jar exists for the asset")
	ErrNonExistentDca                 = errors.Register(ModuleName, 24, "dca order does not exist")
	ErrInvalidGenesis                 = errors.Register(ModuleName, 25, "invalid genesis")
)
