// dca-store-dump reads a node's application.db offline and dumps the dca
// module store in a human-readable form. This tool is useful for inspecting
// the order book, tip jars and user overrides of a halted or snapshotted node
// without starting the daemon.
//
// The tool opens the local LevelDB database directly and iterates through all
// keys of the dca store's IAVL tree at the given height. Keys are grouped by
// their first byte (prefix) and each record is decoded with the module codec.
//
// NB: The local node must be stopped before running this tool to avoid
// database lock conflicts.
//
// # Flags
//
//	-db       Path to the directory containing application.db (required)
//	-height   Block height to read, 0 for the latest committed version
//	-prefix   Dump a single store prefix (hex byte, e.g. 0x03), empty for all
//
// # Example
//
//	dca-store-dump -db /data -height 144213864 -prefix 0x03
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/iavl"

	"cosmossdk.io/store/wrapper"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/InjectiveLabs/injective-dca/injective-chain/modules/dca/types"
)

// dcaPrefixNames contains the key prefixes of the dca module store.
var dcaPrefixNames = map[byte]string{
	0x01: "Params",
	0x02: "OrderIDSequence",
	0x03: "Orders",
	0x04: "OrdersByOwner",
	0x05: "OrdersByOwnerAsset",
	0x06: "TipJars",
	0x07: "UserSettings",
}

func main() {
	var (
		dbPath    string
		height    int64
		prefixArg string
	)

	flag.StringVar(&dbPath, "db", "", "Path to local application.db directory (required)")
	flag.Int64Var(&height, "height", 0, "Block height to read, 0 for latest")
	flag.StringVar(&prefixArg, "prefix", "", "Dump a single store prefix (hex byte), empty for all")
	flag.Parse()

	if dbPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -db is required")
		fmt.Fprintln(os.Stderr, "Usage: dca-store-dump -db <path> [-height <height>] [-prefix <0xNN>]")
		os.Exit(1)
	}

	var onlyPrefix byte
	var filtered bool
	if prefixArg != "" {
		p, err := strconv.ParseUint(strings.TrimPrefix(prefixArg, "0x"), 16, 8)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to parse prefix %q: %v\n", prefixArg, err)
			os.Exit(1)
		}
		onlyPrefix = byte(p)
		filtered = true
	}

	fmt.Printf("Opening database: %s\n", dbPath)

	db, err := dbm.NewGoLevelDB("application", dbPath, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	prefixDB := dbm.NewPrefixDB(db, []byte("s/k:"+types.StoreKey+"/"))
	wrappedDB := wrapper.NewDBWrapper(prefixDB)

	tree := iavl.NewMutableTree(wrappedDB, 10000, false, iavl.NewNopLogger())
	version, err := tree.LoadVersion(height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load version %d: %v\n", height, err)
		os.Exit(1)
	}
	fmt.Printf("Loaded IAVL tree at version: %d\n", version)

	immutable, err := tree.GetImmutable(version)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to get immutable tree: %v\n", err)
		os.Exit(1)
	}

	cdc := codec.NewProtoCodec(codectypes.NewInterfaceRegistry())

	grouped := make(map[byte][][2][]byte)
	keyCount := 0

	immutable.Iterate(func(key, value []byte) bool {
		if len(key) == 0 {
			return false
		}
		p := key[0]
		if filtered && p != onlyPrefix {
			return false
		}
		keyCopy := make([]byte, len(key))
		valueCopy := make([]byte, len(value))
		copy(keyCopy, key)
		copy(valueCopy, value)
		grouped[p] = append(grouped[p], [2][]byte{keyCopy, valueCopy})
		keyCount++
		return false
	})

	fmt.Printf("Total keys: %d across %d prefixes\n", keyCount, len(grouped))

	sortedPrefixes := make([]byte, 0, len(grouped))
	for p := range grouped {
		sortedPrefixes = append(sortedPrefixes, p)
	}
	sort.Slice(sortedPrefixes, func(i, j int) bool { return sortedPrefixes[i] < sortedPrefixes[j] })

	for _, p := range sortedPrefixes {
		entries := grouped[p]
		name := dcaPrefixNames[p]
		if name == "" {
			name = "Unknown"
		}

		fmt.Printf("\n%s\n", strings.Repeat("=", 80))
		fmt.Printf("Prefix 0x%02x (%s) - %d keys\n", p, name, len(entries))
		fmt.Printf("%s\n", strings.Repeat("=", 80))

		for _, entry := range entries {
			dumpEntry(cdc, p, entry[0], entry[1])
		}
	}
}

func dumpEntry(cdc codec.BinaryCodec, prefix byte, key, value []byte) {
	switch prefix {
	case 0x01:
		var params types.Params
		if err := cdc.Unmarshal(value, &params); err != nil {
			dumpRaw(key, value)
			return
		}
		fmt.Printf("%s\n", params.String())
	case 0x02:
		fmt.Printf("next order id: %d\n", sdk.BigEndianToUint64(value))
	case 0x03:
		var order types.DcaOrder
		if err := cdc.Unmarshal(value, &order); err != nil {
			dumpRaw(key, value)
			return
		}
		fmt.Printf("order %d: %s\n", sdk.BigEndianToUint64(key[1:]), order.String())
	case 0x04, 0x05:
		// index entries carry the order id both in the key tail and the value
		fmt.Printf("key=%s -> order id %d\n", hex.EncodeToString(key), sdk.BigEndianToUint64(value))
	case 0x06:
		var jar types.Asset
		if err := cdc.Unmarshal(value, &jar); err != nil {
			dumpRaw(key, value)
			return
		}
		owner, assetID := splitTipJarKey(key[1:])
		fmt.Printf("owner %s asset %s: %s\n", owner, assetID, jar.Amount.String())
	case 0x07:
		var settings types.UserSettings
		if err := cdc.Unmarshal(value, &settings); err != nil {
			dumpRaw(key, value)
			return
		}
		fmt.Printf("owner %s: %s\n", sdk.AccAddress(key[1:]).String(), settings.String())
	default:
		dumpRaw(key, value)
	}
}

// splitTipJarKey splits a tip jar store key (sans prefix byte) into the
// length-prefixed owner address and the trailing asset id.
func splitTipJarKey(key []byte) (string, string) {
	if len(key) < 2 || int(key[0])+1 > len(key) {
		return hex.EncodeToString(key), ""
	}

	ownerLen := int(key[0])
	owner := sdk.AccAddress(key[1 : 1+ownerLen])
	assetID := string(key[1+ownerLen:])

	return owner.String(), assetID
}

func dumpRaw(key, value []byte) {
	fmt.Printf("key=%s value=%s\n", hex.EncodeToString(key), hex.EncodeToString(value))
}
