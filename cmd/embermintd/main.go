// embermintd drives the free-mint token contract against a local store.
//
// It stands in for the ledger-execution host: calls are fed in by hand
// (raw block and transaction hex), evaluated one at a time, and committed
// atomically to the database.
package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/embermint/embermint/config"
	"github.com/embermint/embermint/internal/contract"
	"github.com/embermint/embermint/internal/log"
	"github.com/embermint/embermint/internal/runtime"
	"github.com/embermint/embermint/internal/storage"
	"github.com/embermint/embermint/pkg/types"
)

// contractNamespace is the storage partition the contract owns.
const contractNamespace = "contract/freemint/"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cfg := config.Default()

	// Scan for global flags before the subcommand.
	args := os.Args[1:]
	for len(args) > 0 {
		switch {
		case args[0] == "--datadir" && len(args) > 1:
			cfg.DataDir = args[1]
			args = args[2:]
		case strings.HasPrefix(args[0], "--datadir="):
			cfg.DataDir = args[0][len("--datadir="):]
			args = args[1:]
		case args[0] == "--log-level" && len(args) > 1:
			cfg.Log.Level = args[1]
			args = args[2:]
		case strings.HasPrefix(args[0], "--log-level="):
			cfg.Log.Level = args[0][len("--log-level="):]
			args = args[1:]
		case args[0] == "--log-json":
			cfg.Log.JSON = true
			args = args[1:]
		default:
			goto dispatch
		}
	}

dispatch:
	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	if err := log.Init(cfg.Log.Level, cfg.Log.JSON, cfg.Log.File); err != nil {
		fatalf("init logging: %v", err)
	}

	db, err := storage.NewBadger(filepath.Join(cfg.DataDir, "state"))
	if err != nil {
		fatalf("%v", err)
	}
	defer db.Close()

	host := runtime.NewHost(
		storage.NewPrefixDB(db, []byte(contractNamespace)),
		contract.New(),
	)

	switch args[0] {
	case "init":
		cmdInit(host, args[1:])
	case "mint":
		cmdMint(host, args[1:])
	case "query":
		cmdQuery(host, args[1:])
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", args[0])
		usage()
		os.Exit(1)
	}
}

// cmdInit runs the one-time Initialize transition.
func cmdInit(host *runtime.Host, args []string) {
	var (
		units    = flagValue(args, "--units", "0")
		perMint  = flagValue(args, "--value-per-mint", "0")
		capStr   = flagValue(args, "--cap", "0")
		name     = flagValue(args, "--name", "")
		symbol   = flagValue(args, "--symbol", "")
		txHex    = flagValue(args, "--tx", "")
		blockHex = flagValue(args, "--block", "")
	)

	w1, w2, err := contract.EncodeNameWords(name)
	if err != nil {
		fatalf("encode name: %v", err)
	}
	sym, err := contract.EncodeWord(symbol)
	if err != nil {
		fatalf("encode symbol: %v", err)
	}

	call := runtime.CallData{
		Opcode: contract.OpInitialize,
		Args: []types.Amount{
			parseAmount(units), parseAmount(perMint), parseAmount(capStr),
			w1, w2, sym,
		},
	}
	resp, err := host.Execute(callContext(blockHex, txHex), call)
	if err != nil {
		fatalf("initialize: %v", err)
	}
	printTransfers(resp)
}

// cmdMint runs one MintTokens attempt.
func cmdMint(host *runtime.Host, args []string) {
	txHex := flagValue(args, "--tx", "")
	blockHex := flagValue(args, "--block", "")

	resp, err := host.Execute(callContext(blockHex, txHex), runtime.CallData{
		Opcode: contract.OpMintTokens,
	})
	if err != nil {
		fatalf("mint: %v", err)
	}
	printTransfers(resp)
}

// queryOpcodes maps query names to read-only opcodes.
var queryOpcodes = map[string]uint64{
	"name":           contract.OpGetName,
	"symbol":         contract.OpGetSymbol,
	"supply":         contract.OpGetTotalSupply,
	"cap":            contract.OpGetCap,
	"minted":         contract.OpGetMinted,
	"value-per-mint": contract.OpGetValuePerMint,
	"data":           contract.OpGetData,
}

// cmdQuery runs a read-only query opcode and prints the response data.
func cmdQuery(host *runtime.Host, args []string) {
	if len(args) == 0 {
		fatalf("query requires a field: name|symbol|supply|cap|minted|value-per-mint|data")
	}
	opcode, ok := queryOpcodes[args[0]]
	if !ok {
		fatalf("unknown query field: %s", args[0])
	}

	resp, err := host.Execute(&runtime.CallContext{}, runtime.CallData{Opcode: opcode})
	if err != nil {
		fatalf("query %s: %v", args[0], err)
	}

	switch args[0] {
	case "name", "symbol":
		fmt.Println(string(resp.Data))
	case "data":
		if utf8.Valid(resp.Data) {
			fmt.Println(string(resp.Data))
		} else {
			fmt.Println(hex.EncodeToString(resp.Data))
		}
	default:
		v, err := types.AmountFromLE16(resp.Data)
		if err != nil {
			fatalf("decode response: %v", err)
		}
		fmt.Println(v.String())
	}
}

// callContext builds a CallContext from hex-encoded block and tx bytes.
// Each value may be given inline or as @file.
func callContext(blockHex, txHex string) *runtime.CallContext {
	return &runtime.CallContext{
		Block:       decodeHexArg("--block", blockHex),
		Transaction: decodeHexArg("--tx", txHex),
	}
}

func decodeHexArg(flag, v string) []byte {
	if v == "" {
		return nil
	}
	if strings.HasPrefix(v, "@") {
		raw, err := os.ReadFile(v[1:])
		if err != nil {
			fatalf("%s: %v", flag, err)
		}
		v = strings.TrimSpace(string(raw))
	}
	b, err := hex.DecodeString(v)
	if err != nil {
		fatalf("%s: invalid hex: %v", flag, err)
	}
	return b
}

func parseAmount(s string) types.Amount {
	u, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		fatalf("invalid amount %q: %v", s, err)
	}
	return types.NewAmount(u)
}

// flagValue scans args for "--flag value" or "--flag=value".
func flagValue(args []string, flag, def string) string {
	for i := 0; i < len(args); i++ {
		if args[i] == flag && i+1 < len(args) {
			return args[i+1]
		}
		if strings.HasPrefix(args[i], flag+"=") {
			return args[i][len(flag)+1:]
		}
	}
	return def
}

func printTransfers(resp *runtime.Response) {
	if len(resp.Transfers) == 0 {
		fmt.Println("ok (no transfers)")
		return
	}
	for _, tr := range resp.Transfers {
		fmt.Printf("transfer %s %s\n", tr.ID, tr.Value)
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func usage() {
	fmt.Fprintf(os.Stderr, `embermintd - capped free-mint token contract harness

Usage:
  embermintd [global flags] <command> [command flags]

Global flags:
  --datadir DIR      data directory (default %s)
  --log-level LEVEL  debug|info|warn|error
  --log-json         JSON log output

Commands:
  init   --units N --value-per-mint N --cap N --name NAME --symbol SYM --tx HEX [--block HEX]
  mint   --block HEX --tx HEX
  query  name|symbol|supply|cap|minted|value-per-mint|data

Hex values may be given inline or as @file.
`, config.DefaultDataDir())
}
