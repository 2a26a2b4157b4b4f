package swapd

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	swap "github.com/iov-one/swap"
	"github.com/iov-one/swap/app"
	"github.com/iov-one/swap/commands/server"
	"github.com/iov-one/swap/crypto"
	"github.com/iov-one/swap/errors"
	"github.com/iov-one/swap/x/token"
	abci "github.com/tendermint/tendermint/abci/types"
)

const (
	defaultTicker   = "SWP"
	defaultDecimals = 9
	initialSupply   = 1000000000 * 1000000000
)

// GenInitOptions will produce some basic options for one rich
// account, to use for dev mode. The optional arguments are the ticker of
// the mint and the address of its authority. Without an address a new key
// is generated and printed.
func GenInitOptions(args []string) (json.RawMessage, error) {
	ticker := defaultTicker
	if len(args) > 0 {
		ticker = args[0]
	}

	var addr swap.Address
	if len(args) > 1 {
		a, err := swap.ParseAddress(args[1])
		if err != nil {
			return nil, errors.Wrap(err, "authority address")
		}
		addr = a
	} else {
		key := crypto.GenPrivKeyEd25519()
		addr = key.PublicKey().Address()
		fmt.Printf("generated authority %s, private key %s\n", addr, hex.EncodeToString(key.Ed25519))
	}

	gen := token.Genesis{
		Mints: []token.GenesisMint{
			{Authority: addr, Ticker: ticker, Decimals: defaultDecimals},
		},
		Balances: []token.GenesisBalance{
			{Owner: addr, Ticker: ticker, Amount: initialSupply},
		},
	}
	// Catch a bad ticker or address before it lands in the genesis file.
	mint := token.Mint{Authority: addr, Ticker: ticker, Decimals: defaultDecimals}
	if err := mint.Validate(); err != nil {
		return nil, err
	}
	state, err := json.Marshal(map[string]interface{}{"token": gen})
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidInput, err.Error())
	}
	return state, nil
}

// GenerateApp is used to create a stub for server/start.go command
func GenerateApp(options *server.Options) (abci.Application, error) {
	kv, err := CommitKVStore(options.DBPath)
	if err != nil {
		return nil, err
	}
	application, err := Application("swap", Stack(), TxDecoder, kv, options.Debug)
	if err != nil {
		return nil, err
	}
	if options.Logger != nil {
		application.WithLogger(options.Logger)
	}
	return application, nil
}

// InlineApp returns the application in memory, mainly for tests.
func InlineApp(debug bool) (app.BaseApp, error) {
	kv, err := CommitKVStore("")
	if err != nil {
		return app.BaseApp{}, err
	}
	return Application("swap", Stack(), TxDecoder, kv, debug)
}
