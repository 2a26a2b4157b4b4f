/*
Package swapd links together all the various components
to construct the token swap application.
*/
package swapd

import (
	"context"
	"path/filepath"
	"strings"

	swap "github.com/iov-one/swap"
	"github.com/iov-one/swap/app"
	"github.com/iov-one/swap/errors"
	"github.com/iov-one/swap/store/iavl"
	"github.com/iov-one/swap/x"
	"github.com/iov-one/swap/x/offer"
	"github.com/iov-one/swap/x/sigs"
	"github.com/iov-one/swap/x/token"
	"github.com/iov-one/swap/x/utils"
)

// Authenticator returns the authentication used by handlers: public key
// signatures only.
func Authenticator() x.Authenticator {
	return sigs.Authenticate{}
}

// TokenAuthenticator extends Authenticator with the offer being settled,
// so the token ledger accepts spends made by an offer as delegate.
func TokenAuthenticator() x.Authenticator {
	return x.ChainAuth(sigs.Authenticate{}, offer.Authenticate{})
}

// Chain returns a chain of decorators, to handle authentication,
// logging, and recovery
func Chain() app.Decorators {
	return app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		// on CheckTx, bad tx don't affect state
		utils.NewSavepoint().OnCheck(),
		sigs.NewDecorator(),
		// on DeliverTx, a failing message is rolled back as a whole
		// while the signature sequence is still consumed
		utils.NewSavepoint().OnDeliver(),
		utils.NewActionTagger(),
	)
}

// Router returns a router dispatching token and offer messages.
func Router(authFn x.Authenticator) *app.Router {
	r := app.NewRouter()
	tokens := token.NewController(TokenAuthenticator())
	token.RegisterRoutes(r, authFn, tokens)
	offer.RegisterRoutes(r, authFn, tokens)
	return r
}

// QueryRouter returns a default query router,
// allowing access to "/auth", "/mints", "/accounts" and "/offers"
func QueryRouter() swap.QueryRouter {
	r := swap.NewQueryRouter()
	r.RegisterAll(
		sigs.RegisterQuery,
		token.RegisterQuery,
		offer.RegisterQuery,
	)
	return r
}

// Stack wires up a standard router with a standard decorator
// chain. This can be passed into BaseApp.
func Stack() swap.Handler {
	return Chain().WithHandler(Router(Authenticator()))
}

// Initializers returns the genesis initializers of all extensions.
func Initializers() swap.Initializer {
	return swap.ChainInitializers{
		&token.Initializer{},
	}
}

// Application constructs a basic ABCI application with
// the given arguments. If you are not sure what to use
// for the Handler, just use Stack().
func Application(name string, h swap.Handler,
	tx swap.TxDecoder, kv swap.CommitKVStore, debug bool) (app.BaseApp, error) {

	ctx := context.Background()
	store, err := app.NewStoreApp(name, kv, QueryRouter(), ctx)
	if err != nil {
		return app.BaseApp{}, err
	}
	store = store.WithInit(Initializers())
	return app.NewBaseApp(store, tx, h, debug), nil
}

// CommitKVStore returns an initialized KVStore that persists
// the data to the named path.
func CommitKVStore(dbPath string) (swap.CommitKVStore, error) {
	// memory backed case, just for testing
	if dbPath == "" {
		return iavl.NewMemCommitStore(), nil
	}

	// Expand the path fully
	path, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "invalid database name: %s", dbPath)
	}

	// Some external calls accidently add a ".db", which is now removed
	path = strings.TrimSuffix(path, filepath.Ext(path))

	// Split the database name into it's components (dir, name)
	dir := filepath.Dir(path)
	name := filepath.Base(path)
	return iavl.NewCommitStore(dir, name), nil
}
