package app

import (
	swap "github.com/iov-one/swap"
	"github.com/iov-one/swap/errors"
	abci "github.com/tendermint/tendermint/abci/types"
)

// BaseApp serves CheckTx and DeliverTx on top of a StoreApp. Every call
// holds the StoreApp lock, so a transaction is never checked against a
// half delivered block.
type BaseApp struct {
	*StoreApp
	decoder swap.TxDecoder
	handler swap.Handler
	debug   bool
}

var _ abci.Application = BaseApp{}

// NewBaseApp wires the transaction decoder and the handler chain to the
// store. With debug set, error responses carry the full stack.
func NewBaseApp(store *StoreApp, decoder swap.TxDecoder, handler swap.Handler, debug bool) BaseApp {
	return BaseApp{
		StoreApp: store.WithDebug(debug),
		decoder:  decoder,
		handler:  handler,
		debug:    debug,
	}
}

func (b BaseApp) DeliverTx(txBytes []byte) abci.ResponseDeliverTx {
	b.mtx.Lock()
	defer b.mtx.Unlock()

	ctx, tx, err := b.prepare(txBytes, "deliver_tx")
	if err != nil {
		return swap.DeliverOrError(nil, err, b.debug)
	}
	res, err := b.handler.Deliver(ctx, b.DeliverStore(), tx)
	if err != nil {
		swap.GetLogger(ctx).Debug("transaction rejected", "err", err)
	}
	return swap.DeliverOrError(res, err, b.debug)
}

func (b BaseApp) CheckTx(txBytes []byte) abci.ResponseCheckTx {
	b.mtx.Lock()
	defer b.mtx.Unlock()

	ctx, tx, err := b.prepare(txBytes, "check_tx")
	if err != nil {
		return swap.CheckOrError(nil, err, b.debug)
	}
	res, err := b.handler.Check(ctx, b.CheckStore(), tx)
	return swap.CheckOrError(res, err, b.debug)
}

// prepare decodes the transaction and returns the block context tagged
// for the given call. A panicking decoder is reported as an error.
func (b BaseApp) prepare(txBytes []byte, call string) (ctx swap.Context, tx swap.Tx, err error) {
	defer errors.Recover(&err)
	if tx, err = b.decoder(txBytes); err != nil {
		return nil, nil, err
	}
	ctx = swap.WithLogInfo(b.BlockContext(), "call", call, "path", swap.GetPath(tx))
	return ctx, tx, nil
}
