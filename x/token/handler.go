package token

import (
	swap "github.com/iov-one/swap"
	"github.com/iov-one/swap/errors"
	"github.com/iov-one/swap/orm"
	"github.com/iov-one/swap/x"
)

const (
	createMintCost    int64 = 100
	createAccountCost int64 = 50
	mintToCost        int64 = 50
	transferCost      int64 = 100
	approveCost       int64 = 50
	revokeCost        int64 = 10
)

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r swap.Registry, auth x.Authenticator, ctrl BaseController) {
	r.Handle(&CreateMintMsg{}, CreateMintHandler{auth: auth, mints: ctrl.mints})
	r.Handle(&CreateAccountMsg{}, CreateAccountHandler{ctrl: ctrl})
	r.Handle(&MintToMsg{}, MintToHandler{auth: auth, ctrl: ctrl})
	r.Handle(&TransferMsg{}, TransferHandler{auth: auth, ctrl: ctrl})
	r.Handle(&ApproveMsg{}, ApproveHandler{ctrl: ctrl})
	r.Handle(&RevokeMsg{}, RevokeHandler{ctrl: ctrl})
}

// RegisterQuery will register mints as "/mints" and accounts as
// "/accounts".
func RegisterQuery(qr swap.QueryRouter) {
	NewMintBucket().Register("mints", qr)
	NewAccountBucket().Register("accounts", qr)
}

// CreateMintHandler registers new mints.
type CreateMintHandler struct {
	auth  x.Authenticator
	mints orm.ModelBucket
}

var _ swap.Handler = CreateMintHandler{}

func (h CreateMintHandler) Check(ctx swap.Context, db swap.KVStore, tx swap.Tx) (*swap.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &swap.CheckResult{GasAllocated: createMintCost}, nil
}

func (h CreateMintHandler) Deliver(ctx swap.Context, db swap.KVStore, tx swap.Tx) (*swap.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	mint := &Mint{
		Authority: msg.Authority,
		Ticker:    msg.Ticker,
		Decimals:  msg.Decimals,
		Name:      msg.Name,
		URI:       msg.URI,
	}
	addr := mint.Address()
	if err := h.mints.Put(db, addr, mint); err != nil {
		return nil, err
	}
	return &swap.DeliverResult{Data: addr}, nil
}

func (h CreateMintHandler) validate(ctx swap.Context, db swap.KVStore, tx swap.Tx) (*CreateMintMsg, error) {
	var msg CreateMintMsg
	if err := swap.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := x.RequireSigner(ctx, h.auth, msg.Authority, "mint authority"); err != nil {
		return nil, err
	}
	switch err := h.mints.Has(db, MintAddress(msg.Ticker)); {
	case err == nil:
		return nil, errors.Wrapf(errors.ErrDuplicate, "mint %q", msg.Ticker)
	case !errors.ErrNotFound.Is(err):
		return nil, err
	}
	return &msg, nil
}

// CreateAccountHandler creates empty associated accounts. Anyone may
// create an account for any owner.
type CreateAccountHandler struct {
	ctrl BaseController
}

var _ swap.Handler = CreateAccountHandler{}

func (h CreateAccountHandler) Check(ctx swap.Context, db swap.KVStore, tx swap.Tx) (*swap.CheckResult, error) {
	var msg CreateAccountMsg
	if err := swap.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &swap.CheckResult{GasAllocated: createAccountCost}, nil
}

func (h CreateAccountHandler) Deliver(ctx swap.Context, db swap.KVStore, tx swap.Tx) (*swap.DeliverResult, error) {
	var msg CreateAccountMsg
	if err := swap.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	acc, err := h.ctrl.CreateAccount(db, msg.Mint, msg.Owner)
	if err != nil {
		return nil, err
	}
	return &swap.DeliverResult{Data: acc.Address()}, nil
}

// MintToHandler issues new tokens.
type MintToHandler struct {
	auth x.Authenticator
	ctrl BaseController
}

var _ swap.Handler = MintToHandler{}

func (h MintToHandler) Check(ctx swap.Context, db swap.KVStore, tx swap.Tx) (*swap.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &swap.CheckResult{GasAllocated: mintToCost}, nil
}

func (h MintToHandler) Deliver(ctx swap.Context, db swap.KVStore, tx swap.Tx) (*swap.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.MintTo(db, msg.Mint, msg.Destination, msg.Amount); err != nil {
		return nil, err
	}
	return &swap.DeliverResult{}, nil
}

func (h MintToHandler) validate(ctx swap.Context, db swap.KVStore, tx swap.Tx) (*MintToMsg, error) {
	var msg MintToMsg
	if err := swap.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	mint, err := h.ctrl.Mint(db, msg.Mint)
	if err != nil {
		return nil, err
	}
	if err := x.RequireSigner(ctx, h.auth, mint.Authority, "mint authority"); err != nil {
		return nil, err
	}
	return &msg, nil
}

// TransferHandler moves tokens on behalf of the owner.
type TransferHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ swap.Handler = TransferHandler{}

func (h TransferHandler) Check(ctx swap.Context, db swap.KVStore, tx swap.Tx) (*swap.CheckResult, error) {
	if _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &swap.CheckResult{GasAllocated: transferCost}, nil
}

func (h TransferHandler) Deliver(ctx swap.Context, db swap.KVStore, tx swap.Tx) (*swap.DeliverResult, error) {
	msg, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.Transfer(db, msg.Mint, msg.Source, msg.Destination, msg.Amount); err != nil {
		return nil, err
	}
	return &swap.DeliverResult{}, nil
}

func (h TransferHandler) validate(ctx swap.Context, tx swap.Tx) (*TransferMsg, error) {
	var msg TransferMsg
	if err := swap.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := x.RequireSigner(ctx, h.auth, msg.Source, "account owner"); err != nil {
		return nil, err
	}
	return &msg, nil
}

// ApproveHandler grants a delegation. Owner authorization is done by the
// controller.
type ApproveHandler struct {
	ctrl Controller
}

var _ swap.Handler = ApproveHandler{}

func (h ApproveHandler) Check(ctx swap.Context, db swap.KVStore, tx swap.Tx) (*swap.CheckResult, error) {
	var msg ApproveMsg
	if err := swap.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &swap.CheckResult{GasAllocated: approveCost}, nil
}

func (h ApproveHandler) Deliver(ctx swap.Context, db swap.KVStore, tx swap.Tx) (*swap.DeliverResult, error) {
	var msg ApproveMsg
	if err := swap.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := h.ctrl.Approve(ctx, db, msg.Mint, msg.Owner, msg.Delegate, msg.Amount); err != nil {
		return nil, err
	}
	return &swap.DeliverResult{}, nil
}

// RevokeHandler clears a delegation.
type RevokeHandler struct {
	ctrl Controller
}

var _ swap.Handler = RevokeHandler{}

func (h RevokeHandler) Check(ctx swap.Context, db swap.KVStore, tx swap.Tx) (*swap.CheckResult, error) {
	var msg RevokeMsg
	if err := swap.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &swap.CheckResult{GasAllocated: revokeCost}, nil
}

func (h RevokeHandler) Deliver(ctx swap.Context, db swap.KVStore, tx swap.Tx) (*swap.DeliverResult, error) {
	var msg RevokeMsg
	if err := swap.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := h.ctrl.Revoke(ctx, db, msg.Mint, msg.Owner); err != nil {
		return nil, err
	}
	return &swap.DeliverResult{}, nil
}
