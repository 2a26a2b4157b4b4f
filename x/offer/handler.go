package offer

import (
	swap "github.com/iov-one/swap"
	"github.com/iov-one/swap/errors"
	"github.com/iov-one/swap/x"
	"github.com/iov-one/swap/x/token"
)

const (
	makeOfferCost int64 = 300
	takeOfferCost int64 = 300
)

// RegisterRoutes will instantiate and register all handlers in this
// package. The token controller must accept Authenticate as a delegate
// signer.
func RegisterRoutes(r swap.Registry, auth x.Authenticator, tokens token.Controller) {
	bucket := NewBucket()
	r.Handle(&MakeOfferMsg{}, MakeOfferHandler{auth: auth, bucket: bucket, tokens: tokens})
	r.Handle(&TakeOfferMsg{}, TakeOfferHandler{auth: auth, bucket: bucket, tokens: tokens})
}

// RegisterQuery will register this bucket as "/offers"
func RegisterQuery(qr swap.QueryRouter) {
	NewBucket().Register("offers", qr)
}

// MakeOfferHandler opens new offers.
type MakeOfferHandler struct {
	auth   x.Authenticator
	bucket Bucket
	tokens token.Controller
}

var _ swap.Handler = MakeOfferHandler{}

// Check does the validation and sets the cost of the transaction.
func (h MakeOfferHandler) Check(ctx swap.Context, db swap.KVStore, tx swap.Tx) (*swap.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &swap.CheckResult{GasAllocated: makeOfferCost}, nil
}

// Deliver approves the offer as the delegate of the maker's asset A
// account and stores the offer. No tokens are moved.
func (h MakeOfferHandler) Deliver(ctx swap.Context, db swap.KVStore, tx swap.Tx) (*swap.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	offer := &Offer{
		ID:      msg.ID,
		Maker:   msg.Maker,
		MintA:   msg.MintA,
		MintB:   msg.MintB,
		AmountA: msg.AmountA,
		AmountB: msg.AmountB,
	}
	addr, _, err := FindAddress(offer.Maker, offer.ID)
	if err != nil {
		return nil, err
	}
	if err := h.tokens.Approve(ctx, db, offer.MintA, offer.Maker, addr, offer.AmountA); err != nil {
		return nil, errors.Wrap(err, "delegate to offer")
	}
	if _, err := h.bucket.Create(db, offer); err != nil {
		return nil, err
	}

	swap.GetLogger(ctx).Debug("offer created",
		"offer", addr,
		"maker", offer.Maker,
		"id", offer.ID)
	return &swap.DeliverResult{Data: addr}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h MakeOfferHandler) validate(ctx swap.Context, db swap.KVStore, tx swap.Tx) (*MakeOfferMsg, error) {
	var msg MakeOfferMsg
	if err := swap.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}

	if err := x.RequireSigner(ctx, h.auth, msg.Maker, "maker"); err != nil {
		return nil, err
	}

	if _, err := h.tokens.Mint(db, msg.MintA); err != nil {
		return nil, errors.Wrap(err, "mint a")
	}
	if _, err := h.tokens.Mint(db, msg.MintB); err != nil {
		return nil, errors.Wrap(err, "mint b")
	}

	balance, err := h.tokens.Balance(db, msg.MintA, msg.Maker)
	if err != nil {
		return nil, err
	}
	if balance < msg.AmountA {
		return nil, errors.Wrapf(errors.ErrInsufficientAmount, "maker holds %d, offers %d", balance, msg.AmountA)
	}

	switch _, err := h.bucket.Read(db, msg.Maker, msg.ID); {
	case err == nil:
		return nil, errors.Wrapf(errors.ErrDuplicate, "offer %d already open", msg.ID)
	case !errors.ErrNotFound.Is(err):
		return nil, err
	}
	return &msg, nil
}

// TakeOfferHandler settles open offers.
type TakeOfferHandler struct {
	auth   x.Authenticator
	bucket Bucket
	tokens token.Controller
}

var _ swap.Handler = TakeOfferHandler{}

// Check does the validation and sets the cost of the transaction.
func (h TakeOfferHandler) Check(ctx swap.Context, db swap.KVStore, tx swap.Tx) (*swap.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &swap.CheckResult{GasAllocated: takeOfferCost}, nil
}

// Deliver pays asset B from the taker to the maker, moves asset A from
// the maker to the taker using the delegation and removes the offer.
// Running it behind a savepoint makes the settlement all or nothing.
func (h TakeOfferHandler) Deliver(ctx swap.Context, db swap.KVStore, tx swap.Tx) (*swap.DeliverResult, error) {
	msg, offer, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	if err := h.tokens.Transfer(db, offer.MintB, msg.Taker, offer.Maker, offer.AmountB); err != nil {
		return nil, errors.Wrap(err, "pay maker")
	}
	offerCtx := withOfferSigner(ctx, offer)
	if err := h.tokens.TransferDelegated(offerCtx, db, offer.MintA, offer.Maker, msg.Taker, offer.AmountA); err != nil {
		return nil, errors.Wrap(err, "pay taker")
	}
	if err := h.bucket.destroy(db, msg.Offer); err != nil {
		return nil, err
	}

	swap.GetLogger(ctx).Debug("offer settled",
		"offer", msg.Offer,
		"maker", offer.Maker,
		"taker", msg.Taker)
	return &swap.DeliverResult{Data: msg.Offer}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h TakeOfferHandler) validate(ctx swap.Context, db swap.KVStore, tx swap.Tx) (*TakeOfferMsg, *Offer, error) {
	var msg TakeOfferMsg
	if err := swap.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}

	if err := x.RequireSigner(ctx, h.auth, msg.Taker, "taker"); err != nil {
		return nil, nil, err
	}

	offer, err := h.bucket.Get(db, msg.Offer)
	if err != nil {
		return nil, nil, err
	}
	addr, err := offer.Address()
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrInvalidState, err.Error())
	}
	if !addr.Equals(msg.Offer) {
		return nil, nil, errors.Wrap(errors.ErrInvalidState, "offer stored under a foreign address")
	}

	// Custody was never transferred, so the maker may have spent the
	// offered tokens or revoked the delegation since the offer was made.
	balance, err := h.tokens.Balance(db, offer.MintA, offer.Maker)
	if err != nil {
		return nil, nil, err
	}
	if balance < offer.AmountA {
		return nil, nil, errors.Wrapf(ErrMakerBalance, "maker holds %d, offered %d", balance, offer.AmountA)
	}
	source, err := h.tokens.Account(db, offer.MintA, offer.Maker)
	if err != nil {
		return nil, nil, err
	}
	if !source.Delegate.Equals(msg.Offer) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "offer is not the delegate of the maker account")
	}
	if source.DelegatedAmount < offer.AmountA {
		return nil, nil, errors.Wrapf(token.ErrInsufficientDelegation, "delegated %d, offered %d", source.DelegatedAmount, offer.AmountA)
	}

	balance, err = h.tokens.Balance(db, offer.MintB, msg.Taker)
	if err != nil {
		return nil, nil, err
	}
	if balance < offer.AmountB {
		return nil, nil, errors.Wrapf(errors.ErrInsufficientAmount, "taker holds %d, wanted %d", balance, offer.AmountB)
	}
	return &msg, offer, nil
}
