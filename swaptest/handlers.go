package swaptest

import swap "github.com/iov-one/swap"

// Handler is a mock implementation of the swap.Handler interface. It
// returns the configured results and counts every call.
type Handler struct {
	checkCall   int
	CheckResult swap.CheckResult
	CheckErr    error

	deliverCall   int
	DeliverResult swap.DeliverResult
	DeliverErr    error
}

var _ swap.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx swap.Context, db swap.KVStore, tx swap.Tx) (*swap.CheckResult, error) {
	h.checkCall++
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(ctx swap.Context, db swap.KVStore, tx swap.Tx) (*swap.DeliverResult, error) {
	h.deliverCall++
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

func (h *Handler) CheckCallCount() int {
	return h.checkCall
}

func (h *Handler) DeliverCallCount() int {
	return h.deliverCall
}

func (h *Handler) CallCount() int {
	return h.checkCall + h.deliverCall
}

// WriteHandler writes the given key value pair to the store before
// returning Err.
type WriteHandler struct {
	Key   []byte
	Value []byte
	Err   error
}

var _ swap.Handler = WriteHandler{}

func (h WriteHandler) Check(ctx swap.Context, db swap.KVStore, tx swap.Tx) (*swap.CheckResult, error) {
	if err := db.Set(h.Key, h.Value); err != nil {
		return nil, err
	}
	return &swap.CheckResult{}, h.Err
}

func (h WriteHandler) Deliver(ctx swap.Context, db swap.KVStore, tx swap.Tx) (*swap.DeliverResult, error) {
	if err := db.Set(h.Key, h.Value); err != nil {
		return nil, err
	}
	return &swap.DeliverResult{}, h.Err
}

// PanicHandler always panics with the given value.
type PanicHandler struct {
	Err interface{}
}

var _ swap.Handler = PanicHandler{}

func (h PanicHandler) Check(swap.Context, swap.KVStore, swap.Tx) (*swap.CheckResult, error) {
	panic(h.Err)
}

func (h PanicHandler) Deliver(swap.Context, swap.KVStore, swap.Tx) (*swap.DeliverResult, error) {
	panic(h.Err)
}
