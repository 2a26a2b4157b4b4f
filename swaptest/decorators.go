package swaptest

import swap "github.com/iov-one/swap"

// Decorator is a swap.Decorator that counts its calls and can be told to
// fail. When Trace is set, every call appends Name followed by ":check" or
// ":deliver", which lets tests assert the order of a decorator stack.
type Decorator struct {
	Name  string
	Trace *[]string

	// CheckErr and DeliverErr, when set, are returned instead of calling
	// the next handler.
	CheckErr   error
	DeliverErr error

	checks     int
	deliveries int
}

var _ swap.Decorator = (*Decorator)(nil)

func (d *Decorator) Check(ctx swap.Context, db swap.KVStore, tx swap.Tx, next swap.Checker) (*swap.CheckResult, error) {
	d.checks++
	d.trace("check")
	if d.CheckErr != nil {
		return nil, d.CheckErr
	}
	return next.Check(ctx, db, tx)
}

func (d *Decorator) Deliver(ctx swap.Context, db swap.KVStore, tx swap.Tx, next swap.Deliverer) (*swap.DeliverResult, error) {
	d.deliveries++
	d.trace("deliver")
	if d.DeliverErr != nil {
		return nil, d.DeliverErr
	}
	return next.Deliver(ctx, db, tx)
}

func (d *Decorator) trace(phase string) {
	if d.Trace != nil {
		*d.Trace = append(*d.Trace, d.Name+":"+phase)
	}
}

// CheckCallCount returns how many times Check was called.
func (d *Decorator) CheckCallCount() int { return d.checks }

// DeliverCallCount returns how many times Deliver was called.
func (d *Decorator) DeliverCallCount() int { return d.deliveries }

// CallCount returns the number of Check and Deliver calls together.
func (d *Decorator) CallCount() int { return d.checks + d.deliveries }

// Decorate returns a handler that runs h behind d.
func Decorate(h swap.Handler, d swap.Decorator) swap.Handler {
	return decorated{next: h, dec: d}
}

type decorated struct {
	next swap.Handler
	dec  swap.Decorator
}

func (d decorated) Check(ctx swap.Context, db swap.KVStore, tx swap.Tx) (*swap.CheckResult, error) {
	return d.dec.Check(ctx, db, tx, d.next)
}

func (d decorated) Deliver(ctx swap.Context, db swap.KVStore, tx swap.Tx) (*swap.DeliverResult, error) {
	return d.dec.Deliver(ctx, db, tx, d.next)
}
