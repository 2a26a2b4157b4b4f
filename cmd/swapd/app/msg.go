package swapd

import (
	swap "github.com/iov-one/swap"
	"github.com/iov-one/swap/errors"
	"github.com/iov-one/swap/x/offer"
	"github.com/iov-one/swap/x/token"
)

// messages lists every message the application accepts, by path.
var messages = map[string]func() swap.Msg{}

func init() {
	for _, fn := range []func() swap.Msg{
		func() swap.Msg { return &token.CreateMintMsg{} },
		func() swap.Msg { return &token.CreateAccountMsg{} },
		func() swap.Msg { return &token.MintToMsg{} },
		func() swap.Msg { return &token.TransferMsg{} },
		func() swap.Msg { return &token.ApproveMsg{} },
		func() swap.Msg { return &token.RevokeMsg{} },
		func() swap.Msg { return &offer.MakeOfferMsg{} },
		func() swap.Msg { return &offer.TakeOfferMsg{} },
	} {
		path := fn().Path()
		if _, ok := messages[path]; ok {
			panic("message path registered twice: " + path)
		}
		messages[path] = fn
	}
}

// NewMsg returns an empty message for the given path.
func NewMsg(path string) (swap.Msg, error) {
	fn, ok := messages[path]
	if !ok {
		return nil, errors.Wrapf(errors.ErrInvalidMsg, "unknown message path %q", path)
	}
	return fn(), nil
}

// MsgPaths returns the paths of all known messages.
func MsgPaths() []string {
	paths := make([]string, 0, len(messages))
	for p := range messages {
		paths = append(paths, p)
	}
	return paths
}
