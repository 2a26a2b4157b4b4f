package utils

import (
	"encoding/hex"
	"strings"

	swap "github.com/iov-one/swap"
	"github.com/tendermint/tendermint/libs/common"
)

// Tag keys added to successful deliver results.
const (
	// ActionKey holds the path of the delivered message, for example
	// "offer/take".
	ActionKey = "action"
	// SubjectKey holds the upper case hex of the result data, which is
	// the address of the created or settled entity.
	SubjectKey = "subject"
)

// ActionTagger tags every successful delivery so that clients can search
// the transaction index, for example for all settlements of one offer with
// action='offer/take' AND subject='<offer address>'.
type ActionTagger struct{}

var _ swap.Decorator = ActionTagger{}

// NewActionTagger returns an ActionTagger.
func NewActionTagger() ActionTagger {
	return ActionTagger{}
}

// Check does not tag anything.
func (ActionTagger) Check(ctx swap.Context, db swap.KVStore, tx swap.Tx, next swap.Checker) (*swap.CheckResult, error) {
	return next.Check(ctx, db, tx)
}

// Deliver tags the result once the message was processed without error.
func (ActionTagger) Deliver(ctx swap.Context, db swap.KVStore, tx swap.Tx, next swap.Deliverer) (*swap.DeliverResult, error) {
	// Fail on a broken message before anything is executed.
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}
	res, err := next.Deliver(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	res.Tags = append(res.Tags, common.KVPair{Key: []byte(ActionKey), Value: []byte(msg.Path())})
	if len(res.Data) != 0 {
		subject := strings.ToUpper(hex.EncodeToString(res.Data))
		res.Tags = append(res.Tags, common.KVPair{Key: []byte(SubjectKey), Value: []byte(subject)})
	}
	return res, nil
}
