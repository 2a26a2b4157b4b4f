package swapd

import (
	swap "github.com/iov-one/swap"
	"github.com/iov-one/swap/errors"
	"github.com/iov-one/swap/x/sigs"
)

// Tx is the transaction envelope of the swap chain. It carries a single
// serialized message identified by its path, together with the
// signatures authorizing it.
type Tx struct {
	Signatures []*sigs.StdSignature `protobuf:"bytes,1,rep,name=signatures,proto3" json:"signatures,omitempty"`
	MsgPath    string               `protobuf:"bytes,2,opt,name=msg_path,json=msgPath,proto3" json:"msg_path,omitempty"`
	MsgBytes   []byte               `protobuf:"bytes,3,opt,name=msg_bytes,json=msgBytes,proto3" json:"msg_bytes,omitempty"`
}

// make sure tx fulfills all interfaces
var _ swap.Tx = (*Tx)(nil)
var _ sigs.SignedTx = (*Tx)(nil)

// TxDecoder creates a Tx and unmarshals bytes into it
func TxDecoder(bz []byte) (swap.Tx, error) {
	tx := new(Tx)
	if err := tx.Unmarshal(bz); err != nil {
		return nil, err
	}
	return tx, nil
}

// NewTx wraps the message into an unsigned transaction.
func NewTx(msg swap.Msg) (*Tx, error) {
	raw, err := msg.Marshal()
	if err != nil {
		return nil, errors.Wrap(err, "serialize message")
	}
	return &Tx{MsgPath: msg.Path(), MsgBytes: raw}, nil
}

// GetMsg decodes the message for the path carried by the transaction.
func (tx *Tx) GetMsg() (swap.Msg, error) {
	msg, err := NewMsg(tx.MsgPath)
	if err != nil {
		return nil, err
	}
	if err := msg.Unmarshal(tx.MsgBytes); err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidMsg, "cannot decode %s: %s", tx.MsgPath, err)
	}
	return msg, nil
}

// GetSignatures returns the signatures of the transaction.
func (tx *Tx) GetSignatures() []*sigs.StdSignature {
	return tx.Signatures
}

// GetSignBytes returns the bytes to sign...
func (tx *Tx) GetSignBytes() ([]byte, error) {
	// temporarily unset the signatures, as the sign bytes
	// should only come from the data itself, not previous signatures
	sigs := tx.Signatures
	tx.Signatures = nil

	bz, err := tx.Marshal()

	// reset the signatures after calculating the bytes
	tx.Signatures = sigs
	return bz, err
}

