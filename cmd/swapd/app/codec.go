package swapd

import "github.com/gogo/protobuf/proto"

// The protobuf library encodes the types below from their struct tags.
// Each one is converted to an unexported twin without the Marshal and
// Unmarshal methods, so the library does not call back into them.

func (tx *Tx) Marshal() ([]byte, error) {
	return proto.Marshal((*txWire)(tx))
}

func (tx *Tx) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*txWire)(tx))
}

type txWire Tx

func (m *txWire) Reset()         { *m = txWire{} }
func (m *txWire) String() string { return proto.CompactTextString(m) }
func (*txWire) ProtoMessage()    {}
