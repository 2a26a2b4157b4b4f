package orm

import "github.com/gogo/protobuf/proto"

// The protobuf library encodes the types below from their struct tags.
// Each one is converted to an unexported twin without the Marshal and
// Unmarshal methods, so the library does not call back into them.

func (m *MultiRef) Marshal() ([]byte, error) {
	return proto.Marshal((*multiRefWire)(m))
}

func (m *MultiRef) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*multiRefWire)(m))
}

type multiRefWire MultiRef

func (m *multiRefWire) Reset()         { *m = multiRefWire{} }
func (m *multiRefWire) String() string { return proto.CompactTextString(m) }
func (*multiRefWire) ProtoMessage()    {}
