package app

import "github.com/gogo/protobuf/proto"

// The protobuf library encodes the types below from their struct tags.
// Each one is converted to an unexported twin without the Marshal and
// Unmarshal methods, so the library does not call back into them.

func (r *ResultSet) Marshal() ([]byte, error) {
	return proto.Marshal((*resultSetWire)(r))
}

func (r *ResultSet) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*resultSetWire)(r))
}

type resultSetWire ResultSet

func (m *resultSetWire) Reset()         { *m = resultSetWire{} }
func (m *resultSetWire) String() string { return proto.CompactTextString(m) }
func (*resultSetWire) ProtoMessage()    {}
