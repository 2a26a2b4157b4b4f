package offer

import "github.com/gogo/protobuf/proto"

// The protobuf library encodes the types below from their struct tags.
// Each one is converted to an unexported twin without the Marshal and
// Unmarshal methods, so the library does not call back into them.

func (m *MakeOfferMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*makeOfferMsgWire)(m))
}

func (m *MakeOfferMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*makeOfferMsgWire)(m))
}

type makeOfferMsgWire MakeOfferMsg

func (m *makeOfferMsgWire) Reset()         { *m = makeOfferMsgWire{} }
func (m *makeOfferMsgWire) String() string { return proto.CompactTextString(m) }
func (*makeOfferMsgWire) ProtoMessage()    {}

func (m *TakeOfferMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*takeOfferMsgWire)(m))
}

func (m *TakeOfferMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*takeOfferMsgWire)(m))
}

type takeOfferMsgWire TakeOfferMsg

func (m *takeOfferMsgWire) Reset()         { *m = takeOfferMsgWire{} }
func (m *takeOfferMsgWire) String() string { return proto.CompactTextString(m) }
func (*takeOfferMsgWire) ProtoMessage()    {}
