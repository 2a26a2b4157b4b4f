package crypto

import "github.com/gogo/protobuf/proto"

// The protobuf library encodes the types below from their struct tags.
// Each one is converted to an unexported twin without the Marshal and
// Unmarshal methods, so the library does not call back into them.

func (p *PublicKey) Marshal() ([]byte, error) {
	return proto.Marshal((*publicKeyWire)(p))
}

func (p *PublicKey) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*publicKeyWire)(p))
}

type publicKeyWire PublicKey

func (m *publicKeyWire) Reset()         { *m = publicKeyWire{} }
func (m *publicKeyWire) String() string { return proto.CompactTextString(m) }
func (*publicKeyWire) ProtoMessage()    {}

func (s *Signature) Marshal() ([]byte, error) {
	return proto.Marshal((*signatureWire)(s))
}

func (s *Signature) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*signatureWire)(s))
}

type signatureWire Signature

func (m *signatureWire) Reset()         { *m = signatureWire{} }
func (m *signatureWire) String() string { return proto.CompactTextString(m) }
func (*signatureWire) ProtoMessage()    {}
