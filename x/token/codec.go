package token

import "github.com/gogo/protobuf/proto"

// The protobuf library encodes the types below from their struct tags.
// Each one is converted to an unexported twin without the Marshal and
// Unmarshal methods, so the library does not call back into them.

func (m *Mint) Marshal() ([]byte, error) {
	return proto.Marshal((*mintWire)(m))
}

func (m *Mint) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*mintWire)(m))
}

type mintWire Mint

func (m *mintWire) Reset()         { *m = mintWire{} }
func (m *mintWire) String() string { return proto.CompactTextString(m) }
func (*mintWire) ProtoMessage()    {}

func (a *Account) Marshal() ([]byte, error) {
	return proto.Marshal((*accountWire)(a))
}

func (a *Account) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*accountWire)(a))
}

type accountWire Account

func (m *accountWire) Reset()         { *m = accountWire{} }
func (m *accountWire) String() string { return proto.CompactTextString(m) }
func (*accountWire) ProtoMessage()    {}

func (m *CreateMintMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*createMintMsgWire)(m))
}

func (m *CreateMintMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*createMintMsgWire)(m))
}

type createMintMsgWire CreateMintMsg

func (m *createMintMsgWire) Reset()         { *m = createMintMsgWire{} }
func (m *createMintMsgWire) String() string { return proto.CompactTextString(m) }
func (*createMintMsgWire) ProtoMessage()    {}

func (m *CreateAccountMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*createAccountMsgWire)(m))
}

func (m *CreateAccountMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*createAccountMsgWire)(m))
}

type createAccountMsgWire CreateAccountMsg

func (m *createAccountMsgWire) Reset()         { *m = createAccountMsgWire{} }
func (m *createAccountMsgWire) String() string { return proto.CompactTextString(m) }
func (*createAccountMsgWire) ProtoMessage()    {}

func (m *MintToMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*mintToMsgWire)(m))
}

func (m *MintToMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*mintToMsgWire)(m))
}

type mintToMsgWire MintToMsg

func (m *mintToMsgWire) Reset()         { *m = mintToMsgWire{} }
func (m *mintToMsgWire) String() string { return proto.CompactTextString(m) }
func (*mintToMsgWire) ProtoMessage()    {}

func (m *TransferMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*transferMsgWire)(m))
}

func (m *TransferMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*transferMsgWire)(m))
}

type transferMsgWire TransferMsg

func (m *transferMsgWire) Reset()         { *m = transferMsgWire{} }
func (m *transferMsgWire) String() string { return proto.CompactTextString(m) }
func (*transferMsgWire) ProtoMessage()    {}

func (m *ApproveMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*approveMsgWire)(m))
}

func (m *ApproveMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*approveMsgWire)(m))
}

type approveMsgWire ApproveMsg

func (m *approveMsgWire) Reset()         { *m = approveMsgWire{} }
func (m *approveMsgWire) String() string { return proto.CompactTextString(m) }
func (*approveMsgWire) ProtoMessage()    {}

func (m *RevokeMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*revokeMsgWire)(m))
}

func (m *RevokeMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*revokeMsgWire)(m))
}

type revokeMsgWire RevokeMsg

func (m *revokeMsgWire) Reset()         { *m = revokeMsgWire{} }
func (m *revokeMsgWire) String() string { return proto.CompactTextString(m) }
func (*revokeMsgWire) ProtoMessage()    {}
