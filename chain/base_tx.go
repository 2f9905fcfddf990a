// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/prefixvm/crypto"
)

type BaseTx struct {
	// Sender is the identity that signs the transaction and is checked
	// against the admin, verifier or owner role of the operation.
	Sender crypto.PublicKey `serialize:"true" json:"sender"`

	// Magic identifies the network the transaction is meant for.
	Magic uint64 `serialize:"true" json:"magic"`

	// Nonce distinguishes otherwise identical transactions from the same
	// sender.
	Nonce uint64 `serialize:"true" json:"nonce"`
}

func (b *BaseTx) GetSender() crypto.PublicKey {
	return b.Sender
}

func (b *BaseTx) SetSender(s crypto.PublicKey) {
	b.Sender = s
}

func (b *BaseTx) GetMagic() uint64 {
	return b.Magic
}

func (b *BaseTx) SetMagic(magic uint64) {
	b.Magic = magic
}

func (b *BaseTx) GetNonce() uint64 {
	return b.Nonce
}

func (b *BaseTx) SetNonce(n uint64) {
	b.Nonce = n
}

func (b *BaseTx) ExecuteBase(g *Genesis) error {
	if b.Sender == crypto.EmptyPublicKey {
		return ErrInvalidSender
	}
	if b.Magic != g.Magic {
		return ErrInvalidMagic
	}
	return nil
}

func (b *BaseTx) Copy() *BaseTx {
	return &BaseTx{
		Sender: b.Sender,
		Magic:  b.Magic,
		Nonce:  b.Nonce,
	}
}
