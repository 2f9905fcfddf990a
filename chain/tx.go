// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/prefixvm/crypto"
)

type CoSignature struct {
	Signer    crypto.PublicKey `serialize:"true" json:"signer"`
	Signature []byte           `serialize:"true" json:"signature"`
}

type Transaction struct {
	UnsignedTransaction `serialize:"true" json:"unsignedTransaction"`
	Signature           []byte         `serialize:"true" json:"signature"`
	CoSignatures        []*CoSignature `serialize:"true" json:"coSignatures"`

	digestHash []byte
	bytes      []byte
	id         ids.ID
	size       uint64
}

func NewTx(utx UnsignedTransaction, sig []byte) *Transaction {
	return &Transaction{
		UnsignedTransaction: utx,
		Signature:           sig,
	}
}

func (t *Transaction) Init() error {
	dh, err := DigestHash(t.UnsignedTransaction)
	if err != nil {
		return err
	}
	t.digestHash = dh

	stx, err := Marshal(t)
	if err != nil {
		return err
	}
	t.bytes = stx

	// The ID commits to the unsigned payload only.
	id, err := ids.ToID(dh)
	if err != nil {
		return err
	}
	t.id = id
	t.size = uint64(len(t.bytes))
	return nil
}

func (t *Transaction) Bytes() []byte { return t.bytes }

func (t *Transaction) Size() uint64 { return t.size }

func (t *Transaction) ID() ids.ID { return t.id }

func (t *Transaction) DigestHash() []byte { return t.digestHash }

// Execute runs the transaction against [db]. Callers provide [db] as the
// atomic unit: it must be discarded whenever an error is returned.
func (t *Transaction) Execute(g *Genesis, db database.Database, blockTime uint64) error {
	if err := t.UnsignedTransaction.ExecuteBase(g); err != nil {
		return err
	}
	sender := t.GetSender()
	if err := crypto.VerifyProof(sender, t.digestHash, t.Signature); err != nil {
		return err
	}
	cosigners := make([]crypto.PublicKey, 0, len(t.CoSignatures))
	for _, c := range t.CoSignatures {
		if err := crypto.VerifyProof(c.Signer, t.digestHash, c.Signature); err != nil {
			return err
		}
		cosigners = append(cosigners, c.Signer)
	}
	dup, err := HasTransaction(db, t.id)
	if err != nil {
		return err
	}
	if dup {
		return ErrDuplicateTx
	}
	context := &TransactionContext{
		Genesis:   g,
		Database:  db,
		BlockTime: blockTime,
		TxID:      t.id,
		Sender:    sender,
		CoSigners: cosigners,
	}
	if err := t.UnsignedTransaction.Execute(context); err != nil {
		return err
	}
	return SetTransaction(db, t.id, blockTime)
}

// TxID computes the identifier of [utx] without signing it.
func TxID(utx UnsignedTransaction) (ids.ID, error) {
	dh, err := DigestHash(utx)
	if err != nil {
		return ids.Empty, err
	}
	return ids.ToID(dh)
}
