// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"

	"github.com/ava-labs/prefixvm/crypto"
)

// txDomain separates transaction digests from any other message signed with
// the same key, such as the owner's proof over a metadata hash.
var txDomain = []byte("prefixvm/tx")

// DigestHash is the message the sender and every co-signer sign:
// sha3(txDomain || magic || codec bytes).
func DigestHash(utx UnsignedTransaction) ([]byte, error) {
	b, err := Marshal(utx)
	if err != nil {
		return nil, err
	}
	magic := make([]byte, 8)
	binary.BigEndian.PutUint64(magic, utx.GetMagic())

	h := sha3.New256()
	h.Write(txDomain)
	h.Write(magic)
	h.Write(b)
	return h.Sum(nil), nil
}

// Sign produces an initialized transaction signed by [priv], which must be
// the sender of [utx], and co-signed by [cosigners].
func Sign(utx UnsignedTransaction, priv *crypto.PrivateKey, cosigners ...*crypto.PrivateKey) (*Transaction, error) {
	dh, err := DigestHash(utx)
	if err != nil {
		return nil, err
	}
	tx := &Transaction{
		UnsignedTransaction: utx,
		Signature:           priv.Sign(dh),
	}
	for _, c := range cosigners {
		tx.CoSignatures = append(tx.CoSignatures, &CoSignature{
			Signer:    c.PublicKey(),
			Signature: c.Sign(dh),
		})
	}
	return tx, tx.Init()
}
