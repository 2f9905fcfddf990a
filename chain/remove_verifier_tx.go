// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/prefixvm/crypto"
)

var _ UnsignedTransaction = &RemoveVerifierTx{}

type RemoveVerifierTx struct {
	*BaseTx  `serialize:"true" json:"baseTx"`
	Verifier crypto.PublicKey `serialize:"true" json:"verifier"`
}

func (r *RemoveVerifierTx) Execute(t *TransactionContext) error {
	if _, err := requireAdmin(t); err != nil {
		return err
	}
	roster, exists, err := GetVerifierRoster(t.Database)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotInitialized
	}
	if err := roster.Remove(r.Verifier); err != nil {
		return err
	}
	roster.UpdatedAt = t.BlockTime
	if err := PutVerifierRoster(t.Database, roster); err != nil {
		return err
	}
	return t.emit(&Event{
		Typ:      EventVerifierRemoved,
		Address:  VerifiersAddress(),
		Verifier: r.Verifier,
	})
}

func (r *RemoveVerifierTx) Copy() UnsignedTransaction {
	return &RemoveVerifierTx{
		BaseTx:   r.BaseTx.Copy(),
		Verifier: r.Verifier,
	}
}
