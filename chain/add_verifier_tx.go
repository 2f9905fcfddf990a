// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/prefixvm/crypto"
)

var _ UnsignedTransaction = &AddVerifierTx{}

type AddVerifierTx struct {
	*BaseTx  `serialize:"true" json:"baseTx"`
	Verifier crypto.PublicKey `serialize:"true" json:"verifier"`
}

func (a *AddVerifierTx) Execute(t *TransactionContext) error {
	if _, err := requireAdmin(t); err != nil {
		return err
	}
	if a.Verifier == crypto.EmptyPublicKey {
		return ErrInvalidKeyFormat
	}
	roster, exists, err := GetVerifierRoster(t.Database)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotInitialized
	}
	if err := roster.Add(a.Verifier); err != nil {
		return err
	}
	roster.UpdatedAt = t.BlockTime
	if err := PutVerifierRoster(t.Database, roster); err != nil {
		return err
	}
	return t.emit(&Event{
		Typ:      EventVerifierAdded,
		Address:  VerifiersAddress(),
		Verifier: a.Verifier,
	})
}

func (a *AddVerifierTx) Copy() UnsignedTransaction {
	return &AddVerifierTx{
		BaseTx:   a.BaseTx.Copy(),
		Verifier: a.Verifier,
	}
}
