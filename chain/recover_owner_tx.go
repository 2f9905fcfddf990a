// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/prefixvm/crypto"
)

var _ UnsignedTransaction = &RecoverOwnerTx{}

// RecoverOwnerTx reassigns a record to [NewOwner]. It is sent by the admin
// and must be co-signed by [NewOwner], who pays the current fee.
type RecoverOwnerTx struct {
	*BaseTx  `serialize:"true" json:"baseTx"`
	Prefix   string           `serialize:"true" json:"prefix"`
	NewOwner crypto.PublicKey `serialize:"true" json:"newOwner"`
}

func (r *RecoverOwnerTx) Execute(t *TransactionContext) error {
	reg, err := requireAdmin(t)
	if err != nil {
		return err
	}
	if err := requireUnpaused(reg); err != nil {
		return err
	}
	if r.NewOwner == crypto.EmptyPublicKey || !t.signedBy(r.NewOwner) {
		return ErrUnauthorizedOwnerAction
	}
	p, err := loadPrefix(t, r.Prefix)
	if err != nil {
		return err
	}
	status, err := Transition(p.Status, RecoverOwner)
	if err != nil {
		return err
	}
	if p.Owner == r.NewOwner {
		return ErrNonActionable
	}
	if err := chargeFee(t, r.NewOwner, reg.CurrentFee); err != nil {
		return err
	}
	old := p.Owner
	p.Owner = r.NewOwner
	p.Status = status
	p.UpdatedAt = t.BlockTime
	if err := PutPrefixRecord(t.Database, p); err != nil {
		return err
	}
	return t.emit(&Event{
		Typ:      EventOwnerRecovered,
		Prefix:   p.Prefix,
		Address:  PrefixAddress(p.Prefix),
		Owner:    old,
		NewOwner: r.NewOwner,
		Amount:   reg.CurrentFee,
	})
}

func (r *RecoverOwnerTx) Copy() UnsignedTransaction {
	return &RecoverOwnerTx{
		BaseTx:   r.BaseTx.Copy(),
		Prefix:   r.Prefix,
		NewOwner: r.NewOwner,
	}
}
