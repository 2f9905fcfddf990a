// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ethereum/go-ethereum/common"
)

var _ UnsignedTransaction = &ApproveTx{}

type ApproveTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`
	Prefix  string      `serialize:"true" json:"prefix"`
	RefHash common.Hash `serialize:"true" json:"refHash"`
}

func (a *ApproveTx) Execute(t *TransactionContext) error {
	reg, err := loadRegistry(t)
	if err != nil {
		return err
	}
	if err := requireUnpaused(reg); err != nil {
		return err
	}
	if err := requireVerifier(t); err != nil {
		return err
	}
	r, err := loadPrefix(t, a.Prefix)
	if err != nil {
		return err
	}
	status, err := Transition(r.Status, Approve)
	if err != nil {
		return err
	}
	if r.Expired(t.BlockTime) {
		return ErrPrefixExpired
	}
	r.Status = status
	r.RefHash = a.RefHash
	r.ExpiryAt = 0
	if r.ApprovedAt == 0 {
		r.ApprovedAt = t.BlockTime
	}
	r.UpdatedAt = t.BlockTime
	if err := PutPrefixRecord(t.Database, r); err != nil {
		return err
	}
	return t.emit(&Event{
		Typ:           EventApproved,
		Prefix:        r.Prefix,
		Address:       PrefixAddress(r.Prefix),
		Owner:         r.Owner,
		Verifier:      t.Sender,
		RefHash:       a.RefHash,
		AuthorityKeys: r.AuthorityKeys,
	})
}

func (a *ApproveTx) Copy() UnsignedTransaction {
	return &ApproveTx{
		BaseTx:  a.BaseTx.Copy(),
		Prefix:  a.Prefix,
		RefHash: a.RefHash,
	}
}
