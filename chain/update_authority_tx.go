// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/prefixvm/crypto"
)

var _ UnsignedTransaction = &UpdateAuthorityTx{}

// UpdateAuthorityTx replaces the authority keys of a record without changing
// its status. It is not a fee operation and is permitted while paused.
type UpdateAuthorityTx struct {
	*BaseTx       `serialize:"true" json:"baseTx"`
	Prefix        string             `serialize:"true" json:"prefix"`
	AuthorityKeys []crypto.PublicKey `serialize:"true" json:"authorityKeys"`
}

func (u *UpdateAuthorityTx) Execute(t *TransactionContext) error {
	if _, err := loadRegistry(t); err != nil {
		return err
	}
	r, err := loadPrefix(t, u.Prefix)
	if err != nil {
		return err
	}
	if err := verifyOwner(t, r); err != nil {
		return err
	}
	if err := checkAuthorityKeys(u.AuthorityKeys); err != nil {
		return err
	}
	status, err := Transition(r.Status, UpdateAuthority)
	if err != nil {
		return err
	}
	old := r.AuthorityKeys
	r.Status = status
	r.AuthorityKeys = copyKeys(u.AuthorityKeys)
	r.UpdatedAt = t.BlockTime
	if err := PutPrefixRecord(t.Database, r); err != nil {
		return err
	}
	return t.emit(&Event{
		Typ:              EventAuthorityUpdated,
		Prefix:           r.Prefix,
		Address:          PrefixAddress(r.Prefix),
		Owner:            r.Owner,
		AuthorityKeys:    r.AuthorityKeys,
		OldAuthorityKeys: old,
	})
}

func (u *UpdateAuthorityTx) Copy() UnsignedTransaction {
	return &UpdateAuthorityTx{
		BaseTx:        u.BaseTx.Copy(),
		Prefix:        u.Prefix,
		AuthorityKeys: copyKeys(u.AuthorityKeys),
	}
}
