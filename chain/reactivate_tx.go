// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

var _ UnsignedTransaction = &ReactivateTx{}

type ReactivateTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`
	Prefix  string `serialize:"true" json:"prefix"`
}

func (r *ReactivateTx) Execute(t *TransactionContext) error {
	return adminTransition(t, r.Prefix, Reactivate, EventReactivated)
}

func (r *ReactivateTx) Copy() UnsignedTransaction {
	return &ReactivateTx{
		BaseTx: r.BaseTx.Copy(),
		Prefix: r.Prefix,
	}
}
