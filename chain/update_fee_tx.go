// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

var _ UnsignedTransaction = &UpdateFeeTx{}

type UpdateFeeTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`
	Fee     uint64 `serialize:"true" json:"fee"`
}

// Execute is permitted while paused. Existing records keep the fee they paid.
func (u *UpdateFeeTx) Execute(t *TransactionContext) error {
	r, err := requireAdmin(t)
	if err != nil {
		return err
	}
	old := r.CurrentFee
	r.CurrentFee = u.Fee
	r.UpdatedAt = t.BlockTime
	if err := PutFeeRegistry(t.Database, r); err != nil {
		return err
	}
	return t.emit(&Event{
		Typ:     EventFeeUpdated,
		Address: FeeRegistryAddress(),
		OldFee:  old,
		NewFee:  u.Fee,
	})
}

func (u *UpdateFeeTx) Copy() UnsignedTransaction {
	return &UpdateFeeTx{
		BaseTx: u.BaseTx.Copy(),
		Fee:    u.Fee,
	}
}
