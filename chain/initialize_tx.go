// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

var _ UnsignedTransaction = &InitializeTx{}

// InitializeTx creates the fee registry, the verifier roster and the treasury
// account, with the sender as admin.
type InitializeTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`
	Fee     uint64 `serialize:"true" json:"fee"`
}

func (i *InitializeTx) Execute(t *TransactionContext) error {
	_, exists, err := GetFeeRegistry(t.Database)
	if err != nil {
		return err
	}
	if exists {
		return ErrAlreadyInitialized
	}
	if err := PutFeeRegistry(t.Database, &FeeRegistry{
		Admin:      t.Sender,
		CurrentFee: i.Fee,
		CreatedAt:  t.BlockTime,
		UpdatedAt:  t.BlockTime,
	}); err != nil {
		return err
	}
	if err := PutVerifierRoster(t.Database, &VerifierRoster{
		Admin:     t.Sender,
		CreatedAt: t.BlockTime,
		UpdatedAt: t.BlockTime,
	}); err != nil {
		return err
	}
	// Genesis allocations may already have funded the treasury.
	if _, err := ModifyBalance(t.Database, TreasuryAddress(), true, 0); err != nil {
		return err
	}
	return t.emit(&Event{
		Typ:     EventFeeUpdated,
		Address: FeeRegistryAddress(),
		NewFee:  i.Fee,
	})
}

func (i *InitializeTx) Copy() UnsignedTransaction {
	return &InitializeTx{
		BaseTx: i.BaseTx.Copy(),
		Fee:    i.Fee,
	}
}
