// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/prefixvm/crypto"
)

var _ UnsignedTransaction = &WithdrawTreasuryTx{}

type WithdrawTreasuryTx struct {
	*BaseTx   `serialize:"true" json:"baseTx"`
	Amount    uint64           `serialize:"true" json:"amount"`
	Recipient crypto.PublicKey `serialize:"true" json:"recipient"`
}

func (w *WithdrawTreasuryTx) Execute(t *TransactionContext) error {
	r, err := requireAdmin(t)
	if err != nil {
		return err
	}
	if err := requireUnpaused(r); err != nil {
		return err
	}
	if w.Recipient == crypto.EmptyPublicKey {
		return ErrInvalidTreasuryAccount
	}
	if w.Amount == 0 {
		return ErrNonActionable
	}
	if err := payFromTreasury(t, AccountAddress(w.Recipient), w.Amount, t.Genesis.TreasuryReserve); err != nil {
		return err
	}
	return t.emit(&Event{
		Typ:       EventTreasuryWithdrawn,
		Address:   TreasuryAddress(),
		Recipient: w.Recipient,
		Amount:    w.Amount,
	})
}

func (w *WithdrawTreasuryTx) Copy() UnsignedTransaction {
	return &WithdrawTreasuryTx{
		BaseTx:    w.BaseTx.Copy(),
		Amount:    w.Amount,
		Recipient: w.Recipient,
	}
}
