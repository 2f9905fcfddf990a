// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"errors"
	"fmt"
)

var _ UnsignedTransaction = &RefundTx{}

// RefundTx returns the stored fee of a rejected (or expired, never approved)
// record to its owner and frees the prefix.
type RefundTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`
	Prefix  string `serialize:"true" json:"prefix"`
}

func (r *RefundTx) Execute(t *TransactionContext) error {
	reg, err := loadRegistry(t)
	if err != nil {
		return err
	}
	if err := requireUnpaused(reg); err != nil {
		return err
	}
	p, err := loadPrefix(t, r.Prefix)
	if err != nil {
		return err
	}
	if err := verifyOwner(t, p); err != nil {
		return err
	}
	if _, err := Transition(p.Status, Refund); err != nil {
		return err
	}
	if !p.Refundable(t.BlockTime) {
		return fmt.Errorf("%w: %s record not expired", ErrRefundNotAllowed, p.Status)
	}
	if p.FeePaid == 0 {
		return fmt.Errorf("%w: no fee to refund", ErrRefundNotAllowed)
	}
	// The reserve only binds admin withdrawals.
	err = payFromTreasury(t, AccountAddress(p.Owner), p.FeePaid, 0)
	if errors.Is(err, ErrInsufficientBalance) {
		return fmt.Errorf("%w: %v", ErrInsufficientTreasuryBalance, err)
	}
	if err != nil {
		return err
	}
	if err := DeletePrefixRecord(t.Database, p.Prefix); err != nil {
		return err
	}
	return t.emit(&Event{
		Typ:     EventRefunded,
		Prefix:  p.Prefix,
		Address: PrefixAddress(p.Prefix),
		Owner:   p.Owner,
		Amount:  p.FeePaid,
	})
}

func (r *RefundTx) Copy() UnsignedTransaction {
	return &RefundTx{
		BaseTx: r.BaseTx.Copy(),
		Prefix: r.Prefix,
	}
}
