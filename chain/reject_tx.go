// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"fmt"
)

var _ UnsignedTransaction = &RejectTx{}

type RejectTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`
	Prefix  string `serialize:"true" json:"prefix"`
	Reason  string `serialize:"true" json:"reason"`
}

func (r *RejectTx) Execute(t *TransactionContext) error {
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
	if len(r.Reason) > MaxReasonSize {
		return fmt.Errorf("%w: %d > %d", ErrReasonTooLong, len(r.Reason), MaxReasonSize)
	}
	p, err := loadPrefix(t, r.Prefix)
	if err != nil {
		return err
	}
	status, err := Transition(p.Status, Reject)
	if err != nil {
		return err
	}
	p.Status = status
	p.UpdatedAt = t.BlockTime
	if err := PutPrefixRecord(t.Database, p); err != nil {
		return err
	}
	return t.emit(&Event{
		Typ:      EventRejected,
		Prefix:   p.Prefix,
		Address:  PrefixAddress(p.Prefix),
		Owner:    p.Owner,
		Verifier: t.Sender,
		Reason:   r.Reason,
	})
}

func (r *RejectTx) Copy() UnsignedTransaction {
	return &RejectTx{
		BaseTx: r.BaseTx.Copy(),
		Prefix: r.Prefix,
		Reason: r.Reason,
	}
}
