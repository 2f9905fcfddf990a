// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

var _ UnsignedTransaction = &DeactivateTx{}

type DeactivateTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`
	Prefix  string `serialize:"true" json:"prefix"`
}

func (d *DeactivateTx) Execute(t *TransactionContext) error {
	return adminTransition(t, d.Prefix, Deactivate, EventDeactivated)
}

func (d *DeactivateTx) Copy() UnsignedTransaction {
	return &DeactivateTx{
		BaseTx: d.BaseTx.Copy(),
		Prefix: d.Prefix,
	}
}

// adminTransition moves a record along [a] on behalf of the admin. Fee
// accounting is untouched but the pause gate still applies.
func adminTransition(t *TransactionContext, prefix string, a Action, typ string) error {
	reg, err := requireAdmin(t)
	if err != nil {
		return err
	}
	if err := requireUnpaused(reg); err != nil {
		return err
	}
	r, err := loadPrefix(t, prefix)
	if err != nil {
		return err
	}
	status, err := Transition(r.Status, a)
	if err != nil {
		return err
	}
	r.Status = status
	r.UpdatedAt = t.BlockTime
	if err := PutPrefixRecord(t.Database, r); err != nil {
		return err
	}
	return t.emit(&Event{
		Typ:     typ,
		Prefix:  r.Prefix,
		Address: PrefixAddress(r.Prefix),
		Owner:   r.Owner,
	})
}
