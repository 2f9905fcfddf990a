// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

var _ UnsignedTransaction = &SetPauseTx{}

// SetPauseTx toggles the gate on fee operations. Setting the current value
// again succeeds.
type SetPauseTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`
	Paused  bool `serialize:"true" json:"paused"`
}

func (s *SetPauseTx) Execute(t *TransactionContext) error {
	r, err := requireAdmin(t)
	if err != nil {
		return err
	}
	r.Paused = s.Paused
	r.UpdatedAt = t.BlockTime
	if err := PutFeeRegistry(t.Database, r); err != nil {
		return err
	}
	return t.emit(&Event{
		Typ:     EventPauseUpdated,
		Address: FeeRegistryAddress(),
		Paused:  s.Paused,
	})
}

func (s *SetPauseTx) Copy() UnsignedTransaction {
	return &SetPauseTx{
		BaseTx: s.BaseTx.Copy(),
		Paused: s.Paused,
	}
}
