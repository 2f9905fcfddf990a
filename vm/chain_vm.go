// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"fmt"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/prefixvm/chain"
	"github.com/ava-labs/prefixvm/crypto"
)

func (vm *VM) Genesis() *chain.Genesis {
	return vm.genesis
}

func txType(tx *chain.Transaction) string {
	return fmt.Sprintf("%T", tx.UnsignedTransaction)
}

// GetPrefix returns the committed record for a normalized [prefix].
func (vm *VM) GetPrefix(prefix string) (*chain.PrefixRecord, bool, error) {
	vm.execLock.RLock()
	defer vm.execLock.RUnlock()

	if v, ok := vm.records.Get(prefix); ok {
		return v.(*chain.PrefixRecord), true, nil
	}
	r, exists, err := chain.GetPrefixRecord(vm.db, prefix)
	if err != nil || !exists {
		return nil, false, err
	}
	vm.records.Put(prefix, r)
	return r, true, nil
}

func (vm *VM) GetFeeRegistry() (*chain.FeeRegistry, bool, error) {
	vm.execLock.RLock()
	defer vm.execLock.RUnlock()
	return chain.GetFeeRegistry(vm.db)
}

func (vm *VM) GetVerifierRoster() (*chain.VerifierRoster, bool, error) {
	vm.execLock.RLock()
	defer vm.execLock.RUnlock()
	return chain.GetVerifierRoster(vm.db)
}

func (vm *VM) TreasuryBalance() (uint64, error) {
	vm.execLock.RLock()
	defer vm.execLock.RUnlock()
	return chain.GetBalance(vm.db, chain.TreasuryAddress())
}

func (vm *VM) Balance(pk crypto.PublicKey) (uint64, error) {
	vm.execLock.RLock()
	defer vm.execLock.RUnlock()
	return chain.GetBalance(vm.db, chain.AccountAddress(pk))
}

func (vm *VM) HasTx(txID ids.ID) (bool, error) {
	vm.execLock.RLock()
	defer vm.execLock.RUnlock()
	return chain.HasTransaction(vm.db, txID)
}

// Events returns up to [limit] events starting at [start] and the total
// number of events appended so far.
func (vm *VM) Events(start uint64, limit int) ([]*chain.Event, uint64, error) {
	if limit <= 0 || limit > vm.config.MaxEventsLimit {
		return nil, 0, fmt.Errorf("%w: %d (max %d)", ErrInvalidLimit, limit, vm.config.MaxEventsLimit)
	}
	vm.execLock.RLock()
	defer vm.execLock.RUnlock()

	events, err := chain.GetEvents(vm.db, start, limit)
	if err != nil {
		return nil, 0, err
	}
	count, err := chain.EventCount(vm.db)
	return events, count, err
}
