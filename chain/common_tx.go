// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/prefixvm/crypto"
	"github.com/ava-labs/prefixvm/parser"
)

func loadRegistry(t *TransactionContext) (*FeeRegistry, error) {
	r, exists, err := GetFeeRegistry(t.Database)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNotInitialized
	}
	return r, nil
}

// requireAdmin loads the registry and checks the sender is its admin.
func requireAdmin(t *TransactionContext) (*FeeRegistry, error) {
	r, err := loadRegistry(t)
	if err != nil {
		return nil, err
	}
	if !r.IsAdmin(t.Sender) {
		return nil, ErrUnauthorizedAdmin
	}
	return r, nil
}

func requireUnpaused(r *FeeRegistry) error {
	if r.Paused {
		return ErrFeeOperationsPaused
	}
	return nil
}

func requireVerifier(t *TransactionContext) error {
	roster, exists, err := GetVerifierRoster(t.Database)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotInitialized
	}
	if !roster.Contains(t.Sender) {
		return ErrUnauthorizedVerifier
	}
	return nil
}

func loadPrefix(t *TransactionContext, prefix string) (*PrefixRecord, error) {
	if err := parser.CheckPrefix(prefix); err != nil {
		return nil, err
	}
	r, exists, err := GetPrefixRecord(t.Database, prefix)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrPrefixMissing
	}
	return r, nil
}

func verifyOwner(t *TransactionContext, r *PrefixRecord) error {
	if r.Owner != t.Sender {
		return ErrUnauthorizedOwnerAction
	}
	return nil
}

func checkAuthorityKeys(keys []crypto.PublicKey) error {
	if len(keys) > MaxAuthorityKeys {
		return fmt.Errorf("%w: %d > %d", ErrAuthorityKeysTooMany, len(keys), MaxAuthorityKeys)
	}
	seen := make(map[crypto.PublicKey]struct{}, len(keys))
	for _, k := range keys {
		if k == crypto.EmptyPublicKey {
			return ErrInvalidKeyFormat
		}
		if _, ok := seen[k]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateAuthorityKey, k)
		}
		seen[k] = struct{}{}
	}
	return nil
}

// chargeFee moves [fee] from [payer] into the treasury.
func chargeFee(t *TransactionContext, payer crypto.PublicKey, fee uint64) error {
	if fee == 0 {
		return fmt.Errorf("%w: fee not set", ErrInsufficientFee)
	}
	err := Transfer(t.Database, AccountAddress(payer), TreasuryAddress(), fee)
	if errors.Is(err, ErrInsufficientBalance) {
		return fmt.Errorf("%w: %v", ErrInsufficientFee, err)
	}
	return err
}

// payFromTreasury moves [amount] out of the treasury, never touching
// [reserve].
func payFromTreasury(t *TransactionContext, to ids.ID, amount uint64, reserve uint64) error {
	if to == TreasuryAddress() {
		return ErrInvalidTreasuryAccount
	}
	bal, err := GetBalance(t.Database, TreasuryAddress())
	if err != nil {
		return err
	}
	if bal < reserve || amount > bal-reserve {
		return fmt.Errorf("%w: balance=%d reserve=%d amount=%d", ErrInsufficientTreasuryBalance, bal, reserve, amount)
	}
	return Transfer(t.Database, TreasuryAddress(), to, amount)
}

func copyKeys(keys []crypto.PublicKey) []crypto.PublicKey {
	if len(keys) == 0 {
		return nil
	}
	c := make([]crypto.PublicKey, len(keys))
	copy(c, keys)
	return c
}
