// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/prefixvm/crypto"
)

// VerifierRoster holds the identities allowed to approve or reject Pending
// records. Insertion order is preserved.
type VerifierRoster struct {
	Admin     crypto.PublicKey   `serialize:"true" json:"admin"`
	Verifiers []crypto.PublicKey `serialize:"true" json:"verifiers"`
	CreatedAt uint64             `serialize:"true" json:"createdAt"`
	UpdatedAt uint64             `serialize:"true" json:"updatedAt"`
}

func (r *VerifierRoster) Contains(v crypto.PublicKey) bool {
	return r.index(v) >= 0
}

func (r *VerifierRoster) index(v crypto.PublicKey) int {
	for i, k := range r.Verifiers {
		if k == v {
			return i
		}
	}
	return -1
}

// Add appends [v]. Duplicates and a full roster are rejected.
func (r *VerifierRoster) Add(v crypto.PublicKey) error {
	if r.Contains(v) {
		return ErrVerifierExists
	}
	if len(r.Verifiers) >= MaxVerifiers {
		return ErrVerifierRosterFull
	}
	r.Verifiers = append(r.Verifiers, v)
	return nil
}

// Remove deletes [v], keeping the order of the rest.
func (r *VerifierRoster) Remove(v crypto.PublicKey) error {
	i := r.index(v)
	if i < 0 {
		return ErrVerifierMissing
	}
	r.Verifiers = append(r.Verifiers[:i], r.Verifiers[i+1:]...)
	return nil
}
