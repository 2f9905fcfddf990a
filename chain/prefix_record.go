// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/ava-labs/prefixvm/crypto"
)

// PrefixRecord binds a normalized prefix to its owner, metadata and authority
// keys. It lives at PrefixAddress(Prefix).
type PrefixRecord struct {
	Owner crypto.PublicKey `serialize:"true" json:"owner"`

	// Prefix is the normalized ^[A-Z0-9]{3,12}$ key the record address is
	// derived from. It never changes.
	Prefix string `serialize:"true" json:"prefix"`

	MetadataURI  string      `serialize:"true" json:"metadataUri"`
	MetadataHash common.Hash `serialize:"true" json:"metadataHash"`

	// RefHash is the verifier reference stored on approval.
	RefHash common.Hash `serialize:"true" json:"refHash"`

	Status        Status             `serialize:"true" json:"status"`
	AuthorityKeys []crypto.PublicKey `serialize:"true" json:"authorityKeys"`

	// FeePaid is captured at submission and never updated.
	FeePaid uint64 `serialize:"true" json:"feePaid"`

	// ExpiryAt is the review deadline while Pending; 0 otherwise.
	ExpiryAt   uint64 `serialize:"true" json:"expiryAt,omitempty"`
	ApprovedAt uint64 `serialize:"true" json:"approvedAt,omitempty"`
	CreatedAt  uint64 `serialize:"true" json:"createdAt"`
	UpdatedAt  uint64 `serialize:"true" json:"updatedAt"`
}

// Expired reports whether the review deadline has passed at [now].
func (r *PrefixRecord) Expired(now uint64) bool {
	return r.ExpiryAt != 0 && now > r.ExpiryAt
}

// Refundable reports whether the stored fee may be returned at [now]:
// rejected records always, Pending records only after the review deadline
// passed without any approval.
func (r *PrefixRecord) Refundable(now uint64) bool {
	switch r.Status {
	case Rejected:
		return true
	case Pending:
		return r.ApprovedAt == 0 && r.Expired(now)
	default:
		return false
	}
}

func (r *PrefixRecord) HasAuthorityKey(k crypto.PublicKey) bool {
	for _, a := range r.AuthorityKeys {
		if a == k {
			return true
		}
	}
	return false
}
