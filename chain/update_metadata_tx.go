// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/ava-labs/prefixvm/crypto"
	"github.com/ava-labs/prefixvm/parser"
)

var _ UnsignedTransaction = &UpdateMetadataTx{}

// UpdateMetadataTx replaces the metadata of a record. An Active record goes
// back to Pending for review.
type UpdateMetadataTx struct {
	*BaseTx        `serialize:"true" json:"baseTx"`
	Prefix         string `serialize:"true" json:"prefix"`
	MetadataURI    string `serialize:"true" json:"metadataUri"`
	MetadataHash   []byte `serialize:"true" json:"metadataHash"`
	OwnerSignature []byte `serialize:"true" json:"ownerSignature"`
}

func (u *UpdateMetadataTx) Execute(t *TransactionContext) error {
	if _, err := loadRegistry(t); err != nil {
		return err
	}
	r, err := loadPrefix(t, u.Prefix)
	if err != nil {
		return err
	}
	if err := verifyOwner(t, r); err != nil {
		return err
	}
	status, err := Transition(r.Status, UpdateMetadata)
	if err != nil {
		return err
	}
	if err := parser.CheckMetadata(u.MetadataURI, u.MetadataHash); err != nil {
		return err
	}
	if err := crypto.VerifyProof(r.Owner, u.MetadataHash, u.OwnerSignature); err != nil {
		return err
	}
	if r.Status == Active && status == Pending {
		r.RefHash = common.Hash{}
		r.ExpiryAt = t.BlockTime + t.Genesis.PendingExpiry
	}
	old := r.MetadataHash
	r.Status = status
	r.MetadataURI = u.MetadataURI
	r.MetadataHash = common.BytesToHash(u.MetadataHash)
	r.UpdatedAt = t.BlockTime
	if err := PutPrefixRecord(t.Database, r); err != nil {
		return err
	}
	return t.emit(&Event{
		Typ:             EventMetadataUpdated,
		Prefix:          r.Prefix,
		Address:         PrefixAddress(r.Prefix),
		Owner:           r.Owner,
		MetadataURI:     r.MetadataURI,
		MetadataHash:    r.MetadataHash,
		OldMetadataHash: old,
	})
}

func (u *UpdateMetadataTx) Copy() UnsignedTransaction {
	h := make([]byte, len(u.MetadataHash))
	copy(h, u.MetadataHash)
	sig := make([]byte, len(u.OwnerSignature))
	copy(sig, u.OwnerSignature)
	return &UpdateMetadataTx{
		BaseTx:         u.BaseTx.Copy(),
		Prefix:         u.Prefix,
		MetadataURI:    u.MetadataURI,
		MetadataHash:   h,
		OwnerSignature: sig,
	}
}
