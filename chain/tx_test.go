// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ava-labs/avalanchego/database/versiondb"
	"golang.org/x/crypto/sha3"

	"github.com/ava-labs/prefixvm/crypto"
)

func TestTransactionExecute(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	admin := e.admin.PublicKey()

	wrongSig, err := Sign(&UpdateFeeTx{BaseTx: &BaseTx{Sender: admin, Magic: e.g.Magic, Nonce: 1}, Fee: 1}, e.other)
	if err != nil {
		t.Fatal(err)
	}
	wrongMagic, err := Sign(&UpdateFeeTx{BaseTx: &BaseTx{Sender: admin, Magic: e.g.Magic + 1, Nonce: 2}, Fee: 1}, e.admin)
	if err != nil {
		t.Fatal(err)
	}
	noSender, err := Sign(&UpdateFeeTx{BaseTx: &BaseTx{Magic: e.g.Magic, Nonce: 3}, Fee: 1}, e.admin)
	if err != nil {
		t.Fatal(err)
	}
	badCoSig, err := Sign(&UpdateFeeTx{BaseTx: &BaseTx{Sender: admin, Magic: e.g.Magic, Nonce: 4}, Fee: 1}, e.admin, e.other)
	if err != nil {
		t.Fatal(err)
	}
	badCoSig.CoSignatures[0].Signer = e.owner.PublicKey()
	valid, err := Sign(&UpdateFeeTx{BaseTx: &BaseTx{Sender: admin, Magic: e.g.Magic, Nonce: 5}, Fee: 1}, e.admin)
	if err != nil {
		t.Fatal(err)
	}
	resigned, err := Sign(&UpdateFeeTx{BaseTx: &BaseTx{Sender: admin, Magic: e.g.Magic, Nonce: 5}, Fee: 1}, e.admin, e.other)
	if err != nil {
		t.Fatal(err)
	}

	tt := []struct {
		tx  *Transaction
		err error
	}{
		{tx: wrongSig, err: ErrInvalidSignature},
		{tx: wrongMagic, err: ErrInvalidMagic},
		{tx: noSender, err: ErrInvalidSender},
		{tx: badCoSig, err: ErrInvalidSignature},
		{tx: valid, err: nil},
		{tx: valid, err: ErrDuplicateTx},
		{tx: resigned, err: ErrDuplicateTx},
	}
	for i, tv := range tt {
		vdb := versiondb.New(e.db)
		err := tv.tx.Execute(e.g, vdb, 2)
		if !errors.Is(err, tv.err) {
			t.Fatalf("#%d: tx.Execute err expected %v, got %v", i, tv.err, err)
		}
		if err != nil {
			vdb.Abort()
			continue
		}
		if err := vdb.Commit(); err != nil {
			t.Fatal(err)
		}
	}
}

func TestTransactionCodec(t *testing.T) {
	t.Parallel()

	priv, err := crypto.NewPrivateKey()
	if err != nil {
		t.Fatal(err)
	}
	utx := &SubmitTx{
		BaseTx:        &BaseTx{Sender: priv.PublicKey(), Magic: DefaultMagic, Nonce: 7},
		Prefix:        "MYAPP",
		MetadataURI:   testURI,
		MetadataHash:  testHash,
		AuthorityKeys: []crypto.PublicKey{priv.PublicKey()},
	}
	utx.OwnerSignature = priv.Sign(testHash)
	tx, err := Sign(utx, priv)
	if err != nil {
		t.Fatal(err)
	}

	var parsed Transaction
	if _, err := Unmarshal(tx.Bytes(), &parsed); err != nil {
		t.Fatal(err)
	}
	if err := parsed.Init(); err != nil {
		t.Fatal(err)
	}
	if parsed.ID() != tx.ID() {
		t.Fatalf("expected id %s, got %s", tx.ID(), parsed.ID())
	}
	id, err := TxID(utx)
	if err != nil {
		t.Fatal(err)
	}
	if id != tx.ID() {
		t.Fatalf("expected id %s, got %s", tx.ID(), id)
	}
	s, ok := parsed.UnsignedTransaction.(*SubmitTx)
	if !ok {
		t.Fatalf("unexpected type %T", parsed.UnsignedTransaction)
	}
	if s.Prefix != "MYAPP" || s.Nonce != 7 || len(s.AuthorityKeys) != 1 {
		t.Fatalf("unexpected tx %+v", s)
	}
}

func TestMetadataProofIsNotTxSignature(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	e.mustExec(1, e.owner, e.submitTx("MYAPP", e.owner))
	e.mustExec(2, e.verifier, &ApproveTx{BaseTx: &BaseTx{}, Prefix: "MYAPP"})

	// A transaction the owner never signed, whose digest the owner is
	// tricked into signing as a metadata hash.
	forged := &UpdateAuthorityTx{
		BaseTx:        &BaseTx{Sender: e.owner.PublicKey(), Magic: e.g.Magic, Nonce: 1_000},
		Prefix:        "MYAPP",
		AuthorityKeys: []crypto.PublicKey{e.other.PublicKey()},
	}
	dh, err := DigestHash(forged)
	if err != nil {
		t.Fatal(err)
	}
	upd := &UpdateMetadataTx{
		BaseTx:         &BaseTx{},
		Prefix:         "MYAPP",
		MetadataURI:    testURI,
		MetadataHash:   dh,
		OwnerSignature: e.owner.Sign(dh),
	}
	e.mustExec(3, e.owner, upd)

	tx := NewTx(forged, upd.OwnerSignature)
	if err := tx.Init(); err != nil {
		t.Fatal(err)
	}
	vdb := versiondb.New(e.db)
	defer vdb.Abort()
	if err := tx.Execute(e.g, vdb, 4); !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("expected %v, got %v", ErrInvalidSignature, err)
	}
	if r := e.record("MYAPP"); r.HasAuthorityKey(e.other.PublicKey()) {
		t.Fatal("authority keys changed by a lifted proof")
	}
}

func TestDigestHashDomain(t *testing.T) {
	t.Parallel()

	priv, err := crypto.NewPrivateKey()
	if err != nil {
		t.Fatal(err)
	}
	utx := &UpdateFeeTx{BaseTx: &BaseTx{Sender: priv.PublicKey(), Magic: DefaultMagic, Nonce: 1}, Fee: 5}
	dh, err := DigestHash(utx)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Marshal(utx)
	if err != nil {
		t.Fatal(err)
	}
	if raw := sha3.Sum256(b); bytes.Equal(raw[:], dh) {
		t.Fatal("digest must not be the bare codec hash")
	}

	utx.Magic++
	dh2, err := DigestHash(utx)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(dh, dh2) {
		t.Fatal("digest must commit to magic")
	}
}
