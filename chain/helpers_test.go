// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"bytes"
	"testing"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/database/versiondb"

	"github.com/ava-labs/prefixvm/crypto"
)

const (
	testFee     = 100
	testBalance = 10_000
)

var (
	testURI   = "ipfs://bafybeigdyrzt5sfp7udm7hu76uh7y26nf3efuylqabf3oclgtqy55fbzdi"
	testHash  = bytes.Repeat([]byte{1}, 32)
	testHash2 = bytes.Repeat([]byte{3}, 32)
)

type testEnv struct {
	t  *testing.T
	g  *Genesis
	db database.Database

	admin    *crypto.PrivateKey
	verifier *crypto.PrivateKey
	owner    *crypto.PrivateKey
	other    *crypto.PrivateKey

	nonce uint64
}

func newKey(t *testing.T) *crypto.PrivateKey {
	t.Helper()
	k, err := crypto.NewPrivateKey()
	if err != nil {
		t.Fatal(err)
	}
	return k
}

// newTestEnv returns an initialized protocol with one verifier and funded
// owner/other accounts.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	e := &testEnv{
		t:        t,
		g:        DefaultGenesis(),
		db:       memdb.New(),
		admin:    newKey(t),
		verifier: newKey(t),
		owner:    newKey(t),
		other:    newKey(t),
	}
	t.Cleanup(func() { e.db.Close() })
	e.g.Allocations = []*Allocation{
		{Address: e.owner.PublicKey(), Balance: testBalance},
		{Address: e.other.PublicKey(), Balance: testBalance},
	}
	if err := e.g.Load(e.db); err != nil {
		t.Fatal(err)
	}
	e.mustExec(1, e.admin, &InitializeTx{BaseTx: &BaseTx{}, Fee: testFee})
	e.mustExec(1, e.admin, &AddVerifierTx{BaseTx: &BaseTx{}, Verifier: e.verifier.PublicKey()})
	return e
}

// exec signs [utx] and runs it in its own atomic unit.
func (e *testEnv) exec(blockTime uint64, signer *crypto.PrivateKey, utx UnsignedTransaction, cosigners ...*crypto.PrivateKey) error {
	e.nonce++
	utx.SetSender(signer.PublicKey())
	utx.SetMagic(e.g.Magic)
	utx.SetNonce(e.nonce)
	tx, err := Sign(utx, signer, cosigners...)
	if err != nil {
		e.t.Fatal(err)
	}
	vdb := versiondb.New(e.db)
	if err := tx.Execute(e.g, vdb, blockTime); err != nil {
		vdb.Abort()
		return err
	}
	return vdb.Commit()
}

func (e *testEnv) mustExec(blockTime uint64, signer *crypto.PrivateKey, utx UnsignedTransaction, cosigners ...*crypto.PrivateKey) {
	e.t.Helper()
	if err := e.exec(blockTime, signer, utx, cosigners...); err != nil {
		e.t.Fatalf("unexpected error executing %T: %v", utx, err)
	}
}

func (e *testEnv) submitTx(prefix string, signer *crypto.PrivateKey) *SubmitTx {
	return &SubmitTx{
		BaseTx:         &BaseTx{},
		Prefix:         prefix,
		MetadataURI:    testURI,
		MetadataHash:   testHash,
		OwnerSignature: signer.Sign(testHash),
	}
}

func (e *testEnv) record(prefix string) *PrefixRecord {
	e.t.Helper()
	r, exists, err := GetPrefixRecord(e.db, prefix)
	if err != nil {
		e.t.Fatal(err)
	}
	if !exists {
		e.t.Fatalf("record %s missing", prefix)
	}
	return r
}

func (e *testEnv) balance(k *crypto.PrivateKey) uint64 {
	e.t.Helper()
	b, err := GetBalance(e.db, AccountAddress(k.PublicKey()))
	if err != nil {
		e.t.Fatal(err)
	}
	return b
}

func (e *testEnv) treasury() uint64 {
	e.t.Helper()
	b, err := GetBalance(e.db, TreasuryAddress())
	if err != nil {
		e.t.Fatal(err)
	}
	return b
}

func (e *testEnv) lastEvent() *Event {
	e.t.Helper()
	n, err := EventCount(e.db)
	if err != nil {
		e.t.Fatal(err)
	}
	if n == 0 {
		e.t.Fatal("no events")
	}
	events, err := GetEvents(e.db, n-1, 1)
	if err != nil {
		e.t.Fatal(err)
	}
	return events[0]
}

func (e *testEnv) eventCount() uint64 {
	e.t.Helper()
	n, err := EventCount(e.db)
	if err != nil {
		e.t.Fatal(err)
	}
	return n
}
