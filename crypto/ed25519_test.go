// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package crypto_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/ava-labs/prefixvm/crypto"
)

func TestVerify(t *testing.T) {
	t.Parallel()

	pk, err := crypto.NewPrivateKey()
	if err != nil {
		t.Fatal(err)
	}
	other, err := crypto.NewPrivateKey()
	if err != nil {
		t.Fatal(err)
	}
	msg := bytes.Repeat([]byte{1}, 32)
	sig := pk.Sign(msg)

	tt := []struct {
		signer crypto.PublicKey
		msg    []byte
		sig    []byte
		err    error
	}{
		{signer: pk.PublicKey(), msg: msg, sig: sig},
		{signer: other.PublicKey(), msg: msg, sig: sig, err: crypto.ErrInvalidSignature},
		{signer: pk.PublicKey(), msg: bytes.Repeat([]byte{2}, 32), sig: sig, err: crypto.ErrInvalidSignature},
		{signer: pk.PublicKey(), msg: msg, sig: sig[:10], err: crypto.ErrInvalidSignature},
		{signer: pk.PublicKey(), msg: msg, sig: nil, err: crypto.ErrInvalidSignature},
		{signer: crypto.EmptyPublicKey, msg: msg, sig: sig, err: crypto.ErrInvalidSignature},
	}
	for i, tv := range tt {
		err := crypto.VerifyProof(tv.signer, tv.msg, tv.sig)
		if !errors.Is(err, tv.err) {
			t.Fatalf("#%d: err expected %v, got %v", i, tv.err, err)
		}
	}
}

func TestAddressRoundTrip(t *testing.T) {
	t.Parallel()

	pk, err := crypto.NewPrivateKey()
	if err != nil {
		t.Fatal(err)
	}
	addr := pk.PublicKey().Address()
	parsed, err := crypto.ParsePublicKey(addr)
	if err != nil {
		t.Fatal(err)
	}
	if parsed != pk.PublicKey() {
		t.Fatalf("parsed key %s does not match %s", parsed, addr)
	}
	if _, err := crypto.ParsePublicKey("not-a-key"); !errors.Is(err, crypto.ErrInvalidPublicKey) {
		t.Fatalf("unexpected error %v", err)
	}

	b, err := json.Marshal(map[string]crypto.PublicKey{"owner": pk.PublicKey()})
	if err != nil {
		t.Fatal(err)
	}
	var out map[string]crypto.PublicKey
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatal(err)
	}
	if out["owner"] != pk.PublicKey() {
		t.Fatalf("json round trip mismatch: %s", b)
	}
}

func TestPrivateKeyFile(t *testing.T) {
	t.Parallel()

	pk, err := crypto.NewPrivateKey()
	if err != nil {
		t.Fatal(err)
	}
	p := filepath.Join(t.TempDir(), ".prefix-cli-pk")
	if err := pk.Save(p); err != nil {
		t.Fatal(err)
	}
	loaded, err := crypto.LoadPrivateKeyFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.PublicKey() != pk.PublicKey() {
		t.Fatal("loaded key does not match saved key")
	}
	if _, err := crypto.LoadPrivateKey([]byte{1, 2, 3}); !errors.Is(err, crypto.ErrInvalidPrivateKeySize) {
		t.Fatalf("unexpected error %v", err)
	}
}
