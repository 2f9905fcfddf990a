// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package crypto

import (
	"bytes"
	"crypto/ed25519"
	"fmt"
	"os"
	"strings"

	"github.com/ava-labs/avalanchego/utils/formatting"
)

const (
	privateKeyEncPrefix = "PrivateKey-"
	fsModeWrite         = 0o600
)

// NewPrivateKey generates a fresh key.
func NewPrivateKey() (*PrivateKey, error) {
	_, k, err := ed25519.GenerateKey(nil)
	if err != nil {
		return nil, err
	}
	return newPrivateKey(k), nil
}

// LoadPrivateKey loads a private key
func LoadPrivateKey(k []byte) (*PrivateKey, error) {
	if len(k) != ed25519.PrivateKeySize {
		return nil, ErrInvalidPrivateKeySize
	}
	sk := make(ed25519.PrivateKey, ed25519.PrivateKeySize)
	copy(sk, k)
	return newPrivateKey(sk), nil
}

// LoadPrivateKeyFile reads a key written by [PrivateKey.Save].
func LoadPrivateKeyFile(path string) (*PrivateKey, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s := strings.TrimPrefix(strings.TrimSpace(string(b)), privateKeyEncPrefix)
	raw, err := formatting.Decode(formatting.CB58, s)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode %s", err, path)
	}
	return LoadPrivateKey(raw)
}

func newPrivateKey(sk ed25519.PrivateKey) *PrivateKey {
	k := &PrivateKey{sk: sk}
	copy(k.pk[:], sk.Public().(ed25519.PublicKey))
	return k
}

// PublicKey returns the identity bound to this key.
func (k *PrivateKey) PublicKey() PublicKey { return k.pk }

// Sign signs [msg] as is, without prehashing.
func (k *PrivateKey) Sign(msg []byte) []byte {
	return ed25519.Sign(k.sk, msg)
}

func (k *PrivateKey) Bytes() []byte { return k.sk }

// Save writes the CB58 encoded key to [path].
func (k *PrivateKey) Save(path string) error {
	s, err := formatting.EncodeWithChecksum(formatting.CB58, k.sk)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(privateKeyEncPrefix+s), fsModeWrite)
}

// Verify reports whether [sig] is a valid signature of [msg] by [k].
func (k PublicKey) Verify(msg, sig []byte) bool {
	if k == EmptyPublicKey || len(sig) != SignatureSize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(k[:]), msg, sig)
}

// VerifyProof fails closed unless [signer] produced [sig] over exactly [msg].
func VerifyProof(signer PublicKey, msg []byte, sig []byte) error {
	if !signer.Verify(msg, sig) {
		return ErrInvalidSignature
	}
	return nil
}

// Address returns the CB58 encoding of the key.
func (k PublicKey) Address() string {
	addr, err := formatting.EncodeWithChecksum(formatting.CB58, k[:])
	if err != nil {
		// only fails on oversized input
		panic(err)
	}
	return addr
}

func (k PublicKey) String() string { return k.Address() }

func (k PublicKey) Bytes() []byte { return k[:] }

func (k PublicKey) Equal(o PublicKey) bool { return bytes.Equal(k[:], o[:]) }

// ParsePublicKey decodes a CB58 address.
func ParsePublicKey(addr string) (PublicKey, error) {
	var pk PublicKey
	b, err := formatting.Decode(formatting.CB58, addr)
	if err != nil {
		return pk, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	if len(b) != PublicKeySize {
		return pk, ErrInvalidPublicKey
	}
	copy(pk[:], b)
	return pk, nil
}

func (k PublicKey) MarshalText() ([]byte, error) {
	return []byte(k.Address()), nil
}

func (k *PublicKey) UnmarshalText(text []byte) error {
	pk, err := ParsePublicKey(string(text))
	if err != nil {
		return err
	}
	*k = pk
	return nil
}
