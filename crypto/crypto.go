// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package crypto implements Ed25519 identities and signature checks.
package crypto

import (
	"crypto/ed25519"
	"errors"
)

const (
	PublicKeySize  = ed25519.PublicKeySize
	PrivateKeySize = ed25519.PrivateKeySize
	SignatureSize  = ed25519.SignatureSize
)

var (
	ErrInvalidSignature      = errors.New("invalid ed25519 signature")
	ErrInvalidPublicKey      = errors.New("invalid public key")
	ErrInvalidPrivateKeySize = errors.New("invalid private key size")
)

// PublicKey is the identity of every protocol participant: owners, verifiers,
// the admin and authority keys.
type PublicKey [PublicKeySize]byte

// EmptyPublicKey is never a valid signer.
var EmptyPublicKey PublicKey

type PrivateKey struct {
	sk ed25519.PrivateKey
	pk PublicKey
}
