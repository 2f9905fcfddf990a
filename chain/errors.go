// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"errors"

	"github.com/ava-labs/prefixvm/crypto"
	"github.com/ava-labs/prefixvm/parser"
)

var (
	// Tx Correctness
	ErrInvalidSender    = errors.New("invalid sender")
	ErrInvalidMagic     = errors.New("invalid magic")
	ErrInvalidSignature = crypto.ErrInvalidSignature
	ErrDuplicateTx      = errors.New("duplicate transaction")
	ErrNonActionable    = errors.New("transaction doesn't do anything")

	// Authorization
	ErrUnauthorizedAdmin       = errors.New("unauthorized admin")
	ErrUnauthorizedVerifier    = errors.New("unauthorized verifier")
	ErrUnauthorizedOwnerAction = errors.New("only owner may perform this action")

	// Input
	ErrInvalidPrefixFormat       = parser.ErrInvalidPrefixFormat
	ErrInvalidMetadataURI        = parser.ErrInvalidMetadataURI
	ErrInvalidMetadataHashLength = parser.ErrInvalidMetadataHashLength
	ErrAuthorityKeysTooMany      = errors.New("invalid authority keys length")
	ErrDuplicateAuthorityKey     = errors.New("duplicate authority key")
	ErrReasonTooLong             = errors.New("reason too long")

	// Execution Correctness
	ErrPrefixAlreadyExists = errors.New("prefix already exists")
	ErrPrefixMissing       = errors.New("prefix missing")
	ErrInvalidPrefixStatus = errors.New("invalid prefix status")
	ErrPrefixExpired       = errors.New("prefix expired")
	ErrRefundNotAllowed    = errors.New("refund not allowed in current state")
	ErrAddressMismatch     = errors.New("record does not match derived address")

	// Fees & escrow
	ErrInsufficientFee             = errors.New("insufficient fee")
	ErrInsufficientTreasuryBalance = errors.New("insufficient treasury balance")
	ErrInsufficientBalance         = errors.New("insufficient balance")
	ErrInvalidTreasuryAccount      = errors.New("invalid treasury account")
	ErrFeeOperationsPaused         = errors.New("fee operations paused")

	// Singletons
	ErrAlreadyInitialized = errors.New("already initialized")
	ErrNotInitialized     = errors.New("not initialized")
	ErrVerifierExists     = errors.New("verifier already present")
	ErrVerifierMissing    = errors.New("verifier not found")
	ErrVerifierRosterFull = errors.New("verifier roster full")

	// Storage
	ErrInvalidKeyFormat = errors.New("invalid key format")
)
