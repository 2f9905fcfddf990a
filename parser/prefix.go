// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package parser defines prefix and metadata format checks.
package parser

import (
	"errors"
	"regexp"
	"strings"
)

const (
	MinPrefixSize = 3
	MaxPrefixSize = 12
	MaxURISize    = 255
	HashLen       = 32

	Delimiter          = "/"
	ByteDelimiter byte = '/'
)

var (
	ErrInvalidPrefixFormat       = errors.New("prefix must be ^[A-Z0-9]{3,12}$")
	ErrInvalidMetadataURI        = errors.New("invalid metadata uri")
	ErrInvalidMetadataHashLength = errors.New("invalid metadata hash length")

	// Checked in order; the scheme must be followed by something.
	allowedSchemes = []string{"https://", "ipfs://"}

	reg *regexp.Regexp
)

func init() {
	reg = regexp.MustCompile("^[A-Z0-9]{3,12}$")
}

// CheckPrefix returns an error if the prefix is not already in its normalized
// (uppercase alphanumeric, 3-12 characters) form.
func CheckPrefix(prefix string) error {
	if !reg.MatchString(prefix) {
		return ErrInvalidPrefixFormat
	}
	return nil
}

// NormalizePrefix uppercases ASCII letters and validates the result.
//
// Callers that require the submitted prefix to be canonical compare the input
// with the returned value.
func NormalizePrefix(prefix string) (string, error) {
	upper := strings.ToUpper(prefix)
	if err := CheckPrefix(upper); err != nil {
		return "", err
	}
	return upper, nil
}

// CheckMetadata validates the URI scheme/length and then the hash length.
func CheckMetadata(uri string, hash []byte) error {
	if err := CheckMetadataURI(uri); err != nil {
		return err
	}
	if len(hash) != HashLen {
		return ErrInvalidMetadataHashLength
	}
	return nil
}

// CheckMetadataURI returns an error if the URI is too long or does not use an
// allowed scheme.
func CheckMetadataURI(uri string) error {
	if len(uri) > MaxURISize {
		return ErrInvalidMetadataURI
	}
	for _, scheme := range allowedSchemes {
		if strings.HasPrefix(uri, scheme) && len(uri) > len(scheme) {
			return nil
		}
	}
	return ErrInvalidMetadataURI
}
