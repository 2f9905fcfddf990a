// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ava-labs/prefixvm/chain"
	"github.com/ava-labs/prefixvm/crypto"
)

var (
	metadataURI   string
	metadataHash  string
	authorityKeys []string
)

func init() {
	for _, c := range []*cobra.Command{submitCmd, updateMetadataCmd} {
		c.PersistentFlags().StringVar(&metadataURI, "metadata-uri", "", "metadata URI")
		c.PersistentFlags().StringVar(&metadataHash, "metadata-hash", "", "0x-prefixed 32-byte metadata hash")
	}
	for _, c := range []*cobra.Command{submitCmd, updateAuthorityCmd} {
		c.PersistentFlags().StringSliceVar(&authorityKeys, "authority-key", nil, "authority key address (repeatable)")
	}
}

var submitCmd = &cobra.Command{
	Use:   "submit [prefix] --metadata-uri [uri] --metadata-hash [hash] [options]",
	Short: "Submits a prefix for review, paying the current fee",
	RunE: func(cmd *cobra.Command, args []string) error {
		prefix, err := getPrefixOp(args)
		if err != nil {
			return err
		}
		keys, err := parsePublicKeys(authorityKeys)
		if err != nil {
			return err
		}
		priv, err := crypto.LoadPrivateKeyFile(privateKeyFile)
		if err != nil {
			return err
		}
		hash, sig, err := signedMetadata(priv, metadataHash)
		if err != nil {
			return err
		}
		utx := &chain.SubmitTx{
			BaseTx:         &chain.BaseTx{},
			Prefix:         prefix,
			MetadataURI:    metadataURI,
			MetadataHash:   hash,
			OwnerSignature: sig,
			AuthorityKeys:  keys,
		}
		_, cli, err := issue(utx, prefix)
		if err != nil {
			return err
		}
		return printBalance(cli, priv.PublicKey())
	},
}

var updateMetadataCmd = &cobra.Command{
	Use:   "update-metadata [prefix] --metadata-uri [uri] --metadata-hash [hash] [options]",
	Short: "Updates prefix metadata, sending an active prefix back to review",
	RunE: func(cmd *cobra.Command, args []string) error {
		prefix, err := getPrefixOp(args)
		if err != nil {
			return err
		}
		priv, err := crypto.LoadPrivateKeyFile(privateKeyFile)
		if err != nil {
			return err
		}
		hash, sig, err := signedMetadata(priv, metadataHash)
		if err != nil {
			return err
		}
		utx := &chain.UpdateMetadataTx{
			BaseTx:         &chain.BaseTx{},
			Prefix:         prefix,
			MetadataURI:    metadataURI,
			MetadataHash:   hash,
			OwnerSignature: sig,
		}
		_, _, err = issue(utx, prefix)
		return err
	},
}

var updateAuthorityCmd = &cobra.Command{
	Use:   "update-authority [prefix] [--authority-key address]... [options]",
	Short: "Replaces the authority keys of an active prefix",
	RunE: func(cmd *cobra.Command, args []string) error {
		prefix, err := getPrefixOp(args)
		if err != nil {
			return err
		}
		keys, err := parsePublicKeys(authorityKeys)
		if err != nil {
			return err
		}
		utx := &chain.UpdateAuthorityTx{BaseTx: &chain.BaseTx{}, Prefix: prefix, AuthorityKeys: keys}
		_, _, err = issue(utx, prefix)
		return err
	},
}

var refundCmd = &cobra.Command{
	Use:   "refund [prefix] [options]",
	Short: "Refunds the fee of a rejected or expired prefix and deletes it",
	RunE: func(cmd *cobra.Command, args []string) error {
		prefix, err := getPrefixOp(args)
		if err != nil {
			return err
		}
		priv, cli, err := issue(&chain.RefundTx{BaseTx: &chain.BaseTx{}, Prefix: prefix}, prefix)
		if err != nil {
			return err
		}
		return printBalance(cli, priv.PublicKey())
	},
}
