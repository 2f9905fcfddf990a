// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"

	"github.com/ava-labs/prefixvm/chain"
)

var (
	refHash string
	reason  string
)

func init() {
	approveCmd.PersistentFlags().StringVar(&refHash, "ref-hash", "", "0x-prefixed 32-byte verifier reference hash")
	rejectCmd.PersistentFlags().StringVar(&reason, "reason", "", "rejection reason")
}

var approveCmd = &cobra.Command{
	Use:   "approve [prefix] --ref-hash [hash] [options]",
	Short: "Approves a pending prefix",
	RunE: func(cmd *cobra.Command, args []string) error {
		prefix, err := getPrefixOp(args)
		if err != nil {
			return err
		}
		b, err := hexutil.Decode(refHash)
		if err != nil {
			return fmt.Errorf("%w: ref hash must be 0x-prefixed hex", err)
		}
		if len(b) != common.HashLength {
			return fmt.Errorf("ref hash must be %d bytes, got %d", common.HashLength, len(b))
		}
		utx := &chain.ApproveTx{BaseTx: &chain.BaseTx{}, Prefix: prefix, RefHash: common.BytesToHash(b)}
		_, _, err = issue(utx, prefix)
		return err
	},
}

var rejectCmd = &cobra.Command{
	Use:   "reject [prefix] --reason [reason] [options]",
	Short: "Rejects a pending prefix",
	RunE: func(cmd *cobra.Command, args []string) error {
		prefix, err := getPrefixOp(args)
		if err != nil {
			return err
		}
		if len(reason) > chain.MaxReasonSize {
			return fmt.Errorf("%w: %d > %d", chain.ErrReasonTooLong, len(reason), chain.MaxReasonSize)
		}
		utx := &chain.RejectTx{BaseTx: &chain.BaseTx{}, Prefix: prefix, Reason: reason}
		_, _, err = issue(utx, prefix)
		return err
	},
}
