// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ava-labs/prefixvm/chain"
	"github.com/ava-labs/prefixvm/client"
	"github.com/ava-labs/prefixvm/crypto"
)

var (
	newOwnerKeyFile string
)

func init() {
	recoverCmd.PersistentFlags().StringVar(
		&newOwnerKeyFile,
		"new-owner-key-file",
		"",
		"private key file of the new owner, who co-signs and pays the fee",
	)
}

var initializeCmd = &cobra.Command{
	Use:   "initialize [fee] [options]",
	Short: "Creates the fee registry and makes the sender its admin",
	RunE: func(cmd *cobra.Command, args []string) error {
		fee, err := getFeeOp(args)
		if err != nil {
			return err
		}
		return issueAdmin(&chain.InitializeTx{BaseTx: &chain.BaseTx{}, Fee: fee}, "")
	},
}

var updateFeeCmd = &cobra.Command{
	Use:   "update-fee [fee] [options]",
	Short: "Updates the registration fee",
	RunE: func(cmd *cobra.Command, args []string) error {
		fee, err := getFeeOp(args)
		if err != nil {
			return err
		}
		return issueAdmin(&chain.UpdateFeeTx{BaseTx: &chain.BaseTx{}, Fee: fee}, "")
	},
}

var setPauseCmd = &cobra.Command{
	Use:   "set-pause [true|false] [options]",
	Short: "Pauses or resumes registration activity",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("expected exactly 1 argument, got %d", len(args))
		}
		paused, err := strconv.ParseBool(args[0])
		if err != nil {
			return err
		}
		return issueAdmin(&chain.SetPauseTx{BaseTx: &chain.BaseTx{}, Paused: paused}, "")
	},
}

var withdrawCmd = &cobra.Command{
	Use:   "withdraw [recipient] [amount] [options]",
	Short: "Withdraws fees from the treasury above its reserve",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 2 {
			return fmt.Errorf("expected exactly 2 arguments, got %d", len(args))
		}
		recipient, err := crypto.ParsePublicKey(args[0])
		if err != nil {
			return err
		}
		amount, err := strconv.ParseUint(args[1], 10, 64)
		if err != nil {
			return err
		}
		utx := &chain.WithdrawTreasuryTx{BaseTx: &chain.BaseTx{}, Amount: amount, Recipient: recipient}
		_, cli, err := issue(utx, "")
		if err != nil {
			return err
		}
		return printBalance(cli, recipient)
	},
}

var addVerifierCmd = &cobra.Command{
	Use:   "add-verifier [address] [options]",
	Short: "Adds an address to the verifier roster",
	RunE: func(cmd *cobra.Command, args []string) error {
		pk, err := getPublicKeyOp(args)
		if err != nil {
			return err
		}
		return issueAdmin(&chain.AddVerifierTx{BaseTx: &chain.BaseTx{}, Verifier: pk}, "")
	},
}

var removeVerifierCmd = &cobra.Command{
	Use:   "remove-verifier [address] [options]",
	Short: "Removes an address from the verifier roster",
	RunE: func(cmd *cobra.Command, args []string) error {
		pk, err := getPublicKeyOp(args)
		if err != nil {
			return err
		}
		return issueAdmin(&chain.RemoveVerifierTx{BaseTx: &chain.BaseTx{}, Verifier: pk}, "")
	},
}

var deactivateCmd = &cobra.Command{
	Use:   "deactivate [prefix] [options]",
	Short: "Deactivates an active prefix",
	RunE: func(cmd *cobra.Command, args []string) error {
		prefix, err := getPrefixOp(args)
		if err != nil {
			return err
		}
		return issueAdmin(&chain.DeactivateTx{BaseTx: &chain.BaseTx{}, Prefix: prefix}, prefix)
	},
}

var reactivateCmd = &cobra.Command{
	Use:   "reactivate [prefix] [options]",
	Short: "Reactivates an inactive prefix",
	RunE: func(cmd *cobra.Command, args []string) error {
		prefix, err := getPrefixOp(args)
		if err != nil {
			return err
		}
		return issueAdmin(&chain.ReactivateTx{BaseTx: &chain.BaseTx{}, Prefix: prefix}, prefix)
	},
}

var recoverCmd = &cobra.Command{
	Use:   "recover [prefix] --new-owner-key-file [file] [options]",
	Short: "Reassigns a prefix to a new owner, who pays the current fee",
	RunE: func(cmd *cobra.Command, args []string) error {
		prefix, err := getPrefixOp(args)
		if err != nil {
			return err
		}
		if newOwnerKeyFile == "" {
			return fmt.Errorf("%w: --new-owner-key-file is required", chain.ErrUnauthorizedOwnerAction)
		}
		newOwner, err := crypto.LoadPrivateKeyFile(newOwnerKeyFile)
		if err != nil {
			return err
		}
		utx := &chain.RecoverOwnerTx{BaseTx: &chain.BaseTx{}, Prefix: prefix, NewOwner: newOwner.PublicKey()}
		_, cli, err := issue(utx, prefix, client.WithCoSigners(newOwner))
		if err != nil {
			return err
		}
		return printBalance(cli, newOwner.PublicKey())
	},
}

func getFeeOp(args []string) (uint64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("expected exactly 1 argument, got %d", len(args))
	}
	return strconv.ParseUint(args[0], 10, 64)
}

func issueAdmin(utx chain.UnsignedTransaction, prefix string) error {
	_, cli, err := issue(utx, prefix)
	if err != nil {
		return err
	}
	r, _, err := cli.FeeRegistry()
	if err != nil {
		return err
	}
	if r != nil {
		color.Cyan("admin=%s fee=%d paused=%t", r.Admin, r.CurrentFee, r.Paused)
	}
	return nil
}
