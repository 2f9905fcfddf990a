// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ava-labs/prefixvm/chain"
	"github.com/ava-labs/prefixvm/client"
	"github.com/ava-labs/prefixvm/crypto"
)

var (
	eventsStart uint64
	eventsLimit int
)

func init() {
	eventsCmd.PersistentFlags().Uint64Var(&eventsStart, "start", 0, "first event sequence number")
	eventsCmd.PersistentFlags().IntVar(&eventsLimit, "limit", 100, "maximum number of events")
}

var infoCmd = &cobra.Command{
	Use:   "info [options] prefix",
	Short: "Reads the record of a prefix",
	RunE: func(cmd *cobra.Command, args []string) error {
		prefix, err := getPrefixOp(args)
		if err != nil {
			return err
		}
		cli := client.New(uri, requestTimeout)
		r, exists, err := cli.Prefix(prefix)
		if err != nil {
			return err
		}
		if !exists {
			color.Red("%s does not exist", prefix)
			return chain.ErrPrefixMissing
		}
		ppRecord(r)
		return nil
	},
}

var registryCmd = &cobra.Command{
	Use:   "registry [options]",
	Short: "Reads the fee registry",
	RunE: func(cmd *cobra.Command, args []string) error {
		cli := client.New(uri, requestTimeout)
		r, exists, err := cli.FeeRegistry()
		if err != nil {
			return err
		}
		if !exists {
			color.Red("fee registry is not initialized")
			return chain.ErrNotInitialized
		}
		color.Blue("admin=%s fee=%d paused=%t", r.Admin, r.CurrentFee, r.Paused)
		color.Blue("created=%v updated=%v", unix(r.CreatedAt), unix(r.UpdatedAt))
		return nil
	},
}

var verifiersCmd = &cobra.Command{
	Use:   "verifiers [options]",
	Short: "Lists the verifier roster",
	RunE: func(cmd *cobra.Command, args []string) error {
		cli := client.New(uri, requestTimeout)
		r, err := cli.Verifiers()
		if err != nil {
			return err
		}
		if r == nil {
			color.Red("verifier roster is not initialized")
			return chain.ErrNotInitialized
		}
		color.Blue("admin=%s verifiers=%d", r.Admin, len(r.Verifiers))
		for i, v := range r.Verifiers {
			color.Yellow("%d: %s", i, v)
		}
		return nil
	},
}

var treasuryCmd = &cobra.Command{
	Use:   "treasury [options]",
	Short: "Reads the treasury balance",
	RunE: func(cmd *cobra.Command, args []string) error {
		cli := client.New(uri, requestTimeout)
		bal, reserve, err := cli.Treasury()
		if err != nil {
			return err
		}
		withdrawable := uint64(0)
		if bal > reserve {
			withdrawable = bal - reserve
		}
		color.Cyan("balance=%d reserve=%d withdrawable=%d", bal, reserve, withdrawable)
		return nil
	},
}

var balanceCmd = &cobra.Command{
	Use:   "balance [address] [options]",
	Short: "Reads the balance of an address, or of the private key file if omitted",
	RunE: func(cmd *cobra.Command, args []string) error {
		var pk crypto.PublicKey
		if len(args) == 0 {
			priv, err := crypto.LoadPrivateKeyFile(privateKeyFile)
			if err != nil {
				return err
			}
			pk = priv.PublicKey()
		} else {
			var err error
			pk, err = getPublicKeyOp(args)
			if err != nil {
				return err
			}
		}
		return printBalance(client.New(uri, requestTimeout), pk)
	},
}

var eventsCmd = &cobra.Command{
	Use:   "events [options]",
	Short: "Lists emitted events",
	RunE: func(cmd *cobra.Command, args []string) error {
		cli := client.New(uri, requestTimeout)
		events, count, err := cli.Events(eventsStart, eventsLimit)
		if err != nil {
			return err
		}
		for _, e := range events {
			b, err := json.Marshal(e)
			if err != nil {
				return err
			}
			color.Yellow("%d %s %s", e.Seq, e.Typ, b)
		}
		color.Cyan("showing %d of %d events", len(events), count)
		return nil
	},
}

func ppRecord(r *chain.PrefixRecord) {
	color.Blue("prefix=%s status=%s owner=%s", r.Prefix, r.Status, r.Owner)
	color.Blue("metadata uri=%s hash=%s", r.MetadataURI, r.MetadataHash)
	color.Blue("feePaid=%d refHash=%s", r.FeePaid, r.RefHash)
	for i, k := range r.AuthorityKeys {
		color.Yellow("authority %d: %s", i, k)
	}
	if r.ExpiryAt > 0 {
		color.Blue("review deadline %v", unix(r.ExpiryAt))
	}
	if r.ApprovedAt > 0 {
		color.Blue("approved %v", unix(r.ApprovedAt))
	}
	color.Blue("created=%v updated=%v", unix(r.CreatedAt), unix(r.UpdatedAt))
}

func unix(t uint64) string {
	if t == 0 {
		return "-"
	}
	return time.Unix(int64(t), 0).Format(time.RFC3339) + " (" + strconv.FormatUint(t, 10) + ")"
}
