// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// "prefix-cli" implements prefixvm client operation interface.
package main

import (
	"fmt"
	"os"

	"github.com/ava-labs/prefixvm/cmd/prefix-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "prefix-cli failed %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}
