// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/codec"
	"github.com/ava-labs/avalanchego/codec/linearcodec"
	"github.com/ava-labs/avalanchego/utils/wrappers"
)

// CodecVersion is the version every transaction and record is encoded with.
const CodecVersion = 0

var codecManager codec.Manager

func init() {
	c := linearcodec.NewDefault()
	codecManager = codec.NewDefaultManager()
	errs := wrappers.Errs{}
	errs.Add(
		c.RegisterType(&BaseTx{}),
		c.RegisterType(&InitializeTx{}),
		c.RegisterType(&UpdateFeeTx{}),
		c.RegisterType(&SetPauseTx{}),
		c.RegisterType(&WithdrawTreasuryTx{}),
		c.RegisterType(&AddVerifierTx{}),
		c.RegisterType(&RemoveVerifierTx{}),
		c.RegisterType(&SubmitTx{}),
		c.RegisterType(&ApproveTx{}),
		c.RegisterType(&RejectTx{}),
		c.RegisterType(&UpdateMetadataTx{}),
		c.RegisterType(&UpdateAuthorityTx{}),
		c.RegisterType(&DeactivateTx{}),
		c.RegisterType(&ReactivateTx{}),
		c.RegisterType(&RefundTx{}),
		c.RegisterType(&RecoverOwnerTx{}),
		c.RegisterType(&Transaction{}),
		c.RegisterType(&PrefixRecord{}),
		c.RegisterType(&FeeRegistry{}),
		c.RegisterType(&VerifierRoster{}),
		c.RegisterType(&Event{}),
		c.RegisterType(&Genesis{}),
		codecManager.RegisterCodec(CodecVersion, c),
	)
	if errs.Errored() {
		panic(errs.Err)
	}
}

func Marshal(source interface{}) ([]byte, error) {
	return codecManager.Marshal(CodecVersion, source)
}

func Unmarshal(source []byte, destination interface{}) (uint16, error) {
	return codecManager.Unmarshal(source, destination)
}
