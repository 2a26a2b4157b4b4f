package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/swap/x/sigs"
)

func cmdSignTransaction(
	input io.Reader,
	output io.Writer,
	args []string,
) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Sign given transaction. This is decoding a transaction data from standard
input, adds a signature and writes back to standard output signed transaction
content.

The sequence must match the next sequence of the signing key stored by the
chain, which is zero for a key that never signed before.
`)
		fl.PrintDefaults()
	}
	var (
		chainFl = fl.String("chain", env("SWAPCLI_CHAIN_ID", ""),
			"Chain ID the transaction is meant for. You can use SWAPCLI_CHAIN_ID environment variable to set it.")
		keyPathFl = fl.String("key", defaultKeyPath(),
			"Path to the private key file that transaction should be signed with. You can use SWAPCLI_PRIV_KEY environment variable to set it.")
		seqFl = fl.Int64("seq", 0, "Sequence of the signing key.")
	)
	fl.Parse(args)

	if *chainFl == "" {
		return errors.New("chain ID is required")
	}
	key, err := decodePrivateKey(*keyPathFl)
	if err != nil {
		return fmt.Errorf("cannot load private key: %s", err)
	}

	tx, _, err := readTx(input)
	if err != nil {
		return fmt.Errorf("cannot read transaction: %s", err)
	}

	sig, err := sigs.SignTx(key, tx, *chainFl, *seqFl)
	if err != nil {
		return fmt.Errorf("cannot sign transaction: %s", err)
	}
	tx.Signatures = append(tx.Signatures, sig)

	_, err = writeTx(output, tx)
	return err
}
