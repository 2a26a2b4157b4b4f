package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"

	swap "github.com/iov-one/swap"
)

func cmdTransactionView(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Decode and display transaction summary. This command is helpful when reciving a
binary representation of a transaction. Before signing you should check what
kind of operation are you authorizing.
`)
		fl.PrintDefaults()
	}
	fl.Parse(args)

	tx, _, err := readTx(input)
	if err != nil {
		return fmt.Errorf("cannot read transaction: %s", err)
	}
	msg, err := tx.GetMsg()
	if err != nil {
		return fmt.Errorf("cannot decode message: %s", err)
	}

	type signature struct {
		Signer   swap.Address `json:"signer"`
		Sequence int64        `json:"sequence"`
	}
	summary := struct {
		Path       string      `json:"path"`
		Msg        swap.Msg    `json:"msg"`
		Signatures []signature `json:"signatures"`
	}{
		Path:       tx.MsgPath,
		Msg:        msg,
		Signatures: make([]signature, 0, len(tx.Signatures)),
	}
	for _, s := range tx.Signatures {
		var signer swap.Address
		if s.Pubkey != nil {
			signer = s.Pubkey.Address()
		}
		summary.Signatures = append(summary.Signatures, signature{Signer: signer, Sequence: s.Sequence})
	}

	pretty, err := json.MarshalIndent(summary, "", "\t")
	if err != nil {
		return fmt.Errorf("cannot JSON serialize: %s", err)
	}
	_, err = output.Write(pretty)
	return err
}
