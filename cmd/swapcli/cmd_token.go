package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/swap/x/token"
)

func cmdCreateMint(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Create a transaction registering a new mint. The authority is the only one
allowed to issue tokens of this mint and must sign the transaction.
		`)
		fl.PrintDefaults()
	}
	var (
		authorityFl = flAddress(fl, "authority", "", "Address of the mint authority.")
		tickerFl    = fl.String("ticker", "", "Ticker of the mint, for example GOLD.")
		decimalsFl  = fl.Uint64("decimals", 0, "Number of decimal places of the token amounts.")
		nameFl      = fl.String("name", "", "Optional human readable name of the token.")
		uriFl       = fl.String("uri", "", "Optional URI of the token metadata document.")
	)
	fl.Parse(args)

	return writeMsg(output, &token.CreateMintMsg{
		Authority: *authorityFl,
		Ticker:    *tickerFl,
		Decimals:  *decimalsFl,
		Name:      *nameFl,
		URI:       *uriFl,
	})
}

func cmdCreateAccount(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Create a transaction opening an empty token account of the owner for the
given mint. Anyone can sign it.
		`)
		fl.PrintDefaults()
	}
	var (
		ownerFl = flAddress(fl, "owner", "", "Address of the account owner.")
		mintFl  = flMint(fl, "mint", "Mint of the account.")
	)
	fl.Parse(args)

	return writeMsg(output, &token.CreateAccountMsg{
		Owner: *ownerFl,
		Mint:  mintFl(),
	})
}

func cmdMintTokens(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Create a transaction issuing new tokens to the destination account. The mint
authority must sign it.
		`)
		fl.PrintDefaults()
	}
	var (
		mintFl   = flMint(fl, "mint", "Mint of the issued tokens.")
		dstFl    = flAddress(fl, "dst", "", "Address of the owner receiving the tokens.")
		amountFl = fl.Uint64("amount", 0, "Amount of tokens to issue.")
	)
	fl.Parse(args)

	return writeMsg(output, &token.MintToMsg{
		Mint:        mintFl(),
		Destination: *dstFl,
		Amount:      *amountFl,
	})
}

func cmdSendTokens(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Create a transaction for transfering funds from the source account to the
destination account.
		`)
		fl.PrintDefaults()
	}
	var (
		mintFl   = flMint(fl, "mint", "Mint of the transferred tokens.")
		srcFl    = flAddress(fl, "src", "", "A source account owner that the funds are send from.")
		dstFl    = flAddress(fl, "dst", "", "A destination account owner that the funds are send to.")
		amountFl = fl.Uint64("amount", 0, "An amount that is to be transferred.")
	)
	fl.Parse(args)

	return writeMsg(output, &token.TransferMsg{
		Mint:        mintFl(),
		Source:      *srcFl,
		Destination: *dstFl,
		Amount:      *amountFl,
	})
}

func cmdApprove(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Create a transaction allowing the delegate to spend up to the given amount
from the owner account. Any previous delegation of the account is replaced.
		`)
		fl.PrintDefaults()
	}
	var (
		mintFl     = flMint(fl, "mint", "Mint of the account.")
		ownerFl    = flAddress(fl, "owner", "", "Address of the account owner.")
		delegateFl = flAddress(fl, "delegate", "", "Address allowed to spend.")
		amountFl   = fl.Uint64("amount", 0, "Amount the delegate may spend.")
	)
	fl.Parse(args)

	return writeMsg(output, &token.ApproveMsg{
		Mint:     mintFl(),
		Owner:    *ownerFl,
		Delegate: *delegateFl,
		Amount:   *amountFl,
	})
}

func cmdRevoke(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Create a transaction removing the delegation of the owner account.
		`)
		fl.PrintDefaults()
	}
	var (
		mintFl  = flMint(fl, "mint", "Mint of the account.")
		ownerFl = flAddress(fl, "owner", "", "Address of the account owner.")
	)
	fl.Parse(args)

	return writeMsg(output, &token.RevokeMsg{
		Mint:  mintFl(),
		Owner: *ownerFl,
	})
}
