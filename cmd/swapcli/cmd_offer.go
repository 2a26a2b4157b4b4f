package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/swap/x/offer"
)

func cmdMakeOffer(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Create a transaction offering amount-a tokens of mint-a in exchange for
amount-b tokens of mint-b. The maker keeps the offered tokens until the offer
is taken and must sign the transaction. Use offer-address to learn where the
offer is stored.
		`)
		fl.PrintDefaults()
	}
	var (
		makerFl   = flAddress(fl, "maker", "", "Address of the offer maker.")
		idFl      = fl.Uint64("id", 0, "Offer identifier, unique among the open offers of the maker.")
		mintAFl   = flMint(fl, "mint-a", "Mint of the offered tokens.")
		mintBFl   = flMint(fl, "mint-b", "Mint of the wanted tokens.")
		amountAFl = fl.Uint64("amount-a", 0, "Amount of offered tokens.")
		amountBFl = fl.Uint64("amount-b", 0, "Amount of wanted tokens.")
	)
	fl.Parse(args)

	return writeMsg(output, &offer.MakeOfferMsg{
		Maker:   *makerFl,
		ID:      *idFl,
		MintA:   mintAFl(),
		MintB:   mintBFl(),
		AmountA: *amountAFl,
		AmountB: *amountBFl,
	})
}

func cmdTakeOffer(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Create a transaction settling an open offer. The taker pays the wanted tokens
and receives the offered ones. The taker must sign the transaction.
		`)
		fl.PrintDefaults()
	}
	var (
		takerFl = flAddress(fl, "taker", "", "Address of the taker.")
		offerFl = flAddress(fl, "offer", "", "Address of the offer.")
	)
	fl.Parse(args)

	return writeMsg(output, &offer.TakeOfferMsg{
		Taker: *takerFl,
		Offer: *offerFl,
	})
}

func cmdOfferAddress(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Print out the address of the offer with given maker and identifier.
		`)
		fl.PrintDefaults()
	}
	var (
		makerFl = flAddress(fl, "maker", "", "Address of the offer maker.")
		idFl    = fl.Uint64("id", 0, "Offer identifier.")
	)
	fl.Parse(args)

	if err := makerFl.Validate(); err != nil {
		flagDie("invalid maker address: %s", err)
	}
	addr, _, err := offer.FindAddress(*makerFl, *idFl)
	if err != nil {
		return fmt.Errorf("cannot derive offer address: %s", err)
	}
	_, err = fmt.Fprintln(output, addr)
	return err
}
