package main

import (
	"flag"
	"fmt"
	"os"

	swap "github.com/iov-one/swap"
	"github.com/iov-one/swap/x/token"
)

// flAddress returns a value that is being initialized with given default value
// and optionally overwritten by a command line argument if provided. This
// function follows Go's flag package convention.
// If given value cannot be deserialized to required type, process is
// terminated.
func flAddress(fl *flag.FlagSet, name, defaultVal, usage string) *swap.Address {
	var a swap.Address
	if defaultVal != "" {
		var err error
		a, err = swap.ParseAddress(defaultVal)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Cannot parse %q swap.Address flag value. %s", name, err)
			os.Exit(2)
		}
	}
	fl.Var(&a, name, usage)
	return &a
}

// flMint declares a flag accepting a mint ticker and returns a function
// resolving the mint address once the flags are parsed.
func flMint(fl *flag.FlagSet, name, usage string) func() swap.Address {
	ticker := fl.String(name, "", usage+" Given as a ticker, for example GOLD.")
	return func() swap.Address {
		if *ticker == "" {
			flagDie("-%s is required", name)
		}
		return token.MintAddress(*ticker)
	}
}

// flagDie terminates the program when a flag validation fails. Use it only
// for user input errors.
func flagDie(description string, args ...interface{}) {
	if len(args) != 0 {
		description = fmt.Sprintf(description, args...)
	}
	fmt.Fprintln(os.Stderr, description)
	os.Exit(2)
}
