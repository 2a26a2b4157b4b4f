package main

import (
	"fmt"
	"os"

	swapd "github.com/iov-one/swap/cmd/swapd/app"
	"github.com/iov-one/swap/commands/server"
	"github.com/spf13/cobra"
)

func main() {
	v := server.NewViper("swapd")

	root := &cobra.Command{
		Use:          "swapd",
		Short:        "Token swap node",
		SilenceUsage: true,
	}
	flags := root.PersistentFlags()
	flags.String(server.FlagHome, server.DefaultHome("swapd"), "directory to store files under")
	flags.String(server.FlagLogLevel, "info", "minimal log level (debug, info, error, none)")
	if err := v.BindPFlags(flags); err != nil {
		panic(err)
	}

	root.AddCommand(
		server.InitCmd(swapd.GenInitOptions, v),
		server.StartCmd(swapd.GenerateApp, v),
		server.ValidateCmd(swapd.Initializers()),
		&cobra.Command{
			Use:   "version",
			Short: "Print the app version",
			Run: func(*cobra.Command, []string) {
				fmt.Println(swapd.Version)
			},
		},
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(1)
	}
}
