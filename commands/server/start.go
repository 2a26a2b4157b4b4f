package server

import (
	"github.com/iov-one/swap/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tendermint/tendermint/abci/server"
	abci "github.com/tendermint/tendermint/abci/types"
	cmn "github.com/tendermint/tendermint/libs/common"
	"github.com/tendermint/tendermint/libs/log"
)

// Options are passed to the application generator.
type Options struct {
	Home   string
	DBPath string
	Logger log.Logger
	Debug  bool
}

// AppGenerator lets us lazily initialize app, using home dir
// and logger potentially initialized with other flags
type AppGenerator func(*Options) (abci.Application, error)

// StartCmd returns a command that opens the application and serves it
// over the ABCI socket until a signal is received.
func StartCmd(gen AppGenerator, v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Run the abci server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(v)
			if err != nil {
				return err
			}
			logger, err := cfg.Logger("swap")
			if err != nil {
				return err
			}
			app, err := gen(&Options{
				Home:   cfg.Home,
				DBPath: cfg.DBPath(),
				Logger: logger,
				Debug:  cfg.Debug,
			})
			if err != nil {
				return err
			}

			// TrapSignal exits the process as soon as the callback
			// returns, so wait for the server to stop first.
			quit := make(chan struct{})
			stopped := make(chan struct{})
			cmn.TrapSignal(logger, func() {
				close(quit)
				<-stopped
			})
			err = serve(app, cfg.Bind, logger, quit)
			close(stopped)
			return err
		},
	}
	flags := cmd.Flags()
	flags.String(FlagBind, v.GetString(FlagBind), "address server listens on")
	flags.Bool(FlagDebug, false, "call stack returned on error")
	flags.String(FlagDB, v.GetString(FlagDB), "database path relative to home, empty for memory")
	if err := v.BindPFlags(flags); err != nil {
		panic(err)
	}
	return cmd
}

// serve runs the ABCI server until quit is closed.
func serve(app abci.Application, addr string, logger log.Logger, quit <-chan struct{}) error {
	logger.Info("Starting ABCI app", "bind", addr)

	svr, err := server.NewServer(addr, "socket", app)
	if err != nil {
		return errors.Wrapf(errors.ErrInvalidInput, "cannot create listener: %s", err)
	}
	svr.SetLogger(logger.With("module", "abci-server"))
	if err := svr.Start(); err != nil {
		return err
	}

	<-quit
	logger.Info("Stopping ABCI app")
	return svr.Stop()
}
