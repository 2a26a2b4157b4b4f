package server

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"time"

	"github.com/iov-one/swap/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	cmn "github.com/tendermint/tendermint/libs/common"
)

// GenOptions can parse command-line and flag to
// generate default app_options for the genesis file.
// This is application-specific
type GenOptions func(args []string) (json.RawMessage, error)

// GenesisFile returns the location of the genesis file within the home
// directory.
func GenesisFile(home string) string {
	return filepath.Join(home, "config", "genesis.json")
}

// InitCmd returns a command writing the application state into the
// genesis file. A missing genesis file is created with a random chain
// id, an existing one keeps everything but the app_state.
func InitCmd(gen GenOptions, v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "init [args...]",
		Short: "Initialize app options in genesis file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(v)
			if err != nil {
				return err
			}
			logger, err := cfg.Logger("init")
			if err != nil {
				return err
			}
			options, err := gen(args)
			if err != nil {
				return err
			}
			genFile := GenesisFile(cfg.Home)
			if err := addGenesisOptions(genFile, options); err != nil {
				return err
			}
			logger.Info("Genesis app state written", "path", genFile)
			return nil
		},
	}
}

// GenesisDoc involves some tendermint-specific structures we don't
// want to parse, so we just grab it into a raw object format,
// so we can add one line.
type GenesisDoc map[string]json.RawMessage

func addGenesisOptions(filename string, options json.RawMessage) error {
	doc := GenesisDoc{}
	bz, err := ioutil.ReadFile(filename)
	switch {
	case err == nil:
		if err := json.Unmarshal(bz, &doc); err != nil {
			return errors.Wrapf(errors.ErrInvalidInput, "cannot parse %s: %s", filename, err)
		}
	case os.IsNotExist(err):
		if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
			return err
		}
		doc["chain_id"], _ = json.Marshal(fmt.Sprintf("swap-chain-%v", cmn.RandStr(6)))
		doc["genesis_time"], _ = json.Marshal(time.Now().UTC())
	default:
		return err
	}

	doc["app_state"] = options
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return ioutil.WriteFile(filename, out, 0600)
}
