package cli

import (
	"errors"
	"fmt"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/codeready-toolchain/runsheet/pkg/client"
)

const (
	defaultServer = "http://localhost:8080"
	configName    = ".runsheetctl" // .yaml is implicit
	envPrefix     = "RUNSHEET"
)

// rootOptions holds the flags shared by every command.
type rootOptions struct {
	v          *viper.Viper
	configFile string
}

func (o *rootOptions) addFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String("server", "", "runsheet server URL.")
	cmd.PersistentFlags().StringVar(&o.configFile, "config", "", "Config file (default ~/.runsheetctl.yaml).")
	_ = o.v.BindPFlag("server", cmd.PersistentFlags().Lookup("server"))
}

// load reads the config file and environment.
func (o *rootOptions) load() error {
	o.v.SetDefault("server", defaultServer)
	o.v.SetEnvPrefix(envPrefix)
	o.v.AutomaticEnv()

	if o.configFile != "" {
		path, err := homedir.Expand(o.configFile)
		if err != nil {
			return fmt.Errorf("failed to expand config path: %w", err)
		}
		o.v.SetConfigFile(path)
	} else {
		o.v.SetConfigName(configName)
		o.v.SetConfigType("yaml")
		if home, err := homedir.Dir(); err == nil {
			o.v.AddConfigPath(home)
		}
	}

	if err := o.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || o.configFile != "" {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	return nil
}

// client builds an API client for the configured server.
func (o *rootOptions) client() (*client.Client, error) {
	if err := o.load(); err != nil {
		return nil, err
	}
	return client.New(o.v.GetString("server"))
}
