package config

import (
	"context"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mattsolo1/rover/pkg/service"
	"github.com/mattsolo1/rover/pkg/store"
)

var (
	cfgFile string
	Verbose bool
)

func InitConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		configDir := filepath.Join(home, ".config", "rover")
		viper.AddConfigPath(configDir)
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("ROVER")
	viper.AutomaticEnv()

	setDefaults(viper.GetViper())

	// A missing config file is normal; defaults apply.
	_ = viper.ReadInConfig()
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("backend", string(store.BackendJSON))
	v.SetDefault("data_dir", filepath.Join(os.Getenv("HOME"), ".local", "share", "rover"))
	v.SetDefault("recents_limit", service.DefaultRecentsLimit)
	v.SetDefault("default_emojicon", "🔖")
	v.SetDefault("vault_dir", "")
}

// ServiceConfig reads the service settings from v.
func ServiceConfig(v *viper.Viper) *service.Config {
	backend := store.Backend(v.GetString("backend"))
	dataFile := v.GetString("data_file")
	if dataFile == "" {
		name := "data.json"
		if backend == store.BackendSQLite {
			name = "rover.db"
		}
		dataFile = filepath.Join(v.GetString("data_dir"), name)
	}

	return &service.Config{
		DataFile:        dataFile,
		Backend:         backend,
		VaultDir:        v.GetString("vault_dir"),
		RecentsLimit:    v.GetInt("recents_limit"),
		DefaultEmojicon: v.GetString("default_emojicon"),
	}
}

// NewLogger creates the stderr logger, quiet unless --verbose is set.
func NewLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.WarnLevel)
	if Verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

// InitService opens the configured store and loads the service from it.
func InitService(ctx context.Context) (*service.Service, error) {
	cfg := ServiceConfig(viper.GetViper())

	st, err := store.Open(cfg.Backend, cfg.DataFile)
	if err != nil {
		return nil, err
	}

	logger := NewLogger()
	logger.WithFields(logrus.Fields{
		"backend":   cfg.Backend,
		"data_file": cfg.DataFile,
	}).Debug("Opening store")

	svc, err := service.New(ctx, cfg, st, logger)
	if err != nil {
		st.Close()
		return nil, err
	}
	return svc, nil
}

// AddGlobalFlags registers --config and --verbose unless the standard
// command already carries them.
func AddGlobalFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	if flags.Lookup("config") == nil {
		flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/rover/config.yaml)")
	}
	if flags.Lookup("verbose") == nil {
		flags.BoolVarP(&Verbose, "verbose", "v", false, "Log debug output to stderr")
	}
}

// ReadGlobalFlags picks up the global flag values once cobra has parsed them.
func ReadGlobalFlags(cmd *cobra.Command) {
	if v, err := cmd.Flags().GetString("config"); err == nil && v != "" {
		cfgFile = v
	}
	if v, err := cmd.Flags().GetBool("verbose"); err == nil {
		Verbose = Verbose || v
	}
}
