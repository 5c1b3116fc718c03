package main

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/openhours/openhours/internal/envcfg"
	"github.com/openhours/openhours/internal/runtime"
)

var (
	cfgFile string
	logger  *slog.Logger

	rootCmd = &cobra.Command{
		Use:           "openhours",
		Short:         "Validate and query availability schedules",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./openhours.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")
	rootCmd.PersistentFlags().Bool("json", false, "emit machine-readable JSON output")

	rootCmd.AddCommand(
		initValidateCmd(),
		initCheckCmd(),
		initNextCmd(),
		initNextClosedCmd(),
		initRangesCmd(),
		initSlotsCmd(),
	)
}

func initConfig() {
	if cfgFile == "" {
		cfgFile = envcfg.String("OPENHOURS_CONFIG", "")
	}
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("openhours")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}
	_ = viper.BindPFlags(rootCmd.PersistentFlags())
	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine; flags and env cover everything.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			logger = runtime.NewLogger("openhours", true)
			logger.Error("config file unreadable", "path", cfgFile, "err", err)
		}
	}
	logger = runtime.NewLogger("openhours", viper.GetBool("verbose"))
}

func jsonOutput() bool {
	return viper.GetBool("json")
}
