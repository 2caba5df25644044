// Package cmd holds the ALS CLI: compress/decompress/info subcommands
// built on cobra, one file per subcommand, with the shared rootCmd and
// persistent flags in root.go.
package cmd

import (
	"github.com/gofrs/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vippsas/als/alsconfig"
)

var (
	rootCmd = &cobra.Command{
		Use:          "als",
		Short:        "als",
		SilenceUsage: true,
		Long:         `ALS (Adaptive Logic Stream) compression tool for structured tabular data.`,
	}

	configPath string
	verbose    bool
	quiet      bool

	log       = logrus.New()
	requestID uuid.UUID
	loadedCfg alsconfig.CompressorConfig
)

// Execute runs the root command; it is the single entrypoint
// cli/main.go calls.
func Execute() error {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress all non-error output")
	rootCmd.PersistentPreRunE = preRun
	return rootCmd.Execute()
}

// preRun wires the logging level and the per-invocation correlation
// id before any subcommand runs.
func preRun(cmd *cobra.Command, args []string) error {
	switch {
	case verbose:
		log.SetLevel(logrus.DebugLevel)
	case quiet:
		log.SetLevel(logrus.ErrorLevel)
	default:
		log.SetLevel(logrus.InfoLevel)
	}

	id, err := uuid.NewV4()
	if err != nil {
		return err
	}
	requestID = id

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	loadedCfg = cfg

	log.WithField("request_id", requestID.String()).Debugf("als %s invoked", cmd.Name())
	return nil
}

// loadConfig: an unset --config is not an error (defaults apply); a
// set-but-unreadable one is.
func loadConfig() (alsconfig.CompressorConfig, error) {
	if configPath == "" {
		return alsconfig.DefaultCompressorConfig(), nil
	}
	return alsconfig.Load(configPath)
}

func init() {
	rootCmd.AddCommand(compressCmd)
	rootCmd.AddCommand(decompressCmd)
	rootCmd.AddCommand(infoCmd)
}
