package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	log "github.com/harlequix/hamming/log"
)

// Version is overridden at build time with -ldflags.
var Version = "dev"

var (
	configFile string
	cfg        *Config
	logger     = log.NewLogger("cmd")
)

var rootCmd = &cobra.Command{
	Use:   "hamming",
	Short: "Single-error-correcting Hamming code",
	Long: `hamming encodes bit strings into Hamming codewords with parity bits at
every power-of-two position, strips them again, and corrects a single
flipped bit per codeword using the syndrome.

Bit order follows --reversed: when set (the default) the last data bit
sits at the lowest codeword position and codewords are printed highest
position first.`,
	Version:           Version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configFile, "config", "c", "", "Path to configuration file")
	flags.Bool("reversed", true, "Place the last data bit at the lowest codeword position")
	flags.String("loglevel", "warn", "Log level (trace, debug, info, warn, error)")
	flags.String("logfile", "", "Mirror logs as JSON into <logfile>.trace and <logfile>.warn")

	viper.BindPFlag("Reversed", flags.Lookup("reversed"))
	viper.BindPFlag("LogLevel", flags.Lookup("loglevel"))
	viper.BindPFlag("LogFile", flags.Lookup("logfile"))
}

func setup(cmd *cobra.Command, args []string) error {
	if err := SetConfig(configFile); err != nil {
		return err
	}
	c, err := LoadConfig()
	if err != nil {
		return err
	}
	if err := log.SetLevel(c.LogLevel); err != nil {
		return err
	}
	if c.LogFile != "" {
		log.AddTracer(log.Base(), c.LogFile)
	}
	cfg = c
	logger.WithField("command", cmd.Name()).WithField("reversed", c.Reversed).Debug("loaded configuration")
	return nil
}
