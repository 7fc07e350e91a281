package cmd

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/spf13/viper"

	"github.com/harlequix/hamming/internal/noise"
)

type Config struct {
	Reversed   bool
	LogLevel   string
	LogFile    string
	BlockLen   int
	DataLen    int
	Iterations int
	BER        float64
	Errors     int
	Seed       int64
}

func init() {
	viper.SetDefault("Reversed", true)
	viper.SetDefault("LogLevel", "warn")
	viper.SetDefault("LogFile", "")
	viper.SetDefault("BlockLen", 8)
	viper.SetDefault("DataLen", 11)
	viper.SetDefault("Iterations", 1000)
	viper.SetDefault("BER", 0.01)
	viper.SetDefault("Errors", 0)
	viper.SetDefault("Seed", 0)
}

// SetConfig reads configFile into viper. An empty name keeps the defaults.
func SetConfig(configFile string) error {
	if configFile == "" {
		return nil
	}
	viper.SetConfigFile(configFile)
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config file %s: %w", configFile, err)
	}
	logger.WithField("file", viper.ConfigFileUsed()).Debug("read config file")
	return nil
}

func LoadConfig() (*Config, error) {
	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	return &c, nil
}

// Simulation copies the simulation settings into a noise.Config.
func (c *Config) Simulation() (noise.Config, error) {
	var sim noise.Config
	if err := copier.Copy(&sim, c); err != nil {
		return sim, err
	}
	return sim, sim.Validate()
}
