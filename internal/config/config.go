package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"blackjack-table/internal/util"
)

// Config provides configuration for the blackjack table
type Config struct {
	loaded           bool
	PlayerName       string  `yaml:"playerName" envconfig:"player_name"`
	StartingBankroll float64 `yaml:"startingBankroll" envconfig:"starting_bankroll"`
	MinBet           float64 `yaml:"minBet" envconfig:"min_bet"`
	Log              struct {
		Level string `yaml:"level" envconfig:"level"`
	} `yaml:"log"`
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is not an error; defaults and environment
// variables still apply.
func Load() error {
	config = Config{
		PlayerName:       "Player",
		StartingBankroll: 1000,
	}

	configFile := util.Getenv("BJT_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("bjt", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}
