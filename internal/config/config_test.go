package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstance(t *testing.T) {
	clear1 := setEnv("BJT_CONFIG_FILE", "testdata/config.yaml")
	defer clear1()
	clear2 := setEnv("BJT_PLAYER_NAME", "Swayze")
	defer clear2()

	a := assert.New(t)
	cfg := Instance()
	a.Equal("Swayze", cfg.PlayerName)
	a.Equal(float64(500), cfg.StartingBankroll)
	a.Equal(float64(25), cfg.MinBet)
	a.Equal("debug", cfg.Log.Level)

	// ensure that it's only loaded once
	_ = os.Setenv("BJT_PLAYER_NAME", "Dalton")
	// ensure we aren't using a pointer
	cfg.PlayerName = "bad"
	cfg = Instance()
	a.Equal("Swayze", cfg.PlayerName)
}

func TestDefaults(t *testing.T) {
	clear1 := setEnv("BJT_CONFIG_FILE", "testdata/does-not-exist.yaml")
	defer clear1()

	assert.NoError(t, Load())
	cfg := Instance()
	assert.Equal(t, "Player", cfg.PlayerName)
	assert.Equal(t, float64(1000), cfg.StartingBankroll)
	assert.Equal(t, float64(0), cfg.MinBet)
}

func setEnv(key, val string) func() {
	orig := os.Getenv(key)
	_ = os.Setenv(key, val)
	return func() {
		if orig == "" {
			_ = os.Unsetenv(key)
		} else {
			_ = os.Setenv(key, orig)
		}
	}
}
