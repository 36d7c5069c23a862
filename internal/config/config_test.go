package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ebbitten/bluepoker-sub001/internal/util"
	"github.com/ebbitten/bluepoker-sub001/pkg/playable/poker/texasholdem"
)

func TestInstance(t *testing.T) {
	clear1 := util.SetEnv("BLUEPOKER_CONFIG_FILE", "testdata/config.yaml")
	defer clear1()
	clear2 := util.SetEnv("BLUEPOKER_RULES_BIG_BLIND", "60")
	defer clear2()

	config = Config{}

	a := assert.New(t)
	cfg := Instance()
	a.Equal("debug", cfg.Log.Level)
	a.Equal("json", cfg.Log.Format)
	a.Equal(2000, cfg.Rules.StartingChips)
	a.Equal(25, cfg.Rules.SmallBlind)
	a.Equal(60, cfg.Rules.BigBlind, "the environment overrides the file")
	a.Equal(texasholdem.OddChipDealer, cfg.Rules.OddChipPolicy)
	a.Equal(45*time.Second, cfg.Table.ActionTimeout)
	a.True(cfg.Table.AutoDeal)
	a.Equal(time.Second, cfg.Table.AutoDealDelay)

	// ensure that it's only loaded once
	clear3 := util.SetEnv("BLUEPOKER_RULES_BIG_BLIND", "80")
	defer clear3()
	// ensure we aren't using a pointer
	cfg.Rules.BigBlind = 1
	cfg = Instance()
	a.Equal(60, cfg.Rules.BigBlind)
}

func TestDefaults(t *testing.T) {
	clear1 := util.SetEnv("BLUEPOKER_CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	defer clear1()

	require.NoError(t, Load())
	cfg := Instance()
	assert.Equal(t, DefaultConfig().Rules, cfg.Rules)
	assert.Equal(t, texasholdem.DefaultOptions(), cfg.Rules)
	assert.Equal(t, 30*time.Second, cfg.Table.ActionTimeout)
	assert.False(t, cfg.Table.AutoDeal)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_Errors(t *testing.T) {
	clear1 := util.SetEnv("BLUEPOKER_CONFIG_FILE", "testdata/config.yaml")
	defer clear1()

	clear2 := util.SetEnv("BLUEPOKER_RULES_ODD_CHIP_POLICY", "coin-flip")
	err := Load()
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "invalid odd chip policy: coin-flip")
	}
	clear2()

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("rules: [1, 2"), 0o600))
	clear3 := util.SetEnv("BLUEPOKER_CONFIG_FILE", bad)
	defer clear3()
	assert.Error(t, Load())
}

func TestConfig_NewLogger(t *testing.T) {
	a := assert.New(t)

	cfg := DefaultConfig()
	logger, err := cfg.NewLogger()
	a.NoError(err)
	a.Equal(logrus.InfoLevel, logger.GetLevel())
	a.IsType(&logrus.TextFormatter{}, logger.Formatter)

	cfg.Log.Level = "warn"
	cfg.Log.Format = "JSON"
	logger, err = cfg.NewLogger()
	a.NoError(err)
	a.Equal(logrus.WarnLevel, logger.GetLevel())
	a.IsType(&logrus.JSONFormatter{}, logger.Formatter)

	cfg.Log.Level = "loud"
	_, err = cfg.NewLogger()
	a.Error(err)
}

func TestConfig_Marshal(t *testing.T) {
	b, err := DefaultConfig().Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(b), "bigBlind: 20")
	assert.Contains(t, string(b), "oddChipPolicy: discard")
}
