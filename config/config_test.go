package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	viper.Reset()
	t.Setenv("RENEGADE_SWAP_API_KEY", "key-from-env")
	t.Setenv("RENEGADE_SWAP_API_SECRET", "secret-from-env")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "key-from-env", cfg.APIKey)
	assert.Equal(t, "secret-from-env", cfg.APISecret)
	// Default chain
	assert.Equal(t, "arbitrum_one", cfg.Chain)
}

func TestLoad_ChainOverride(t *testing.T) {
	viper.Reset()
	t.Setenv("RENEGADE_SWAP_API_KEY", "k")
	t.Setenv("RENEGADE_SWAP_API_SECRET", "s")
	t.Setenv("RENEGADE_SWAP_CHAIN", "base_mainnet")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "base_mainnet", cfg.Chain)
}

func TestLoad_MissingCredentials(t *testing.T) {
	viper.Reset()
	t.Setenv("RENEGADE_SWAP_API_KEY", "")
	t.Setenv("RENEGADE_SWAP_API_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}
