package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	require.Equal(t, "development", cfg.Environment)
	require.Equal(t, "8080", cfg.ServerPort)
	require.Equal(t, "data/emissions.db", cfg.DBPath)
	require.Equal(t, "change-me", cfg.JWTSecret)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_PATH", "/tmp/test.db")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	require.Equal(t, "9090", cfg.ServerPort)
	require.Equal(t, "/tmp/test.db", cfg.DBPath)
}
