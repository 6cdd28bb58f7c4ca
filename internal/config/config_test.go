package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every key so the host environment cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for key := range defaults {
		t.Setenv(key, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_DRIVER", DriverSQLite)

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 3001, cfg.Port)
	assert.Equal(t, "videogames.db", cfg.DatabaseURL)
	assert.Equal(t, "https://api.rawg.io/api", cfg.CatalogBaseURL)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins())
	assert.False(t, cfg.Production())
}

func TestLoadConfigFileAndEnvironment(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	env := "PORT=4000\n" +
		"DATABASE_DRIVER=postgres\n" +
		"DATABASE_URL=postgres://localhost/videogames\n" +
		"CATALOG_BASE_URL=http://catalog.local/api/\n" +
		"CORS_ALLOW_ORIGINS=https://a.example, https://b.example\n" +
		"ENVIRONMENT=production\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o600))

	t.Setenv("PORT", "5000")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Port, "environment wins over .env")
	assert.Equal(t, "postgres://localhost/videogames", cfg.DatabaseURL)
	assert.Equal(t, "http://catalog.local/api", cfg.CatalogBaseURL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins())
	assert.True(t, cfg.Production())
}

func TestLoadConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"postgres needs a url", map[string]string{"DATABASE_DRIVER": DriverPostgres}},
		{"unknown driver", map[string]string{"DATABASE_DRIVER": "mysql"}},
		{"port out of range", map[string]string{"DATABASE_DRIVER": DriverSQLite, "PORT": "70000"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig(t.TempDir())
			assert.Error(t, err)
		})
	}
}
