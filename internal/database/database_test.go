package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"videogames/backend/internal/config"
	"videogames/backend/internal/models"
)

func TestConnectSQLiteMigratesSchema(t *testing.T) {
	db, err := Connect(config.DriverSQLite, ":memory:", zap.NewNop())
	require.NoError(t, err)

	migrator := db.Migrator()
	assert.True(t, migrator.HasTable(&models.Game{}))
	assert.True(t, migrator.HasTable(&models.Genre{}))
	assert.True(t, migrator.HasTable("videogame_genres"))

	// A second sync must be a no-op on an existing schema.
	require.NoError(t, Migrate(db))
}

func TestConnectRejectsUnknownDriver(t *testing.T) {
	_, err := Connect("mysql", "whatever", zap.NewNop())
	assert.Error(t, err)
}
