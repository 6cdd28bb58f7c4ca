package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"videogames/backend/internal/apperror"
	"videogames/backend/internal/config"
	"videogames/backend/internal/database"
	"videogames/backend/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(config.DriverSQLite, ":memory:", zap.NewNop())
	require.NoError(t, err)
	return db
}

func mustDay(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(DayLayout, s)
	require.NoError(t, err)
	return d
}

func newGame(t *testing.T, name, released string) *models.Game {
	return &models.Game{
		Name:        name,
		Description: "A game about " + name,
		Platforms:   "PC, PlayStation 5",
		Image:       "https://example.com/" + name + ".jpg",
		ReleaseDate: Day(mustDay(t, released)),
		Rating:      4.5,
	}
}

func seedGenres(t *testing.T, db *gorm.DB, names ...string) []models.Genre {
	t.Helper()
	_, genres, err := NewGenreRepository(db, zap.NewNop()).CreateMissing(context.Background(), names)
	require.NoError(t, err)
	return genres
}

func countJoinRows(t *testing.T, db *gorm.DB, gameID int64) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Table(gameGenresTable).Where("game_id = ?", gameID).Count(&n).Error)
	return n
}

func TestGameRepository_CreateAssignsLocalIDs(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGameRepository(db, zap.NewNop())
	ctx := context.Background()
	genres := seedGenres(t, db, "Action", "Indie")

	first := newGame(t, "Hollow", "2017-02-24")
	require.NoError(t, repo.Create(ctx, first, []uint{genres[0].ID, genres[1].ID}))
	assert.Equal(t, models.LocalIDFloor, first.ID)
	assert.Equal(t, int64(2), countJoinRows(t, db, first.ID))

	second := newGame(t, "Celeste", "2018-01-25")
	require.NoError(t, repo.Create(ctx, second, nil))
	assert.Equal(t, models.LocalIDFloor+1, second.ID)

	// A gap in the id sequence does not matter, only the maximum does.
	_, err := repo.DeleteByID(ctx, first.ID)
	require.NoError(t, err)
	third := newGame(t, "Hades", "2020-09-17")
	require.NoError(t, repo.Create(ctx, third, []uint{genres[0].ID}))
	assert.Equal(t, models.LocalIDFloor+2, third.ID)
}

func TestGameRepository_CreateWithUnknownGenreWritesNothing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGameRepository(db, zap.NewNop())
	genres := seedGenres(t, db, "Action")

	err := repo.Create(context.Background(), newGame(t, "Ghost", "2020-01-01"), []uint{genres[0].ID, 999})
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err, "genre"))

	var count int64
	require.NoError(t, db.Model(&models.Game{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestGameRepository_FindAllWithGenres(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGameRepository(db, zap.NewNop())
	ctx := context.Background()
	genres := seedGenres(t, db, "Action", "RPG")

	require.NoError(t, repo.Create(ctx, newGame(t, "Elden Ring", "2022-02-25"), []uint{genres[1].ID, genres[0].ID}))
	require.NoError(t, repo.Create(ctx, newGame(t, "Tetris", "1984-06-06"), nil))

	games, err := repo.FindAllWithGenres(ctx)
	require.NoError(t, err)
	require.Len(t, games, 2)
	assert.Equal(t, "Elden Ring", games[0].Name)
	require.Len(t, games[0].Genres, 2)
	assert.Equal(t, "Action", games[0].Genres[0].Name)
	assert.Empty(t, games[1].Genres)
}

func TestGameRepository_FindByIDAndName(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGameRepository(db, zap.NewNop())
	ctx := context.Background()

	game := newGame(t, "Halo", "2001-11-15")
	require.NoError(t, repo.Create(ctx, game, nil))

	found, err := repo.FindByID(ctx, game.ID)
	require.NoError(t, err)
	assert.Equal(t, "Halo", found.Name)
	assert.Equal(t, "2001-11-15", FormatDay(time.Time(found.ReleaseDate)))

	_, err = repo.FindByID(ctx, game.ID+1)
	assert.True(t, apperror.IsNotFound(err, "videogame"))

	byName, err := repo.FindByName(ctx, "Halo")
	require.NoError(t, err)
	assert.Len(t, byName, 1)

	byName, err = repo.FindByName(ctx, "halo")
	require.NoError(t, err)
	assert.Empty(t, byName, "name lookup is exact")
}

func TestGameRepository_ReleaseDateFiltersAreInclusive(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGameRepository(db, zap.NewNop())
	ctx := context.Background()

	for name, released := range map[string]string{
		"Before": "2019-12-31",
		"Start":  "2020-01-01",
		"Middle": "2020-06-15",
		"End":    "2020-12-31",
		"After":  "2021-01-01",
	} {
		require.NoError(t, repo.Create(ctx, newGame(t, name, released), nil))
	}

	games, err := repo.FindByReleaseDateRange(ctx, mustDay(t, "2020-01-01"), mustDay(t, "2020-12-31"))
	require.NoError(t, err)
	var names []string
	for _, g := range games {
		names = append(names, g.Name)
	}
	assert.Equal(t, []string{"Start", "Middle", "End"}, names)

	onDay, err := repo.FindByReleaseDate(ctx, mustDay(t, "2020-06-15"))
	require.NoError(t, err)
	require.Len(t, onDay, 1)
	assert.Equal(t, "Middle", onDay[0].Name)

	deleted, err := repo.DeleteByReleaseDateRange(ctx, mustDay(t, "2020-01-01"), mustDay(t, "2020-12-31"))
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)

	deleted, err = repo.DeleteByReleaseDate(ctx, mustDay(t, "2021-01-01"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
}

func TestGameRepository_DeleteByIDIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGameRepository(db, zap.NewNop())
	ctx := context.Background()
	genres := seedGenres(t, db, "Puzzle")

	game := newGame(t, "Portal", "2007-10-10")
	require.NoError(t, repo.Create(ctx, game, []uint{genres[0].ID}))

	deleted, err := repo.DeleteByID(ctx, game.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
	assert.Zero(t, countJoinRows(t, db, game.ID))

	for i := 0; i < 2; i++ {
		deleted, err = repo.DeleteByID(ctx, game.ID)
		require.NoError(t, err)
		assert.Zero(t, deleted)
	}
}

func TestGameRepository_DeleteByName(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGameRepository(db, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newGame(t, "Doom", "1993-12-10"), nil))
	require.NoError(t, repo.Create(ctx, newGame(t, "Doom", "2016-05-13"), nil))
	require.NoError(t, repo.Create(ctx, newGame(t, "Quake", "1996-06-22"), nil))

	deleted, err := repo.DeleteByName(ctx, "Doom")
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	deleted, err = repo.DeleteByName(ctx, "Doom")
	require.NoError(t, err)
	assert.Zero(t, deleted)
}

func TestGameRepository_AssociateGenres(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGameRepository(db, zap.NewNop())
	ctx := context.Background()
	genres := seedGenres(t, db, "Action", "Shooter", "Indie")

	game := newGame(t, "Halo", "2001-11-15")
	require.NoError(t, repo.Create(ctx, game, nil))

	t.Run("missing genre performs no association", func(t *testing.T) {
		err := repo.AssociateGenres(ctx, game.ID, []uint{genres[0].ID, 4242})
		assert.True(t, apperror.IsNotFound(err, "genre"))
		assert.Zero(t, countJoinRows(t, db, game.ID))
	})

	t.Run("repeated genre id counts as missing", func(t *testing.T) {
		err := repo.AssociateGenres(ctx, game.ID, []uint{genres[0].ID, genres[0].ID})
		assert.True(t, apperror.IsNotFound(err, "genre"))
		assert.Zero(t, countJoinRows(t, db, game.ID))
	})

	t.Run("missing game", func(t *testing.T) {
		err := repo.AssociateGenres(ctx, 12, []uint{genres[0].ID})
		assert.True(t, apperror.IsNotFound(err, "videogame"))
	})

	t.Run("associates every genre", func(t *testing.T) {
		require.NoError(t, repo.AssociateGenres(ctx, game.ID, []uint{genres[0].ID, genres[1].ID}))
		assert.Equal(t, int64(2), countJoinRows(t, db, game.ID))

		// Appending keeps existing links.
		require.NoError(t, repo.AssociateGenres(ctx, game.ID, []uint{genres[2].ID}))
		assert.Equal(t, int64(3), countJoinRows(t, db, game.ID))
	})

	t.Run("empty list is a no-op", func(t *testing.T) {
		require.NoError(t, repo.AssociateGenres(ctx, game.ID, []uint{}))
		assert.Equal(t, int64(3), countJoinRows(t, db, game.ID))
	})
}

func TestGenreRepository_CreateMissingNeverDuplicates(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGenreRepository(db, zap.NewNop())
	ctx := context.Background()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	created, genres, err := repo.CreateMissing(ctx, []string{"Action", "Indie", "Action"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), created)
	require.Len(t, genres, 2)
	assert.Equal(t, "Action", genres[0].Name)

	created, genres, err = repo.CreateMissing(ctx, []string{"Action", "Indie"})
	require.NoError(t, err)
	assert.Zero(t, created)
	assert.Len(t, genres, 2)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestMissingID(t *testing.T) {
	found := []*models.Genre{{ID: 1}, {ID: 2}}

	assert.Equal(t, "3", missingID([]uint{1, 3, 2}, found))
	assert.Equal(t, "1", missingID([]uint{1, 1}, found[:1]))
	assert.Equal(t, "", missingID([]uint{1, 2}, found))
}
