package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"videogames/backend/internal/apperror"
	"videogames/backend/internal/models"
)

// maxCreateAttempts bounds retries when two creates compute the same local id.
const maxCreateAttempts = 3

const gameGenresTable = "videogame_genres"

// GameRepository owns every query against locally created games.
type GameRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewGameRepository(db *gorm.DB, log *zap.Logger) *GameRepository {
	return &GameRepository{
		db:  db,
		log: log.Named("gameRepository"),
	}
}

// Create assigns the next local id to game, inserts it and links it to
// genreIDs, all in one transaction. Unknown genre ids abort the insert.
func (r *GameRepository) Create(ctx context.Context, game *models.Game, genreIDs []uint) error {
	var err error
	for attempt := 1; attempt <= maxCreateAttempts; attempt++ {
		err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return createGame(tx, game, genreIDs)
		})
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			break
		}
		r.log.Warn("local id taken by a concurrent create, retrying",
			zap.Int64("id", game.ID), zap.Int("attempt", attempt))
	}
	if err != nil {
		return fmt.Errorf("creating videogame: %w", err)
	}
	return nil
}

func createGame(tx *gorm.DB, game *models.Game, genreIDs []uint) error {
	var maxID int64
	if err := tx.Model(&models.Game{}).Select("COALESCE(MAX(id), 0)").Scan(&maxID).Error; err != nil {
		return fmt.Errorf("reading max id: %w", err)
	}
	game.ID = models.NextLocalID(maxID)

	ids := uniqueIDs(genreIDs)
	game.Genres = nil
	if len(ids) > 0 {
		var genres []*models.Genre
		if err := tx.Where("id IN ?", ids).Order("id").Find(&genres).Error; err != nil {
			return err
		}
		if len(genres) != len(ids) {
			return apperror.NotFound("genre", missingID(ids, genres))
		}
		game.Genres = genres
	}

	return tx.Create(game).Error
}

// FindAllWithGenres returns every local game with its genres loaded.
func (r *GameRepository) FindAllWithGenres(ctx context.Context) ([]models.Game, error) {
	var games []models.Game
	err := r.db.WithContext(ctx).Preload("Genres", func(db *gorm.DB) *gorm.DB {
		return db.Order("genres.id")
	}).Order("id").Find(&games).Error
	if err != nil {
		return nil, fmt.Errorf("listing videogames: %w", err)
	}
	return games, nil
}

func (r *GameRepository) FindByID(ctx context.Context, id int64) (*models.Game, error) {
	var game models.Game
	if err := r.db.WithContext(ctx).First(&game, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("videogame", strconv.FormatInt(id, 10))
		}
		return nil, fmt.Errorf("finding videogame %d: %w", id, err)
	}
	return &game, nil
}

// FindByName matches name exactly.
func (r *GameRepository) FindByName(ctx context.Context, name string) ([]models.Game, error) {
	var games []models.Game
	if err := r.db.WithContext(ctx).Where("name = ?", name).Order("id").Find(&games).Error; err != nil {
		return nil, fmt.Errorf("finding videogames named %q: %w", name, err)
	}
	return games, nil
}

func (r *GameRepository) FindByReleaseDate(ctx context.Context, date time.Time) ([]models.Game, error) {
	var games []models.Game
	err := r.db.WithContext(ctx).
		Where("release_date = ?", Day(date)).
		Order("id").
		Find(&games).Error
	if err != nil {
		return nil, fmt.Errorf("finding videogames released %s: %w", FormatDay(date), err)
	}
	return games, nil
}

// FindByReleaseDateRange matches release dates in [start, end], both inclusive.
func (r *GameRepository) FindByReleaseDateRange(ctx context.Context, start, end time.Time) ([]models.Game, error) {
	var games []models.Game
	err := r.db.WithContext(ctx).
		Where("release_date BETWEEN ? AND ?", Day(start), Day(end)).
		Order("release_date, id").
		Find(&games).Error
	if err != nil {
		return nil, fmt.Errorf("finding videogames released between %s and %s: %w", FormatDay(start), FormatDay(end), err)
	}
	return games, nil
}

// AssociateGenres links every genre in genreIDs to the game. Either all of
// them are linked or none: a missing game or any missing genre aborts.
// A repeated id counts as a missing genre.
func (r *GameRepository) AssociateGenres(ctx context.Context, gameID int64, genreIDs []uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var game models.Game
		if err := tx.First(&game, gameID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("videogame", strconv.FormatInt(gameID, 10))
			}
			return err
		}

		if len(genreIDs) == 0 {
			return nil
		}

		var genres []*models.Genre
		if err := tx.Where("id IN ?", genreIDs).Find(&genres).Error; err != nil {
			return err
		}
		if len(genres) != len(genreIDs) {
			return apperror.NotFound("genre", missingID(genreIDs, genres))
		}

		return tx.Model(&game).Association("Genres").Append(genres)
	})
	if err != nil {
		return fmt.Errorf("associating genres with videogame %d: %w", gameID, err)
	}
	return nil
}

// DeleteByID returns the number of games removed (0 or 1).
func (r *GameRepository) DeleteByID(ctx context.Context, id int64) (int64, error) {
	return r.deleteWhere(ctx, "id = ?", id)
}

func (r *GameRepository) DeleteByName(ctx context.Context, name string) (int64, error) {
	return r.deleteWhere(ctx, "name = ?", name)
}

func (r *GameRepository) DeleteByReleaseDate(ctx context.Context, date time.Time) (int64, error) {
	return r.deleteWhere(ctx, "release_date = ?", Day(date))
}

// DeleteByReleaseDateRange removes games released in [start, end], both inclusive.
func (r *GameRepository) DeleteByReleaseDateRange(ctx context.Context, start, end time.Time) (int64, error) {
	return r.deleteWhere(ctx, "release_date BETWEEN ? AND ?", Day(start), Day(end))
}

// deleteWhere removes the matching games and their genre links in one transaction.
func (r *GameRepository) deleteWhere(ctx context.Context, query string, args ...any) (int64, error) {
	var deleted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ids []int64
		if err := tx.Model(&models.Game{}).Where(query, args...).Pluck("id", &ids).Error; err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}

		if err := tx.Exec("DELETE FROM "+gameGenresTable+" WHERE game_id IN ?", ids).Error; err != nil {
			return err
		}

		result := tx.Where("id IN ?", ids).Delete(&models.Game{})
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("deleting videogames where %s: %w", query, err)
	}
	return deleted, nil
}
