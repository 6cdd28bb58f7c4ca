package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"videogames/backend/internal/models"
)

type GenreRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewGenreRepository(db *gorm.DB, log *zap.Logger) *GenreRepository {
	return &GenreRepository{
		db:  db,
		log: log.Named("genreRepository"),
	}
}

func (r *GenreRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Genre{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting genres: %w", err)
	}
	return count, nil
}

func (r *GenreRepository) FindAll(ctx context.Context) ([]models.Genre, error) {
	var genres []models.Genre
	if err := r.db.WithContext(ctx).Order("id").Find(&genres).Error; err != nil {
		return nil, fmt.Errorf("listing genres: %w", err)
	}
	return genres, nil
}

// CreateMissing inserts the names that are not stored yet. It returns how many
// rows were actually inserted and the stored genres for names. Running it
// twice, or from two processes at once, never duplicates a genre.
func (r *GenreRepository) CreateMissing(ctx context.Context, names []string) (int64, []models.Genre, error) {
	rows := make([]models.Genre, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		rows = append(rows, models.Genre{Name: name})
	}
	if len(rows) == 0 {
		return 0, nil, nil
	}

	var created int64
	var genres []models.Genre
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).Create(&rows)
		if result.Error != nil {
			return result.Error
		}
		created = result.RowsAffected

		return tx.Where("name IN ?", names).Order("id").Find(&genres).Error
	})
	if err != nil {
		return 0, nil, fmt.Errorf("importing genres: %w", err)
	}

	r.log.Info("Imported genres", zap.Int64("created", created), zap.Int("requested", len(rows)))
	return created, genres, nil
}
