package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"videogames/backend/internal/catalog"
	"videogames/backend/internal/middleware"
	"videogames/backend/internal/models"
)

// GameStore is the local videogame store.
type GameStore interface {
	Create(ctx context.Context, game *models.Game, genreIDs []uint) error
	FindAllWithGenres(ctx context.Context) ([]models.Game, error)
	FindByID(ctx context.Context, id int64) (*models.Game, error)
	FindByName(ctx context.Context, name string) ([]models.Game, error)
	FindByReleaseDate(ctx context.Context, date time.Time) ([]models.Game, error)
	FindByReleaseDateRange(ctx context.Context, start, end time.Time) ([]models.Game, error)
	AssociateGenres(ctx context.Context, gameID int64, genreIDs []uint) error
	DeleteByID(ctx context.Context, id int64) (int64, error)
	DeleteByName(ctx context.Context, name string) (int64, error)
	DeleteByReleaseDate(ctx context.Context, date time.Time) (int64, error)
	DeleteByReleaseDateRange(ctx context.Context, start, end time.Time) (int64, error)
}

// GenreStore is the local genre store.
type GenreStore interface {
	Count(ctx context.Context) (int64, error)
	FindAll(ctx context.Context) ([]models.Genre, error)
	CreateMissing(ctx context.Context, names []string) (int64, []models.Genre, error)
}

// Catalog is the external videogame catalog.
type Catalog interface {
	ListGames(ctx context.Context) (json.RawMessage, error)
	SearchGames(ctx context.Context, name string) (json.RawMessage, error)
	GetGame(ctx context.Context, id string) (json.RawMessage, error)
	GamesByGenre(ctx context.Context, genre string) (json.RawMessage, bool, error)
	ListGenres(ctx context.Context) ([]catalog.Genre, error)
}

// Handler serves every route of the API. It keeps no state between requests
// apart from collapsing concurrent genre imports.
type Handler struct {
	games   GameStore
	genres  GenreStore
	catalog Catalog
	log     *zap.Logger

	imports   singleflight.Group
	textClean *bluemonday.Policy
}

func New(games GameStore, genres GenreStore, catalog Catalog, log *zap.Logger) *Handler {
	return &Handler{
		games:     games,
		genres:    genres,
		catalog:   catalog,
		log:       log.Named("handler"),
		textClean: bluemonday.StrictPolicy(),
	}
}

func (h *Handler) logFor(c *gin.Context, function string) *zap.Logger {
	return h.log.With(
		zap.String("function", function),
		zap.String("requestID", middleware.GetRequestID(c)),
	)
}

// writeRaw forwards a catalog body unchanged.
func writeRaw(c *gin.Context, body json.RawMessage) {
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}
