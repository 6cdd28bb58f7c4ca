package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"videogames/backend/internal/catalog"
	"videogames/backend/internal/models"
)

// region --- DTOs ---

type GenreResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// ImportedGenresResponse is returned by the call that filled the genre table.
type ImportedGenresResponse struct {
	Message   string          `json:"message"`
	NewGenres []GenreResponse `json:"newGenres"`
}

type ExistingGenresResponse struct {
	Message        string          `json:"message"`
	ExistingGenres []GenreResponse `json:"existingGenres"`
}

func newGenreResponse(genre models.Genre) GenreResponse {
	return GenreResponse{
		ID:   genre.ID,
		Name: genre.Name,
	}
}

func newGenreResponses(genres []models.Genre) []GenreResponse {
	response := make([]GenreResponse, 0, len(genres))
	for _, genre := range genres {
		response = append(response, newGenreResponse(genre))
	}
	return response
}

// endregion

const genreImportKey = "genres"

type genreImport struct {
	created int64
	genres  []models.Genre
}

// GetGenres godoc
// @Summary      List genres, importing them on first use
// @Description  When no genre exists locally the full catalog genre list is imported once.
// @Description  Later calls return the stored genres.
// @Tags         genres
// @Produce      json
// @Success      200  {object}  ImportedGenresResponse
// @Success      200  {object}  ExistingGenresResponse
// @Failure      500  {string}  string
// @Router       /genres [get]
func (h *Handler) GetGenres(c *gin.Context) {
	log := h.logFor(c, "GetGenres")
	ctx := c.Request.Context()

	count, err := h.genres.Count(ctx)
	if err != nil {
		log.Error("Failed to count genres", zap.Error(err))
		c.JSON(http.StatusInternalServerError, fmt.Sprintf("Internal Server Error: %v", err))
		return
	}

	if count == 0 {
		// Concurrent first calls share one import. The import outlives a
		// disconnecting caller since the others are waiting on it.
		result, err, shared := h.imports.Do(genreImportKey, func() (any, error) {
			return h.importGenres(context.WithoutCancel(ctx))
		})
		if err != nil {
			log.Error("Failed to import genres", zap.Error(err))
			c.JSON(http.StatusInternalServerError, fmt.Sprintf("Internal Server Error: %v", err))
			return
		}

		imported := result.(genreImport)
		if imported.created > 0 {
			log.Info("Imported genres", zap.Int64("created", imported.created), zap.Bool("shared", shared))
			c.JSON(http.StatusOK, ImportedGenresResponse{
				Message:   fmt.Sprintf("Generos creados: %d", imported.created),
				NewGenres: newGenreResponses(imported.genres),
			})
			return
		}
	}

	genres, err := h.genres.FindAll(ctx)
	if err != nil {
		log.Error("Failed to list genres", zap.Error(err))
		c.JSON(http.StatusInternalServerError, fmt.Sprintf("Internal Server Error: %v", err))
		return
	}

	c.JSON(http.StatusOK, ExistingGenresResponse{
		Message:        fmt.Sprintf("Ya has creado: %d generos", len(genres)),
		ExistingGenres: newGenreResponses(genres),
	})
}

func (h *Handler) importGenres(ctx context.Context) (genreImport, error) {
	remote, err := h.catalog.ListGenres(ctx)
	if err != nil {
		return genreImport{}, err
	}

	names := make([]string, 0, len(remote))
	for _, genre := range remote {
		names = append(names, genre.Name)
	}

	created, genres, err := h.genres.CreateMissing(ctx, names)
	if err != nil {
		return genreImport{}, err
	}
	return genreImport{created: created, genres: genres}, nil
}

// GetVideogamesByGenre godoc
// @Summary      List catalog videogames of a genre
// @Tags         catalog
// @Produce      json
// @Param        genre path string true "Genre slug, letters only"
// @Success      200  {object}  object
// @Failure      400  {string}  string
// @Failure      404  {string}  string "No games found with that genre"
// @Failure      500  {string}  string
// @Router       /videogamegenre/{genre} [get]
func (h *Handler) GetVideogamesByGenre(c *gin.Context) {
	genre := c.Param("genre")
	if genre == "" {
		c.JSON(http.StatusBadRequest, "Missing required data: genre")
		return
	}
	if !genrePattern.MatchString(genre) {
		c.JSON(http.StatusBadRequest, "Invalid genre format")
		return
	}

	body, found, err := h.catalog.GamesByGenre(c.Request.Context(), genre)
	if err != nil {
		if catalog.IsStatusError(err) {
			c.JSON(http.StatusNotFound, "No games found with that genre")
			return
		}
		h.logFor(c, "GetVideogamesByGenre").Error("Catalog request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, fmt.Sprintf("Internal Server Error: %v", err))
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, "No games found with that genre")
		return
	}

	writeRaw(c, body)
}
