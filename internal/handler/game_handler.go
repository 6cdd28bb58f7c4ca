package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"videogames/backend/internal/apperror"
	"videogames/backend/internal/catalog"
	"videogames/backend/internal/models"
	"videogames/backend/internal/repository"
)

// region --- DTOs ---

// VideogameInput is the body of POST /videogames. Every field is required;
// genres holds local genre ids. rating may be sent as a number or a numeric string.
type VideogameInput struct {
	Name        string      `json:"name" binding:"required" example:"Hollow Knight"`
	Description string      `json:"description" binding:"required" example:"A challenging 2D action-adventure."`
	Platforms   string      `json:"platforms" binding:"required" example:"PC, Nintendo Switch"`
	Image       string      `json:"image" binding:"required" example:"https://example.com/hollow.jpg"`
	ReleaseDate string      `json:"releaseDate" binding:"required" example:"2017-02-24"`
	Rating      json.Number `json:"rating" binding:"required" swaggertype:"number" example:"4.6"`
	Genres      []uint      `json:"genres" binding:"required"`
}

// AssociateGenresInput is the body of POST /associate-genres. videogameId may
// be sent as a number or a numeric string.
type AssociateGenresInput struct {
	VideogameID json.Number `json:"videogameId" binding:"required" swaggertype:"integer" example:"1000000"`
	GenreIDs    []uint      `json:"genreIds" binding:"required"`
}

type GameResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Platforms   string  `json:"platforms"`
	Image       string  `json:"image"`
	ReleaseDate string  `json:"releaseDate"`
	Rating      float64 `json:"rating"`
}

// GameWithGenresResponse is a local game together with its genres.
type GameWithGenresResponse struct {
	GameResponse
	Genres []GenreResponse `json:"Genres"`
}

func newGameResponse(game models.Game) GameResponse {
	return GameResponse{
		ID:          game.ID,
		Name:        game.Name,
		Description: game.Description,
		Platforms:   game.Platforms,
		Image:       game.Image,
		ReleaseDate: repository.FormatDay(time.Time(game.ReleaseDate)),
		Rating:      game.Rating,
	}
}

func newGameResponses(games []models.Game) []GameResponse {
	response := make([]GameResponse, 0, len(games))
	for _, game := range games {
		response = append(response, newGameResponse(game))
	}
	return response
}

func newGameWithGenresResponse(game models.Game) GameWithGenresResponse {
	genres := make([]GenreResponse, 0, len(game.Genres))
	for _, genre := range game.Genres {
		if genre != nil {
			genres = append(genres, newGenreResponse(*genre))
		}
	}
	return GameWithGenresResponse{
		GameResponse: newGameResponse(game),
		Genres:       genres,
	}
}

// endregion

// region --- Local Store Handlers ---

// CreateVideogame godoc
// @Summary      Create a local videogame
// @Description  Creates a game in the local id space (ids from 1000000) and links the listed genres.
// @Tags         videogames
// @Accept       json
// @Produce      json
// @Param        input body VideogameInput true "Videogame"
// @Success      201  {object}  GameWithGenresResponse
// @Failure      400  {string}  string "Faltan datos obligatorios."
// @Failure      500  {object}  map[string]string
// @Router       /videogames [post]
func (h *Handler) CreateVideogame(c *gin.Context) {
	log := h.logFor(c, "CreateVideogame")

	var input VideogameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.String(http.StatusBadRequest, msgMissingData)
		return
	}

	game, err := h.newGame(input)
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	if err := h.games.Create(c.Request.Context(), &game, input.Genres); err != nil {
		log.Error("Failed to create videogame", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	log.Info("Created videogame", zap.Int64("id", game.ID))
	c.JSON(http.StatusCreated, newGameWithGenresResponse(game))
}

// AssociateGenres godoc
// @Summary      Link genres to a local videogame
// @Description  Links every listed genre or none of them.
// @Tags         videogames
// @Accept       json
// @Produce      json
// @Param        input body AssociateGenresInput true "Association"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string "Invalid parameters provided"
// @Failure      404  {object}  map[string]string "Videogame or genre not found"
// @Failure      500  {object}  map[string]string
// @Router       /associate-genres [post]
func (h *Handler) AssociateGenres(c *gin.Context) {
	log := h.logFor(c, "AssociateGenres")

	var input AssociateGenresInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid parameters provided"})
		return
	}

	gameID, err := input.VideogameID.Int64()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid parameters provided"})
		return
	}

	err = h.games.AssociateGenres(c.Request.Context(), gameID, input.GenreIDs)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"message": "Genres associated with the videogame successfully"})
	case apperror.IsNotFound(err, "videogame"):
		c.JSON(http.StatusNotFound, gin.H{"error": "Videogame not found"})
	case apperror.IsNotFound(err, "genre"):
		c.JSON(http.StatusNotFound, gin.H{"error": "One or more genres not found"})
	default:
		log.Error("Failed to associate genres", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
	}
}

// GetVideogamesFromForm godoc
// @Summary      List local videogames
// @Description  Returns every locally created game with its genres.
// @Tags         videogames
// @Produce      json
// @Success      200  {array}   GameWithGenresResponse
// @Failure      500  {string}  string
// @Router       /videogamesfromform [get]
func (h *Handler) GetVideogamesFromForm(c *gin.Context) {
	games, err := h.games.FindAllWithGenres(c.Request.Context())
	if err != nil {
		h.logFor(c, "GetVideogamesFromForm").Error("Failed to list videogames", zap.Error(err))
		c.JSON(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	response := make([]GameWithGenresResponse, 0, len(games))
	for _, game := range games {
		response = append(response, newGameWithGenresResponse(game))
	}
	c.JSON(http.StatusOK, response)
}

// GetVideogamesByDBName godoc
// @Summary      Find local videogames by exact name
// @Tags         videogames
// @Produce      json
// @Param        name query string true "Exact game name"
// @Success      200  {array}   GameResponse
// @Failure      400  {string}  string "Game name is required"
// @Failure      404  {string}  string "Game not found"
// @Failure      500  {string}  string
// @Router       /videogames/dbname [get]
func (h *Handler) GetVideogamesByDBName(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, "Game name is required")
		return
	}

	games, err := h.games.FindByName(c.Request.Context(), name)
	if err != nil {
		h.logFor(c, "GetVideogamesByDBName").Error("Failed to find videogames", zap.Error(err))
		c.JSON(http.StatusInternalServerError, fmt.Sprintf("Internal Server Error: %v", err))
		return
	}
	if len(games) == 0 {
		c.JSON(http.StatusNotFound, "Game not found")
		return
	}

	c.JSON(http.StatusOK, newGameResponses(games))
}

// endregion

// region --- Catalog Handlers ---

// GetVideogames godoc
// @Summary      List catalog videogames
// @Description  Forwards the external catalog's game listing unchanged.
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  object
// @Failure      404  {string}  string "No se encontraron videojuegos"
// @Failure      500  {string}  string
// @Router       /videogames [get]
func (h *Handler) GetVideogames(c *gin.Context) {
	body, err := h.catalog.ListGames(c.Request.Context())
	if err != nil {
		if catalog.IsStatusError(err) {
			c.JSON(http.StatusNotFound, "No se encontraron videojuegos")
			return
		}
		h.logFor(c, "GetVideogames").Error("Catalog request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeRaw(c, body)
}

// SearchVideogamesByName godoc
// @Summary      Search catalog videogames by name
// @Description  Case-insensitive search forwarded to the external catalog.
// @Tags         catalog
// @Produce      json
// @Param        name query string true "Name to search for"
// @Success      200  {object}  object
// @Failure      400  {string}  string "Game name is required"
// @Failure      404  {string}  string "Not found"
// @Failure      500  {string}  string
// @Router       /videogames/name [get]
func (h *Handler) SearchVideogamesByName(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, "Game name is required")
		return
	}

	body, err := h.catalog.SearchGames(c.Request.Context(), name)
	if err != nil {
		if catalog.IsStatusError(err) {
			c.String(http.StatusNotFound, "Not found")
			return
		}
		h.logFor(c, "SearchVideogamesByName").Error("Catalog request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeRaw(c, body)
}

// GetVideogameByID godoc
// @Summary      Get a videogame by id
// @Description  Ids from 1000000 up are local games and come back as a one element array.
// @Description  Lower ids are forwarded to the external catalog.
// @Tags         videogames
// @Produce      json
// @Param        id path string true "Videogame id"
// @Success      200  {object}  object
// @Failure      404  {string}  string
// @Failure      500  {string}  string
// @Router       /videogames/{id} [get]
func (h *Handler) GetVideogameByID(c *gin.Context) {
	id := models.ParseGameID(c.Param("id"))
	notFound := fmt.Sprintf("Could not find any games with ID: %s", id.Raw)
	log := h.logFor(c, "GetVideogameByID").With(zap.String("id", id.Raw), zap.Stringer("space", id.Space))

	if id.IsLocal() {
		game, err := h.games.FindByID(c.Request.Context(), id.Value)
		if err != nil {
			if apperror.IsNotFound(err, "") {
				c.JSON(http.StatusNotFound, notFound)
				return
			}
			log.Error("Failed to find videogame", zap.Error(err))
			c.JSON(http.StatusInternalServerError, "Internal Server Error")
			return
		}
		c.JSON(http.StatusOK, []GameResponse{newGameResponse(*game)})
		return
	}

	body, err := h.catalog.GetGame(c.Request.Context(), id.Raw)
	if err != nil {
		if catalog.IsStatusError(err) {
			c.JSON(http.StatusNotFound, notFound)
			return
		}
		log.Error("Catalog request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeRaw(c, body)
}

// endregion
