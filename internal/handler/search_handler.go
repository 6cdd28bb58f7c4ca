package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DateRangeResponse wraps the games found by a release date range search.
type DateRangeResponse struct {
	SuccessMessage string         `json:"successMessage"`
	FoundGames     []GameResponse `json:"foundGames"`
}

// SearchVideogamesByDate godoc
// @Summary      Find local videogames released on a date
// @Tags         videogames
// @Produce      json
// @Param        date path string true "Release date, YYYY-MM-DD"
// @Success      200  {array}   GameResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /videogames/searchbydate/{date} [get]
func (h *Handler) SearchVideogamesByDate(c *gin.Context) {
	raw := c.Param("date")
	date, err := parseDay(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Debe ingresar una fecha válida en formato: YYYY-MM-DD"})
		return
	}

	games, err := h.games.FindByReleaseDate(c.Request.Context(), date)
	if err != nil {
		h.logFor(c, "SearchVideogamesByDate").Error("Failed to find videogames", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"errorMessage": fmt.Sprintf("Internal Server Error: %v", err)})
		return
	}
	if len(games) == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"notFoundMessage": fmt.Sprintf("No se han encontrado videojuegos con la fecha: %s", raw),
		})
		return
	}

	c.JSON(http.StatusOK, newGameResponses(games))
}

// SearchVideogamesByDateRange godoc
// @Summary      Find local videogames released in a date range
// @Description  Both ends of the range are inclusive.
// @Tags         videogames
// @Produce      json
// @Param        start path string true "First release date, YYYY-MM-DD"
// @Param        end   path string true "Last release date, YYYY-MM-DD"
// @Success      200  {object}  DateRangeResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /videogames/searchbydaterange/{start}/{end} [get]
func (h *Handler) SearchVideogamesByDateRange(c *gin.Context) {
	rawStart, rawEnd := c.Param("start"), c.Param("end")
	start, errStart := parseDay(rawStart)
	end, errEnd := parseDay(rawEnd)
	if errStart != nil || errEnd != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Ambas fechas deben ser válidas en formato: YYYY-MM-DD"})
		return
	}

	notFound := gin.H{
		"notFoundMessage": fmt.Sprintf("No se encontraron videojuegos dentro del rango de fechas: %s - %s", rawStart, rawEnd),
	}
	if start.After(end) {
		c.JSON(http.StatusNotFound, notFound)
		return
	}

	games, err := h.games.FindByReleaseDateRange(c.Request.Context(), start, end)
	if err != nil {
		h.logFor(c, "SearchVideogamesByDateRange").Error("Failed to find videogames", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"errorMessage": fmt.Sprintf("Internal Server Error: %v", err)})
		return
	}
	if len(games) == 0 {
		c.JSON(http.StatusNotFound, notFound)
		return
	}

	c.JSON(http.StatusOK, DateRangeResponse{
		SuccessMessage: fmt.Sprintf("%d Fechas encontradas entre: %s y %s: ", len(games), rawStart, rawEnd),
		FoundGames:     newGameResponses(games),
	})
}

// ReverseText godoc
// @Summary      Reverse a string
// @Tags         text
// @Produce      json
// @Param        text query string true "Text to reverse"
// @Success      200  {string}  string
// @Failure      400  {string}  string "faltan datos"
// @Router       /reverse/text [get]
func (h *Handler) ReverseText(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		c.JSON(http.StatusBadRequest, "faltan datos")
		return
	}
	c.JSON(http.StatusOK, reverseText(text))
}
