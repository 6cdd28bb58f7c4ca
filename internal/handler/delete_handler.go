package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DeleteVideogameByID godoc
// @Summary      Delete a local videogame by id
// @Tags         videogames
// @Produce      json
// @Param        id path string true "Videogame id"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]any
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /videogames/deletebyid/{id} [delete]
func (h *Handler) DeleteVideogameByID(c *gin.Context) {
	raw := c.Param("id")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Falta ID", "missingId": true})
		return
	}
	if !idPattern.MatchString(raw) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID debe ser un numero", "idIsNan": true})
		return
	}

	notFound := gin.H{"notFoundMessage": fmt.Sprintf("No hay videojuegos con ID: %s", raw)}

	// All digits but too large for any stored id.
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, notFound)
		return
	}

	deleted, err := h.games.DeleteByID(c.Request.Context(), id)
	if err != nil {
		h.logFor(c, "DeleteVideogameByID").Error("Failed to delete videogame", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": fmt.Sprintf("Internal Server Error: %v", err)})
		return
	}
	if deleted == 0 {
		c.JSON(http.StatusNotFound, notFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{"successMessage": fmt.Sprintf("Videojuego con ID: %s eliminado con exito.", raw)})
}

// DeleteVideogamesByName godoc
// @Summary      Delete local videogames by exact name
// @Tags         videogames
// @Produce      json
// @Param        name path string true "Exact game name"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]any
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /videogames/deletebyname/{name} [delete]
func (h *Handler) DeleteVideogamesByName(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Debe incluir un nombre", "name": false})
		return
	}

	deleted, err := h.games.DeleteByName(c.Request.Context(), name)
	if err != nil {
		h.logFor(c, "DeleteVideogamesByName").Error("Failed to delete videogames", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Internal Server Error: %v", err)})
		return
	}
	if deleted == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"notFoundMessage": fmt.Sprintf("No se encontraron videojuegos con el Nombre: %s", name),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"successMessage": fmt.Sprintf("Videojuego(s) con nombre: %s eliminado(s) con exito. Total eliminados: %d", name, deleted),
	})
}

// DeleteVideogamesByDate godoc
// @Summary      Delete local videogames released on a date
// @Tags         videogames
// @Produce      json
// @Param        date path string true "Release date, YYYY-MM-DD"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]any
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /videogames/deletebydate/{date} [delete]
func (h *Handler) DeleteVideogamesByDate(c *gin.Context) {
	raw := c.Param("date")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Debe incluir una fecha.", "dateProvided": false})
		return
	}
	date, err := parseDay(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message":           msgInvalidDate,
			"invalidDateFormat": true,
		})
		return
	}

	deleted, err := h.games.DeleteByReleaseDate(c.Request.Context(), date)
	if err != nil {
		h.logFor(c, "DeleteVideogamesByDate").Error("Failed to delete videogames", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": fmt.Sprintf("Internal Server Error: %v", err)})
		return
	}
	if deleted == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": fmt.Sprintf("No hay videojuegos con la Fecha: %s disponibles.", raw)})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"successMessage": fmt.Sprintf("Se han eliminado un total de %d videojuegos con la fecha: %s.", deleted, raw),
	})
}

// DeleteVideogamesByDateRange godoc
// @Summary      Delete local videogames released in a date range
// @Description  Both ends of the range are inclusive. A range whose start is after its end matches nothing.
// @Tags         videogames
// @Produce      json
// @Param        start path string true "First release date, YYYY-MM-DD"
// @Param        end   path string true "Last release date, YYYY-MM-DD"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]any
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /videogames/deletebydaterange/{start}/{end} [delete]
func (h *Handler) DeleteVideogamesByDateRange(c *gin.Context) {
	rawStart, rawEnd := c.Param("start"), c.Param("end")
	if rawStart == "" || rawEnd == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": msgMissingData, "failed": true})
		return
	}
	if !isDateFormat(rawStart) || !isDateFormat(rawEnd) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid date format. Date must be in YYYY-MM-DD format."})
		return
	}
	start, errStart := parseDay(rawStart)
	end, errEnd := parseDay(rawEnd)
	if errStart != nil || errEnd != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid date range."})
		return
	}

	notFound := gin.H{
		"notFoundError": fmt.Sprintf("No se encontraron videojuegos con las fechas entre: %s y %s", rawStart, rawEnd),
	}
	if start.After(end) {
		c.JSON(http.StatusNotFound, notFound)
		return
	}

	deleted, err := h.games.DeleteByReleaseDateRange(c.Request.Context(), start, end)
	if err != nil {
		h.logFor(c, "DeleteVideogamesByDateRange").Error("Failed to delete videogames", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"errorMessage": fmt.Sprintf("Internal Server Error: %v", err)})
		return
	}
	if deleted == 0 {
		c.JSON(http.StatusNotFound, notFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"successMessage": fmt.Sprintf("Se han eliminado: %d videojuegos con las fechas %s y %s ", deleted, rawStart, rawEnd),
	})
}
