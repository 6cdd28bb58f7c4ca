package handler

import (
	"fmt"
	"html"
	"regexp"
	"strings"
	"time"

	"videogames/backend/internal/apperror"
	"videogames/backend/internal/models"
	"videogames/backend/internal/repository"
)

const (
	msgMissingData = "Faltan datos obligatorios."
	msgInvalidDate = "Fecha invalida, debe ser en format: YYYY-MM-DD"
)

var (
	genrePattern = regexp.MustCompile(`^[a-zA-Z]+$`)
	idPattern    = regexp.MustCompile(`^\d+$`)
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// isDateFormat only checks the YYYY-MM-DD shape.
func isDateFormat(s string) bool {
	return datePattern.MatchString(s)
}

// parseDay accepts YYYY-MM-DD strings that are also real calendar dates,
// so "2020-13-40" is rejected even though it has the right shape.
func parseDay(s string) (time.Time, error) {
	if !isDateFormat(s) {
		return time.Time{}, apperror.ValidationFailed("date", fmt.Sprintf("%q is not in YYYY-MM-DD format", s))
	}
	day, err := time.Parse(repository.DayLayout, s)
	if err != nil {
		return time.Time{}, apperror.ValidationFailed("date", fmt.Sprintf("%q is not a calendar date", s))
	}
	return day, nil
}

// hasMarkup reports whether the strict policy would change s.
func (h *Handler) hasMarkup(s string) bool {
	return html.UnescapeString(h.textClean.Sanitize(s)) != s
}

// requiredText rejects blank or markup-carrying free text. Accepted text is
// stored exactly as received.
func (h *Handler) requiredText(field, s string) error {
	if strings.TrimSpace(s) == "" || h.hasMarkup(s) {
		return apperror.ValidationFailed(field, msgMissingData)
	}
	return nil
}

// newGame checks a create request and builds the game to store. Failures
// carry the body the endpoint answers with.
func (h *Handler) newGame(input VideogameInput) (models.Game, error) {
	for field, value := range map[string]string{
		"name":        input.Name,
		"description": input.Description,
		"platforms":   input.Platforms,
		"image":       input.Image,
	} {
		if err := h.requiredText(field, value); err != nil {
			return models.Game{}, err
		}
	}

	rating, err := input.Rating.Float64()
	if err != nil || rating == 0 {
		return models.Game{}, apperror.ValidationFailed("rating", msgMissingData)
	}

	releaseDate, err := parseDay(input.ReleaseDate)
	if err != nil {
		return models.Game{}, apperror.ValidationFailed("releaseDate", msgInvalidDate)
	}

	return models.Game{
		Name:        input.Name,
		Description: input.Description,
		Platforms:   input.Platforms,
		Image:       input.Image,
		ReleaseDate: repository.Day(releaseDate),
		Rating:      rating,
	}, nil
}

// reverseText reverses s code point by code point.
func reverseText(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
