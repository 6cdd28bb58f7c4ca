package repository

import (
	"strconv"
	"time"

	"gorm.io/datatypes"

	"videogames/backend/internal/models"
)

// DayLayout is the only accepted date format (YYYY-MM-DD).
const DayLayout = "2006-01-02"

// Day truncates t to a calendar date so it compares equal to stored release dates.
func Day(t time.Time) datatypes.Date {
	y, m, d := t.Date()
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

func FormatDay(t time.Time) string {
	return t.Format(DayLayout)
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	unique := make([]uint, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}
	return unique
}

// missingID names the first requested id that was not found, or the first
// repeated id when everything resolved.
func missingID(requested []uint, found []*models.Genre) string {
	present := make(map[uint]bool, len(found))
	for _, genre := range found {
		present[genre.ID] = true
	}
	seen := make(map[uint]bool, len(requested))
	for _, id := range requested {
		if !present[id] || seen[id] {
			return strconv.FormatUint(uint64(id), 10)
		}
		seen[id] = true
	}
	return ""
}
