package models

import (
	"strconv"
	"strings"
)

// LocalIDFloor is the first id handed out to locally created games.
// Everything below it belongs to the external catalog.
const LocalIDFloor int64 = 1_000_000

// IDSpace tells which system owns a game id.
type IDSpace int

const (
	CatalogSpace IDSpace = iota
	LocalSpace
)

func (s IDSpace) String() string {
	if s == LocalSpace {
		return "local"
	}
	return "catalog"
}

// SpaceOf partitions numeric ids by LocalIDFloor.
func SpaceOf(id int64) IDSpace {
	if id >= LocalIDFloor {
		return LocalSpace
	}
	return CatalogSpace
}

// GameID is a game identifier tagged with the id space it belongs to.
type GameID struct {
	Raw   string
	Value int64
	Space IDSpace
}

// ParseGameID tags a path id. Anything that is not a plain integer
// (slugs included) is left to the catalog untouched.
func ParseGameID(raw string) GameID {
	raw = strings.TrimSpace(raw)
	id := GameID{Raw: raw, Space: CatalogSpace}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return id
	}
	id.Value = value
	id.Space = SpaceOf(value)
	return id
}

// IsLocal reports whether the id must be resolved against the local store.
func (id GameID) IsLocal() bool {
	return id.Space == LocalSpace
}

// NextLocalID returns the id for the next locally created game given the
// current maximum stored id (0 when the store is empty).
func NextLocalID(maxID int64) int64 {
	if maxID < LocalIDFloor-1 {
		maxID = LocalIDFloor - 1
	}
	return maxID + 1
}
