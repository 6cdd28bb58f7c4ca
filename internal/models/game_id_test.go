package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseGameID(t *testing.T) {
	tests := []struct {
		raw   string
		space IDSpace
		value int64
	}{
		{"3498", CatalogSpace, 3498},
		{"999999", CatalogSpace, 999999},
		{"1000000", LocalSpace, 1000000},
		{"1000042", LocalSpace, 1000042},
		{"grand-theft-auto-v", CatalogSpace, 0},
		{"99999999999999999999", CatalogSpace, 0},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			id := ParseGameID(tt.raw)
			assert.Equal(t, tt.space, id.Space)
			assert.Equal(t, tt.value, id.Value)
			assert.Equal(t, tt.raw, id.Raw)
			assert.Equal(t, tt.space == LocalSpace, id.IsLocal())
		})
	}
}

func TestNextLocalID(t *testing.T) {
	assert.Equal(t, LocalIDFloor, NextLocalID(0))
	assert.Equal(t, LocalIDFloor, NextLocalID(3498))
	assert.Equal(t, LocalIDFloor+1, NextLocalID(LocalIDFloor))
	assert.Equal(t, int64(1000043), NextLocalID(1000042))
}
