package models

import "gorm.io/datatypes"

// Game is a locally created videogame. Its ID always lives in the local id space.
type Game struct {
	ID          int64          `gorm:"primaryKey;autoIncrement:false"`
	Name        string         `gorm:"size:255;not null;index"`
	Description string         `gorm:"type:text;not null"`
	Platforms   string         `gorm:"size:512;not null"`
	Image       string         `gorm:"size:1024"`
	ReleaseDate datatypes.Date `gorm:"not null;index"`
	Rating      float64        `gorm:"not null"`
	Genres      []*Genre       `gorm:"many2many:videogame_genres;"`
}

func (Game) TableName() string {
	return "videogames"
}
