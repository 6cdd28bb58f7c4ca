package models

// Genre represents a game genre (e.g., "Action", "Indie", "RPG").
// Names are unique so a bulk import can never duplicate a genre.
type Genre struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:100;unique;not null"`
}
