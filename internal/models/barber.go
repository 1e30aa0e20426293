package models

import "time"

type Barber struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name      string `gorm:"size:100;not null" json:"name"`
	Bio       string `gorm:"size:500" json:"bio"`
	ImageURL  string `gorm:"size:255" json:"image_url"`
	Specialty string `gorm:"size:100" json:"specialty"`
	Active    bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
}
