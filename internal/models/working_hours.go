package models

type WorkingHours struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// 0 = Sunday ... 6 = Saturday
	Weekday int `gorm:"not null;index" json:"weekday"`

	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`
	Active    bool   `gorm:"default:true" json:"active"`
}
