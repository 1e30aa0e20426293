package db

import (
	"log"

	"gorm.io/gorm"

	"github.com/barberbook/barbershop-api/internal/models"
)

// Seed inserts the default admin, catalog and working hours on first run.
// Every block is guarded by a count so restarts are no-ops.
func Seed(db *gorm.DB) {
	seedAdmin(db)
	seedServices(db)
	seedBarbers(db)
	seedWorkingHours(db)
}

func seedAdmin(db *gorm.DB) {
	var count int64
	db.Model(&models.User{}).Where("email = ?", "admin@barbershop.com").Count(&count)
	if count > 0 {
		return
	}

	// bcrypt hash for "admin123"
	admin := models.User{
		Email:        "admin@barbershop.com",
		PasswordHash: "$2b$10$4KgtMtSuHpcWFrM8kJFKe.5Pm9sEePB6e4oDj2mvzXPJExqKt9CX6",
		FullName:     "Administrator",
		Role:         models.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Println("seed admin:", err)
	}
}

func seedServices(db *gorm.DB) {
	var count int64
	db.Model(&models.Service{}).Count(&count)
	if count > 0 {
		return
	}

	services := []models.Service{
		{Name: "Classic Haircut", Description: "Traditional cut with clippers and scissors", Price: 15, DurationMin: 30},
		{Name: "Beard Trim", Description: "Shape and line up the beard", Price: 10, DurationMin: 20},
		{Name: "Haircut + Beard Combo", Description: "Full cut and beard service", Price: 20, DurationMin: 45},
		{Name: "Hot Towel Shave", Description: "Straight razor shave with hot towel", Price: 12, DurationMin: 30},
		{Name: "Kids Haircut", Description: "For clients under 12", Price: 8, DurationMin: 25},
		{Name: "Hair Coloring", Description: "Single tone color or camouflage", Price: 25, DurationMin: 60},
	}
	if err := db.Create(&services).Error; err != nil {
		log.Println("seed services:", err)
	}
}

func seedBarbers(db *gorm.DB) {
	var count int64
	db.Model(&models.Barber{}).Count(&count)
	if count > 0 {
		return
	}

	barbers := []models.Barber{
		{Name: "Heni Njeh", Bio: "Master barber with a decade behind the chair", Specialty: "Fades and classic cuts"},
		{Name: "Amine Chaachoue", Bio: "Precision beard work and modern styles", Specialty: "Beard sculpting"},
	}
	if err := db.Create(&barbers).Error; err != nil {
		log.Println("seed barbers:", err)
	}
}

func seedWorkingHours(db *gorm.DB) {
	var count int64
	db.Model(&models.WorkingHours{}).Count(&count)
	if count > 0 {
		return
	}

	// Monday (1) through Saturday (6); Sunday stays closed.
	var hours []models.WorkingHours
	for day := 1; day <= 6; day++ {
		hours = append(hours, models.WorkingHours{
			Weekday:   day,
			StartTime: "09:00",
			EndTime:   "19:00",
			Active:    true,
		})
	}
	if err := db.Create(&hours).Error; err != nil {
		log.Println("seed working hours:", err)
	}
}
