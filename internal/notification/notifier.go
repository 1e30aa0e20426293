package notification

import (
	"context"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/barberbook/barbershop-api/internal/models"
)

const TypeAppointment = "appointment"

// StatusTemplate returns the fixed client-facing message for a status
// change. Only accepted, rejected and cancelled notify; other statuses
// return ok=false and no row is written.
func StatusTemplate(status, date, timeSlot string) (title, message string, ok bool) {
	switch status {
	case "accepted":
		return "Appointment Confirmed!",
			fmt.Sprintf("Your appointment on %s at %s has been confirmed.", date, timeSlot),
			true
	case "rejected":
		return "Appointment Declined",
			fmt.Sprintf("Unfortunately, your appointment request for %s at %s could not be accommodated.", date, timeSlot),
			true
	case "cancelled":
		return "Appointment Cancelled",
			fmt.Sprintf("Your appointment on %s at %s has been cancelled.", date, timeSlot),
			true
	}
	return "", "", false
}

// Notifier writes notification rows synchronously. Failures are logged
// and swallowed: a booking or status change never fails because its
// notification could not be stored.
type Notifier struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Notifier {
	return &Notifier{db: db}
}

func (n *Notifier) NotifyAdminsNewBooking(ctx context.Context, date, timeSlot string) {
	var admins []models.User
	if err := n.db.WithContext(ctx).
		Where("role = ?", models.RoleAdmin).
		Find(&admins).Error; err != nil {
		log.Println("notification: list admins:", err)
		return
	}

	for _, admin := range admins {
		row := models.Notification{
			UserID:  admin.ID,
			Title:   "New Appointment Request",
			Message: fmt.Sprintf("New booking request for %s at %s", date, timeSlot),
			Type:    TypeAppointment,
		}
		if err := n.db.WithContext(ctx).Create(&row).Error; err != nil {
			log.Println("notification: admin insert:", err)
		}
	}
}

func (n *Notifier) NotifyClientStatus(ctx context.Context, clientID uint, status, date, timeSlot string) {
	title, message, ok := StatusTemplate(status, date, timeSlot)
	if !ok {
		return
	}

	row := models.Notification{
		UserID:  clientID,
		Title:   title,
		Message: message,
		Type:    TypeAppointment,
	}
	if err := n.db.WithContext(ctx).Create(&row).Error; err != nil {
		log.Println("notification: client insert:", err)
	}
}
