package appointment

import "context"

// Notifier is the side-effect sink for booking events. Implementations
// must never fail the calling operation; delivery is best-effort.
type Notifier interface {
	NotifyAdminsNewBooking(ctx context.Context, date, timeSlot string)
	NotifyClientStatus(ctx context.Context, clientID uint, status, date, timeSlot string)
}
