package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// ValidStatus reports membership in the fixed enumeration. Status updates
// are intentionally not guarded by a state machine: any member value is
// accepted regardless of the current one.
func ValidStatus(s string) bool {
	switch Status(s) {
	case StatusPending, StatusAccepted, StatusRejected, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Occupying statuses: only pending and accepted bookings hold a slot.
// Rejected, completed and cancelled appointments free it.
var OccupyingStatuses = []string{
	string(StatusPending),
	string(StatusAccepted),
}

func InitialStatus() Status {
	return StatusPending
}
