package appointment

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// EnumerateSlots expands a working-hours window into 30-minute slot
// labels. The loop bounds are kept exactly as the booking rule defines
// them: slots before the window start are skipped, and enumeration stops
// once the closing hour's minute mark is reached, so a 09:00-19:00 day
// ends at 17:30.
func EnumerateSlots(startTime, endTime string) []string {
	startHour, startMin, ok := splitHM(startTime)
	if !ok {
		return nil
	}
	endHour, endMin, ok := splitHM(endTime)
	if !ok {
		return nil
	}

	var slots []string
	for hour := startHour; hour < endHour; hour++ {
		for min := 0; min < 60; min += 30 {
			if hour == startHour && min < startMin {
				continue
			}
			if hour == endHour-1 && min >= endMin {
				break
			}
			slots = append(slots, fmt.Sprintf("%02d:%02d", hour, min))
		}
	}
	return slots
}

func splitHM(hm string) (hour, min int, ok bool) {
	parts := strings.SplitN(hm, ":", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return h, m, true
}

// Weekday resolves the day of week (0 = Sunday) for a YYYY-MM-DD date.
// Dates carry no timezone anywhere in the system, so UTC parsing keeps
// this deterministic.
func Weekday(date string) (int, error) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return 0, err
	}
	return int(t.Weekday()), nil
}

// PoolFull is the shared-pool occupancy rule for "any barber" bookings:
// a slot is full once distinct specifically-booked barbers plus unassigned
// bookings reach the active barber count. The formula is an approximation;
// it does not bind unassigned bookings to specific barbers.
func PoolFull(distinctBooked, anyBookings, activeBarbers int64) bool {
	return distinctBooked+anyBookings >= activeBarbers
}
