package service

import (
	"time"

	eventModel "hostelku_backend/internals/features/attendance/events/model"
)

// DayStatus: klasifikasi satu hari kalender, murni turunan dari event hari itu.
type DayStatus string

const (
	StatusNone            DayStatus = "none" // hari depan / akhir pekan
	StatusAbsent          DayStatus = "absent"
	StatusPresent         DayStatus = "present"
	StatusLate            DayStatus = "late"
	StatusMissingPunchOut DayStatus = "missing_punch_out"
	StatusRegularized     DayStatus = "regularized"
)

// IsBusinessDay: Senin–Jumat, tanpa kalender libur.
func IsBusinessDay(day time.Time) bool {
	wd := day.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// ClassifyDay mengklasifikasikan satu hari dari kumpulan event hari itu.
// Fungsi murni: dihitung ulang setiap kali dibaca, tidak pernah disimpan.
//
// Prioritas: regularized > late > present; hari depan & akhir pekan netral.
func ClassifyDay(events []eventModel.AttendanceEventModel, day, now time.Time) DayStatus {
	dayDate := truncateToDate(day)
	today := truncateToDate(now)

	if dayDate.After(today) {
		return StatusNone
	}
	if !IsBusinessDay(dayDate) {
		return StatusNone
	}

	if len(events) == 0 {
		if dayDate.Before(today) {
			return StatusAbsent
		}
		return StatusNone // hari ini belum ada event, belum bisa disebut absen
	}

	var hasIn, hasOut, hasLateIn, hasRegularized bool
	for i := range events {
		ev := &events[i]
		if ev.AttendanceEventRegularized {
			hasRegularized = true
		}
		switch ev.AttendanceEventDirection {
		case eventModel.DirectionPunchIn:
			hasIn = true
			if ev.AttendanceEventIsLate {
				hasLateIn = true
			}
		case eventModel.DirectionPunchOut:
			hasOut = true
		}
	}

	// Regularized menang atas semuanya, termasuk pasangan punch lengkap
	if hasRegularized {
		return StatusRegularized
	}

	if hasIn && hasOut {
		if hasLateIn {
			return StatusLate
		}
		return StatusPresent
	}

	// punch_in tanpa punch_out (atau log janggal punch_out saja)
	return StatusMissingPunchOut
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
