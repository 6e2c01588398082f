package service

import (
	"testing"
	"time"

	eventModel "hostelku_backend/internals/features/attendance/events/model"
)

var jakarta = time.FixedZone("WIB", 7*3600)

func punchAt(t time.Time, direction string, late, regularized bool) eventModel.AttendanceEventModel {
	return eventModel.AttendanceEventModel{
		AttendanceEventTimestamp:   t,
		AttendanceEventDirection:   direction,
		AttendanceEventIsLate:      late,
		AttendanceEventRegularized: regularized,
	}
}

func TestClassifyDay_FutureDayIsNone(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, jakarta) // Selasa
	day := time.Date(2026, 3, 11, 0, 0, 0, 0, jakarta)

	if got := ClassifyDay(nil, day, now); got != StatusNone {
		t.Fatalf("hari depan harus none, dapat %q", got)
	}
}

func TestClassifyDay_WeekendIsNone(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, jakarta)
	saturday := time.Date(2026, 3, 7, 0, 0, 0, 0, jakarta)

	// akhir pekan netral meskipun ada event di hari itu
	events := []eventModel.AttendanceEventModel{
		punchAt(saturday.Add(9*time.Hour), eventModel.DirectionPunchIn, false, false),
	}
	if got := ClassifyDay(events, saturday, now); got != StatusNone {
		t.Fatalf("akhir pekan harus none, dapat %q", got)
	}
}

func TestClassifyDay_PastBusinessDayWithoutEventsIsAbsent(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, jakarta)
	monday := time.Date(2026, 3, 9, 0, 0, 0, 0, jakarta)

	if got := ClassifyDay(nil, monday, now); got != StatusAbsent {
		t.Fatalf("hari kerja lewat tanpa event harus absent, dapat %q", got)
	}
}

func TestClassifyDay_TodayWithoutEventsIsNone(t *testing.T) {
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, jakarta)
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, jakarta)

	if got := ClassifyDay(nil, today, now); got != StatusNone {
		t.Fatalf("hari ini tanpa event belum absen, dapat %q", got)
	}
}

func TestClassifyDay_CompletePairIsPresent(t *testing.T) {
	now := time.Date(2026, 3, 10, 20, 0, 0, 0, jakarta)
	day := time.Date(2026, 3, 9, 0, 0, 0, 0, jakarta)

	events := []eventModel.AttendanceEventModel{
		punchAt(day.Add(9*time.Hour), eventModel.DirectionPunchIn, false, false),
		punchAt(day.Add(17*time.Hour), eventModel.DirectionPunchOut, false, false),
	}
	if got := ClassifyDay(events, day, now); got != StatusPresent {
		t.Fatalf("pasangan lengkap tanpa telat harus present, dapat %q", got)
	}
}

func TestClassifyDay_LatePunchInWins(t *testing.T) {
	now := time.Date(2026, 3, 10, 20, 0, 0, 0, jakarta)
	day := time.Date(2026, 3, 9, 0, 0, 0, 0, jakarta)

	events := []eventModel.AttendanceEventModel{
		punchAt(day.Add(9*time.Hour+45*time.Minute), eventModel.DirectionPunchIn, true, false),
		punchAt(day.Add(17*time.Hour), eventModel.DirectionPunchOut, false, false),
	}
	if got := ClassifyDay(events, day, now); got != StatusLate {
		t.Fatalf("punch-in telat harus late, dapat %q", got)
	}
}

func TestClassifyDay_RegularizedBeatsEverything(t *testing.T) {
	now := time.Date(2026, 3, 10, 20, 0, 0, 0, jakarta)
	day := time.Date(2026, 3, 9, 0, 0, 0, 0, jakarta)

	events := []eventModel.AttendanceEventModel{
		punchAt(day.Add(10*time.Hour), eventModel.DirectionPunchIn, true, false),
		punchAt(day.Add(17*time.Hour), eventModel.DirectionPunchOut, false, false),
		punchAt(day.Add(9*time.Hour), eventModel.DirectionPunchIn, false, true),
	}
	if got := ClassifyDay(events, day, now); got != StatusRegularized {
		t.Fatalf("regularized harus menang atas late/present, dapat %q", got)
	}
}

func TestClassifyDay_MissingPunchOut(t *testing.T) {
	now := time.Date(2026, 3, 10, 20, 0, 0, 0, jakarta)
	day := time.Date(2026, 3, 9, 0, 0, 0, 0, jakarta)

	events := []eventModel.AttendanceEventModel{
		punchAt(day.Add(9*time.Hour), eventModel.DirectionPunchIn, false, false),
	}
	if got := ClassifyDay(events, day, now); got != StatusMissingPunchOut {
		t.Fatalf("punch-in tanpa punch-out harus missing_punch_out, dapat %q", got)
	}
}

func TestIsBusinessDay(t *testing.T) {
	cases := []struct {
		day  time.Time
		want bool
	}{
		{time.Date(2026, 3, 9, 0, 0, 0, 0, jakarta), true},   // Senin
		{time.Date(2026, 3, 13, 0, 0, 0, 0, jakarta), true},  // Jumat
		{time.Date(2026, 3, 14, 0, 0, 0, 0, jakarta), false}, // Sabtu
		{time.Date(2026, 3, 15, 0, 0, 0, 0, jakarta), false}, // Minggu
	}
	for _, c := range cases {
		if got := IsBusinessDay(c.day); got != c.want {
			t.Errorf("IsBusinessDay(%s) = %v, mau %v", c.day.Format("2006-01-02"), got, c.want)
		}
	}
}
