package service

import (
	"testing"
	"time"

	eventModel "hostelku_backend/internals/features/attendance/events/model"
)

func TestBusinessDaysInMonth(t *testing.T) {
	// Maret 2026: 31 hari, mulai hari Minggu → 22 hari kerja
	if got := BusinessDaysInMonth(time.March, 2026, jakarta); got != 22 {
		t.Fatalf("Maret 2026 harusnya 22 hari kerja, dapat %d", got)
	}
	// Februari 2026: 28 hari, mulai hari Minggu → 20 hari kerja
	if got := BusinessDaysInMonth(time.February, 2026, jakarta); got != 20 {
		t.Fatalf("Februari 2026 harusnya 20 hari kerja, dapat %d", got)
	}
}

func TestBucketByDay_UsesLocalDate(t *testing.T) {
	// 01:00 WIB = 18:00 UTC hari sebelumnya; bucket harus pakai tanggal lokal
	ts := time.Date(2026, 3, 9, 18, 0, 0, 0, time.UTC) // 10 Mar 01:00 WIB
	events := []eventModel.AttendanceEventModel{
		punchAt(ts, eventModel.DirectionPunchIn, false, false),
	}

	buckets := BucketByDay(events, jakarta)
	if len(buckets["2026-03-10"]) != 1 {
		t.Fatalf("event harus masuk bucket tanggal lokal 2026-03-10, dapat %v", buckets)
	}
}

func TestSummarizeMonth_CountsEachBucketOnce(t *testing.T) {
	now := time.Date(2026, 3, 13, 20, 0, 0, 0, jakarta) // Jumat malam

	day := func(d int) time.Time {
		return time.Date(2026, 3, d, 0, 0, 0, 0, jakarta)
	}

	var events []eventModel.AttendanceEventModel
	// Senin 2: hadir normal
	events = append(events,
		punchAt(day(2).Add(9*time.Hour), eventModel.DirectionPunchIn, false, false),
		punchAt(day(2).Add(17*time.Hour), eventModel.DirectionPunchOut, false, false),
	)
	// Selasa 3: telat
	events = append(events,
		punchAt(day(3).Add(10*time.Hour), eventModel.DirectionPunchIn, true, false),
		punchAt(day(3).Add(17*time.Hour), eventModel.DirectionPunchOut, false, false),
	)
	// Rabu 4: lupa punch-out
	events = append(events,
		punchAt(day(4).Add(9*time.Hour), eventModel.DirectionPunchIn, false, false),
	)
	// Kamis 5: diregularisasi
	events = append(events,
		punchAt(day(5).Add(9*time.Hour), eventModel.DirectionPunchIn, false, true),
		punchAt(day(5).Add(17*time.Hour), eventModel.DirectionPunchOut, false, true),
	)
	// Jumat 6, Senin 9 .. Kamis 12: tanpa event → absent (5 hari kerja lewat)
	// Jumat 13 (hari ini) tanpa event → none, bukan absent

	got := SummarizeMonth(events, time.March, 2026, now, jakarta)

	if got.PresentDays != 2 { // hari hadir + hari telat
		t.Errorf("PresentDays = %d, mau 2", got.PresentDays)
	}
	if got.LateDays != 1 {
		t.Errorf("LateDays = %d, mau 1", got.LateDays)
	}
	if got.MissingPunchOutDays != 1 {
		t.Errorf("MissingPunchOutDays = %d, mau 1", got.MissingPunchOutDays)
	}
	if got.RegularizedDays != 1 {
		t.Errorf("RegularizedDays = %d, mau 1", got.RegularizedDays)
	}
	if got.AbsentDays != 5 {
		t.Errorf("AbsentDays = %d, mau 5 (hitung langsung, bukan businessDays-present)", got.AbsentDays)
	}
	if got.BusinessDays != 22 {
		t.Errorf("BusinessDays = %d, mau 22", got.BusinessDays)
	}
}

func TestCalendarForMonth_CoversEveryDay(t *testing.T) {
	now := time.Date(2026, 3, 13, 20, 0, 0, 0, jakarta)

	entries := CalendarForMonth(nil, time.March, 2026, now, jakarta)
	if len(entries) != 31 {
		t.Fatalf("Maret harus 31 entri, dapat %d", len(entries))
	}
	if entries[0].Date != "2026-03-01" || entries[30].Date != "2026-03-31" {
		t.Fatalf("urutan tanggal salah: %s .. %s", entries[0].Date, entries[30].Date)
	}
	// 1 Maret 2026 = Minggu
	if entries[0].Status != StatusNone {
		t.Errorf("1 Maret (Minggu) harus none, dapat %q", entries[0].Status)
	}
	// 31 Maret masih di depan → none
	if entries[30].Status != StatusNone {
		t.Errorf("31 Maret (depan) harus none, dapat %q", entries[30].Status)
	}
}
