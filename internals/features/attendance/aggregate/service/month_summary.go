package service

import (
	"time"

	eventModel "hostelku_backend/internals/features/attendance/events/model"
)

type MonthSummary struct {
	PresentDays         int `json:"present_days"`
	AbsentDays          int `json:"absent_days"`
	LateDays            int `json:"late_days"`
	MissingPunchOutDays int `json:"missing_punch_out_days"`
	RegularizedDays     int `json:"regularized_days"`
	BusinessDays        int `json:"business_days"`
}

type DayEntry struct {
	Date   string    `json:"date"` // YYYY-MM-DD
	Status DayStatus `json:"status"`
}

// BusinessDaysInMonth: jumlah hari Senin–Jumat pada bulan tsb (tanpa hari libur).
func BusinessDaysInMonth(month time.Month, year int, loc *time.Location) int {
	if loc == nil {
		loc = time.Local
	}
	count := 0
	day := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	for day.Month() == month {
		if IsBusinessDay(day) {
			count++
		}
		day = day.AddDate(0, 0, 1)
	}
	return count
}

// BucketByDay mengelompokkan event per tanggal lokal (YYYY-MM-DD).
func BucketByDay(events []eventModel.AttendanceEventModel, loc *time.Location) map[string][]eventModel.AttendanceEventModel {
	if loc == nil {
		loc = time.Local
	}
	buckets := make(map[string][]eventModel.AttendanceEventModel)
	for _, ev := range events {
		key := ev.AttendanceEventTimestamp.In(loc).Format("2006-01-02")
		buckets[key] = append(buckets[key], ev)
	}
	return buckets
}

// CalendarForMonth: klasifikasi per hari untuk tampilan kalender.
func CalendarForMonth(events []eventModel.AttendanceEventModel, month time.Month, year int, now time.Time, loc *time.Location) []DayEntry {
	if loc == nil {
		loc = time.Local
	}
	buckets := BucketByDay(events, loc)

	var entries []DayEntry
	day := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	for day.Month() == month {
		key := day.Format("2006-01-02")
		entries = append(entries, DayEntry{
			Date:   key,
			Status: ClassifyDay(buckets[key], day, now),
		})
		day = day.AddDate(0, 0, 1)
	}
	return entries
}

// SummarizeMonth mengakumulasi klasifikasi harian jadi ringkasan bulanan.
//
// Hari absen DIHITUNG LANGSUNG dari klasifikasi Absent hari kerja yang sudah
// lewat, bukan diturunkan dari businessDays - presentDays; dua cara itu bisa
// berbeda saat data parsial, dan hitung-langsung yang jujur pada log.
// PresentDays memasukkan hari Late (hadir tapi telat); LateDays subset-nya.
func SummarizeMonth(events []eventModel.AttendanceEventModel, month time.Month, year int, now time.Time, loc *time.Location) MonthSummary {
	if loc == nil {
		loc = time.Local
	}

	summary := MonthSummary{
		BusinessDays: BusinessDaysInMonth(month, year, loc),
	}

	for _, entry := range CalendarForMonth(events, month, year, now, loc) {
		switch entry.Status {
		case StatusPresent:
			summary.PresentDays++
		case StatusLate:
			summary.PresentDays++
			summary.LateDays++
		case StatusAbsent:
			summary.AbsentDays++
		case StatusMissingPunchOut:
			summary.MissingPunchOutDays++
		case StatusRegularized:
			summary.RegularizedDays++
		}
	}
	return summary
}
