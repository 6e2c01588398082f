package service

import (
	"log"
	"os"
	"sync"
	"time"
)

var (
	tzOnce sync.Once
	tzLoc  *time.Location
)

// AttendanceLocation: timezone untuk semua hitungan hari/telat absensi.
// Diatur lewat ATTENDANCE_TZ, default Asia/Kolkata.
func AttendanceLocation() *time.Location {
	tzOnce.Do(func() {
		name := os.Getenv("ATTENDANCE_TZ")
		if name == "" {
			name = "Asia/Kolkata"
		}
		loc, err := time.LoadLocation(name)
		if err != nil {
			log.Printf("[WARN] ATTENDANCE_TZ %q tidak valid, fallback ke Local: %v", name, err)
			loc = time.Local
		}
		tzLoc = loc
	})
	return tzLoc
}
