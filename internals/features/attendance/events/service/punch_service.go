package service

import (
	"errors"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"hostelku_backend/internals/features/attendance/events/model"
	"hostelku_backend/internals/features/attendance/events/repository"
)

// Batas telat punch-in: 09:30 waktu lokal
const (
	LateThresholdHour   = 9
	LateThresholdMinute = 30
)

var (
	// ErrLocationRequired: punch normal wajib membawa lokasi
	ErrLocationRequired = errors.New("lokasi wajib untuk punch")
)

type PunchService struct {
	store repository.EventStore
	loc   *time.Location
	now   func() time.Time
}

func NewPunchService(store repository.EventStore, loc *time.Location) *PunchService {
	if loc == nil {
		loc = time.Local
	}
	return &PunchService{
		store: store,
		loc:   loc,
		now:   time.Now,
	}
}

// NextDirection: arah punch berikutnya dari event terakhir hari ini.
// Belum ada event, atau terakhir punch_out → punch_in; terakhir punch_in → punch_out.
func NextDirection(latest *model.AttendanceEventModel) string {
	if latest != nil && latest.IsPunchIn() {
		return model.DirectionPunchOut
	}
	return model.DirectionPunchIn
}

// IsLateAt: true bila jam lokal t melewati batas telat.
func IsLateAt(t time.Time) bool {
	h, m, _ := t.Clock()
	if h != LateThresholdHour {
		return h > LateThresholdHour
	}
	return m > LateThresholdMinute
}

// DayBounds: [awal, akhir) hari kalender yang memuat t, di timezone lokal.
func DayBounds(t time.Time, loc *time.Location) (time.Time, time.Time) {
	local := t.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}

// RecordPunch mencatat satu punch untuk user.
// Arah bergantian dari event terakhir hari ini; seluruhnya dalam satu transaksi
// dengan row lock supaya punch beruntun dari beberapa tab tidak saling menyalip.
func (s *PunchService) RecordPunch(userID uuid.UUID, lat, lng *float64) (*model.AttendanceEventModel, error) {
	if lat == nil || lng == nil {
		return nil, ErrLocationRequired
	}

	locJSON, err := sonic.Marshal(map[string]float64{"lat": *lat, "lng": *lng})
	if err != nil {
		return nil, err
	}

	now := s.now()
	dayStart, dayEnd := DayBounds(now, s.loc)

	var created *model.AttendanceEventModel
	err = s.store.WithTx(func(tx repository.EventStore) error {
		latest, err := tx.LatestOnDay(userID, dayStart, dayEnd)
		if err != nil {
			return err
		}

		direction := NextDirection(latest)
		ev := &model.AttendanceEventModel{
			AttendanceEventUserID:    userID,
			AttendanceEventTimestamp: now,
			AttendanceEventDirection: direction,
			AttendanceEventLocation:  datatypes.JSON(locJSON),
		}
		// isLate hanya bermakna untuk punch_in
		if direction == model.DirectionPunchIn {
			ev.AttendanceEventIsLate = IsLateAt(now.In(s.loc))
		}

		if err := tx.Create(ev); err != nil {
			return err
		}
		created = ev
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// ListEvents: event user pada [from, to), urut naik.
func (s *PunchService) ListEvents(userID uuid.UUID, from, to time.Time) ([]model.AttendanceEventModel, error) {
	return s.store.ListRange(userID, from, to)
}

// CurrentStatus: "in"/"out" diturunkan dari event terakhir hari ini, tidak disimpan.
func (s *PunchService) CurrentStatus(userID uuid.UUID) (string, error) {
	dayStart, dayEnd := DayBounds(s.now(), s.loc)
	latest, err := s.store.LatestOnDay(userID, dayStart, dayEnd)
	if err != nil {
		return "", err
	}
	if latest != nil && latest.IsPunchIn() {
		return "in", nil
	}
	return "out", nil
}
