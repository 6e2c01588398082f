package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hostelku_backend/internals/features/attendance/events/model"
)

// EventStore: akses log punch, dipisah interface biar service bisa dites tanpa DB.
type EventStore interface {
	// WithTx menjalankan fn dalam satu transaksi; store di dalam fn terikat tx.
	WithTx(fn func(EventStore) error) error

	// LatestOnDay: event terakhir user pada rentang [dayStart, dayEnd).
	// Di dalam transaksi baris dikunci (FOR UPDATE) untuk serialisasi punch.
	// Mengembalikan nil bila belum ada event.
	LatestOnDay(userID uuid.UUID, dayStart, dayEnd time.Time) (*model.AttendanceEventModel, error)

	// Create menambahkan satu event; log bersifat append-only.
	Create(ev *model.AttendanceEventModel) error

	// ListRange: semua event user pada [from, to), urut timestamp naik.
	ListRange(userID uuid.UUID, from, to time.Time) ([]model.AttendanceEventModel, error)
}

type gormEventStore struct {
	db   *gorm.DB
	inTx bool
}

func NewEventStore(db *gorm.DB) EventStore {
	return &gormEventStore{db: db}
}

func (s *gormEventStore) WithTx(fn func(EventStore) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&gormEventStore{db: tx, inTx: true})
	})
}

func (s *gormEventStore) LatestOnDay(userID uuid.UUID, dayStart, dayEnd time.Time) (*model.AttendanceEventModel, error) {
	q := s.db.
		Where("attendance_event_user_id = ?", userID).
		Where("attendance_event_timestamp >= ? AND attendance_event_timestamp < ?", dayStart, dayEnd).
		Order("attendance_event_timestamp DESC")
	if s.inTx {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var ev model.AttendanceEventModel
	if err := q.First(&ev).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ev, nil
}

func (s *gormEventStore) Create(ev *model.AttendanceEventModel) error {
	return s.db.Create(ev).Error
}

func (s *gormEventStore) ListRange(userID uuid.UUID, from, to time.Time) ([]model.AttendanceEventModel, error) {
	var events []model.AttendanceEventModel
	err := s.db.
		Where("attendance_event_user_id = ?", userID).
		Where("attendance_event_timestamp >= ? AND attendance_event_timestamp < ?", from, to).
		Order("attendance_event_timestamp ASC").
		Find(&events).Error
	return events, err
}
