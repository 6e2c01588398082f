package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	eventModel "hostelku_backend/internals/features/attendance/events/model"
	"hostelku_backend/internals/features/attendance/regularizations/model"
)

// RegularizationStore: akses request + pembuatan event hasil approve.
// Event ikut di sini supaya approve bisa jalan dalam SATU transaksi.
type RegularizationStore interface {
	WithTx(fn func(RegularizationStore) error) error

	CreateRequest(req *model.RegularizationRequestModel) error
	// GetRequest: di dalam transaksi baris dikunci (FOR UPDATE).
	// Mengembalikan nil bila tidak ada.
	GetRequest(id uuid.UUID) (*model.RegularizationRequestModel, error)
	SaveRequest(req *model.RegularizationRequestModel) error

	ListByUser(userID uuid.UUID) ([]model.RegularizationRequestModel, error)
	ListByStatus(status string, limit, offset int) ([]model.RegularizationRequestModel, error)

	CreateEvent(ev *eventModel.AttendanceEventModel) error
}

type gormRegularizationStore struct {
	db   *gorm.DB
	inTx bool
}

func NewRegularizationStore(db *gorm.DB) RegularizationStore {
	return &gormRegularizationStore{db: db}
}

func (s *gormRegularizationStore) WithTx(fn func(RegularizationStore) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&gormRegularizationStore{db: tx, inTx: true})
	})
}

func (s *gormRegularizationStore) CreateRequest(req *model.RegularizationRequestModel) error {
	return s.db.Create(req).Error
}

func (s *gormRegularizationStore) GetRequest(id uuid.UUID) (*model.RegularizationRequestModel, error) {
	q := s.db.Where("regularization_request_id = ?", id)
	if s.inTx {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var req model.RegularizationRequestModel
	if err := q.First(&req).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &req, nil
}

func (s *gormRegularizationStore) SaveRequest(req *model.RegularizationRequestModel) error {
	return s.db.Save(req).Error
}

func (s *gormRegularizationStore) ListByUser(userID uuid.UUID) ([]model.RegularizationRequestModel, error) {
	var reqs []model.RegularizationRequestModel
	err := s.db.
		Where("regularization_request_user_id = ?", userID).
		Order("regularization_request_created_at DESC").
		Find(&reqs).Error
	return reqs, err
}

func (s *gormRegularizationStore) ListByStatus(status string, limit, offset int) ([]model.RegularizationRequestModel, error) {
	q := s.db.Order("regularization_request_created_at ASC")
	if status != "" {
		q = q.Where("regularization_request_status = ?", status)
	}
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}

	var reqs []model.RegularizationRequestModel
	err := q.Find(&reqs).Error
	return reqs, err
}

func (s *gormRegularizationStore) CreateEvent(ev *eventModel.AttendanceEventModel) error {
	return s.db.Create(ev).Error
}
