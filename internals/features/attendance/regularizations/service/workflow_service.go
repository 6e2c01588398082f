package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	eventModel "hostelku_backend/internals/features/attendance/events/model"
	"hostelku_backend/internals/features/attendance/regularizations/model"
	"hostelku_backend/internals/features/attendance/regularizations/repository"
)

const (
	DecisionApprove = "approve"
	DecisionReject  = "reject"
)

var (
	// ErrInvalidRequest: submit tanpa jam in/out atau tanpa alasan
	ErrInvalidRequest = errors.New("permintaan regularisasi tidak valid")
	// ErrAlreadyProcessed: request sudah keluar dari pending (terminal)
	ErrAlreadyProcessed = errors.New("permintaan sudah diproses")
	ErrRequestNotFound  = errors.New("permintaan tidak ditemukan")
	ErrUnknownDecision  = errors.New("keputusan tidak dikenal")
)

type WorkflowService struct {
	store repository.RegularizationStore
	loc   *time.Location
	now   func() time.Time
}

func NewWorkflowService(store repository.RegularizationStore, loc *time.Location) *WorkflowService {
	if loc == nil {
		loc = time.Local
	}
	return &WorkflowService{
		store: store,
		loc:   loc,
		now:   time.Now,
	}
}

// parseClockTime menerima "HH:MM" (24 jam).
func parseClockTime(raw string) (hour, minute int, err error) {
	parts := strings.SplitN(strings.TrimSpace(raw), ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("format jam harus HH:MM")
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("jam tidak valid")
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("menit tidak valid")
	}
	return hour, minute, nil
}

// Submit membuat request regularisasi berstatus pending.
// Minimal satu dari inTime/outTime wajib ada; jam divalidasi di muka supaya
// approve tidak pernah gagal parse belakangan.
func (s *WorkflowService) Submit(userID uuid.UUID, date time.Time, reason string, inTime, outTime *string) (*model.RegularizationRequestModel, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, ErrInvalidRequest
	}
	if inTime == nil && outTime == nil {
		return nil, ErrInvalidRequest
	}
	for _, t := range []*string{inTime, outTime} {
		if t == nil {
			continue
		}
		if _, _, err := parseClockTime(*t); err != nil {
			return nil, ErrInvalidRequest
		}
	}

	req := &model.RegularizationRequestModel{
		RegularizationRequestUserID:  userID,
		RegularizationRequestDate:    truncateToDate(date, s.loc),
		RegularizationRequestReason:  strings.TrimSpace(reason),
		RegularizationRequestInTime:  inTime,
		RegularizationRequestOutTime: outTime,
		RegularizationRequestStatus:  model.StatusPending,
	}
	if err := s.store.CreateRequest(req); err != nil {
		return nil, err
	}
	return req, nil
}

// Review memproses satu request: approve atau reject, sekali saja.
// Approve mematerialisasi event regularized untuk tiap jam yang diminta.
// Update status + pembuatan event berjalan dalam satu transaksi, jadi tidak
// ada jendela "event sudah ada tapi request masih pending".
func (s *WorkflowService) Review(requestID uuid.UUID, decision string, reviewerID uuid.UUID) (*model.RegularizationRequestModel, error) {
	if decision != DecisionApprove && decision != DecisionReject {
		return nil, ErrUnknownDecision
	}

	var reviewed *model.RegularizationRequestModel
	err := s.store.WithTx(func(tx repository.RegularizationStore) error {
		req, err := tx.GetRequest(requestID)
		if err != nil {
			return err
		}
		if req == nil {
			return ErrRequestNotFound
		}
		if !req.IsPending() {
			return ErrAlreadyProcessed
		}

		now := s.now()
		req.RegularizationRequestReviewerID = &reviewerID
		req.RegularizationRequestProcessedAt = &now

		if decision == DecisionReject {
			req.RegularizationRequestStatus = model.StatusRejected
			if err := tx.SaveRequest(req); err != nil {
				return err
			}
			reviewed = req
			return nil
		}

		// status dipersist dulu, event menyusul dalam tx yang sama
		req.RegularizationRequestStatus = model.StatusApproved
		if err := tx.SaveRequest(req); err != nil {
			return err
		}

		for _, p := range []struct {
			clock     *string
			direction string
		}{
			{req.RegularizationRequestInTime, eventModel.DirectionPunchIn},
			{req.RegularizationRequestOutTime, eventModel.DirectionPunchOut},
		} {
			if p.clock == nil {
				continue
			}
			hour, minute, err := parseClockTime(*p.clock)
			if err != nil {
				return err
			}

			d := req.RegularizationRequestDate
			ts := time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, s.loc)

			reason := req.RegularizationRequestReason
			ev := &eventModel.AttendanceEventModel{
				AttendanceEventUserID:           req.RegularizationRequestUserID,
				AttendanceEventTimestamp:        ts,
				AttendanceEventDirection:        p.direction,
				AttendanceEventRegularized:      true,
				AttendanceEventReason:           &reason,
				AttendanceEventRegularizationID: &req.RegularizationRequestID,
			}
			// event regularisasi tidak butuh lokasi
			if err := tx.CreateEvent(ev); err != nil {
				return err
			}
		}

		reviewed = req
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reviewed, nil
}

// ListByUser: request milik user ybs.
func (s *WorkflowService) ListByUser(userID uuid.UUID) ([]model.RegularizationRequestModel, error) {
	return s.store.ListByUser(userID)
}

// ListByStatus: antrean untuk warden/staff.
func (s *WorkflowService) ListByStatus(status string, limit, offset int) ([]model.RegularizationRequestModel, error) {
	return s.store.ListByStatus(status, limit, offset)
}

func truncateToDate(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}
