package service

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	eventModel "hostelku_backend/internals/features/attendance/events/model"
	"hostelku_backend/internals/features/attendance/regularizations/model"
	"hostelku_backend/internals/features/attendance/regularizations/repository"
)

var jakarta = time.FixedZone("WIB", 7*3600)

// mockRegularizationStore: request + event di memori, tanpa DB.
type mockRegularizationStore struct {
	requests map[uuid.UUID]*model.RegularizationRequestModel
	events   []eventModel.AttendanceEventModel
	saveErr  error
}

func newMockStore() *mockRegularizationStore {
	return &mockRegularizationStore{requests: map[uuid.UUID]*model.RegularizationRequestModel{}}
}

func (m *mockRegularizationStore) WithTx(fn func(repository.RegularizationStore) error) error {
	return fn(m)
}

func (m *mockRegularizationStore) CreateRequest(req *model.RegularizationRequestModel) error {
	if req.RegularizationRequestID == uuid.Nil {
		req.RegularizationRequestID = uuid.New()
	}
	cp := *req
	m.requests[req.RegularizationRequestID] = &cp
	return nil
}

func (m *mockRegularizationStore) GetRequest(id uuid.UUID) (*model.RegularizationRequestModel, error) {
	req, ok := m.requests[id]
	if !ok {
		return nil, nil
	}
	cp := *req
	return &cp, nil
}

func (m *mockRegularizationStore) SaveRequest(req *model.RegularizationRequestModel) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	cp := *req
	m.requests[req.RegularizationRequestID] = &cp
	return nil
}

func (m *mockRegularizationStore) ListByUser(userID uuid.UUID) ([]model.RegularizationRequestModel, error) {
	var out []model.RegularizationRequestModel
	for _, req := range m.requests {
		if req.RegularizationRequestUserID == userID {
			out = append(out, *req)
		}
	}
	return out, nil
}

func (m *mockRegularizationStore) ListByStatus(status string, limit, offset int) ([]model.RegularizationRequestModel, error) {
	var out []model.RegularizationRequestModel
	for _, req := range m.requests {
		if req.RegularizationRequestStatus == status {
			out = append(out, *req)
		}
	}
	return out, nil
}

func (m *mockRegularizationStore) CreateEvent(ev *eventModel.AttendanceEventModel) error {
	m.events = append(m.events, *ev)
	return nil
}

func str(s string) *string { return &s }

func newTestWorkflow(store *mockRegularizationStore) *WorkflowService {
	svc := NewWorkflowService(store, jakarta)
	svc.now = func() time.Time { return time.Date(2026, 3, 10, 12, 0, 0, 0, jakarta) }
	return svc
}

func TestSubmit_RequiresReasonAndTime(t *testing.T) {
	svc := newTestWorkflow(newMockStore())
	date := time.Date(2026, 3, 9, 0, 0, 0, 0, jakarta)

	if _, err := svc.Submit(uuid.New(), date, "   ", str("09:00"), nil); !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("tanpa alasan harus ErrInvalidRequest, dapat %v", err)
	}
	if _, err := svc.Submit(uuid.New(), date, "lupa punch", nil, nil); !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("tanpa jam harus ErrInvalidRequest, dapat %v", err)
	}
	if _, err := svc.Submit(uuid.New(), date, "lupa punch", str("25:99"), nil); !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("jam rusak harus ErrInvalidRequest, dapat %v", err)
	}
}

func TestSubmit_CreatesPendingRequest(t *testing.T) {
	store := newMockStore()
	svc := newTestWorkflow(store)
	userID := uuid.New()

	req, err := svc.Submit(userID, time.Date(2026, 3, 9, 15, 30, 0, 0, jakarta), "lupa punch in", str("09:00"), str("17:00"))
	if err != nil {
		t.Fatalf("submit gagal: %v", err)
	}
	if req.RegularizationRequestStatus != model.StatusPending {
		t.Errorf("status awal %q, mau pending", req.RegularizationRequestStatus)
	}
	// tanggal dinormalkan ke awal hari lokal
	if got := req.RegularizationRequestDate; got.Hour() != 0 || got.Day() != 9 {
		t.Errorf("tanggal tidak dinormalkan: %v", got)
	}
}

func TestReview_ApproveMaterializesEvents(t *testing.T) {
	store := newMockStore()
	svc := newTestWorkflow(store)
	userID := uuid.New()
	reviewerID := uuid.New()

	req, err := svc.Submit(userID, time.Date(2026, 3, 9, 0, 0, 0, 0, jakarta), "lupa punch", str("09:00"), str("17:00"))
	if err != nil {
		t.Fatalf("submit gagal: %v", err)
	}

	reviewed, err := svc.Review(req.RegularizationRequestID, DecisionApprove, reviewerID)
	if err != nil {
		t.Fatalf("review gagal: %v", err)
	}
	if reviewed.RegularizationRequestStatus != model.StatusApproved {
		t.Fatalf("status %q, mau approved", reviewed.RegularizationRequestStatus)
	}
	if reviewed.RegularizationRequestProcessedAt == nil {
		t.Errorf("processedAt harus terisi saat keluar dari pending")
	}
	if reviewed.RegularizationRequestReviewerID == nil || *reviewed.RegularizationRequestReviewerID != reviewerID {
		t.Errorf("reviewer tidak tercatat")
	}

	if len(store.events) != 2 {
		t.Fatalf("approve in+out harus bikin 2 event, dapat %d", len(store.events))
	}
	in, out := store.events[0], store.events[1]
	if in.AttendanceEventDirection != eventModel.DirectionPunchIn || out.AttendanceEventDirection != eventModel.DirectionPunchOut {
		t.Errorf("arah event salah: %q, %q", in.AttendanceEventDirection, out.AttendanceEventDirection)
	}
	for _, ev := range store.events {
		if !ev.AttendanceEventRegularized {
			t.Errorf("event hasil approve harus regularized")
		}
		if ev.AttendanceEventUserID != userID {
			t.Errorf("event harus milik pemohon, bukan reviewer")
		}
		if ev.AttendanceEventReason == nil || *ev.AttendanceEventReason != "lupa punch" {
			t.Errorf("alasan request harus tersalin ke event")
		}
		if ev.AttendanceEventRegularizationID == nil || *ev.AttendanceEventRegularizationID != req.RegularizationRequestID {
			t.Errorf("event harus menunjuk balik ke request")
		}
	}
	if h := in.AttendanceEventTimestamp.In(jakarta).Hour(); h != 9 {
		t.Errorf("punch_in jam %d, mau 9", h)
	}
	if h := out.AttendanceEventTimestamp.In(jakarta).Hour(); h != 17 {
		t.Errorf("punch_out jam %d, mau 17", h)
	}
}

func TestReview_ApproveInTimeOnly(t *testing.T) {
	store := newMockStore()
	svc := newTestWorkflow(store)

	req, _ := svc.Submit(uuid.New(), time.Date(2026, 3, 9, 0, 0, 0, 0, jakarta), "hanya masuk", str("09:00"), nil)
	if _, err := svc.Review(req.RegularizationRequestID, DecisionApprove, uuid.New()); err != nil {
		t.Fatalf("review gagal: %v", err)
	}
	if len(store.events) != 1 {
		t.Fatalf("in saja harus 1 event, dapat %d", len(store.events))
	}
	if store.events[0].AttendanceEventDirection != eventModel.DirectionPunchIn {
		t.Errorf("arah %q, mau punch_in", store.events[0].AttendanceEventDirection)
	}
}

func TestReview_RejectCreatesNoEvents(t *testing.T) {
	store := newMockStore()
	svc := newTestWorkflow(store)

	req, _ := svc.Submit(uuid.New(), time.Date(2026, 3, 9, 0, 0, 0, 0, jakarta), "salah hari", str("09:00"), str("17:00"))
	reviewed, err := svc.Review(req.RegularizationRequestID, DecisionReject, uuid.New())
	if err != nil {
		t.Fatalf("review gagal: %v", err)
	}
	if reviewed.RegularizationRequestStatus != model.StatusRejected {
		t.Fatalf("status %q, mau rejected", reviewed.RegularizationRequestStatus)
	}
	if len(store.events) != 0 {
		t.Fatalf("reject tidak boleh bikin event, dapat %d", len(store.events))
	}
}

func TestReview_TerminalOnce(t *testing.T) {
	store := newMockStore()
	svc := newTestWorkflow(store)

	req, _ := svc.Submit(uuid.New(), time.Date(2026, 3, 9, 0, 0, 0, 0, jakarta), "lupa punch", str("09:00"), str("17:00"))
	if _, err := svc.Review(req.RegularizationRequestID, DecisionApprove, uuid.New()); err != nil {
		t.Fatalf("review pertama gagal: %v", err)
	}

	// review kedua: approve lagi maupun reject, dua-duanya ditolak
	if _, err := svc.Review(req.RegularizationRequestID, DecisionApprove, uuid.New()); !errors.Is(err, ErrAlreadyProcessed) {
		t.Errorf("approve ulang harus ErrAlreadyProcessed, dapat %v", err)
	}
	if _, err := svc.Review(req.RegularizationRequestID, DecisionReject, uuid.New()); !errors.Is(err, ErrAlreadyProcessed) {
		t.Errorf("reject setelah approve harus ErrAlreadyProcessed, dapat %v", err)
	}
	if len(store.events) != 2 {
		t.Fatalf("review ulang tidak boleh duplikasi event, dapat %d", len(store.events))
	}
}

func TestReview_UnknownDecisionAndMissingRequest(t *testing.T) {
	svc := newTestWorkflow(newMockStore())

	if _, err := svc.Review(uuid.New(), "maybe", uuid.New()); !errors.Is(err, ErrUnknownDecision) {
		t.Errorf("keputusan asing harus ErrUnknownDecision, dapat %v", err)
	}
	if _, err := svc.Review(uuid.New(), DecisionApprove, uuid.New()); !errors.Is(err, ErrRequestNotFound) {
		t.Errorf("request tak ada harus ErrRequestNotFound, dapat %v", err)
	}
}
