package service

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"hostelku_backend/internals/features/attendance/events/model"
	"hostelku_backend/internals/features/attendance/events/repository"
)

var jakarta = time.FixedZone("WIB", 7*3600)

// mockEventStore menyimpan event di memori; WithTx langsung memanggil fn
// dengan dirinya sendiri.
type mockEventStore struct {
	events    []model.AttendanceEventModel
	createErr error
}

func (m *mockEventStore) WithTx(fn func(repository.EventStore) error) error {
	return fn(m)
}

func (m *mockEventStore) LatestOnDay(userID uuid.UUID, dayStart, dayEnd time.Time) (*model.AttendanceEventModel, error) {
	var latest *model.AttendanceEventModel
	for i := range m.events {
		ev := &m.events[i]
		if ev.AttendanceEventUserID != userID {
			continue
		}
		ts := ev.AttendanceEventTimestamp
		if ts.Before(dayStart) || !ts.Before(dayEnd) {
			continue
		}
		if latest == nil || ts.After(latest.AttendanceEventTimestamp) {
			latest = ev
		}
	}
	return latest, nil
}

func (m *mockEventStore) Create(ev *model.AttendanceEventModel) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.events = append(m.events, *ev)
	return nil
}

func (m *mockEventStore) ListRange(userID uuid.UUID, from, to time.Time) ([]model.AttendanceEventModel, error) {
	var out []model.AttendanceEventModel
	for i := range m.events {
		ev := m.events[i]
		if ev.AttendanceEventUserID != userID {
			continue
		}
		ts := ev.AttendanceEventTimestamp
		if !ts.Before(from) && ts.Before(to) {
			out = append(out, ev)
		}
	}
	return out, nil
}

func newTestService(store *mockEventStore, now time.Time) *PunchService {
	svc := NewPunchService(store, jakarta)
	svc.now = func() time.Time { return now }
	return svc
}

func f64(v float64) *float64 { return &v }

func TestRecordPunch_LocationRequired(t *testing.T) {
	store := &mockEventStore{}
	svc := newTestService(store, time.Date(2026, 3, 9, 9, 0, 0, 0, jakarta))

	if _, err := svc.RecordPunch(uuid.New(), nil, nil); !errors.Is(err, ErrLocationRequired) {
		t.Fatalf("tanpa lokasi harus ErrLocationRequired, dapat %v", err)
	}
	if _, err := svc.RecordPunch(uuid.New(), f64(-6.2), nil); !errors.Is(err, ErrLocationRequired) {
		t.Fatalf("lokasi parsial harus ErrLocationRequired, dapat %v", err)
	}
	if len(store.events) != 0 {
		t.Fatalf("punch gagal tidak boleh menulis event")
	}
}

func TestRecordPunch_DirectionAlternates(t *testing.T) {
	store := &mockEventStore{}
	userID := uuid.New()
	base := time.Date(2026, 3, 9, 9, 0, 0, 0, jakarta)

	for i, want := range []string{
		model.DirectionPunchIn,
		model.DirectionPunchOut,
		model.DirectionPunchIn,
		model.DirectionPunchOut,
	} {
		svc := newTestService(store, base.Add(time.Duration(i)*time.Hour))
		ev, err := svc.RecordPunch(userID, f64(-6.2), f64(106.8))
		if err != nil {
			t.Fatalf("punch #%d gagal: %v", i+1, err)
		}
		if ev.AttendanceEventDirection != want {
			t.Fatalf("punch #%d arah %q, mau %q", i+1, ev.AttendanceEventDirection, want)
		}
	}
}

func TestRecordPunch_NewDayStartsWithPunchIn(t *testing.T) {
	store := &mockEventStore{}
	userID := uuid.New()

	// kemarin tutup dengan punch_in yang menggantung
	store.events = append(store.events, model.AttendanceEventModel{
		AttendanceEventUserID:    userID,
		AttendanceEventTimestamp: time.Date(2026, 3, 8, 9, 0, 0, 0, jakarta),
		AttendanceEventDirection: model.DirectionPunchIn,
	})

	svc := newTestService(store, time.Date(2026, 3, 9, 8, 0, 0, 0, jakarta))
	ev, err := svc.RecordPunch(userID, f64(-6.2), f64(106.8))
	if err != nil {
		t.Fatalf("punch gagal: %v", err)
	}
	if ev.AttendanceEventDirection != model.DirectionPunchIn {
		t.Fatalf("hari baru harus mulai punch_in, dapat %q", ev.AttendanceEventDirection)
	}
}

func TestRecordPunch_LateFlag(t *testing.T) {
	userID := uuid.New()

	onTime := newTestService(&mockEventStore{}, time.Date(2026, 3, 9, 9, 30, 0, 0, jakarta))
	ev, err := onTime.RecordPunch(userID, f64(-6.2), f64(106.8))
	if err != nil {
		t.Fatalf("punch gagal: %v", err)
	}
	if ev.AttendanceEventIsLate {
		t.Errorf("punch 09:30 tepat tidak telat")
	}

	late := newTestService(&mockEventStore{}, time.Date(2026, 3, 9, 9, 31, 0, 0, jakarta))
	ev, err = late.RecordPunch(userID, f64(-6.2), f64(106.8))
	if err != nil {
		t.Fatalf("punch gagal: %v", err)
	}
	if !ev.AttendanceEventIsLate {
		t.Errorf("punch 09:31 harus telat")
	}
}

func TestRecordPunch_LateOnlyForPunchIn(t *testing.T) {
	store := &mockEventStore{}
	userID := uuid.New()

	in := newTestService(store, time.Date(2026, 3, 9, 8, 0, 0, 0, jakarta))
	if _, err := in.RecordPunch(userID, f64(-6.2), f64(106.8)); err != nil {
		t.Fatalf("punch gagal: %v", err)
	}

	// punch_out jam 17:00 jelas melewati 09:30, tapi bukan telat
	out := newTestService(store, time.Date(2026, 3, 9, 17, 0, 0, 0, jakarta))
	ev, err := out.RecordPunch(userID, f64(-6.2), f64(106.8))
	if err != nil {
		t.Fatalf("punch gagal: %v", err)
	}
	if ev.AttendanceEventDirection != model.DirectionPunchOut {
		t.Fatalf("arah %q, mau punch_out", ev.AttendanceEventDirection)
	}
	if ev.AttendanceEventIsLate {
		t.Errorf("isLate hanya bermakna untuk punch_in")
	}
}

func TestCurrentStatus(t *testing.T) {
	store := &mockEventStore{}
	userID := uuid.New()
	now := time.Date(2026, 3, 9, 10, 0, 0, 0, jakarta)
	svc := newTestService(store, now)

	status, err := svc.CurrentStatus(userID)
	if err != nil {
		t.Fatalf("status gagal: %v", err)
	}
	if status != "out" {
		t.Fatalf("tanpa event harus out, dapat %q", status)
	}

	if _, err := svc.RecordPunch(userID, f64(-6.2), f64(106.8)); err != nil {
		t.Fatalf("punch gagal: %v", err)
	}
	status, _ = svc.CurrentStatus(userID)
	if status != "in" {
		t.Fatalf("setelah punch_in harus in, dapat %q", status)
	}

	svc.now = func() time.Time { return now.Add(time.Hour) }
	if _, err := svc.RecordPunch(userID, f64(-6.2), f64(106.8)); err != nil {
		t.Fatalf("punch gagal: %v", err)
	}
	status, _ = svc.CurrentStatus(userID)
	if status != "out" {
		t.Fatalf("setelah punch_out harus out, dapat %q", status)
	}
}
