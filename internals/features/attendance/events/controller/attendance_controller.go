package controller

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	aggService "hostelku_backend/internals/features/attendance/aggregate/service"
	"hostelku_backend/internals/features/attendance/events/dto"
	"hostelku_backend/internals/features/attendance/events/repository"
	"hostelku_backend/internals/features/attendance/events/service"
	helper "hostelku_backend/internals/helpers"
	authMw "hostelku_backend/internals/middlewares/auth"
)

type AttendanceController struct {
	DB    *gorm.DB
	punch *service.PunchService
	store repository.EventStore
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	store := repository.NewEventStore(db)
	return &AttendanceController{
		DB:    db,
		punch: service.NewPunchService(store, service.AttendanceLocation()),
		store: store,
	}
}

/* ===================== PUNCH ===================== */
// POST /api/u/attendance/punch
func (ctrl *AttendanceController) Punch(c *fiber.Ctx) error {
	userID, err := authMw.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.PunchRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	ev, err := ctrl.punch.RecordPunch(userID, req.Latitude, req.Longitude)
	if err != nil {
		if errors.Is(err, service.ErrLocationRequired) {
			return helper.Error(c, fiber.StatusBadRequest, "Lokasi tidak tersedia, izinkan akses lokasi lalu coba lagi")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mencatat punch")
	}

	msg := "Punch in tercatat"
	if ev.IsPunchOut() {
		msg = "Punch out tercatat"
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, msg, dto.ToAttendanceEventResponse(ev))
}

/* ===================== STATUS ===================== */
// GET /api/u/attendance/status - "in"/"out" hari ini (derived, bukan disimpan)
func (ctrl *AttendanceController) Status(c *fiber.Ctx) error {
	userID, err := authMw.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	status, err := ctrl.punch.CurrentStatus(userID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membaca status")
	}
	return helper.Success(c, "OK", fiber.Map{"status": status})
}

/* ===================== EVENTS ===================== */
// GET /api/u/attendance/events?date=YYYY-MM-DD (default: hari ini)
func (ctrl *AttendanceController) ListEvents(c *fiber.Ctx) error {
	userID, err := authMw.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	loc := service.AttendanceLocation()
	day := time.Now().In(loc)
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, loc)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Format date harus YYYY-MM-DD")
		}
		day = parsed
	}
	from, to := service.DayBounds(day, loc)

	events, err := ctrl.punch.ListEvents(userID, from, to)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil event")
	}
	return helper.Success(c, "OK", dto.ToAttendanceEventResponseList(events))
}

/* ===================== CALENDAR ===================== */
// GET /api/u/attendance/calendar?month=&year=
func (ctrl *AttendanceController) Calendar(c *fiber.Ctx) error {
	userID, err := authMw.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	loc := service.AttendanceLocation()
	month, year, err := parseMonthYear(c, loc)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	from := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	to := from.AddDate(0, 1, 0)
	events, err := ctrl.store.ListRange(userID, from, to)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil event")
	}

	days := aggService.CalendarForMonth(events, month, year, time.Now().In(loc), loc)
	return helper.Success(c, "OK", fiber.Map{
		"month": int(month),
		"year":  year,
		"days":  days,
	})
}

/* ===================== SUMMARY ===================== */
// GET /api/u/attendance/summary?month=&year=
func (ctrl *AttendanceController) Summary(c *fiber.Ctx) error {
	userID, err := authMw.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	loc := service.AttendanceLocation()
	month, year, err := parseMonthYear(c, loc)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	from := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	to := from.AddDate(0, 1, 0)
	events, err := ctrl.store.ListRange(userID, from, to)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil event")
	}

	summary := aggService.SummarizeMonth(events, month, year, time.Now().In(loc), loc)
	return helper.Success(c, "OK", summary)
}

func parseMonthYear(c *fiber.Ctx, loc *time.Location) (time.Month, int, error) {
	now := time.Now().In(loc)

	month := int(now.Month())
	if raw := c.Query("month"); raw != "" {
		m, err := strconv.Atoi(raw)
		if err != nil || m < 1 || m > 12 {
			return 0, 0, fiber.NewError(fiber.StatusBadRequest, "month harus 1-12")
		}
		month = m
	}

	year := now.Year()
	if raw := c.Query("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil || y < 2000 || y > 2100 {
			return 0, 0, fiber.NewError(fiber.StatusBadRequest, "year tidak valid")
		}
		year = y
	}

	return time.Month(month), year, nil
}
