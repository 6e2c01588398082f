package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	eventService "hostelku_backend/internals/features/attendance/events/service"
	"hostelku_backend/internals/features/attendance/regularizations/dto"
	"hostelku_backend/internals/features/attendance/regularizations/repository"
	"hostelku_backend/internals/features/attendance/regularizations/service"
	helper "hostelku_backend/internals/helpers"
	authMw "hostelku_backend/internals/middlewares/auth"
)

var validate = validator.New()

type RegularizationController struct {
	DB       *gorm.DB
	workflow *service.WorkflowService
}

func NewRegularizationController(db *gorm.DB) *RegularizationController {
	store := repository.NewRegularizationStore(db)
	return &RegularizationController{
		DB:       db,
		workflow: service.NewWorkflowService(store, eventService.AttendanceLocation()),
	}
}

/* ===================== SUBMIT (student) ===================== */
// POST /api/u/attendance/regularizations
func (ctrl *RegularizationController) Submit(c *fiber.Ctx) error {
	userID, err := authMw.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.SubmitRegularizationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	loc := eventService.AttendanceLocation()
	date, err := time.ParseInLocation("2006-01-02", req.Date, loc)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format date harus YYYY-MM-DD")
	}

	created, err := ctrl.workflow.Submit(userID, date, req.Reason, req.InTime, req.OutTime)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRequest) {
			return helper.Error(c, fiber.StatusBadRequest, "Isi minimal satu jam (in/out) dengan format HH:MM beserta alasan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat permintaan regularisasi")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Permintaan regularisasi terkirim", dto.ToRegularizationResponse(created))
}

/* ===================== LIST (student) ===================== */
// GET /api/u/attendance/regularizations
func (ctrl *RegularizationController) ListMine(c *fiber.Ctx) error {
	userID, err := authMw.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	reqs, err := ctrl.workflow.ListByUser(userID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil permintaan")
	}
	return helper.Success(c, "OK", dto.ToRegularizationResponseList(reqs))
}

/* ===================== LIST (reviewer) ===================== */
// GET /api/a/attendance/regularizations?status=pending
func (ctrl *RegularizationController) ListForReview(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)
	status := c.Query("status", "pending")

	reqs, err := ctrl.workflow.ListByStatus(status, paging.Limit, paging.Offset)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil antrean")
	}
	return helper.Success(c, "OK", dto.ToRegularizationResponseList(reqs))
}

/* ===================== REVIEW (reviewer) ===================== */
// POST /api/a/attendance/regularizations/:id/review
func (ctrl *RegularizationController) Review(c *fiber.Ctx) error {
	reviewerID, err := authMw.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	requestID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.ReviewRegularizationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	reviewed, err := ctrl.workflow.Review(requestID, req.Decision, reviewerID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRequestNotFound):
			return helper.Error(c, fiber.StatusNotFound, "Permintaan tidak ditemukan")
		case errors.Is(err, service.ErrAlreadyProcessed):
			// dibedakan dari error upstream supaya UI bisa bilang "sudah diproses"
			return helper.Error(c, fiber.StatusConflict, "Permintaan sudah diproses sebelumnya")
		case errors.Is(err, service.ErrUnknownDecision):
			return helper.Error(c, fiber.StatusBadRequest, "Decision harus approve atau reject")
		default:
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses permintaan")
		}
	}

	msg := "Permintaan disetujui"
	if reviewed.RegularizationRequestStatus != "approved" {
		msg = "Permintaan ditolak"
	}
	return helper.Success(c, msg, dto.ToRegularizationResponse(reviewed))
}
