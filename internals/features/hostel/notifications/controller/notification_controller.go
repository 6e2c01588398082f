package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hostelku_backend/internals/features/hostel/notifications/dto"
	"hostelku_backend/internals/features/hostel/notifications/model"
	helper "hostelku_backend/internals/helpers"
	authMw "hostelku_backend/internals/middlewares/auth"
)

var validate = validator.New()

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

/* ===================== CREATE (warden/admin) ===================== */
// POST /api/a/notifications
func (ctrl *NotificationController) Create(c *fiber.Ctx) error {
	authorID, err := authMw.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateNotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel(authorID)
	if err := ctrl.DB.Create(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat notifikasi")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Notifikasi dibuat", m)
}

/* ===================== LIST (user) ===================== */
// GET /api/u/notifications - notifikasi yang ditujukan ke role user,
// plus flag sudah-dibaca per user.
func (ctrl *NotificationController) List(c *fiber.Ctx) error {
	userID, err := authMw.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	role, _ := c.Locals("userRole").(string)

	paging := helper.ResolvePaging(c, 20, 100)

	// audiens kosong berarti untuk semua role
	q := ctrl.DB.Model(&model.NotificationModel{}).
		Where("notification_audience IS NULL OR cardinality(notification_audience) = 0 OR ? = ANY(notification_audience)", role)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung notifikasi")
	}

	var notifications []model.NotificationModel
	if err := q.Order("notification_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&notifications).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil notifikasi")
	}

	ids := make([]uuid.UUID, 0, len(notifications))
	for i := range notifications {
		ids = append(ids, notifications[i].NotificationID)
	}
	readSet := map[uuid.UUID]struct{}{}
	if len(ids) > 0 {
		var reads []model.NotificationReadModel
		if err := ctrl.DB.
			Where("notification_read_user_id = ? AND notification_read_notification_id IN ?", userID, ids).
			Find(&reads).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil status baca")
		}
		for i := range reads {
			readSet[reads[i].NotificationReadNotificationID] = struct{}{}
		}
	}

	out := make([]dto.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		_, isRead := readSet[notifications[i].NotificationID]
		out = append(out, dto.NotificationResponse{
			NotificationModel: notifications[i],
			IsRead:            isRead,
		})
	}

	return helper.Success(c, "OK", fiber.Map{
		"notifications": out,
		"pagination":    helper.BuildPagination(paging, total, len(out)),
	})
}

/* ===================== MARK READ (user) ===================== */
// POST /api/u/notifications/:id/read - idempoten.
func (ctrl *NotificationController) MarkRead(c *fiber.Ctx) error {
	userID, err := authMw.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	notificationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var notification model.NotificationModel
	if err := ctrl.DB.First(&notification, "notification_id = ?", notificationID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Notifikasi tidak ditemukan")
	}

	read := model.NotificationReadModel{
		NotificationReadNotificationID: notificationID,
		NotificationReadUserID:         userID,
	}
	if err := ctrl.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&read).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menandai notifikasi")
	}

	return helper.Success(c, "Notifikasi ditandai dibaca", nil)
}
