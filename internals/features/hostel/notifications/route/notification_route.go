package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hostelku_backend/internals/features/hostel/notifications/controller"
)

// NotificationUserRoutes - daftar + tandai-baca (JWT).
func NotificationUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewNotificationController(db)

	notification := router.Group("/notifications")
	notification.Get("/", ctrl.List)
	notification.Post("/:id/read", ctrl.MarkRead)
}

// NotificationAdminRoutes - pembuatan notifikasi (warden/admin).
func NotificationAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewNotificationController(db)

	notification := router.Group("/notifications")
	notification.Post("/", ctrl.Create)
}
