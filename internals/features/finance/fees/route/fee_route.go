package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	feeCtrl "hostelku_backend/internals/features/finance/fees/controller"
)

// FeeWebhookRoutes: endpoint notifikasi Midtrans (publik, tanpa JWT)
func FeeWebhookRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := feeCtrl.NewFeeController(db)
	app.Post("/api/fees/notification", ctrl.Notification)
}

// FeeUserRoutes: tagihan milik user (group /api/u)
func FeeUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := feeCtrl.NewFeeController(db)

	group := r.Group("/fees")
	group.Get("/", ctrl.ListMine)
	group.Post("/:id/pay", ctrl.Pay)
}

// FeeAdminRoutes: kelola tagihan (group /api/a)
func FeeAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := feeCtrl.NewFeeController(db)

	group := r.Group("/fees")
	group.Post("/", ctrl.Create)
}
