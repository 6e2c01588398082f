package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	relayCtrl "hostelku_backend/internals/features/finance/payments/controller"
)

// PaymentRelayRoutes: kontrak wire lama klien pembayaran, dimount langsung
// di /api tanpa prefix group auth.
func PaymentRelayRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := relayCtrl.NewPaymentRelayController(db)

	app.Post("/api/create-order", ctrl.CreateOrder)
	app.Post("/api/verify-payment", ctrl.VerifyPayment)
	app.Get("/api/payment/:paymentId", ctrl.GetPayment)
	app.Get("/api/health", ctrl.Health)
}
