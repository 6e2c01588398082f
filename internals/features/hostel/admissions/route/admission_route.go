package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hostelku_backend/internals/features/hostel/admissions/controller"
)

// AdmissionUserRoutes - pendaftaran milik mahasiswa (JWT).
func AdmissionUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAdmissionController(db)

	admission := router.Group("/admissions")
	admission.Post("/", ctrl.Submit)
	admission.Get("/", ctrl.ListMine)
	admission.Post("/:id/payment", ctrl.RecordPayment)
}

// AdmissionAdminRoutes - review pendaftaran oleh warden/admin.
func AdmissionAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAdmissionController(db)

	admission := router.Group("/admissions")
	admission.Get("/", ctrl.ListForReview)
	admission.Post("/:id/review", ctrl.Review)
}
