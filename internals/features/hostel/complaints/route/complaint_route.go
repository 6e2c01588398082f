package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hostelku_backend/internals/features/hostel/complaints/controller"
)

// ComplaintUserRoutes - keluhan milik mahasiswa (JWT).
func ComplaintUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewComplaintController(db)

	complaint := router.Group("/complaints")
	complaint.Post("/", ctrl.Create)
	complaint.Get("/", ctrl.ListMine)
}

// ComplaintAdminRoutes - penanganan keluhan oleh staff/warden.
func ComplaintAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewComplaintController(db)

	complaint := router.Group("/complaints")
	complaint.Get("/", ctrl.ListAll)
	complaint.Patch("/:id/status", ctrl.UpdateStatus)
}
