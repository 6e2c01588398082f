package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	hostelCtrl "hostelku_backend/internals/features/hostel/hostels/controller"
)

// HostelPublicRoutes: listing hostel untuk calon penghuni
func HostelPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := hostelCtrl.NewHostelController(db)

	group := r.Group("/hostels")
	group.Get("/", ctrl.List)
	group.Get("/:id", ctrl.GetByID)
}

// HostelAdminRoutes: kelola hostel & kamar
func HostelAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := hostelCtrl.NewHostelController(db)

	group := r.Group("/hostels")
	group.Post("/", ctrl.Create)
	group.Patch("/:id", ctrl.Update)
	group.Delete("/:id", ctrl.Delete)
	group.Post("/:id/rooms", ctrl.CreateRoom)
}
