package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	regCtrl "hostelku_backend/internals/features/attendance/regularizations/controller"
)

// RegularizationUserRoutes: dimount di group /api/u (JWT)
func RegularizationUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := regCtrl.NewRegularizationController(db)

	group := r.Group("/attendance/regularizations")
	group.Post("/", ctrl.Submit)
	group.Get("/", ctrl.ListMine)
}

// RegularizationAdminRoutes: dimount di group /api/a (JWT + role reviewer)
func RegularizationAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := regCtrl.NewRegularizationController(db)

	group := r.Group("/attendance/regularizations")
	group.Get("/", ctrl.ListForReview)
	group.Post("/:id/review", ctrl.Review)
}
