package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userCtrl "hostelku_backend/internals/features/users/user/controller"
)

func UserAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := userCtrl.NewUserAdminController(db)

	group := r.Group("/users")
	group.Get("/", ctrl.List)
	group.Get("/:id", ctrl.GetByID)
	group.Patch("/:id", ctrl.Update)
	group.Post("/:id/deactivate", ctrl.Deactivate)
	group.Post("/:id/activate", ctrl.Activate)
}
