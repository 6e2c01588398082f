package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eventCtrl "hostelku_backend/internals/features/attendance/events/controller"
	middlewares "hostelku_backend/internals/middlewares"
)

func AttendanceUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := eventCtrl.NewAttendanceController(db)

	group := r.Group("/attendance")
	group.Post("/punch", middlewares.PunchRateLimiter(), ctrl.Punch)
	group.Get("/status", ctrl.Status)
	group.Get("/events", ctrl.ListEvents)
	group.Get("/calendar", ctrl.Calendar)
	group.Get("/summary", ctrl.Summary)
}
