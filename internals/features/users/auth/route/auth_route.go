package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authCtrl "hostelku_backend/internals/features/users/auth/controller"
	middlewares "hostelku_backend/internals/middlewares"
)

// AuthRoutes: endpoint publik (tanpa JWT)
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authCtrl.NewAuthController(db)

	group := app.Group("/api/auth")
	group.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	group.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	group.Post("/login-google", middlewares.LoginRateLimiter(), ctrl.LoginGoogle)
	group.Post("/refresh-token", ctrl.RefreshToken)
	group.Post("/logout", ctrl.Logout)
}

// AuthUserRoutes: endpoint auth yang butuh JWT (dimount di group /api/u)
func AuthUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := authCtrl.NewAuthController(db)

	r.Get("/me", ctrl.Me)
	r.Post("/auth/change-password", ctrl.ChangePassword)
}
